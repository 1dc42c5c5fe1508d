package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRules returns the built-in ordered rule table, highest
// priority first. Chapter-business administrative terms outrank
// everything else so that "board meeting notes about a workshop" still
// files under Chapter Business.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:    "Chapter Business",
			Subcategory: "Chapter Business – AAMN",
			Keywords:    []string{"board", "committee", "newsletter", "website", "admin", "meeting"},
		},
		{
			Category:    "Advanced Training",
			Subcategory: "Presentations",
			Keywords:    []string{"webinar", "lecture", "training", "workshop", "conference"},
			Overrides: []PhraseOverride{
				{Phrase: "tmn tuesday", Subcategory: "TMN Tuesday"},
			},
		},
		{
			Category:    "Public Outreach",
			Subcategory: "Public Outreach – AAMN",
			Keywords:    []string{"outreach", "booth", "presentation", "public", "students", "tour", "guide"},
		},
		{
			Category:    "Nature/Public Access",
			Subcategory: "Access Nature – AAMN",
			Keywords:    []string{"trail", "maintenance", "garden", "planting", "invasive"},
		},
		{
			Category:    "Field Research",
			Subcategory: "Field Research – AAMN",
			Keywords:    []string{"survey", "monitoring", "bird count", "inaturalist"},
			Overrides: []PhraseOverride{
				{Phrase: "city nature challenge", Subcategory: "City Nature Challenge"},
			},
		},
	}
}

// rulesFile is the YAML rule-file shape. The same file may also carry
// the partner map; unrelated keys are ignored here.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads an ordered rule table from a YAML file so chapters
// can adjust keyword groups without rebuilding. File order is priority
// order.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: failed to read rules file %s: %w", path, err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("classifier: failed to parse rules file %s: %w", path, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("classifier: rules file %s defines no rules", path)
	}

	for i, rule := range file.Rules {
		if rule.Category == "" || rule.Subcategory == "" {
			return nil, fmt.Errorf("classifier: rule %d is missing category or subcategory", i)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("classifier: rule %d (%s) has no keywords", i, rule.Category)
		}
	}
	return file.Rules, nil
}
