// Package partner infers an organizational partner from free-text
// organization/location fields and composes a partner-qualified
// subcategory, validated against the reference table with a
// three-level fallback chain.
package partner

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brookeadam/vms-helper/internal/reference"
)

// Mapping associates a location/organization phrase with the canonical
// partner name used in subcategory qualification. Mappings are ordered;
// the first phrase found in the text wins.
type Mapping struct {
	Phrase string `yaml:"phrase"`
	Name   string `yaml:"name"`
}

// DefaultMappings returns the built-in ordered phrase→partner map.
func DefaultMappings() []Mapping {
	return []Mapping{
		{Phrase: "san antonio river", Name: "San Antonio River Authority"},
		{Phrase: "hardberger", Name: "Phil Hardberger Park Conservancy"},
		{Phrase: "government canyon", Name: "Government Canyon SNA"},
		{Phrase: "mitchell lake", Name: "Mitchell Lake Audubon Center"},
		{Phrase: "medina river", Name: "Medina River Natural Area"},
		{Phrase: "friedrich", Name: "Friedrich Wilderness Park"},
	}
}

// mappingsFile is the YAML shape; the same file may carry classifier
// rules under other keys.
type mappingsFile struct {
	Partners []Mapping `yaml:"partners"`
}

// LoadMappings reads an ordered partner map from a YAML file.
func LoadMappings(path string) ([]Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("partner: failed to read mappings file %s: %w", path, err)
	}
	var file mappingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("partner: failed to parse mappings file %s: %w", path, err)
	}
	if len(file.Partners) == 0 {
		return nil, fmt.Errorf("partner: mappings file %s defines no partners", path)
	}
	return file.Partners, nil
}

// activityGroup is one keyword group for base-activity detection.
// Groups using bypass return their pair immediately, skipping partner
// qualification (training sessions are never partner-qualified).
type activityGroup struct {
	category string
	base     string
	keywords []string
	bypass   bool
}

// baseGroups mirrors the classifier's priority ordering.
var baseGroups = []activityGroup{
	{
		category: "Chapter Business",
		base:     "Chapter Business",
		keywords: []string{"board", "committee", "newsletter", "website", "admin", "meeting"},
	},
	{
		category: "Advanced Training",
		base:     "Presentations",
		keywords: []string{"webinar", "lecture", "training", "workshop", "conference"},
		bypass:   true,
	},
	{
		category: "Public Outreach",
		base:     "Public Outreach",
		keywords: []string{"outreach", "booth", "presentation", "public", "students", "tour", "guide"},
	},
	{
		category: "Nature/Public Access",
		base:     "Access Nature",
		keywords: []string{"trail", "maintenance", "garden", "planting", "invasive"},
	},
	{
		category: "Field Research",
		base:     "Field Research",
		keywords: []string{"survey", "monitoring", "bird count", "inaturalist"},
	},
}

// Resolver holds the partner map and the chapter's own abbreviation,
// which doubles as the default partner when no phrase matches.
type Resolver struct {
	mappings      []Mapping
	chapterAbbrev string
}

// NewResolver creates a Resolver. Empty chapterAbbrev defaults to "AAMN".
func NewResolver(mappings []Mapping, chapterAbbrev string) *Resolver {
	if chapterAbbrev == "" {
		chapterAbbrev = "AAMN"
	}
	return &Resolver{mappings: mappings, chapterAbbrev: chapterAbbrev}
}

// Resolve computes the partner-qualified (category, subcategory) pair
// for the submission. The candidate "{base} – {partner}" is validated
// against the table with a fallback chain: partner-qualified name,
// then the chapter-qualified name, then the category's first row.
// A category with zero rows is a configuration error, never a silent
// fallback.
func (r *Resolver) Resolve(taskText, orgText, locText string, tbl *reference.Table) (string, string, error) {
	category, base, bypass := r.baseActivity(taskText)
	if bypass {
		return category, base, nil
	}

	name := r.partnerName(orgText, locText)

	for _, candidate := range []string{
		base + " – " + name,
		base + " – " + r.chapterAbbrev,
	} {
		if tbl.HasSubcategory(category, candidate) {
			return category, candidate, nil
		}
	}

	first, err := tbl.FirstSubcategory(category)
	if err != nil {
		return "", "", fmt.Errorf("partner: cannot qualify %q: %w", base, err)
	}
	return category, first, nil
}

// baseActivity finds the first matching activity group for the task
// text, defaulting to Other.
func (r *Resolver) baseActivity(taskText string) (category, base string, bypass bool) {
	normalized := strings.ToLower(taskText)
	for _, group := range baseGroups {
		for _, kw := range group.keywords {
			if strings.Contains(normalized, kw) {
				return group.category, group.base, group.bypass
			}
		}
	}
	return "Other", "Other", false
}

// partnerName returns the canonical partner for the first mapped
// phrase found in the organization or location text, or the chapter
// abbreviation when none matches.
func (r *Resolver) partnerName(orgText, locText string) string {
	haystack := strings.ToLower(orgText + " " + locText)
	for _, m := range r.mappings {
		if m.Phrase != "" && strings.Contains(haystack, strings.ToLower(m.Phrase)) {
			return m.Name
		}
	}
	return r.chapterAbbrev
}
