// Package classifier maps free-text activity notes to a VMS
// (category, subcategory) pair using one consolidated ordered rule
// table. Matching is deterministic substring search: the first rule
// with any keyword hit wins, with optional multi-word phrase overrides
// rerouting the subcategory within the winning rule. There is no
// scoring and no combination of matches.
package classifier

import (
	"strings"

	"github.com/brookeadam/vms-helper/pkg/types"
)

// PhraseOverride reroutes a rule's subcategory when a specific
// multi-word phrase occurs in the input (e.g. "tmn tuesday" under the
// training rule routes to "TMN Tuesday" instead of "Presentations").
type PhraseOverride struct {
	Phrase      string `yaml:"phrase"`
	Subcategory string `yaml:"subcategory"`
}

// Rule is one keyword group in the ordered rule table. Rules are
// evaluated top to bottom; earlier rules take priority over later ones
// regardless of how many keywords match.
type Rule struct {
	Category    string           `yaml:"category"`
	Subcategory string           `yaml:"subcategory"`
	Keywords    []string         `yaml:"keywords"`
	Overrides   []PhraseOverride `yaml:"overrides,omitempty"`
}

// EmptyPolicy selects what Classify returns for empty input. The
// source variants disagree on this, so it stays configurable rather
// than silently unified.
type EmptyPolicy int

const (
	// EmptyPolicyNone returns the zero ClassificationResult for empty input.
	EmptyPolicyNone EmptyPolicy = iota

	// EmptyPolicyOther returns the catch-all pair for empty input.
	EmptyPolicyOther
)

// Classifier evaluates the ordered rule table against normalized input.
// Stateless after construction; safe for concurrent use.
type Classifier struct {
	rules    []Rule
	policy   EmptyPolicy
	catchAll types.ClassificationResult
}

// New creates a Classifier over the given ordered rules.
func New(rules []Rule, policy EmptyPolicy) *Classifier {
	return &Classifier{
		rules:  rules,
		policy: policy,
		catchAll: types.ClassificationResult{
			Category:    "Other",
			Subcategory: "Other – AAMN",
		},
	}
}

// Classify returns the (category, subcategory) pair for the input
// text. Empty input follows the configured EmptyPolicy; non-empty
// input that matches no rule returns the catch-all pair. Output is
// identical on every call for fixed input and rules.
func (c *Classifier) Classify(text string) types.ClassificationResult {
	if strings.TrimSpace(text) == "" {
		if c.policy == EmptyPolicyOther {
			return c.catchAll
		}
		return types.ClassificationResult{}
	}

	normalized := strings.ToLower(text)
	for _, rule := range c.rules {
		if !matchesAny(normalized, rule.Keywords) {
			continue
		}
		sub := rule.Subcategory
		for _, ov := range rule.Overrides {
			if strings.Contains(normalized, ov.Phrase) {
				sub = ov.Subcategory
				break
			}
		}
		return types.ClassificationResult{Category: rule.Category, Subcategory: sub}
	}

	return c.catchAll
}

// matchesAny reports whether any keyword occurs as a substring of the
// normalized text.
func matchesAny(normalized string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}
