package narrative

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brookeadam/vms-helper/pkg/types"
)

// Mode selects how the renderer treats the task text before filling
// the template.
type Mode int

const (
	// ModeRaw echoes the cleaned task text as written.
	ModeRaw Mode = iota

	// ModeConjugated additionally rewrites past-tense verbs to gerunds
	// for smoother mid-sentence flow.
	ModeConjugated
)

// defaultOrganization is the fallback phrase used when the submission
// carries no organization.
const defaultOrganization = "the AAMN chapter"

// genericVerbPhrases selects the generic template's verb phrase by the
// reference row's activity type. Unknown or empty types use the
// default phrase.
var genericVerbPhrases = map[string]string{
	"training":         "attended training",
	"outreach":         "performed outreach",
	"invasive removal": "performed invasive species removal",
	"research":         "conducted field research",
	"administration":   "performed chapter administration",
}

// Input bundles everything the renderer needs for one sentence.
type Input struct {
	Category    types.Category
	Subcategory string

	// ActivityType is the reference row's coarse verb-selection key.
	// Optional; only the generic template consults it.
	ActivityType string

	Activity types.ActivityContext
}

// Renderer produces the final summary sentence. Zero value renders in
// ModeRaw.
type Renderer struct {
	Mode Mode
}

// Render fills the category's sentence template. Empty task text
// yields an empty string unconditionally; no partial sentence is ever
// produced. Template dispatch is exhaustive over the Category enum, so
// every category yields a non-empty sentence for non-empty task text.
func (r *Renderer) Render(in Input) string {
	task := r.cleanTask(in.Activity.TaskText)
	if task == "" {
		return ""
	}

	org := in.Activity.Organization
	if org == "" {
		org = defaultOrganization
	}
	loc := ""
	if in.Activity.Location != "" {
		loc = " at " + in.Activity.Location
	}

	switch in.Category {
	case types.CategoryAdvancedTraining:
		return fmt.Sprintf("I attended an advanced training session regarding %s provided by %s%s. The focus of the session was %s.",
			in.Subcategory, org, loc, task)
	case types.CategoryPublicOutreach:
		return fmt.Sprintf("Representing the Master Naturalist program%s, I engaged in public outreach with %s by %s.",
			loc, org, task)
	case types.CategoryFieldResearch:
		return fmt.Sprintf("I contributed to citizen science and research efforts for %s%s. My activities involved %s.",
			in.Subcategory, loc, task)
	case types.CategoryChapterBusiness, types.CategoryNatureAccess, types.CategoryOther:
		fallthrough
	default:
		verb := genericVerbPhrases[in.ActivityType]
		if verb == "" {
			verb = "provided volunteer service"
		}
		return fmt.Sprintf("I %s for %s in coordination with %s%s. My specific tasks included %s.",
			verb, in.Subcategory, org, loc, task)
	}
}

// cleanTask normalizes the task text: trim whitespace, strip one
// trailing period, conjugate when configured, then lowercase the first
// character unless the text opens with an acronym.
func (r *Renderer) cleanTask(task string) string {
	task = strings.TrimSpace(task)
	task = strings.TrimSuffix(task, ".")
	if task == "" {
		return ""
	}

	if r.Mode == ModeConjugated {
		task = ConjugateToGerund(task)
	}

	if !startsWithAcronym(task) {
		runes := []rune(task)
		runes[0] = unicode.ToLower(runes[0])
		task = string(runes)
	}
	return task
}

// startsWithAcronym reports whether the first three characters are all
// uppercase letters, the guard that keeps openings like "DNA sampling"
// intact.
func startsWithAcronym(s string) bool {
	runes := []rune(s)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	sawLetter := false
	for _, r := range runes {
		if unicode.IsLetter(r) {
			if !unicode.IsUpper(r) {
				return false
			}
			sawLetter = true
		}
	}
	return sawLetter
}
