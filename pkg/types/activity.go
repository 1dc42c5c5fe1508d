package types

// ClassificationResult is the transient outcome of one classification
// attempt, whether rule-based or AI-suggested. Empty Category and
// Subcategory model "no suggestion". A result is created fresh per
// attempt and superseded by the next attempt or an explicit user
// override; it is never persisted across unrelated requests.
type ClassificationResult struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Reasoning   string `json:"reasoning,omitempty"`
}

// IsEmpty reports whether the result carries no suggestion at all.
func (r ClassificationResult) IsEmpty() bool {
	return r.Category == "" && r.Subcategory == ""
}

// ActivityContext holds one user submission. It lives only for the
// duration of a single render; nothing retains it afterwards.
type ActivityContext struct {
	TaskText     string `json:"task_text"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
}
