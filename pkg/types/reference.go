// Package types defines the shared domain types for the VMS helper:
// reference table rows, classification results, and per-submission
// activity context. Types here carry no behavior beyond validation
// so that every pipeline stage can depend on them without cycles.
package types

// ReferenceRow is one entry of the VMS code reference table.
// (Category, Subcategory) is the join key used everywhere downstream;
// Rules and Notes are optional advisory text surfaced to the user.
type ReferenceRow struct {
	// Category is the top-level VMS category name (e.g. "Advanced Training").
	Category string `json:"category"`

	// Subcategory is the specific activity code, unique within its category.
	Subcategory string `json:"subcategory"`

	// Keywords are lowercase tokens associated with this subcategory.
	// May be empty; used only for prompt construction, not rule matching.
	Keywords []string `json:"keywords,omitempty"`

	// Rules is a human-readable compliance note shown alongside the
	// rendered sentence. Empty for many rows.
	Rules string `json:"rules,omitempty"`

	// Notes is a secondary annotation.
	Notes string `json:"notes,omitempty"`

	// ActivityType is a coarse verb-selection key ("training", "outreach",
	// "invasive removal", ...) consumed only by the narrative renderer.
	ActivityType string `json:"activity_type,omitempty"`
}
