package types

// Category is the closed set of VMS top-level categories. Template
// dispatch in the renderer switches exhaustively over these variants,
// so adding a category is a compile-time-checked extension rather than
// a silent string fallthrough.
type Category int

const (
	// CategoryOther is the catch-all; unknown category names parse to it.
	CategoryOther Category = iota
	CategoryChapterBusiness
	CategoryAdvancedTraining
	CategoryPublicOutreach
	CategoryNatureAccess
	CategoryFieldResearch
)

// categoryNames maps enum variants to the VMS category names used in
// the reference table.
var categoryNames = map[Category]string{
	CategoryOther:            "Other",
	CategoryChapterBusiness:  "Chapter Business",
	CategoryAdvancedTraining: "Advanced Training",
	CategoryPublicOutreach:   "Public Outreach",
	CategoryNatureAccess:     "Nature/Public Access",
	CategoryFieldResearch:    "Field Research",
}

// String returns the VMS category name for the variant.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Other"
}

// ParseCategory maps a VMS category name to its enum variant.
// Unknown names map to CategoryOther so callers always hold a variant
// the renderer can dispatch on.
func ParseCategory(name string) Category {
	for cat, n := range categoryNames {
		if n == name {
			return cat
		}
	}
	return CategoryOther
}
