// Package selection reconciles a suggested value against the ordered
// list of valid options, producing the concrete selection index a
// form control starts from.
package selection

// ResolveIndex returns the position of suggested within valid, or 0
// when suggested is absent (including the empty suggestion). Callers
// resolving a subcategory must pass the list already filtered by the
// resolved category; subcategory names are not unique across
// categories and must not alias.
func ResolveIndex(suggested string, valid []string) int {
	for i, v := range valid {
		if v == suggested {
			return i
		}
	}
	return 0
}
