// Package reference loads and serves the VMS code reference table.
//
// The table is read once at startup from CSV (or from a SQLite/Postgres
// database, selected by configuration) and is immutable for the life of
// the process. There is no write path. A missing source is a fatal
// configuration error reported distinctly from an empty table.
package reference

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/brookeadam/vms-helper/pkg/types"
)

// ErrNotFound indicates the reference table source does not exist or
// could not be opened. Fatal at startup; never masked as "no suggestion".
var ErrNotFound = errors.New("reference table not found")

// ErrEmptyTable indicates the source was readable but contained zero
// data rows. Reported distinctly from ErrNotFound.
var ErrEmptyTable = errors.New("reference table is empty")

// ErrNoCategoryRows indicates a category that exists in classifier
// output has no rows in the table. This is a configuration error to
// surface, not a condition to silently absorb.
var ErrNoCategoryRows = errors.New("category has no reference rows")

// Table is the immutable, in-memory reference table.
type Table struct {
	rows []types.ReferenceRow

	// byCategory preserves source row order within each category.
	byCategory map[string][]types.ReferenceRow
}

// NewTable builds a Table from rows. Returns ErrEmptyTable when rows
// is empty.
func NewTable(rows []types.ReferenceRow) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	t := &Table{
		rows:       rows,
		byCategory: make(map[string][]types.ReferenceRow),
	}
	for _, row := range rows {
		t.byCategory[row.Category] = append(t.byCategory[row.Category], row)
	}
	return t, nil
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns all rows in source order.
func (t *Table) Rows() []types.ReferenceRow {
	return t.rows
}

// Categories returns the sorted unique category names.
func (t *Table) Categories() []string {
	cats := make([]string, 0, len(t.byCategory))
	for cat := range t.byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// Subcategories returns the subcategory names under the given category
// in source row order. Returns nil for an unknown category.
func (t *Table) Subcategories(category string) []string {
	rows := t.byCategory[category]
	if len(rows) == 0 {
		return nil
	}
	subs := make([]string, len(rows))
	for i, row := range rows {
		subs[i] = row.Subcategory
	}
	return subs
}

// Row looks up the row for (category, subcategory). Subcategory names
// are only unique within a category, so lookups always take both keys.
func (t *Table) Row(category, subcategory string) (types.ReferenceRow, bool) {
	for _, row := range t.byCategory[category] {
		if row.Subcategory == subcategory {
			return row, true
		}
	}
	return types.ReferenceRow{}, false
}

// HasSubcategory reports whether (category, subcategory) exists.
func (t *Table) HasSubcategory(category, subcategory string) bool {
	_, ok := t.Row(category, subcategory)
	return ok
}

// FirstSubcategory returns the first subcategory row of the category,
// or ErrNoCategoryRows when the category has none.
func (t *Table) FirstSubcategory(category string) (string, error) {
	rows := t.byCategory[category]
	if len(rows) == 0 {
		return "", fmt.Errorf("reference: %w: %q", ErrNoCategoryRows, category)
	}
	return rows[0].Subcategory, nil
}

// Condensed renders the table as a compact textual listing for prompt
// embedding: one "category | subcategory | keywords" line per row,
// with the rules note appended when includeRules is set.
func (t *Table) Condensed(includeRules bool) string {
	var b strings.Builder
	for _, row := range t.rows {
		b.WriteString(row.Category)
		b.WriteString(" | ")
		b.WriteString(row.Subcategory)
		if len(row.Keywords) > 0 {
			b.WriteString(" | keywords: ")
			b.WriteString(strings.Join(row.Keywords, ", "))
		}
		if includeRules && row.Rules != "" {
			b.WriteString(" | rule: ")
			b.WriteString(row.Rules)
		}
		b.WriteString("\n")
	}
	return b.String()
}
