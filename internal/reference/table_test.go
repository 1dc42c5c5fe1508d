package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brookeadam/vms-helper/internal/reference"
	"github.com/brookeadam/vms-helper/pkg/types"
)

func fixtureTable(t *testing.T) *reference.Table {
	t.Helper()
	tbl, err := reference.NewTable([]types.ReferenceRow{
		{Category: "Public Outreach", Subcategory: "Public Outreach – AAMN", Keywords: []string{"outreach", "booth"}},
		{Category: "Advanced Training", Subcategory: "Presentations"},
		{Category: "Advanced Training", Subcategory: "TMN Tuesday", Rules: "Statewide series only"},
		{Category: "Nature/Public Access", Subcategory: "Access Nature – AAMN"},
		{Category: "Nature/Public Access", Subcategory: "Access Nature – San Antonio River Authority"},
	})
	require.NoError(t, err)
	return tbl
}

func TestNewTable_EmptyRowsIsEmptyTable(t *testing.T) {
	_, err := reference.NewTable(nil)
	assert.ErrorIs(t, err, reference.ErrEmptyTable)
}

func TestCategories_SortedUnique(t *testing.T) {
	tbl := fixtureTable(t)
	assert.Equal(t,
		[]string{"Advanced Training", "Nature/Public Access", "Public Outreach"},
		tbl.Categories())
}

func TestSubcategories_PreservesSourceOrder(t *testing.T) {
	tbl := fixtureTable(t)
	assert.Equal(t,
		[]string{"Presentations", "TMN Tuesday"},
		tbl.Subcategories("Advanced Training"))
	assert.Nil(t, tbl.Subcategories("Chapter Business"))
}

func TestRow_ScopedToCategory(t *testing.T) {
	tbl := fixtureTable(t)

	row, ok := tbl.Row("Advanced Training", "TMN Tuesday")
	require.True(t, ok)
	assert.Equal(t, "Statewide series only", row.Rules)

	// Subcategory names are only unique within a category; a lookup
	// under the wrong category must miss.
	_, ok = tbl.Row("Public Outreach", "TMN Tuesday")
	assert.False(t, ok)
}

func TestFirstSubcategory(t *testing.T) {
	tbl := fixtureTable(t)

	first, err := tbl.FirstSubcategory("Nature/Public Access")
	require.NoError(t, err)
	assert.Equal(t, "Access Nature – AAMN", first)

	_, err = tbl.FirstSubcategory("Chapter Business")
	assert.ErrorIs(t, err, reference.ErrNoCategoryRows)
}

func TestCondensed_OneLinePerRow(t *testing.T) {
	tbl := fixtureTable(t)

	listing := tbl.Condensed(false)
	assert.Contains(t, listing, "Public Outreach | Public Outreach – AAMN | keywords: outreach, booth")
	assert.NotContains(t, listing, "Statewide series only")

	withRules := tbl.Condensed(true)
	assert.Contains(t, withRules, "rule: Statewide series only")
}
