package partner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brookeadam/vms-helper/internal/partner"
	"github.com/brookeadam/vms-helper/internal/reference"
	"github.com/brookeadam/vms-helper/pkg/types"
)

func tableOf(t *testing.T, rows ...types.ReferenceRow) *reference.Table {
	t.Helper()
	tbl, err := reference.NewTable(rows)
	require.NoError(t, err)
	return tbl
}

func defaultResolver() *partner.Resolver {
	return partner.NewResolver(partner.DefaultMappings(), "AAMN")
}

// Each tier of the fallback chain, exercised by removing rows from the
// fixture table.
func TestResolve_FallbackChain(t *testing.T) {
	r := defaultResolver()
	task := "removed invasive ligustrum"
	org := "San Antonio River Foundation"

	t.Run("partner-qualified row exists", func(t *testing.T) {
		tbl := tableOf(t,
			types.ReferenceRow{Category: "Nature/Public Access", Subcategory: "Access Nature – AAMN"},
			types.ReferenceRow{Category: "Nature/Public Access", Subcategory: "Access Nature – San Antonio River Authority"},
		)
		cat, sub, err := r.Resolve(task, org, "", tbl)
		require.NoError(t, err)
		assert.Equal(t, "Nature/Public Access", cat)
		assert.Equal(t, "Access Nature – San Antonio River Authority", sub)
	})

	t.Run("falls back to chapter-qualified row", func(t *testing.T) {
		tbl := tableOf(t,
			types.ReferenceRow{Category: "Nature/Public Access", Subcategory: "Access Nature – AAMN"},
		)
		cat, sub, err := r.Resolve(task, org, "", tbl)
		require.NoError(t, err)
		assert.Equal(t, "Nature/Public Access", cat)
		assert.Equal(t, "Access Nature – AAMN", sub)
	})

	t.Run("falls back to first row of category", func(t *testing.T) {
		tbl := tableOf(t,
			types.ReferenceRow{Category: "Nature/Public Access", Subcategory: "Trail Building – AAMN"},
		)
		cat, sub, err := r.Resolve(task, org, "", tbl)
		require.NoError(t, err)
		assert.Equal(t, "Nature/Public Access", cat)
		assert.Equal(t, "Trail Building – AAMN", sub)
	})

	t.Run("category with zero rows is a configuration error", func(t *testing.T) {
		tbl := tableOf(t,
			types.ReferenceRow{Category: "Field Research", Subcategory: "Field Research – AAMN"},
		)
		_, _, err := r.Resolve(task, org, "", tbl)
		require.Error(t, err)
		assert.ErrorIs(t, err, reference.ErrNoCategoryRows)
	})
}

func TestResolve_TrainingBypassesPartnerQualification(t *testing.T) {
	r := defaultResolver()
	// Table has no training rows at all; bypass must still return
	// immediately without consulting it.
	tbl := tableOf(t,
		types.ReferenceRow{Category: "Other", Subcategory: "Other – AAMN"},
	)

	cat, sub, err := r.Resolve("attended a workshop", "San Antonio River Authority", "", tbl)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Training", cat)
	assert.Equal(t, "Presentations", sub)
}

func TestResolve_PartnerInferredFromLocation(t *testing.T) {
	r := defaultResolver()
	tbl := tableOf(t,
		types.ReferenceRow{Category: "Public Outreach", Subcategory: "Public Outreach – AAMN"},
		types.ReferenceRow{Category: "Public Outreach", Subcategory: "Public Outreach – Phil Hardberger Park Conservancy"},
	)

	cat, sub, err := r.Resolve("gave a guided tour", "", "Phil Hardberger Park", tbl)
	require.NoError(t, err)
	assert.Equal(t, "Public Outreach", cat)
	assert.Equal(t, "Public Outreach – Phil Hardberger Park Conservancy", sub)
}

func TestResolve_DefaultPartnerIsChapterAbbreviation(t *testing.T) {
	r := defaultResolver()
	tbl := tableOf(t,
		types.ReferenceRow{Category: "Field Research", Subcategory: "Field Research – AAMN"},
	)

	cat, sub, err := r.Resolve("bird count survey", "no partner here", "backyard", tbl)
	require.NoError(t, err)
	assert.Equal(t, "Field Research", cat)
	assert.Equal(t, "Field Research – AAMN", sub)
}

func TestResolve_FirstMappingWins(t *testing.T) {
	r := partner.NewResolver([]partner.Mapping{
		{Phrase: "river", Name: "First Partner"},
		{Phrase: "san antonio river", Name: "Second Partner"},
	}, "AAMN")
	tbl := tableOf(t,
		types.ReferenceRow{Category: "Nature/Public Access", Subcategory: "Access Nature – First Partner"},
		types.ReferenceRow{Category: "Nature/Public Access", Subcategory: "Access Nature – Second Partner"},
	)

	_, sub, err := r.Resolve("invasive removal", "San Antonio River Foundation", "", tbl)
	require.NoError(t, err)
	assert.Equal(t, "Access Nature – First Partner", sub)
}

func TestLoadMappings(t *testing.T) {
	const mappingsYAML = `
partners:
  - phrase: san antonio river
    name: San Antonio River Authority
  - phrase: hardberger
    name: Phil Hardberger Park Conservancy
`
	path := filepath.Join(t.TempDir(), "partners.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mappingsYAML), 0o644))

	mappings, err := partner.LoadMappings(path)
	require.NoError(t, err)
	require.Len(t, mappings, 2)
	assert.Equal(t, "San Antonio River Authority", mappings[0].Name)

	_, err = partner.LoadMappings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
