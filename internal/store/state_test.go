package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
)

func TestLoadSidebarState_Missing(t *testing.T) {
	state, err := LoadSidebarState(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSidebarState(), state)
}

func TestLoadSidebarState_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	state, err := LoadSidebarState(path)
	require.NoError(t, err)
	assert.Equal(t, core.Default(), state.Filters)
}

func TestSidebarState_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	state := DefaultSidebarState()
	var err error
	state.Filters, err = core.Toggle(state.Filters, core.FieldDestinations, "Kenya")
	require.NoError(t, err)
	state.Filters = core.SetRating(state.Filters, 3, true)
	state.Filters = core.SetPriceRange(state.Filters, 500, 2500)
	state.Expanded = state.Expanded.Toggle(core.SectionRating)
	state.Mode = model.ModeDark

	require.NoError(t, SaveSidebarState(path, state))
	assert.NotZero(t, state.UpdatedAt)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadSidebarState(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kenya"}, loaded.Filters.Destinations)
	assert.Equal(t, 3, loaded.Filters.Rating)
	assert.Equal(t, [2]int{500, 2500}, loaded.Filters.PriceRange)
	assert.Equal(t, [2]int{1, 30}, loaded.Filters.Duration)
	assert.True(t, loaded.Expanded.IsExpanded(core.SectionRating))
	assert.True(t, loaded.Expanded.IsExpanded(core.SectionDestinations))
	assert.Equal(t, model.ModeDark, loaded.Mode)
	assert.Equal(t, CurrentSchemaVersion, loaded.SchemaVersion)
}

func TestLoadSidebarState_NormalisesInvertedRanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	content := `{"filters": {"duration": [20, 5], "priceRange": [9000, 100]}, "schema_version": 1}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	state, err := LoadSidebarState(path)
	require.NoError(t, err)
	assert.Equal(t, [2]int{5, 20}, state.Filters.Duration)
	assert.Equal(t, [2]int{100, 9000}, state.Filters.PriceRange)
	assert.True(t, state.Filters.RangesValid())
}
