package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tourkit/internal/model"
)

func testTours() []model.Tour {
	return []model.Tour{
		{ID: "t1", Name: "Bwindi Gorilla Trek", Destination: "Uganda", DurationDays: 3, Price: 1800, TourType: "Gorilla trekking", Accommodation: "Mid-range", GroupSize: "Small group", Difficulty: "Challenging", Rating: 4.8},
		{ID: "t2", Name: "Serengeti Migration", Destination: "Tanzania", DurationDays: 7, Price: 4200, TourType: "Wildlife", Accommodation: "Luxury", GroupSize: "Private", Difficulty: "Easy", Rating: 4.6},
		{ID: "t3", Name: "Maasai Mara Budget Safari", Destination: "Kenya", DurationDays: 4, Price: 900, TourType: "Wildlife", Accommodation: "Budget", GroupSize: "Large group", Difficulty: "Easy", Rating: 3.9},
		{ID: "t4", Name: "Kigali Culture Walk", Destination: "Rwanda", DurationDays: 1, Price: 150, TourType: "Cultural", Accommodation: "Budget", GroupSize: "Small group", Difficulty: "Easy", Rating: 4.1},
		{ID: "t5", Name: "Okavango Canoe Expedition", Destination: "Botswana", DurationDays: 12, Price: 7600, TourType: "Adventure", Accommodation: "Mid-range", GroupSize: "Small group", Difficulty: "Moderate", Rating: 2.7},
	}
}

func ids(tours []model.Tour) []string {
	out := make([]string, len(tours))
	for i, t := range tours {
		out[i] = t.ID
	}
	return out
}

func TestApply_DefaultMatchesAll(t *testing.T) {
	assert.Equal(t, ids(testTours()), ids(Apply(testTours(), Default())))
}

func TestApply_Criteria(t *testing.T) {
	tests := []struct {
		name     string
		build    func() model.FilterState
		expected []string
	}{
		{
			name: "destination",
			build: func() model.FilterState {
				s, _ := Update(Default(), FieldDestinations, []string{"Kenya", "Tanzania"})
				return s
			},
			expected: []string{"t2", "t3"},
		},
		{
			name: "tour type and accommodation",
			build: func() model.FilterState {
				s, _ := Toggle(Default(), FieldTourTypes, "Wildlife")
				s, _ = Toggle(s, FieldAccommodationTypes, "Budget")
				return s
			},
			expected: []string{"t3"},
		},
		{
			name:     "duration range inclusive",
			build:    func() model.FilterState { return SetDuration(Default(), 3, 7) },
			expected: []string{"t1", "t2", "t3"},
		},
		{
			name:     "price range",
			build:    func() model.FilterState { return SetPriceRange(Default(), 1000, 5000) },
			expected: []string{"t1", "t2"},
		},
		{
			name:     "minimum rating",
			build:    func() model.FilterState { return SetRating(Default(), 4, true) },
			expected: []string{"t1", "t2", "t4"},
		},
		{
			name: "group size and difficulty",
			build: func() model.FilterState {
				s, _ := Toggle(Default(), FieldGroupSizes, "Small group")
				s, _ = Toggle(s, FieldDifficulty, "Moderate")
				return s
			},
			expected: []string{"t5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Apply(testTours(), tt.build())))
		})
	}
}

func TestFacetCounts(t *testing.T) {
	state, err := Toggle(Default(), FieldDestinations, "Kenya")
	require.NoError(t, err)
	state = SetRating(state, 3, true)

	counts := FacetCounts(testTours(), state, FieldDestinations)

	// The destination selection itself is ignored, the rating is not.
	assert.Equal(t, 1, counts["Uganda"])
	assert.Equal(t, 1, counts["Kenya"])
	assert.Equal(t, 0, counts["Botswana"])

	assert.Empty(t, FacetCounts(testTours(), state, FieldRating))
}

func TestSort(t *testing.T) {
	tests := []struct {
		name     string
		opts     SortOptions
		expected []string
	}{
		{"price asc", DefaultSortOptions(), []string{"t4", "t3", "t1", "t2", "t5"}},
		{"price desc", SortOptions{Field: SortByPrice, Order: SortDesc}, []string{"t5", "t2", "t1", "t3", "t4"}},
		{"duration asc", SortOptions{Field: SortByDuration, Order: SortAsc}, []string{"t4", "t1", "t3", "t2", "t5"}},
		{"rating desc", SortOptions{Field: SortByRating, Order: SortDesc}, []string{"t1", "t2", "t4", "t3", "t5"}},
		{"name asc", SortOptions{Field: SortByName, Order: SortAsc}, []string{"t1", "t4", "t3", "t5", "t2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tours := testTours()
			Sort(tours, tt.opts)
			assert.Equal(t, tt.expected, ids(tours))
		})
	}
}

func TestSort_Empty(t *testing.T) {
	var tours []model.Tour
	Sort(tours, DefaultSortOptions())
	assert.Len(t, tours, 0)
}

func TestParseSort(t *testing.T) {
	f, err := ParseSortField("Stars")
	require.NoError(t, err)
	assert.Equal(t, SortByRating, f)

	f, err = ParseSortField("bogus")
	require.NoError(t, err)
	assert.Equal(t, SortByPrice, f)

	o, err := ParseSortOrder("descending")
	require.NoError(t, err)
	assert.Equal(t, SortDesc, o)
}

func TestLookup(t *testing.T) {
	tours := testTours()

	found := LookupByID(tours, "t3")
	require.NotNil(t, found)
	assert.Equal(t, "Kenya", found.Destination)
	assert.Nil(t, LookupByID(tours, "missing"))

	assert.Equal(t, []string{"t2"}, ids(Search(tours, "serengeti")))
	assert.Equal(t, []string{"t4"}, ids(Search(tours, "RWANDA")))
	assert.Len(t, Search(tours, ""), 5)

	assert.Equal(t, []string{"Botswana", "Kenya", "Rwanda", "Tanzania", "Uganda"}, UniqueDestinations(tours))
}
