package model

import "slices"

// Range bounds for the filter sliders.
const (
	MinDuration = 1
	MaxDuration = 30
	MinPrice    = 0
	MaxPrice    = 10000
	MaxRating   = 4
)

// FilterState is the set of criteria a user has selected to narrow the
// tour listing. Set-valued fields preserve insertion order and never hold
// duplicates when built through the core package.
type FilterState struct {
	Destinations       []string `json:"destinations" yaml:"destinations"`
	Duration           [2]int   `json:"duration" yaml:"duration"`
	PriceRange         [2]int   `json:"priceRange" yaml:"priceRange"`
	TourTypes          []string `json:"tourTypes" yaml:"tourTypes"`
	AccommodationTypes []string `json:"accommodationTypes" yaml:"accommodationTypes"`
	GroupSizes         []string `json:"groupSizes" yaml:"groupSizes"`
	Difficulty         []string `json:"difficulty" yaml:"difficulty"`
	Rating             int      `json:"rating" yaml:"rating"` // 0 = unset, else minimum stars
}

// Clone returns a deep copy so callers can mutate the result freely.
func (f FilterState) Clone() FilterState {
	clone := f
	clone.Destinations = slices.Clone(f.Destinations)
	clone.TourTypes = slices.Clone(f.TourTypes)
	clone.AccommodationTypes = slices.Clone(f.AccommodationTypes)
	clone.GroupSizes = slices.Clone(f.GroupSizes)
	clone.Difficulty = slices.Clone(f.Difficulty)
	return clone
}

// RangesValid reports whether both range fields satisfy min <= max.
func (f FilterState) RangesValid() bool {
	return f.Duration[0] <= f.Duration[1] && f.PriceRange[0] <= f.PriceRange[1]
}
