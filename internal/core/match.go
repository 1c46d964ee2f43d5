package core

import (
	"slices"

	"github.com/jmylchreest/tourkit/internal/model"
)

// Match reports whether a tour satisfies every active criterion. Empty sets
// do not constrain; a set with items requires the tour's attribute to be one
// of them.
func Match(t model.Tour, state model.FilterState) bool {
	if !matchSet(state.Destinations, t.Destination) {
		return false
	}
	if !matchSet(state.TourTypes, t.TourType) {
		return false
	}
	if !matchSet(state.AccommodationTypes, t.Accommodation) {
		return false
	}
	if !matchSet(state.GroupSizes, t.GroupSize) {
		return false
	}
	if !matchSet(state.Difficulty, t.Difficulty) {
		return false
	}

	if t.DurationDays < state.Duration[0] || t.DurationDays > state.Duration[1] {
		return false
	}
	if t.Price < state.PriceRange[0] || t.Price > state.PriceRange[1] {
		return false
	}

	if state.Rating > 0 && t.Rating < float64(state.Rating) {
		return false
	}
	return true
}

// Apply returns the tours matching state, preserving catalogue order.
func Apply(tours []model.Tour, state model.FilterState) []model.Tour {
	result := make([]model.Tour, 0, len(tours))
	for _, t := range tours {
		if Match(t, state) {
			result = append(result, t)
		}
	}
	return result
}

// FacetCounts counts matching tours per option of a set field, evaluated as
// if that field's own selection were empty. This is what a sidebar shows next
// to each checkbox.
func FacetCounts(tours []model.Tour, state model.FilterState, field Field) map[string]int {
	counts := make(map[string]int)
	if !field.IsSet() {
		return counts
	}

	relaxed, _ := Update(state, field, []string{})
	for _, t := range Apply(tours, relaxed) {
		counts[tourAttr(t, field)]++
	}
	return counts
}

func matchSet(selected []string, value string) bool {
	return len(selected) == 0 || slices.Contains(selected, value)
}

func tourAttr(t model.Tour, field Field) string {
	switch field {
	case FieldDestinations:
		return t.Destination
	case FieldTourTypes:
		return t.TourType
	case FieldAccommodationTypes:
		return t.Accommodation
	case FieldGroupSizes:
		return t.GroupSize
	case FieldDifficulty:
		return t.Difficulty
	default:
		return ""
	}
}
