// Package core provides filtering, sorting, and lookup logic for the tour
// listing: the filter state transitions driven by the sidebar and the
// matching of tours against the resulting criteria.
package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jmylchreest/tourkit/internal/model"
)

// Field names a FilterState field.
type Field string

const (
	FieldDestinations       Field = "destinations"
	FieldDuration           Field = "duration"
	FieldPriceRange         Field = "priceRange"
	FieldTourTypes          Field = "tourTypes"
	FieldAccommodationTypes Field = "accommodationTypes"
	FieldGroupSizes         Field = "groupSizes"
	FieldDifficulty         Field = "difficulty"
	FieldRating             Field = "rating"
)

// Fields returns every filter field in sidebar order.
func Fields() []Field {
	return []Field{
		FieldDestinations,
		FieldDuration,
		FieldPriceRange,
		FieldTourTypes,
		FieldAccommodationTypes,
		FieldGroupSizes,
		FieldDifficulty,
		FieldRating,
	}
}

// IsSet reports whether the field holds a set of strings.
func (f Field) IsSet() bool {
	switch f {
	case FieldDestinations, FieldTourTypes, FieldAccommodationTypes, FieldGroupSizes, FieldDifficulty:
		return true
	default:
		return false
	}
}

// IsRange reports whether the field holds a [min, max] pair.
func (f Field) IsRange() bool {
	return f == FieldDuration || f == FieldPriceRange
}

// ParseField parses a field name. Accepts the canonical camelCase names as
// well as snake_case, kebab-case and a few short aliases.
func ParseField(s string) (Field, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalized)

	switch normalized {
	case "destinations", "destination", "dest":
		return FieldDestinations, nil
	case "duration", "days":
		return FieldDuration, nil
	case "pricerange", "price":
		return FieldPriceRange, nil
	case "tourtypes", "tourtype", "type":
		return FieldTourTypes, nil
	case "accommodationtypes", "accommodation":
		return FieldAccommodationTypes, nil
	case "groupsizes", "groupsize", "group":
		return FieldGroupSizes, nil
	case "difficulty":
		return FieldDifficulty, nil
	case "rating", "stars":
		return FieldRating, nil
	default:
		return "", fmt.Errorf("unknown filter field: %s", s)
	}
}

// Default returns the filter state with nothing selected and both ranges at
// their full extent.
func Default() model.FilterState {
	return model.FilterState{
		Destinations:       []string{},
		Duration:           [2]int{model.MinDuration, model.MaxDuration},
		PriceRange:         [2]int{model.MinPrice, model.MaxPrice},
		TourTypes:          []string{},
		AccommodationTypes: []string{},
		GroupSizes:         []string{},
		Difficulty:         []string{},
		Rating:             0,
	}
}

// Clear resets every criterion. The result is always equal to Default.
func Clear() model.FilterState {
	return Default()
}

// Update returns a copy of state with exactly one field replaced by value.
// Set fields take []string, range fields take [2]int or a two-element []int,
// and rating takes an int. Range values are stored with min <= max.
func Update(state model.FilterState, field Field, value any) (model.FilterState, error) {
	next := state.Clone()

	if field.IsSet() {
		items, ok := value.([]string)
		if !ok {
			return state, fmt.Errorf("field %s expects []string, got %T", field, value)
		}
		setField(&next, field, slices.Clone(items))
		return next, nil
	}

	switch field {
	case FieldDuration, FieldPriceRange:
		r, err := toRange(value)
		if err != nil {
			return state, fmt.Errorf("field %s: %w", field, err)
		}
		if field == FieldDuration {
			next.Duration = r
		} else {
			next.PriceRange = r
		}
	case FieldRating:
		r, ok := value.(int)
		if !ok {
			return state, fmt.Errorf("field %s expects int, got %T", field, value)
		}
		next.Rating = r
	default:
		return state, fmt.Errorf("unknown filter field: %s", field)
	}

	return next, nil
}

// Toggle flips membership of item in a set field: it is appended when
// absent and every occurrence is removed when present. Toggling the same
// item twice restores the original set.
func Toggle(state model.FilterState, field Field, item string) (model.FilterState, error) {
	if !field.IsSet() {
		return state, fmt.Errorf("field %s is not a set", field)
	}
	current := getField(state, field)
	return Update(state, field, toggleItem(current, item))
}

// SetChecked applies checkbox semantics to a set field: checked adds item
// if it is absent, unchecked removes all occurrences of it.
func SetChecked(state model.FilterState, field Field, item string, checked bool) (model.FilterState, error) {
	if !field.IsSet() {
		return state, fmt.Errorf("field %s is not a set", field)
	}
	current := getField(state, field)
	contains := slices.Contains(current, item)

	switch {
	case checked && !contains:
		return Update(state, field, append(slices.Clone(current), item))
	case !checked && contains:
		return Update(state, field, removeItem(current, item))
	default:
		return state.Clone(), nil
	}
}

// SetRating selects r as the minimum star rating when checked, replacing
// any previous selection. Unchecking restores the unset value 0.
func SetRating(state model.FilterState, r int, checked bool) model.FilterState {
	if !checked {
		r = 0
	}
	next, _ := Update(state, FieldRating, r)
	return next
}

// ToggleRating selects r, or clears the rating when r is already selected.
func ToggleRating(state model.FilterState, r int) model.FilterState {
	return SetRating(state, r, state.Rating != r)
}

// SetDuration replaces the duration range in days.
func SetDuration(state model.FilterState, minDays, maxDays int) model.FilterState {
	next, _ := Update(state, FieldDuration, [2]int{minDays, maxDays})
	return next
}

// SetPriceRange replaces the price range.
func SetPriceRange(state model.FilterState, minPrice, maxPrice int) model.FilterState {
	next, _ := Update(state, FieldPriceRange, [2]int{minPrice, maxPrice})
	return next
}

// IsDefault reports whether no criterion is active.
func IsDefault(state model.FilterState) bool {
	return ActiveCount(state) == 0
}

// ActiveCount returns how many criteria narrow the listing: one per
// selected set item, one per range moved off its default, one for a rating.
func ActiveCount(state model.FilterState) int {
	count := 0
	for _, f := range Fields() {
		if f.IsSet() {
			count += len(getField(state, f))
		}
	}

	def := Default()
	if state.Duration != def.Duration {
		count++
	}
	if state.PriceRange != def.PriceRange {
		count++
	}
	if state.Rating != 0 {
		count++
	}
	return count
}

// Values returns the items selected in a set field.
func Values(state model.FilterState, field Field) []string {
	return slices.Clone(getField(state, field))
}

func getField(state model.FilterState, field Field) []string {
	switch field {
	case FieldDestinations:
		return state.Destinations
	case FieldTourTypes:
		return state.TourTypes
	case FieldAccommodationTypes:
		return state.AccommodationTypes
	case FieldGroupSizes:
		return state.GroupSizes
	case FieldDifficulty:
		return state.Difficulty
	default:
		return nil
	}
}

func setField(state *model.FilterState, field Field, items []string) {
	switch field {
	case FieldDestinations:
		state.Destinations = items
	case FieldTourTypes:
		state.TourTypes = items
	case FieldAccommodationTypes:
		state.AccommodationTypes = items
	case FieldGroupSizes:
		state.GroupSizes = items
	case FieldDifficulty:
		state.Difficulty = items
	}
}

func toggleItem(items []string, item string) []string {
	if slices.Contains(items, item) {
		return removeItem(items, item)
	}
	return append(slices.Clone(items), item)
}

func removeItem(items []string, item string) []string {
	result := make([]string, 0, len(items))
	for _, v := range items {
		if v != item {
			result = append(result, v)
		}
	}
	return result
}

// toRange converts a slider value to an ordered pair.
func toRange(value any) ([2]int, error) {
	var r [2]int
	switch v := value.(type) {
	case [2]int:
		r = v
	case []int:
		if len(v) != 2 {
			return r, fmt.Errorf("range expects 2 values, got %d", len(v))
		}
		r = [2]int{v[0], v[1]}
	default:
		return r, fmt.Errorf("range expects [2]int, got %T", value)
	}
	if r[0] > r[1] {
		r[0], r[1] = r[1], r[0]
	}
	return r, nil
}
