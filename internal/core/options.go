package core

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/tourkit/internal/model"
)

// Option lists offered by the sidebar checkboxes.
var (
	Destinations       = []string{"Uganda", "Tanzania", "Kenya", "Rwanda", "Botswana", "South Africa"}
	TourTypes          = []string{"Wildlife", "Gorilla trekking", "Cultural", "Adventure"}
	AccommodationTypes = []string{"Budget", "Mid-range", "Luxury"}
	GroupSizes         = []string{"Private", "Small group", "Large group"}
	DifficultyLevels   = []string{"Easy", "Moderate", "Challenging"}
	RatingOptions      = []int{4, 3, 2, 1}
)

// Slider steps.
const (
	DurationStep = 1
	PriceStep    = 100
)

// Options returns the checkbox options for a set field.
func Options(field Field) []string {
	switch field {
	case FieldDestinations:
		return slices.Clone(Destinations)
	case FieldTourTypes:
		return slices.Clone(TourTypes)
	case FieldAccommodationTypes:
		return slices.Clone(AccommodationTypes)
	case FieldGroupSizes:
		return slices.Clone(GroupSizes)
	case FieldDifficulty:
		return slices.Clone(DifficultyLevels)
	default:
		return nil
	}
}

// IsOption reports whether item is one of the offered options for field.
// Callers may still toggle arbitrary items; this only drives CLI warnings.
func IsOption(field Field, item string) bool {
	return slices.Contains(Options(field), item)
}

// DaysLabel renders a day count the way the sidebar does ("1 day", "5 days").
func DaysLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// PriceLabel renders a price with thousands separators ("$10,000").
func PriceLabel(price int) string {
	return "$" + humanize.Comma(int64(price))
}

// RatingLabel renders a minimum rating ("4+ stars"), or "any" when unset.
func RatingLabel(r int) string {
	if r == 0 {
		return "any"
	}
	return fmt.Sprintf("%d+ stars", r)
}

// InBounds reports whether both ranges sit inside the slider bounds.
func InBounds(state model.FilterState) bool {
	return state.Duration[0] >= model.MinDuration && state.Duration[1] <= model.MaxDuration &&
		state.PriceRange[0] >= model.MinPrice && state.PriceRange[1] <= model.MaxPrice
}
