package core

import (
	"sort"
	"strings"

	"github.com/jmylchreest/tourkit/internal/model"
)

// SortField represents a field to sort by.
type SortField string

const (
	SortByName     SortField = "name"
	SortByPrice    SortField = "price"
	SortByDuration SortField = "duration"
	SortByRating   SortField = "rating"
)

// SortOrder represents ascending or descending order.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortOptions specifies sorting criteria.
type SortOptions struct {
	Field SortField // Field to sort by
	Order SortOrder // Sort order (asc/desc)
}

// DefaultSortOptions returns default sort options (cheapest first).
func DefaultSortOptions() SortOptions {
	return SortOptions{
		Field: SortByPrice,
		Order: SortAsc,
	}
}

// Sort sorts tours in place based on the provided options.
func Sort(tours []model.Tour, opts SortOptions) {
	if len(tours) == 0 {
		return
	}

	less := func(a, b model.Tour) bool {
		switch opts.Field {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByDuration:
			return a.DurationDays < b.DurationDays
		case SortByRating:
			return a.Rating < b.Rating
		default:
			return a.Price < b.Price
		}
	}

	sort.SliceStable(tours, func(i, j int) bool {
		if opts.Order == SortDesc {
			return less(tours[j], tours[i])
		}
		return less(tours[i], tours[j])
	})
}

// ParseSortField parses a sort field string.
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name", "n":
		return SortByName, nil
	case "price", "p":
		return SortByPrice, nil
	case "duration", "days", "d":
		return SortByDuration, nil
	case "rating", "stars", "r":
		return SortByRating, nil
	default:
		return SortByPrice, nil
	}
}

// ParseSortOrder parses a sort order string.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "a":
		return SortAsc, nil
	case "desc", "descending", "d":
		return SortDesc, nil
	default:
		return SortAsc, nil
	}
}
