package core

import (
	"fmt"
	"strings"
)

// Section identifies a collapsible panel of the filter sidebar.
type Section string

const (
	SectionDestinations  Section = "destinations"
	SectionDuration      Section = "duration"
	SectionPrice         Section = "price"
	SectionTourTypes     Section = "tourTypes"
	SectionAccommodation Section = "accommodation"
	SectionGroupSize     Section = "groupSize"
	SectionDifficulty    Section = "difficulty"
	SectionRating        Section = "rating"
)

// Sections returns every section in sidebar order.
func Sections() []Section {
	return []Section{
		SectionDestinations,
		SectionDuration,
		SectionPrice,
		SectionTourTypes,
		SectionAccommodation,
		SectionGroupSize,
		SectionDifficulty,
		SectionRating,
	}
}

// ExpandedSections records which sidebar panels are open.
type ExpandedSections map[Section]bool

// DefaultExpandedSections opens the first four panels and collapses the rest.
func DefaultExpandedSections() ExpandedSections {
	return ExpandedSections{
		SectionDestinations:  true,
		SectionDuration:      true,
		SectionPrice:         true,
		SectionTourTypes:     true,
		SectionAccommodation: false,
		SectionGroupSize:     false,
		SectionDifficulty:    false,
		SectionRating:        false,
	}
}

// Toggle returns a copy with exactly one flag flipped.
func (e ExpandedSections) Toggle(s Section) ExpandedSections {
	next := make(ExpandedSections, len(e))
	for k, v := range e {
		next[k] = v
	}
	next[s] = !e[s]
	return next
}

// IsExpanded reports whether a panel is open.
func (e ExpandedSections) IsExpanded(s Section) bool {
	return e[s]
}

// ParseSection parses a section name, case-insensitively.
func ParseSection(s string) (Section, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, sec := range Sections() {
		if strings.ToLower(string(sec)) == needle {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown section: %s", s)
}

// SectionField maps a panel to the filter field it edits.
func SectionField(s Section) Field {
	switch s {
	case SectionDestinations:
		return FieldDestinations
	case SectionDuration:
		return FieldDuration
	case SectionPrice:
		return FieldPriceRange
	case SectionTourTypes:
		return FieldTourTypes
	case SectionAccommodation:
		return FieldAccommodationTypes
	case SectionGroupSize:
		return FieldGroupSizes
	case SectionDifficulty:
		return FieldDifficulty
	default:
		return FieldRating
	}
}
