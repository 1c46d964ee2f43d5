package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
)

// sectionTitles are the headings shown for each sidebar panel.
var sectionTitles = map[core.Section]string{
	core.SectionDestinations:  "Destinations",
	core.SectionDuration:      "Duration",
	core.SectionPrice:         "Price range",
	core.SectionTourTypes:     "Tour type",
	core.SectionAccommodation: "Accommodation",
	core.SectionGroupSize:     "Group size",
	core.SectionDifficulty:    "Difficulty",
	core.SectionRating:        "Rating",
}

// SectionTitle returns the heading of a sidebar panel.
func SectionTitle(s core.Section) string {
	if title, ok := sectionTitles[s]; ok {
		return title
	}
	return string(s)
}

// FormatSidebar writes a text rendition of the filter sidebar: every panel
// with its open/closed marker, and the options of open panels with their
// checked state. Collapsed panels show a selection count only.
func FormatSidebar(w io.Writer, state model.FilterState, expanded core.ExpandedSections) error {
	var sb strings.Builder

	for _, sec := range core.Sections() {
		open := expanded.IsExpanded(sec)
		marker := "▸"
		if open {
			marker = "▾"
		}
		field := core.SectionField(sec)

		switch {
		case field.IsRange():
			sb.WriteString(fmt.Sprintf("%s %s: %s\n", marker, SectionTitle(sec), rangeLabel(state, field)))
		case field == core.FieldRating:
			sb.WriteString(fmt.Sprintf("%s %s: %s\n", marker, SectionTitle(sec), core.RatingLabel(state.Rating)))
			if open {
				for _, r := range core.RatingOptions {
					sb.WriteString(fmt.Sprintf("    %s %s\n", checkbox(state.Rating == r), core.RatingLabel(r)))
				}
			}
		default:
			selected := core.Values(state, field)
			sb.WriteString(fmt.Sprintf("%s %s", marker, SectionTitle(sec)))
			if len(selected) > 0 {
				sb.WriteString(fmt.Sprintf(" (%d selected)", len(selected)))
			}
			sb.WriteString("\n")
			if open {
				options := core.Options(field)
				for _, opt := range options {
					sb.WriteString(fmt.Sprintf("    %s %s\n", checkbox(slices.Contains(selected, opt)), opt))
				}
				// Items toggled outside the catalogue are still shown.
				for _, item := range selected {
					if !slices.Contains(options, item) {
						sb.WriteString(fmt.Sprintf("    %s %s\n", checkbox(true), item))
					}
				}
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\nActive filters: %d\n", core.ActiveCount(state)))

	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatFilterState writes the state as JSON or YAML with the web client's keys.
func FormatFilterState(w io.Writer, state model.FilterState, format FormatType) error {
	state = normaliseSets(state)
	if format == FormatYAML {
		return writeYAML(w, state)
	}
	return writeJSON(w, state)
}

func rangeLabel(state model.FilterState, field core.Field) string {
	if field == core.FieldDuration {
		return fmt.Sprintf("%s - %s", core.DaysLabel(state.Duration[0]), core.DaysLabel(state.Duration[1]))
	}
	return fmt.Sprintf("%s - %s", core.PriceLabel(state.PriceRange[0]), core.PriceLabel(state.PriceRange[1]))
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// normaliseSets replaces nil sets with empty ones so JSON shows [] not null.
func normaliseSets(state model.FilterState) model.FilterState {
	state = state.Clone()
	for _, p := range []*[]string{
		&state.Destinations, &state.TourTypes, &state.AccommodationTypes,
		&state.GroupSizes, &state.Difficulty,
	} {
		if *p == nil {
			*p = []string{}
		}
	}
	return state
}
