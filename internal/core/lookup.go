package core

import (
	"sort"
	"strings"

	"github.com/jmylchreest/tourkit/internal/model"
)

// LookupByID finds a tour by its ID.
// Returns nil if not found.
func LookupByID(tours []model.Tour, id string) *model.Tour {
	for i := range tours {
		if tours[i].ID == id {
			return &tours[i]
		}
	}
	return nil
}

// Search finds tours whose name or destination contains term.
// Case-insensitive substring match.
func Search(tours []model.Tour, term string) []model.Tour {
	if term == "" {
		return tours
	}

	term = strings.ToLower(term)
	var result []model.Tour

	for _, t := range tours {
		if strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(t.Destination), term) {
			result = append(result, t)
		}
	}

	return result
}

// UniqueDestinations returns a sorted list of destinations in the catalogue.
func UniqueDestinations(tours []model.Tour) []string {
	seen := make(map[string]bool)
	var dests []string

	for _, t := range tours {
		if t.Destination != "" && !seen[t.Destination] {
			seen[t.Destination] = true
			dests = append(dests, t.Destination)
		}
	}

	sort.Strings(dests)
	return dests
}
