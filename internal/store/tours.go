package store

import (
	"fmt"
	"os"

	"github.com/jmylchreest/tourkit/internal/model"
)

// tourCatalogue is the on-disk layout of a tour catalogue file.
type tourCatalogue struct {
	Tours []model.Tour `json:"tours" yaml:"tours" toml:"tours"`
}

// LoadTours reads a tour catalogue (YAML, JSON or TOML) and validates
// every entry. Duplicate IDs are rejected.
func LoadTours(path string) ([]model.Tour, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tour catalogue: %w", err)
	}

	var cat tourCatalogue
	if err := Decode(format, data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse tour catalogue %s: %w", path, err)
	}

	seen := make(map[string]bool, len(cat.Tours))
	for i := range cat.Tours {
		t := &cat.Tours[i]
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("tour %d: %w", i+1, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("tour %d: duplicate id %q", i+1, t.ID)
		}
		seen[t.ID] = true
	}

	return cat.Tours, nil
}
