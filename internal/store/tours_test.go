package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tourkit/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTours(t *testing.T) {
	path := writeFile(t, "tours.yaml", `
tours:
  - id: gorilla-3
    name: Bwindi Gorilla Trek
    destination: Uganda
    durationDays: 3
    price: 1800
    tourType: Gorilla trekking
    accommodation: Mid-range
    groupSize: Small group
    difficulty: Challenging
    rating: 4.8
  - id: mara-7
    name: Masai Mara Migration
    destination: Kenya
    durationDays: 7
    price: 3400
    tourType: Wildlife
    accommodation: Luxury
    groupSize: Private
    difficulty: Easy
    rating: 4.5
`)

	tours, err := LoadTours(path)
	require.NoError(t, err)
	require.Len(t, tours, 2)

	assert.Equal(t, model.Tour{
		ID:            "gorilla-3",
		Name:          "Bwindi Gorilla Trek",
		Destination:   "Uganda",
		DurationDays:  3,
		Price:         1800,
		TourType:      "Gorilla trekking",
		Accommodation: "Mid-range",
		GroupSize:     "Small group",
		Difficulty:    "Challenging",
		Rating:        4.8,
	}, tours[0])
	assert.Equal(t, "mara-7", tours[1].ID)
}

func TestLoadTours_JSON(t *testing.T) {
	path := writeFile(t, "tours.json", `{"tours": [
		{"id": "a", "name": "A", "destination": "Rwanda", "durationDays": 2, "price": 900, "rating": 3}
	]}`)

	tours, err := LoadTours(path)
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, "Rwanda", tours[0].Destination)
}

func TestLoadTours_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "missing id",
			file:    "tours.yaml",
			content: "tours:\n  - name: A\n    durationDays: 2\n",
			wantErr: model.ErrEmptyTourID,
		},
		{
			name:    "zero days",
			file:    "tours.yaml",
			content: "tours:\n  - id: a\n    name: A\n",
			wantErr: model.ErrInvalidDays,
		},
		{
			name:    "duplicate id",
			file:    "tours.yaml",
			content: "tours:\n  - id: a\n    name: A\n    durationDays: 1\n  - id: a\n    name: B\n    durationDays: 2\n",
		},
		{
			name:    "bad yaml",
			file:    "tours.yaml",
			content: "tours: [",
		},
		{
			name:    "bad extension",
			file:    "tours.csv",
			content: "id,name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTours(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadTours_SampleCatalogue(t *testing.T) {
	tours, err := LoadTours(filepath.Join("..", "..", "testdata", "tours.yaml"))
	require.NoError(t, err)
	assert.Len(t, tours, 6)

	for _, tour := range tours {
		assert.NotEmpty(t, tour.Destination, tour.ID)
	}
}
