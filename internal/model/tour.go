package model

import (
	"errors"
	"fmt"
)

// Tour is a single entry in the tour catalogue.
type Tour struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Destination   string  `json:"destination" yaml:"destination"`
	DurationDays  int     `json:"durationDays" yaml:"durationDays"`
	Price         int     `json:"price" yaml:"price"`
	TourType      string  `json:"tourType" yaml:"tourType"`
	Accommodation string  `json:"accommodation" yaml:"accommodation"`
	GroupSize     string  `json:"groupSize" yaml:"groupSize"`
	Difficulty    string  `json:"difficulty" yaml:"difficulty"`
	Rating        float64 `json:"rating" yaml:"rating"`
}

// Validation errors.
var (
	ErrEmptyTourID   = errors.New("tour id cannot be empty")
	ErrEmptyTourName = errors.New("tour name cannot be empty")
	ErrInvalidDays   = errors.New("durationDays must be greater than 0")
	ErrInvalidPrice  = errors.New("price cannot be negative")
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
)

// Validate checks that the tour has all required fields.
func (t *Tour) Validate() error {
	if t.ID == "" {
		return ErrEmptyTourID
	}
	if t.Name == "" {
		return fmt.Errorf("%w (id %s)", ErrEmptyTourName, t.ID)
	}
	if t.DurationDays <= 0 {
		return ErrInvalidDays
	}
	if t.Price < 0 {
		return ErrInvalidPrice
	}
	if t.Rating < 0 || t.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
