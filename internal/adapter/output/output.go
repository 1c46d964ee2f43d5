// Package output provides output formatters for tours, filter state and
// theme properties.
package output

import (
	"io"

	"github.com/jmylchreest/tourkit/internal/model"
)

// Formatter formats tours for output.
type Formatter interface {
	// Format writes formatted tours to the writer.
	Format(w io.Writer, tours []model.Tour) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatDmenu FormatType = "dmenu"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatPlain FormatType = "plain"
	FormatIDs   FormatType = "ids"
)

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter()
	case FormatIDs:
		return NewIDsFormatter()
	case FormatDmenu:
		return NewDmenuFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template   string // Custom template for dmenu/plain format
	ShowIndex  bool   // Show 1-based index prefix
	ShowRating bool   // Show the star rating
	NameMaxLen int    // Maximum name length (0 = unlimited)
	Separator  string // Field separator for dmenu format
}

// DefaultFormatterOptions returns sensible defaults for listing output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex:  true,
		ShowRating: true,
		NameMaxLen: 60,
		Separator:  " | ",
	}
}
