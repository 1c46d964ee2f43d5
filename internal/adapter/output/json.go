package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/tourkit/internal/model"
)

// JSONFormatter formats tours as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes tours as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, tours []model.Tour) error {
	if tours == nil {
		tours = []model.Tour{}
	}
	return writeJSON(w, tours)
}

// FormatSingle writes a single tour as JSON.
func (f *JSONFormatter) FormatSingle(w io.Writer, t *model.Tour) error {
	return writeJSON(w, t)
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
