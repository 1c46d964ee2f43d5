package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tourkit/internal/model"
)

// YAMLFormatter formats tours as a YAML catalogue, readable by store.LoadTours.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes tours under a top-level "tours" key.
func (f *YAMLFormatter) Format(w io.Writer, tours []model.Tour) error {
	if tours == nil {
		tours = []model.Tour{}
	}
	return writeYAML(w, struct {
		Tours []model.Tour `yaml:"tours"`
	}{tours})
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
