package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/tourkit/internal/theme"
)

// PropertyFormat selects how theme properties are rendered.
type PropertyFormat string

const (
	PropertiesCSS   PropertyFormat = "css"
	PropertiesJSON  PropertyFormat = "json"
	PropertiesYAML  PropertyFormat = "yaml"
	PropertiesPlain PropertyFormat = "plain"
)

// ParsePropertyFormat parses a property format name.
func ParsePropertyFormat(s string) (PropertyFormat, error) {
	switch PropertyFormat(s) {
	case PropertiesCSS, PropertiesJSON, PropertiesYAML, PropertiesPlain:
		return PropertyFormat(s), nil
	case "":
		return PropertiesCSS, nil
	default:
		return "", fmt.Errorf("invalid format: %s (use css, json, yaml or plain)", s)
	}
}

// FormatProperties writes the properties a sink recorded. CSS output renders
// the sink's stylesheet; the other formats list properties and mode classes.
func FormatProperties(w io.Writer, sink *theme.CSSSink, format PropertyFormat) error {
	switch format {
	case PropertiesJSON:
		return writeJSON(w, propertyDoc(sink))
	case PropertiesYAML:
		return writeYAML(w, propertyDoc(sink))
	case PropertiesPlain:
		for _, p := range sink.Properties() {
			if _, err := fmt.Fprintf(w, "%s %s\n", p.Key, p.Value); err != nil {
				return err
			}
		}
		return nil
	default:
		return sink.Render(w)
	}
}

type propertiesDocument struct {
	Classes    []string         `json:"classes" yaml:"classes"`
	Properties []theme.Property `json:"properties" yaml:"properties"`
}

func propertyDoc(sink *theme.CSSSink) propertiesDocument {
	doc := propertiesDocument{
		Classes:    sink.Classes(),
		Properties: sink.Properties(),
	}
	if doc.Classes == nil {
		doc.Classes = []string{}
	}
	if doc.Properties == nil {
		doc.Properties = []theme.Property{}
	}
	return doc
}
