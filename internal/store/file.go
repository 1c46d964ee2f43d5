// Package store provides the theme config sources and on-disk state for
// tourkit: files, HTTP endpoints, a versioned SQLite store, the tour
// catalogue and the persisted sidebar state.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tourkit/internal/model"
)

// Format is an on-disk encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q (use .toml, .yaml or .json)", filepath.Ext(path))
	}
}

// Decode parses data in the given format into v.
func Decode(format Format, data []byte, v any) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatJSON:
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// Encode serialises v in the given format.
func Encode(format Format, v any) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(v)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FileSource reads a ThemeConfig from a TOML, YAML or JSON file.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// GetThemeConfig implements theme.Source.
func (s *FileSource) GetThemeConfig(ctx context.Context) (*model.ThemeConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatFromPath(s.Path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var cfg model.ThemeConfig
	if err := Decode(format, data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme file %s: %w", s.Path, err)
	}
	return &cfg, nil
}

// SaveThemeFile writes cfg to path, choosing the encoding from the extension.
// The write goes through a temp file so watchers never see a partial file.
func SaveThemeFile(path string, cfg *model.ThemeConfig) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Encode(format, cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal theme config: %w", err)
	}

	return writeAtomic(path, data, 0644)
}

// writeAtomic writes data to path via a temp file and rename.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}

	return os.Rename(tmpPath, path)
}
