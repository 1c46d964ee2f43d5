package theme

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/tourkit/internal/model"
)

// EmbeddedPresets contains all bundled theme presets.
//
//go:embed themes/*.toml
var EmbeddedPresets embed.FS

// DefaultPresetName is the name of the built-in default preset.
const DefaultPresetName = "default"

// BundledPresets lists all embedded preset names.
var BundledPresets = []string{"default", "savanna"}

// GetPreset retrieves and parses a bundled preset by name.
func GetPreset(name string) (*model.ThemeConfig, bool) {
	data, err := EmbeddedPresets.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, false
	}

	var cfg model.ThemeConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, false
	}
	return &cfg, true
}

// ListPresets returns names of all embedded presets.
func ListPresets() []string {
	var presets []string

	entries, err := fs.ReadDir(EmbeddedPresets, "themes")
	if err != nil {
		return BundledPresets // Fallback to known list
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".toml" {
			presets = append(presets, strings.TrimSuffix(name, ext))
		}
	}

	return presets
}

// IsPreset checks if a preset name is bundled.
func IsPreset(name string) bool {
	_, found := GetPreset(name)
	return found
}

// PresetSource serves a bundled preset as a Source.
type PresetSource struct {
	Name string
}

// GetThemeConfig implements Source.
func (p PresetSource) GetThemeConfig(ctx context.Context) (*model.ThemeConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg, ok := GetPreset(p.Name)
	if !ok {
		return nil, fmt.Errorf("unknown theme preset: %s", p.Name)
	}
	return cfg, nil
}
