// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
	"github.com/jmylchreest/tourkit/internal/theme"
)

// SourceType selects where theme configs are loaded from.
type SourceType string

const (
	SourcePreset SourceType = "preset"
	SourceFile   SourceType = "file"
	SourceHTTP   SourceType = "http"
	SourceSQLite SourceType = "sqlite"
)

// ValidSourceTypes returns all supported theme source types.
func ValidSourceTypes() []SourceType {
	return []SourceType{SourcePreset, SourceFile, SourceHTTP, SourceSQLite}
}

// Default configuration values.
const (
	DefaultPreset       = "default"
	DefaultSelector     = ":root"
	DefaultFetchTimeout = Duration(10 * time.Second)
	DefaultDebounce     = Duration(200 * time.Millisecond)
	DefaultHistoryLimit = 20
)

// Config represents the tourkit configuration.
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Output  OutputConfig  `toml:"output"`
	Tours   ToursConfig   `toml:"tours"`
	Sort    SortConfig    `toml:"sort"`
	Watch   WatchConfig   `toml:"watch"`
	Publish PublishConfig `toml:"publish"`
}

// ThemeConfig selects and configures the theme source.
type ThemeConfig struct {
	Source       SourceType `toml:"source"`        // preset, file, http, sqlite
	Preset       string     `toml:"preset"`        // Bundled preset name (source = preset)
	Path         string     `toml:"path"`          // Theme file (source = file)
	URL          string     `toml:"url"`           // JSON endpoint (source = http)
	Database     string     `toml:"database"`      // Empty = data dir default (source = sqlite)
	Mode         string     `toml:"mode"`          // light, dark
	FetchTimeout Duration   `toml:"fetch_timeout"` // Per-load timeout
}

// OutputConfig controls where generated CSS is written.
type OutputConfig struct {
	CSSPath  string `toml:"css_path"` // Empty = stdout
	Selector string `toml:"selector"` // Rule selector, mode class is appended
}

// ToursConfig points at the tour catalogue.
type ToursConfig struct {
	Path string `toml:"path"` // YAML, JSON or TOML catalogue
}

// SortConfig holds default sorting options for tour listings.
type SortConfig struct {
	Field string `toml:"field"` // name, price, duration, rating
	Order string `toml:"order"` // asc, desc
}

// WatchConfig controls theme hot reload.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// PublishConfig holds defaults for publishing theme versions.
type PublishConfig struct {
	Author       string `toml:"author"`        // Empty = $USER
	HistoryLimit int    `toml:"history_limit"` // Versions listed by theme history
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Source:       SourcePreset,
			Preset:       DefaultPreset,
			Mode:         string(model.ModeLight),
			FetchTimeout: DefaultFetchTimeout,
		},
		Output: OutputConfig{
			Selector: DefaultSelector,
		},
		Sort: SortConfig{
			Field: string(core.SortByPrice),
			Order: string(core.SortAsc),
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
		Publish: PublishConfig{
			HistoryLimit: DefaultHistoryLimit,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tourkit", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tourkit")
}

// StatePath returns the path to the persisted sidebar state.
func StatePath() string {
	return filepath.Join(DataPath(), "sidebar.json")
}

// ThemeDBPath returns the default path of the versioned theme database.
func ThemeDBPath() string {
	return filepath.Join(DataPath(), "themes.db")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.Theme.Path = expandPath(cfg.Theme.Path)
	cfg.Theme.Database = expandPath(cfg.Theme.Database)
	cfg.Output.CSSPath = expandPath(cfg.Output.CSSPath)
	cfg.Tours.Path = expandPath(cfg.Tours.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Rename(tmpPath, path)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Theme.Source {
	case SourcePreset:
		if !theme.IsPreset(c.Theme.Preset) {
			return fmt.Errorf("unknown preset %q, must be one of: %v", c.Theme.Preset, theme.ListPresets())
		}
	case SourceFile:
		if c.Theme.Path == "" {
			return errors.New("theme.path is required when theme.source is \"file\"")
		}
	case SourceHTTP:
		if !strings.HasPrefix(c.Theme.URL, "http://") && !strings.HasPrefix(c.Theme.URL, "https://") {
			return fmt.Errorf("theme.url must be an http(s) URL, got %q", c.Theme.URL)
		}
	case SourceSQLite:
	default:
		return fmt.Errorf("invalid theme source %q, must be one of: %v", c.Theme.Source, ValidSourceTypes())
	}

	if _, err := model.ParseMode(c.Theme.Mode); err != nil {
		return err
	}
	if c.Theme.FetchTimeout < 0 {
		return fmt.Errorf("fetch_timeout cannot be negative, got %s", c.Theme.FetchTimeout.Duration())
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("debounce cannot be negative, got %s", c.Watch.Debounce.Duration())
	}
	if c.Publish.HistoryLimit < 0 {
		return fmt.Errorf("history_limit cannot be negative, got %d", c.Publish.HistoryLimit)
	}

	return nil
}

// Mode returns the configured palette mode.
func (c *Config) Mode() model.Mode {
	mode, err := model.ParseMode(c.Theme.Mode)
	if err != nil {
		return model.ModeLight
	}
	return mode
}

// SortOptions returns the default tour ordering.
func (c *Config) SortOptions() core.SortOptions {
	field, _ := core.ParseSortField(c.Sort.Field)
	order, _ := core.ParseSortOrder(c.Sort.Order)
	return core.SortOptions{Field: field, Order: order}
}

// DatabasePath returns the theme database path, falling back to the data dir.
func (c *Config) DatabasePath() string {
	if c.Theme.Database != "" {
		return c.Theme.Database
	}
	return ThemeDBPath()
}

// Author returns the name recorded on published theme versions.
func (c *Config) Author() string {
	if c.Publish.Author != "" {
		return c.Publish.Author
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "system"
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	path := DataPath()
	if path == "" {
		return errors.New("unable to determine data directory")
	}
	return os.MkdirAll(path, 0755)
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
