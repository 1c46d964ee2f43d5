// Package model defines the core data structures for tourkit.
package model

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/tourkit/internal/colour"
)

// Mode selects one palette of a ThemeConfig.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Modes returns all valid modes.
func Modes() []Mode {
	return []Mode{ModeLight, ModeDark}
}

// ParseMode parses a mode name. An empty string means light.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light", "l":
		return ModeLight, nil
	case "dark", "d":
		return ModeDark, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (use light or dark)", s)
	}
}

// ThemeColors is one palette: the six semantic colour roles as hex strings.
type ThemeColors struct {
	Primary    string `json:"primary" toml:"primary" yaml:"primary"`
	Secondary  string `json:"secondary" toml:"secondary" yaml:"secondary"`
	Accent     string `json:"accent" toml:"accent" yaml:"accent"`
	Background string `json:"background" toml:"background" yaml:"background"`
	Text       string `json:"text" toml:"text" yaml:"text"`
	Muted      string `json:"muted" toml:"muted" yaml:"muted"`
}

// RoleNames lists the palette roles in their canonical order.
var RoleNames = []string{"primary", "secondary", "accent", "background", "text", "muted"}

// Role returns the hex value of a role by name.
func (c ThemeColors) Role(name string) (string, bool) {
	switch name {
	case "primary":
		return c.Primary, true
	case "secondary":
		return c.Secondary, true
	case "accent":
		return c.Accent, true
	case "background":
		return c.Background, true
	case "text", "foreground":
		return c.Text, true
	case "muted":
		return c.Muted, true
	default:
		return "", false
	}
}

// Key returns a stable serialisation of the palette. Fields are emitted in
// a fixed order so equal palettes always produce equal keys.
func (c ThemeColors) Key() string {
	return strings.Join([]string{c.Primary, c.Secondary, c.Accent, c.Background, c.Text, c.Muted}, "|")
}

// Validate checks that every role holds a well-formed hex colour.
func (c ThemeColors) Validate() error {
	for _, role := range RoleNames {
		v, _ := c.Role(role)
		if !colour.ValidHex(v) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidColour, role, v)
		}
	}
	return nil
}

// ThemeConfig holds the light and dark palettes published for the site.
type ThemeConfig struct {
	ID        string      `json:"id,omitempty" toml:"id,omitempty" yaml:"id,omitempty"`
	Light     ThemeColors `json:"light" toml:"light" yaml:"light"`
	Dark      ThemeColors `json:"dark" toml:"dark" yaml:"dark"`
	IsActive  bool        `json:"isActive" toml:"is_active" yaml:"isActive"`
	CreatedAt time.Time   `json:"createdAt" toml:"created_at" yaml:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt" toml:"updated_at" yaml:"updatedAt"`
	CreatedBy string      `json:"createdBy" toml:"created_by" yaml:"createdBy"`
	Version   int         `json:"version" toml:"version" yaml:"version"`
}

// Validation errors.
var (
	ErrInvalidColour  = errors.New("invalid colour")
	ErrEmptyCreatedBy = errors.New("created_by cannot be empty")
	ErrInvalidVersion = errors.New("version must be greater than 0")
)

// NewThemeConfig creates an active ThemeConfig with a generated ULID.
func NewThemeConfig(light, dark ThemeColors, createdBy string) (*ThemeConfig, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	now := time.Now()
	return &ThemeConfig{
		ID:        id.String(),
		Light:     light,
		Dark:      dark,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: createdBy,
		Version:   1,
	}, nil
}

// Colors returns the palette for a mode. Unknown modes get the light palette.
func (c *ThemeConfig) Colors(mode Mode) ThemeColors {
	if mode == ModeDark {
		return c.Dark
	}
	return c.Light
}

// Validate checks that the config can be published.
func (c *ThemeConfig) Validate() error {
	if err := c.Light.Validate(); err != nil {
		return fmt.Errorf("light: %w", err)
	}
	if err := c.Dark.Validate(); err != nil {
		return fmt.Errorf("dark: %w", err)
	}
	if c.CreatedBy == "" {
		return ErrEmptyCreatedBy
	}
	if c.Version <= 0 {
		return ErrInvalidVersion
	}
	return nil
}
