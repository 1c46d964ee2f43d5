package theme

import (
	"time"

	"github.com/jmylchreest/tourkit/internal/colour"
	"github.com/jmylchreest/tourkit/internal/model"
)

// Muted foreground values per mode. They are fixed rather than derived from
// the palette so body copy keeps its contrast whatever muted is set to.
const (
	MutedForegroundLight = "25 5.3% 44.7%"
	MutedForegroundDark  = "24 5.4% 63.9%"
)

// Fixed values independent of the palette.
const (
	DestructiveValue = "0 84.2% 60.2%"
	RadiusValue      = "0.5rem"
)

// BrandColors are the safari accent colours used by the public pages. They
// do not change with the palette or the mode.
var BrandColors = []Property{
	{Key: "--safari-orange", Value: "25 95% 53%"},
	{Key: "--safari-brown", Value: "30 40% 25%"},
	{Key: "--safari-gold", Value: "45 93% 58%"},
	{Key: "--safari-green", Value: "120 40% 25%"},
	{Key: "--safari-red", Value: "0 70% 50%"},
	{Key: "--safari-cream", Value: "45 25% 90%"},
	{Key: "--safari-charcoal", Value: "0 0% 20%"},
}

// Mode marker classes.
const (
	ClassLight = "theme-light"
	ClassDark  = "theme-dark"
)

// ModeClass returns the marker class for a mode.
func ModeClass(mode model.Mode) string {
	if mode == model.ModeDark {
		return ClassDark
	}
	return ClassLight
}

// Property is a single CSS custom property.
type Property struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// aliases maps derived keys to the palette role they copy.
var aliases = []struct {
	key  string
	role string
}{
	{"--card", "background"},
	{"--card-foreground", "text"},
	{"--popover", "background"},
	{"--popover-foreground", "text"},
	{"--border", "muted"},
	{"--input", "muted"},
	{"--ring", "primary"},
}

// Variables returns the properties written for a palette, in write order.
func Variables(colors model.ThemeColors, mode model.Mode) []Property {
	hsl := func(role string) string {
		v, _ := colors.Role(role)
		return colour.HexToHSLString(v)
	}

	props := []Property{
		{Key: "--primary", Value: hsl("primary")},
		{Key: "--secondary", Value: hsl("secondary")},
		{Key: "--accent", Value: hsl("accent")},
		{Key: "--background", Value: hsl("background")},
		{Key: "--foreground", Value: hsl("text")},
		{Key: "--muted", Value: hsl("muted")},
	}

	if mode == model.ModeDark {
		props = append(props, Property{Key: "--muted-foreground", Value: MutedForegroundDark})
	} else {
		props = append(props, Property{Key: "--muted-foreground", Value: MutedForegroundLight})
	}

	for _, a := range aliases {
		props = append(props, Property{Key: a.key, Value: hsl(a.role)})
	}

	props = append(props,
		Property{Key: "--destructive", Value: DestructiveValue},
		Property{Key: "--destructive-foreground", Value: hsl("background")},
		Property{Key: "--radius", Value: RadiusValue},
	)

	return append(props, BrandColors...)
}

// DefaultColors returns the built-in light palette.
func DefaultColors() model.ThemeColors {
	return model.ThemeColors{
		Primary:    "#D97706",
		Secondary:  "#78350F",
		Accent:     "#F59E0B",
		Background: "#FFFFFF",
		Text:       "#1C1917",
		Muted:      "#F5F5F4",
	}
}

// DefaultDarkColors returns the built-in dark palette.
func DefaultDarkColors() model.ThemeColors {
	return model.ThemeColors{
		Primary:    "#F59E0B",
		Secondary:  "#92400E",
		Accent:     "#FBBF24",
		Background: "#1C1917",
		Text:       "#FAFAF9",
		Muted:      "#292524",
	}
}

// DefaultColorsFor returns the built-in palette for a mode.
func DefaultColorsFor(mode model.Mode) model.ThemeColors {
	if mode == model.ModeDark {
		return DefaultDarkColors()
	}
	return DefaultColors()
}

// FallbackConfig builds the config substituted when loading fails.
func FallbackConfig() *model.ThemeConfig {
	now := time.Now()
	return &model.ThemeConfig{
		Light:     DefaultColors(),
		Dark:      DefaultDarkColors(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: "system",
		Version:   1,
	}
}
