// Package colour converts hex colour strings into the HSL triples used for
// CSS custom properties.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// hexColorRegex matches #RRGGBB or #RRGGBBAA, with or without the leading #.
var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{6})([0-9a-fA-F]{2})?$`)

// HSL is a colour in hue/saturation/lightness space.
// H is in degrees (0-360), S and L are fractions (0-1).
type HSL struct {
	H float64
	S float64
	L float64
}

// Black is returned for absent or unparseable input.
var Black = HSL{}

// String formats the colour as "<h> <s>% <l>%" with each component rounded
// to the nearest integer, the form CSS hsl() variables expect.
func (c HSL) String() string {
	hue := math.Round(c.H)
	saturation := math.Round(c.S * 100)
	lightness := math.Round(c.L * 100)
	return fmt.Sprintf("%d %d%% %d%%", int(hue), int(saturation), int(lightness))
}

// ValidHex reports whether s is a well-formed hex colour.
func ValidHex(s string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(s))
}

// ParseRGB parses a hex colour into channel values normalised to [0,1].
// An alpha pair, if present, is ignored.
func ParseRGB(hex string) (r, g, b float64, ok bool) {
	m := hexColorRegex.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return 0, 0, 0, false
	}
	digits := m[1]

	channel := func(i int) float64 {
		v, _ := strconv.ParseUint(digits[i:i+2], 16, 8)
		return float64(v) / 255
	}
	return channel(0), channel(2), channel(4), true
}

// HexToHSL converts a hex colour to HSL. Empty or malformed input yields
// Black rather than an error.
func HexToHSL(hex string) HSL {
	r, g, b, ok := ParseRGB(hex)
	if !ok {
		return Black
	}
	return rgbToHSL(r, g, b)
}

// HexToHSLString is shorthand for HexToHSL(hex).String().
func HexToHSLString(hex string) string {
	return HexToHSL(hex).String()
}

// rgbToHSL is the standard RGB to HSL conversion. The order of float
// operations is kept fixed so results are reproducible across clients.
func rgbToHSL(r, g, b float64) HSL {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))

	var h, s float64
	l := (maxC + minC) / 2

	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{H: h * 360, S: s, L: l}
}
