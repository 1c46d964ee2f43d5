package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/tourkit/internal/model"
)

// writesPerApply is the number of properties a single Apply writes.
const writesPerApply = 24

func primaryColors() model.ThemeColors {
	return model.ThemeColors{
		Primary:    "#FF0000",
		Secondary:  "#00FF00",
		Accent:     "#0000FF",
		Background: "#FFFFFF",
		Text:       "#000000",
		Muted:      "#808080",
	}
}

func TestApply_WritesConvertedRoles(t *testing.T) {
	sink := NewMemorySink()
	a := NewApplicator(sink, nil)

	require.True(t, a.Apply(primaryColors(), model.ModeLight))

	expected := map[string]string{
		"--primary":                "0 100% 50%",
		"--secondary":              "120 100% 50%",
		"--accent":                 "240 100% 50%",
		"--background":             "0 0% 100%",
		"--foreground":             "0 0% 0%",
		"--muted":                  "0 0% 50%",
		"--muted-foreground":       MutedForegroundLight,
		"--card":                   "0 0% 100%",
		"--card-foreground":        "0 0% 0%",
		"--popover":                "0 0% 100%",
		"--popover-foreground":     "0 0% 0%",
		"--border":                 "0 0% 50%",
		"--input":                  "0 0% 50%",
		"--ring":                   "0 100% 50%",
		"--destructive":            "0 84.2% 60.2%",
		"--destructive-foreground": "0 0% 100%",
		"--radius":                 "0.5rem",
		"--safari-orange":          "25 95% 53%",
		"--safari-charcoal":        "0 0% 20%",
	}

	for key, want := range expected {
		got, ok := sink.Get(key)
		assert.True(t, ok, "missing %s", key)
		assert.Equal(t, want, got, key)
	}
	assert.Equal(t, writesPerApply, sink.Writes())
	assert.Len(t, sink.Properties(), writesPerApply)
}

func TestApply_WriteOrder(t *testing.T) {
	sink := NewMemorySink()
	NewApplicator(sink, nil).Apply(primaryColors(), model.ModeLight)

	props := sink.Properties()
	require.Len(t, props, writesPerApply)
	assert.Equal(t, "--primary", props[0].Key)
	assert.Equal(t, "--muted-foreground", props[6].Key)
	assert.Equal(t, "--card", props[7].Key)
	assert.Equal(t, "--radius", props[16].Key)
	assert.Equal(t, "--safari-charcoal", props[len(props)-1].Key)
}

func TestApply_ModeMarkers(t *testing.T) {
	sink := NewMemorySink()
	a := NewApplicator(sink, nil)

	a.Apply(primaryColors(), model.ModeLight)
	assert.Equal(t, []string{ClassLight}, sink.Classes())

	a.Apply(primaryColors(), model.ModeDark)
	assert.Equal(t, []string{ClassDark}, sink.Classes())
	assert.False(t, sink.HasClass(ClassLight))

	v, _ := sink.Get("--muted-foreground")
	assert.Equal(t, MutedForegroundDark, v)
}

func TestApply_IdempotentForSamePair(t *testing.T) {
	sink := NewMemorySink()
	a := NewApplicator(sink, nil)

	assert.True(t, a.Apply(primaryColors(), model.ModeLight))
	assert.False(t, a.Apply(primaryColors(), model.ModeLight))
	assert.Equal(t, writesPerApply, sink.Writes(), "second apply must not write")

	// A different mode is a different pair.
	assert.True(t, a.Apply(primaryColors(), model.ModeDark))
	assert.Equal(t, 2*writesPerApply, sink.Writes())

	// Only the immediately preceding pair is remembered.
	assert.True(t, a.Apply(primaryColors(), model.ModeLight))
	assert.Equal(t, 3*writesPerApply, sink.Writes())

	changed := primaryColors()
	changed.Accent = "#123456"
	assert.True(t, a.Apply(changed, model.ModeLight))
	assert.Equal(t, 4*writesPerApply, sink.Writes())
}

func TestApply_Reset(t *testing.T) {
	sink := NewMemorySink()
	a := NewApplicator(sink, nil)

	a.Apply(primaryColors(), model.ModeLight)
	a.Reset()
	assert.True(t, a.Apply(primaryColors(), model.ModeLight))
	assert.Equal(t, 2*writesPerApply, sink.Writes())
}

func TestApply_MissingColoursDefaultToBlack(t *testing.T) {
	sink := NewMemorySink()
	NewApplicator(sink, nil).Apply(model.ThemeColors{Primary: "#FF0000"}, model.ModeLight)

	v, _ := sink.Get("--background")
	assert.Equal(t, "0 0% 0%", v)
	v, _ = sink.Get("--ring")
	assert.Equal(t, "0 100% 50%", v)
}

func TestApply_NilSink(t *testing.T) {
	a := NewApplicator(nil, nil)
	assert.False(t, a.Apply(primaryColors(), model.ModeLight))
}

func TestVariables_UnknownModeIsLight(t *testing.T) {
	props := Variables(primaryColors(), model.Mode("sepia"))
	for _, p := range props {
		if p.Key == "--muted-foreground" {
			assert.Equal(t, MutedForegroundLight, p.Value)
		}
	}
	assert.Equal(t, ClassLight, ModeClass(model.Mode("sepia")))
}

func TestCSSSink_Render(t *testing.T) {
	sink := NewCSSSink("")
	NewApplicator(sink, nil).Apply(primaryColors(), model.ModeDark)

	var buf bytes.Buffer
	require.NoError(t, sink.Render(&buf))
	css := buf.String()

	assert.True(t, strings.HasPrefix(css, "/* classes: theme-dark */\n:root {\n"))
	assert.Contains(t, css, "  --primary: 0 100% 50%;\n")
	assert.Contains(t, css, "  --muted-foreground: 24 5.4% 63.9%;\n")
	assert.True(t, strings.HasSuffix(css, "}\n"))
	assert.Equal(t, strings.Count(css, "{"), strings.Count(css, "}"))
}

func TestCSSSink_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "theme.css")

	sink := NewCSSSink(":root")
	NewApplicator(sink, nil).Apply(DefaultColors(), model.ModeLight)
	require.NoError(t, sink.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--safari-gold: 45 93% 58%;")

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestMemorySink_Classes(t *testing.T) {
	sink := NewMemorySink()
	sink.AddClass("a", "b", "a")
	assert.Equal(t, []string{"a", "b"}, sink.Classes())

	sink.RemoveClass("a", "missing")
	assert.Equal(t, []string{"b"}, sink.Classes())
}
