package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
	"github.com/jmylchreest/tourkit/internal/theme"
)

func testTours() []model.Tour {
	return []model.Tour{
		{
			ID:            "mara-7",
			Name:          "Masai Mara Migration",
			Destination:   "Kenya",
			DurationDays:  7,
			Price:         3400,
			TourType:      "Wildlife",
			Accommodation: "Luxury",
			GroupSize:     "Private",
			Difficulty:    "Easy",
			Rating:        4.5,
		},
		{
			ID:           "bwindi-1",
			Name:         "Bwindi Day Trek",
			Destination:  "Uganda",
			DurationDays: 1,
			Price:        950,
		},
	}
}

func TestDmenuFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	err := NewDmenuFormatter(DefaultFormatterOptions()).Format(&buf, testTours())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "1 | Masai Mara Migration | Kenya | 7 days | $3,400 | ★ 4.5", lines[0])
	assert.Equal(t, "2 | Bwindi Day Trek | Uganda | 1 day | $950 | unrated", lines[1])
}

func TestDmenuFormatter_NoIndex(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.ShowIndex = false
	opts.ShowRating = false
	require.NoError(t, NewDmenuFormatter(opts).Format(&buf, testTours()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Masai Mara Migration | Kenya | 7 days | $3,400", lines[0])
}

func TestDmenuFormatter_CustomTemplate(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.Template = "{{.Index}}: {{.Tour.Name}} from {{price .Tour.Price}}"
	require.NoError(t, NewDmenuFormatter(opts).Format(&buf, testTours()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "1: Masai Mara Migration from $3,400", lines[0])
	assert.Equal(t, "2: Bwindi Day Trek from $950", lines[1])
}

func TestDmenuFormatter_TruncateName(t *testing.T) {
	var buf bytes.Buffer

	opts := DefaultFormatterOptions()
	opts.NameMaxLen = 10
	require.NoError(t, NewDmenuFormatter(opts).Format(&buf, testTours()[:1]))

	assert.Contains(t, buf.String(), "Masai M...")
	assert.NotContains(t, buf.String(), "Migration")
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewPlainFormatter(DefaultFormatterOptions()).Format(&buf, testTours()))

	out := buf.String()
	assert.Contains(t, out, "[1] Masai Mara Migration <Kenya> (★ 4.5)")
	assert.Contains(t, out, "    7 days, $3,400, Wildlife, Luxury, Private, Easy\n")
	assert.Contains(t, out, "[2] Bwindi Day Trek <Uganda>")
	assert.Contains(t, out, "    1 day, $950\n")
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONFormatter(DefaultFormatterOptions()).Format(&buf, testTours()))

	var result []model.Tour
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, testTours(), result)
	assert.Contains(t, buf.String(), `"durationDays": 7`)
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewJSONFormatter(DefaultFormatterOptions()).Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewYAMLFormatter().Format(&buf, testTours()))

	var doc struct {
		Tours []model.Tour `yaml:"tours"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, testTours(), doc.Tours)
}

func TestIDsFormatter_Format(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewIDsFormatter().Format(&buf, testTours()))
	assert.Equal(t, "mara-7\nbwindi-1\n", buf.String())
}

func TestFormatField(t *testing.T) {
	tour := &testTours()[0]

	tests := []struct {
		field    string
		expected string
	}{
		{"id", "mara-7"},
		{"name", "Masai Mara Migration"},
		{"destination", "Kenya"},
		{"days", "7"},
		{"price", "3400"},
		{"tour_type", "Wildlife"},
		{"accommodation", "Luxury"},
		{"group_size", "Private"},
		{"difficulty", "Easy"},
		{"rating", "4.5"},
		{"all", "Masai Mara Migration\nKenya, 7 days, $3,400"},
		{"unknown", "Masai Mara Migration"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatField(tour, tt.field))
		})
	}
}

func TestNewFormatter(t *testing.T) {
	opts := DefaultFormatterOptions()

	_, ok := NewFormatter(FormatDmenu, opts).(*DmenuFormatter)
	assert.True(t, ok)
	_, ok = NewFormatter(FormatJSON, opts).(*JSONFormatter)
	assert.True(t, ok)
	_, ok = NewFormatter(FormatYAML, opts).(*YAMLFormatter)
	assert.True(t, ok)
	_, ok = NewFormatter(FormatIDs, opts).(*IDsFormatter)
	assert.True(t, ok)
	_, ok = NewFormatter("unknown", opts).(*PlainFormatter)
	assert.True(t, ok, "unknown formats fall back to plain")
}

func TestFormatSidebar_Defaults(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, FormatSidebar(&buf, core.Default(), core.DefaultExpandedSections()))

	out := buf.String()
	assert.Contains(t, out, "▾ Destinations\n    [ ] Uganda\n")
	assert.Contains(t, out, "▾ Duration: 1 day - 30 days\n")
	assert.Contains(t, out, "▾ Price range: $0 - $10,000\n")
	assert.Contains(t, out, "▸ Accommodation\n▸ Group size\n")
	assert.Contains(t, out, "▸ Rating: any\n")
	assert.NotContains(t, out, "[ ] Budget", "collapsed panels hide their options")
	assert.Contains(t, out, "Active filters: 0")
}

func TestFormatSidebar_Selections(t *testing.T) {
	state := core.Default()
	state, _ = core.Toggle(state, core.FieldDestinations, "Kenya")
	state, _ = core.Toggle(state, core.FieldAccommodationTypes, "Luxury")
	state, _ = core.Toggle(state, core.FieldDestinations, "Zanzibar")
	state = core.SetRating(state, 3, true)

	expanded := core.DefaultExpandedSections().Toggle(core.SectionRating)

	var buf bytes.Buffer
	require.NoError(t, FormatSidebar(&buf, state, expanded))

	out := buf.String()
	assert.Contains(t, out, "▾ Destinations (2 selected)")
	assert.Contains(t, out, "    [x] Kenya\n")
	assert.Contains(t, out, "    [x] Zanzibar\n")
	assert.Contains(t, out, "▸ Accommodation (1 selected)\n")
	assert.Contains(t, out, "▾ Rating: 3+ stars\n    [ ] 4+ stars\n    [x] 3+ stars\n")
	assert.Contains(t, out, "Active filters: 4")
}

func TestFormatFilterState(t *testing.T) {
	state, err := core.Toggle(core.Default(), core.FieldTourTypes, "Cultural")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatFilterState(&buf, state, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []any{"Cultural"}, decoded["tourTypes"])
	assert.Equal(t, []any{}, decoded["destinations"])
	assert.Equal(t, []any{float64(0), float64(10000)}, decoded["priceRange"])

	buf.Reset()
	require.NoError(t, FormatFilterState(&buf, state, FormatYAML))
	assert.Contains(t, buf.String(), "priceRange:")
	assert.Contains(t, buf.String(), "- Cultural")
}

func appliedSink(t *testing.T) *theme.CSSSink {
	t.Helper()
	sink := theme.NewCSSSink("")
	theme.NewApplicator(sink, nil).Apply(theme.DefaultColors(), model.ModeLight)
	return sink
}

func TestFormatProperties(t *testing.T) {
	sink := appliedSink(t)

	var buf bytes.Buffer
	require.NoError(t, FormatProperties(&buf, sink, PropertiesCSS))
	assert.Contains(t, buf.String(), ":root {\n")
	assert.Contains(t, buf.String(), "  --radius: 0.5rem;\n")

	buf.Reset()
	require.NoError(t, FormatProperties(&buf, sink, PropertiesPlain))
	assert.Contains(t, buf.String(), "--safari-charcoal 0 0% 20%\n")

	buf.Reset()
	require.NoError(t, FormatProperties(&buf, sink, PropertiesJSON))
	var doc propertiesDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, []string{theme.ClassLight}, doc.Classes)
	assert.Len(t, doc.Properties, 24)
	assert.Equal(t, "--primary", doc.Properties[0].Key)

	buf.Reset()
	require.NoError(t, FormatProperties(&buf, sink, PropertiesYAML))
	assert.Contains(t, buf.String(), "- theme-light")
}

func TestParsePropertyFormat(t *testing.T) {
	f, err := ParsePropertyFormat("")
	require.NoError(t, err)
	assert.Equal(t, PropertiesCSS, f)

	f, err = ParsePropertyFormat("json")
	require.NoError(t, err)
	assert.Equal(t, PropertiesJSON, f)

	_, err = ParsePropertyFormat("xml")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Kigali", 0, "Kigali"},
		{"Kigali", 10, "Kigali"},
		{"Kigali Culture Walk", 10, "Kigali ..."},
		{"Kigali", 2, "Ki"},
		{"火山火山火山", 7, "火山..."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.maxLen))
		})
	}
}
