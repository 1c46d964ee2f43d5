package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"

	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
)

// DmenuFormatter formats tours one per line for dmenu/rofi/fuzzel pickers.
type DmenuFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewDmenuFormatter creates a new dmenu formatter.
func NewDmenuFormatter(opts FormatterOptions) *DmenuFormatter {
	f := &DmenuFormatter{opts: opts}

	if opts.Template != "" {
		tmpl, err := template.New("dmenu").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes tours in dmenu format (one per line).
func (f *DmenuFormatter) Format(w io.Writer, tours []model.Tour) error {
	for i, t := range tours {
		line := f.formatLine(i+1, &t)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (f *DmenuFormatter) formatLine(index int, t *model.Tour) string {
	if f.template != nil {
		var buf strings.Builder
		if err := f.template.Execute(&buf, templateData{Index: index, Tour: t}); err == nil {
			return buf.String()
		}
	}

	sep := f.opts.Separator
	if sep == "" {
		sep = " | "
	}

	var parts []string
	if f.opts.ShowIndex {
		parts = append(parts, fmt.Sprintf("%d", index))
	}
	parts = append(parts,
		truncate(t.Name, f.opts.NameMaxLen),
		t.Destination,
		core.DaysLabel(t.DurationDays),
		core.PriceLabel(t.Price),
	)
	if f.opts.ShowRating {
		parts = append(parts, stars(t.Rating))
	}

	return strings.Join(parts, sep)
}

// templateData provides data for custom templates.
type templateData struct {
	Index int
	Tour  *model.Tour
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": truncate,
		"price":    core.PriceLabel,
		"days":     core.DaysLabel,
		"stars":    stars,
	}
}

// stars renders a rating such as "★ 4.5".
func stars(rating float64) string {
	if rating <= 0 {
		return "unrated"
	}
	return fmt.Sprintf("★ %.1f", rating)
}

// truncate shortens s to maxLen terminal cells, marking the cut with "...".
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}
