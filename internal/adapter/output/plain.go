package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
)

// PlainFormatter formats tours as plain text blocks.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	f := &PlainFormatter{opts: opts}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err == nil {
			f.template = tmpl
		}
	}

	return f
}

// Format writes tours as plain text.
func (f *PlainFormatter) Format(w io.Writer, tours []model.Tour) error {
	for i, t := range tours {
		if err := f.formatTour(w, i+1, &t); err != nil {
			return err
		}
	}
	return nil
}

func (f *PlainFormatter) formatTour(w io.Writer, index int, t *model.Tour) error {
	if f.template != nil {
		return f.template.Execute(w, templateData{Index: index, Tour: t})
	}

	var sb strings.Builder

	if f.opts.ShowIndex {
		sb.WriteString(fmt.Sprintf("[%d] ", index))
	}
	sb.WriteString(truncate(t.Name, f.opts.NameMaxLen))
	sb.WriteString(fmt.Sprintf(" <%s>", t.Destination))
	if f.opts.ShowRating {
		sb.WriteString(fmt.Sprintf(" (%s)", stars(t.Rating)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("    %s, %s", core.DaysLabel(t.DurationDays), core.PriceLabel(t.Price)))
	for _, attr := range []string{t.TourType, t.Accommodation, t.GroupSize, t.Difficulty} {
		if attr != "" {
			sb.WriteString(", " + attr)
		}
	}
	sb.WriteString("\n")

	_, err := w.Write([]byte(sb.String()))
	return err
}

// FormatField outputs a specific field from a tour.
func FormatField(t *model.Tour, field string) string {
	switch strings.ToLower(field) {
	case "id":
		return t.ID
	case "name":
		return t.Name
	case "destination":
		return t.Destination
	case "duration", "days":
		return strconv.Itoa(t.DurationDays)
	case "price":
		return strconv.Itoa(t.Price)
	case "type", "tour_type", "tourtype":
		return t.TourType
	case "accommodation":
		return t.Accommodation
	case "group", "group_size", "groupsize":
		return t.GroupSize
	case "difficulty":
		return t.Difficulty
	case "rating":
		return strconv.FormatFloat(t.Rating, 'f', -1, 64)
	case "all", "full":
		return fmt.Sprintf("%s\n%s, %s, %s", t.Name, t.Destination, core.DaysLabel(t.DurationDays), core.PriceLabel(t.Price))
	default:
		return t.Name
	}
}
