package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/tourkit/internal/model"
)

// IDsFormatter outputs just the tour IDs, one per line.
type IDsFormatter struct{}

// NewIDsFormatter creates a new IDs formatter.
func NewIDsFormatter() *IDsFormatter {
	return &IDsFormatter{}
}

// Format writes tour IDs to the writer, one per line.
func (f *IDsFormatter) Format(w io.Writer, tours []model.Tour) error {
	for _, t := range tours {
		if _, err := fmt.Fprintln(w, t.ID); err != nil {
			return err
		}
	}
	return nil
}
