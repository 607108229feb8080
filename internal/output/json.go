package output

import (
	"encoding/json"
	"io"

	"github.com/moletag-dev/moletag/internal/report"
)

// JSONFormatter formats a report as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the report as JSON.
func (f *JSONFormatter) Format(r *report.Report) error {
	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}

	if err != nil {
		return err
	}

	if _, err := f.writer.Write(data); err != nil {
		return err
	}

	// Trailing newline for terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
