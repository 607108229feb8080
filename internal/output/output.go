// Package output renders run reports in the supported output formats.
package output

import (
	"fmt"
	"io"

	"github.com/moletag-dev/moletag/internal/report"
)

// Formatter renders a report to its writer.
type Formatter interface {
	Format(r *report.Report) error
}

// New creates a formatter for the given format name: "table", "json", or
// "yaml".
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(w), nil
	case "json":
		return NewJSONFormatter(w, true), nil
	case "yaml":
		return NewYAMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (expected table, json, or yaml)", format)
	}
}
