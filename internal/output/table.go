package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/moletag-dev/moletag/internal/report"
)

// TableFormatter formats a report as a human-readable table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes the report as a table.
func (f *TableFormatter) Format(r *report.Report) error {
	fmt.Fprintf(f.writer, "Run: %s\n", r.RunID)
	fmt.Fprintf(f.writer, "Generated: %s\n", r.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintln(f.writer)

	if len(r.Mixtures) == 0 {
		fmt.Fprintln(f.writer, "No mixtures.")
		return nil
	}

	for _, m := range r.Mixtures {
		f.formatMixture(m)
	}

	return nil
}

// formatMixture formats a single mixture summary.
func (f *TableFormatter) formatMixture(m report.MixtureSummary) {
	fmt.Fprintf(f.writer, "Mixture: %s", m.Name)
	if m.Version != "" {
		fmt.Fprintf(f.writer, " (v%s)", m.Version)
	}
	fmt.Fprintln(f.writer)

	if m.Source != "" {
		fmt.Fprintf(f.writer, "  Source: %s\n", m.Source)
	}
	fmt.Fprintf(f.writer, "  Tag: %s\n", m.Tag)
	fmt.Fprintf(f.writer, "  Total mole fraction: %g\n", m.TotalMoleFraction)
	fmt.Fprintf(f.writer, "  Components: %d (%d impurities)\n", len(m.Components), m.NumberOfImpurities)

	fmt.Fprintln(f.writer, strings.Repeat("─", 60))
	for _, c := range m.Components {
		marker := " "
		if c.Impurity {
			marker = "~"
		}
		fmt.Fprintf(f.writer, "  %s %-32s %g\n", marker, c.Identifier, c.MoleFraction)
	}
	fmt.Fprintln(f.writer, strings.Repeat("─", 60))
	fmt.Fprintln(f.writer)
}
