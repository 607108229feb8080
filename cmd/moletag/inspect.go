package main

import (
	"github.com/spf13/cobra"

	"github.com/moletag-dev/moletag/internal/filter"
	"github.com/moletag-dev/moletag/internal/report"
)

var (
	inspectFormat string
	inspectOut    string
	inspectFilter string
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <composition.yaml>",
	Short: "Show the components of a composition file",
	Long: `Load a composition file and list its components in insertion order,
together with the mixture's canonical tag and totals.

Filtering:
  --filter "mole_fraction > 0.1"     Components above 10 mol%
  --filter "impurity"                Trace impurities only
  --filter "identifier == 'O'"       A specific component`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectFormat, "format", "", "Output format: table, json, yaml (default: table)")
	inspectCmd.Flags().StringVarP(&inspectOut, "output", "o", "", "Output file path (default: stdout)")
	inspectCmd.Flags().StringVar(&inspectFilter, "filter", "", "Component filter expression (e.g. \"not impurity\")")
}

// runInspect implements the core logic for the inspect command.
func runInspect(path string) error {
	c, m, err := loadMixture(path)
	if err != nil {
		return err
	}

	r := report.New()
	if err := r.Add(path, c, m); err != nil {
		return err
	}

	if inspectFilter != "" {
		f, err := filter.Compile(inspectFilter)
		if err != nil {
			return err
		}

		// The tag and totals describe the whole mixture; only the
		// component listing is narrowed.
		var kept []report.ComponentSummary
		for _, mc := range m.Components() {
			ok, err := f.Match(mc)
			if err != nil {
				return err
			}
			if ok {
				kept = append(kept, report.ComponentSummary{
					Identifier:   mc.Identifier,
					MoleFraction: mc.MoleFraction,
					Impurity:     mc.Impurity,
				})
			}
		}
		r.Mixtures[0].Components = kept
	}

	formatter, cleanup, err := newFormatter(resolveFormat(inspectFormat), inspectOut)
	if err != nil {
		return err
	}
	defer cleanup()

	return formatter.Format(r)
}
