package main

import (
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/moletag-dev/moletag/internal/composition"
	"github.com/moletag-dev/moletag/internal/report"
	"github.com/moletag-dev/moletag/internal/substance"
)

var (
	tagFormat string
	tagOut    string
)

// tagCmd represents the tag command
var tagCmd = &cobra.Command{
	Use:   "tag <composition.yaml>...",
	Short: "Compute canonical tags for composition files",
	Long: `Load one or more composition files, validate them, and print the
canonical tag of each mixture. Tags are order-independent: two compositions
with the same components and fractions produce the same tag regardless of the
order components are listed in.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runTag(args)
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringVar(&tagFormat, "format", "", "Output format: table, json, yaml (default: table)")
	tagCmd.Flags().StringVarP(&tagOut, "output", "o", "", "Output file path (default: stdout)")
}

// runTag implements the core logic for the tag command.
func runTag(paths []string) error {
	type loaded struct {
		composition *composition.Composition
		mixture     *substance.Mixture
	}

	// Fan out over files; results keep argument order.
	results := make([]loaded, len(paths))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			slog.Debug("loading composition", "path", path)
			c, m, err := loadMixture(path)
			if err != nil {
				return err
			}
			results[i] = loaded{composition: c, mixture: m}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	r := report.New()
	for i, path := range paths {
		if err := r.Add(path, results[i].composition, results[i].mixture); err != nil {
			return err
		}
	}

	formatter, cleanup, err := newFormatter(resolveFormat(tagFormat), tagOut)
	if err != nil {
		return err
	}
	defer cleanup()

	return formatter.Format(r)
}
