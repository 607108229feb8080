package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/moletag-dev/moletag/internal/composition"
)

var requireVersion string

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <composition.yaml>...",
	Short: "Validate composition files without producing tags",
	Long: `Run the full validation pipeline over one or more composition files:
structural validation, JSON Schema validation of the raw document, and the
mixture composition rules (fraction domains, impurity handling, unity sum).

Use --require-version to additionally enforce a semver constraint on each
document's version, e.g. in CI:

  moletag validate --require-version ">= 1.0.0" mixtures/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&requireVersion, "require-version", "", "Semver constraint the composition version must satisfy")
}

// runValidate implements the core logic for the validate command.
func runValidate(paths []string) error {
	var failures int

	for _, path := range paths {
		if err := validateFile(path); err != nil {
			failures++
			fmt.Printf("✗ %s\n  %v\n", path, err)
			continue
		}
		fmt.Printf("✓ %s\n", path)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d composition files failed validation", failures, len(paths))
	}

	slog.Debug("all compositions valid", "files", len(paths))
	return nil
}

// validateFile runs every validation layer over a single file.
func validateFile(path string) error {
	if err := composition.ValidateSchemaFile(path); err != nil {
		return err
	}

	c, m, err := loadMixture(path)
	if err != nil {
		return err
	}

	if requireVersion != "" {
		if err := composition.CheckVersion(c, requireVersion); err != nil {
			return err
		}
	}

	slog.Debug("composition valid", "path", path, "components", m.NumberOfComponents())
	return nil
}
