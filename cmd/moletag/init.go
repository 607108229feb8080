package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/charmbracelet/huh"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/moletag-dev/moletag/internal/composition"
	"github.com/moletag-dev/moletag/internal/substance"
)

var initOut string

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a composition file",
	Long: `Build a composition file by answering prompts. Each component is
validated against the mixture composition rules as it is entered, so the
resulting file is guaranteed to load.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runInit()
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initOut, "output", "o", "composition.yaml", "Path of the composition file to write")
}

// runInit implements the core logic for the init command.
func runInit() error {
	comp := composition.Composition{
		Metadata: composition.Metadata{Version: "1.0.0"},
	}

	err := huh.NewInput().
		Title("Mixture name").
		Validate(requireNonEmpty("name")).
		Value(&comp.Metadata.Name).
		Run()
	if err != nil {
		return err
	}

	err = huh.NewInput().
		Title("Document version").
		Validate(func(s string) error {
			_, err := semver.NewVersion(s)
			return err
		}).
		Value(&comp.Metadata.Version).
		Run()
	if err != nil {
		return err
	}

	err = huh.NewInput().
		Title("Description (optional)").
		Value(&comp.Metadata.Description).
		Run()
	if err != nil {
		return err
	}

	// The mixture mirrors the entries as they are accepted, so composition
	// rule violations surface immediately instead of at load time.
	mixture := substance.NewMixture()
	for {
		entry, opts, err := promptComponent()
		if err != nil {
			return err
		}

		if err := mixture.AddComponent(entry.Identifier, opts...); err != nil {
			fmt.Printf("Component rejected: %v\n", err)
		} else {
			comp.Components = append(comp.Components, entry)
		}

		var again bool
		err = huh.NewConfirm().
			Title("Add another component?").
			Value(&again).
			Run()
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	if err := composition.Validate(&comp); err != nil {
		return err
	}

	if err := writeComposition(&comp, initOut); err != nil {
		return err
	}

	tag, err := mixture.Tag()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s (tag: %s)\n", initOut, tag)
	return nil
}

// promptComponent collects a single component entry and its add options.
func promptComponent() (composition.ComponentEntry, []substance.ComponentOption, error) {
	var entry composition.ComponentEntry

	err := huh.NewInput().
		Title("Component identifier").
		Validate(requireNonEmpty("identifier")).
		Value(&entry.Identifier).
		Run()
	if err != nil {
		return entry, nil, err
	}

	var kind string
	err = huh.NewSelect[string]().
		Title("Amount").
		Options(
			huh.NewOption("Mole fraction", "fraction"),
			huh.NewOption("Remainder of the mixture", "remainder"),
			huh.NewOption("Trace impurity", "impurity"),
		).
		Value(&kind).
		Run()
	if err != nil {
		return entry, nil, err
	}

	switch kind {
	case "fraction":
		var raw string
		err = huh.NewInput().
			Title("Mole fraction [0, 1]").
			Validate(func(s string) error {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("not a number: %s", s)
				}
				if f < 0.0 || f > 1.0 {
					return fmt.Errorf("must be on [0, 1]")
				}
				return nil
			}).
			Value(&raw).
			Run()
		if err != nil {
			return entry, nil, err
		}
		f, _ := strconv.ParseFloat(raw, 64)
		entry.MoleFraction = &f
		return entry, []substance.ComponentOption{substance.WithMoleFraction(f)}, nil
	case "remainder":
		entry.Remainder = true
		return entry, []substance.ComponentOption{substance.FillRemainder()}, nil
	default:
		entry.Impurity = true
		return entry, []substance.ComponentOption{substance.AsImpurity()}, nil
	}
}

// writeComposition writes the composition document as YAML.
func writeComposition(c *composition.Composition, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create composition file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	encoder := yaml.NewEncoder(file, yaml.Indent(2))
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode composition: %w", err)
	}
	return encoder.Close()
}

// requireNonEmpty builds a huh validator rejecting empty input.
func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
