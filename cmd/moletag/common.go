package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/moletag-dev/moletag/internal/composition"
	"github.com/moletag-dev/moletag/internal/output"
	"github.com/moletag-dev/moletag/internal/substance"
)

// resolveFormat picks the output format: the flag value if given, then the
// "format" configuration key, then "table".
func resolveFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString("format"); v != "" {
		return v
	}
	return "table"
}

// newFormatter creates a formatter writing to outPath, or stdout when
// outPath is empty. The returned cleanup closes the output file.
func newFormatter(format, outPath string) (output.Formatter, func(), error) {
	var w io.Writer = os.Stdout
	cleanup := func() {}

	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		w = file
		cleanup = func() {
			_ = file.Close() // Best-effort cleanup
		}
	}

	formatter, err := output.New(format, w)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return formatter, cleanup, nil
}

// loadMixture loads a composition file, runs structural validation, and
// builds the mixture it describes.
func loadMixture(path string) (*composition.Composition, *substance.Mixture, error) {
	c, err := composition.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load composition %s: %w", path, err)
	}

	if err := composition.Validate(c); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := c.Mixture()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, m, nil
}
