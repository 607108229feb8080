// Package composition provides the YAML composition file format through
// which mixtures are defined, validated, and constructed.
package composition

import (
	"fmt"

	"github.com/moletag-dev/moletag/internal/substance"
)

// Composition represents a complete composition document: metadata plus the
// ordered component entries of a single mixture.
type Composition struct {
	Metadata   Metadata         `yaml:"composition"`
	Components []ComponentEntry `yaml:"components"`
}

// Metadata contains metadata about the composition document.
type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// ComponentEntry represents a single component of the mixture. Exactly one
// amount must be given: an explicit mole fraction, the remainder flag, or the
// impurity flag (an impurity may additionally carry an explicit 0.0).
type ComponentEntry struct {
	Identifier   string   `yaml:"identifier"`
	MoleFraction *float64 `yaml:"mole_fraction,omitempty"`
	Remainder    bool     `yaml:"remainder,omitempty"`
	Impurity     bool     `yaml:"impurity,omitempty"`
}

// Mixture builds the mixture this composition describes. Entries are added
// in document order, so composition rule violations surface as
// substance.ValidationError annotated with the entry index.
func (c *Composition) Mixture() (*substance.Mixture, error) {
	m := substance.NewMixture()
	for i, entry := range c.Components {
		var opts []substance.ComponentOption
		if entry.MoleFraction != nil {
			opts = append(opts, substance.WithMoleFraction(*entry.MoleFraction))
		}
		if entry.Remainder {
			opts = append(opts, substance.FillRemainder())
		}
		if entry.Impurity {
			opts = append(opts, substance.AsImpurity())
		}

		if err := m.AddComponent(entry.Identifier, opts...); err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
	}
	return m, nil
}
