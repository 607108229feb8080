// Package report defines the result documents produced by tag and inspect
// runs.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/moletag-dev/moletag/internal/composition"
	"github.com/moletag-dev/moletag/internal/substance"
)

// Report is the top-level result of a run over one or more composition files.
type Report struct {
	RunID       string           `json:"run_id" yaml:"run_id"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Mixtures    []MixtureSummary `json:"mixtures" yaml:"mixtures"`
}

// MixtureSummary describes one mixture and its canonical tag.
type MixtureSummary struct {
	Source             string             `json:"source,omitempty" yaml:"source,omitempty"`
	Name               string             `json:"name" yaml:"name"`
	Version            string             `json:"version,omitempty" yaml:"version,omitempty"`
	Tag                string             `json:"tag" yaml:"tag"`
	TotalMoleFraction  float64            `json:"total_mole_fraction" yaml:"total_mole_fraction"`
	NumberOfImpurities int                `json:"number_of_impurities" yaml:"number_of_impurities"`
	Components         []ComponentSummary `json:"components" yaml:"components"`
}

// ComponentSummary describes one component in insertion order.
type ComponentSummary struct {
	Identifier   string  `json:"identifier" yaml:"identifier"`
	MoleFraction float64 `json:"mole_fraction" yaml:"mole_fraction"`
	Impurity     bool    `json:"impurity,omitempty" yaml:"impurity,omitempty"`
}

// New creates an empty report with a fresh run ID.
func New() *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}
}

// Add appends a summary of the given mixture. The source names where the
// composition came from, usually a file path.
func (r *Report) Add(source string, c *composition.Composition, m *substance.Mixture) error {
	tag, err := m.Tag()
	if err != nil {
		return err
	}

	components := m.Components()
	summaries := make([]ComponentSummary, 0, len(components))
	for _, mc := range components {
		summaries = append(summaries, ComponentSummary{
			Identifier:   mc.Identifier,
			MoleFraction: mc.MoleFraction,
			Impurity:     mc.Impurity,
		})
	}

	r.Mixtures = append(r.Mixtures, MixtureSummary{
		Source:             source,
		Name:               c.Metadata.Name,
		Version:            c.Metadata.Version,
		Tag:                tag,
		TotalMoleFraction:  m.TotalMoleFraction(),
		NumberOfImpurities: m.NumberOfImpurities(),
		Components:         summaries,
	})
	return nil
}
