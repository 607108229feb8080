package substance

import (
	"sort"
	"strconv"
	"strings"
)

// Mixture defines the components and their amounts in a mixture. Components
// are kept in insertion order and are only ever appended; duplicate
// identifiers are allowed. A Mixture is not safe for concurrent mutation
// without external synchronization.
type Mixture struct {
	components []MixtureComponent
}

// NewMixture creates an empty mixture.
func NewMixture() *Mixture {
	return &Mixture{}
}

// componentSpec collects the amount information supplied for one component.
type componentSpec struct {
	moleFraction *float64
	remainder    bool
	impurity     bool
}

// ComponentOption specifies the amount of a component being added.
type ComponentOption func(*componentSpec)

// WithMoleFraction sets an explicit mole fraction on the domain [0, 1].
func WithMoleFraction(fraction float64) ComponentOption {
	return func(s *componentSpec) {
		f := fraction
		s.moleFraction = &f
	}
}

// FillRemainder assigns the component whatever mole fraction is still needed
// to reach unity, given the components already present. Intended for the last
// or only component of a mixture.
func FillRemainder() ComponentOption {
	return func(s *componentSpec) {
		s.remainder = true
	}
}

// AsImpurity marks the component as a trace impurity. Impurities carry a mole
// fraction of exactly 0.0; combining this with a non-zero WithMoleFraction is
// a validation error.
func AsImpurity() ComponentOption {
	return func(s *componentSpec) {
		s.impurity = true
	}
}

// AddComponent validates and appends a component. Validation is
// validate-then-commit: on any error the mixture is unchanged.
//
// The rules, applied in order:
//   - an amount must be specified (a mole fraction, the remainder, or the
//     impurity flag);
//   - an impurity may only specify a mole fraction of exactly 0.0;
//   - a specified mole fraction must lie on [0, 1];
//   - the total mole fraction must not exceed unity (exact comparison).
//
// Impurities resolve to 0.0 and remainders to 1 - TotalMoleFraction before
// the unity check.
func (m *Mixture) AddComponent(identifier string, opts ...ComponentOption) error {
	var spec componentSpec
	for _, opt := range opts {
		opt(&spec)
	}

	fraction, err := m.resolveMoleFraction(identifier, spec)
	if err != nil {
		return err
	}

	m.components = append(m.components, MixtureComponent{
		Component:    Component{Identifier: identifier},
		MoleFraction: fraction,
		Impurity:     spec.impurity,
	})
	return nil
}

// resolveMoleFraction validates a component spec and resolves its final mole
// fraction without mutating the mixture.
func (m *Mixture) resolveMoleFraction(identifier string, spec componentSpec) (float64, error) {
	if !spec.impurity && !spec.remainder && spec.moleFraction == nil {
		return 0, newValidationError(identifier,
			"either a mole fraction, the remainder, or the impurity flag must be specified")
	}
	if spec.impurity && spec.moleFraction != nil && *spec.moleFraction != 0 {
		return 0, newValidationError(identifier,
			"mole fraction must be 0.0 or unspecified for impurities; specified %f", *spec.moleFraction)
	}
	if spec.moleFraction != nil && (*spec.moleFraction < 0.0 || *spec.moleFraction > 1.0) {
		return 0, newValidationError(identifier,
			"mole fraction must be on [0, 1]; specified %f", *spec.moleFraction)
	}

	var fraction float64
	switch {
	case spec.impurity:
		fraction = 0.0
	case spec.moleFraction == nil:
		fraction = 1.0 - m.TotalMoleFraction()
	default:
		fraction = *spec.moleFraction
	}

	if total := m.TotalMoleFraction(); total+fraction > 1.0 {
		return 0, newValidationError(identifier,
			"total mole fraction would exceed unity (%f); specified %f", total, fraction)
	}
	return fraction, nil
}

// ComponentByIdentifier returns the first component, in insertion order,
// whose identifier matches exactly. It fails with *NotFoundError when no
// component matches.
func (m *Mixture) ComponentByIdentifier(identifier string) (MixtureComponent, error) {
	for _, c := range m.components {
		if c.Identifier == identifier {
			return c, nil
		}
	}
	return MixtureComponent{}, &NotFoundError{Identifier: identifier}
}

// TotalMoleFraction returns the sum of mole fractions over all components,
// 0.0 for an empty mixture.
func (m *Mixture) TotalMoleFraction() float64 {
	var total float64
	for _, c := range m.components {
		total += c.MoleFraction
	}
	return total
}

// NumberOfComponents returns the component count.
func (m *Mixture) NumberOfComponents() int {
	return len(m.components)
}

// NumberOfImpurities returns the count of components flagged as impurities.
func (m *Mixture) NumberOfImpurities() int {
	var n int
	for _, c := range m.components {
		if c.Impurity {
			n++
		}
	}
	return n
}

// Components returns a snapshot of the ordered component sequence. The
// returned slice is a copy; mutating it does not affect the mixture.
func (m *Mixture) Components() []MixtureComponent {
	out := make([]MixtureComponent, len(m.components))
	copy(out, m.components)
	return out
}

// Tag implements Substance. Each component is formatted as
// "identifier{fraction}", the formatted strings are sorted
// lexicographically, and the result is joined with "|". The tag is therefore
// invariant under insertion order, and empty for an empty mixture.
//
// Identifiers containing '{', '}', or '|' produce ambiguous tags; no escaping
// is performed.
func (m *Mixture) Tag() (string, error) {
	tags := make([]string, 0, len(m.components))
	for _, c := range m.components {
		tags = append(tags, c.Identifier+"{"+formatFraction(c.MoleFraction)+"}")
	}
	sort.Strings(tags)
	return strings.Join(tags, "|"), nil
}

// formatFraction renders a mole fraction with the shortest representation
// that round-trips through float64.
func formatFraction(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
