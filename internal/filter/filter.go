// Package filter implements expression-based component selection for the
// inspect command.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/moletag-dev/moletag/internal/substance"
)

// ComponentEnv defines the variables available during filter expression
// evaluation.
type ComponentEnv struct {
	Identifier   string  `expr:"identifier"`
	MoleFraction float64 `expr:"mole_fraction"`
	Impurity     bool    `expr:"impurity"`
}

// ComponentFilter is a compiled boolean expression over mixture components.
type ComponentFilter struct {
	program *vm.Program
}

// Compile compiles a filter expression such as "mole_fraction > 0.1 and not
// impurity". The expression must evaluate to a boolean.
func Compile(expression string) (*ComponentFilter, error) {
	program, err := expr.Compile(expression, expr.Env(ComponentEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", expression, err)
	}
	return &ComponentFilter{program: program}, nil
}

// Match reports whether a component satisfies the filter.
func (f *ComponentFilter) Match(c substance.MixtureComponent) (bool, error) {
	out, err := expr.Run(f.program, ComponentEnv{
		Identifier:   c.Identifier,
		MoleFraction: c.MoleFraction,
		Impurity:     c.Impurity,
	})
	if err != nil {
		return false, fmt.Errorf("filter evaluation failed: %w", err)
	}
	return out.(bool), nil
}

// Apply returns the components that satisfy the filter, preserving order.
func (f *ComponentFilter) Apply(components []substance.MixtureComponent) ([]substance.MixtureComponent, error) {
	var matched []substance.MixtureComponent
	for _, c := range components {
		ok, err := f.Match(c)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, c)
		}
	}
	return matched, nil
}
