package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moletag-dev/moletag/internal/substance"
)

func testComponents(t *testing.T) []substance.MixtureComponent {
	t.Helper()

	m := substance.NewMixture()
	require.NoError(t, m.AddComponent("CCO", substance.WithMoleFraction(0.2)))
	require.NoError(t, m.AddComponent("O", substance.FillRemainder()))
	require.NoError(t, m.AddComponent("c1ccccc1", substance.AsImpurity()))
	return m.Components()
}

func Test_Compile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"fraction comparison", "mole_fraction > 0.1", false},
		{"identifier equality", `identifier == "O"`, false},
		{"impurity flag", "not impurity", false},
		{"combined", `impurity or mole_fraction >= 0.5`, false},
		{"not boolean", "mole_fraction + 1", true},
		{"unknown variable", "charge > 0", true},
		{"syntax error", "mole_fraction >", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Apply(t *testing.T) {
	components := testComponents(t)

	tests := []struct {
		name       string
		expression string
		wantIDs    []string
	}{
		{"majority components", "mole_fraction >= 0.5", []string{"O"}},
		{"impurities only", "impurity", []string{"c1ccccc1"}},
		{"exclude impurities", "not impurity", []string{"CCO", "O"}},
		{"match nothing", `identifier == "N"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Apply(components)
			require.NoError(t, err)

			ids := make([]string, 0, len(matched))
			for _, c := range matched {
				ids = append(ids, c.Identifier)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func Test_Match(t *testing.T) {
	f, err := Compile(`identifier == "O" and mole_fraction == 0.8`)
	require.NoError(t, err)

	components := testComponents(t)
	ok, err := f.Match(components[1])
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Match(components[0])
	require.NoError(t, err)
	assert.False(t, ok)
}
