package substance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddComponent(t *testing.T) {
	tests := []struct {
		name         string
		opts         []ComponentOption
		wantErr      bool
		wantFraction float64
		wantImpurity bool
	}{
		{
			name:         "explicit fraction",
			opts:         []ComponentOption{WithMoleFraction(0.25)},
			wantFraction: 0.25,
		},
		{
			name:         "remainder on empty mixture",
			opts:         []ComponentOption{FillRemainder()},
			wantFraction: 1.0,
		},
		{
			name:         "impurity without fraction",
			opts:         []ComponentOption{AsImpurity()},
			wantFraction: 0.0,
			wantImpurity: true,
		},
		{
			name:         "impurity with zero fraction",
			opts:         []ComponentOption{AsImpurity(), WithMoleFraction(0.0)},
			wantFraction: 0.0,
			wantImpurity: true,
		},
		{
			name:         "boundary fraction one",
			opts:         []ComponentOption{WithMoleFraction(1.0)},
			wantFraction: 1.0,
		},
		{
			name:         "boundary fraction zero",
			opts:         []ComponentOption{WithMoleFraction(0.0)},
			wantFraction: 0.0,
		},
		{
			name:    "nothing specified",
			opts:    nil,
			wantErr: true,
		},
		{
			name:    "impurity with non-zero fraction",
			opts:    []ComponentOption{AsImpurity(), WithMoleFraction(0.3)},
			wantErr: true,
		},
		{
			name:    "negative fraction",
			opts:    []ComponentOption{WithMoleFraction(-0.1)},
			wantErr: true,
		},
		{
			name:    "fraction above one",
			opts:    []ComponentOption{WithMoleFraction(1.1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMixture()
			err := m.AddComponent("O", tt.opts...)

			if tt.wantErr {
				var verr *ValidationError
				require.Error(t, err)
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, 0, m.NumberOfComponents())
				return
			}

			require.NoError(t, err)
			require.Equal(t, 1, m.NumberOfComponents())
			c, err := m.ComponentByIdentifier("O")
			require.NoError(t, err)
			assert.Equal(t, tt.wantFraction, c.MoleFraction)
			assert.Equal(t, tt.wantImpurity, c.Impurity)
		})
	}
}

func Test_AddComponent_ExceedsUnity(t *testing.T) {
	m := NewMixture()
	require.NoError(t, m.AddComponent("c1ccccc1", WithMoleFraction(0.5)))

	err := m.AddComponent("O", WithMoleFraction(0.6))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "O", verr.Identifier)

	// The failed add must not have mutated the mixture.
	assert.Equal(t, 1, m.NumberOfComponents())
	assert.Equal(t, 0.5, m.TotalMoleFraction())
	_, err = m.ComponentByIdentifier("O")
	assert.Error(t, err)
}

func Test_AddComponent_RemainderRoundTrip(t *testing.T) {
	m := NewMixture()
	require.NoError(t, m.AddComponent("O", WithMoleFraction(0.2)))
	require.NoError(t, m.AddComponent("CO", FillRemainder()))

	c, err := m.ComponentByIdentifier("CO")
	require.NoError(t, err)
	assert.Equal(t, 0.8, c.MoleFraction)
	assert.Equal(t, 1.0, m.TotalMoleFraction())
}

func Test_AddComponent_SecondRemainderTakesZero(t *testing.T) {
	m := NewMixture()
	require.NoError(t, m.AddComponent("O", FillRemainder()))
	require.NoError(t, m.AddComponent("CCO", FillRemainder()))

	c, err := m.ComponentByIdentifier("CCO")
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.MoleFraction)
	assert.Equal(t, 1.0, m.TotalMoleFraction())
}

func Test_AddComponent_ImpurityAfterFullMixture(t *testing.T) {
	// Impurities resolve to 0.0 so they fit even when the mixture already
	// sums to unity.
	m := NewMixture()
	require.NoError(t, m.AddComponent("O", FillRemainder()))
	require.NoError(t, m.AddComponent("c1ccccc1O", AsImpurity()))

	assert.Equal(t, 2, m.NumberOfComponents())
	assert.Equal(t, 1, m.NumberOfImpurities())
	assert.Equal(t, 1.0, m.TotalMoleFraction())
}

func Test_TotalMoleFraction_NeverExceedsUnity(t *testing.T) {
	m := NewMixture()
	assert.Equal(t, 0.0, m.TotalMoleFraction())

	fractions := []float64{0.3, 0.3, 0.3, 0.3}
	for _, f := range fractions {
		// Some adds fail; the invariant must hold after every attempt.
		_ = m.AddComponent("C", WithMoleFraction(f))
		assert.LessOrEqual(t, m.TotalMoleFraction(), 1.0)
	}
	assert.Equal(t, 3, m.NumberOfComponents())
}

func Test_ComponentByIdentifier(t *testing.T) {
	m := NewMixture()
	require.NoError(t, m.AddComponent("O", WithMoleFraction(0.2)))
	require.NoError(t, m.AddComponent("CCO", WithMoleFraction(0.3)))
	// Duplicate identifier: lookup must return the first match.
	require.NoError(t, m.AddComponent("O", WithMoleFraction(0.1)))

	c, err := m.ComponentByIdentifier("O")
	require.NoError(t, err)
	assert.Equal(t, 0.2, c.MoleFraction)

	// Identifier matching is exact and case-sensitive.
	_, err = m.ComponentByIdentifier("o")
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "o", nferr.Identifier)
}

func Test_Components_Snapshot(t *testing.T) {
	m := NewMixture()
	require.NoError(t, m.AddComponent("O", WithMoleFraction(0.5)))

	view := m.Components()
	require.Len(t, view, 1)
	view[0].MoleFraction = 0.9
	view[0].Identifier = "N"

	c, err := m.ComponentByIdentifier("O")
	require.NoError(t, err)
	assert.Equal(t, 0.5, c.MoleFraction)
}

func Test_Tag(t *testing.T) {
	tests := []struct {
		name string
		add  func(t *testing.T, m *Mixture)
		want string
	}{
		{
			name: "empty mixture",
			add:  func(_ *testing.T, _ *Mixture) {},
			want: "",
		},
		{
			name: "single component",
			add: func(t *testing.T, m *Mixture) {
				require.NoError(t, m.AddComponent("O", FillRemainder()))
			},
			want: "O{1}",
		},
		{
			name: "lexicographic not insertion order",
			add: func(t *testing.T, m *Mixture) {
				require.NoError(t, m.AddComponent("B", WithMoleFraction(0.5)))
				require.NoError(t, m.AddComponent("A", WithMoleFraction(0.5)))
			},
			want: "A{0.5}|B{0.5}",
		},
		{
			name: "impurity formats as zero",
			add: func(t *testing.T, m *Mixture) {
				require.NoError(t, m.AddComponent("O", WithMoleFraction(0.5)))
				require.NoError(t, m.AddComponent("c1ccccc1", AsImpurity()))
			},
			want: "O{0.5}|c1ccccc1{0}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMixture()
			tt.add(t, m)
			tag, err := m.Tag()
			require.NoError(t, err)
			assert.Equal(t, tt.want, tag)
		})
	}
}

func Test_Tag_OrderIndependent(t *testing.T) {
	a := NewMixture()
	require.NoError(t, a.AddComponent("O", WithMoleFraction(0.2)))
	require.NoError(t, a.AddComponent("CCO", WithMoleFraction(0.5)))
	require.NoError(t, a.AddComponent("CO", WithMoleFraction(0.3)))

	b := NewMixture()
	require.NoError(t, b.AddComponent("CO", WithMoleFraction(0.3)))
	require.NoError(t, b.AddComponent("CCO", WithMoleFraction(0.5)))
	require.NoError(t, b.AddComponent("O", WithMoleFraction(0.2)))

	tagA, err := a.Tag()
	require.NoError(t, err)
	tagB, err := b.Tag()
	require.NoError(t, err)
	assert.Equal(t, tagA, tagB)
}

func Test_Unimplemented_Tag(t *testing.T) {
	var s Substance = Unimplemented{}
	_, err := s.Tag()
	assert.True(t, errors.Is(err, ErrNotImplemented))
}
