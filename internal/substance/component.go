package substance

// Component pairs an opaque chemical identifier with nothing else. The
// identifier is treated as an arbitrary string key and never parsed as
// structure notation.
type Component struct {
	Identifier string
}

// MixtureComponent is a Component with the bookkeeping a mixture needs: its
// mole fraction on [0, 1] and whether it is a trace impurity. Impurities
// always carry a mole fraction of exactly 0.0, distinct in meaning from a
// component explicitly assigned zero.
//
// MixtureComponents are immutable after construction; Mixture hands them out
// by value only.
type MixtureComponent struct {
	Component
	MoleFraction float64
	Impurity     bool
}
