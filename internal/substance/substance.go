// Package substance models chemical substances as composition value objects.
// A Mixture is an ordered list of components with mole-fraction bookkeeping
// and a canonical string tag usable for equality and deduplication.
package substance

// Substance is the capability shared by anything that can describe its
// chemical makeup as a canonical tag. Mixture is currently the only concrete
// kind; pure single-component substances would be added as siblings
// implementing this interface.
type Substance interface {
	// Tag returns a canonical, order-independent encoding of the
	// substance's composition.
	Tag() (string, error)
}

// Unimplemented is an embeddable placeholder for substance kinds that do not
// provide a composition tag. Its Tag always fails with ErrNotImplemented, so
// a type embedding it satisfies Substance without claiming a tag format.
type Unimplemented struct{}

// Tag implements Substance by failing with ErrNotImplemented.
func (Unimplemented) Tag() (string, error) {
	return "", ErrNotImplemented
}
