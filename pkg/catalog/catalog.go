package catalog

// Catalog is a growable, ordered collection of stellar entries. Each import
// call owns its output catalog exclusively; catalogs passed as cross-match
// references are read-only borrows.
type Catalog struct {
	stars []*Star
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{}
}

// Append adds a star to the end of the catalog.
func (c *Catalog) Append(s *Star) {
	c.stars = append(c.stars, s)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.stars)
}

// At returns the entry at index i.
func (c *Catalog) At(i int) *Star {
	return c.stars[i]
}

// Stars returns the underlying entry slice. Callers must not reorder or
// mutate it when the catalog is being used as a cross-match reference.
func (c *Catalog) Stars() []*Star {
	return c.stars
}
