// Package catalog provides the fused star-catalog model: stellar entries,
// owned entry collections, identifier-keyed object maps for cross-matching,
// the field-level merge precedence applied when a cross-match succeeds, and
// common-name resolution.
package catalog

import (
	"github.com/peacockIT/skyfuse/pkg/astro"
	"github.com/peacockIT/skyfuse/pkg/ident"
)

// Star is one stellar entry in a fused catalog. Coords and Motion are
// always expressed at J2000; importers normalize older epochs before an
// entry is constructed. Magnitudes and the radial components may be
// astro.Unknown when the source catalog did not measure them.
type Star struct {
	Idents   []ident.Identifier
	Names    []string
	Coords   astro.Spherical
	Motion   astro.Spherical
	Vmag     float64
	Bmag     float64
	SpecType string
}

// NewStar returns a star with every measurable field set to Unknown and
// empty identifier and name sets.
func NewStar() *Star {
	return &Star{
		Coords: astro.Spherical{Rad: astro.Unknown()},
		Motion: astro.Spherical{Lon: astro.Unknown(), Lat: astro.Unknown(), Rad: astro.Unknown()},
		Vmag:   astro.Unknown(),
		Bmag:   astro.Unknown(),
	}
}

// Clone returns an independently owned deep copy of s. Component expansion
// relies on this: sibling components must never alias, so that a later
// cross-match mutating one cannot affect another.
func (s *Star) Clone() *Star {
	dup := *s
	dup.Idents = append([]ident.Identifier(nil), s.Idents...)
	dup.Names = append([]string(nil), s.Names...)
	return &dup
}

// Identifier returns the star's identifier under the given catalog tag, or
// the invalid identifier if the star has none.
func (s *Star) Identifier(cat ident.Catalog) ident.Identifier {
	return ident.Find(s.Idents, cat)
}

// AddIdentifier inserts id into the star's identifier set unless it is
// invalid or already present.
func (s *Star) AddIdentifier(id ident.Identifier) {
	s.Idents = ident.Add(s.Idents, id)
}

// SortIdentifiers orders the identifier set by the identifier total order.
func (s *Star) SortIdentifiers() {
	ident.Sort(s.Idents)
}
