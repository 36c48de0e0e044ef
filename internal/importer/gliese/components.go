// Package gliese imports the Gliese-Jahreiss nearby-star catalogs: the CNS3
// third (preliminary) edition at B1950, and the Accurate Coordinates for
// Gliese Catalog Stars companion at J2000. Catalog lines describing
// multiple stellar components are expanded into one entry per component,
// and freshly imported entries are fused against reference catalogs by
// identifier cross-match.
package gliese

import (
	"github.com/peacockIT/skyfuse/pkg/catalog"
	"github.com/peacockIT/skyfuse/pkg/ident"
)

// addComponent appends an independently owned copy of star to out, carrying
// the component-qualified GJ identifier "GJ <number><comp>". comp is a
// single component letter or empty for a bare base identifier.
func addComponent(star *catalog.Star, number, comp string, out *catalog.Catalog) {
	dup := star.Clone()
	dup.AddIdentifier(ident.Parse("GJ " + number + comp))
	dup.SortIdentifiers()
	out.Append(dup)
}

// expandComponents emits one entry per stellar component of a parsed
// catalog line and returns the number emitted. A components string shorter
// than two characters names at most one star and yields a single entry; a
// longer string ("AB", "ABC") is one independent star per character. Every
// emitted entry is a deep copy, so a later cross-match mutating one
// component cannot leak into its siblings.
func expandComponents(star *catalog.Star, number, comps string, out *catalog.Catalog) int {
	if len(comps) < 2 {
		addComponent(star, number, comps, out)
		return 1
	}

	for _, c := range comps {
		addComponent(star, number, string(c), out)
	}
	return len(comps)
}
