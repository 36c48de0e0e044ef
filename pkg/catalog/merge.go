package catalog

import (
	"github.com/peacockIT/skyfuse/pkg/astro"
	"github.com/peacockIT/skyfuse/pkg/ident"
)

// MergeAstrometry overwrites star's position and proper motion with the
// reference catalog's values, which are authoritative for astrometry. The
// precedence encodes which catalog is trusted for which physical quantity
// and must not be reordered:
//
//   - position angles and proper motion: always taken from ref
//   - distance: taken from ref only when ref measured it
//   - radial velocity: never taken from ref — astrometric reference
//     catalogs supply positions, not spectroscopy, so the provisional
//     entry's value stands even when ref carries one
//
// Magnitudes and spectral type are untouched for the same reason.
func MergeAstrometry(star, ref *Star) {
	star.Coords.Lon = ref.Coords.Lon
	star.Coords.Lat = ref.Coords.Lat
	if !astro.IsUnknown(ref.Coords.Rad) {
		star.Coords.Rad = ref.Coords.Rad
	}

	star.Motion.Lon = ref.Motion.Lon
	star.Motion.Lat = ref.Motion.Lat
	// star.Motion.Rad stays: radial velocity is never adopted from an
	// astrometric reference.
}

// AdoptCrossIDs unions ref's identifiers under the given catalog tags into
// star's identifier set, then re-sorts the set. Tags ref does not carry
// contribute nothing.
func AdoptCrossIDs(star, ref *Star, tags ...ident.Catalog) {
	for _, tag := range tags {
		star.AddIdentifier(ref.Identifier(tag))
	}
	star.SortIdentifiers()
}
