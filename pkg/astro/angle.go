// Package astro provides the astrometric primitives for the skyfuse catalog
// pipeline: angle conversions, spherical and rectangular coordinates,
// precession between reference epochs, and proper-motion representation
// conversions.
//
// All angles are in radians, all proper motions in radians per year, and all
// distances in light-years unless a function says otherwise. Quantities that
// a catalog did not measure are carried as the Unknown sentinel rather than
// zero; see Unknown and IsUnknown.
package astro

import "math"

// Conversion factors between angular units and radians.
const (
	RadPerDeg    = math.Pi / 180.0
	RadPerHour   = math.Pi / 12.0
	RadPerArcmin = RadPerDeg / 60.0
	RadPerArcsec = RadPerDeg / 3600.0
)

// Physical constants used when normalizing catalog quantities.
const (
	// LYPerParsec is the number of light-years in one parsec.
	LYPerParsec = 3.261633

	// LightKmPerSec is the speed of light in kilometers per second,
	// used to express radial velocities as a fraction of light speed.
	LightKmPerSec = 299792.458
)

// FromDegrees converts an angle in degrees to radians.
func FromDegrees(deg float64) float64 {
	return deg * RadPerDeg
}

// FromHours converts an angle in hours of right ascension to radians.
func FromHours(hours float64) float64 {
	return hours * RadPerHour
}

// FromArcsec converts an angle in arcseconds to radians.
func FromArcsec(arcsec float64) float64 {
	return arcsec * RadPerArcsec
}

// ToDegrees converts an angle in radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad / RadPerDeg
}

// Atan2Pi returns the arctangent of y/x normalized to the range [0, 2π).
func Atan2Pi(y, x float64) float64 {
	a := math.Atan2(y, x)
	if a < 0 {
		a += 2.0 * math.Pi
	}
	return a
}

// Unknown returns the sentinel value carried for quantities a catalog did
// not measure. It is distinguished from every real magnitude, distance, and
// velocity; test for it with IsUnknown instead of comparing bit patterns.
func Unknown() float64 {
	return math.Inf(1)
}

// IsUnknown reports whether v is the not-measured sentinel.
func IsUnknown(v float64) bool {
	return math.IsInf(v, 0) || math.IsNaN(v)
}
