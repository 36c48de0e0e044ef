package astro

import "math"

// Standard reference epochs expressed as Julian Dates.
const (
	// J2000 is the fundamental epoch J2000.0, the target frame for every
	// fused catalog entry.
	J2000 = 2451545.0

	// B1950 is the Besselian epoch B1950.0 used by older catalogs such as
	// the CNS3 nearby-star catalog.
	B1950 = 2433282.4235
)

// precessionAngles computes the IAU 1976 equatorial precession angles zeta,
// z, and theta, in radians, for precessing from J2000 to the epoch given as
// a Julian Date. From Jean Meeus, "Astronomical Algorithms", ch. 21.
func precessionAngles(jd float64) (zeta, z, theta float64) {
	t := (jd - J2000) / 36525.0
	t2 := t * t
	t3 := t * t2

	zeta = FromArcsec(2306.2181*t + 0.30188*t2 + 0.017998*t3)
	z = FromArcsec(2306.2181*t + 1.09468*t2 + 0.018203*t3)
	theta = FromArcsec(2004.3109*t - 0.42665*t2 - 0.041833*t3)
	return zeta, z, theta
}

// rotationY returns the frame rotation by angle about the Y axis.
func rotationY(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		c, 0, -s,
		0, 1, 0,
		s, 0, c,
	}
}

// rotationZ returns the frame rotation by angle about the Z axis.
func rotationZ(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// PrecessionMatrix returns the rotation matrix transforming rectangular
// equatorial coordinates from the fundamental J2000 mean frame to the mean
// frame of the epoch given as a Julian Date. Transpose the result to go the
// other way (e.g. B1950 catalog coordinates into J2000). Nutation is not
// included.
func PrecessionMatrix(jd float64) Matrix {
	zeta, z, theta := precessionAngles(jd)
	return rotationZ(-z).Multiply(rotationY(theta)).Multiply(rotationZ(-zeta))
}

// UpdateStarCoordsAndMotion re-expresses a star's position and proper motion
// in the frame given by the precession matrix m, rotating both jointly.
// Rotating position alone while leaving proper motion in the old frame is a
// correctness bug, so callers hand both here and never transform them
// separately.
//
// The radial components (distance, radial velocity) are frame-independent
// and pass through untouched, as do Unknown proper-motion components.
func UpdateStarCoordsAndMotion(m Matrix, coords, motion *Spherical) {
	rad := coords.Rad
	radVel := motion.Rad

	pmKnown := !IsUnknown(motion.Lon) && !IsUnknown(motion.Lat)

	c := Spherical{Lon: coords.Lon, Lat: coords.Lat, Rad: 1.0}
	mo := Spherical{}
	if pmKnown {
		mo = Spherical{Lon: motion.Lon, Lat: motion.Lat}
	}

	pos := m.Transform(c.Vector())
	vel := m.Transform(c.VectorVelocity(mo))

	*coords = pos.Spherical()
	*motion = pos.SphericalVelocity(vel)

	coords.Rad = rad
	motion.Rad = radVel
	if !pmKnown {
		motion.Lon = Unknown()
		motion.Lat = Unknown()
	}
}
