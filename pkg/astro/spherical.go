package astro

import "math"

// Spherical is a position or motion in spherical coordinates: a
// longitude-like angle (right ascension), a latitude-like angle
// (declination), and a radial component. For a position the radial component
// is distance in light-years; for a motion it is radial velocity as a
// fraction of light speed. Either radial component may be Unknown.
//
// Position and motion are always carried as a pair because frame transforms
// rotate proper motion together with position; see UpdateStarCoordsAndMotion.
type Spherical struct {
	Lon float64
	Lat float64
	Rad float64
}

// Vector converts s to rectangular coordinates.
func (s Spherical) Vector() Vector {
	cosLat := math.Cos(s.Lat)
	return Vector{
		X: s.Rad * cosLat * math.Cos(s.Lon),
		Y: s.Rad * cosLat * math.Sin(s.Lon),
		Z: s.Rad * math.Sin(s.Lat),
	}
}

// VectorVelocity converts the motion (angular rates and radial rate in
// motion) at position s to a rectangular velocity vector.
func (s Spherical) VectorVelocity(motion Spherical) Vector {
	cosLon, sinLon := math.Cos(s.Lon), math.Sin(s.Lon)
	cosLat, sinLat := math.Cos(s.Lat), math.Sin(s.Lat)

	x := s.Rad * cosLat * cosLon
	y := s.Rad * cosLat * sinLon

	return Vector{
		X: cosLat*cosLon*motion.Rad - y*motion.Lon - s.Rad*sinLat*cosLon*motion.Lat,
		Y: cosLat*sinLon*motion.Rad + x*motion.Lon - s.Rad*sinLat*sinLon*motion.Lat,
		Z: sinLat*motion.Rad + s.Rad*cosLat*motion.Lat,
	}
}

// Spherical converts a rectangular position to spherical coordinates, with
// longitude normalized to [0, 2π).
func (v Vector) Spherical() Spherical {
	xy := math.Hypot(v.X, v.Y)
	return Spherical{
		Lon: Atan2Pi(v.Y, v.X),
		Lat: math.Atan2(v.Z, xy),
		Rad: math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z),
	}
}

// SphericalVelocity converts the rectangular velocity vel at position v to
// angular rates and a radial rate.
func (v Vector) SphericalVelocity(vel Vector) Spherical {
	r2 := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	r := math.Sqrt(r2)
	xy2 := v.X*v.X + v.Y*v.Y
	xy := math.Sqrt(xy2)

	dot := v.X*vel.X + v.Y*vel.Y

	return Spherical{
		Lon: (v.X*vel.Y - v.Y*vel.X) / xy2,
		Lat: (vel.Z*xy - v.Z*dot/xy) / r2,
		Rad: (dot + v.Z*vel.Z) / r,
	}
}
