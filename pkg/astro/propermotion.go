package astro

import "math"

// PMPAToComponents converts a total proper motion pm and position angle of
// motion pa, at declination-like latitude lat, into separate proper-motion
// components in longitude and latitude. All angles in radians.
//
// At lat = ±90° the longitude component diverges (division by cos lat goes
// to infinity); the result is returned as-is rather than clamped, so callers
// near the poles must guard or accept an Unknown-like value.
func PMPAToComponents(pm, pa, lat float64) (pmLon, pmLat float64) {
	pmLon = pm * math.Sin(pa) / math.Cos(lat)
	pmLat = pm * math.Cos(pa)
	return pmLon, pmLat
}

// ComponentsToPMPA is the inverse of PMPAToComponents: it converts separate
// proper-motion components at latitude lat back into a total proper motion
// and a position angle normalized to [0, 2π). All angles in radians.
func ComponentsToPMPA(pmLon, pmLat, lat float64) (pm, pa float64) {
	pmLon *= math.Cos(lat)
	pm = math.Sqrt(pmLon*pmLon + pmLat*pmLat)
	pa = Atan2Pi(pmLon, pmLat)
	return pm, pa
}
