package gliese

import (
	"bufio"
	"math"
	"os"
	"strings"

	"github.com/peacockIT/skyfuse/internal/importer"
	"github.com/peacockIT/skyfuse/pkg/astro"
	"github.com/peacockIT/skyfuse/pkg/catalog"
	"github.com/peacockIT/skyfuse/pkg/ident"
	"github.com/peacockIT/skyfuse/pkg/logging"
)

// Minimum usable line length for the Accurate Coordinates for Gliese
// Catalog Stars layout.
const accurateMinLength = 124

// ImportAccurate imports Accurate Coordinates for Gliese Catalog Stars,
// appending one entry per stellar component to out and returning the number
// appended. The full catalog yields 4266 entries from 4106 lines, multiples
// split into single components.
//
// Positions and proper motions are already J2000 and need no precession.
// When hipparcos is non-nil, each line's HIP designation is cross-matched
// against it to fill in distance, radial velocity, magnitudes, and the
// Bayer, Flamsteed, and GCVS cross-index identifiers.
//
// A missing or unopenable file returns 0; malformed lines are skipped and
// simply not counted.
func ImportAccurate(path string, hipparcos *catalog.Catalog, out *catalog.Catalog) int {
	file, err := os.Open(path)
	if err != nil {
		logging.Debug().Err(err).Str("path", path).Msg("accurate-coordinates catalog unavailable")
		return 0
	}
	defer file.Close()

	var hipMap *catalog.ObjectMap
	if hipparcos != nil {
		hipMap = catalog.NewObjectMap(hipparcos, ident.CatHIP)
	}

	count := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := importer.Line(scanner.Text())
		if len(line) < accurateMinLength {
			continue
		}

		// GJ number with embedded component letters; the Gl/GJ/NN/Wo
		// prefix sits in columns 0-2 and is ignored.
		strGJ := line.Field(2, 22)
		strHIP := line.Field(22, 35)

		number, comps := splitComponents(strGJ)
		if number == "" {
			continue
		}

		strRA := line.Field(36, 47)
		strDec := line.Field(48, 59)
		if strRA == "" || strDec == "" {
			continue
		}

		strPMRA := line.Field(61, 67)
		strPMDec := line.Field(69, 75)

		ra := astro.FromDegrees(importer.Degrees(strRA) * 15.0)
		dec := astro.FromDegrees(importer.Degrees(strDec))

		// Proper motion in R.A. is stored as a great-circle rate and
		// converted to a coordinate rate here.
		pmRA := astro.Unknown()
		if strPMRA != "" {
			pmRA = astro.FromArcsec(importer.Float(strPMRA)) / math.Cos(dec)
		}

		pmDec := astro.Unknown()
		if strPMDec != "" {
			pmDec = astro.FromArcsec(importer.Float(strPMDec))
		}

		star := catalog.NewStar()
		star.Coords = astro.Spherical{Lon: ra, Lat: dec, Rad: astro.Unknown()}
		star.Motion = astro.Spherical{Lon: pmRA, Lat: pmDec, Rad: astro.Unknown()}

		hipID := ident.Parse(strHIP)
		star.AddIdentifier(hipID)

		// A Hipparcos cross-match supplies what this catalog lacks:
		// distance, radial velocity, photometry, and the classical
		// designations.
		if hipMap != nil {
			if ref := hipMap.Lookup(hipID); ref != nil {
				star.Coords.Rad = ref.Coords.Rad
				star.Motion.Rad = ref.Motion.Rad
				star.Vmag = ref.Vmag
				star.Bmag = ref.Bmag

				star.AddIdentifier(ref.Identifier(ident.CatBayer))
				star.AddIdentifier(ref.Identifier(ident.CatFlamsteed))
				star.AddIdentifier(ref.Identifier(ident.CatGCVS))
			}
		}

		count += expandComponents(star, number, comps, out)
	}

	if err := scanner.Err(); err != nil {
		logging.Debug().Err(err).Str("path", path).Msg("accurate-coordinates read stopped early")
	}

	logging.Debug().Str("path", path).Int("stars", count).Msg("Imported accurate-coordinates catalog")
	return count
}

// splitComponents separates a raw GJ designation into its base number and
// component letters. A few designations are duplicates on a single line
// separated by a slash (example: "3406 A/3407 B"); the duplicate after the
// slash is intentionally discarded, keeping the first designation only.
func splitComponents(strGJ string) (number, comps string) {
	pos := strings.IndexAny(strGJ, "ABCD")
	if pos < 0 {
		return strings.TrimSpace(strGJ), ""
	}

	end := strings.IndexByte(strGJ, '/')
	if end < 0 || end < pos {
		end = len(strGJ)
	}

	number = strings.TrimSpace(strGJ[:pos])
	comps = strings.TrimSpace(strGJ[pos:end])
	return number, comps
}
