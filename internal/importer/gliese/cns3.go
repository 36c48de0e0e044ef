package gliese

import (
	"bufio"
	"os"
	"strings"

	"github.com/peacockIT/skyfuse/internal/importer"
	"github.com/peacockIT/skyfuse/pkg/astro"
	"github.com/peacockIT/skyfuse/pkg/catalog"
	"github.com/peacockIT/skyfuse/pkg/ident"
	"github.com/peacockIT/skyfuse/pkg/logging"
)

// CNS3 fixed-column layout. A line must reach cns3MinLength to carry the
// identifier, position, and photometry fields required for import; fields
// beyond that are optional and read empty on short lines.
const cns3MinLength = 119

// ImportCNS3 imports the Gliese-Jahreiss Catalog of Nearby Stars, 3rd
// (preliminary) Edition, appending one entry per stellar component to out
// and returning the number appended. The full catalog yields 3849 entries:
// 3803 lines, with multiples split and the Sun excluded.
//
// CNS3 positions and proper motions are B1950 and are precessed to J2000.
// When accurate is non-nil, each new entry is cross-matched against it by
// GJ identifier and its astrometry and cross-index identifiers are merged
// per the reference-precedence rules. When names is non-nil, common names
// are resolved afterwards from the final identifier sets.
//
// A missing or unopenable file returns 0; malformed lines are skipped and
// simply not counted.
func ImportCNS3(path string, names *catalog.NameMap, accurate *catalog.Catalog, out *catalog.Catalog) int {
	file, err := os.Open(path)
	if err != nil {
		logging.Debug().Err(err).Str("path", path).Msg("CNS3 catalog unavailable")
		return 0
	}
	defer file.Close()

	// Derived once per import run: rotation taking B1950 coordinates and
	// proper motion to J2000.
	precession := astro.PrecessionMatrix(astro.B1950).Transpose()

	start := out.Len()
	count := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := importer.Line(scanner.Text())
		if len(line) < cns3MinLength {
			continue
		}

		// The GJ number ignores the identifier prefix (GJ, Gl, NN, Wo)
		// in columns 0-2; all designations share one numbering.
		number := line.Field(2, 8)
		comps := line.Field(8, 10)

		// Cross-index numbers are only trusted when their full field is on
		// the line; a clipped read off a truncated line would fabricate a
		// wrong designation from partial digits.
		var strHD, strDM string
		if len(line) >= 152 {
			strHD = line.Field(146, 152)
		}
		if len(line) >= 165 {
			strDM = line.Field(153, 165)
		}

		// Identifier and position are required; a line without both
		// coordinates is unusable and skipped.
		strRA := line.Field(12, 20)
		strDec := line.Field(21, 29)
		if number == "" || strRA == "" || strDec == "" {
			continue
		}

		strPM := line.Field(30, 36)
		strPA := line.Field(37, 42)
		strRV := line.Field(43, 49)
		strSpec := line.Field(54, 66)
		strVmag := line.Field(67, 73)
		strBmV := line.Field(76, 81)
		strPlx := line.Field(108, 114)

		// B1950 position. RA is in hours minutes seconds.
		ra := astro.FromDegrees(importer.Degrees(strRA) * 15.0)
		dec := astro.FromDegrees(importer.Degrees(strDec))

		// CNS3 encodes proper motion as total motion plus position
		// angle; convert to components when both are present.
		pmRA, pmDec := astro.Unknown(), astro.Unknown()
		if strPM != "" && strPA != "" {
			pm := astro.FromArcsec(importer.Float(strPM))
			pa := astro.FromDegrees(importer.Float(strPA))
			pmRA, pmDec = astro.PMPAToComponents(pm, pa, dec)
		}

		coords := astro.Spherical{Lon: ra, Lat: dec, Rad: 1.0}
		motion := astro.Spherical{Lon: pmRA, Lat: pmDec}
		astro.UpdateStarCoordsAndMotion(precession, &coords, &motion)

		// Resulting parallax is in milliarcsec; values of 1 mas or less
		// are noise and leave the distance unknown.
		coords.Rad = astro.Unknown()
		if plx := importer.Float(strPlx); plx > 1.0 {
			coords.Rad = 1000.0 * astro.LYPerParsec / plx
		}

		// Radial velocity is in km/sec; carried as a fraction of light
		// speed.
		motion.Rad = astro.Unknown()
		if strRV != "" {
			motion.Rad = importer.Float(strRV) / astro.LightKmPerSec
		}

		vmag := astro.Unknown()
		if strVmag != "" {
			vmag = importer.Float(strVmag)
		}

		// B magnitude derives from the B-V color index; unknown V
		// propagates to unknown B.
		bmag := astro.Unknown()
		if strBmV != "" {
			bmag = importer.Float(strBmV) + vmag
		}

		star := catalog.NewStar()
		if strHD != "" {
			star.AddIdentifier(ident.New(ident.CatHD, int64(importer.Int(strHD))))
		}
		if strDM != "" {
			star.AddIdentifier(ident.Parse(strDM))
		}

		// The trailing name field may hold a variable-star designation.
		// Strings starting "MU" or "NU" are capitalized Bayer letters,
		// not legit GCVS identifiers, and are ignored.
		if len(line) > 189 {
			strName := line.Rest(188)
			if !strings.HasPrefix(strName, "MU") && !strings.HasPrefix(strName, "NU") {
				if id := ident.Parse(strName); id.Catalog() == ident.CatGCVS {
					star.AddIdentifier(id)
				}
			}
		}

		star.Coords = coords
		star.Motion = motion
		star.Vmag = vmag
		star.Bmag = bmag
		star.SpecType = strSpec

		count += expandComponents(star, number, comps, out)
	}

	if err := scanner.Err(); err != nil {
		logging.Debug().Err(err).Str("path", path).Msg("CNS3 read stopped early")
	}

	fuseCNS3(out, start, names, accurate)

	logging.Debug().Str("path", path).Int("stars", count).Msg("Imported CNS3 catalog")
	return count
}

// fuseCNS3 cross-matches each freshly appended entry against the accurate-
// coordinates catalog by GJ identifier, merging astrometry and
// cross-index identifiers, then resolves common names from the final
// identifier set. Reference collections are read-only; each entry is
// mutated at most once.
func fuseCNS3(out *catalog.Catalog, start int, names *catalog.NameMap, accurate *catalog.Catalog) {
	var gjMap *catalog.ObjectMap
	if accurate != nil {
		gjMap = catalog.NewObjectMap(accurate, ident.CatGJ)
	}

	for i := start; i < out.Len(); i++ {
		star := out.At(i)

		if gjMap != nil {
			if ref := gjMap.Lookup(star.Identifier(ident.CatGJ)); ref != nil {
				catalog.MergeAstrometry(star, ref)
				catalog.AdoptCrossIDs(star, ref,
					ident.CatHIP, ident.CatBayer, ident.CatFlamsteed, ident.CatGCVS)
			}
		}

		if names != nil {
			names.Resolve(star)
		}
	}
}
