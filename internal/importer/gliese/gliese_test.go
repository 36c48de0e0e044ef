package gliese

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peacockIT/skyfuse/pkg/astro"
	"github.com/peacockIT/skyfuse/pkg/catalog"
	"github.com/peacockIT/skyfuse/pkg/ident"
)

// placement is one field of a fixed-width fixture line.
type placement struct {
	start int
	text  string
}

// buildLine renders a fixed-width line of the given length with each field
// at its byte offset.
func buildLine(length int, fields []placement) string {
	buf := []byte(strings.Repeat(" ", length))
	for _, f := range fields {
		copy(buf[f.start:], f.text)
	}
	return string(buf)
}

// cns3Line builds a minimal valid CNS3 line for the given GJ number and
// components string.
func cns3Line(number, comps string, extra ...placement) string {
	fields := []placement{
		{0, "Gl"},
		{2, number},
		{8, comps},
		{12, "01 06 07"},  // RA, B1950 hours
		{21, "-17 36.0"},  // Dec, B1950 degrees
		{54, "M4"},        // spectral type
		{67, "11.50"},     // V magnitude
		{76, "1.74"},      // B-V color index
		{108, "100.0"},    // parallax, mas
	}
	fields = append(fields, extra...)
	return buildLine(200, fields)
}

func writeCatalogFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.dat")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func findByGJ(t *testing.T, c *catalog.Catalog, token string) *catalog.Star {
	t.Helper()
	id := ident.Parse(token)
	require.True(t, id.IsValid())
	for _, s := range c.Stars() {
		if s.Identifier(ident.CatGJ) == id {
			return s
		}
	}
	t.Fatalf("no entry with identifier %q", token)
	return nil
}

func TestImportCNS3MissingFile(t *testing.T) {
	out := catalog.New()
	count := ImportCNS3(filepath.Join(t.TempDir(), "nope.dat"), nil, nil, out)

	assert.Equal(t, 0, count)
	assert.Equal(t, 0, out.Len())
}

func TestImportCNS3SkipsUnusableLines(t *testing.T) {
	noPosition := buildLine(200, []placement{{0, "Gl"}, {2, "9002"}})

	path := writeCatalogFile(t,
		"Gl  9001",             // shorter than the minimum usable length
		noPosition,             // long enough but missing RA/Dec
		cns3Line("1001", ""),   // valid
	)

	out := catalog.New()
	count := ImportCNS3(path, nil, nil, out)

	assert.Equal(t, 1, count)
	assert.Equal(t, 1, out.Len())
}

func TestImportCNS3ComponentExpansion(t *testing.T) {
	path := writeCatalogFile(t, cns3Line("1001", "AB"))

	out := catalog.New()
	count := ImportCNS3(path, nil, nil, out)

	require.Equal(t, 2, count)
	require.Equal(t, 2, out.Len())

	a := out.At(0)
	b := out.At(1)
	assert.True(t, strings.HasSuffix(a.Identifier(ident.CatGJ).String(), " 1001A"))
	assert.True(t, strings.HasSuffix(b.Identifier(ident.CatGJ).String(), " 1001B"))

	// Components are independent deep copies.
	a.Vmag = 0.0
	assert.Equal(t, 11.5, b.Vmag)
	a.AddIdentifier(ident.Parse("HIP 12345"))
	assert.False(t, b.Identifier(ident.CatHIP).IsValid())
}

func TestImportCNS3SingleComponentKeepsSuffix(t *testing.T) {
	path := writeCatalogFile(t, cns3Line("2005", "B"))

	out := catalog.New()
	count := ImportCNS3(path, nil, nil, out)

	require.Equal(t, 1, count)
	assert.Equal(t, "GJ 2005B", out.At(0).Identifier(ident.CatGJ).String())
}

func TestImportCNS3Fields(t *testing.T) {
	line := cns3Line("1001", "",
		placement{43, " +12.0"},
		placement{146, " 48915"},
		placement{153, "BD-17  236"},
		placement{188, "RR Cet"},
	)
	path := writeCatalogFile(t, line)

	out := catalog.New()
	require.Equal(t, 1, ImportCNS3(path, nil, nil, out))
	star := out.At(0)

	// Parallax of 100 mas is 10 parsecs.
	assert.InDelta(t, 10.0*astro.LYPerParsec, star.Coords.Rad, 1e-9)

	// Radial velocity is carried as a fraction of light speed.
	assert.InDelta(t, 12.0/astro.LightKmPerSec, star.Motion.Rad, 1e-15)

	assert.Equal(t, 11.5, star.Vmag)
	assert.InDelta(t, 11.5+1.74, star.Bmag, 1e-12)
	assert.Equal(t, "M4", star.SpecType)

	assert.Equal(t, "HD 48915", star.Identifier(ident.CatHD).String())
	assert.Equal(t, "BD-17 236", star.Identifier(ident.CatDM).String())
	assert.Equal(t, "RR Cet", star.Identifier(ident.CatGCVS).String())

	// No proper motion fields on the line: motion stays unknown even
	// after precession.
	assert.True(t, astro.IsUnknown(star.Motion.Lon))
	assert.True(t, astro.IsUnknown(star.Motion.Lat))

	// Precession to J2000 moves the position but keeps it in the
	// neighborhood of the B1950 coordinates.
	assert.InDelta(t, astro.FromDegrees(-17.6), star.Coords.Lat, astro.FromDegrees(1.0))
}

func TestImportCNS3TruncatedCrossIndexFields(t *testing.T) {
	required := []placement{
		{0, "Gl"},
		{2, "1003"},
		{12, "01 06 07"},
		{21, "-17 36.0"},
	}

	// A line cut off mid-field must not yield a designation built from
	// the partial digits that happen to fit.
	partialHD := buildLine(150, append([]placement{{146, "4891"}}, required...))
	partialDM := buildLine(160, append([]placement{{153, "BD-17 2"}}, required...))

	path := writeCatalogFile(t, partialHD, partialDM)

	out := catalog.New()
	require.Equal(t, 2, ImportCNS3(path, nil, nil, out))

	assert.False(t, out.At(0).Identifier(ident.CatHD).IsValid())
	assert.False(t, out.At(1).Identifier(ident.CatDM).IsValid())
}

func TestImportCNS3IgnoresCapitalizedBayerNames(t *testing.T) {
	path := writeCatalogFile(t, cns3Line("1002", "", placement{188, "MU Cas"}))

	out := catalog.New()
	require.Equal(t, 1, ImportCNS3(path, nil, nil, out))

	assert.False(t, out.At(0).Identifier(ident.CatGCVS).IsValid(),
		"MU/NU name strings are capitalized Bayer letters, not GCVS designations")
}

func TestImportCNS3FusesAgainstAccurateCatalog(t *testing.T) {
	path := writeCatalogFile(t, cns3Line("1001", "", placement{43, " +12.0"}))

	ref := catalog.NewStar()
	ref.AddIdentifier(ident.Parse("GJ 1001"))
	ref.AddIdentifier(ident.Parse("HIP 99999"))
	ref.AddIdentifier(ident.Parse("RR Cet"))
	ref.Coords = astro.Spherical{Lon: 0.29, Lat: -0.306, Rad: 41.0}
	ref.Motion = astro.Spherical{Lon: 1e-6, Lat: 2e-6, Rad: 0.5}
	accurate := catalog.New()
	accurate.Append(ref)

	names := catalog.NewNameMap([]catalog.NameEntry{
		{ID: ident.Parse("HIP 99999"), Names: []string{"Testar"}},
	})

	out := catalog.New()
	require.Equal(t, 1, ImportCNS3(path, names, accurate, out))
	star := out.At(0)

	// Astrometry comes from the accurate reference.
	assert.Equal(t, 0.29, star.Coords.Lon)
	assert.Equal(t, -0.306, star.Coords.Lat)
	assert.Equal(t, 41.0, star.Coords.Rad)
	assert.Equal(t, 1e-6, star.Motion.Lon)
	assert.Equal(t, 2e-6, star.Motion.Lat)

	// Radial velocity stays with the provisional CNS3 value.
	assert.InDelta(t, 12.0/astro.LightKmPerSec, star.Motion.Rad, 1e-15)

	// Cross-index identifiers are unioned and the set re-sorted.
	assert.True(t, star.Identifier(ident.CatHIP).IsValid())
	assert.True(t, star.Identifier(ident.CatGCVS).IsValid())
	require.True(t, len(star.Idents) >= 3)
	for i := 1; i < len(star.Idents); i++ {
		assert.False(t, star.Idents[i].Less(star.Idents[i-1]), "identifier set must be sorted")
	}

	// Names resolved from the adopted HIP identifier.
	assert.Equal(t, []string{"Testar"}, star.Names)
}

func TestImportCNS3UnmatchedEntryKeepsOwnAstrometry(t *testing.T) {
	path := writeCatalogFile(t, cns3Line("1001", ""))

	accurate := catalog.New() // empty reference: no cross-match possible

	out := catalog.New()
	require.Equal(t, 1, ImportCNS3(path, nil, accurate, out))

	star := out.At(0)
	assert.InDelta(t, 10.0*astro.LYPerParsec, star.Coords.Rad, 1e-9,
		"a no-match leaves the provisional fields authoritative")
}

// accurateLine builds a minimal valid Accurate Coordinates line.
func accurateLine(designation, hip string, extra ...placement) string {
	fields := []placement{
		{0, "Gl"},
		{2, designation},
		{22, hip},
		{36, "14 29 42.95"}, // RA, J2000 hours
		{48, "-62 40 46.2"}, // Dec, J2000 degrees
		{61, "-3.776"},      // pmRA, arcsec/yr
		{69, "+0.765"},      // pmDec, arcsec/yr
	}
	fields = append(fields, extra...)
	return buildLine(130, fields)
}

func TestImportAccurateMissingFile(t *testing.T) {
	out := catalog.New()
	assert.Equal(t, 0, ImportAccurate(filepath.Join(t.TempDir(), "nope.dat"), nil, out))
	assert.Equal(t, 0, out.Len())
}

func TestImportAccurateBasicLine(t *testing.T) {
	path := writeCatalogFile(t, accurateLine("551", "HIP 70890"))

	out := catalog.New()
	require.Equal(t, 1, ImportAccurate(path, nil, out))
	star := out.At(0)

	assert.Equal(t, "GJ 551", star.Identifier(ident.CatGJ).String())
	assert.Equal(t, "HIP 70890", star.Identifier(ident.CatHIP).String())

	// pmRA is stored as a great-circle rate; the coordinate rate grows
	// with 1/cos(dec).
	dec := astro.FromDegrees(-(62.0 + 40.0/60.0 + 46.2/3600.0))
	assert.InDelta(t, dec, star.Coords.Lat, 1e-12)
	expected := astro.FromArcsec(-3.776) / math.Cos(dec)
	assert.InDelta(t, expected, star.Motion.Lon, 1e-15)
	assert.InDelta(t, astro.FromArcsec(0.765), star.Motion.Lat, 1e-15)

	assert.True(t, astro.IsUnknown(star.Coords.Rad))
	assert.True(t, astro.IsUnknown(star.Motion.Rad))
	assert.True(t, astro.IsUnknown(star.Vmag))
}

func TestImportAccurateComponentSplitting(t *testing.T) {
	path := writeCatalogFile(t, accurateLine("9066 AB", ""))

	out := catalog.New()
	require.Equal(t, 2, ImportAccurate(path, nil, out))

	assert.Equal(t, "GJ 9066A", out.At(0).Identifier(ident.CatGJ).String())
	assert.Equal(t, "GJ 9066B", out.At(1).Identifier(ident.CatGJ).String())
}

func TestImportAccurateSlashDuplicateDiscarded(t *testing.T) {
	path := writeCatalogFile(t, accurateLine("3406 A/3407 B", ""))

	out := catalog.New()
	require.Equal(t, 1, ImportAccurate(path, nil, out))

	assert.Equal(t, "GJ 3406A", out.At(0).Identifier(ident.CatGJ).String(),
		"the duplicate designation after the slash is discarded")
}

func TestImportAccurateHipparcosCrossMatch(t *testing.T) {
	path := writeCatalogFile(t, accurateLine("551", "HIP 70890"))

	ref := catalog.NewStar()
	ref.AddIdentifier(ident.Parse("HIP 70890"))
	ref.AddIdentifier(ident.Parse("alp2 Cen"))
	ref.Coords = astro.Spherical{Lon: 3.79, Lat: -1.09, Rad: 4.246}
	ref.Motion = astro.Spherical{Lon: -1.8e-5, Lat: 3.7e-6, Rad: -22.4 / astro.LightKmPerSec}
	ref.Vmag = 11.13
	ref.Bmag = 12.95
	hip := catalog.New()
	hip.Append(ref)

	out := catalog.New()
	require.Equal(t, 1, ImportAccurate(path, hip, out))
	star := out.At(0)

	// The cross-match fills what this catalog lacks, but the accurate
	// position and proper motion on the line stay authoritative.
	assert.Equal(t, 4.246, star.Coords.Rad)
	assert.Equal(t, ref.Motion.Rad, star.Motion.Rad)
	assert.Equal(t, 11.13, star.Vmag)
	assert.Equal(t, 12.95, star.Bmag)
	assert.True(t, star.Identifier(ident.CatBayer).IsValid())
	assert.NotEqual(t, ref.Coords.Lon, star.Coords.Lon)
}

func TestSplitComponents(t *testing.T) {
	tests := []struct {
		in     string
		number string
		comps  string
	}{
		{"551", "551", ""},
		{"9066 AB", "9066", "AB"},
		{"1001 A", "1001", "A"},
		{"3406 A/3407 B", "3406", "A"},
		{"105.1", "105.1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			number, comps := splitComponents(tt.in)
			assert.Equal(t, tt.number, number)
			assert.Equal(t, tt.comps, comps)
		})
	}
}
