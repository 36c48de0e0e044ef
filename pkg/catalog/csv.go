package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peacockIT/skyfuse/pkg/astro"
	"github.com/peacockIT/skyfuse/pkg/errors"
	"github.com/peacockIT/skyfuse/pkg/ident"
)

// csvHeader is the interchange record layout for fused stellar entries.
// Angles are in degrees, proper motions in arcsec/year, radial velocity in
// km/sec, distance in light-years. Unknown values are empty fields.
var csvHeader = []string{
	"ra_deg", "dec_deg", "dist_ly",
	"pmra", "pmdec", "rv_kms",
	"vmag", "bmag", "spec",
	"idents", "names",
}

// WriteCSV writes the catalog to w in the skyfuse interchange format.
func WriteCSV(w io.Writer, c *Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errors.WrapIO("write", "csv header", err)
	}

	for _, s := range c.Stars() {
		ids := make([]string, 0, len(s.Idents))
		for _, id := range s.Idents {
			ids = append(ids, id.String())
		}

		record := []string{
			formatField(astro.ToDegrees(s.Coords.Lon)),
			formatField(astro.ToDegrees(s.Coords.Lat)),
			formatField(s.Coords.Rad),
			formatField(s.Motion.Lon / astro.RadPerArcsec),
			formatField(s.Motion.Lat / astro.RadPerArcsec),
			formatField(s.Motion.Rad * astro.LightKmPerSec),
			formatField(s.Vmag),
			formatField(s.Bmag),
			s.SpecType,
			strings.Join(ids, ";"),
			strings.Join(s.Names, ";"),
		}
		if err := cw.Write(record); err != nil {
			return errors.WrapIO("write", "csv record", err)
		}
	}

	cw.Flush()
	return errors.WrapIO("flush", "csv", cw.Error())
}

// SaveCSV writes the catalog to a file at path.
func SaveCSV(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer f.Close()
	return WriteCSV(f, c)
}

// ReadCSV parses a catalog from the skyfuse interchange format.
func ReadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", "", err)
	}

	c := New()
	for i, rec := range records {
		if i == 0 && rec[0] == csvHeader[0] {
			continue
		}

		s := NewStar()
		s.Coords = astro.Spherical{
			Lon: astro.FromDegrees(parseField(rec[0])),
			Lat: astro.FromDegrees(parseField(rec[1])),
			Rad: parseField(rec[2]),
		}
		s.Motion = astro.Spherical{
			Lon: parseField(rec[3]) * astro.RadPerArcsec,
			Lat: parseField(rec[4]) * astro.RadPerArcsec,
			Rad: parseField(rec[5]) / astro.LightKmPerSec,
		}
		s.Vmag = parseField(rec[6])
		s.Bmag = parseField(rec[7])
		s.SpecType = rec[8]

		for _, raw := range strings.Split(rec[9], ";") {
			s.AddIdentifier(ident.Parse(raw))
		}
		if rec[10] != "" {
			s.Names = strings.Split(rec[10], ";")
		}

		c.Append(s)
	}

	return c, nil
}

// LoadCSV reads a catalog from a file at path.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// formatField renders v for a CSV field, mapping Unknown to empty.
func formatField(v float64) string {
	if astro.IsUnknown(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// parseField parses a CSV field, mapping empty or malformed to Unknown.
func parseField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return astro.Unknown()
	}
	return v
}
