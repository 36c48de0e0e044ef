package ident

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Identifier is an opaque, catalog-tagged star designation. The zero value
// is the invalid identifier. Identifiers are comparable with == and ordered
// by Less: primarily by catalog tag, secondarily by numeric payload, finally
// by canonical string.
type Identifier struct {
	catalog Catalog
	seq     float64
	str     string
}

// New constructs an identifier from a catalog tag and a plain catalog
// number, e.g. New(CatHD, 48915) for "HD 48915".
func New(cat Catalog, number int64) Identifier {
	if cat == CatNone || number <= 0 {
		return Identifier{}
	}
	return Identifier{
		catalog: cat,
		seq:     float64(number),
		str:     cat.String() + " " + strconv.FormatInt(number, 10),
	}
}

// Catalog returns the identifier's catalog tag, or CatNone if invalid.
func (id Identifier) Catalog() Catalog {
	return id.catalog
}

// IsValid reports whether the identifier parsed to a known catalog. Invalid
// identifiers must never enter an identifier set; Add enforces this.
func (id Identifier) IsValid() bool {
	return id.catalog != CatNone && id.str != ""
}

// String returns the canonical rendering, e.g. "GJ 1001A" or "BD+04 3561".
func (id Identifier) String() string {
	return id.str
}

// Less defines the total order over identifiers.
func (id Identifier) Less(other Identifier) bool {
	if id.catalog != other.catalog {
		return id.catalog < other.catalog
	}
	if id.seq != other.seq {
		return id.seq < other.seq
	}
	return id.str < other.str
}

// Add appends id to idents unless id is invalid or already present, and
// returns the possibly extended slice. This is the only insertion path used
// by the pipeline, so an identifier set never holds duplicates or invalid
// entries.
func Add(idents []Identifier, id Identifier) []Identifier {
	if !id.IsValid() {
		return idents
	}
	for _, existing := range idents {
		if existing == id {
			return idents
		}
	}
	return append(idents, id)
}

// Sort orders idents by the identifier total order.
func Sort(idents []Identifier) {
	sort.Slice(idents, func(i, j int) bool {
		return idents[i].Less(idents[j])
	})
}

// Find returns the first identifier in idents under the given catalog tag,
// or the invalid identifier if none is present.
func Find(idents []Identifier, cat Catalog) Identifier {
	for _, id := range idents {
		if id.catalog == cat {
			return id
		}
	}
	return Identifier{}
}

var (
	gjPattern        = regexp.MustCompile(`^(GJ|Gl|NN|Wo)\s*([0-9]+(?:\.[0-9]+)?)\s*([A-D]*)$`)
	hdPattern        = regexp.MustCompile(`^HD\s*([0-9]+)$`)
	hipPattern       = regexp.MustCompile(`^HIP\s*([0-9]+)$`)
	dmPattern        = regexp.MustCompile(`^(BD|CD|CP)\s*([+-][0-9]+)[\s°]*([0-9]+)\s*([A-Da-d]?)$`)
	gcvsPattern      = regexp.MustCompile(`^([A-Z]{1,2}|V[0-9]+)\s+([A-Za-z]{3})$`)
	bayerPattern     = regexp.MustCompile(`^([A-Za-z]{2,3})\.?\s*([0-9]?)\s+([A-Za-z]{3})$`)
	flamsteedPattern = regexp.MustCompile(`^([0-9]+)\s+([A-Za-z]{3})$`)
)

// Parse constructs an identifier from a free-text catalog token. Prefix
// patterns are tried in a fixed priority order: explicit catalog prefixes
// (HIP, HD, GJ/Gl/NN/Wo, Durchmusterung zones) first, then variable-star,
// Bayer, and Flamsteed designations. An empty or unrecognized token yields
// the invalid identifier.
func Parse(s string) Identifier {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return Identifier{}
	}

	if m := hipPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return New(CatHIP, n)
	}

	if m := hdPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return New(CatHD, n)
	}

	if m := gjPattern.FindStringSubmatch(s); m != nil {
		// Gl, NN, and Wo numbering ranges do not overlap, so every
		// prefix collapses into a single GJ sequence.
		seq, _ := strconv.ParseFloat(m[2], 64)
		return Identifier{
			catalog: CatGJ,
			seq:     seq,
			str:     "GJ " + m[2] + m[3],
		}
	}

	if m := dmPattern.FindStringSubmatch(s); m != nil {
		seq, _ := strconv.ParseFloat(m[3], 64)
		return Identifier{
			catalog: CatDM,
			seq:     seq,
			str:     m[1] + m[2] + " " + m[3] + strings.ToUpper(m[4]),
		}
	}

	if id := parseGCVS(s); id.IsValid() {
		return id
	}

	if m := bayerPattern.FindStringSubmatch(s); m != nil && constellations[canonConstellation(m[3])] {
		letter := strings.ToLower(m[1])
		if pos, ok := greekLetters[letter]; ok {
			str := letter
			if m[2] != "" {
				str += m[2]
			}
			return Identifier{
				catalog: CatBayer,
				seq:     float64(pos),
				str:     str + " " + canonConstellation(m[3]),
			}
		}
	}

	if m := flamsteedPattern.FindStringSubmatch(s); m != nil && constellations[canonConstellation(m[2])] {
		seq, _ := strconv.ParseFloat(m[1], 64)
		return Identifier{
			catalog: CatFlamsteed,
			seq:     seq,
			str:     m[1] + " " + canonConstellation(m[2]),
		}
	}

	return Identifier{}
}

// parseGCVS recognizes General Catalog of Variable Stars designations:
// single letters R through Z, double letters RR through ZZ or AA through QZ,
// and the numbered V### series, each followed by a constellation.
func parseGCVS(s string) Identifier {
	m := gcvsPattern.FindStringSubmatch(s)
	if m == nil {
		return Identifier{}
	}

	con := canonConstellation(m[2])
	if !constellations[con] {
		return Identifier{}
	}

	letters := m[1]
	var seq float64
	switch {
	case strings.HasPrefix(letters, "V") && len(letters) > 1 && letters[1] >= '0' && letters[1] <= '9':
		seq, _ = strconv.ParseFloat(letters[1:], 64)
	case len(letters) == 1:
		if letters[0] < 'R' || letters[0] > 'Z' {
			return Identifier{}
		}
		seq = float64(letters[0] - 'Q')
	case len(letters) == 2:
		if letters[0] > letters[1] || letters[1] < 'A' || letters[1] > 'Z' {
			return Identifier{}
		}
		if letters[0] < 'A' || letters[0] > 'Z' {
			return Identifier{}
		}
		seq = float64(letters[0]-'A')*26 + float64(letters[1]-'A') + 100
	default:
		return Identifier{}
	}

	return Identifier{
		catalog: CatGCVS,
		seq:     seq,
		str:     letters + " " + con,
	}
}

// canonConstellation normalizes a constellation abbreviation to its IAU
// mixed-case form, e.g. "cma" or "CMA" to "CMa".
func canonConstellation(s string) string {
	if constellations[s] {
		return s
	}
	lower := strings.ToLower(s)
	for con := range constellations {
		if strings.ToLower(con) == lower {
			return con
		}
	}
	return s
}
