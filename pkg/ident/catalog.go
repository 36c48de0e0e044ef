// Package ident provides catalog-tagged star identifiers: parsing from
// free-text catalog tokens, canonical formatting, and the total order used
// to sort and deduplicate identifier sets across the fusion pipeline.
package ident

// Catalog enumerates the star catalogs an identifier can belong to.
type Catalog int

// Known catalogs, in identifier sort order.
const (
	// CatNone tags an identifier that failed to parse; it is never valid.
	CatNone Catalog = iota

	// CatBayer is a Bayer Greek-letter designation, e.g. "alp CMa".
	CatBayer

	// CatFlamsteed is a Flamsteed numbered designation, e.g. "61 Cyg".
	CatFlamsteed

	// CatGCVS is a General Catalog of Variable Stars designation,
	// e.g. "RR Lyr" or "V1216 Sgr".
	CatGCVS

	// CatHD is the Henry Draper catalog.
	CatHD

	// CatDM is a Durchmusterung zone designation (BD, CD, or CP),
	// e.g. "BD+04 3561".
	CatDM

	// CatHIP is the Hipparcos catalog.
	CatHIP

	// CatGJ is the Gliese-Jahreiss catalog of nearby stars. GJ, Gl, NN,
	// and Wo prefixes are all folded into GJ numbering.
	CatGJ
)

// String returns the conventional catalog prefix.
func (c Catalog) String() string {
	switch c {
	case CatBayer:
		return "Bayer"
	case CatFlamsteed:
		return "Flamsteed"
	case CatGCVS:
		return "GCVS"
	case CatHD:
		return "HD"
	case CatDM:
		return "DM"
	case CatHIP:
		return "HIP"
	case CatGJ:
		return "GJ"
	default:
		return "None"
	}
}

// constellations is the set of IAU three-letter constellation abbreviations,
// used to validate Bayer, Flamsteed, and GCVS designations.
var constellations = map[string]bool{
	"And": true, "Ant": true, "Aps": true, "Aqr": true, "Aql": true,
	"Ara": true, "Ari": true, "Aur": true, "Boo": true, "Cae": true,
	"Cam": true, "Cnc": true, "CVn": true, "CMa": true, "CMi": true,
	"Cap": true, "Car": true, "Cas": true, "Cen": true, "Cep": true,
	"Cet": true, "Cha": true, "Cir": true, "Col": true, "Com": true,
	"CrA": true, "CrB": true, "Crv": true, "Crt": true, "Cru": true,
	"Cyg": true, "Del": true, "Dor": true, "Dra": true, "Equ": true,
	"Eri": true, "For": true, "Gem": true, "Gru": true, "Her": true,
	"Hor": true, "Hya": true, "Hyi": true, "Ind": true, "Lac": true,
	"Leo": true, "LMi": true, "Lep": true, "Lib": true, "Lup": true,
	"Lyn": true, "Lyr": true, "Men": true, "Mic": true, "Mon": true,
	"Mus": true, "Nor": true, "Oct": true, "Oph": true, "Ori": true,
	"Pav": true, "Peg": true, "Per": true, "Phe": true, "Pic": true,
	"Psc": true, "PsA": true, "Pup": true, "Pyx": true, "Ret": true,
	"Sge": true, "Sgr": true, "Sco": true, "Scl": true, "Sct": true,
	"Ser": true, "Sex": true, "Tau": true, "Tel": true, "Tri": true,
	"TrA": true, "Tuc": true, "UMa": true, "UMi": true, "Vel": true,
	"Vir": true, "Vol": true, "Vul": true,
}

// greekLetters maps Bayer Greek-letter abbreviations to their alphabet
// position, used as the numeric sort key for Bayer designations.
var greekLetters = map[string]int{
	"alp": 1, "bet": 2, "gam": 3, "del": 4, "eps": 5, "zet": 6,
	"eta": 7, "the": 8, "iot": 9, "kap": 10, "lam": 11, "mu": 12,
	"nu": 13, "xi": 14, "omi": 15, "pi": 16, "rho": 17, "sig": 18,
	"tau": 19, "ups": 20, "phi": 21, "chi": 22, "psi": 23, "ome": 24,
}
