// Package skyfuse fuses heterogeneous star catalogs into a single canonical
// catalog of stellar objects with a consistent epoch, coordinate frame, and
// identifier scheme. Raw catalogs arrive in incompatible fixed-width
// layouts, identifier conventions, and reference epochs; skyfuse parses
// them tolerantly, normalizes astrometry to J2000, cross-matches entries
// between catalogs by identifier, and merges fields under a defined
// precedence so authoritative measurements overwrite approximate ones.
//
// Example usage:
//
//	result, err := skyfuse.Import(ctx, "CNS3.dat",
//	    skyfuse.WithAccurate("gj_accurate.dat"),
//	    skyfuse.WithHipparcos("hipparcos.csv"),
//	    skyfuse.WithNames("names.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("fused %d stars\n", result.Catalog.Len())
package skyfuse

import (
	"context"

	"github.com/peacockIT/skyfuse/internal/importer/gliese"
	"github.com/peacockIT/skyfuse/pkg/catalog"
	"github.com/peacockIT/skyfuse/pkg/logging"
)

// Result holds the fused catalog and per-source import counts. A count of
// zero means the source file could not be opened or produced no usable
// records; callers are expected to sanity-check counts against known
// catalog sizes.
type Result struct {
	// Catalog is the fused output collection, owned by the caller.
	Catalog *catalog.Catalog

	// CNS3Count is the number of component entries imported from CNS3.
	CNS3Count int

	// AccurateCount is the number of component entries imported from the
	// accurate-coordinates companion catalog.
	AccurateCount int
}

// Import runs the nearby-star fusion pipeline over the CNS3 catalog at
// cns3Path, configured by opts. Progress events go to the logger carried by
// ctx, falling back to the package default. Table and reference-catalog
// files that fail to load return an error; a missing CNS3 file itself is
// not an error and simply yields zero counts, so a multi-catalog import
// sequence can continue past it.
func Import(ctx context.Context, cns3Path string, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var names *catalog.NameMap
	if cfg.namesPath != "" {
		var err error
		if names, err = catalog.LoadNameMap(cfg.namesPath); err != nil {
			return nil, err
		}
	}

	var hipparcos *catalog.Catalog
	if cfg.hipparcosPath != "" {
		var err error
		if hipparcos, err = catalog.LoadCSV(cfg.hipparcosPath); err != nil {
			return nil, err
		}
	}

	result := &Result{Catalog: catalog.New()}

	// The accurate-coordinates catalog is both an output and the
	// cross-match reference for CNS3 astrometry.
	var accurate *catalog.Catalog
	if cfg.accuratePath != "" {
		accurate = catalog.New()
		result.AccurateCount = gliese.ImportAccurate(cfg.accuratePath, hipparcos, accurate)
		logging.Ctx(logging.WithCatalog(ctx, "GJ accurate")).Info().
			Int("stars", result.AccurateCount).
			Msg("Imported reference catalog")
	}

	result.CNS3Count = gliese.ImportCNS3(cns3Path, names, accurate, result.Catalog)
	logging.Ctx(logging.WithCatalog(ctx, "CNS3")).Info().
		Int("stars", result.CNS3Count).
		Msg("Imported catalog")

	return result, nil
}
