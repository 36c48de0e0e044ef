package skyfuse

// config collects the optional inputs of an Import run.
type config struct {
	namesPath     string
	accuratePath  string
	hipparcosPath string
}

// Option configures an Import run.
type Option func(*config) error

// WithNames sets the YAML star-name table used to resolve common names
// from fused identifier sets.
func WithNames(path string) Option {
	return func(c *config) error {
		c.namesPath = path
		return nil
	}
}

// WithAccurate sets the Accurate Coordinates for Gliese Catalog Stars file
// used as the astrometric cross-match reference for CNS3 entries.
func WithAccurate(path string) Option {
	return func(c *config) error {
		c.accuratePath = path
		return nil
	}
}

// WithHipparcos sets a Hipparcos-derived reference catalog in the skyfuse
// CSV interchange format, used to enrich accurate-coordinates entries with
// distance, radial velocity, photometry, and classical designations.
func WithHipparcos(path string) Option {
	return func(c *config) error {
		c.hipparcosPath = path
		return nil
	}
}
