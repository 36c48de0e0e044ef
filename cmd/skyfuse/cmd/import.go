package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/peacockIT/skyfuse"
	"github.com/peacockIT/skyfuse/pkg/catalog"
	"github.com/peacockIT/skyfuse/pkg/errors"
	"github.com/peacockIT/skyfuse/pkg/logging"
)

// manifest is the on-disk shape of an import manifest: the set of input
// files for one fusion run. Relative paths resolve against the working
// directory.
type manifest struct {
	CNS3      string `yaml:"cns3"`
	Accurate  string `yaml:"accurate"`
	Hipparcos string `yaml:"hipparcos"`
	Names     string `yaml:"names"`
	Output    string `yaml:"output"`
}

var (
	manifestPath  string
	accuratePath  string
	hipparcosPath string
	namesPath     string
	outputPath    string
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import [cns3-file]",
	Short: "Import and fuse star catalogs",
	Long: `Import the CNS3 nearby-star catalog, optionally fusing it with the
accurate-coordinates companion catalog, a Hipparcos-derived reference in
the skyfuse CSV interchange format, and a common-name table.

Input files can be given as flags or collected in a YAML manifest:

    cns3: CNS3.dat
    accurate: gj_accurate.dat
    hipparcos: hipparcos.csv
    names: names.yaml
    output: fused.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest listing input files")
	importCmd.Flags().StringVar(&accuratePath, "accurate", "", "accurate-coordinates catalog file")
	importCmd.Flags().StringVar(&hipparcosPath, "hipparcos", "", "Hipparcos reference catalog (CSV interchange format)")
	importCmd.Flags().StringVar(&namesPath, "names", "", "star-name table (YAML)")
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the fused catalog to this file (CSV)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := logging.WithOperation(cmd.Context(), "import")

	m := manifest{
		Accurate:  accuratePath,
		Hipparcos: hipparcosPath,
		Names:     namesPath,
		Output:    outputPath,
	}
	if len(args) > 0 {
		m.CNS3 = args[0]
	}

	if manifestPath != "" {
		if err := loadManifest(manifestPath, &m); err != nil {
			return err
		}
	}

	if m.CNS3 == "" {
		return errors.NewValidationError("cns3", "", "no CNS3 catalog file given")
	}

	var opts []skyfuse.Option
	if m.Accurate != "" {
		opts = append(opts, skyfuse.WithAccurate(m.Accurate))
	}
	if m.Hipparcos != "" {
		opts = append(opts, skyfuse.WithHipparcos(m.Hipparcos))
	}
	if m.Names != "" {
		opts = append(opts, skyfuse.WithNames(m.Names))
	}

	result, err := skyfuse.Import(ctx, m.CNS3, opts...)
	if err != nil {
		return err
	}

	log := logging.Ctx(ctx)
	log.Info().
		Int("cns3", result.CNS3Count).
		Int("accurate", result.AccurateCount).
		Int("fused", result.Catalog.Len()).
		Msg("Import complete")

	if m.Output != "" {
		if err := catalog.SaveCSV(m.Output, result.Catalog); err != nil {
			return err
		}
		log.Info().Str("path", m.Output).Msg("Wrote fused catalog")
	}

	return nil
}

// loadManifest reads a YAML manifest, filling only the fields the caller
// has not already set via flags. Flags win over manifest values.
func loadManifest(path string, m *manifest) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}

	var fromFile manifest
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return errors.WrapParse("yaml", path, err)
	}

	if m.CNS3 == "" {
		m.CNS3 = fromFile.CNS3
	}
	if m.Accurate == "" {
		m.Accurate = fromFile.Accurate
	}
	if m.Hipparcos == "" {
		m.Hipparcos = fromFile.Hipparcos
	}
	if m.Names == "" {
		m.Names = fromFile.Names
	}
	if m.Output == "" {
		m.Output = fromFile.Output
	}

	return nil
}
