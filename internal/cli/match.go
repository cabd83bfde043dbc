package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dyematch/internal/colour"
	"dyematch/internal/config"
	"dyematch/internal/dye"
)

var (
	matchMethod      string
	matchMaxResults  int
	matchMaxDistance float64
	matchExclude     []int
	matchHueWindow   float64
	matchCatalog     string
	matchFormat      string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <colour>",
	Short: "Find the closest dyes to a target colour",
	Long: `Find the dyes in the catalog closest to a target colour, ranked by
perceptual distance.

Each match reports the distance, the hue deviance in degrees and a
quality band from excellent down to poor. The defaults can be set in
the config file and overridden per invocation with flags.

Examples:
  # Five closest dyes by CIEDE2000
  dyematch match "#B3242A"

  # Top 10 by OKLab, staying within 15 degrees of the target hue
  dyematch match --method oklab --max-results 10 --hue-window 15 "#2D74C4"

  # Search a custom catalog, skipping dyes already owned
  dyematch match --catalog mydyes.json --exclude 9,48 "#99182C"`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchMethod, "method", "m", "", "distance method (default from config)")
	matchCmd.Flags().IntVarP(&matchMaxResults, "max-results", "n", 0, "maximum number of matches (default from config)")
	matchCmd.Flags().Float64Var(&matchMaxDistance, "max-distance", 0, "drop matches beyond this distance")
	matchCmd.Flags().IntSliceVar(&matchExclude, "exclude", nil, "dye IDs to exclude")
	matchCmd.Flags().Float64Var(&matchHueWindow, "hue-window", 0, "restrict matches to ± this many degrees of the target hue")
	matchCmd.Flags().StringVar(&matchCatalog, "catalog", "", "dye catalog JSON file (default: built-in catalog)")
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", "text", "output format (text, json)")
	matchCmd.Flags().BoolVar(&forcePreview, "preview", false, "show colour swatches even when stdout is not a terminal")
}

// loadSettings resolves the effective settings: flags beat the config
// file, which beats the built-in defaults.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(globalConfig)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method, _ = flags.GetString("method")
	}
	if flags.Changed("max-results") {
		cfg.MaxResults, _ = flags.GetInt("max-results")
	}
	if flags.Changed("max-distance") {
		cfg.MaxDistance, _ = flags.GetFloat64("max-distance")
	}
	if flags.Changed("catalog") {
		cfg.Catalog, _ = flags.GetString("catalog")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadDyes returns the configured catalog, falling back to the bundled one.
func loadDyes(cfg config.Config) ([]dye.Dye, error) {
	if cfg.Catalog != "" {
		logger.Debug("loading catalog", "path", cfg.Catalog)
		return dye.LoadCatalog(cfg.Catalog)
	}
	return dye.DefaultCatalog()
}

func runMatch(cmd *cobra.Command, args []string) error {
	target, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	method, err := colour.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}

	dyes, err := loadDyes(cfg)
	if err != nil {
		return err
	}
	logger.Debug("searching catalog", "dyes", len(dyes), "method", method.String())

	matches, err := dye.FindMatches(target, dyes, method, dye.Options{
		MaxResults:  cfg.MaxResults,
		MaxDistance: cfg.MaxDistance,
		ExcludeIDs:  matchExclude,
		HueWindow:   matchHueWindow,
		Weights:     &cfg.Weights,
	})
	if err != nil {
		return err
	}

	switch matchFormat {
	case "json":
		out, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s  (%s, %d dyes)\n", renderSwatch(target), target.Hex(), method.String(), len(dyes))
		if len(matches) == 0 {
			fmt.Fprintln(w, "no matches within the given constraints")
			return nil
		}
		fmt.Fprint(w, renderMatches(matches))
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", matchFormat)
	}
	return nil
}
