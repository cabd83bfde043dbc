package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dyematch/internal/colour"
	"dyematch/internal/dye"
)

var (
	harmonyScheme    string
	harmonyWindow    float64
	harmonyPerSlot   int
	harmonyCatalogFl string
	harmonyFormat    string
)

// harmonyCmd represents the harmony command
var harmonyCmd = &cobra.Command{
	Use:   "harmony <colour>",
	Short: "Build a colour harmony palette from catalog dyes",
	Long: `Build a colour harmony palette around a base colour, filling each slot
with the closest catalog dyes near the slot's target hue.

Available schemes: ` + strings.Join(schemeNames(), ", ") + `

Examples:
  # Complementary partner dyes for a blue
  dyematch harmony "#2D74C4"

  # Triadic palette with three candidates per slot
  dyematch harmony --scheme triadic --per-slot 3 "#B3242A"`,
	Args: cobra.ExactArgs(1),
	RunE: runHarmony,
}

func init() {
	harmonyCmd.Flags().StringVarP(&harmonyScheme, "scheme", "s", "complementary", "harmony scheme")
	harmonyCmd.Flags().Float64Var(&harmonyWindow, "hue-window", 30, "hue window around each slot in degrees")
	harmonyCmd.Flags().IntVar(&harmonyPerSlot, "per-slot", 1, "dye candidates per palette slot")
	harmonyCmd.Flags().StringVar(&harmonyCatalogFl, "catalog", "", "dye catalog JSON file (default: built-in catalog)")
	harmonyCmd.Flags().StringVarP(&harmonyFormat, "format", "f", "text", "output format (text, json)")
}

func schemeNames() []string {
	schemes := colour.Schemes()
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = s.String()
	}
	return names
}

// harmonySlot is one hue position in the palette and its candidate dyes.
type harmonySlot struct {
	Hue     float64     `json:"hue"`
	Matches []dye.Match `json:"matches"`
}

func runHarmony(cmd *cobra.Command, args []string) error {
	target, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}
	scheme, err := colour.ParseScheme(harmonyScheme)
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

	baseHue := target.ToHSV().H
	hues := scheme.TargetHues(baseHue)
	logger.Debug("building harmony", "scheme", scheme.String(), "base_hue", baseHue, "slots", len(hues))

	slots := make([]harmonySlot, 0, len(hues))
	for _, hue := range hues {
		centre := hue
		matches, err := dye.FindMatches(target, dyes, method, dye.Options{
			MaxResults: harmonyPerSlot,
			HueWindow:  harmonyWindow,
			HueCentre:  &centre,
			Weights:    &cfg.Weights,
		})
		if err != nil {
			return err
		}
		slots = append(slots, harmonySlot{Hue: hue, Matches: matches})
	}

	switch harmonyFormat {
	case "json":
		out, err := json.MarshalIndent(slots, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s  %s palette\n", renderSwatch(target), target.Hex(), scheme.String())
		for _, slot := range slots {
			fmt.Fprintf(w, "hue %.0f°\n", slot.Hue)
			if len(slot.Matches) == 0 {
				fmt.Fprintln(w, "  no dyes within the hue window")
				continue
			}
			fmt.Fprint(w, renderMatches(slot.Matches))
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", harmonyFormat)
	}
	return nil
}
