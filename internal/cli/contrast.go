package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dyematch/internal/colour"
)

var contrastFormat string

// contrastCmd represents the contrast command
var contrastCmd = &cobra.Command{
	Use:   "contrast <foreground> <background>",
	Short: "Check the WCAG contrast between two colours",
	Long: `Check the WCAG 2.x contrast ratio between a foreground and a
background colour and report which conformance levels the pair meets.

Examples:
  # Body text on a dark background
  dyematch contrast "#F2F0EB" "#1C1C1E"

  # JSON for scripting
  dyematch contrast --format json 000000 FFFFFF`,
	Args: cobra.ExactArgs(2),
	RunE: runContrast,
}

func init() {
	contrastCmd.Flags().StringVarP(&contrastFormat, "format", "f", "text", "output format (text, json)")
}

type contrastResult struct {
	Ratio       float64 `json:"ratio"`
	AANormal    bool    `json:"aa_normal"`
	AALarge     bool    `json:"aa_large"`
	AAANormal   bool    `json:"aaa_normal"`
	AAALarge    bool    `json:"aaa_large"`
	OptimalText string  `json:"optimal_text_on_background"`
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	ratio := colour.ContrastRatio(fg, bg)
	res := contrastResult{
		Ratio:       ratio,
		AANormal:    colour.MeetsAA(ratio, false),
		AALarge:     colour.MeetsAA(ratio, true),
		AAANormal:   colour.MeetsAAA(ratio, false),
		AAALarge:    colour.MeetsAAA(ratio, true),
		OptimalText: colour.OptimalTextColour(bg).Hex(),
	}

	switch contrastFormat {
	case "json":
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s on %s %s\n", renderSwatch(fg), fg.Hex(), renderSwatch(bg), bg.Hex())
		fmt.Fprintf(w, "  ratio        %.2f:1\n", res.Ratio)
		fmt.Fprintf(w, "  AA  normal   %s\n", passFail(res.AANormal))
		fmt.Fprintf(w, "  AA  large    %s\n", passFail(res.AALarge))
		fmt.Fprintf(w, "  AAA normal   %s\n", passFail(res.AAANormal))
		fmt.Fprintf(w, "  AAA large    %s\n", passFail(res.AAALarge))
		fmt.Fprintf(w, "  optimal text %s\n", res.OptimalText)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", contrastFormat)
	}
	return nil
}

func passFail(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}
