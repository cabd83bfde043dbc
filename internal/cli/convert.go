package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dyematch/internal/colour"
)

var convertFormat string

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <colour>",
	Short: "Convert a colour to every supported colour space",
	Long: `Convert a colour to its representation in every supported colour space.

The colour may be given as a 6-digit or 3-digit hex code, with or
without the leading #.

Examples:
  # Show all representations of a colour
  dyematch convert "#B3242A"

  # Machine-readable output
  dyematch convert --format json B3242A`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "text", "output format (text, json)")
}

// conversions bundles every representation of one colour for output.
type conversions struct {
	Hex   string        `json:"hex"`
	RGB   colour.Colour `json:"rgb"`
	HSV   colour.HSV    `json:"hsv"`
	Lab   colour.Lab    `json:"lab"`
	OKLab colour.OKLab  `json:"oklab"`
	OKLCH colour.OKLCH  `json:"oklch"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}

	conv := conversions{
		Hex:   c.Hex(),
		RGB:   c,
		HSV:   c.ToHSV(),
		Lab:   c.ToLab(),
		OKLab: c.ToOKLab(),
		OKLCH: c.ToOKLCH(),
	}

	switch convertFormat {
	case "json":
		out, err := json.MarshalIndent(conv, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s\n", renderSwatch(c), conv.Hex)
		fmt.Fprintf(w, "  rgb    %s\n", conv.RGB)
		fmt.Fprintf(w, "  hsv    hsv(%.1f, %.1f%%, %.1f%%)\n", conv.HSV.H, conv.HSV.S, conv.HSV.V)
		fmt.Fprintf(w, "  lab    lab(%.2f, %.2f, %.2f)\n", conv.Lab.L, conv.Lab.A, conv.Lab.B)
		fmt.Fprintf(w, "  oklab  oklab(%.4f, %.4f, %.4f)\n", conv.OKLab.L, conv.OKLab.A, conv.OKLab.B)
		fmt.Fprintf(w, "  oklch  oklch(%.4f, %.4f, %.1f)\n", conv.OKLCH.L, conv.OKLCH.C, conv.OKLCH.H)
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", convertFormat)
	}
	return nil
}
