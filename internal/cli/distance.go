package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dyematch/internal/colour"
)

var (
	distanceMethod string
	distanceFormat string
	distanceAll    bool
)

// distanceCmd represents the distance command
var distanceCmd = &cobra.Command{
	Use:   "distance <colour> <colour>",
	Short: "Measure the perceptual distance between two colours",
	Long: `Measure the perceptual distance between two colours and classify how
close the pair is.

Available methods:
` + methodHelp() + `

Examples:
  # CIEDE2000 distance between two reds
  dyematch distance "#B3242A" "#99182C"

  # Compare with a specific method
  dyematch distance --method oklab FF0000 FE0101

  # Report every method at once
  dyematch distance --all "#336699" "#336A98"`,
	Args: cobra.ExactArgs(2),
	RunE: runDistance,
}

func init() {
	distanceCmd.Flags().StringVarP(&distanceMethod, "method", "m", "ciede2000", "distance method")
	distanceCmd.Flags().StringVarP(&distanceFormat, "format", "f", "text", "output format (text, json)")
	distanceCmd.Flags().BoolVar(&distanceAll, "all", false, "report every method")
}

// methodHelp lists the method keys and descriptions for command help.
func methodHelp() string {
	var b strings.Builder
	for _, m := range colour.Methods() {
		fmt.Fprintf(&b, "  %-15s %s\n", m.String(), m.Description())
	}
	return b.String()
}

type distanceResult struct {
	Method   string  `json:"method"`
	Distance float64 `json:"distance"`
	Band     string  `json:"band"`
}

func runDistance(cmd *cobra.Command, args []string) error {
	a, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("first colour: %w", err)
	}
	b, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("second colour: %w", err)
	}

	methods := []colour.Method{}
	if distanceAll {
		methods = colour.Methods()
	} else {
		m, err := colour.ParseMethod(distanceMethod)
		if err != nil {
			return err
		}
		methods = append(methods, m)
	}

	results := make([]distanceResult, 0, len(methods))
	for _, m := range methods {
		d, err := colour.Distance(a, b, m)
		if err != nil {
			return err
		}
		band, err := colour.Classify(d, m)
		if err != nil {
			return err
		}
		results = append(results, distanceResult{
			Method:   m.String(),
			Distance: d,
			Band:     band.String(),
		})
	}

	switch distanceFormat {
	case "json":
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %s  vs  %s %s\n", renderSwatch(a), a.Hex(), renderSwatch(b), b.Hex())
		for _, r := range results {
			fmt.Fprintf(w, "  %-15s %8.3f  %s\n", r.Method, r.Distance, r.Band)
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", distanceFormat)
	}
	return nil
}
