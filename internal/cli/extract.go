package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dyematch/internal/colour"
	"dyematch/internal/dye"
	"dyematch/internal/image"
)

var (
	extractColours int
	extractPerHit  int
	extractFormat  string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract dominant colours from an image and match them to dyes",
	Long: `Extract the dominant colours from an image and find the closest
catalog dyes for each of them.

Point it at a screenshot of an outfit or a reference picture to get a
dyeing plan: each dominant colour is listed with its share of the image
and its nearest dyes.

Supported image formats: JPEG, PNG, GIF, WebP

Examples:
  # Match the four dominant colours of a screenshot
  dyematch extract screenshot.png

  # More colours, more candidates each
  dyematch extract --colours 8 --per-colour 3 reference.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractColours, "colours", "c", 4, "number of dominant colours to extract (1-64)")
	extractCmd.Flags().IntVar(&extractPerHit, "per-colour", 2, "dye candidates per extracted colour")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "text", "output format (text, json)")
}

// extractedEntry pairs one dominant colour with its dye candidates.
type extractedEntry struct {
	Colour  colour.Colour `json:"colour"`
	Hex     string        `json:"hex"`
	Weight  float64       `json:"weight"`
	Matches []dye.Match   `json:"matches"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

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

	logger.Debug("loading image", "path", imagePath)
	loader := image.NewFileLoader()
	img, err := loader.Load(imagePath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}
	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	extractor := colour.NewExtractor()
	dominant, err := extractor.Extract(img, extractColours)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}
	logger.Debug("extracted dominant colours", "count", len(dominant))

	entries := make([]extractedEntry, 0, len(dominant))
	for _, dc := range dominant {
		matches, err := dye.FindMatches(dc.Colour, dyes, method, dye.Options{
			MaxResults: extractPerHit,
			Weights:    &cfg.Weights,
		})
		if err != nil {
			return err
		}
		entries = append(entries, extractedEntry{
			Colour:  dc.Colour,
			Hex:     dc.Colour.Hex(),
			Weight:  dc.Weight,
			Matches: matches,
		})
	}

	switch extractFormat {
	case "json":
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	case "text":
		w := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(w, "%s %s  %.1f%% of image\n", renderSwatch(e.Colour), e.Hex, e.Weight*100)
			fmt.Fprint(w, renderMatches(e.Matches))
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", extractFormat)
	}
	return nil
}
