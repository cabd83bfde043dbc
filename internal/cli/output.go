package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"dyematch/internal/colour"
	"dyematch/internal/dye"
)

// For mocking in tests
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// forcePreview renders swatches even when stdout is not a terminal.
// Set by the --preview flag.
var forcePreview bool

func showSwatches() bool {
	return forcePreview || stdoutIsTerminal()
}

// renderSwatch returns a small coloured block for terminal output, or
// an empty string when swatches are off.
func renderSwatch(c colour.Colour) string {
	if !showSwatches() {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(colour.OptimalTextColour(c).Hex())).
		Render("  ")
}

// renderMatches formats ranked matches as a table.
func renderMatches(matches []dye.Match) string {
	headers := []string{"ID", "NAME", "HEX", "DISTANCE", "HUE DEV", "BAND"}
	withSwatch := showSwatches()
	if withSwatch {
		headers = append([]string{""}, headers...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Faint(true)).
		Headers(headers...)

	for _, m := range matches {
		row := []string{
			fmt.Sprintf("%d", m.Dye.ID),
			m.Dye.Name,
			m.Dye.Hex,
			fmt.Sprintf("%.3f", m.Distance),
			fmt.Sprintf("%.1f°", m.HueDeviance),
			m.Band.String(),
		}
		if withSwatch {
			c, err := colour.ParseHex(m.Dye.Hex)
			swatch := ""
			if err == nil {
				swatch = renderSwatch(c)
			}
			row = append([]string{swatch}, row...)
		}
		t.Row(row...)
	}
	return t.Render() + "\n"
}
