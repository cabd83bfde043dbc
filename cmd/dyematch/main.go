// Dyematch - perceptual colour matching for game dye catalogs
//
// Dyematch finds the closest catalog dyes to a target colour, converts
// colours between spaces, checks WCAG contrast and builds harmony
// palettes.
package main

import (
	"dyematch/internal/cli"
)

func main() {
	cli.Execute()
}
