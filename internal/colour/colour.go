// Package colour implements the colour conversion, perceptual distance
// and match classification engine behind the dye matching tools. Every
// function is pure: no I/O, no caches, no shared state, so callers may
// use the package concurrently without coordination.
package colour

import (
	"fmt"
	"math"
	"strings"
)

// Colour is an immutable sRGB colour with 8-bit channels.
type Colour struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the canonical hex form of the colour: uppercase, six
// digits, leading '#'. Equal colours always produce identical strings.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the colour as "rgb(r, g, b)".
func (c Colour) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FromFloats builds a Colour from floating point channel values on the
// 0-255 scale. Channels are clamped to [0, 255] and rounded half away
// from zero before truncation to bytes.
func FromFloats(r, g, b float64) Colour {
	return Colour{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

func clampChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ParseHex parses a hex colour string. The leading '#' is optional on
// input and three digit shorthand is expanded, so "#F00", "f00" and
// "#FF0000" all parse to the same colour. Any other length or a
// non-hex character fails with ErrInvalidColourFormat.
func ParseHex(s string) (Colour, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok := hexDigit(hex[i*2])
		lo, ok2 := hexDigit(hex[i*2+1])
		if !ok || !ok2 {
			return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, s)
		}
		channels[i] = hi<<4 | lo
	}
	return Colour{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// hexDigit converts a single hex character to its value.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
