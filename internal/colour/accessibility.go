package colour

import "math"

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
func Luminance(c Colour) float64 {
	r := wcagLinear(float64(c.R) / 255.0)
	g := wcagLinear(float64(c.G) / 255.0)
	b := wcagLinear(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// wcagLinear applies the WCAG gamma correction to a colour component.
func wcagLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours
// according to WCAG 2.0. Returns a value between 1 and 21, where 21 is
// maximum contrast (black vs white). Argument order does not matter.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef
func ContrastRatio(a, b Colour) float64 {
	l1 := Luminance(a)
	l2 := Luminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// MeetsAA reports whether a contrast ratio satisfies WCAG AA: 4.5:1
// for normal text, 3:1 for large text.
func MeetsAA(ratio float64, large bool) bool {
	if large {
		return ratio >= 3.0
	}
	return ratio >= 4.5
}

// MeetsAAA reports whether a contrast ratio satisfies WCAG AAA: 7:1
// for normal text, 4.5:1 for large text.
func MeetsAAA(ratio float64, large bool) bool {
	if large {
		return ratio >= 4.5
	}
	return ratio >= 7.0
}

// IsLight reports whether the colour reads as light. Used to pick
// readable overlay text; the midpoint keeps common mid-tone dyes on
// the sensible side.
func IsLight(c Colour) bool {
	return Luminance(c) > 0.5
}

// OptimalTextColour returns black or white, whichever has the higher
// contrast ratio against the background. Ties resolve to black.
func OptimalTextColour(background Colour) Colour {
	black := Colour{}
	white := Colour{R: 255, G: 255, B: 255}

	if ContrastRatio(background, white) > ContrastRatio(background, black) {
		return white
	}
	return black
}
