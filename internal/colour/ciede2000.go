package colour

import "math"

// pow25_7 is 25^7, the constant in the CIEDE2000 chroma weighting
// terms.
const pow25_7 = 6103515625.0

// DeltaE2000 computes the CIEDE2000 colour difference between two
// CIELAB values with the reference weighting kL = kC = kH = 1. The
// implementation follows Sharma, Wu and Dalal, "The CIEDE2000
// Color-Difference Formula: Implementation Notes, Supplementary Test
// Data, and Mathematical Observations" (2005), and reproduces their
// published test pairs to four decimal places.
func DeltaE2000(lab1, lab2 Lab) float64 {
	const deg2rad = math.Pi / 180

	c1 := math.Hypot(lab1.A, lab1.B)
	c2 := math.Hypot(lab2.A, lab2.B)
	cBar := (c1 + c2) / 2

	// G rescales the a* axis to compensate for CIELAB's distortion of
	// low-chroma colours.
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25_7)))

	a1p := (1 + g) * lab1.A
	a2p := (1 + g) * lab2.A
	c1p := math.Hypot(a1p, lab1.B)
	c2p := math.Hypot(a2p, lab2.B)
	h1p := hueAngle(a1p, lab1.B)
	h2p := hueAngle(a2p, lab2.B)

	dL := lab2.L - lab1.L
	dC := c2p - c1p

	var dhp float64
	switch {
	case c1p*c2p == 0:
		dhp = 0
	case math.Abs(h2p-h1p) <= 180:
		dhp = h2p - h1p
	case h2p-h1p > 180:
		dhp = h2p - h1p - 360
	default:
		dhp = h2p - h1p + 360
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2*deg2rad)

	lBar := (lab1.L + lab2.L) / 2
	cBarP := (c1p + c2p) / 2

	var hBar float64
	switch {
	case c1p*c2p == 0:
		hBar = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hBar = (h1p + h2p) / 2
	case h1p+h2p < 360:
		hBar = (h1p + h2p + 360) / 2
	default:
		hBar = (h1p + h2p - 360) / 2
	}

	t := 1 - 0.17*math.Cos((hBar-30)*deg2rad) +
		0.24*math.Cos(2*hBar*deg2rad) +
		0.32*math.Cos((3*hBar+6)*deg2rad) -
		0.20*math.Cos((4*hBar-63)*deg2rad)

	// R_T models the interaction between chroma and hue differences in
	// the blue region.
	dTheta := 30 * math.Exp(-sq((hBar-275)/25))
	cBarP7 := math.Pow(cBarP, 7)
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25_7))
	rT := -rC * math.Sin(2*dTheta*deg2rad)

	lBar50 := sq(lBar - 50)
	sL := 1 + 0.015*lBar50/math.Sqrt(20+lBar50)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t

	return math.Sqrt(sq(dL/sL) + sq(dC/sC) + sq(dH/sH) + rT*(dC/sC)*(dH/sH))
}

// hueAngle returns atan2(b, a) in degrees wrapped to [0, 360). The hue
// of a zero-chroma colour is defined as zero.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}
