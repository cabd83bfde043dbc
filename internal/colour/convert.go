package colour

import "math"

// HSV is a hue/saturation/value view of a colour. H is in degrees
// [0, 360); S and V are percentages [0, 100]. Views are always
// recomputed from RGB on demand and never stored independently.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// Lab is a CIELAB (D65) view of a colour. L is [0, 100]; A and B are
// unbounded but practically within about ±128.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// OKLab is an OKLab view of a colour. L is [0, 1].
// https://bottosson.github.io/posts/oklab/
type OKLab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// OKLCH is the polar form of OKLab. C >= 0, H in degrees [0, 360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// ToHSV converts the colour to HSV. Achromatic colours define hue and
// saturation as zero so downstream hue deviance never sees NaN.
func (c Colour) ToHSV() HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v := maxVal * 100
	if delta == 0 {
		return HSV{H: 0, S: 0, V: v}
	}
	s := delta / maxVal * 100

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return HSV{H: h, S: s, V: v}
}

// ToColour converts the HSV value back to an sRGB colour. The hue is
// wrapped into [0, 360) first, so negative and oversized hues from
// harmony rotation are accepted.
func (h HSV) ToColour() Colour {
	s := h.S / 100
	v := h.V / 100

	hue := math.Mod(h.H, 360)
	if hue < 0 {
		hue += 360
	}
	hue /= 60

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(hue, 2)-1))

	var r, g, b float64
	switch {
	case hue < 1:
		r, g, b = chroma, x, 0
	case hue < 2:
		r, g, b = x, chroma, 0
	case hue < 3:
		r, g, b = 0, chroma, x
	case hue < 4:
		r, g, b = 0, x, chroma
	case hue < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := v - chroma
	return FromFloats((r+m)*255, (g+m)*255, (b+m)*255)
}

// ToLab converts the colour to CIELAB via linear sRGB and CIEXYZ with
// the D65 reference white.
func (c Colour) ToLab() Lab {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	x := 0.4124564*r + 0.3575761*g + 0.1804375*b
	y := 0.2126729*r + 0.7151522*g + 0.0721750*b
	z := 0.0193339*r + 0.1191920*g + 0.9503041*b

	// Normalise by the D65 white point.
	fx := labF(x / 0.95047)
	fy := labF(y)
	fz := labF(z / 1.08883)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// ToOKLab converts the colour to OKLab using the Björn Ottosson
// matrices: linear sRGB -> LMS, cube root, LMS' -> OKLab.
func (c Colour) ToOKLab() OKLab {
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)

	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lp := math.Cbrt(l)
	mp := math.Cbrt(m)
	sp := math.Cbrt(s)

	return OKLab{
		L: 0.2104542553*lp + 0.7936177850*mp - 0.0040720468*sp,
		A: 1.9779984951*lp - 2.4285922050*mp + 0.4505937099*sp,
		B: 0.0259040371*lp + 0.7827717662*mp - 0.8086757660*sp,
	}
}

// ToColour converts an OKLab value back to sRGB, clamping channels that
// fall outside the sRGB gamut.
func (ok OKLab) ToColour() Colour {
	lp := ok.L + 0.3963377774*ok.A + 0.2158037573*ok.B
	mp := ok.L - 0.1055613458*ok.A - 0.0638541728*ok.B
	sp := ok.L - 0.0894841775*ok.A - 1.2914855480*ok.B

	l := lp * lp * lp
	m := mp * mp * mp
	s := sp * sp * sp

	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return FromFloats(
		linearToSRGB(clamp01(r))*255,
		linearToSRGB(clamp01(g))*255,
		linearToSRGB(clamp01(b))*255,
	)
}

// ToOKLCH returns the polar form of the OKLab value. Zero chroma yields
// hue zero rather than NaN.
func (ok OKLab) ToOKLCH() OKLCH {
	c := math.Hypot(ok.A, ok.B)
	h := 0.0
	if ok.A != 0 || ok.B != 0 {
		h = math.Atan2(ok.B, ok.A) * 180 / math.Pi
		if h < 0 {
			h += 360
		}
	}
	return OKLCH{L: ok.L, C: c, H: h}
}

// ToOKLCH converts the colour straight to OKLCH.
func (c Colour) ToOKLCH() OKLCH {
	return c.ToOKLab().ToOKLCH()
}

// HueDeviance returns the angular distance between two hues in degrees,
// taking the shorter arc around the wheel. The result is in [0, 180].
func HueDeviance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// srgbToLinear decodes one gamma encoded sRGB channel to linear light
// using the standard piecewise curve.
func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// linearToSRGB encodes one linear channel back to gamma encoded sRGB.
func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
