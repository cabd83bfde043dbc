package colour

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestToHSV(t *testing.T) {
	tests := []struct {
		name string
		c    Colour
		want HSV
	}{
		{name: "red", c: Colour{R: 255}, want: HSV{H: 0, S: 100, V: 100}},
		{name: "green", c: Colour{G: 255}, want: HSV{H: 120, S: 100, V: 100}},
		{name: "blue", c: Colour{B: 255}, want: HSV{H: 240, S: 100, V: 100}},
		{name: "yellow", c: Colour{R: 255, G: 255}, want: HSV{H: 60, S: 100, V: 100}},
		{name: "cyan", c: Colour{G: 255, B: 255}, want: HSV{H: 180, S: 100, V: 100}},
		{name: "magenta", c: Colour{R: 255, B: 255}, want: HSV{H: 300, S: 100, V: 100}},
		{name: "black", c: Colour{}, want: HSV{H: 0, S: 0, V: 0}},
		{name: "white", c: Colour{R: 255, G: 255, B: 255}, want: HSV{H: 0, S: 0, V: 100}},
		{name: "grey", c: Colour{R: 128, G: 128, B: 128}, want: HSV{H: 0, S: 0, V: 128.0 / 255.0 * 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.ToHSV()
			if !almostEqual(got.H, tt.want.H, 1e-9) ||
				!almostEqual(got.S, tt.want.S, 1e-9) ||
				!almostEqual(got.V, tt.want.V, 1e-9) {
				t.Errorf("ToHSV() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// Achromatic colours must define hue as zero so hue deviance stays NaN
// free.
func TestToHSVAchromatic(t *testing.T) {
	for _, c := range []Colour{{}, {R: 255, G: 255, B: 255}, {R: 77, G: 77, B: 77}} {
		hsv := c.ToHSV()
		if hsv.H != 0 || hsv.S != 0 {
			t.Errorf("ToHSV(%s) = %+v, want H=0 S=0", c.Hex(), hsv)
		}
		if math.IsNaN(HueDeviance(hsv.H, 120)) {
			t.Errorf("HueDeviance propagated NaN for %s", c.Hex())
		}
	}
}

// Cross-check the HSV conversion against go-colorful over a sample of
// the channel cube.
func TestToHSVAgainstColorful(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := Colour{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := c.ToHSV()

				ref := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
				wantH, wantS, wantV := ref.Hsv()

				if !almostEqual(got.H, wantH, 1e-9) ||
					!almostEqual(got.S, wantS*100, 1e-9) ||
					!almostEqual(got.V, wantV*100, 1e-9) {
					t.Fatalf("ToHSV(%s) = %+v, colorful says h=%v s=%v v=%v",
						c.Hex(), got, wantH, wantS*100, wantV*100)
				}
			}
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := Colour{R: uint8(r), G: uint8(g), B: uint8(b)}
				if got := c.ToHSV().ToColour(); got != c {
					t.Fatalf("HSV round trip %s -> %+v -> %s", c.Hex(), c.ToHSV(), got.Hex())
				}
			}
		}
	}
}

func TestToLabExtremes(t *testing.T) {
	black := Colour{}.ToLab()
	if !almostEqual(black.L, 0, 1e-6) || !almostEqual(black.A, 0, 1e-6) || !almostEqual(black.B, 0, 1e-6) {
		t.Errorf("black Lab = %+v, want L=0 a=0 b=0", black)
	}

	white := Colour{R: 255, G: 255, B: 255}.ToLab()
	if !almostEqual(white.L, 100, 1e-3) || !almostEqual(white.A, 0, 1e-2) || !almostEqual(white.B, 0, 1e-2) {
		t.Errorf("white Lab = %+v, want L=100 a=0 b=0", white)
	}
}

func TestToOKLab(t *testing.T) {
	tests := []struct {
		name string
		c    Colour
		want OKLab
	}{
		// Reference values for the sRGB primaries from the OKLab
		// announcement post.
		{name: "red", c: Colour{R: 255}, want: OKLab{L: 0.6279554, A: 0.2248631, B: 0.1258463}},
		{name: "green", c: Colour{G: 255}, want: OKLab{L: 0.8664396, A: -0.2338876, B: 0.1794985}},
		{name: "blue", c: Colour{B: 255}, want: OKLab{L: 0.4520137, A: -0.0324518, B: -0.3115282}},
		{name: "black", c: Colour{}, want: OKLab{}},
		{name: "white", c: Colour{R: 255, G: 255, B: 255}, want: OKLab{L: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.ToOKLab()
			if !almostEqual(got.L, tt.want.L, 1e-4) ||
				!almostEqual(got.A, tt.want.A, 1e-4) ||
				!almostEqual(got.B, tt.want.B, 1e-4) {
				t.Errorf("ToOKLab() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestOKLabRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				c := Colour{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := c.ToOKLab().ToColour()
				// Allow one count of rounding slack per channel.
				if absDiff(got.R, c.R) > 1 || absDiff(got.G, c.G) > 1 || absDiff(got.B, c.B) > 1 {
					t.Fatalf("OKLab round trip %s -> %s", c.Hex(), got.Hex())
				}
			}
		}
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestToOKLCH(t *testing.T) {
	red := Colour{R: 255}.ToOKLCH()
	if !almostEqual(red.L, 0.6279554, 1e-4) {
		t.Errorf("red OKLCH L = %v", red.L)
	}
	if !almostEqual(red.C, 0.2576833, 1e-4) {
		t.Errorf("red OKLCH C = %v", red.C)
	}
	if !almostEqual(red.H, 29.234, 0.05) {
		t.Errorf("red OKLCH H = %v", red.H)
	}

	// Zero chroma must not produce NaN hue.
	grey := Colour{R: 128, G: 128, B: 128}.ToOKLCH()
	if math.IsNaN(grey.H) {
		t.Error("grey OKLCH hue is NaN")
	}
	if grey.C > 1e-6 {
		t.Errorf("grey OKLCH chroma = %v, want ~0", grey.C)
	}

	// Hue is always wrapped into [0, 360).
	for r := 0; r <= 255; r += 51 {
		for b := 0; b <= 255; b += 51 {
			lch := Colour{R: uint8(r), G: 100, B: uint8(b)}.ToOKLCH()
			if lch.H < 0 || lch.H >= 360 {
				t.Fatalf("OKLCH hue %v out of [0, 360)", lch.H)
			}
		}
	}
}

func TestHueDeviance(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 float64
		want   float64
	}{
		{name: "identical", h1: 90, h2: 90, want: 0},
		{name: "simple", h1: 10, h2: 40, want: 30},
		{name: "wraparound", h1: 350, h2: 10, want: 20},
		{name: "opposite", h1: 0, h2: 180, want: 180},
		{name: "symmetric", h1: 200, h2: 160, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HueDeviance(tt.h1, tt.h2); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("HueDeviance(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
			}
			if got, rev := HueDeviance(tt.h1, tt.h2), HueDeviance(tt.h2, tt.h1); got != rev {
				t.Errorf("HueDeviance not symmetric: %v vs %v", got, rev)
			}
		})
	}
}
