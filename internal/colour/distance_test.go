package colour

import (
	"errors"
	"math"
	"testing"
)

// Black, white, the primaries, yellow, mid grey, and two dye tones.
var distanceSampleColours = []Colour{
	{},
	{R: 255, G: 255, B: 255},
	{R: 255},
	{G: 255},
	{B: 255},
	{R: 255, G: 255},
	{R: 128, G: 128, B: 128},
	{R: 0xE0, G: 0x3C, B: 0x31},
	{R: 0x1F, G: 0x4E, B: 0x8C},
}

func TestDistanceIdentity(t *testing.T) {
	for _, m := range Methods() {
		for _, c := range distanceSampleColours {
			d, err := Distance(c, c, m)
			if err != nil {
				t.Fatalf("Distance(%s, %s, %s) error = %v", c.Hex(), c.Hex(), m, err)
			}
			if d != 0 {
				t.Errorf("Distance(%s, %s, %s) = %v, want 0", c.Hex(), c.Hex(), m, d)
			}
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	for _, m := range Methods() {
		for i, a := range distanceSampleColours {
			for _, b := range distanceSampleColours[i+1:] {
				ab, err := Distance(a, b, m)
				if err != nil {
					t.Fatalf("Distance error = %v", err)
				}
				ba, err := Distance(b, a, m)
				if err != nil {
					t.Fatalf("Distance error = %v", err)
				}
				if ab != ba {
					t.Errorf("%s: Distance(%s, %s) = %v but Distance(%s, %s) = %v",
						m, a.Hex(), b.Hex(), ab, b.Hex(), a.Hex(), ba)
				}
				if ab < 0 {
					t.Errorf("%s: Distance(%s, %s) = %v, want >= 0", m, a.Hex(), b.Hex(), ab)
				}
			}
		}
	}
}

// Far apart hues must always measure further than near identical
// colours, whatever the method.
func TestDistanceOrderingSanity(t *testing.T) {
	red := Colour{R: 255}
	cyan := Colour{G: 255, B: 255}
	nearRed := Colour{R: 254, G: 1, B: 1}

	for _, m := range Methods() {
		far, err := Distance(red, cyan, m)
		if err != nil {
			t.Fatalf("Distance error = %v", err)
		}
		near, err := Distance(red, nearRed, m)
		if err != nil {
			t.Fatalf("Distance error = %v", err)
		}
		if far <= near {
			t.Errorf("%s: red/cyan distance %v not greater than red/near-red %v", m, far, near)
		}
	}
}

func TestDistanceRGBScale(t *testing.T) {
	d, err := Distance(Colour{}, Colour{R: 255, G: 255, B: 255}, MethodRGB)
	if err != nil {
		t.Fatalf("Distance error = %v", err)
	}
	want := math.Sqrt(3) * 255
	if !almostEqual(d, want, 1e-9) {
		t.Errorf("black/white RGB distance = %v, want %v", d, want)
	}
}

func TestDistanceUnknownMethod(t *testing.T) {
	_, err := Distance(Colour{}, Colour{R: 255}, Method(99))
	if err == nil {
		t.Fatal("expected error for unknown method")
	}
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("error = %v, want ErrUnknownMethod", err)
	}
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		key     string
		want    Method
		wantErr bool
	}{
		{key: "rgb", want: MethodRGB},
		{key: "cie76", want: MethodCIE76},
		{key: "ciede2000", want: MethodCIEDE2000},
		{key: "oklab", want: MethodOKLab},
		{key: "hyab", want: MethodHyAB},
		{key: "oklch-weighted", want: MethodOKLCHWeighted},
		{key: "xyz", wantErr: true},
		{key: "", wantErr: true},
		{key: "OKLAB", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseMethod(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseMethod(%q) expected error", tt.key)
				}
				if !errors.Is(err, ErrUnknownMethod) {
					t.Errorf("error = %v, want ErrUnknownMethod", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMethod(%q) error = %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

// Method keys and ParseMethod must stay in lockstep.
func TestMethodKeyRoundTrip(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.String())
		if err != nil {
			t.Fatalf("ParseMethod(%q) error = %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMethod(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestDistanceOKLCHWeights(t *testing.T) {
	a := Colour{R: 200, G: 40, B: 40}
	b := Colour{R: 40, G: 40, B: 200}

	// Zeroing every weight collapses the distance.
	if d := DistanceOKLCH(a, b, Weights{}); d != 0 {
		t.Errorf("all-zero weights: distance = %v, want 0", d)
	}

	// Doubling a single axis weight can only grow the distance.
	base := DistanceOKLCH(a, b, DefaultWeights())
	heavyHue := DistanceOKLCH(a, b, Weights{Lightness: 1, Chroma: 1, Hue: 2})
	if heavyHue < base {
		t.Errorf("heavier hue weight shrank distance: %v < %v", heavyHue, base)
	}

	// Identity holds for any weighting.
	if d := DistanceOKLCH(a, a, Weights{Lightness: 3, Chroma: 0.5, Hue: 1.2}); d != 0 {
		t.Errorf("weighted identity distance = %v, want 0", d)
	}
}

// The OKLab distance must sit on a scale loosely comparable to
// CIEDE2000 for small differences, so one threshold table family makes
// sense across methods.
func TestOKLabScaleComparable(t *testing.T) {
	a := Colour{R: 255}
	b := Colour{R: 254, G: 1, B: 1}

	dOK, err := Distance(a, b, MethodOKLab)
	if err != nil {
		t.Fatalf("Distance error = %v", err)
	}
	d2000, err := Distance(a, b, MethodCIEDE2000)
	if err != nil {
		t.Fatalf("Distance error = %v", err)
	}

	if dOK <= 0 || dOK > 5 {
		t.Errorf("near-identical pair OKLab distance = %v, want small positive", dOK)
	}
	if ratio := dOK / d2000; ratio < 0.05 || ratio > 20 {
		t.Errorf("OKLab/CIEDE2000 scale ratio = %v, scales have diverged", ratio)
	}
}
