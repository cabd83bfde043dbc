package colour

import (
	"fmt"
	"math"
)

// oklabScale maps OKLab based distances onto the range shared by the
// CIELAB metrics, where a just noticeable difference sits near 1.0.
// OKLab coordinates live in [0, 1], so raw Euclidean distances there
// run about two orders of magnitude smaller than CIEDE2000 values for
// the same colour pair.
const oklabScale = 100.0

// Weights control the per-axis contribution of the OKLCH weighted
// metric.
type Weights struct {
	Lightness float64 `json:"lightness" yaml:"lightness"`
	Chroma    float64 `json:"chroma" yaml:"chroma"`
	Hue       float64 `json:"hue" yaml:"hue"`
}

// DefaultWeights returns the neutral weighting where every OKLCH axis
// contributes equally.
func DefaultWeights() Weights {
	return Weights{Lightness: 1, Chroma: 1, Hue: 1}
}

// Distance returns the perceptual distance between two colours under
// the given method. It is always >= 0, symmetric, and exactly zero for
// identical inputs. An unrecognised method fails with ErrUnknownMethod.
func Distance(a, b Colour, method Method) (float64, error) {
	switch method {
	case MethodRGB:
		return distanceRGB(a, b), nil
	case MethodCIE76:
		return distanceCIE76(a, b), nil
	case MethodCIEDE2000:
		return DeltaE2000(a.ToLab(), b.ToLab()), nil
	case MethodOKLab:
		return distanceOKLab(a, b), nil
	case MethodHyAB:
		return distanceHyAB(a, b), nil
	case MethodOKLCHWeighted:
		return DistanceOKLCH(a, b, DefaultWeights()), nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
}

// distanceRGB is Euclidean distance in 8-bit RGB space; the maximum is
// sqrt(3)*255, roughly 441.
func distanceRGB(a, b Colour) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// distanceCIE76 is the original delta E: Euclidean distance in CIELAB.
func distanceCIE76(a, b Colour) float64 {
	la, lb := a.ToLab(), b.ToLab()
	return math.Sqrt(sq(la.L-lb.L) + sq(la.A-lb.A) + sq(la.B-lb.B))
}

func distanceOKLab(a, b Colour) float64 {
	oa, ob := a.ToOKLab(), b.ToOKLab()
	return oklabScale * math.Sqrt(sq(oa.L-ob.L)+sq(oa.A-ob.A)+sq(oa.B-ob.B))
}

// distanceHyAB weights lightness linearly rather than quadratically,
// which tracks human sensitivity better across large lightness gaps.
func distanceHyAB(a, b Colour) float64 {
	oa, ob := a.ToOKLab(), b.ToOKLab()
	return oklabScale * (math.Abs(oa.L-ob.L) + math.Hypot(oa.A-ob.A, oa.B-ob.B))
}

// DistanceOKLCH computes a weighted Euclidean norm over the OKLCH axes.
// The hue difference is taken as the shorter arc around the circle and
// converted to a linear displacement (2*sqrt(C1*C2)*sin(dh/2)) before
// weighting, so hue differences between near-grey colours barely count.
func DistanceOKLCH(a, b Colour, w Weights) float64 {
	ca, cb := a.ToOKLCH(), b.ToOKLCH()

	dl := ca.L - cb.L
	dc := ca.C - cb.C
	dh := HueDeviance(ca.H, cb.H) * math.Pi / 180
	arc := 2 * math.Sqrt(ca.C*cb.C) * math.Sin(dh/2)

	return oklabScale * math.Sqrt(sq(w.Lightness*dl)+sq(w.Chroma*dc)+sq(w.Hue*arc))
}

func sq(v float64) float64 { return v * v }
