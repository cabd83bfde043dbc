package colour

import (
	"fmt"
	"math"
)

// Scheme is a colour harmony layout on the hue wheel. Schemes only
// produce target hues; finding dyes near those hues is the search
// layer's job.
type Scheme int

const (
	SchemeComplementary Scheme = iota
	SchemeAnalogous
	SchemeTriadic
	SchemeSplitComplementary
	SchemeTetradic
)

// Schemes returns every supported harmony scheme.
func Schemes() []Scheme {
	return []Scheme{
		SchemeComplementary,
		SchemeAnalogous,
		SchemeTriadic,
		SchemeSplitComplementary,
		SchemeTetradic,
	}
}

// String returns the scheme key.
func (s Scheme) String() string {
	switch s {
	case SchemeComplementary:
		return "complementary"
	case SchemeAnalogous:
		return "analogous"
	case SchemeTriadic:
		return "triadic"
	case SchemeSplitComplementary:
		return "split-complementary"
	case SchemeTetradic:
		return "tetradic"
	default:
		return "unknown"
	}
}

// ParseScheme maps a scheme key to its Scheme value.
func ParseScheme(key string) (Scheme, error) {
	for _, s := range Schemes() {
		if key == s.String() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown harmony scheme: %q (valid: %v)", key, Schemes())
}

// TargetHues returns the hue of every slot in the scheme for the given
// base hue, each wrapped into [0, 360). The base hue itself is always
// the first slot.
func (s Scheme) TargetHues(baseHue float64) []float64 {
	var offsets []float64
	switch s {
	case SchemeComplementary:
		offsets = []float64{0, 180}
	case SchemeAnalogous:
		offsets = []float64{0, -30, 30}
	case SchemeTriadic:
		offsets = []float64{0, 120, 240}
	case SchemeSplitComplementary:
		offsets = []float64{0, 150, 210}
	case SchemeTetradic:
		offsets = []float64{0, 90, 180, 270}
	}

	hues := make([]float64, len(offsets))
	for i, off := range offsets {
		h := math.Mod(baseHue+off, 360)
		if h < 0 {
			h += 360
		}
		hues[i] = h
	}
	return hues
}
