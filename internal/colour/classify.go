package colour

import (
	"encoding/json"
	"fmt"
)

// Band is the qualitative quality of a match. Bands order from best to
// worst; a smaller Band value always means a closer match.
type Band int

const (
	BandExcellent Band = iota
	BandGood
	BandAcceptable
	BandNoticeable
	BandPoor
)

// String returns the band label.
func (b Band) String() string {
	switch b {
	case BandExcellent:
		return "excellent"
	case BandGood:
		return "good"
	case BandAcceptable:
		return "acceptable"
	case BandNoticeable:
		return "noticeable"
	case BandPoor:
		return "poor"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the band as its label.
func (b Band) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON decodes a band label.
func (b *Band) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	for _, band := range []Band{BandExcellent, BandGood, BandAcceptable, BandNoticeable, BandPoor} {
		if band.String() == label {
			*b = band
			return nil
		}
	}
	return fmt.Errorf("unknown band %q", label)
}

// thresholds holds the ascending band boundaries for one method:
// excellent, good, acceptable, noticeable. Distances above the last
// boundary are poor.
type thresholds [4]float64

// methodThresholds returns the band boundaries for the method. Every
// method owns its own table because the raw numeric scales differ: RGB
// distances for visually similar colours run roughly an order of
// magnitude larger than the perceptual metrics, so a single global
// table would misclassify everything.
func methodThresholds(m Method) (thresholds, error) {
	switch m {
	case MethodRGB:
		return thresholds{10, 25, 50, 100}, nil
	case MethodCIE76:
		return thresholds{2.3, 5, 10, 20}, nil
	case MethodCIEDE2000:
		return thresholds{1, 2.3, 5, 10}, nil
	case MethodOKLab:
		return thresholds{1, 2.5, 5, 10}, nil
	case MethodHyAB:
		return thresholds{1.5, 3, 6, 12}, nil
	case MethodOKLCHWeighted:
		return thresholds{1, 2.5, 5, 10}, nil
	}
	return thresholds{}, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
}

// Classify maps a raw distance to its quality band under the given
// method. A distance at or below a boundary takes that band.
func Classify(distance float64, m Method) (Band, error) {
	t, err := methodThresholds(m)
	if err != nil {
		return BandPoor, err
	}
	switch {
	case distance <= t[0]:
		return BandExcellent, nil
	case distance <= t[1]:
		return BandGood, nil
	case distance <= t[2]:
		return BandAcceptable, nil
	case distance <= t[3]:
		return BandNoticeable, nil
	}
	return BandPoor, nil
}
