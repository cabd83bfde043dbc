package colour

import "fmt"

// Method identifies one of the supported perceptual distance
// algorithms. The set is closed: distance calculation, classification
// and labelling all switch exhaustively over it, so adding a method is
// a compile-time visible change in each place.
type Method int

const (
	// MethodRGB is plain Euclidean distance in 8-bit RGB space.
	MethodRGB Method = iota
	// MethodCIE76 is Euclidean distance in CIELAB.
	MethodCIE76
	// MethodCIEDE2000 is the full CIEDE2000 formula with kL=kC=kH=1.
	MethodCIEDE2000
	// MethodOKLab is Euclidean distance in OKLab, rescaled to the shared
	// perceptual range.
	MethodOKLab
	// MethodHyAB combines linear lightness difference with Euclidean
	// chroma difference in OKLab.
	MethodHyAB
	// MethodOKLCHWeighted is a weighted Euclidean norm over the OKLCH
	// axes with the hue difference taken as an arc length.
	MethodOKLCHWeighted
)

// Methods returns every supported method in display order.
func Methods() []Method {
	return []Method{
		MethodRGB,
		MethodCIE76,
		MethodCIEDE2000,
		MethodOKLab,
		MethodHyAB,
		MethodOKLCHWeighted,
	}
}

// String returns the stable key for the method, as accepted by
// ParseMethod and used in configuration files.
func (m Method) String() string {
	switch m {
	case MethodRGB:
		return "rgb"
	case MethodCIE76:
		return "cie76"
	case MethodCIEDE2000:
		return "ciede2000"
	case MethodOKLab:
		return "oklab"
	case MethodHyAB:
		return "hyab"
	case MethodOKLCHWeighted:
		return "oklch-weighted"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Description returns a one line human readable summary of the method.
func (m Method) Description() string {
	switch m {
	case MethodRGB:
		return "Euclidean distance in raw RGB space"
	case MethodCIE76:
		return "Euclidean distance in CIELAB (delta E 1976)"
	case MethodCIEDE2000:
		return "CIEDE2000 perceptual colour difference"
	case MethodOKLab:
		return "Euclidean distance in OKLab"
	case MethodHyAB:
		return "hybrid lightness/chroma distance in OKLab"
	case MethodOKLCHWeighted:
		return "weighted distance over OKLCH axes"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method key to its Method value. Unrecognised keys
// fail with ErrUnknownMethod rather than falling back to a default, so
// callers can never accidentally rank by the wrong scale.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if s == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownMethod, s, Methods())
}
