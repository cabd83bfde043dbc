package colour

import "errors"

// Sentinel errors for the matching engine. Callers test for them with
// errors.Is. The engine never substitutes a default for malformed
// input; a silently wrong algorithm or colour would corrupt every
// downstream ranking.
var (
	// ErrInvalidColourFormat reports a malformed hex or RGB input.
	ErrInvalidColourFormat = errors.New("invalid colour format")

	// ErrUnknownMethod reports an unrecognised matching method key.
	ErrUnknownMethod = errors.New("unknown matching method")

	// ErrInvalidRange reports a numeric argument outside its documented
	// domain.
	ErrInvalidRange = errors.New("argument out of range")
)
