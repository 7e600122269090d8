package room

import (
	"errors"
	"fmt"
)

// Sentinel errors for room placement.
var (
	// ErrInvalidBias indicates a bias ratio or strength outside [0,1].
	ErrInvalidBias = errors.New("room: bias must be within [0,1]")
	// ErrInvalidCell indicates a cell with non-positive width or height.
	ErrInvalidCell = errors.New("room: cell must have positive width and height")
	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("room: rng is required")
)

// Method names used as error context prefixes.
const (
	MethodGenerate = "Generate"
	MethodPlaceAll = "PlaceAll"
)

// roomErrorf wraps sentinel as "<method>: <detail>: <sentinel>".
func roomErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
