package corridor

import (
	"errors"
	"fmt"
)

// Sentinel errors for corridor routing.
var (
	// ErrInvalidWidth indicates a maximum corridor half-width outside [0, MaxWidth].
	ErrInvalidWidth = errors.New("corridor: max width must be in [0, MaxWidth]")
	// ErrInvalidRoom indicates a room with non-positive width or height.
	ErrInvalidRoom = errors.New("corridor: room must have positive width and height")
	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("corridor: rng is required")
)

// Method names used as error context prefixes.
const (
	MethodBridge = "Bridge"
	MethodRoute  = "Route"
)

func corridorErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
