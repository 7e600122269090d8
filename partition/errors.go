// SPDX-License-Identifier: MIT
// Package: bspdungeon/partition
//
// errors.go — sentinel errors for the partition package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Call sites attach method context with %w (see partitionErrorf).
//   • Build never panics at runtime; only option constructors panic.

package partition

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates that the dungeon size or the minimum cell size
// has a zero or negative component. No partial tree is returned.
var ErrInvalidDimension = errors.New("partition: dimension must be positive")

// ErrNeedRandSource indicates that Build was called with a nil *rand.Rand.
var ErrNeedRandSource = errors.New("partition: rng is required")

// MethodBuild is the context prefix used for errors returned by Build.
const MethodBuild = "Build"

// partitionErrorf wraps sentinel with method context and a formatted detail,
// producing "<method>: <detail>: <sentinel>".
func partitionErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
