// SPDX-License-Identifier: MIT
// Package: bspdungeon/dungeon
//
// errors.go — sentinel errors for the dungeon package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Errors from the stage packages (partition, room, corridor) are wrapped,
//     so their own sentinels stay reachable through errors.Is as well.
//   • Generation is all-or-nothing: no partial Layout accompanies an error.

package dungeon

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension indicates a non-positive dungeon size or min cell size.
var ErrInvalidDimension = errors.New("dungeon: dimension must be positive")

// ErrInvalidBias indicates a bias ratio or strength outside [0,1].
var ErrInvalidBias = errors.New("dungeon: bias must be within [0,1]")

// ErrInvalidWidth indicates a negative maximum corridor half-width.
var ErrInvalidWidth = errors.New("dungeon: max corridor width must be >= 0")

// ErrInvalidDepth indicates a negative maximum partition depth.
var ErrInvalidDepth = errors.New("dungeon: max depth must be >= 0")

// ErrInvalidPolicy indicates an unknown zero-gap policy name.
var ErrInvalidPolicy = errors.New("dungeon: unknown zero-gap policy")

// ErrInvalidConfig indicates a configuration document that could not be decoded.
var ErrInvalidConfig = errors.New("dungeon: invalid configuration")

// ErrAttemptsExhausted indicates GenerateUntil ran out of attempts.
var ErrAttemptsExhausted = errors.New("dungeon: no acceptable layout within attempt limit")

// ErrNeedRandSource indicates GenerateWithRand was called with a nil *rand.Rand.
var ErrNeedRandSource = errors.New("dungeon: rng is required")

// Method names used as error context prefixes.
const (
	MethodValidate    = "Validate"
	MethodLoadOptions = "LoadOptions"
	MethodGenerate    = "Generate"
	MethodUntil       = "GenerateUntil"
)

// dungeonErrorf wraps err as "<method>: <detail>: <err>".
func dungeonErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
