// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." so callers can grep logs and
// match with errors.Is. Backends return these directly; outer layers may wrap
// them with fmt.Errorf("ctx: %w", ErrX).

package grid

import "errors"

var (
	// ErrBadShape is returned when a requested width or height is not positive.
	ErrBadShape = errors.New("grid: width and height must be > 0")

	// ErrTooLarge is returned when width*height overflows or exceeds the
	// backend's cell limit.
	ErrTooLarge = errors.New("grid: too many cells")

	// ErrOutOfRange indicates that a position lies outside [0,w)×[0,h).
	ErrOutOfRange = errors.New("grid: position out of range")

	// ErrNilGrid indicates a nil Grid was passed to a helper.
	ErrNilGrid = errors.New("grid: nil grid")
)
