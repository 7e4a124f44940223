package align

import "errors"

var (
	// ErrBadWeight indicates a NaN weight or threshold.
	ErrBadWeight = errors.New("align: weights and threshold must not be NaN")

	// ErrBadBounds indicates NaN bounds or Lo > Hi.
	ErrBadBounds = errors.New("align: bounds must satisfy Lo <= Hi")

	// ErrBadKernel indicates an unknown distance kernel.
	ErrBadKernel = errors.New("align: unknown distance kernel")
)
