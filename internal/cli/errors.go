package cli

import "errors"

var (
	// ErrUnknownPreset indicates a strategy preset name that is not registered.
	ErrUnknownPreset = errors.New("cli: unknown strategy preset")

	// ErrUnknownBackend indicates a grid backend other than dense or sparse.
	ErrUnknownBackend = errors.New("cli: unknown grid backend")

	// ErrBadInput indicates malformed sequence input.
	ErrBadInput = errors.New("cli: invalid input")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("cli: workers must be > 0")
)
