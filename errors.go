package cubepuzzle

import "errors"

// Sentinel errors for the cubepuzzle package.
var (
	// ErrUnknownSide reports a side with no layer or rotation axis. Reaching
	// the axis dispatch with one is a programming error.
	ErrUnknownSide = errors.New("cubepuzzle: unknown side")

	// ErrInvalidSign reports a rotation sign other than +1 or -1.
	ErrInvalidSign = errors.New("cubepuzzle: invalid rotation sign")
)
