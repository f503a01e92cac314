package wordart

import "errors"

// Sentinel errors for the compositing core. Only structural failures reach
// the caller; cosmetic problems (bad hex, empty gradients, out-of-range
// opacity) are defaulted and logged instead.
var (
	// ErrNilMask is returned when Compose is called without a text mask.
	ErrNilMask = errors.New("wordart: nil text mask")

	// ErrEmptyCanvas is returned when the mask has a zero or negative dimension.
	ErrEmptyCanvas = errors.New("wordart: canvas dimensions must be positive")
)
