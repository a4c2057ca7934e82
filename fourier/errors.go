package fourier

import (
	"errors"

	"github.com/cwbudde/algo-ndimage/internal/kernel"
)

// Errors returned by the filter operations.
var (
	ErrUnsupportedDType = errors.New("fourier: output dtype not supported")
	ErrShapeMismatch    = errors.New("fourier: output shape not correct")
	ErrLengthMismatch   = errors.New("fourier: parameter length does not match input rank")
	ErrAxisOutOfRange   = errors.New("fourier: axis out of range")
)

// ErrUnsupportedRank is reported by the kernel layer when the ellipsoid
// filter is applied to an input of rank greater than three.
var ErrUnsupportedRank = kernel.ErrUnsupportedRank
