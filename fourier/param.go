package fourier

import "fmt"

// Param is a filter parameter given either as a single scalar that applies to
// every axis or as one value per axis. Construct values with Scalar or
// PerAxis; the zero value behaves like Scalar(0).
type Param struct {
	scalar  float64
	perAxis []float64
	seq     bool
}

// Scalar returns a parameter that broadcasts v to every axis of the input.
func Scalar(v float64) Param {
	return Param{scalar: v}
}

// PerAxis returns a parameter with one explicit value per input axis. The
// number of values must match the input rank at call time.
func PerAxis(v ...float64) Param {
	return Param{perAxis: v, seq: true}
}

// normalize materializes p as a fresh contiguous slice of length ndim. The
// copy keeps later caller mutations of a PerAxis slice from reaching the
// kernel.
func (p Param) normalize(ndim int) ([]float64, error) {
	out := make([]float64, ndim)
	if !p.seq {
		for i := range out {
			out[i] = p.scalar
		}
		return out, nil
	}
	if len(p.perAxis) != ndim {
		return nil, fmt.Errorf("%w: have %d values, input rank %d", ErrLengthMismatch, len(p.perAxis), ndim)
	}
	copy(out, p.perAxis)
	return out, nil
}

// checkAxis maps axis into [0, ndim), resolving negative indices from the
// end, and fails for anything outside [-ndim, ndim).
func checkAxis(axis, ndim int) (int, error) {
	a := axis
	if a < 0 {
		a += ndim
	}
	if a < 0 || a >= ndim {
		return 0, fmt.Errorf("%w: %d for input rank %d", ErrAxisOutOfRange, axis, ndim)
	}
	return a, nil
}
