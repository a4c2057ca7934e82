// Package kernel implements the element-wise frequency-domain multiply behind
// the public fourier package.
//
// The entry points mirror the calling convention of the front end exactly:
// the input array, one float64 parameter per axis, the real-transform length
// n, the real-transform axis, a pre-provisioned output array of identical
// shape, and (for Filter) the filter kind. Callers are expected to have
// normalized and validated parameters already; the checks here only guard the
// package boundary.
package kernel

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ndimage/ndarray"
)

// Kind selects the multiplicative mask applied by Filter.
type Kind int

const (
	Gaussian Kind = iota
	Uniform
	Ellipsoid
)

// String returns the filter name.
func (k Kind) String() string {
	switch k {
	case Gaussian:
		return "gaussian"
	case Uniform:
		return "uniform"
	case Ellipsoid:
		return "ellipsoid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Errors returned at the kernel boundary.
var (
	ErrUnsupportedRank = errors.New("kernel: ellipsoid filter is only implemented for rank 1, 2, or 3")
	ErrParamCount      = errors.New("kernel: one parameter per input dimension required")
	ErrShape           = errors.New("kernel: output shape does not match input shape")
	ErrAxisRange       = errors.New("kernel: axis out of range")
	ErrComplexOutput   = errors.New("kernel: shift requires a complex output")
	ErrUnknownKind     = errors.New("kernel: unknown filter kind")
)

func checkArgs(in *ndarray.Array, params []float64, axis int, out *ndarray.Array) error {
	if len(params) != in.NDim() {
		return fmt.Errorf("%w: have %d, rank %d", ErrParamCount, len(params), in.NDim())
	}
	if !ndarray.SameShape(in, out) {
		return fmt.Errorf("%w: %v vs %v", ErrShape, out.Shape(), in.Shape())
	}
	if axis < 0 || axis >= in.NDim() {
		return fmt.Errorf("%w: %d for rank %d", ErrAxisRange, axis, in.NDim())
	}
	return nil
}

// Filter multiplies each element of in by the frequency-domain weight of the
// selected filter and stores the result in out. The weight is real, so the
// output element kind may be real or complex; real outputs keep the real part.
//
// A non-negative n marks in as the half spectrum of a real transform of
// logical length n along axis; a negative n marks it as a full complex
// spectrum on every axis.
func Filter(in *ndarray.Array, params []float64, n, axis int, out *ndarray.Array, kind Kind) error {
	if err := checkArgs(in, params, axis, out); err != nil {
		return err
	}
	if in.Len() == 0 {
		return nil
	}

	switch kind {
	case Gaussian, Uniform:
		tables := makeWeightTables(kind, in, params, n, axis)
		applySeparable(in, out, tables)
		releaseTables(tables)
	case Ellipsoid:
		if in.NDim() > 3 {
			return fmt.Errorf("%w: rank %d", ErrUnsupportedRank, in.NDim())
		}
		tables := makeRadiusTables(in, params, n, axis)
		applyRadial(in, out, tables)
		releaseTables(tables)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return nil
}

// Shift multiplies each element of in by a complex linear-phase ramp realizing
// a sub-pixel spatial shift and stores the result in out. The output must be
// complex64 or complex128.
func Shift(in *ndarray.Array, shifts []float64, n, axis int, out *ndarray.Array) error {
	if err := checkArgs(in, shifts, axis, out); err != nil {
		return err
	}
	if !out.DType().IsComplex() {
		return fmt.Errorf("%w: have %v", ErrComplexOutput, out.DType())
	}
	if in.Len() == 0 {
		return nil
	}

	tables := makeShiftTables(in, shifts, n, axis)
	applyShift(in, out, tables)
	return nil
}
