package ndarray

import (
	"errors"
	"fmt"
)

// Errors returned by array constructors.
var (
	ErrNegativeDim  = errors.New("ndarray: negative dimension")
	ErrInvalidDType = errors.New("ndarray: invalid dtype")
	ErrDataLength   = errors.New("ndarray: data length does not match shape")
)

// Array is a dense N-dimensional numeric buffer in C (row-major) order.
//
// The zero value is not usable; construct arrays with Zeros or the From
// functions. Arrays own their backing storage exclusively unless constructed
// around a caller slice, in which case the caller must not alias concurrent
// writers.
type Array struct {
	shape []int
	dtype DType

	f32  []float32
	f64  []float64
	c64  []complex64
	c128 []complex128
}

// elemCount returns the product of the dimensions, or -1 if any is negative.
func elemCount(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return -1
		}
		n *= d
	}
	return n
}

// Zeros allocates a zero-filled array of the given shape and element kind.
func Zeros(shape []int, dtype DType) (*Array, error) {
	n := elemCount(shape)
	if n < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeDim, shape)
	}
	if !dtype.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDType, dtype)
	}

	a := &Array{shape: append([]int(nil), shape...), dtype: dtype}
	switch dtype {
	case Float32:
		a.f32 = make([]float32, n)
	case Float64:
		a.f64 = make([]float64, n)
	case Complex64:
		a.c64 = make([]complex64, n)
	case Complex128:
		a.c128 = make([]complex128, n)
	}
	return a, nil
}

// Ones allocates an array of the given shape and element kind with every
// element set to one.
func Ones(shape []int, dtype DType) (*Array, error) {
	a, err := Zeros(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Len(); i++ {
		a.SetAt(i, 1)
	}
	return a, nil
}

func checkData(shape []int, n int) error {
	want := elemCount(shape)
	if want < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeDim, shape)
	}
	if n != want {
		return fmt.Errorf("%w: have %d, shape %v needs %d", ErrDataLength, n, shape, want)
	}
	return nil
}

// FromFloat32 wraps data as an array of the given shape without copying.
func FromFloat32(shape []int, data []float32) (*Array, error) {
	if err := checkData(shape, len(data)); err != nil {
		return nil, err
	}
	return &Array{shape: append([]int(nil), shape...), dtype: Float32, f32: data}, nil
}

// FromFloat64 wraps data as an array of the given shape without copying.
func FromFloat64(shape []int, data []float64) (*Array, error) {
	if err := checkData(shape, len(data)); err != nil {
		return nil, err
	}
	return &Array{shape: append([]int(nil), shape...), dtype: Float64, f64: data}, nil
}

// FromComplex64 wraps data as an array of the given shape without copying.
func FromComplex64(shape []int, data []complex64) (*Array, error) {
	if err := checkData(shape, len(data)); err != nil {
		return nil, err
	}
	return &Array{shape: append([]int(nil), shape...), dtype: Complex64, c64: data}, nil
}

// FromComplex128 wraps data as an array of the given shape without copying.
func FromComplex128(shape []int, data []complex128) (*Array, error) {
	if err := checkData(shape, len(data)); err != nil {
		return nil, err
	}
	return &Array{shape: append([]int(nil), shape...), dtype: Complex128, c128: data}, nil
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Dim returns the length of dimension d.
func (a *Array) Dim(d int) int { return a.shape[d] }

// Len returns the total number of elements.
func (a *Array) Len() int { return elemCount(a.shape) }

// DType returns the element kind.
func (a *Array) DType() DType { return a.dtype }

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b *Array) bool {
	if a.NDim() != b.NDim() {
		return false
	}
	for i, d := range a.shape {
		if b.shape[i] != d {
			return false
		}
	}
	return true
}

// Float32s returns the backing slice, or nil if the dtype differs.
func (a *Array) Float32s() []float32 { return a.f32 }

// Float64s returns the backing slice, or nil if the dtype differs.
func (a *Array) Float64s() []float64 { return a.f64 }

// Complex64s returns the backing slice, or nil if the dtype differs.
func (a *Array) Complex64s() []complex64 { return a.c64 }

// Complex128s returns the backing slice, or nil if the dtype differs.
func (a *Array) Complex128s() []complex128 { return a.c128 }

// At returns the element at flat (C-order) index i widened to complex128.
func (a *Array) At(i int) complex128 {
	switch a.dtype {
	case Float32:
		return complex(float64(a.f32[i]), 0)
	case Float64:
		return complex(a.f64[i], 0)
	case Complex64:
		return complex128(a.c64[i])
	default:
		return a.c128[i]
	}
}

// SetAt stores v at flat (C-order) index i, narrowing to the array's element
// kind. Real element kinds keep only the real part.
func (a *Array) SetAt(i int, v complex128) {
	switch a.dtype {
	case Float32:
		a.f32[i] = float32(real(v))
	case Float64:
		a.f64[i] = real(v)
	case Complex64:
		a.c64[i] = complex64(v)
	default:
		a.c128[i] = v
	}
}
