package ndarray

import "fmt"

// DType identifies the element kind of an Array.
type DType int

const (
	Float32 DType = iota
	Float64
	Complex64
	Complex128
)

// String returns the conventional name of the element kind.
func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return fmt.Sprintf("DType(%d)", int(d))
	}
}

// IsComplex reports whether the element kind carries an imaginary part.
func (d DType) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// valid reports whether d is one of the four supported element kinds.
func (d DType) valid() bool {
	return d >= Float32 && d <= Complex128
}
