// Package ndarray provides a minimal N-dimensional numeric array.
//
// Arrays are dense, C-order contiguous buffers with one of four element
// kinds: float32, float64, complex64, complex128. The package exists to give
// frequency-domain filters a common data model; it is not a general tensor
// library and offers no views, broadcasting, or arithmetic.
package ndarray
