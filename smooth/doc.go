// Package smooth applies the fourier package's filters to spatial-domain
// data by round-tripping through an FFT: transform, multiply with the filter
// response, transform back.
//
// One-dimensional helpers operate on []float64 signals, two-dimensional
// helpers on row-major rows x cols grids. Power-of-two signal lengths use an
// algo-fft plan; all other sizes fall back to gonum's fftpack-based
// transforms. The backend can be forced with WithBackend.
package smooth
