package smooth

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	gfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-ndimage/fourier"
	"github.com/cwbudde/algo-ndimage/ndarray"
)

// Errors returned by smoothing functions.
var (
	ErrEmptyInput = errors.New("smooth: empty input")
	ErrGridSize   = errors.New("smooth: data length does not match rows*cols")
)

// Backend selects the FFT implementation used for the round trip.
type Backend int

const (
	// BackendAuto picks algo-fft for power-of-two lengths and gonum otherwise.
	BackendAuto Backend = iota

	// BackendGonum forces gonum's fftpack transforms for any length.
	BackendGonum

	// BackendAlgoFFT forces algo-fft plans; lengths must be powers of two.
	BackendAlgoFFT
)

// Option configures a smoothing call.
type Option func(*config)

type config struct {
	backend Backend
}

// WithBackend forces a specific FFT backend.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// filterFunc applies one of the fourier package's operations to a spectrum
// in place.
type filterFunc func(spectrum *ndarray.Array, opts ...fourier.Option) error

func inPlace(op func(*ndarray.Array, fourier.Param, ...fourier.Option) (*ndarray.Array, error), p fourier.Param) filterFunc {
	return func(spectrum *ndarray.Array, opts ...fourier.Option) error {
		args := append(opts, fourier.WithOutput(fourier.OutputBuffer(spectrum)))
		_, err := op(spectrum, p, args...)
		return err
	}
}

// roundTrip1D transforms data, applies fn to the spectrum, and transforms
// back, returning the filtered signal as a new slice.
func roundTrip1D(data []float64, fn filterFunc, cfg config) ([]float64, error) {
	n := len(data)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	useAlgoFFT := cfg.backend == BackendAlgoFFT ||
		(cfg.backend == BackendAuto && isPowerOfTwo(n))

	if useAlgoFFT {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("smooth: FFT plan for length %d: %w", n, err)
		}

		buf := make([]complex128, n)
		for i, v := range data {
			buf[i] = complex(v, 0)
		}
		if err := plan.Forward(buf, buf); err != nil {
			return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
		}

		spectrum, err := ndarray.FromComplex128([]int{n}, buf)
		if err != nil {
			return nil, err
		}
		if err := fn(spectrum); err != nil {
			return nil, err
		}

		// Inverse is normalized by the plan.
		if err := plan.Inverse(buf, buf); err != nil {
			return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
		}
		out := make([]float64, n)
		for i, v := range buf {
			out[i] = real(v)
		}
		return out, nil
	}

	fft := gfourier.NewFFT(n)
	coeff := fft.Coefficients(nil, data)

	spectrum, err := ndarray.FromComplex128([]int{len(coeff)}, coeff)
	if err != nil {
		return nil, err
	}
	if err := fn(spectrum, fourier.WithRealLength(n)); err != nil {
		return nil, err
	}

	out := fft.Sequence(nil, coeff)
	scale := 1 / float64(n)
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}

// Gaussian smooths data with a Gaussian of standard deviation sigma samples.
func Gaussian(data []float64, sigma float64, opts ...Option) ([]float64, error) {
	return roundTrip1D(data, inPlace(fourier.Gaussian, fourier.Scalar(sigma)), applyOptions(opts))
}

// Uniform smooths data with a moving box of the given width in samples.
func Uniform(data []float64, size float64, opts ...Option) ([]float64, error) {
	return roundTrip1D(data, inPlace(fourier.Uniform, fourier.Scalar(size)), applyOptions(opts))
}

// Shift moves data by the given amount in samples, which may be fractional.
// The shift is circular.
func Shift(data []float64, shift float64, opts ...Option) ([]float64, error) {
	return roundTrip1D(data, inPlace(fourier.Shift, fourier.Scalar(shift)), applyOptions(opts))
}
