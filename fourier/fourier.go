package fourier

import (
	"github.com/cwbudde/algo-ndimage/internal/kernel"
	"github.com/cwbudde/algo-ndimage/ndarray"
)

// Option configures a filter call.
type Option func(*config)

type config struct {
	n      int
	axis   int
	output OutputArg
}

func defaultConfig() config {
	return config{n: -1, axis: -1}
}

// WithRealLength marks the input as the half spectrum of a real-input
// transform whose pre-transform length along the transform axis was n. The
// default (negative n) treats the input as a full complex spectrum.
func WithRealLength(n int) Option {
	return func(c *config) {
		c.n = n
	}
}

// WithAxis sets the axis of the real transform. Negative values index from
// the last axis; the default is the last axis.
func WithAxis(axis int) Option {
	return func(c *config) {
		c.axis = axis
	}
}

// WithOutput sets how the result buffer is provided, see OutputArg.
func WithOutput(arg OutputArg) Option {
	return func(c *config) {
		c.output = arg
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// filter runs the shared front-end sequence for the real-mask filters:
// provision output, resolve axis, broadcast the per-axis parameter, delegate
// to the kernel.
func filter(input *ndarray.Array, p Param, kind kernel.Kind, opts []Option) (*ndarray.Array, error) {
	cfg := applyOptions(opts)

	out, ret, err := provisionOutput(cfg.output, input)
	if err != nil {
		return nil, err
	}
	axis, err := checkAxis(cfg.axis, input.NDim())
	if err != nil {
		return nil, err
	}
	params, err := p.normalize(input.NDim())
	if err != nil {
		return nil, err
	}

	if err := kernel.Filter(input, params, cfg.n, axis, out, kind); err != nil {
		return nil, err
	}
	return ret, nil
}

// Gaussian multiplies the input spectrum with the Fourier transform of a
// Gaussian kernel of standard deviation sigma (in samples per axis).
//
// It returns the filtered spectrum in a new array, or nil when the options
// supplied a pre-allocated output buffer.
func Gaussian(input *ndarray.Array, sigma Param, opts ...Option) (*ndarray.Array, error) {
	return filter(input, sigma, kernel.Gaussian, opts)
}

// Uniform multiplies the input spectrum with the Fourier transform of a box
// of the given size (in samples per axis).
//
// It returns the filtered spectrum in a new array, or nil when the options
// supplied a pre-allocated output buffer.
func Uniform(input *ndarray.Array, size Param, opts ...Option) (*ndarray.Array, error) {
	return filter(input, size, kernel.Uniform, opts)
}

// Ellipsoid multiplies the input spectrum with the Fourier transform of an
// ellipsoid of the given size (in samples per axis).
//
// The underlying kernel is implemented for inputs of rank 1, 2, or 3 and
// reports ErrUnsupportedRank for anything larger.
//
// It returns the filtered spectrum in a new array, or nil when the options
// supplied a pre-allocated output buffer.
func Ellipsoid(input *ndarray.Array, size Param, opts ...Option) (*ndarray.Array, error) {
	return filter(input, size, kernel.Ellipsoid, opts)
}

// Shift multiplies the input spectrum with a complex linear-phase ramp that
// realizes a spatial shift by the given amount (in samples per axis, which
// may be fractional). The result is always complex; explicit output dtypes
// are restricted to complex64 and complex128.
//
// It returns the shifted spectrum in a new array, or nil when the options
// supplied a pre-allocated output buffer.
func Shift(input *ndarray.Array, shift Param, opts ...Option) (*ndarray.Array, error) {
	cfg := applyOptions(opts)

	out, ret, err := provisionComplexOutput(cfg.output, input)
	if err != nil {
		return nil, err
	}
	axis, err := checkAxis(cfg.axis, input.NDim())
	if err != nil {
		return nil, err
	}
	shifts, err := shift.normalize(input.NDim())
	if err != nil {
		return nil, err
	}

	if err := kernel.Shift(input, shifts, cfg.n, axis, out); err != nil {
		return nil, err
	}
	return ret, nil
}
