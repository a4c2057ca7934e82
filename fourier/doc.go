// Package fourier provides multi-dimensional frequency-domain filters:
// Gaussian, uniform box, ellipsoid, and sub-pixel shift.
//
// The package intentionally does not implement FFT itself. It operates on
// arrays that already hold a discrete Fourier transform and multiplies them
// element-wise with the analytic transform of the filter kernel. Inputs may
// be a full complex spectrum (the default) or the half spectrum of a
// real-input transform, marked with WithRealLength.
//
// # Usage
//
// Filter a full complex spectrum in a fresh output array:
//
//	out, err := fourier.Gaussian(spectrum, fourier.Scalar(2))
//
// Filter the half spectrum of a real transform of length 128 in place:
//
//	_, err := fourier.Uniform(spectrum, fourier.PerAxis(3, 5),
//		fourier.WithRealLength(128), fourier.WithOutput(fourier.OutputBuffer(spectrum)))
//
// Each operation returns the freshly allocated result, or nil when the caller
// supplied a pre-allocated output buffer.
package fourier
