package smooth

import (
	"fmt"

	gfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-ndimage/fourier"
	"github.com/cwbudde/algo-ndimage/ndarray"
)

// fft2 transforms a row-major rows x cols grid in place by running gonum's
// complex transform over every row and then every column. The inverse pass
// leaves the grid scaled by rows*cols; callers rescale.
func fft2(data []complex128, rows, cols int, inverse bool) {
	rowFFT := gfourier.NewCmplxFFT(cols)
	scratch := make([]complex128, cols)
	for r := 0; r < rows; r++ {
		line := data[r*cols : (r+1)*cols]
		if inverse {
			rowFFT.Sequence(scratch, line)
		} else {
			rowFFT.Coefficients(scratch, line)
		}
		copy(line, scratch)
	}

	colFFT := gfourier.NewCmplxFFT(rows)
	colIn := make([]complex128, rows)
	colOut := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			colIn[r] = data[r*cols+c]
		}
		if inverse {
			colFFT.Sequence(colOut, colIn)
		} else {
			colFFT.Coefficients(colOut, colIn)
		}
		for r := 0; r < rows; r++ {
			data[r*cols+c] = colOut[r]
		}
	}
}

// roundTrip2D transforms a grid, applies fn to the full complex spectrum, and
// transforms back.
func roundTrip2D(data []float64, rows, cols int, fn filterFunc) ([]float64, error) {
	if rows <= 0 || cols <= 0 || len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: have %d, want %d*%d", ErrGridSize, len(data), rows, cols)
	}

	buf := make([]complex128, len(data))
	for i, v := range data {
		buf[i] = complex(v, 0)
	}
	fft2(buf, rows, cols, false)

	spectrum, err := ndarray.FromComplex128([]int{rows, cols}, buf)
	if err != nil {
		return nil, err
	}
	if err := fn(spectrum); err != nil {
		return nil, err
	}

	fft2(buf, rows, cols, true)
	out := make([]float64, len(data))
	scale := 1 / float64(rows*cols)
	for i, v := range buf {
		out[i] = real(v) * scale
	}
	return out, nil
}

// Gaussian2D smooths a row-major rows x cols grid with a Gaussian. sigma may
// be fourier.Scalar for an isotropic kernel or fourier.PerAxis(rowSigma,
// colSigma).
func Gaussian2D(data []float64, rows, cols int, sigma fourier.Param) ([]float64, error) {
	return roundTrip2D(data, rows, cols, inPlace(fourier.Gaussian, sigma))
}

// Uniform2D smooths a row-major rows x cols grid with a box of the given
// size per axis.
func Uniform2D(data []float64, rows, cols int, size fourier.Param) ([]float64, error) {
	return roundTrip2D(data, rows, cols, inPlace(fourier.Uniform, size))
}

// Ellipsoid2D smooths a row-major rows x cols grid with an elliptical disk of
// the given size per axis.
func Ellipsoid2D(data []float64, rows, cols int, size fourier.Param) ([]float64, error) {
	return roundTrip2D(data, rows, cols, inPlace(fourier.Ellipsoid, size))
}

// Shift2D moves a row-major rows x cols grid circularly by the given amount
// per axis, which may be fractional.
func Shift2D(data []float64, rows, cols int, shift fourier.Param) ([]float64, error) {
	return roundTrip2D(data, rows, cols, inPlace(fourier.Shift, shift))
}
