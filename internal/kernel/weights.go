package kernel

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-ndimage/ndarray"
)

// tableBuf holds pooled per-axis weight tables to keep repeated filter calls
// allocation-free in steady state.
type tableBuf struct {
	data []float64
}

var tablePool = sync.Pool{
	New: func() any { return &tableBuf{} },
}

func getTable(n int) []float64 {
	buf := tablePool.Get().(*tableBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	}
	t := buf.data[:n]
	buf.data = nil
	tablePool.Put(buf)
	return t
}

func putTable(t []float64) {
	buf := tablePool.Get().(*tableBuf)
	buf.data = t[:0]
	tablePool.Put(buf)
}

func releaseTables(tables [][]float64) {
	for _, t := range tables {
		putTable(t)
	}
}

// frequency returns the normalized frequency of bin j on an axis of the given
// length. On the real-transform axis of a half spectrum the bins are the
// non-negative frequencies of the logical pre-transform length n; everywhere
// else the upper half of the bins wraps to negative frequencies.
func frequency(j, length int, halfSpectrum bool, n int) float64 {
	if halfSpectrum {
		return float64(j) / float64(n)
	}
	if j > length/2 {
		j -= length
	}
	return float64(j) / float64(length)
}

// makeWeightTables computes one real weight table per axis for the separable
// filters (Gaussian, uniform).
func makeWeightTables(kind Kind, in *ndarray.Array, params []float64, n, axis int) [][]float64 {
	tables := make([][]float64, in.NDim())
	for d := range tables {
		length := in.Dim(d)
		half := d == axis && n >= 0
		w := getTable(length)
		for j := 0; j < length; j++ {
			f := frequency(j, length, half, n)
			switch kind {
			case Gaussian:
				t := math.Pi * params[d] * f
				w[j] = math.Exp(-2 * t * t)
			case Uniform:
				t := math.Pi * params[d] * f
				if t == 0 {
					w[j] = 1
				} else {
					w[j] = math.Sin(t) / t
				}
			}
		}
		tables[d] = w
	}
	return tables
}

// makeRadiusTables computes per-axis squared radius contributions for the
// ellipsoid filter: table[d][j] = (pi * size_d * f_d(j))^2.
func makeRadiusTables(in *ndarray.Array, params []float64, n, axis int) [][]float64 {
	tables := make([][]float64, in.NDim())
	for d := range tables {
		length := in.Dim(d)
		half := d == axis && n >= 0
		t := getTable(length)
		for j := 0; j < length; j++ {
			f := frequency(j, length, half, n)
			v := math.Pi * params[d] * f
			t[j] = v * v
		}
		tables[d] = t
	}
	return tables
}

// radialWeight evaluates the transform of the ellipsoidal indicator at
// radius r for ranks 1 to 3.
func radialWeight(rank int, r float64) float64 {
	if r == 0 {
		return 1
	}
	switch rank {
	case 1:
		return math.Sin(r) / r
	case 2:
		return 2 * math.J1(r) / r
	default:
		return 3 * (math.Sin(r) - r*math.Cos(r)) / (r * r * r)
	}
}

// makeShiftTables computes one complex phase-ramp table per axis:
// table[d][j] = exp(-2*pi*i * shift_d * f_d(j)).
func makeShiftTables(in *ndarray.Array, shifts []float64, n, axis int) [][]complex128 {
	tables := make([][]complex128, in.NDim())
	for d := range tables {
		length := in.Dim(d)
		half := d == axis && n >= 0
		t := make([]complex128, length)
		for j := 0; j < length; j++ {
			theta := 2 * math.Pi * shifts[d] * frequency(j, length, half, n)
			if theta == 0 {
				t[j] = 1
				continue
			}
			t[j] = complex(math.Cos(theta), -math.Sin(theta))
		}
		tables[d] = t
	}
	return tables
}
