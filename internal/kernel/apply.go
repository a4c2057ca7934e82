package kernel

import (
	"math"

	"github.com/cwbudde/algo-ndimage/ndarray"
	"github.com/cwbudde/algo-vecmath"
)

// lineIter walks an array line by line along the last axis in C order,
// exposing the multi-index of the outer axes.
type lineIter struct {
	dims  []int // outer dimensions only
	idx   []int
	lines int
	line  int
}

func newLineIter(a *ndarray.Array) *lineIter {
	nd := a.NDim()
	dims := make([]int, nd-1)
	for d := 0; d < nd-1; d++ {
		dims[d] = a.Dim(d)
	}
	last := a.Dim(nd - 1)
	return &lineIter{
		dims:  dims,
		idx:   make([]int, nd-1),
		lines: a.Len() / last,
	}
}

func (it *lineIter) next() bool {
	if it.line >= it.lines {
		return false
	}
	if it.line > 0 {
		for d := len(it.idx) - 1; d >= 0; d-- {
			it.idx[d]++
			if it.idx[d] < it.dims[d] {
				break
			}
			it.idx[d] = 0
		}
	}
	it.line++
	return true
}

// applySeparable multiplies in by the outer product of per-axis weight tables
// and stores the result in out. in and out have identical shape.
func applySeparable(in, out *ndarray.Array, tables [][]float64) {
	nd := in.NDim()
	last := in.Dim(nd - 1)
	wLast := tables[nd-1]

	srcF := in.Float64s()
	dstF := out.Float64s()
	fast := srcF != nil && dstF != nil

	var scaled []float64
	if fast {
		scaled = getTable(last)
		defer putTable(scaled)
	}

	it := newLineIter(in)
	base := 0
	for it.next() {
		prod := 1.0
		for d, j := range it.idx {
			prod *= tables[d][j]
		}

		if fast {
			vecmath.ScaleBlock(scaled, wLast, prod)
			vecmath.MulBlock(dstF[base:base+last], srcF[base:base+last], scaled)
		} else {
			for j := 0; j < last; j++ {
				w := prod * wLast[j]
				out.SetAt(base+j, in.At(base+j)*complex(w, 0))
			}
		}
		base += last
	}
}

// applyRadial multiplies in by the ellipsoid weight, which depends on the
// joint frequency radius across all axes and is not separable.
func applyRadial(in, out *ndarray.Array, tables [][]float64) {
	nd := in.NDim()
	last := in.Dim(nd - 1)
	tLast := tables[nd-1]

	it := newLineIter(in)
	base := 0
	for it.next() {
		sum := 0.0
		for d, j := range it.idx {
			sum += tables[d][j]
		}
		for j := 0; j < last; j++ {
			w := radialWeight(nd, math.Sqrt(sum+tLast[j]))
			out.SetAt(base+j, in.At(base+j)*complex(w, 0))
		}
		base += last
	}
}

// applyShift multiplies in by the outer product of per-axis complex phase
// ramps and stores the result in out.
func applyShift(in, out *ndarray.Array, tables [][]complex128) {
	nd := in.NDim()
	last := in.Dim(nd - 1)
	cLast := tables[nd-1]

	it := newLineIter(in)
	base := 0
	for it.next() {
		prod := complex(1, 0)
		for d, j := range it.idx {
			prod *= tables[d][j]
		}
		for j := 0; j < last; j++ {
			out.SetAt(base+j, in.At(base+j)*prod*cLast[j])
		}
		base += last
	}
}
