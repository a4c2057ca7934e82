package fourier

import (
	"errors"
	"testing"
)

func TestScalarBroadcast(t *testing.T) {
	for ndim := 1; ndim <= 5; ndim++ {
		got, err := Scalar(2.5).normalize(ndim)
		if err != nil {
			t.Fatalf("ndim=%d: %v", ndim, err)
		}
		if len(got) != ndim {
			t.Fatalf("ndim=%d: len=%d", ndim, len(got))
		}
		for i, v := range got {
			if v != 2.5 {
				t.Fatalf("ndim=%d: element %d = %v, want 2.5", ndim, i, v)
			}
		}
	}
}

func TestPerAxisExactLength(t *testing.T) {
	got, err := PerAxis(1, 2, 3).normalize(3)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	for i, want := range []float64{1, 2, 3} {
		if got[i] != want {
			t.Fatalf("element %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestPerAxisLengthMismatch(t *testing.T) {
	for _, ndim := range []int{1, 2, 4} {
		if _, err := PerAxis(1, 2, 3).normalize(ndim); !errors.Is(err, ErrLengthMismatch) {
			t.Fatalf("ndim=%d: err=%v, want ErrLengthMismatch", ndim, err)
		}
	}
}

func TestPerAxisDefensiveCopy(t *testing.T) {
	src := []float64{1, 2}
	p := PerAxis(src...)
	got, err := p.normalize(2)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	src[0] = 99
	if got[0] != 1 {
		t.Fatalf("normalized[0]=%v after caller mutation, want 1", got[0])
	}
}

func TestCheckAxis(t *testing.T) {
	cases := []struct {
		axis, ndim int
		want       int
		ok         bool
	}{
		{0, 2, 0, true},
		{1, 2, 1, true},
		{-1, 2, 1, true},
		{-2, 2, 0, true},
		{2, 2, 0, false},
		{-3, 2, 0, false},
		{0, 1, 0, true},
		{-1, 1, 0, true},
		{1, 1, 0, false},
	}

	for _, c := range cases {
		got, err := checkAxis(c.axis, c.ndim)
		if c.ok {
			if err != nil {
				t.Fatalf("axis=%d ndim=%d: %v", c.axis, c.ndim, err)
			}
			if got != c.want {
				t.Fatalf("axis=%d ndim=%d: got %d, want %d", c.axis, c.ndim, got, c.want)
			}
			continue
		}
		if !errors.Is(err, ErrAxisOutOfRange) {
			t.Fatalf("axis=%d ndim=%d: err=%v, want ErrAxisOutOfRange", c.axis, c.ndim, err)
		}
	}
}
