package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-ndimage/fourier"
	"github.com/cwbudde/algo-ndimage/internal/testutil"
)

func TestGaussianPreservesMean(t *testing.T) {
	// The DC weight of the Gaussian response is exactly one.
	for _, n := range []int{16, 12, 25} {
		data := testutil.Wave(n)
		out, err := Gaussian(data, 2)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(out) != n {
			t.Fatalf("n=%d: len=%d", n, len(out))
		}
		testutil.RequireFinite(t, out)
		if math.Abs(testutil.Mean(out)-testutil.Mean(data)) > 1e-9 {
			t.Fatalf("n=%d: mean %v -> %v", n, testutil.Mean(data), testutil.Mean(out))
		}
	}
}

func TestGaussianReducesVariance(t *testing.T) {
	data := testutil.Wave(32)
	out, err := Gaussian(data, 3)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}
	if testutil.Variance(out) >= testutil.Variance(data) {
		t.Fatalf("variance %v -> %v, want reduction", testutil.Variance(data), testutil.Variance(out))
	}
}

func TestConstantSignalIsInvariant(t *testing.T) {
	data := testutil.Constant(4.5, 10)

	for name, fn := range map[string]func([]float64, float64, ...Option) ([]float64, error){
		"gaussian": Gaussian,
		"uniform":  Uniform,
		"shift":    Shift,
	} {
		out, err := fn(data, 1.5)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		testutil.RequireNear(t, out, data, 1e-9)
	}
}

func TestShiftIntegerRotation(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	out, err := Shift(data, 3)
	if err != nil {
		t.Fatalf("Shift: %v", err)
	}

	want := make([]float64, len(data))
	for i := range want {
		want[i] = data[((i-3)%8+8)%8]
	}
	testutil.RequireNear(t, out, want, 1e-9)
}

func TestShiftImpulse(t *testing.T) {
	out, err := Shift(testutil.Impulse(16, 0), 5)
	if err != nil {
		t.Fatalf("Shift: %v", err)
	}
	testutil.RequireNear(t, out, testutil.Impulse(16, 5), 1e-9)
}

func TestBackendsAgree(t *testing.T) {
	data := testutil.Wave(16)

	a, err := Gaussian(data, 2, WithBackend(BackendAlgoFFT))
	if err != nil {
		t.Fatalf("algo-fft backend: %v", err)
	}
	b, err := Gaussian(data, 2, WithBackend(BackendGonum))
	if err != nil {
		t.Fatalf("gonum backend: %v", err)
	}
	testutil.RequireNear(t, a, b, 1e-9)
}

func TestEmptyInput(t *testing.T) {
	if _, err := Gaussian(nil, 1); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err=%v, want ErrEmptyInput", err)
	}
	if _, err := Shift([]float64{}, 1); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err=%v, want ErrEmptyInput", err)
	}
}

func TestGridSizeMismatch(t *testing.T) {
	if _, err := Gaussian2D(make([]float64, 10), 3, 4, fourier.Scalar(1)); !errors.Is(err, ErrGridSize) {
		t.Fatalf("err=%v, want ErrGridSize", err)
	}
}
