package fourier

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-ndimage/ndarray"
)

func TestProvisionDefaultDTypeInference(t *testing.T) {
	cases := []struct {
		input ndarray.DType
		want  ndarray.DType
	}{
		{ndarray.Float32, ndarray.Float32},
		{ndarray.Float64, ndarray.Float64},
		{ndarray.Complex64, ndarray.Complex64},
		{ndarray.Complex128, ndarray.Complex128},
	}

	for _, c := range cases {
		t.Run(c.input.String(), func(t *testing.T) {
			in, _ := ndarray.Zeros([]int{3, 3}, c.input)
			out, ret, err := provisionOutput(OutputArg{}, in)
			if err != nil {
				t.Fatalf("provision: %v", err)
			}
			if out != ret {
				t.Fatal("fresh allocation must be returned to the caller")
			}
			if out.DType() != c.want {
				t.Fatalf("dtype=%v, want %v", out.DType(), c.want)
			}
			if !ndarray.SameShape(out, in) {
				t.Fatalf("shape=%v, want %v", out.Shape(), in.Shape())
			}
		})
	}
}

func TestProvisionComplexDefaultDTypeInference(t *testing.T) {
	cases := []struct {
		input ndarray.DType
		want  ndarray.DType
	}{
		{ndarray.Float32, ndarray.Complex128},
		{ndarray.Float64, ndarray.Complex128},
		{ndarray.Complex64, ndarray.Complex64},
		{ndarray.Complex128, ndarray.Complex128},
	}

	for _, c := range cases {
		t.Run(c.input.String(), func(t *testing.T) {
			in, _ := ndarray.Zeros([]int{4}, c.input)
			out, _, err := provisionComplexOutput(OutputArg{}, in)
			if err != nil {
				t.Fatalf("provision: %v", err)
			}
			if out.DType() != c.want {
				t.Fatalf("dtype=%v, want %v", out.DType(), c.want)
			}
		})
	}
}

func TestProvisionExplicitDType(t *testing.T) {
	in, _ := ndarray.Zeros([]int{2, 2}, ndarray.Float64)

	for _, dt := range []ndarray.DType{ndarray.Float32, ndarray.Float64, ndarray.Complex64, ndarray.Complex128} {
		out, ret, err := provisionOutput(OutputDType(dt), in)
		if err != nil {
			t.Fatalf("dtype %v: %v", dt, err)
		}
		if ret == nil || out.DType() != dt {
			t.Fatalf("dtype %v: got %v", dt, out.DType())
		}
	}
}

func TestProvisionComplexRejectsRealDTypes(t *testing.T) {
	in, _ := ndarray.Zeros([]int{2}, ndarray.Float64)

	for _, dt := range []ndarray.DType{ndarray.Float32, ndarray.Float64} {
		if _, _, err := provisionComplexOutput(OutputDType(dt), in); !errors.Is(err, ErrUnsupportedDType) {
			t.Fatalf("dtype %v: err=%v, want ErrUnsupportedDType", dt, err)
		}
	}
	for _, dt := range []ndarray.DType{ndarray.Complex64, ndarray.Complex128} {
		if _, _, err := provisionComplexOutput(OutputDType(dt), in); err != nil {
			t.Fatalf("dtype %v: %v", dt, err)
		}
	}
}

func TestProvisionBufferShapeMismatch(t *testing.T) {
	in, _ := ndarray.Zeros([]int{4, 4}, ndarray.Float64)
	buf, _ := ndarray.Zeros([]int{4, 5}, ndarray.Float64)
	for i := 0; i < buf.Len(); i++ {
		buf.SetAt(i, 7)
	}

	_, _, err := provisionOutput(OutputBuffer(buf), in)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err=%v, want ErrShapeMismatch", err)
	}

	// A rejected buffer must be left untouched.
	for i := 0; i < buf.Len(); i++ {
		if buf.At(i) != 7 {
			t.Fatalf("buffer element %d modified: %v", i, buf.At(i))
		}
	}
}

func TestProvisionBufferInPlace(t *testing.T) {
	in, _ := ndarray.Zeros([]int{2, 2}, ndarray.Float64)
	buf, _ := ndarray.Zeros([]int{2, 2}, ndarray.Complex64)

	out, ret, err := provisionOutput(OutputBuffer(buf), in)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if out != buf {
		t.Fatal("kernel target must be the caller's buffer")
	}
	if ret != nil {
		t.Fatal("in-place provisioning must return nothing")
	}
}

func TestProvisionIndependentBuffers(t *testing.T) {
	in, _ := ndarray.Zeros([]int{3}, ndarray.Complex64)

	a, _, err := provisionOutput(OutputArg{}, in)
	if err != nil {
		t.Fatalf("first provision: %v", err)
	}
	b, _, err := provisionOutput(OutputArg{}, in)
	if err != nil {
		t.Fatalf("second provision: %v", err)
	}

	if a.DType() != b.DType() || !ndarray.SameShape(a, b) {
		t.Fatal("repeated provisioning must agree on shape and dtype")
	}

	a.SetAt(0, 5)
	if b.At(0) != 0 {
		t.Fatal("buffers must not share storage")
	}
}
