package fourier

import (
	"fmt"

	"github.com/cwbudde/algo-ndimage/ndarray"
)

// outputKind tags the three forms an output argument can take.
type outputKind int

const (
	outputAbsent outputKind = iota
	outputDType
	outputBuffer
)

// OutputArg states how the result buffer of a filter call is provided. The
// zero value requests a freshly allocated result with an inferred dtype; use
// OutputDType to force a specific element kind and OutputBuffer to write into
// a caller-owned array.
type OutputArg struct {
	kind  outputKind
	dtype ndarray.DType
	buf   *ndarray.Array
}

// OutputDType requests a freshly allocated result of the given element kind.
func OutputDType(dt ndarray.DType) OutputArg {
	return OutputArg{kind: outputDType, dtype: dt}
}

// OutputBuffer requests that the result be written into buf. The operation
// then returns nil instead of a new array.
func OutputBuffer(buf *ndarray.Array) OutputArg {
	return OutputArg{kind: outputBuffer, buf: buf}
}

// Allowed explicit output element kinds per provisioning variant.
var (
	filterOutputDTypes = map[ndarray.DType]bool{
		ndarray.Float32:    true,
		ndarray.Float64:    true,
		ndarray.Complex64:  true,
		ndarray.Complex128: true,
	}
	complexOutputDTypes = map[ndarray.DType]bool{
		ndarray.Complex64:  true,
		ndarray.Complex128: true,
	}
)

// provisionOutput resolves an output argument against the input for the
// filters whose mask is real-valued. It returns the array the kernel writes
// into and the array handed back to the caller; the latter is nil when the
// caller supplied its own buffer.
func provisionOutput(arg OutputArg, input *ndarray.Array) (out, ret *ndarray.Array, err error) {
	switch arg.kind {
	case outputAbsent:
		dt := ndarray.Float64
		switch input.DType() {
		case ndarray.Float32, ndarray.Complex64, ndarray.Complex128:
			dt = input.DType()
		}
		out, err = ndarray.Zeros(input.Shape(), dt)
		if err != nil {
			return nil, nil, err
		}
		return out, out, nil

	case outputDType:
		if !filterOutputDTypes[arg.dtype] {
			return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedDType, arg.dtype)
		}
		out, err = ndarray.Zeros(input.Shape(), arg.dtype)
		if err != nil {
			return nil, nil, err
		}
		return out, out, nil

	default:
		if !ndarray.SameShape(arg.buf, input) {
			return nil, nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, arg.buf.Shape(), input.Shape())
		}
		return arg.buf, nil, nil
	}
}

// provisionComplexOutput resolves an output argument for the shift filter,
// whose complex mask forces a complex result.
func provisionComplexOutput(arg OutputArg, input *ndarray.Array) (out, ret *ndarray.Array, err error) {
	switch arg.kind {
	case outputAbsent:
		dt := ndarray.Complex128
		if input.DType().IsComplex() {
			dt = input.DType()
		}
		out, err = ndarray.Zeros(input.Shape(), dt)
		if err != nil {
			return nil, nil, err
		}
		return out, out, nil

	case outputDType:
		if !complexOutputDTypes[arg.dtype] {
			return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedDType, arg.dtype)
		}
		out, err = ndarray.Zeros(input.Shape(), arg.dtype)
		if err != nil {
			return nil, nil, err
		}
		return out, out, nil

	default:
		if !ndarray.SameShape(arg.buf, input) {
			return nil, nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, arg.buf.Shape(), input.Shape())
		}
		return arg.buf, nil, nil
	}
}
