// Command fourierinfo prints the per-bin frequency response of the Fourier
// filters for a given parameter.
//
// Usage:
//
//	fourierinfo [flags] [filter-name ...]
//
// Without arguments it prints the response of every filter.
//
// Examples:
//
//	fourierinfo gaussian
//	fourierinfo -bins 16 -param 2.5 gaussian uniform
//	fourierinfo -real 32 -param 1 shift
package main

import (
	"flag"
	"fmt"
	"math/cmplx"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-ndimage/fourier"
	"github.com/cwbudde/algo-ndimage/ndarray"
)

type filterEntry struct {
	name string
	op   func(*ndarray.Array, fourier.Param, ...fourier.Option) (*ndarray.Array, error)
}

var registry = []filterEntry{
	{"gaussian", fourier.Gaussian},
	{"uniform", fourier.Uniform},
	{"ellipsoid", fourier.Ellipsoid},
	{"shift", fourier.Shift},
}

func main() {
	bins := flag.Int("bins", 8, "number of spectrum bins to evaluate")
	param := flag.Float64("param", 1, "filter parameter (sigma, size, or shift in samples)")
	realLen := flag.Int("real", -1, "treat the spectrum as a real-transform half spectrum of this logical length")
	list := flag.Bool("list", false, "list known filter names and exit")
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}
	if *bins <= 0 {
		fmt.Fprintf(os.Stderr, "fourierinfo: bins must be > 0: %d\n", *bins)
		os.Exit(2)
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	for _, name := range names {
		entry, ok := lookup(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "fourierinfo: unknown filter %q\n", name)
			os.Exit(2)
		}
		if err := printResponse(entry, *bins, *param, *realLen); err != nil {
			fmt.Fprintf(os.Stderr, "fourierinfo: %v\n", err)
			os.Exit(1)
		}
	}
}

func lookup(name string) (filterEntry, bool) {
	name = strings.ToLower(name)
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return filterEntry{}, false
}

// printResponse filters an all-ones spectrum, so the output bins are the
// filter weights themselves.
func printResponse(entry filterEntry, bins int, param float64, realLen int) error {
	ones, err := ndarray.Ones([]int{bins}, ndarray.Complex128)
	if err != nil {
		return err
	}

	opts := []fourier.Option{}
	if realLen >= 0 {
		opts = append(opts, fourier.WithRealLength(realLen))
	}
	out, err := entry.op(ones, fourier.Scalar(param), opts...)
	if err != nil {
		return err
	}

	fmt.Printf("%s (param=%g, bins=%d)\n", entry.name, param, bins)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "bin\tmagnitude\tphase(rad)")
	for i, v := range out.Complex128s() {
		fmt.Fprintf(w, "%d\t%.6f\t%+.6f\n", i, cmplx.Abs(v), cmplx.Phase(v))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()
	return nil
}
