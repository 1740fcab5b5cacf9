// Command mxmtool reads an edge list and prints the sparse matrix
// product of the resulting adjacency matrix with itself (or with a
// second edge list, if given), using a semiring selected by flag.
//
// It exists to give the package's mxm kernel an external, runnable
// consumer, not as a general-purpose graph tool: edge-list parsing,
// file I/O and the command surface below are not part of the kernel
// itself, in the same spirit as the original library's demo/ programs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	sk "github.com/go-graphblas/sparsekernel"
)

func main() {
	semiringName := flag.String("semiring", "arithmetic", "semiring to use: arithmetic, minplus, maxplus, minmax")
	bPath := flag.String("b", "", "second edge-list file; defaults to squaring the first matrix read from stdin")
	flag.Parse()

	A, err := readAdjacency(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mxmtool:", err)
		os.Exit(1)
	}

	B := A
	if *bPath != "" {
		f, err := os.Open(*bPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mxmtool:", err)
			os.Exit(1)
		}
		B, err = readAdjacency(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, "mxmtool:", err)
			os.Exit(1)
		}
	}

	sr, err := lookupSemiring(*semiringName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mxmtool:", err)
		os.Exit(1)
	}

	if A.NCols() != B.NRows() {
		fmt.Fprintf(os.Stderr, "mxmtool: inner dimensions disagree: A is %dx%d, B is %dx%d\n",
			A.NRows(), A.NCols(), B.NRows(), B.NCols())
		os.Exit(1)
	}

	C := sk.NewMatrix[float64](A.NRows(), B.NCols())
	if err := sk.MxM[float64, float64, float64, bool](C, nil, nil, sr, A, B, sk.Replace); err != nil {
		fmt.Fprintln(os.Stderr, "mxmtool:", err)
		os.Exit(1)
	}

	fmt.Printf("%d %d %d\n", C.NRows(), C.NCols(), C.NVals())
	for i := 0; i < C.NRows(); i++ {
		row := C.RowRef(i)
		row.Each(func(col sk.Index, val float64) {
			fmt.Printf("%d %d %g\n", i, col, val)
		})
	}
}

// readAdjacency reads whitespace-separated "src dst" pairs, one edge per
// line, from r and returns the resulting boolean-weighted adjacency
// matrix widened to float64 for use with the numeric semirings below.
// Self-loops (src == dst) are discarded, mirroring the original demo's
// edge-list reading convention (spec §6: the core itself never sees or
// discards self-loops, only this outer layer does).
func readAdjacency(r io.Reader) (*sk.Matrix[float64], error) {
	var srcs, dsts []int
	maxID := -1
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		var src, dst int
		if _, err := fmt.Sscanf(line, "%d %d", &src, &dst); err != nil {
			continue
		}
		if src > maxID {
			maxID = src
		}
		if dst > maxID {
			maxID = dst
		}
		if src == dst {
			continue // ignore self loops
		}
		srcs = append(srcs, src)
		dsts = append(dsts, dst)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	n := maxID + 1
	m := sk.NewMatrix[float64](n, n)
	vals := make([]float64, len(srcs))
	for i := range vals {
		vals[i] = 1
	}
	if err := m.Build(srcs, dsts, vals); err != nil {
		return nil, err
	}
	return m, nil
}

func lookupSemiring(name string) (sk.Semiring[float64, float64, float64], error) {
	switch name {
	case "arithmetic":
		return sk.ArithmeticSemiring[float64](), nil
	case "minplus":
		return sk.MinPlusSemiring[float64](), nil
	case "maxplus":
		return sk.MaxPlusSemiring[float64](), nil
	case "minmax":
		return sk.MinMaxSemiring[float64](), nil
	default:
		return nil, fmt.Errorf("unknown semiring %q", name)
	}
}
