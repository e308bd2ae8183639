package glwe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

func newPolys(count, N int) (polys []torus.Poly) {
	polys = make([]torus.Poly, count)
	for i := range polys {
		polys[i] = torus.NewPoly(N)
	}
	return
}

func copyPolys(polys []torus.Poly) (cpy []torus.Poly) {
	cpy = make([]torus.Poly, len(polys))
	for i := range polys {
		cpy[i] = polys[i].CopyNew()
	}
	return
}

func equalPolys(a, b []torus.Poly) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// polysBinarySize is the size of polys serialized by writePolys.
func polysBinarySize(polys []torus.Poly, N int) int {
	return 16 + 4*len(polys)*N
}

// writePolys writes len(polys) and N followed by the coefficients of each poly.
func writePolys(w buffer.Writer, polys []torus.Poly, N int) (n int64, err error) {

	var inc int64

	if inc, err = buffer.WriteAsUint64[int](w, len(polys)); err != nil {
		return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
	}

	n += inc

	if inc, err = buffer.WriteAsUint64[int](w, N); err != nil {
		return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
	}

	n += inc

	for i := range polys {
		if inc, err = buffer.WriteAsUint32Slice[torus.Torus](w, polys[i]); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint32Slice[torus.Torus]: %w", err)
		}
		n += inc
	}

	return
}

// readPolys reads polynomials written by writePolys and returns them with their degree.
func readPolys(r buffer.Reader) (polys []torus.Poly, N int, n int64, err error) {

	var inc int64

	var count int
	if inc, err = buffer.ReadAsUint64[int](r, &count); err != nil {
		return nil, 0, n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
	}

	n += inc

	if inc, err = buffer.ReadAsUint64[int](r, &N); err != nil {
		return nil, 0, n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
	}

	n += inc

	for _, size := range []int{count, N, count * N} {
		if err = torus.CheckReadSize(size); err != nil {
			return nil, 0, n, err
		}
	}

	polys = newPolys(count, N)

	for i := range polys {
		if inc, err = buffer.ReadAsUint32Slice[torus.Torus](r, polys[i]); err != nil {
			return nil, 0, n + inc, fmt.Errorf("buffer.ReadAsUint32Slice[torus.Torus]: %w", err)
		}
		n += inc
	}

	return
}
