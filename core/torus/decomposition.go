package torus

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"
)

// Decomposition is the gadget decomposition of a torus element in base 2^BaseLog
// with LevelCount levels. The gadget vector is g_l = 2^(32 - l*BaseLog) for l = 1..LevelCount.
type Decomposition struct {
	BaseLog    int
	LevelCount int
}

// Validate returns an error if the decomposition is not usable with
// a torus of width [LogQ].
func (d Decomposition) Validate() (err error) {
	switch {
	case d.BaseLog < 1:
		return fmt.Errorf("invalid decomposition: BaseLog=%d must be at least 1", d.BaseLog)
	case d.LevelCount < 1:
		return fmt.Errorf("invalid decomposition: LevelCount=%d must be at least 1", d.LevelCount)
	case d.BaseLog*d.LevelCount > LogQ:
		return fmt.Errorf("invalid decomposition: BaseLog*LevelCount=%d exceeds %d", d.BaseLog*d.LevelCount, LogQ)
	}
	return
}

// Gadget returns g_level = 2^(32 - level*BaseLog).
// Levels are indexed from 1 (most significant) to LevelCount.
func (d Decomposition) Gadget(level int) Torus {
	shift := LogQ - level*d.BaseLog
	return Torus(uint64(1) << shift)
}

// Decompose writes in digits[0..LevelCount) the signed balanced digits of t,
// with digits[l-1] being the digit of level l, such that sum digits[l-1] * g_l
// is the closest multiple of 2^(32 - BaseLog*LevelCount) to t.
// Every digit lies in [-2^(BaseLog-1), 2^(BaseLog-1)].
func (d Decomposition) Decompose(t Torus, digits []int32) {

	logBL := d.BaseLog * d.LevelCount
	shift := LogQ - logBL

	x := uint64(t)
	if shift > 0 {
		x = (x + (1 << (shift - 1))) >> shift
	}
	x &= (1 << logBL) - 1

	base := int64(1) << d.BaseLog
	half := base >> 1
	mask := uint64(base - 1)

	for l := d.LevelCount - 1; l >= 0; l-- {
		digit := int64(x & mask)
		x >>= d.BaseLog
		if digit >= half {
			digit -= base
			x++
		}
		digits[l] = int32(digit)
	}
}

// DecomposePoly applies [Decomposition.Decompose] to each coefficient of p.
// The digits of level l are written in out[l-1].
func (d Decomposition) DecomposePoly(p Poly, out [][]int32) {
	digits := make([]int32, d.LevelCount)
	for j := range p {
		d.Decompose(p[j], digits)
		for l := range digits {
			out[l][j] = digits[l]
		}
	}
}

// Recompose returns sum digits[l-1] * g_l mod 2^32.
func (d Decomposition) Recompose(digits []int32) (t Torus) {
	for l := range digits {
		t += Torus(digits[l]) * d.Gadget(l+1)
	}
	return
}

// ClosestRepresentable returns the closest value to t that is exactly
// representable by the decomposition.
func (d Decomposition) ClosestRepresentable(t Torus) Torus {
	shift := LogQ - d.BaseLog*d.LevelCount
	if shift == 0 {
		return t
	}
	return Torus(((uint64(t) + (1 << (shift - 1))) >> shift) << shift)
}

// BinarySize returns the serialized size of the object in bytes.
func (d Decomposition) BinarySize() int {
	return 2
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
func (d Decomposition) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint8(w, uint8(d.BaseLog)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteUint8(w, uint8(d.LevelCount)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8: %w", err)
		}

		return n + inc, w.Flush()

	default:
		return d.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
func (d *Decomposition) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var baseLog, levelCount uint8

		if inc, err = buffer.ReadUint8(r, &baseLog); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint8: %w", err)
		}

		n += inc

		if inc, err = buffer.ReadUint8(r, &levelCount); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint8: %w", err)
		}

		d.BaseLog, d.LevelCount = int(baseLog), int(levelCount)

		return n + inc, d.Validate()

	default:
		return d.ReadFrom(bufio.NewReader(r))
	}
}
