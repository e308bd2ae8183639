package glwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// GGSWCiphertext is a GGSW encryption of a small integer m, made of (k+1) * LevelCount
// GLWE rows. The row (c, l) encrypts zero plus m * g_l on the c-th mask polynomial
// for c < k, or on the body for c = k.
type GGSWCiphertext struct {
	torus.Decomposition
	Value []Ciphertext
}

// NewGGSWCiphertext allocates a new zero [GGSWCiphertext].
func NewGGSWCiphertext(k, N int, decomp torus.Decomposition) *GGSWCiphertext {
	value := make([]Ciphertext, (k+1)*decomp.LevelCount)
	for i := range value {
		value[i] = *NewCiphertext(k, N)
	}
	return &GGSWCiphertext{Decomposition: decomp, Value: value}
}

// Row returns the GLWE row encrypting m * g_level on the c-th component.
// Levels are indexed from 1 to LevelCount.
func (ct GGSWCiphertext) Row(c, level int) *Ciphertext {
	return &ct.Value[c*ct.LevelCount+level-1]
}

// GLWEDimension returns the GLWE dimension k of the rows.
func (ct GGSWCiphertext) GLWEDimension() int {
	if len(ct.Value) == 0 {
		return 0
	}
	return ct.Value[0].GLWEDimension()
}

// PolynomialSize returns the degree N of the polynomials of the rows.
func (ct GGSWCiphertext) PolynomialSize() int {
	if len(ct.Value) == 0 {
		return 0
	}
	return ct.Value[0].PolynomialSize()
}

// Equal performs a deep equal.
func (ct GGSWCiphertext) Equal(other *GGSWCiphertext) bool {
	if other == nil || ct.Decomposition != other.Decomposition || len(ct.Value) != len(other.Value) {
		return false
	}
	for i := range ct.Value {
		if !ct.Value[i].Equal(&other.Value[i]) {
			return false
		}
	}
	return true
}

// BinarySize returns the serialized size of the object in bytes.
func (ct GGSWCiphertext) BinarySize() (size int) {
	size = ct.Decomposition.BinarySize() + 8
	for i := range ct.Value {
		size += ct.Value[i].BinarySize()
	}
	return
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
func (ct GGSWCiphertext) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = ct.Decomposition.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("torus.Decomposition.WriteTo: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64[int](w, len(ct.Value)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		for i := range ct.Value {
			if inc, err = ct.Value[i].WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("glwe.Ciphertext.WriteTo: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return ct.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
func (ct *GGSWCiphertext) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		if inc, err = ct.Decomposition.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("torus.Decomposition.ReadFrom: %w", err)
		}

		n += inc

		var size int
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if err = torus.CheckReadSize(size); err != nil {
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		if size%ct.LevelCount != 0 {
			return n, fmt.Errorf("cannot ReadFrom: %d rows is not a multiple of LevelCount=%d", size, ct.LevelCount)
		}

		ct.Value = make([]Ciphertext, size)

		for i := range ct.Value {
			if inc, err = ct.Value[i].ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("glwe.Ciphertext.ReadFrom: %w", err)
			}
			n += inc
		}

		return n, nil

	default:
		return ct.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (ct GGSWCiphertext) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(ct.BinarySize())
	_, err = ct.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// [GGSWCiphertext.MarshalBinary] or [GGSWCiphertext.WriteTo] on the object.
func (ct *GGSWCiphertext) UnmarshalBinary(p []byte) (err error) {
	_, err = ct.ReadFrom(buffer.NewBuffer(p))
	return
}
