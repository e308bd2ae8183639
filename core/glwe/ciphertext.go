package glwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// Ciphertext is a GLWE ciphertext (Mask, Body) whose phase under a key S
// is Body - sum Mask[i] * S[i] mod X^N+1, i.e. N plaintext slots plus error.
type Ciphertext struct {
	Mask []torus.Poly
	Body torus.Poly
}

// NewCiphertext allocates a new zero [Ciphertext] of GLWE dimension k and polynomial size N.
func NewCiphertext(k, N int) *Ciphertext {
	return &Ciphertext{Mask: newPolys(k, N), Body: torus.NewPoly(N)}
}

// NewTrivialCiphertext returns a noiseless ciphertext with a zero mask and the
// plaintexts pts as body. len(pts) must be at most N.
func NewTrivialCiphertext(k, N int, pts torus.PlaintextVector) *Ciphertext {
	ct := NewCiphertext(k, N)
	for i := range pts {
		ct.Body[i] = torus.Torus(pts[i])
	}
	return ct
}

// GLWEDimension returns the number k of mask polynomials.
func (ct Ciphertext) GLWEDimension() int {
	return len(ct.Mask)
}

// PolynomialSize returns the degree N of the polynomials.
func (ct Ciphertext) PolynomialSize() int {
	return ct.Body.N()
}

// CopyNew returns a deep copy of the ciphertext.
func (ct Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Mask: copyPolys(ct.Mask), Body: ct.Body.CopyNew()}
}

// Copy copies other on the target ciphertext.
func (ct *Ciphertext) Copy(other *Ciphertext) {
	for i := range ct.Mask {
		copy(ct.Mask[i], other.Mask[i])
	}
	copy(ct.Body, other.Body)
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return other != nil && equalPolys(ct.Mask, other.Mask) && ct.Body.Equal(other.Body)
}

// SampleExtract returns the LWE ciphertext of dimension k*N encrypting the
// idx-th coefficient of the phase of ct under the key [SecretKey.LWEKey].
func (ct Ciphertext) SampleExtract(idx int) *lwe.Ciphertext {
	k, N := ct.GLWEDimension(), ct.PolynomialSize()
	out := lwe.NewCiphertext(k * N)
	ct.SampleExtractThen(idx, out)
	return out
}

// SampleExtractThen is the same as [Ciphertext.SampleExtract] but writes on out.
func (ct Ciphertext) SampleExtractThen(idx int, out *lwe.Ciphertext) {
	N := ct.PolynomialSize()
	for c := range ct.Mask {
		a := ct.Mask[c]
		mask := out.Mask[c*N : (c+1)*N]
		for j := 0; j <= idx; j++ {
			mask[j] = a[idx-j]
		}
		for j := idx + 1; j < N; j++ {
			mask[j] = -a[N+idx-j]
		}
	}
	out.Body = ct.Body[idx]
}

// BinarySize returns the serialized size of the object in bytes.
func (ct Ciphertext) BinarySize() int {
	return polysBinarySize(ct.Mask, ct.PolynomialSize()) + 4*ct.PolynomialSize()
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the [buffer.Writer] interface (see lattigo/utils/buffer/writer.go),
// it will be wrapped into a [bufio.Writer].
func (ct Ciphertext) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = writePolys(w, ct.Mask, ct.PolynomialSize()); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteAsUint32Slice[torus.Torus](w, ct.Body); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint32Slice[torus.Torus]: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return ct.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
//
// Unless r implements the [buffer.Reader] interface (see lattigo/utils/buffer/reader.go),
// it will be wrapped into a [bufio.Reader].
func (ct *Ciphertext) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		if ct == nil {
			return 0, fmt.Errorf("cannot ReadFrom: target object is nil")
		}

		var N int
		if ct.Mask, N, n, err = readPolys(r); err != nil {
			return
		}

		ct.Body = torus.NewPoly(N)

		var inc int64
		if inc, err = buffer.ReadAsUint32Slice[torus.Torus](r, ct.Body); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint32Slice[torus.Torus]: %w", err)
		}

		return n + inc, nil

	default:
		return ct.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (ct Ciphertext) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(ct.BinarySize())
	_, err = ct.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// [Ciphertext.MarshalBinary] or [Ciphertext.WriteTo] on the object.
func (ct *Ciphertext) UnmarshalBinary(p []byte) (err error) {
	_, err = ct.ReadFrom(buffer.NewBuffer(p))
	return
}
