package lwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// Ciphertext is an LWE ciphertext (Mask, Body) whose phase under a key s
// is Body - <Mask, s> = plaintext + error.
type Ciphertext struct {
	Mask []torus.Torus
	Body torus.Torus
}

// NewCiphertext allocates a new zero [Ciphertext] of dimension n.
func NewCiphertext(n int) *Ciphertext {
	return &Ciphertext{Mask: make([]torus.Torus, n)}
}

// NewTrivialCiphertext returns a noiseless ciphertext of dimension n with a zero
// mask and pt as body. It decrypts to pt under any key of dimension n.
func NewTrivialCiphertext(n int, pt torus.Plaintext) *Ciphertext {
	ct := NewCiphertext(n)
	ct.Body = torus.Torus(pt)
	return ct
}

// Dimension returns the LWE dimension n of the ciphertext.
func (ct Ciphertext) Dimension() int {
	return len(ct.Mask)
}

// CopyNew returns a deep copy of the ciphertext.
func (ct Ciphertext) CopyNew() *Ciphertext {
	return &Ciphertext{Mask: append([]torus.Torus(nil), ct.Mask...), Body: ct.Body}
}

// Copy copies other on the target ciphertext.
func (ct *Ciphertext) Copy(other *Ciphertext) {
	copy(ct.Mask, other.Mask)
	ct.Body = other.Body
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	if other == nil || ct.Body != other.Body || len(ct.Mask) != len(other.Mask) {
		return false
	}
	for i := range ct.Mask {
		if ct.Mask[i] != other.Mask[i] {
			return false
		}
	}
	return true
}

// Add evaluates ct2 = ct0 + ct1.
func Add(ct0, ct1, ct2 *Ciphertext) {
	for i := range ct2.Mask {
		ct2.Mask[i] = ct0.Mask[i] + ct1.Mask[i]
	}
	ct2.Body = ct0.Body + ct1.Body
}

// Sub evaluates ct2 = ct0 - ct1.
func Sub(ct0, ct1, ct2 *Ciphertext) {
	for i := range ct2.Mask {
		ct2.Mask[i] = ct0.Mask[i] - ct1.Mask[i]
	}
	ct2.Body = ct0.Body - ct1.Body
}

// Neg evaluates ct1 = -ct0.
func Neg(ct0, ct1 *Ciphertext) {
	for i := range ct1.Mask {
		ct1.Mask[i] = -ct0.Mask[i]
	}
	ct1.Body = -ct0.Body
}

// MulScalarThenAdd evaluates ct1 = ct1 + c * ct0.
func MulScalarThenAdd(ct0 *Ciphertext, c int32, ct1 *Ciphertext) {
	w := torus.Torus(c)
	for i := range ct1.Mask {
		ct1.Mask[i] += w * ct0.Mask[i]
	}
	ct1.Body += w * ct0.Body
}

// BinarySize returns the serialized size of the object in bytes.
func (ct Ciphertext) BinarySize() int {
	return 8 + 4*len(ct.Mask) + 4
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

		if inc, err = buffer.WriteAsUint64[int](w, len(ct.Mask)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint32Slice[torus.Torus](w, ct.Mask); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint32Slice[torus.Torus]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint32[torus.Torus](w, ct.Body); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint32[torus.Torus]: %w", err)
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

		var inc int64

		var size int
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if err = torus.CheckReadSize(size); err != nil {
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		if cap(ct.Mask) < size {
			ct.Mask = make([]torus.Torus, size)
		}

		ct.Mask = ct.Mask[:size]

		if inc, err = buffer.ReadAsUint32Slice[torus.Torus](r, ct.Mask); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint32Slice[torus.Torus]: %w", err)
		}

		n += inc

		if inc, err = buffer.ReadAsUint32[torus.Torus](r, &ct.Body); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint32[torus.Torus]: %w", err)
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
