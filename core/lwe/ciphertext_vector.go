package lwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// CiphertextVector is an ordered list of LWE ciphertexts of the same dimension.
type CiphertextVector []Ciphertext

// NewCiphertextVector allocates count zero ciphertexts of dimension n.
func NewCiphertextVector(n, count int) CiphertextVector {
	v := make(CiphertextVector, count)
	for i := range v {
		v[i] = *NewCiphertext(n)
	}
	return v
}

// Count returns the number of ciphertexts in the vector.
func (v CiphertextVector) Count() int {
	return len(v)
}

// Dimension returns the LWE dimension shared by the ciphertexts of the vector,
// or -1 if the vector is empty or its elements have different dimensions.
func (v CiphertextVector) Dimension() int {
	if len(v) == 0 {
		return -1
	}
	n := v[0].Dimension()
	for i := range v[1:] {
		if v[i+1].Dimension() != n {
			return -1
		}
	}
	return n
}

// CopyNew returns a deep copy of the vector.
func (v CiphertextVector) CopyNew() CiphertextVector {
	cpy := make(CiphertextVector, len(v))
	for i := range v {
		cpy[i] = *v[i].CopyNew()
	}
	return cpy
}

// Equal performs a deep equal.
func (v CiphertextVector) Equal(other CiphertextVector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if !v[i].Equal(&other[i]) {
			return false
		}
	}
	return true
}

// BinarySize returns the serialized size of the object in bytes.
func (v CiphertextVector) BinarySize() (size int) {
	size = 8
	for i := range v {
		size += v[i].BinarySize()
	}
	return
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
func (v CiphertextVector) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteAsUint64[int](w, len(v)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		for i := range v {
			if inc, err = v[i].WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("lwe.Ciphertext.WriteTo: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
func (v *CiphertextVector) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if err = torus.CheckReadSize(size); err != nil {
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		if cap(*v) < size {
			*v = make(CiphertextVector, size)
		}

		*v = (*v)[:size]

		for i := range *v {
			if inc, err = (*v)[i].ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("lwe.Ciphertext.ReadFrom: %w", err)
			}
			n += inc
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v CiphertextVector) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// [CiphertextVector.MarshalBinary] or [CiphertextVector.WriteTo] on the object.
func (v *CiphertextVector) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}
