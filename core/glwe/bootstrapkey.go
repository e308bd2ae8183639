package glwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// BootstrapKey is the public material of the programmable bootstrapping:
// Value[i] is a GGSW encryption, under a GLWE key, of the i-th coefficient
// of an LWE key of dimension n.
type BootstrapKey struct {
	Value []GGSWCiphertext
}

// NewBootstrapKey allocates a new zero [BootstrapKey].
func NewBootstrapKey(n, k, N int, decomp torus.Decomposition) *BootstrapKey {
	value := make([]GGSWCiphertext, n)
	for i := range value {
		value[i] = *NewGGSWCiphertext(k, N, decomp)
	}
	return &BootstrapKey{Value: value}
}

// InputLWEDimension returns the dimension n of the LWE key encrypted by the bootstrapping key.
func (bsk BootstrapKey) InputLWEDimension() int {
	return len(bsk.Value)
}

// GLWEDimension returns the GLWE dimension k of the GGSW ciphertexts.
func (bsk BootstrapKey) GLWEDimension() int {
	if len(bsk.Value) == 0 {
		return 0
	}
	return bsk.Value[0].GLWEDimension()
}

// PolynomialSize returns the degree N of the GGSW ciphertexts.
func (bsk BootstrapKey) PolynomialSize() int {
	if len(bsk.Value) == 0 {
		return 0
	}
	return bsk.Value[0].PolynomialSize()
}

// OutputLWEDimension returns the dimension k*N of the bootstrapped LWE ciphertexts.
func (bsk BootstrapKey) OutputLWEDimension() int {
	return bsk.GLWEDimension() * bsk.PolynomialSize()
}

// Decomposition returns the gadget decomposition of the GGSW ciphertexts.
func (bsk BootstrapKey) Decomposition() torus.Decomposition {
	if len(bsk.Value) == 0 {
		return torus.Decomposition{}
	}
	return bsk.Value[0].Decomposition
}

// Equal performs a deep equal.
func (bsk BootstrapKey) Equal(other *BootstrapKey) bool {
	if other == nil || len(bsk.Value) != len(other.Value) {
		return false
	}
	for i := range bsk.Value {
		if !bsk.Value[i].Equal(&other.Value[i]) {
			return false
		}
	}
	return true
}

// BinarySize returns the serialized size of the object in bytes.
func (bsk BootstrapKey) BinarySize() (size int) {
	size = 8
	for i := range bsk.Value {
		size += bsk.Value[i].BinarySize()
	}
	return
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
func (bsk BootstrapKey) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteAsUint64[int](w, len(bsk.Value)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		for i := range bsk.Value {
			if inc, err = bsk.Value[i].WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("glwe.GGSWCiphertext.WriteTo: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return bsk.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
func (bsk *BootstrapKey) ReadFrom(r io.Reader) (n int64, err error) {

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

		bsk.Value = make([]GGSWCiphertext, size)

		for i := range bsk.Value {
			if inc, err = bsk.Value[i].ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("glwe.GGSWCiphertext.ReadFrom: %w", err)
			}
			n += inc
		}

		return n, nil

	default:
		return bsk.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (bsk BootstrapKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(bsk.BinarySize())
	_, err = bsk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// [BootstrapKey.MarshalBinary] or [BootstrapKey.WriteTo] on the object.
func (bsk *BootstrapKey) UnmarshalBinary(p []byte) (err error) {
	_, err = bsk.ReadFrom(buffer.NewBuffer(p))
	return
}
