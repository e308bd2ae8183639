package lwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// KeySwitchKey is the public material switching an LWE ciphertext from an input
// key s of dimension n to an output key s' of dimension n'.
// Value[i][l-1] is an encryption under s' of s_i * g_l.
type KeySwitchKey struct {
	torus.Decomposition
	Value [][]Ciphertext
}

// NewKeySwitchKey allocates a new zero [KeySwitchKey].
func NewKeySwitchKey(inputDimension, outputDimension int, decomp torus.Decomposition) *KeySwitchKey {
	value := make([][]Ciphertext, inputDimension)
	for i := range value {
		value[i] = make([]Ciphertext, decomp.LevelCount)
		for l := range value[i] {
			value[i][l] = *NewCiphertext(outputDimension)
		}
	}
	return &KeySwitchKey{Decomposition: decomp, Value: value}
}

// InputLWEDimension returns the dimension of the key the ciphertexts are switched from.
func (ksk KeySwitchKey) InputLWEDimension() int {
	return len(ksk.Value)
}

// OutputLWEDimension returns the dimension of the key the ciphertexts are switched to.
func (ksk KeySwitchKey) OutputLWEDimension() int {
	if len(ksk.Value) == 0 || len(ksk.Value[0]) == 0 {
		return 0
	}
	return ksk.Value[0][0].Dimension()
}

// Equal performs a deep equal.
func (ksk KeySwitchKey) Equal(other *KeySwitchKey) bool {
	if other == nil || ksk.Decomposition != other.Decomposition || len(ksk.Value) != len(other.Value) {
		return false
	}
	for i := range ksk.Value {
		if !CiphertextVector(ksk.Value[i]).Equal(other.Value[i]) {
			return false
		}
	}
	return true
}

// BinarySize returns the serialized size of the object in bytes.
func (ksk KeySwitchKey) BinarySize() (size int) {
	size = ksk.Decomposition.BinarySize() + 8
	for i := range ksk.Value {
		size += CiphertextVector(ksk.Value[i]).BinarySize()
	}
	return
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
func (ksk KeySwitchKey) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = ksk.Decomposition.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("torus.Decomposition.WriteTo: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64[int](w, len(ksk.Value)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		for i := range ksk.Value {
			if inc, err = CiphertextVector(ksk.Value[i]).WriteTo(w); err != nil {
				return n + inc, fmt.Errorf("lwe.CiphertextVector.WriteTo: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return ksk.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
func (ksk *KeySwitchKey) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		if inc, err = ksk.Decomposition.ReadFrom(r); err != nil {
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

		ksk.Value = make([][]Ciphertext, size)

		for i := range ksk.Value {

			var v CiphertextVector
			if inc, err = v.ReadFrom(r); err != nil {
				return n + inc, fmt.Errorf("lwe.CiphertextVector.ReadFrom: %w", err)
			}

			n += inc

			if v.Count() != ksk.LevelCount {
				return n, fmt.Errorf("cannot ReadFrom: invalid level count %d, expected %d", v.Count(), ksk.LevelCount)
			}

			ksk.Value[i] = v
		}

		return n, nil

	default:
		return ksk.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (ksk KeySwitchKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(ksk.BinarySize())
	_, err = ksk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// [KeySwitchKey.MarshalBinary] or [KeySwitchKey.WriteTo] on the object.
func (ksk *KeySwitchKey) UnmarshalBinary(p []byte) (err error) {
	_, err = ksk.ReadFrom(buffer.NewBuffer(p))
	return
}
