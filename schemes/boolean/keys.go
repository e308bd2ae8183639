package boolean

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
)

// ClientKey is the private key material of the boolean scheme: the flat key
// under which bits are encrypted and decrypted, and the ring key the bootstrapping
// key is generated under. It also holds the engine, which owns the randomness
// of the encryptions. A ClientKey is never serialized.
type ClientKey struct {
	params  Parameters
	eng     engine.Engine
	lweKey  *lwe.SecretKey
	glweKey *glwe.SecretKey
}

// Parameters returns the parameters of the client key.
func (ck ClientKey) Parameters() Parameters {
	return ck.params
}

// Encrypt encrypts the bit b under the flat key with the LWE variance of the parameters.
func (ck ClientKey) Encrypt(b bool) (*lwe.Ciphertext, error) {
	ct, err := ck.eng.EncryptLWECiphertext(ck.lweKey, Encode(b, ck.params.logScale), ck.params.lweVariance)
	if err != nil {
		return nil, fmt.Errorf("cannot Encrypt: %w", err)
	}
	return ct, nil
}

// Decrypt returns the bit encrypted by ct, that is the bit whose encoding is the
// closest to the phase of ct.
func (ck ClientKey) Decrypt(ct *lwe.Ciphertext) (bool, error) {
	pt, err := ck.eng.DecryptLWECiphertext(ck.lweKey, ct)
	if err != nil {
		return false, fmt.Errorf("cannot Decrypt: %w", err)
	}
	return Decode(pt), nil
}

// ServerKey is the public key material of the boolean scheme, safe to publish:
// the bootstrapping key, a GGSW encryption under the ring key of each bit of the
// flat key, and the key-switching key from the extracted ring key back to the flat key.
type ServerKey struct {
	Parameters   Parameters
	BootstrapKey *glwe.BootstrapKey
	KeySwitchKey *lwe.KeySwitchKey
}

// Equal performs a deep equal.
func (sk ServerKey) Equal(other *ServerKey) bool {
	return sk.Parameters.Equal(&other.Parameters) &&
		sk.BootstrapKey.Equal(other.BootstrapKey) &&
		sk.KeySwitchKey.Equal(other.KeySwitchKey)
}

// BinarySize returns the serialized size of the object in bytes.
func (sk ServerKey) BinarySize() int {
	return sk.Parameters.BinarySize() + sk.BootstrapKey.BinarySize() + sk.KeySwitchKey.BinarySize()
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
func (sk ServerKey) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = sk.Parameters.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("boolean.Parameters.WriteTo: %w", err)
		}

		n += inc

		if inc, err = sk.BootstrapKey.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("glwe.BootstrapKey.WriteTo: %w", err)
		}

		n += inc

		if inc, err = sk.KeySwitchKey.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("lwe.KeySwitchKey.WriteTo: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return sk.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
func (sk *ServerKey) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		if inc, err = sk.Parameters.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("boolean.Parameters.ReadFrom: %w", err)
		}

		n += inc

		if sk.BootstrapKey == nil {
			sk.BootstrapKey = new(glwe.BootstrapKey)
		}

		if inc, err = sk.BootstrapKey.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("glwe.BootstrapKey.ReadFrom: %w", err)
		}

		n += inc

		if sk.KeySwitchKey == nil {
			sk.KeySwitchKey = new(lwe.KeySwitchKey)
		}

		if inc, err = sk.KeySwitchKey.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("lwe.KeySwitchKey.ReadFrom: %w", err)
		}

		n += inc

		return n, sk.checkShape()

	default:
		return sk.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (sk ServerKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(sk.BinarySize())
	_, err = sk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// [ServerKey.MarshalBinary] or [ServerKey.WriteTo] on the object.
func (sk *ServerKey) UnmarshalBinary(p []byte) (err error) {
	_, err = sk.ReadFrom(buffer.NewBuffer(p))
	return
}

// checkShape checks that the key material is well formed and matches the parameters,
// so that the gates never evaluate on malformed keys.
func (sk ServerKey) checkShape() (err error) {

	params := sk.Parameters

	if err = engine.CheckBootstrapKey(sk.BootstrapKey); err != nil {
		return fmt.Errorf("bootstrapping key: %w", err)
	}

	if err = engine.CheckKeySwitchKey(sk.KeySwitchKey); err != nil {
		return fmt.Errorf("key-switching key: %w", err)
	}

	if err = engine.CheckLWEDimension(params.LWEDimension(), sk.BootstrapKey.InputLWEDimension()); err != nil {
		return fmt.Errorf("bootstrapping key: %w", err)
	}

	if err = engine.CheckGLWEShape(params.GLWEDimension(), params.PolynomialSize(), sk.BootstrapKey.GLWEDimension(), sk.BootstrapKey.PolynomialSize()); err != nil {
		return fmt.Errorf("bootstrapping key: %w", err)
	}

	if sk.BootstrapKey.Decomposition() != params.PBSDecomposition() {
		return fmt.Errorf("bootstrapping key: %w", engine.ErrDecompositionMismatch)
	}

	if err = engine.CheckLWEDimension(params.ExtractedLWEDimension(), sk.KeySwitchKey.InputLWEDimension()); err != nil {
		return fmt.Errorf("key-switching key: %w", err)
	}

	if err = engine.CheckLWEDimension(params.LWEDimension(), sk.KeySwitchKey.OutputLWEDimension()); err != nil {
		return fmt.Errorf("key-switching key: %w", err)
	}

	if sk.KeySwitchKey.Decomposition != params.KSDecomposition() {
		return fmt.Errorf("key-switching key: %w", engine.ErrDecompositionMismatch)
	}

	return
}
