// Package engine defines the capability interfaces that every backend implements:
// key generation, encryption, decryption, zero-encryption, tensor product,
// bootstrapping, key switching and linear combination of ciphertexts.
//
// Each operation comes with two entry points:
//
//   - O(...) (result, error) checks the structural preconditions of its operands
//     (dimensions, polynomial sizes, counts, key kinds) and returns the first violated
//     one, wrapping one of the sentinel errors of this package, before any cryptographic
//     work. On success it delegates to OUnchecked. Operands are never modified.
//   - OUnchecked(...) result performs no check at all. Preconditions are assumed and
//     the result is unspecified if they are violated: there is no safety net, the call
//     may return garbage or panic. It is meant for composition chains whose operands
//     have matching shapes by construction.
//
// Call sites depend only on these interfaces so that backends can be substituted.
package engine

import (
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// SecretKeyGenerator samples secret keys.
type SecretKeyGenerator interface {
	GenerateLWESecretKey(kind lwe.KeyKind, n int) (*lwe.SecretKey, error)
	GenerateLWESecretKeyUnchecked(kind lwe.KeyKind, n int) *lwe.SecretKey
	GenerateGLWESecretKey(kind lwe.KeyKind, k, N int) (*glwe.SecretKey, error)
	GenerateGLWESecretKeyUnchecked(kind lwe.KeyKind, k, N int) *glwe.SecretKey
}

// Encryptor encrypts plaintexts with a uniform mask and a Gaussian noise of the given variance.
type Encryptor interface {
	EncryptLWECiphertext(sk *lwe.SecretKey, pt torus.Plaintext, v torus.Variance) (*lwe.Ciphertext, error)
	EncryptLWECiphertextUnchecked(sk *lwe.SecretKey, pt torus.Plaintext, v torus.Variance) *lwe.Ciphertext
	EncryptLWECiphertextVector(sk *lwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) (lwe.CiphertextVector, error)
	EncryptLWECiphertextVectorUnchecked(sk *lwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) lwe.CiphertextVector
	EncryptGLWECiphertext(sk *glwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) (*glwe.Ciphertext, error)
	EncryptGLWECiphertextUnchecked(sk *glwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) *glwe.Ciphertext
}

// Decryptor computes the phase of ciphertexts. The phase is returned as is:
// rounding it to the nearest encoding is the concern of the encoding layer.
type Decryptor interface {
	DecryptLWECiphertext(sk *lwe.SecretKey, ct *lwe.Ciphertext) (torus.Plaintext, error)
	DecryptLWECiphertextUnchecked(sk *lwe.SecretKey, ct *lwe.Ciphertext) torus.Plaintext
	DecryptLWECiphertextVector(sk *lwe.SecretKey, cts lwe.CiphertextVector) (torus.PlaintextVector, error)
	DecryptLWECiphertextVectorUnchecked(sk *lwe.SecretKey, cts lwe.CiphertextVector) torus.PlaintextVector
	DecryptGLWECiphertext(sk *glwe.SecretKey, ct *glwe.Ciphertext) (torus.PlaintextVector, error)
	DecryptGLWECiphertextUnchecked(sk *glwe.SecretKey, ct *glwe.Ciphertext) torus.PlaintextVector
	// DecryptGLWETensorCiphertext returns the phase of ct under (S_i*S_j, S_i, 1).
	// For a tensor product of two ciphertexts of plaintexts encoded with a scaling factor
	// Delta, this is the product of the two messages encoded with the same factor Delta.
	DecryptGLWETensorCiphertext(sk *glwe.SecretKey, ct *glwe.TensorCiphertext) (torus.PlaintextVector, error)
	DecryptGLWETensorCiphertextUnchecked(sk *glwe.SecretKey, ct *glwe.TensorCiphertext) torus.PlaintextVector
}

// ZeroEncryptor produces encryptions of zero.
type ZeroEncryptor interface {
	ZeroEncryptLWECiphertext(sk *lwe.SecretKey, v torus.Variance) (*lwe.Ciphertext, error)
	ZeroEncryptLWECiphertextUnchecked(sk *lwe.SecretKey, v torus.Variance) *lwe.Ciphertext
	ZeroEncryptLWECiphertextVector(sk *lwe.SecretKey, v torus.Variance, count int) (lwe.CiphertextVector, error)
	ZeroEncryptLWECiphertextVectorUnchecked(sk *lwe.SecretKey, v torus.Variance, count int) lwe.CiphertextVector
	ZeroEncryptGLWECiphertext(sk *glwe.SecretKey, v torus.Variance) (*glwe.Ciphertext, error)
	ZeroEncryptGLWECiphertextUnchecked(sk *glwe.SecretKey, v torus.Variance) *glwe.Ciphertext
}

// TensorProducer computes the tensor product of two GLWE ciphertexts whose plaintexts
// are encoded with a scaling factor 2^logScale. The products are computed exactly
// over the integers and divided by 2^logScale with rounding.
type TensorProducer interface {
	TensorProductGLWECiphertext(ct0, ct1 *glwe.Ciphertext, logScale int) (*glwe.TensorCiphertext, error)
	TensorProductGLWECiphertextUnchecked(ct0, ct1 *glwe.Ciphertext, logScale int) *glwe.TensorCiphertext
}

// PreparedBootstrapKey is a bootstrapping key converted into the internal
// representation of a specific backend.
type PreparedBootstrapKey interface {
	InputLWEDimension() int
	OutputLWEDimension() int
	GLWEDimension() int
	PolynomialSize() int
	Decomposition() torus.Decomposition
}

// BootstrapKeyGenerator generates bootstrapping keys and prepares them for a backend.
type BootstrapKeyGenerator interface {
	GenerateBootstrapKey(lweKey *lwe.SecretKey, glweKey *glwe.SecretKey, decomp torus.Decomposition, v torus.Variance) (*glwe.BootstrapKey, error)
	GenerateBootstrapKeyUnchecked(lweKey *lwe.SecretKey, glweKey *glwe.SecretKey, decomp torus.Decomposition, v torus.Variance) *glwe.BootstrapKey
	ConvertBootstrapKey(bsk *glwe.BootstrapKey) (PreparedBootstrapKey, error)
	ConvertBootstrapKeyUnchecked(bsk *glwe.BootstrapKey) PreparedBootstrapKey
}

// Bootstrapper evaluates the programmable bootstrapping: ct is blindly rotated
// through the lookup table lut and the constant coefficient is extracted, which
// resets the noise and applies the function encoded in lut to the phase of ct.
type Bootstrapper interface {
	BootstrapLWECiphertext(bsk PreparedBootstrapKey, lut *glwe.Ciphertext, ct *lwe.Ciphertext) (*lwe.Ciphertext, error)
	BootstrapLWECiphertextUnchecked(bsk PreparedBootstrapKey, lut *glwe.Ciphertext, ct *lwe.Ciphertext) *lwe.Ciphertext
}

// KeySwitchKeyGenerator generates key-switching keys.
type KeySwitchKeyGenerator interface {
	GenerateKeySwitchKey(inputKey, outputKey *lwe.SecretKey, decomp torus.Decomposition, v torus.Variance) (*lwe.KeySwitchKey, error)
	GenerateKeySwitchKeyUnchecked(inputKey, outputKey *lwe.SecretKey, decomp torus.Decomposition, v torus.Variance) *lwe.KeySwitchKey
}

// KeySwitcher re-encrypts LWE ciphertexts under another key.
type KeySwitcher interface {
	KeySwitchLWECiphertext(ksk *lwe.KeySwitchKey, ct *lwe.Ciphertext) (*lwe.Ciphertext, error)
	KeySwitchLWECiphertextUnchecked(ksk *lwe.KeySwitchKey, ct *lwe.Ciphertext) *lwe.Ciphertext
}

// LinearCombiner evaluates public linear functions of LWE ciphertexts.
type LinearCombiner interface {
	// LinearCombineLWECiphertexts returns constant + sum weights[i] * cts[i].
	LinearCombineLWECiphertexts(weights []int32, cts []*lwe.Ciphertext, constant torus.Plaintext) (*lwe.Ciphertext, error)
	LinearCombineLWECiphertextsUnchecked(weights []int32, cts []*lwe.Ciphertext, constant torus.Plaintext) *lwe.Ciphertext
	NegateLWECiphertext(ct *lwe.Ciphertext) (*lwe.Ciphertext, error)
	NegateLWECiphertextUnchecked(ct *lwe.Ciphertext) *lwe.Ciphertext
}

// Engine is the union of all the capabilities of a backend.
type Engine interface {
	SecretKeyGenerator
	Encryptor
	Decryptor
	ZeroEncryptor
	TensorProducer
	BootstrapKeyGenerator
	Bootstrapper
	KeySwitchKeyGenerator
	KeySwitcher
	LinearCombiner

	// ShallowCopy returns an engine sharing the read-only state of the
	// receiver with fresh scratch buffers, that can be used concurrently with it.
	ShallowCopy() Engine
}
