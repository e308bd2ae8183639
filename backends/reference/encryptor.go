package reference

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/ring"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// EncryptLWECiphertext encrypts pt under sk with a noise of variance v.
func (eng *Engine) EncryptLWECiphertext(sk *lwe.SecretKey, pt torus.Plaintext, v torus.Variance) (*lwe.Ciphertext, error) {
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot EncryptLWECiphertext: %w", err)
	}
	return eng.EncryptLWECiphertextUnchecked(sk, pt, v), nil
}

// EncryptLWECiphertextUnchecked is the unchecked version of [Engine.EncryptLWECiphertext].
func (eng *Engine) EncryptLWECiphertextUnchecked(sk *lwe.SecretKey, pt torus.Plaintext, v torus.Variance) *lwe.Ciphertext {
	ct := lwe.NewCiphertext(sk.Dimension())
	eng.encryptLWE(sk, pt, v, ct)
	return ct
}

// EncryptLWECiphertextVector encrypts each plaintext of pts under sk with a noise of variance v.
func (eng *Engine) EncryptLWECiphertextVector(sk *lwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) (lwe.CiphertextVector, error) {
	if err := engine.CheckCount(pts.Count()); err != nil {
		return nil, fmt.Errorf("cannot EncryptLWECiphertextVector: %w", err)
	}
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot EncryptLWECiphertextVector: %w", err)
	}
	return eng.EncryptLWECiphertextVectorUnchecked(sk, pts, v), nil
}

// EncryptLWECiphertextVectorUnchecked is the unchecked version of [Engine.EncryptLWECiphertextVector].
func (eng *Engine) EncryptLWECiphertextVectorUnchecked(sk *lwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) lwe.CiphertextVector {
	cts := lwe.NewCiphertextVector(sk.Dimension(), pts.Count())
	for i := range cts {
		eng.encryptLWE(sk, pts[i], v, &cts[i])
	}
	return cts
}

// EncryptGLWECiphertext encrypts the plaintexts pts, placed in the first coefficients
// of the plaintext polynomial, under sk with a noise of variance v.
func (eng *Engine) EncryptGLWECiphertext(sk *glwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) (*glwe.Ciphertext, error) {
	if pts.Count() > sk.PolynomialSize() {
		return nil, fmt.Errorf("cannot EncryptGLWECiphertext: %w: %d plaintexts for %d slots", engine.ErrPolynomialSizeMismatch, pts.Count(), sk.PolynomialSize())
	}
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot EncryptGLWECiphertext: %w", err)
	}
	return eng.EncryptGLWECiphertextUnchecked(sk, pts, v), nil
}

// EncryptGLWECiphertextUnchecked is the unchecked version of [Engine.EncryptGLWECiphertext].
func (eng *Engine) EncryptGLWECiphertextUnchecked(sk *glwe.SecretKey, pts torus.PlaintextVector, v torus.Variance) *glwe.Ciphertext {
	enc := eng.newGLWEEncryptor(sk)
	ct := glwe.NewCiphertext(sk.GLWEDimension(), sk.PolynomialSize())
	enc.encryptZero(v, ct)
	for i := range pts {
		ct.Body[i] += torus.Torus(pts[i])
	}
	return ct
}

// ZeroEncryptLWECiphertext returns an encryption of zero under sk with a noise of variance v.
func (eng *Engine) ZeroEncryptLWECiphertext(sk *lwe.SecretKey, v torus.Variance) (*lwe.Ciphertext, error) {
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot ZeroEncryptLWECiphertext: %w", err)
	}
	return eng.ZeroEncryptLWECiphertextUnchecked(sk, v), nil
}

// ZeroEncryptLWECiphertextUnchecked is the unchecked version of [Engine.ZeroEncryptLWECiphertext].
func (eng *Engine) ZeroEncryptLWECiphertextUnchecked(sk *lwe.SecretKey, v torus.Variance) *lwe.Ciphertext {
	return eng.EncryptLWECiphertextUnchecked(sk, 0, v)
}

// ZeroEncryptLWECiphertextVector returns count encryptions of zero under sk with a noise of variance v.
func (eng *Engine) ZeroEncryptLWECiphertextVector(sk *lwe.SecretKey, v torus.Variance, count int) (lwe.CiphertextVector, error) {
	if err := engine.CheckCount(count); err != nil {
		return nil, fmt.Errorf("cannot ZeroEncryptLWECiphertextVector: %w", err)
	}
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot ZeroEncryptLWECiphertextVector: %w", err)
	}
	return eng.ZeroEncryptLWECiphertextVectorUnchecked(sk, v, count), nil
}

// ZeroEncryptLWECiphertextVectorUnchecked is the unchecked version of [Engine.ZeroEncryptLWECiphertextVector].
func (eng *Engine) ZeroEncryptLWECiphertextVectorUnchecked(sk *lwe.SecretKey, v torus.Variance, count int) lwe.CiphertextVector {
	return eng.EncryptLWECiphertextVectorUnchecked(sk, torus.NewPlaintextVector(count), v)
}

// ZeroEncryptGLWECiphertext returns an encryption of the zero polynomial under sk with a noise of variance v.
func (eng *Engine) ZeroEncryptGLWECiphertext(sk *glwe.SecretKey, v torus.Variance) (*glwe.Ciphertext, error) {
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot ZeroEncryptGLWECiphertext: %w", err)
	}
	return eng.ZeroEncryptGLWECiphertextUnchecked(sk, v), nil
}

// ZeroEncryptGLWECiphertextUnchecked is the unchecked version of [Engine.ZeroEncryptGLWECiphertext].
func (eng *Engine) ZeroEncryptGLWECiphertextUnchecked(sk *glwe.SecretKey, v torus.Variance) *glwe.Ciphertext {
	return eng.EncryptGLWECiphertextUnchecked(sk, nil, v)
}

// encryptLWE writes on ct a fresh encryption of pt: Body = <Mask, sk> + pt + e.
func (eng *Engine) encryptLWE(sk *lwe.SecretKey, pt torus.Plaintext, v torus.Variance, ct *lwe.Ciphertext) {
	eng.sampleUniform(ct.Mask)
	ct.Body = sk.Dot(ct.Mask) + torus.Torus(pt) + eng.sampleGaussian(v)
}

// glweEncryptor encrypts many GLWE ciphertexts under the same key,
// which is mapped once to the NTT domain.
type glweEncryptor struct {
	*Engine
	m     *polyMultiplier
	skNTT []ring.Poly
}

func (eng *Engine) newGLWEEncryptor(sk *glwe.SecretKey) *glweEncryptor {
	m := eng.multiplier(sk.PolynomialSize())
	skNTT := m.newPolys(sk.GLWEDimension())
	for i := range skNTT {
		m.prepare(sk.Polynomial(i), skNTT[i])
	}
	return &glweEncryptor{Engine: eng, m: m, skNTT: skNTT}
}

// encryptZero writes on ct a fresh encryption of zero: Body = sum Mask[i] * S[i] + e.
func (enc *glweEncryptor) encryptZero(v torus.Variance, ct *glwe.Ciphertext) {
	for i := range ct.Mask {
		enc.sampleUniform(ct.Mask[i])
	}
	ct.Body.Zero()
	enc.addGaussian(ct.Body, v)
	enc.m.mulAccumulate(ct.Mask, enc.skNTT, ct.Body)
}
