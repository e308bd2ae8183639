package reference

import (
	"fmt"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// DecryptLWECiphertext returns the phase Body - <Mask, sk> of ct.
func (eng *Engine) DecryptLWECiphertext(sk *lwe.SecretKey, ct *lwe.Ciphertext) (torus.Plaintext, error) {
	if err := engine.CheckLWEDimension(sk.Dimension(), ct.Dimension()); err != nil {
		return 0, fmt.Errorf("cannot DecryptLWECiphertext: %w", err)
	}
	return eng.DecryptLWECiphertextUnchecked(sk, ct), nil
}

// DecryptLWECiphertextUnchecked is the unchecked version of [Engine.DecryptLWECiphertext].
func (eng *Engine) DecryptLWECiphertextUnchecked(sk *lwe.SecretKey, ct *lwe.Ciphertext) torus.Plaintext {
	return torus.Plaintext(ct.Body - sk.Dot(ct.Mask))
}

// DecryptLWECiphertextVector returns the phases of the ciphertexts of cts.
func (eng *Engine) DecryptLWECiphertextVector(sk *lwe.SecretKey, cts lwe.CiphertextVector) (torus.PlaintextVector, error) {
	if err := engine.CheckCount(cts.Count()); err != nil {
		return nil, fmt.Errorf("cannot DecryptLWECiphertextVector: %w", err)
	}
	for i := range cts {
		if err := engine.CheckLWEDimension(sk.Dimension(), cts[i].Dimension()); err != nil {
			return nil, fmt.Errorf("cannot DecryptLWECiphertextVector: ciphertext %d: %w", i, err)
		}
	}
	return eng.DecryptLWECiphertextVectorUnchecked(sk, cts), nil
}

// DecryptLWECiphertextVectorUnchecked is the unchecked version of [Engine.DecryptLWECiphertextVector].
func (eng *Engine) DecryptLWECiphertextVectorUnchecked(sk *lwe.SecretKey, cts lwe.CiphertextVector) torus.PlaintextVector {
	pts := torus.NewPlaintextVector(cts.Count())
	for i := range cts {
		pts[i] = eng.DecryptLWECiphertextUnchecked(sk, &cts[i])
	}
	return pts
}

// DecryptGLWECiphertext returns the N coefficients of the phase Body - sum Mask[i] * S[i] of ct.
func (eng *Engine) DecryptGLWECiphertext(sk *glwe.SecretKey, ct *glwe.Ciphertext) (torus.PlaintextVector, error) {
	if err := engine.CheckGLWEShape(sk.GLWEDimension(), sk.PolynomialSize(), ct.GLWEDimension(), ct.PolynomialSize()); err != nil {
		return nil, fmt.Errorf("cannot DecryptGLWECiphertext: %w", err)
	}
	return eng.DecryptGLWECiphertextUnchecked(sk, ct), nil
}

// DecryptGLWECiphertextUnchecked is the unchecked version of [Engine.DecryptGLWECiphertext].
func (eng *Engine) DecryptGLWECiphertextUnchecked(sk *glwe.SecretKey, ct *glwe.Ciphertext) torus.PlaintextVector {

	m := eng.multiplier(sk.PolynomialSize())

	skNTT := m.newPolys(sk.GLWEDimension())
	for i := range skNTT {
		m.prepare(sk.Polynomial(i), skNTT[i])
	}

	dot := torus.NewPoly(ct.PolynomialSize())
	m.mulAccumulate(ct.Mask, skNTT, dot)

	pts := torus.NewPlaintextVector(ct.PolynomialSize())
	for i := range pts {
		pts[i] = torus.Plaintext(ct.Body[i] - dot[i])
	}

	return pts
}

// DecryptGLWETensorCiphertext returns the N coefficients of the phase of the
// degree-two ciphertext ct under (S[i]*S[j], S[i], 1).
func (eng *Engine) DecryptGLWETensorCiphertext(sk *glwe.SecretKey, ct *glwe.TensorCiphertext) (torus.PlaintextVector, error) {
	k := sk.GLWEDimension()
	if err := engine.CheckGLWEShape(k, sk.PolynomialSize(), ct.GLWEDimension(), ct.PolynomialSize()); err != nil {
		return nil, fmt.Errorf("cannot DecryptGLWETensorCiphertext: %w", err)
	}
	if len(ct.Quadratic) != k*(k+1)/2 {
		return nil, fmt.Errorf("cannot DecryptGLWETensorCiphertext: %w: %d quadratic terms for k=%d", engine.ErrGLWEDimensionMismatch, len(ct.Quadratic), k)
	}
	return eng.DecryptGLWETensorCiphertextUnchecked(sk, ct), nil
}

// DecryptGLWETensorCiphertextUnchecked is the unchecked version of [Engine.DecryptGLWETensorCiphertext].
func (eng *Engine) DecryptGLWETensorCiphertextUnchecked(sk *glwe.SecretKey, ct *glwe.TensorCiphertext) torus.PlaintextVector {

	k, N := sk.GLWEDimension(), sk.PolynomialSize()
	m := eng.multiplier(N)

	s := make([]torus.Poly, k)
	skNTT := m.newPolys(k)
	for i := range skNTT {
		s[i] = sk.Polynomial(i)
		m.prepare(s[i], skNTT[i])
	}

	// S[i]*S[j] for i <= j, in the order of the quadratic terms
	squares := make([]torus.Poly, 0, len(ct.Quadratic))
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			sij := torus.NewPoly(N)
			m.mulAccumulate([]torus.Poly{s[i]}, skNTT[j:j+1], sij)
			squares = append(squares, sij)
		}
	}

	squaresNTT := m.newPolys(len(squares))
	for i := range squaresNTT {
		m.prepare(squares[i], squaresNTT[i])
	}

	linear := torus.NewPoly(N)
	m.mulAccumulate(ct.Linear, skNTT, linear)

	quadratic := torus.NewPoly(N)
	m.mulAccumulate(ct.Quadratic, squaresNTT, quadratic)

	pts := torus.NewPlaintextVector(N)
	for i := range pts {
		pts[i] = torus.Plaintext(ct.Body[i] - linear[i] + quadratic[i])
	}

	return pts
}
