package reference

import (
	"fmt"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
)

// TensorProductGLWECiphertext returns the degree-two ciphertext whose phase under
// (S_i*S_j, S_i, 1) is the product of the phases of ct0 and ct1 divided by 2^logScale.
func (eng *Engine) TensorProductGLWECiphertext(ct0, ct1 *glwe.Ciphertext, logScale int) (*glwe.TensorCiphertext, error) {
	if err := engine.CheckGLWEShape(ct0.GLWEDimension(), ct0.PolynomialSize(), ct1.GLWEDimension(), ct1.PolynomialSize()); err != nil {
		return nil, fmt.Errorf("cannot TensorProductGLWECiphertext: %w", err)
	}
	if err := engine.CheckGLWEParameters(ct0.GLWEDimension(), ct0.PolynomialSize()); err != nil {
		return nil, fmt.Errorf("cannot TensorProductGLWECiphertext: %w", err)
	}
	if err := engine.CheckLogScale(logScale); err != nil {
		return nil, fmt.Errorf("cannot TensorProductGLWECiphertext: %w", err)
	}
	return eng.TensorProductGLWECiphertextUnchecked(ct0, ct1, logScale), nil
}

// TensorProductGLWECiphertextUnchecked is the unchecked version of [Engine.TensorProductGLWECiphertext].
func (eng *Engine) TensorProductGLWECiphertextUnchecked(ct0, ct1 *glwe.Ciphertext, logScale int) *glwe.TensorCiphertext {

	k, N := ct0.GLWEDimension(), ct0.PolynomialSize()
	m := eng.multiplier(N)

	// ct0 is lifted to the NTT domain and ct1 is also put in Montgomery form.
	a0, a1 := m.newPolys(k), m.newPolys(k)
	for i := 0; i < k; i++ {
		m.liftTorus(ct0.Mask[i], a0[i])
		m.prepare(ct1.Mask[i], a1[i])
	}
	b0, b1 := m.newPoly(), m.newPoly()
	m.liftTorus(ct0.Body, b0)
	m.prepare(ct1.Body, b1)

	out := glwe.NewTensorCiphertext(k, N)

	acc := m.newPoly()
	buf := make([]uint64, N)

	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			m.mul(a0[i], a1[j], acc)
			if j != i {
				m.mulThenAdd(a0[j], a1[i], acc)
			}
			m.reconstructThenRescale(acc, buf, logScale, out.Quadratic[glwe.QuadraticIndex(i, j, k)])
		}
	}

	for i := 0; i < k; i++ {
		m.mul(a0[i], b1, acc)
		m.mulThenAdd(b0, a1[i], acc)
		m.reconstructThenRescale(acc, buf, logScale, out.Linear[i])
	}

	m.mul(b0, b1, acc)
	m.reconstructThenRescale(acc, buf, logScale, out.Body)

	return out
}
