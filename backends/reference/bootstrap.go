package reference

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/tuneinsight/lattigo/v6/ring"
	"go.uber.org/zap"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// preparedBootstrapKey is a [glwe.BootstrapKey] whose polynomials are
// lifted to the NTT domain in Montgomery form. It is read-only and can
// be shared between shallow copies of an [Engine].
type preparedBootstrapKey struct {
	decomp torus.Decomposition
	n, k   int
	m      *polyMultiplier

	// value[i][r*(k+1)+q] is the q-th polynomial of the r-th row
	// of the i-th GGSW ciphertext.
	value [][]ring.Poly
}

// InputLWEDimension implements [engine.PreparedBootstrapKey].
func (bsk preparedBootstrapKey) InputLWEDimension() int {
	return bsk.n
}

// OutputLWEDimension implements [engine.PreparedBootstrapKey].
func (bsk preparedBootstrapKey) OutputLWEDimension() int {
	return bsk.k * bsk.m.N
}

// GLWEDimension implements [engine.PreparedBootstrapKey].
func (bsk preparedBootstrapKey) GLWEDimension() int {
	return bsk.k
}

// PolynomialSize implements [engine.PreparedBootstrapKey].
func (bsk preparedBootstrapKey) PolynomialSize() int {
	return bsk.m.N
}

// Decomposition implements [engine.PreparedBootstrapKey].
func (bsk preparedBootstrapKey) Decomposition() torus.Decomposition {
	return bsk.decomp
}

// ConvertBootstrapKey prepares bsk for [Engine.BootstrapLWECiphertext].
func (eng *Engine) ConvertBootstrapKey(bsk *glwe.BootstrapKey) (engine.PreparedBootstrapKey, error) {

	if err := engine.CheckBootstrapKey(bsk); err != nil {
		return nil, fmt.Errorf("cannot ConvertBootstrapKey: %w", err)
	}

	return eng.ConvertBootstrapKeyUnchecked(bsk), nil
}

// ConvertBootstrapKeyUnchecked is the unchecked version of [Engine.ConvertBootstrapKey].
func (eng *Engine) ConvertBootstrapKeyUnchecked(bsk *glwe.BootstrapKey) engine.PreparedBootstrapKey {

	now := time.Now()

	k, N := bsk.GLWEDimension(), bsk.PolynomialSize()

	m := eng.multiplier(N)

	value := make([][]ring.Poly, bsk.InputLWEDimension())
	for i := range value {
		rows := bsk.Value[i].Value
		value[i] = m.newPolys(len(rows) * (k + 1))
		for r := range rows {
			for q := 0; q < k; q++ {
				m.prepare(rows[r].Mask[q], value[i][r*(k+1)+q])
			}
			m.prepare(rows[r].Body, value[i][r*(k+1)+k])
		}
	}

	eng.logger.Debug("prepared bootstrapping key",
		zap.Int("n", len(value)),
		zap.Int("k", k),
		zap.Int("N", N),
		zap.Duration("took", time.Since(now)))

	return &preparedBootstrapKey{
		decomp: bsk.Decomposition(),
		n:      len(value),
		k:      k,
		m:      m,
		value:  value,
	}
}

// BootstrapLWECiphertext evaluates the programmable bootstrapping of ct with the lookup table lut.
// The result is an encryption under the GLWE key of bsk, seen as an LWE key of dimension k*N,
// of the constant coefficient of lut * X^-phase(ct), with the phase switched to the modulus 2N.
func (eng *Engine) BootstrapLWECiphertext(bsk engine.PreparedBootstrapKey, lut *glwe.Ciphertext, ct *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if _, ok := bsk.(*preparedBootstrapKey); !ok {
		return nil, fmt.Errorf("cannot BootstrapLWECiphertext: %w: %T", engine.ErrIncompatibleBackend, bsk)
	}
	if err := engine.CheckGLWEShape(bsk.GLWEDimension(), bsk.PolynomialSize(), lut.GLWEDimension(), lut.PolynomialSize()); err != nil {
		return nil, fmt.Errorf("cannot BootstrapLWECiphertext: lookup table: %w", err)
	}
	if err := engine.CheckLWEDimension(bsk.InputLWEDimension(), ct.Dimension()); err != nil {
		return nil, fmt.Errorf("cannot BootstrapLWECiphertext: %w", err)
	}
	return eng.BootstrapLWECiphertextUnchecked(bsk, lut, ct), nil
}

// BootstrapLWECiphertextUnchecked is the unchecked version of [Engine.BootstrapLWECiphertext].
func (eng *Engine) BootstrapLWECiphertextUnchecked(bsk engine.PreparedBootstrapKey, lut *glwe.Ciphertext, ct *lwe.Ciphertext) *lwe.Ciphertext {

	key := bsk.(*preparedBootstrapKey)

	k, N := key.k, key.m.N

	// log2(2N)
	logTwoN := bits.Len(uint(N))

	acc := glwe.NewCiphertext(k, N)
	rotateGLWE(lut, -int(torus.ModSwitch(ct.Body, logTwoN)), acc)

	ep := newExternalProduct(key)

	diff := glwe.NewCiphertext(k, N)
	for i, a := range ct.Mask {
		ai := int(torus.ModSwitch(a, logTwoN))
		if ai == 0 {
			continue
		}
		// CMux: acc = acc + bsk[i] x (acc * X^ai - acc)
		for q := 0; q < k; q++ {
			torus.MulByMonomialMinusOne(acc.Mask[q], ai, diff.Mask[q])
		}
		torus.MulByMonomialMinusOne(acc.Body, ai, diff.Body)
		ep.productThenAdd(i, diff, acc)
	}

	return acc.SampleExtract(0)
}

// rotateGLWE evaluates out = ct * X^r.
func rotateGLWE(ct *glwe.Ciphertext, r int, out *glwe.Ciphertext) {
	for q := range ct.Mask {
		torus.MulByMonomial(ct.Mask[q], r, out.Mask[q])
	}
	torus.MulByMonomial(ct.Body, r, out.Body)
}

// externalProduct holds the scratch buffers of the external products by the GGSW
// ciphertexts of a prepared bootstrapping key.
type externalProduct struct {
	key    *preparedBootstrapKey
	digits [][]int32
	digit  ring.Poly
	acc    []ring.Poly
	buf    []uint64
}

func newExternalProduct(key *preparedBootstrapKey) *externalProduct {
	N := key.m.N
	digits := make([][]int32, key.decomp.LevelCount)
	for l := range digits {
		digits[l] = make([]int32, N)
	}
	return &externalProduct{
		key:    key,
		digits: digits,
		digit:  key.m.newPoly(),
		acc:    key.m.newPolys(key.k + 1),
		buf:    make([]uint64, N),
	}
}

// productThenAdd evaluates out = out + bsk[i] x ct, where x is the external product
// sum_{c,l} D_{c,l}(ct) * row_{c,l} and D_{c,l} is the l-th level of the gadget
// decomposition of the c-th component of ct.
func (ep *externalProduct) productThenAdd(i int, ct, out *glwe.Ciphertext) {

	key, m := ep.key, ep.key.m
	k, L := key.k, key.decomp.LevelCount
	rows := key.value[i]

	first := true
	for c := 0; c <= k; c++ {

		comp := ct.Body
		if c < k {
			comp = ct.Mask[c]
		}

		key.decomp.DecomposePoly(comp, ep.digits)

		for l := 0; l < L; l++ {
			m.liftDigits(ep.digits[l], ep.digit)
			r := (c*L + l) * (k + 1)
			for q := 0; q <= k; q++ {
				if first {
					m.mul(ep.digit, rows[r+q], ep.acc[q])
				} else {
					m.mulThenAdd(ep.digit, rows[r+q], ep.acc[q])
				}
			}
			first = false
		}
	}

	for q := 0; q < k; q++ {
		m.reconstructThenAdd(ep.acc[q], ep.buf, out.Mask[q])
	}
	m.reconstructThenAdd(ep.acc[k], ep.buf, out.Body)
}
