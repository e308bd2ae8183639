package reference

import (
	"fmt"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// LinearCombineLWECiphertexts returns the trivial encryption of constant plus sum weights[i] * cts[i].
func (eng *Engine) LinearCombineLWECiphertexts(weights []int32, cts []*lwe.Ciphertext, constant torus.Plaintext) (*lwe.Ciphertext, error) {
	if err := engine.CheckCount(len(cts)); err != nil {
		return nil, fmt.Errorf("cannot LinearCombineLWECiphertexts: %w", err)
	}
	if len(weights) != len(cts) {
		return nil, fmt.Errorf("cannot LinearCombineLWECiphertexts: %w: %d weights for %d ciphertexts", engine.ErrInvalidParameter, len(weights), len(cts))
	}
	n := cts[0].Dimension()
	for i := range cts[1:] {
		if err := engine.CheckLWEDimension(n, cts[i+1].Dimension()); err != nil {
			return nil, fmt.Errorf("cannot LinearCombineLWECiphertexts: ciphertext %d: %w", i+1, err)
		}
	}
	return eng.LinearCombineLWECiphertextsUnchecked(weights, cts, constant), nil
}

// LinearCombineLWECiphertextsUnchecked is the unchecked version of [Engine.LinearCombineLWECiphertexts].
func (eng *Engine) LinearCombineLWECiphertextsUnchecked(weights []int32, cts []*lwe.Ciphertext, constant torus.Plaintext) *lwe.Ciphertext {
	out := lwe.NewTrivialCiphertext(cts[0].Dimension(), constant)
	for i := range cts {
		switch weights[i] {
		case 0:
		case 1:
			lwe.Add(out, cts[i], out)
		case -1:
			lwe.Sub(out, cts[i], out)
		default:
			lwe.MulScalarThenAdd(cts[i], weights[i], out)
		}
	}
	return out
}

// NegateLWECiphertext returns -ct.
func (eng *Engine) NegateLWECiphertext(ct *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	return eng.NegateLWECiphertextUnchecked(ct), nil
}

// NegateLWECiphertextUnchecked is the unchecked version of [Engine.NegateLWECiphertext].
func (eng *Engine) NegateLWECiphertextUnchecked(ct *lwe.Ciphertext) *lwe.Ciphertext {
	out := lwe.NewCiphertext(ct.Dimension())
	lwe.Neg(ct, out)
	return out
}
