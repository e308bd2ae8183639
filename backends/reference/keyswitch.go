package reference

import (
	"fmt"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
)

// KeySwitchLWECiphertext re-encrypts ct under the output key of ksk.
func (eng *Engine) KeySwitchLWECiphertext(ksk *lwe.KeySwitchKey, ct *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := engine.CheckKeySwitchKey(ksk); err != nil {
		return nil, fmt.Errorf("cannot KeySwitchLWECiphertext: key-switching key: %w", err)
	}
	if err := engine.CheckLWEDimension(ksk.InputLWEDimension(), ct.Dimension()); err != nil {
		return nil, fmt.Errorf("cannot KeySwitchLWECiphertext: %w", err)
	}
	return eng.KeySwitchLWECiphertextUnchecked(ksk, ct), nil
}

// KeySwitchLWECiphertextUnchecked is the unchecked version of [Engine.KeySwitchLWECiphertext].
func (eng *Engine) KeySwitchLWECiphertextUnchecked(ksk *lwe.KeySwitchKey, ct *lwe.Ciphertext) *lwe.Ciphertext {

	out := lwe.NewTrivialCiphertext(ksk.OutputLWEDimension(), 0)
	out.Body = ct.Body

	digits := make([]int32, ksk.LevelCount)

	for i, a := range ct.Mask {
		ksk.Decompose(a, digits)
		for l, d := range digits {
			if d != 0 {
				lwe.MulScalarThenAdd(&ksk.Value[i][l], -d, out)
			}
		}
	}

	return out
}
