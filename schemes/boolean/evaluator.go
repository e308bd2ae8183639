package boolean

import (
	"fmt"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// eighth is 1/8 of the torus. The linear combinations of the gates place
// their phases on multiples of 1/8.
const eighth = torus.Plaintext(1 << (torus.LogQ - 3))

// Evaluator evaluates boolean gates on ciphertexts encrypted under a [ClientKey],
// using only the public material of its [ServerKey].
//
// Each gate but NOT is a linear combination of its operands followed by a
// programmable bootstrapping, which maps phases in [0, 1/2) to true and phases in
// [1/2, 1) to false and resets the noise. The result is key-switched back to the
// flat key, so that gates can be freely composed.
//
// An Evaluator is not safe for concurrent use. Use [Evaluator.ShallowCopy] to
// obtain an evaluator per goroutine.
type Evaluator struct {
	params Parameters
	eng    engine.Engine
	bsk    engine.PreparedBootstrapKey
	ksk    *lwe.KeySwitchKey
	lut    *glwe.Ciphertext

	// scale maps the encodings of true and false to +1/8 and -1/8.
	scale int32
}

// NewEvaluator instantiates a new [Evaluator] from a [ServerKey]. The bootstrapping
// key is converted to the internal representation of eng.
func NewEvaluator(sk *ServerKey, eng engine.Engine) (*Evaluator, error) {

	if err := sk.checkShape(); err != nil {
		return nil, fmt.Errorf("cannot NewEvaluator: %w", err)
	}

	bsk, err := eng.ConvertBootstrapKey(sk.BootstrapKey)
	if err != nil {
		return nil, fmt.Errorf("cannot NewEvaluator: %w", err)
	}

	params := sk.Parameters

	// The lookup table is the trivial encryption of T * (1 + X + ... + X^(N-1)),
	// the constant coefficient of its rotation by X^-m is T for m in [0, N) and -T
	// for m in [N, 2N).
	pts := torus.NewPlaintextVector(params.PolynomialSize())
	for i := range pts {
		pts[i] = Encode(true, params.LogScale())
	}

	return &Evaluator{
		params: params,
		eng:    eng,
		bsk:    bsk,
		ksk:    sk.KeySwitchKey,
		lut:    glwe.NewTrivialCiphertext(params.GLWEDimension(), params.PolynomialSize(), pts),
		scale:  1 << (params.LogScale() - MinLogScale),
	}, nil
}

// Parameters returns the parameters of the evaluator.
func (eval Evaluator) Parameters() Parameters {
	return eval.params
}

// ShallowCopy creates a shallow copy of this [Evaluator] in which all the
// read-only data-structures are shared with the receiver and the engine is
// shallow copied. The receiver and the returned evaluator can be used concurrently.
func (eval Evaluator) ShallowCopy() *Evaluator {
	return &Evaluator{
		params: eval.params,
		eng:    eval.eng.ShallowCopy(),
		bsk:    eval.bsk,
		ksk:    eval.ksk,
		lut:    eval.lut,
		scale:  eval.scale,
	}
}

// Constant returns a noiseless trivial encryption of b.
func (eval Evaluator) Constant(b bool) *lwe.Ciphertext {
	return lwe.NewTrivialCiphertext(eval.params.LWEDimension(), Encode(b, eval.params.LogScale()))
}

// NOT returns an encryption of !a. It is a negation: it does not bootstrap and
// does not increase the noise.
func (eval Evaluator) NOT(a *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(a); err != nil {
		return nil, fmt.Errorf("cannot NOT: %w", err)
	}
	return eval.eng.NegateLWECiphertextUnchecked(a), nil
}

// AND returns an encryption of a && b.
func (eval Evaluator) AND(a, b *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot AND: %w", err)
	}
	return eval.and(a, b), nil
}

// OR returns an encryption of a || b.
func (eval Evaluator) OR(a, b *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot OR: %w", err)
	}
	return eval.or(a, b), nil
}

// NAND returns an encryption of !(a && b).
func (eval Evaluator) NAND(a, b *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot NAND: %w", err)
	}
	return eval.gate(-1, a, b, 1), nil
}

// NOR returns an encryption of !(a || b).
func (eval Evaluator) NOR(a, b *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot NOR: %w", err)
	}
	return eval.gate(-1, a, b, -1), nil
}

// XOR returns an encryption of a != b.
func (eval Evaluator) XOR(a, b *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot XOR: %w", err)
	}
	return eval.gate(2, a, b, 2), nil
}

// XNOR returns an encryption of a == b.
func (eval Evaluator) XNOR(a, b *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(a, b); err != nil {
		return nil, fmt.Errorf("cannot XNOR: %w", err)
	}
	return eval.gate(-2, a, b, -2), nil
}

// MUX returns an encryption of a if c is true and of b otherwise,
// evaluated as (c && a) || (!c && b).
func (eval Evaluator) MUX(c, a, b *lwe.Ciphertext) (*lwe.Ciphertext, error) {
	if err := eval.checkOperands(c, a, b); err != nil {
		return nil, fmt.Errorf("cannot MUX: %w", err)
	}
	notC := eval.eng.NegateLWECiphertextUnchecked(c)
	return eval.or(eval.and(c, a), eval.and(notC, b)), nil
}

func (eval Evaluator) and(a, b *lwe.Ciphertext) *lwe.Ciphertext {
	return eval.gate(1, a, b, -1)
}

func (eval Evaluator) or(a, b *lwe.Ciphertext) *lwe.Ciphertext {
	return eval.gate(1, a, b, 1)
}

// gate evaluates the programmable bootstrapping of w * (a + b) + c/8,
// with a and b rescaled to +/- 1/8.
func (eval Evaluator) gate(w int32, a, b *lwe.Ciphertext, c int32) *lwe.Ciphertext {
	w *= eval.scale
	ct := eval.eng.LinearCombineLWECiphertextsUnchecked([]int32{w, w}, []*lwe.Ciphertext{a, b}, torus.Plaintext(c)*eighth)
	return eval.programmableBootstrap(ct)
}

// programmableBootstrap bootstraps ct with the sign lookup table and
// key-switches the result back to the flat key.
func (eval Evaluator) programmableBootstrap(ct *lwe.Ciphertext) *lwe.Ciphertext {
	return eval.eng.KeySwitchLWECiphertextUnchecked(eval.ksk, eval.eng.BootstrapLWECiphertextUnchecked(eval.bsk, eval.lut, ct))
}

// checkOperands checks that the operands are ciphertexts under the flat key.
func (eval Evaluator) checkOperands(cts ...*lwe.Ciphertext) error {
	for _, ct := range cts {
		if err := engine.CheckLWEDimension(eval.params.LWEDimension(), ct.Dimension()); err != nil {
			return err
		}
	}
	return nil
}
