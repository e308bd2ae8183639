package engine

import (
	"fmt"
	"math/bits"

	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// MinPolynomialSize is the smallest supported polynomial size N.
const MinPolynomialSize = 16

// The functions below are shared by the validated entry points of the backends.
// They return nil or an error wrapping one of the sentinels of this package.

// CheckLWEDimension checks that the LWE dimension got matches want.
func CheckLWEDimension(want, got int) error {
	if want != got {
		return fmt.Errorf("%w: expected %d but got %d", ErrLWEDimensionMismatch, want, got)
	}
	return nil
}

// CheckGLWEShape checks that (k1, N1) matches (k0, N0).
func CheckGLWEShape(k0, N0, k1, N1 int) error {
	if k0 != k1 {
		return fmt.Errorf("%w: expected %d but got %d", ErrGLWEDimensionMismatch, k0, k1)
	}
	if N0 != N1 {
		return fmt.Errorf("%w: expected %d but got %d", ErrPolynomialSizeMismatch, N0, N1)
	}
	return nil
}

// CheckCount checks that count is strictly positive.
func CheckCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: count=%d", ErrNullCount, count)
	}
	return nil
}

// CheckVariance checks that v is a valid variance.
func CheckVariance(v torus.Variance) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: variance=%v", ErrInvalidParameter, float64(v))
	}
	return nil
}

// CheckKeyKind checks that kind is one of the defined key kinds.
func CheckKeyKind(kind lwe.KeyKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidParameter, kind)
	}
	return nil
}

// CheckLWEDimensionValue checks that n is a valid LWE dimension.
func CheckLWEDimensionValue(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: LWE dimension=%d must be positive", ErrInvalidParameter, n)
	}
	return nil
}

// CheckGLWEParameters checks that k is positive and that N is a power of two
// not smaller than [MinPolynomialSize].
func CheckGLWEParameters(k, N int) error {
	if k < 1 {
		return fmt.Errorf("%w: GLWE dimension=%d must be positive", ErrInvalidParameter, k)
	}
	if N < MinPolynomialSize || bits.OnesCount64(uint64(N)) != 1 {
		return fmt.Errorf("%w: polynomial size=%d must be a power of two not smaller than %d", ErrInvalidParameter, N, MinPolynomialSize)
	}
	return nil
}

// CheckDecomposition checks that decomp is a valid gadget decomposition.
func CheckDecomposition(decomp torus.Decomposition) error {
	if err := decomp.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return nil
}

// CheckLogScale checks that logScale is in [0, 32].
func CheckLogScale(logScale int) error {
	if logScale < 0 || logScale > torus.LogQ {
		return fmt.Errorf("%w: logScale=%d must be in [0, %d]", ErrInvalidParameter, logScale, torus.LogQ)
	}
	return nil
}

// CheckKeySwitchKey checks that ksk has a valid decomposition and that each of its
// rows holds one ciphertext per level, all of the same output dimension.
func CheckKeySwitchKey(ksk *lwe.KeySwitchKey) error {

	if err := CheckDecomposition(ksk.Decomposition); err != nil {
		return err
	}

	nOut := ksk.OutputLWEDimension()

	for i := range ksk.Value {
		if len(ksk.Value[i]) != ksk.LevelCount {
			return fmt.Errorf("%w: coefficient %d has %d levels but expected %d", ErrDecompositionMismatch, i, len(ksk.Value[i]), ksk.LevelCount)
		}
		for l := range ksk.Value[i] {
			if err := CheckLWEDimension(nOut, ksk.Value[i][l].Dimension()); err != nil {
				return fmt.Errorf("coefficient %d, level %d: %w", i, l+1, err)
			}
		}
	}

	return nil
}

// CheckBootstrapKey checks that bsk is not empty, has valid GLWE parameters and
// decomposition, and that all its GGSW ciphertexts share them.
func CheckBootstrapKey(bsk *glwe.BootstrapKey) error {

	if err := CheckCount(bsk.InputLWEDimension()); err != nil {
		return err
	}

	k, N, decomp := bsk.GLWEDimension(), bsk.PolynomialSize(), bsk.Decomposition()

	if err := CheckGLWEParameters(k, N); err != nil {
		return err
	}

	if err := CheckDecomposition(decomp); err != nil {
		return err
	}

	for i := range bsk.Value {
		ggsw := &bsk.Value[i]
		if ggsw.Decomposition != decomp || len(ggsw.Value) != (k+1)*decomp.LevelCount {
			return fmt.Errorf("GGSW ciphertext %d: %w", i, ErrDecompositionMismatch)
		}
		for j := range ggsw.Value {
			if err := CheckGLWEShape(k, N, ggsw.Value[j].GLWEDimension(), ggsw.Value[j].PolynomialSize()); err != nil {
				return fmt.Errorf("GGSW ciphertext %d: %w", i, err)
			}
		}
	}

	return nil
}
