package reference

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// GenerateLWESecretKey samples a new LWE secret key of dimension n.
func (eng *Engine) GenerateLWESecretKey(kind lwe.KeyKind, n int) (*lwe.SecretKey, error) {
	if err := engine.CheckKeyKind(kind); err != nil {
		return nil, fmt.Errorf("cannot GenerateLWESecretKey: %w", err)
	}
	if err := engine.CheckLWEDimensionValue(n); err != nil {
		return nil, fmt.Errorf("cannot GenerateLWESecretKey: %w", err)
	}
	return eng.GenerateLWESecretKeyUnchecked(kind, n), nil
}

// GenerateLWESecretKeyUnchecked is the unchecked version of [Engine.GenerateLWESecretKey].
func (eng *Engine) GenerateLWESecretKeyUnchecked(kind lwe.KeyKind, n int) *lwe.SecretKey {
	coeffs := make([]torus.Torus, n)
	eng.sampleKey(kind, coeffs)
	return lwe.NewSecretKey(kind, coeffs)
}

// GenerateGLWESecretKey samples a new GLWE secret key of k polynomials of degree N.
func (eng *Engine) GenerateGLWESecretKey(kind lwe.KeyKind, k, N int) (*glwe.SecretKey, error) {
	if err := engine.CheckKeyKind(kind); err != nil {
		return nil, fmt.Errorf("cannot GenerateGLWESecretKey: %w", err)
	}
	if err := engine.CheckGLWEParameters(k, N); err != nil {
		return nil, fmt.Errorf("cannot GenerateGLWESecretKey: %w", err)
	}
	return eng.GenerateGLWESecretKeyUnchecked(kind, k, N), nil
}

// GenerateGLWESecretKeyUnchecked is the unchecked version of [Engine.GenerateGLWESecretKey].
func (eng *Engine) GenerateGLWESecretKeyUnchecked(kind lwe.KeyKind, k, N int) *glwe.SecretKey {
	polys := make([]torus.Poly, k)
	for i := range polys {
		polys[i] = torus.NewPoly(N)
		eng.sampleKey(kind, polys[i])
	}
	return glwe.NewSecretKey(kind, polys)
}

// GenerateBootstrapKey generates the GGSW encryptions under glweKey of the coefficients of lweKey.
// The blind rotation selects on the coefficients of lweKey, which must be [lwe.Binary].
func (eng *Engine) GenerateBootstrapKey(lweKey *lwe.SecretKey, glweKey *glwe.SecretKey, decomp torus.Decomposition, v torus.Variance) (*glwe.BootstrapKey, error) {
	if lweKey.Kind() != lwe.Binary {
		return nil, fmt.Errorf("cannot GenerateBootstrapKey: %w: LWE key is %s but must be %s", engine.ErrKeyKindMismatch, lweKey.Kind(), lwe.Binary)
	}
	if err := engine.CheckGLWEParameters(glweKey.GLWEDimension(), glweKey.PolynomialSize()); err != nil {
		return nil, fmt.Errorf("cannot GenerateBootstrapKey: %w", err)
	}
	if err := engine.CheckDecomposition(decomp); err != nil {
		return nil, fmt.Errorf("cannot GenerateBootstrapKey: %w", err)
	}
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot GenerateBootstrapKey: %w", err)
	}
	return eng.GenerateBootstrapKeyUnchecked(lweKey, glweKey, decomp, v), nil
}

// GenerateBootstrapKeyUnchecked is the unchecked version of [Engine.GenerateBootstrapKey].
func (eng *Engine) GenerateBootstrapKeyUnchecked(lweKey *lwe.SecretKey, glweKey *glwe.SecretKey, decomp torus.Decomposition, v torus.Variance) *glwe.BootstrapKey {

	now := time.Now()

	n, k, N := lweKey.Dimension(), glweKey.GLWEDimension(), glweKey.PolynomialSize()

	enc := eng.newGLWEEncryptor(glweKey)

	bsk := glwe.NewBootstrapKey(n, k, N, decomp)

	for i := range bsk.Value {
		mu := lweKey.Coefficient(i)
		ggsw := &bsk.Value[i]
		for c := 0; c <= k; c++ {
			for l := 1; l <= decomp.LevelCount; l++ {
				row := ggsw.Row(c, l)
				enc.encryptZero(v, row)
				if c < k {
					row.Mask[c][0] += mu * decomp.Gadget(l)
				} else {
					row.Body[0] += mu * decomp.Gadget(l)
				}
			}
		}
	}

	eng.logger.Debug("generated bootstrapping key",
		zap.Int("n", n),
		zap.Int("k", k),
		zap.Int("N", N),
		zap.Int("baseLog", decomp.BaseLog),
		zap.Int("levels", decomp.LevelCount),
		zap.Duration("took", time.Since(now)))

	return bsk
}

// GenerateKeySwitchKey generates the encryptions under outputKey of the coefficients
// of inputKey multiplied by each gadget factor of decomp.
func (eng *Engine) GenerateKeySwitchKey(inputKey, outputKey *lwe.SecretKey, decomp torus.Decomposition, v torus.Variance) (*lwe.KeySwitchKey, error) {
	if err := engine.CheckDecomposition(decomp); err != nil {
		return nil, fmt.Errorf("cannot GenerateKeySwitchKey: %w", err)
	}
	if err := engine.CheckVariance(v); err != nil {
		return nil, fmt.Errorf("cannot GenerateKeySwitchKey: %w", err)
	}
	return eng.GenerateKeySwitchKeyUnchecked(inputKey, outputKey, decomp, v), nil
}

// GenerateKeySwitchKeyUnchecked is the unchecked version of [Engine.GenerateKeySwitchKey].
func (eng *Engine) GenerateKeySwitchKeyUnchecked(inputKey, outputKey *lwe.SecretKey, decomp torus.Decomposition, v torus.Variance) *lwe.KeySwitchKey {

	now := time.Now()

	ksk := lwe.NewKeySwitchKey(inputKey.Dimension(), outputKey.Dimension(), decomp)

	for i := range ksk.Value {
		si := inputKey.Coefficient(i)
		for l := range ksk.Value[i] {
			eng.encryptLWE(outputKey, torus.Plaintext(si*decomp.Gadget(l+1)), v, &ksk.Value[i][l])
		}
	}

	eng.logger.Debug("generated key-switching key",
		zap.Int("nIn", inputKey.Dimension()),
		zap.Int("nOut", outputKey.Dimension()),
		zap.Int("baseLog", decomp.BaseLog),
		zap.Int("levels", decomp.LevelCount),
		zap.Duration("took", time.Since(now)))

	return ksk
}
