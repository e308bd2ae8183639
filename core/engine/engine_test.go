package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/lattigo-boolean/core/glwe"
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

func TestChecks(t *testing.T) {

	require.NoError(t, CheckLWEDimension(4, 4))
	require.ErrorIs(t, CheckLWEDimension(4, 5), ErrLWEDimensionMismatch)

	require.NoError(t, CheckGLWEShape(2, 512, 2, 512))
	require.ErrorIs(t, CheckGLWEShape(2, 512, 1, 512), ErrGLWEDimensionMismatch)
	require.ErrorIs(t, CheckGLWEShape(2, 512, 2, 1024), ErrPolynomialSizeMismatch)

	require.NoError(t, CheckCount(1))
	require.ErrorIs(t, CheckCount(0), ErrNullCount)

	require.NoError(t, CheckVariance(0))
	require.ErrorIs(t, CheckVariance(torus.Variance(math.NaN())), ErrInvalidParameter)
	require.ErrorIs(t, CheckVariance(-1), ErrInvalidParameter)

	require.NoError(t, CheckKeyKind(lwe.Gaussian))
	require.ErrorIs(t, CheckKeyKind(lwe.KeyKind(42)), ErrInvalidParameter)

	require.NoError(t, CheckLWEDimensionValue(1))
	require.ErrorIs(t, CheckLWEDimensionValue(0), ErrInvalidParameter)

	require.NoError(t, CheckGLWEParameters(1, 1024))
	require.ErrorIs(t, CheckGLWEParameters(0, 1024), ErrInvalidParameter)
	require.ErrorIs(t, CheckGLWEParameters(1, 1000), ErrInvalidParameter)
	require.ErrorIs(t, CheckGLWEParameters(1, 2), ErrInvalidParameter)

	require.NoError(t, CheckDecomposition(torus.Decomposition{BaseLog: 8, LevelCount: 2}))
	require.ErrorIs(t, CheckDecomposition(torus.Decomposition{BaseLog: 8, LevelCount: 5}), ErrInvalidParameter)

	require.NoError(t, CheckLogScale(29))
	require.ErrorIs(t, CheckLogScale(33), ErrInvalidParameter)
}

func TestCheckKeys(t *testing.T) {

	decomp := torus.Decomposition{BaseLog: 4, LevelCount: 3}

	t.Run("CheckKeySwitchKey", func(t *testing.T) {

		require.NoError(t, CheckKeySwitchKey(lwe.NewKeySwitchKey(8, 4, decomp)))

		ksk := lwe.NewKeySwitchKey(8, 4, decomp)
		ksk.Value[7][0] = *lwe.NewCiphertext(3)
		require.ErrorIs(t, CheckKeySwitchKey(ksk), ErrLWEDimensionMismatch)

		ksk = lwe.NewKeySwitchKey(8, 4, decomp)
		ksk.Value[2] = ksk.Value[2][:1]
		require.ErrorIs(t, CheckKeySwitchKey(ksk), ErrDecompositionMismatch)

		ksk = lwe.NewKeySwitchKey(8, 4, torus.Decomposition{BaseLog: 8, LevelCount: 5})
		require.ErrorIs(t, CheckKeySwitchKey(ksk), ErrInvalidParameter)
	})

	t.Run("CheckBootstrapKey", func(t *testing.T) {

		require.NoError(t, CheckBootstrapKey(glwe.NewBootstrapKey(4, 1, 16, decomp)))

		require.ErrorIs(t, CheckBootstrapKey(&glwe.BootstrapKey{}), ErrNullCount)

		bsk := glwe.NewBootstrapKey(4, 1, 16, decomp)
		bsk.Value[3].Value[0] = *glwe.NewCiphertext(1, 32)
		require.ErrorIs(t, CheckBootstrapKey(bsk), ErrPolynomialSizeMismatch)

		bsk = glwe.NewBootstrapKey(4, 1, 16, decomp)
		bsk.Value[2].Value = bsk.Value[2].Value[:1]
		require.ErrorIs(t, CheckBootstrapKey(bsk), ErrDecompositionMismatch)
	})
}
