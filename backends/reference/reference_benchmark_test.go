package reference

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

func BenchmarkEngine(b *testing.B) {

	eng := newTestEngine(b)

	n, k, N := 586, 2, 512
	pbs := torus.Decomposition{BaseLog: 8, LevelCount: 2}
	ks := torus.Decomposition{BaseLog: 2, LevelCount: 5}

	lweKey := eng.GenerateLWESecretKeyUnchecked(lwe.Binary, n)
	glweKey := eng.GenerateGLWESecretKeyUnchecked(lwe.Binary, k, N)

	bsk, err := eng.GenerateBootstrapKey(lweKey, glweKey, pbs, torus.VarianceFromStdDev(2.989040792967434e-8))
	require.NoError(b, err)

	ksk, err := eng.GenerateKeySwitchKey(glweKey.LWEKey(), lweKey, ks, torus.VarianceFromStdDev(8.976167396834998e-5))
	require.NoError(b, err)

	prepared, err := eng.ConvertBootstrapKey(bsk)
	require.NoError(b, err)

	lut := newTestLUT(k, N)

	ct := eng.EncryptLWECiphertextUnchecked(lweKey, torus.Encode(1, 3), torus.VarianceFromStdDev(8.976167396834998e-5))

	b.Run(testString("TensorProduct", lwe.Binary, k, N), func(b *testing.B) {
		ct0 := eng.ZeroEncryptGLWECiphertextUnchecked(glweKey, 0)
		ct1 := eng.ZeroEncryptGLWECiphertextUnchecked(glweKey, 0)
		for i := 0; i < b.N; i++ {
			eng.TensorProductGLWECiphertextUnchecked(ct0, ct1, 20)
		}
	})

	b.Run(testString("ConvertBootstrapKey", lwe.Binary, k, N), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			eng.ConvertBootstrapKeyUnchecked(bsk)
		}
	})

	b.Run(testString("Bootstrap", lwe.Binary, k, N), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			eng.BootstrapLWECiphertextUnchecked(prepared, lut, ct)
		}
	})

	extracted := eng.BootstrapLWECiphertextUnchecked(prepared, lut, ct)

	b.Run(testString("KeySwitch", lwe.Binary, k, N), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			eng.KeySwitchLWECiphertextUnchecked(ksk, extracted)
		}
	})
}
