package lwe

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

func randomCiphertext(r *rand.Rand, n int) *Ciphertext {
	ct := NewCiphertext(n)
	for i := range ct.Mask {
		ct.Mask[i] = r.Uint32()
	}
	ct.Body = r.Uint32()
	return ct
}

func TestKeyKind(t *testing.T) {
	require.Equal(t, "Binary", Binary.String())
	require.Equal(t, "Ternary", Ternary.String())
	require.Equal(t, "Gaussian", Gaussian.String())
	require.Equal(t, "Uniform", Uniform.String())
	require.True(t, Uniform.IsValid())
	require.False(t, KeyKind(4).IsValid())
	require.Equal(t, "KeyKind(4)", KeyKind(4).String())
}

func TestSecretKey(t *testing.T) {

	coeffs := []torus.Torus{1, 0, 1, 1}
	sk := NewSecretKey(Binary, coeffs)

	t.Run("Immutable", func(t *testing.T) {
		coeffs[0] = 0
		require.Equal(t, torus.Torus(1), sk.Coefficient(0))

		c := sk.Coefficients()
		c[1] = 1
		require.Equal(t, torus.Torus(0), sk.Coefficient(1))
		require.Equal(t, Binary, sk.Kind())
		require.Equal(t, 4, sk.Dimension())
	})

	t.Run("Dot", func(t *testing.T) {
		require.Equal(t, torus.Torus(5), sk.Dot([]torus.Torus{2, 100, 4, 0xFFFFFFFF}))
	})

	t.Run("Equal", func(t *testing.T) {
		require.True(t, sk.Equal(NewSecretKey(Binary, []torus.Torus{1, 0, 1, 1})))
		require.False(t, sk.Equal(NewSecretKey(Ternary, []torus.Torus{1, 0, 1, 1})))
		require.False(t, sk.Equal(nil))
	})
}

func TestCiphertext(t *testing.T) {

	r := rand.New(rand.NewSource(0))
	n := 32

	ct0 := randomCiphertext(r, n)
	ct1 := randomCiphertext(r, n)

	t.Run("Trivial", func(t *testing.T) {
		ct := NewTrivialCiphertext(n, 1<<29)
		require.Equal(t, n, ct.Dimension())
		require.Equal(t, torus.Torus(1<<29), ct.Body-NewSecretKey(Uniform, ct0.Mask).Dot(ct.Mask))
	})

	t.Run("Arithmetic", func(t *testing.T) {
		out := NewCiphertext(n)
		Add(ct0, ct1, out)
		Sub(out, ct1, out)
		require.True(t, out.Equal(ct0))

		Neg(ct0, out)
		Add(out, ct0, out)
		require.True(t, out.Equal(NewCiphertext(n)))

		out = ct0.CopyNew()
		MulScalarThenAdd(ct1, -2, out)
		MulScalarThenAdd(ct1, 2, out)
		require.True(t, out.Equal(ct0))
	})

	t.Run("Phase/Linearity", func(t *testing.T) {
		sk := NewSecretKey(Uniform, randomCiphertext(r, n).Mask)
		phase := func(ct *Ciphertext) torus.Torus { return ct.Body - sk.Dot(ct.Mask) }

		out := NewCiphertext(n)
		MulScalarThenAdd(ct0, 3, out)
		MulScalarThenAdd(ct1, -1, out)
		require.Equal(t, 3*phase(ct0)-phase(ct1), phase(out))
	})

	t.Run("Serialization", func(t *testing.T) {
		data, err := ct0.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, ct0.BinarySize(), len(data))

		ct := new(Ciphertext)
		require.NoError(t, ct.UnmarshalBinary(data))
		require.True(t, cmp.Equal(ct0, ct))
	})

	t.Run("Serialization/Vector", func(t *testing.T) {
		v := CiphertextVector{*ct0, *ct1}
		require.Equal(t, n, v.Dimension())

		data, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, v.BinarySize(), len(data))

		var w CiphertextVector
		require.NoError(t, w.UnmarshalBinary(data))
		require.True(t, v.Equal(w))
		require.True(t, cmp.Equal(v, w))
	})

	t.Run("Serialization/InvalidLength", func(t *testing.T) {
		for _, size := range []uint64{torus.MaxReadSize + 1, 1 << 40, math.MaxUint64} {
			data := binary.LittleEndian.AppendUint64(nil, size)
			require.Error(t, new(Ciphertext).UnmarshalBinary(data))

			var v CiphertextVector
			require.Error(t, v.UnmarshalBinary(data))

			// BaseLog=4, LevelCount=3
			require.Error(t, new(KeySwitchKey).UnmarshalBinary(append([]byte{4, 3}, data...)))
		}
	})

	t.Run("Vector/Dimension", func(t *testing.T) {
		require.Equal(t, -1, CiphertextVector{}.Dimension())
		require.Equal(t, -1, CiphertextVector{*NewCiphertext(2), *NewCiphertext(3)}.Dimension())
		require.Equal(t, 3, NewCiphertextVector(7, 3).Count())
	})
}

func TestKeySwitchKey(t *testing.T) {

	r := rand.New(rand.NewSource(1))

	decomp := torus.Decomposition{BaseLog: 2, LevelCount: 5}
	ksk := NewKeySwitchKey(6, 4, decomp)

	for i := range ksk.Value {
		for l := range ksk.Value[i] {
			ksk.Value[i][l] = *randomCiphertext(r, 4)
		}
	}

	require.Equal(t, 6, ksk.InputLWEDimension())
	require.Equal(t, 4, ksk.OutputLWEDimension())

	data, err := ksk.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, ksk.BinarySize(), len(data))

	other := new(KeySwitchKey)
	require.NoError(t, other.UnmarshalBinary(data))
	require.True(t, ksk.Equal(other))
	require.True(t, cmp.Equal(ksk, other))
}
