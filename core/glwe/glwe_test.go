package glwe

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

func randomPoly(r *rand.Rand, N int) torus.Poly {
	p := torus.NewPoly(N)
	for i := range p {
		p[i] = r.Uint32()
	}
	return p
}

func randomCiphertext(r *rand.Rand, k, N int) *Ciphertext {
	ct := NewCiphertext(k, N)
	for i := range ct.Mask {
		ct.Mask[i] = randomPoly(r, N)
	}
	ct.Body = randomPoly(r, N)
	return ct
}

func mulNaive(a, b torus.Poly) (c torus.Poly) {
	N := len(a)
	c = torus.NewPoly(N)
	for i := range a {
		for j := range b {
			if i+j < N {
				c[i+j] += a[i] * b[j]
			} else {
				c[i+j-N] -= a[i] * b[j]
			}
		}
	}
	return
}

func phaseNaive(sk *SecretKey, ct *Ciphertext) torus.Poly {
	phase := ct.Body.CopyNew()
	for i := range ct.Mask {
		torus.Sub(phase, mulNaive(ct.Mask[i], sk.Polynomial(i)), phase)
	}
	return phase
}

func TestGLWE(t *testing.T) {

	r := rand.New(rand.NewSource(0))

	for _, kN := range [][2]int{{1, 16}, {2, 32}, {3, 8}} {

		k, N := kN[0], kN[1]

		polys := make([]torus.Poly, k)
		for i := range polys {
			polys[i] = torus.NewPoly(N)
			for j := range polys[i] {
				polys[i][j] = torus.Torus(r.Intn(2))
			}
		}

		sk := NewSecretKey(lwe.Binary, polys)

		t.Run(fmt.Sprintf("k=%d/N=%d/SecretKey", k, N), func(t *testing.T) {
			require.Equal(t, k, sk.GLWEDimension())
			require.Equal(t, N, sk.PolynomialSize())
			require.Equal(t, lwe.Binary, sk.Kind())

			polys[0][0] ^= 1
			require.NotEqual(t, polys[0][0], sk.Polynomial(0)[0])
			polys[0][0] ^= 1

			lweKey := sk.LWEKey()
			require.Equal(t, k*N, lweKey.Dimension())
			require.Equal(t, lwe.Binary, lweKey.Kind())
			require.Equal(t, polys[k-1][N-1], lweKey.Coefficient(k*N-1))
		})

		t.Run(fmt.Sprintf("k=%d/N=%d/SampleExtract", k, N), func(t *testing.T) {

			ct := randomCiphertext(r, k, N)
			phase := phaseNaive(sk, ct)
			lweKey := sk.LWEKey()

			for _, idx := range []int{0, 1, N / 2, N - 1} {
				lweCt := ct.SampleExtract(idx)
				require.Equal(t, k*N, lweCt.Dimension())
				require.Equal(t, phase[idx], lweCt.Body-lweKey.Dot(lweCt.Mask), fmt.Sprintf("idx=%d", idx))
			}
		})

		t.Run(fmt.Sprintf("k=%d/N=%d/Trivial", k, N), func(t *testing.T) {
			pts := torus.PlaintextVector{1 << 29, 7 << 29}
			ct := NewTrivialCiphertext(k, N, pts)
			phase := phaseNaive(sk, ct)
			require.Equal(t, torus.Torus(1<<29), phase[0])
			require.Equal(t, torus.Torus(7<<29), phase[1])
			require.Equal(t, torus.Torus(0), phase[2])
		})

		t.Run(fmt.Sprintf("k=%d/N=%d/Serialization", k, N), func(t *testing.T) {
			ct := randomCiphertext(r, k, N)

			data, err := ct.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, ct.BinarySize(), len(data))

			other := new(Ciphertext)
			require.NoError(t, other.UnmarshalBinary(data))
			require.True(t, ct.Equal(other))
			require.True(t, cmp.Equal(ct, other))
		})

		t.Run(fmt.Sprintf("k=%d/N=%d/Serialization/BootstrapKey", k, N), func(t *testing.T) {

			decomp := torus.Decomposition{BaseLog: 8, LevelCount: 2}
			bsk := NewBootstrapKey(3, k, N, decomp)

			for i := range bsk.Value {
				for j := range bsk.Value[i].Value {
					bsk.Value[i].Value[j] = *randomCiphertext(r, k, N)
				}
			}

			require.Equal(t, 3, bsk.InputLWEDimension())
			require.Equal(t, k, bsk.GLWEDimension())
			require.Equal(t, N, bsk.PolynomialSize())
			require.Equal(t, k*N, bsk.OutputLWEDimension())
			require.Equal(t, decomp, bsk.Decomposition())
			require.True(t, bsk.Value[1].Row(k, 2) == &bsk.Value[1].Value[k*2+1])

			data, err := bsk.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, bsk.BinarySize(), len(data))

			other := new(BootstrapKey)
			require.NoError(t, other.UnmarshalBinary(data))
			require.True(t, bsk.Equal(other))
			require.True(t, cmp.Equal(bsk, other))
		})
	}
}

func TestInvalidLength(t *testing.T) {
	for _, size := range []uint64{torus.MaxReadSize + 1, 1 << 40, math.MaxUint64} {

		data := binary.LittleEndian.AppendUint64(nil, size)

		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {

			// k=1 polynomials of degree size
			require.Error(t, new(Ciphertext).UnmarshalBinary(binary.LittleEndian.AppendUint64(binary.LittleEndian.AppendUint64(nil, 1), size)))

			// size polynomials of degree 16
			require.Error(t, new(Ciphertext).UnmarshalBinary(binary.LittleEndian.AppendUint64(append([]byte(nil), data...), 16)))

			// BaseLog=4, LevelCount=3
			require.Error(t, new(GGSWCiphertext).UnmarshalBinary(append([]byte{4, 3}, data...)))

			require.Error(t, new(BootstrapKey).UnmarshalBinary(data))
		})
	}

	t.Run("Product", func(t *testing.T) {
		// 2^11 polynomials of degree 2^10 exceed the bound even though both lengths are within it
		data := binary.LittleEndian.AppendUint64(binary.LittleEndian.AppendUint64(nil, 1<<11), 1<<10)
		require.Error(t, new(Ciphertext).UnmarshalBinary(data))
	})
}

func TestQuadraticIndex(t *testing.T) {
	for _, k := range []int{1, 2, 3, 5} {
		seen := map[int]bool{}
		for i := 0; i < k; i++ {
			for j := i; j < k; j++ {
				idx := QuadraticIndex(i, j, k)
				require.Equal(t, idx, QuadraticIndex(j, i, k))
				require.False(t, seen[idx])
				require.Less(t, idx, k*(k+1)/2)
				seen[idx] = true
			}
		}
		require.Len(t, seen, k*(k+1)/2)
	}

	ct := NewTensorCiphertext(2, 16)
	require.Len(t, ct.Quadratic, 3)
	require.Equal(t, 2, ct.GLWEDimension())
	require.Equal(t, 16, ct.PolynomialSize())
	require.True(t, ct.Equal(ct.CopyNew()))
}
