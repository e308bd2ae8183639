package reference

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// naiveNegacyclic returns the exact integer negacyclic product of the centered lifts of a and b.
func naiveNegacyclic(a, b torus.Poly) []*big.Int {
	N := len(a)
	res := make([]*big.Int, N)
	for i := range res {
		res[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			tmp.Mul(big.NewInt(torus.Signed(a[i])), big.NewInt(torus.Signed(b[j])))
			if i+j < N {
				res[i+j].Add(res[i+j], tmp)
			} else {
				res[i+j-N].Sub(res[i+j-N], tmp)
			}
		}
	}
	return res
}

// modTorus returns x mod 2^32.
func modTorus(x *big.Int) torus.Torus {
	r := new(big.Int).Mod(x, new(big.Int).Lsh(big.NewInt(1), torus.LogQ))
	return torus.Torus(r.Uint64())
}

// rescaleTorus returns floor((x + 2^(s-1)) / 2^s) mod 2^32.
func rescaleTorus(x *big.Int, s int) torus.Torus {
	if s == 0 {
		return modTorus(x)
	}
	r := new(big.Int).Add(x, new(big.Int).Lsh(big.NewInt(1), uint(s-1)))
	r.Rsh(r, uint(s))
	return modTorus(r)
}

func randomPoly(rng *rand.Rand, N int) torus.Poly {
	p := torus.NewPoly(N)
	for i := range p {
		p[i] = rng.Uint32()
	}
	return p
}

func TestPolyMultiplier(t *testing.T) {

	rng := rand.New(rand.NewSource(0x5eed))

	for _, N := range []int{16, 64} {

		m, err := newPolyMultiplier(N)
		require.NoError(t, err)

		t.Run(fmt.Sprintf("Moduli/N=%d", N), func(t *testing.T) {
			q := m.moduli()
			require.Len(t, q, 2)
			require.NotEqual(t, q[0], q[1])
			for _, qi := range q {
				require.Equal(t, uint64(1), qi%uint64(2*N))
			}
		})

		t.Run(fmt.Sprintf("MulAccumulate/N=%d", N), func(t *testing.T) {

			a := []torus.Poly{randomPoly(rng, N), randomPoly(rng, N)}
			b := []torus.Poly{randomPoly(rng, N), randomPoly(rng, N)}

			bMont := m.newPolys(2)
			m.prepare(b[0], bMont[0])
			m.prepare(b[1], bMont[1])

			init := randomPoly(rng, N)
			out := init.CopyNew()
			m.mulAccumulate(a, bMont, out)

			p0, p1 := naiveNegacyclic(a[0], b[0]), naiveNegacyclic(a[1], b[1])
			for j := range out {
				require.Equal(t, init[j]+modTorus(p0[j])+modTorus(p1[j]), out[j], "coefficient %d", j)
			}
		})

		t.Run(fmt.Sprintf("Digits/N=%d", N), func(t *testing.T) {

			d := make([]int32, N)
			dp := torus.NewPoly(N)
			for i := range d {
				d[i] = int32(rng.Intn(256)) - 128
				dp[i] = torus.FromSigned(int64(d[i]))
			}
			b := randomPoly(rng, N)

			dNTT, bMont, acc := m.newPoly(), m.newPoly(), m.newPoly()
			m.liftDigits(d, dNTT)
			m.prepare(b, bMont)
			m.mul(dNTT, bMont, acc)

			out := torus.NewPoly(N)
			m.reconstructThenAdd(acc, make([]uint64, N), out)

			want := naiveNegacyclic(dp, b)
			for j := range out {
				require.Equal(t, modTorus(want[j]), out[j], "coefficient %d", j)
			}
		})

		for _, logScale := range []int{0, 1, 17, 32} {

			t.Run(fmt.Sprintf("Rescale/N=%d/logScale=%d", N, logScale), func(t *testing.T) {

				a, b := randomPoly(rng, N), randomPoly(rng, N)

				aNTT, bMont, acc := m.newPoly(), m.newPoly(), m.newPoly()
				m.liftTorus(a, aNTT)
				m.prepare(b, bMont)
				m.mul(aNTT, bMont, acc)

				out := torus.NewPoly(N)
				m.reconstructThenRescale(acc, make([]uint64, N), logScale, out)

				want := naiveNegacyclic(a, b)
				for j := range out {
					require.Equal(t, rescaleTorus(want[j], logScale), out[j], "coefficient %d", j)
				}
			})
		}
	}
}
