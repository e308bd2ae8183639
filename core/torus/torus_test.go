package torus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestTorus(t *testing.T) {

	t.Run("FromFloat/ToFloat", func(t *testing.T) {
		require.Equal(t, Torus(1<<29), FromFloat(0.125))
		require.Equal(t, Torus(7<<29), FromFloat(-0.125))
		require.Equal(t, Torus(0), FromFloat(1))
		require.InDelta(t, 0.125, ToFloat(1<<29), 1e-12)
		require.InDelta(t, -0.125, ToFloat(7<<29), 1e-12)
	})

	t.Run("Signed", func(t *testing.T) {
		require.Equal(t, int64(-1), Signed(0xFFFFFFFF))
		require.Equal(t, Torus(0xFFFFFFFF), FromSigned(-1))
		require.Equal(t, int64(1<<30), Signed(FromSigned(1<<30)))
	})

	t.Run("ModSwitch", func(t *testing.T) {
		require.Equal(t, uint64(0), ModSwitch(0, 10))
		require.Equal(t, uint64(512), ModSwitch(1<<31, 10))
		// rounds up to 2^10 which wraps to zero
		require.Equal(t, uint64(0), ModSwitch(0xFFFFFFFF, 10))
		require.Equal(t, uint64(1), ModSwitch(1<<21, 10))
		require.Equal(t, uint64(0), ModSwitch((1<<21)-1, 10))
	})

	t.Run("Distance", func(t *testing.T) {
		require.Equal(t, uint32(2), Distance(1, 0xFFFFFFFF))
		require.Equal(t, uint32(2), Distance(0xFFFFFFFF, 1))
		require.Equal(t, uint32(0), Distance(5, 5))
	})

	t.Run("Encode/Decode", func(t *testing.T) {
		for _, logDelta := range []int{0, 1, 29, 31} {
			p := Encode(3, logDelta)
			require.Equal(t, Cleartext(3)&Cleartext((uint64(1)<<(LogQ-logDelta))-1), Decode(p, logDelta))
		}
		require.Equal(t, Cleartext(1), Decode(Plaintext(1<<29+1<<27), 29))
		require.Equal(t, Cleartext(0), Decode(Plaintext(0xFFFFFFFF), 29))
	})

	t.Run("Variance", func(t *testing.T) {
		v := VarianceFromStdDev(1.0 / 1024)
		require.True(t, v.IsValid())
		require.InDelta(t, 1.0/1024, v.StdDev(), 1e-15)
		require.InDelta(t, float64(1<<22), v.IntegerStdDev(), 1e-6)
		require.False(t, Variance(-1).IsValid())
	})
}

func TestPoly(t *testing.T) {

	N := 16
	r := rand.New(rand.NewSource(0))

	p := NewPoly(N)
	for i := range p {
		p[i] = r.Uint32()
	}

	t.Run("MulByMonomial", func(t *testing.T) {
		out := NewPoly(N)
		for _, k := range []int{0, 1, N - 1, N, N + 3, 2*N - 1, 2 * N, -1, -N - 2} {

			MulByMonomial(p, k, out)

			want := mulByMonomialNaive(p, k)
			require.True(t, want.Equal(out), fmt.Sprintf("k=%d", k))
		}
	})

	t.Run("MulByMonomial/Inverse", func(t *testing.T) {
		tmp := NewPoly(N)
		out := NewPoly(N)
		MulByMonomial(p, 5, tmp)
		MulByMonomial(tmp, -5, out)
		require.True(t, p.Equal(out))
	})

	t.Run("MulByMonomialMinusOne", func(t *testing.T) {
		out := NewPoly(N)
		MulByMonomialMinusOne(p, 0, out)
		for i := range out {
			require.Zero(t, out[i])
		}
	})

	t.Run("Add/Sub/Neg", func(t *testing.T) {
		q := p.CopyNew()
		Add(q, p, q)
		Sub(q, p, q)
		require.True(t, p.Equal(q))
		Neg(q, q)
		Add(q, p, q)
		for i := range q {
			require.Zero(t, q[i])
		}
	})
}

func TestCheckReadSize(t *testing.T) {
	require.NoError(t, CheckReadSize(0))
	require.NoError(t, CheckReadSize(MaxReadSize))
	require.Error(t, CheckReadSize(MaxReadSize+1))
	require.Error(t, CheckReadSize(-1))
}

func TestDecomposition(t *testing.T) {

	r := rand.New(rand.NewSource(1))

	for _, d := range []Decomposition{
		{BaseLog: 2, LevelCount: 5},
		{BaseLog: 8, LevelCount: 2},
		{BaseLog: 4, LevelCount: 8},
		{BaseLog: 1, LevelCount: 1},
		{BaseLog: 16, LevelCount: 2},
	} {
		t.Run(fmt.Sprintf("BaseLog=%d/LevelCount=%d", d.BaseLog, d.LevelCount), func(t *testing.T) {

			require.NoError(t, d.Validate())

			digits := make([]int32, d.LevelCount)
			half := int32(1) << (d.BaseLog - 1)

			for i := 0; i < 1024; i++ {
				x := r.Uint32()

				d.Decompose(x, digits)

				for _, digit := range digits {
					require.GreaterOrEqual(t, digit, -half)
					require.LessOrEqual(t, digit, half)
				}

				require.Equal(t, d.ClosestRepresentable(x), d.Recompose(digits))
			}
		})
	}

	t.Run("Gadget", func(t *testing.T) {
		d := Decomposition{BaseLog: 8, LevelCount: 2}
		require.Equal(t, Torus(1<<24), d.Gadget(1))
		require.Equal(t, Torus(1<<16), d.Gadget(2))
	})

	t.Run("DecomposePoly", func(t *testing.T) {
		d := Decomposition{BaseLog: 8, LevelCount: 2}
		p := Poly{0, 1 << 24, 0xFF000000, 1 << 31}
		out := [][]int32{make([]int32, 4), make([]int32, 4)}
		d.DecomposePoly(p, out)
		for j := range p {
			require.Equal(t, d.ClosestRepresentable(p[j]), d.Recompose([]int32{out[0][j], out[1][j]}))
		}
		require.Equal(t, int32(1), out[0][1])
		require.Equal(t, int32(-1), out[0][2])
	})

	t.Run("Validate", func(t *testing.T) {
		require.Error(t, Decomposition{BaseLog: 0, LevelCount: 1}.Validate())
		require.Error(t, Decomposition{BaseLog: 1, LevelCount: 0}.Validate())
		require.Error(t, Decomposition{BaseLog: 11, LevelCount: 3}.Validate())
	})
}

func mulByMonomialNaive(p Poly, k int) (out Poly) {
	N := len(p)
	out = NewPoly(N)
	k = ((k % (2 * N)) + 2*N) % (2 * N)
	for i := range p {
		j := i + k
		c := p[i]
		for j >= N {
			j -= N
			c = -c
		}
		out[j] = c
	}
	return
}
