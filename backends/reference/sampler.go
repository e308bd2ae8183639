package reference

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/rand"

	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// gaussianKeyStdDev is the standard deviation of the coefficients of
// [lwe.Gaussian] secret keys.
const gaussianKeyStdDev = 3.2

// prngSource is a [rand.Source] reading its entropy from a PRNG
// by blocks of 1024 bytes.
type prngSource struct {
	prng io.Reader
	buf  [1024]byte
	ptr  int
}

func newPRNGSource(prng io.Reader) *prngSource {
	s := &prngSource{prng: prng}
	s.ptr = len(s.buf)
	return s
}

// Uint64 implements [rand.Source].
func (s *prngSource) Uint64() uint64 {
	if s.ptr == len(s.buf) {
		// Sanity check, this error should not happen: the PRNG is an infinite stream
		if _, err := s.prng.Read(s.buf[:]); err != nil {
			panic(fmt.Errorf("sampling.PRNG.Read: %w", err))
		}
		s.ptr = 0
	}
	x := binary.LittleEndian.Uint64(s.buf[s.ptr:])
	s.ptr += 8
	return x
}

// Seed implements [rand.Source]. It is a no-op: the seed is the one of the underlying PRNG.
func (s *prngSource) Seed(uint64) {}

// sampler draws the masks, the noises and the secret keys.
type sampler struct {
	rng *rand.Rand
}

func newSampler(prng io.Reader) *sampler {
	return &sampler{rng: rand.New(newPRNGSource(prng))}
}

// sampleUniform fills out with uniform torus elements.
func (s *sampler) sampleUniform(out []torus.Torus) {
	for i := range out {
		out[i] = s.rng.Uint32()
	}
}

// sampleGaussian returns a rounded centered Gaussian sample of variance v.
func (s *sampler) sampleGaussian(v torus.Variance) torus.Torus {
	if v == 0 {
		return 0
	}
	return torus.FromSigned(int64(math.Round(s.rng.NormFloat64() * v.IntegerStdDev())))
}

// addGaussian adds to each coefficient of out a rounded centered Gaussian sample of variance v.
func (s *sampler) addGaussian(out []torus.Torus, v torus.Variance) {
	if v == 0 {
		return
	}
	sigma := v.IntegerStdDev()
	for i := range out {
		out[i] += torus.FromSigned(int64(math.Round(s.rng.NormFloat64() * sigma)))
	}
}

// sampleKey fills out with coefficients distributed according to kind.
func (s *sampler) sampleKey(kind lwe.KeyKind, out []torus.Torus) {
	switch kind {
	case lwe.Binary:
		for i := range out {
			out[i] = torus.Torus(s.rng.Uint64n(2))
		}
	case lwe.Ternary:
		for i := range out {
			out[i] = torus.Torus(s.rng.Uint64n(3)) - 1
		}
	case lwe.Gaussian:
		for i := range out {
			out[i] = torus.FromSigned(int64(math.Round(s.rng.NormFloat64() * gaussianKeyStdDev)))
		}
	case lwe.Uniform:
		s.sampleUniform(out)
	default:
		// Sanity check, this error should not happen: kind is validated upstream
		panic(fmt.Errorf("invalid key kind: %s", kind))
	}
}
