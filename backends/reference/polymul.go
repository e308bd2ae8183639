package reference

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/ring"

	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// logPrime is the bit-size of the two NTT-friendly primes of a [polyMultiplier].
// Their product Q ~ 2^118 bounds the exact integer results of the products of
// centered torus polynomials, whose coefficients are at most 2N * 2^62.
const logPrime = 59

// polyMultiplier computes exact negacyclic products over Z[X]/(X^N+1) of polynomials
// lifted from the torus, in the RNS basis of two primes. Products are accumulated in the
// NTT domain, one operand being in Montgomery form, and the exact integer results are
// reconstructed modulo 2^64 with Garner's CRT. It is read-only after creation.
type polyMultiplier struct {
	N     int
	ringQ *ring.Ring

	// q0^-1 mod q1
	q0InvModQ1 uint64
	halfQ0     uint64
	halfQ1     uint64
}

func newPolyMultiplier(N int) (m *polyMultiplier, err error) {

	g := ring.NewNTTFriendlyPrimesGenerator(logPrime, uint64(2*N))

	var primes []uint64
	if primes, err = g.NextAlternatingPrimes(2); err != nil {
		return nil, fmt.Errorf("ring.NTTFriendlyPrimesGenerator.NextAlternatingPrimes: %w", err)
	}

	var ringQ *ring.Ring
	if ringQ, err = ring.NewRing(N, primes); err != nil {
		return nil, fmt.Errorf("ring.NewRing: %w", err)
	}

	q0, s1 := ringQ.SubRings[0].Modulus, ringQ.SubRings[1]
	q1 := s1.Modulus

	return &polyMultiplier{
		N:          N,
		ringQ:      ringQ,
		q0InvModQ1: ring.ModExp(ring.BRedAdd(q0, q1, s1.BRedConstant), q1-2, q1),
		halfQ0:     (q0 - 1) >> 1,
		halfQ1:     (q1 - 1) >> 1,
	}, nil
}

func (m *polyMultiplier) moduli() []uint64 {
	return []uint64{m.ringQ.SubRings[0].Modulus, m.ringQ.SubRings[1].Modulus}
}

// newPoly allocates a zero polynomial in the RNS basis.
func (m *polyMultiplier) newPoly() ring.Poly {
	return ring.Poly{Coeffs: [][]uint64{make([]uint64, m.N), make([]uint64, m.N)}}
}

func (m *polyMultiplier) newPolys(count int) (polys []ring.Poly) {
	polys = make([]ring.Poly, count)
	for i := range polys {
		polys[i] = m.newPoly()
	}
	return
}

// liftTorus writes the centered lift of p in the RNS basis and maps it to the NTT domain.
func (m *polyMultiplier) liftTorus(p torus.Poly, out ring.Poly) {
	for i, s := range m.ringQ.SubRings[:2] {
		q, coeffs := s.Modulus, out.Coeffs[i]
		for j, c := range p {
			if c >= 1<<31 {
				coeffs[j] = q - uint64(-c)
			} else {
				coeffs[j] = uint64(c)
			}
		}
		s.NTT(coeffs, coeffs)
	}
}

// liftDigits writes the signed digits d in the RNS basis and maps them to the NTT domain.
func (m *polyMultiplier) liftDigits(d []int32, out ring.Poly) {
	for i, s := range m.ringQ.SubRings[:2] {
		q, coeffs := s.Modulus, out.Coeffs[i]
		for j, c := range d {
			if c < 0 {
				coeffs[j] = q - uint64(-int64(c))
			} else {
				coeffs[j] = uint64(c)
			}
		}
		s.NTT(coeffs, coeffs)
	}
}

// prepare lifts p to the NTT domain in Montgomery form, ready to be used
// as the right operand of [polyMultiplier.mulThenAdd].
func (m *polyMultiplier) prepare(p torus.Poly, out ring.Poly) {
	m.liftTorus(p, out)
	for i, s := range m.ringQ.SubRings[:2] {
		s.MForm(out.Coeffs[i], out.Coeffs[i])
	}
}

// mul evaluates acc = a * bMont.
func (m *polyMultiplier) mul(a, bMont, acc ring.Poly) {
	for i, s := range m.ringQ.SubRings[:2] {
		s.MulCoeffsMontgomery(a.Coeffs[i], bMont.Coeffs[i], acc.Coeffs[i])
	}
}

// mulThenAdd evaluates acc = acc + a * bMont.
func (m *polyMultiplier) mulThenAdd(a, bMont, acc ring.Poly) {
	for i, s := range m.ringQ.SubRings[:2] {
		s.MulCoeffsMontgomeryThenAdd(a.Coeffs[i], bMont.Coeffs[i], acc.Coeffs[i])
	}
}

// reconstruct maps acc back to the coefficient domain (acc is overwritten) and writes
// in out the two's complement representation modulo 2^64 of the exact integer
// coefficients, assumed to lie in (-q0*q1/2, q0*q1/2).
func (m *polyMultiplier) reconstruct(acc ring.Poly, out []uint64) {

	s0, s1 := m.ringQ.SubRings[0], m.ringQ.SubRings[1]

	s0.INTT(acc.Coeffs[0], acc.Coeffs[0])
	s1.INTT(acc.Coeffs[1], acc.Coeffs[1])

	q0, q1 := s0.Modulus, s1.Modulus
	brc := s1.BRedConstant

	a0s, a1s := acc.Coeffs[0], acc.Coeffs[1]

	for j := range out {

		a0, a1 := a0s[j], a1s[j]

		// x = a0 + q0 * t with t = (a1 - a0) * q0^-1 mod q1
		t := a1 + q1 - ring.BRedAdd(a0, q1, brc)
		if t >= q1 {
			t -= q1
		}
		t = ring.BRed(t, m.q0InvModQ1, q1, brc)

		// centers x in (-q0*q1/2, q0*q1/2)
		if t > m.halfQ1 || (t == m.halfQ1 && a0 > m.halfQ0) {
			t -= q1
		}

		out[j] = a0 + q0*t
	}
}

// reconstructThenAdd is the same as [polyMultiplier.reconstruct] but reduces the result modulo 2^32
// and adds it to out.
func (m *polyMultiplier) reconstructThenAdd(acc ring.Poly, buf []uint64, out torus.Poly) {
	m.reconstruct(acc, buf)
	for j := range out {
		out[j] += torus.Torus(buf[j])
	}
}

// reconstructThenRescale is the same as [polyMultiplier.reconstruct] but divides the
// result by 2^logScale with rounding and reduces it modulo 2^32.
func (m *polyMultiplier) reconstructThenRescale(acc ring.Poly, buf []uint64, logScale int, out torus.Poly) {
	m.reconstruct(acc, buf)
	if logScale == 0 {
		for j := range out {
			out[j] = torus.Torus(buf[j])
		}
		return
	}
	half := uint64(1) << (logScale - 1)
	for j := range out {
		out[j] = torus.Torus((buf[j] + half) >> logScale)
	}
}

// mulAccumulate evaluates out = out + sum a[i] * bMont[i] mod 2^32.
func (m *polyMultiplier) mulAccumulate(a []torus.Poly, bMont []ring.Poly, out torus.Poly) {
	tmp, acc := m.newPoly(), m.newPoly()
	for i := range a {
		m.liftTorus(a[i], tmp)
		if i == 0 {
			m.mul(tmp, bMont[i], acc)
		} else {
			m.mulThenAdd(tmp, bMont[i], acc)
		}
	}
	m.reconstructThenAdd(acc, make([]uint64, m.N), out)
}
