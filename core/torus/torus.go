// Package torus implements the discretized real torus T = Z/2^32Z, which is both the
// plaintext space and the ciphertext coefficient space of the LWE and GLWE schemes,
// together with the polynomials over T[X]/(X^N+1), the gadget decomposition and the
// plaintext, cleartext and noise types shared by all the other packages.
//
// A value t of the torus represents the real number t/2^32 mod 1. All arithmetic on
// torus elements wraps modulo 2^32, which is exactly the native uint32 arithmetic.
package torus

import (
	"math"
)

// Torus is an element of the discretized torus Z/2^32Z.
type Torus = uint32

// LogQ is the bit-width W of the torus modulus.
const LogQ = 32

// Q is the torus modulus as a float, used for conversions.
const Q = float64(1 << LogQ)

// FromFloat maps the real number x mod 1 to the nearest torus element.
func FromFloat(x float64) Torus {
	x -= math.Floor(x)
	return Torus(uint64(math.Round(x*Q)) & 0xFFFFFFFF)
}

// ToFloat maps t to its real representative in [-0.5, 0.5).
func ToFloat(t Torus) float64 {
	return float64(int32(t)) / Q
}

// Signed returns the centered representative of t in [-2^31, 2^31).
func Signed(t Torus) int64 {
	return int64(int32(t))
}

// FromSigned maps the integer v to v mod 2^32.
func FromSigned(v int64) Torus {
	return Torus(uint64(v))
}

// ModSwitch rounds t from the modulus 2^32 to the modulus 2^logModulus
// and returns round(t * 2^logModulus / 2^32) mod 2^logModulus.
func ModSwitch(t Torus, logModulus int) uint64 {
	shift := LogQ - logModulus
	if shift <= 0 {
		return uint64(t) << (-shift)
	}
	return ((uint64(t) + (1 << (shift - 1))) >> shift) & ((1 << logModulus) - 1)
}

// Distance returns the distance on the circle between a and b, in torus units.
func Distance(a, b Torus) uint32 {
	d := a - b
	if int32(d) < 0 {
		return -d
	}
	return d
}
