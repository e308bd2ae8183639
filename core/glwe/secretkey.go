// Package glwe implements the ring-domain (GLWE) objects over T[X]/(X^N+1): secret keys,
// ciphertexts, degree-two tensor ciphertexts, GGSW ciphertexts and bootstrapping keys,
// together with the sample extraction to the flat domain and their binary serialization.
package glwe

import (
	"github.com/tuneinsight/lattigo-boolean/core/lwe"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// SecretKey is an immutable GLWE secret key made of k polynomials of degree N.
type SecretKey struct {
	kind  lwe.KeyKind
	value []torus.Poly
}

// NewSecretKey creates a new [SecretKey] of the given kind from a deep copy of polys.
// All polys must have the same degree.
func NewSecretKey(kind lwe.KeyKind, polys []torus.Poly) *SecretKey {
	value := make([]torus.Poly, len(polys))
	for i := range polys {
		value[i] = polys[i].CopyNew()
	}
	return &SecretKey{kind: kind, value: value}
}

// Kind returns the sampling distribution of the key.
func (sk SecretKey) Kind() lwe.KeyKind {
	return sk.kind
}

// GLWEDimension returns the number k of polynomials of the key.
func (sk SecretKey) GLWEDimension() int {
	return len(sk.value)
}

// PolynomialSize returns the degree N of the polynomials of the key.
func (sk SecretKey) PolynomialSize() int {
	if len(sk.value) == 0 {
		return 0
	}
	return sk.value[0].N()
}

// Polynomial returns a copy of the i-th polynomial of the key.
func (sk SecretKey) Polynomial(i int) torus.Poly {
	return sk.value[i].CopyNew()
}

// LWEKey returns the flat key of dimension k*N obtained by concatenating
// the coefficients of the polynomials of the key. A GLWE ciphertext and the
// LWE ciphertexts sample-extracted from it decrypt under these two keys.
func (sk SecretKey) LWEKey() *lwe.SecretKey {
	coeffs := make([]torus.Torus, 0, sk.GLWEDimension()*sk.PolynomialSize())
	for i := range sk.value {
		coeffs = append(coeffs, sk.value[i]...)
	}
	return lwe.NewSecretKey(sk.kind, coeffs)
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	if other == nil || sk.kind != other.kind || len(sk.value) != len(other.value) {
		return false
	}
	for i := range sk.value {
		if !sk.value[i].Equal(other.value[i]) {
			return false
		}
	}
	return true
}
