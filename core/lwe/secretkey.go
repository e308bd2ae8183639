package lwe

import (
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// SecretKey is an immutable LWE secret key of dimension n.
// Its coefficients and its [KeyKind] can only be set at creation.
type SecretKey struct {
	kind  KeyKind
	value []torus.Torus
}

// NewSecretKey creates a new [SecretKey] of the given kind from a copy of coeffs.
// Coefficients of signed kinds are given by their representative modulo 2^32.
func NewSecretKey(kind KeyKind, coeffs []torus.Torus) *SecretKey {
	return &SecretKey{kind: kind, value: append([]torus.Torus(nil), coeffs...)}
}

// Kind returns the sampling distribution of the key.
func (sk SecretKey) Kind() KeyKind {
	return sk.kind
}

// Dimension returns the LWE dimension n of the key.
func (sk SecretKey) Dimension() int {
	return len(sk.value)
}

// Coefficient returns the i-th coefficient of the key.
func (sk SecretKey) Coefficient(i int) torus.Torus {
	return sk.value[i]
}

// Coefficients returns a copy of the coefficients of the key.
func (sk SecretKey) Coefficients() []torus.Torus {
	return append([]torus.Torus(nil), sk.value...)
}

// Dot returns <mask, sk> mod 2^32.
// The caller must ensure that len(mask) equals the dimension of the key.
func (sk SecretKey) Dot(mask []torus.Torus) (res torus.Torus) {
	for i, s := range sk.value {
		res += mask[i] * s
	}
	return
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	if other == nil || sk.kind != other.kind || len(sk.value) != len(other.value) {
		return false
	}
	for i := range sk.value {
		if sk.value[i] != other.value[i] {
			return false
		}
	}
	return true
}
