// Package lwe implements the flat-domain (LWE) objects over the discretized torus:
// secret keys tagged with their sampling distribution, ciphertexts, ciphertext vectors
// and key-switching keys, together with their binary serialization.
package lwe

import (
	"fmt"
)

// KeyKind is the distribution the coefficients of a secret key are sampled from.
// The kind of a key is fixed at creation and cannot be changed afterwards.
type KeyKind uint8

const (
	// Binary coefficients are uniform in {0, 1}.
	Binary = KeyKind(iota)
	// Ternary coefficients are uniform in {-1, 0, 1}.
	Ternary
	// Gaussian coefficients follow a rounded centered Gaussian.
	Gaussian
	// Uniform coefficients are uniform over the torus.
	Uniform
)

// String implements [fmt.Stringer].
func (k KeyKind) String() string {
	switch k {
	case Binary:
		return "Binary"
	case Ternary:
		return "Ternary"
	case Gaussian:
		return "Gaussian"
	case Uniform:
		return "Uniform"
	default:
		return fmt.Sprintf("KeyKind(%d)", uint8(k))
	}
}

// IsValid returns true if k is one of the defined kinds.
func (k KeyKind) IsValid() bool {
	return k <= Uniform
}
