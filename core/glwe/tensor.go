package glwe

import (
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// TensorCiphertext is a degree-two GLWE ciphertext, the result of the tensor
// product of two GLWE ciphertexts. Its phase under a key S is
//
//	Body - sum_i Linear[i] * S[i] + sum_{i<=j} Quadratic[QuadraticIndex(i, j)] * S[i] * S[j].
//
// It cannot be decrypted under S alone and must be relinearized before any
// further linear use.
type TensorCiphertext struct {
	Quadratic []torus.Poly
	Linear    []torus.Poly
	Body      torus.Poly
}

// NewTensorCiphertext allocates a new zero [TensorCiphertext] of GLWE dimension k
// and polynomial size N.
func NewTensorCiphertext(k, N int) *TensorCiphertext {
	return &TensorCiphertext{
		Quadratic: newPolys(k*(k+1)/2, N),
		Linear:    newPolys(k, N),
		Body:      torus.NewPoly(N),
	}
}

// QuadraticIndex returns the index of the term S[i]*S[j], i <= j, in the
// Quadratic polynomials of a tensor ciphertext of GLWE dimension k.
// The terms are ordered (0,0), (0,1), ..., (0,k-1), (1,1), ..., (k-1,k-1).
func QuadraticIndex(i, j, k int) int {
	if i > j {
		i, j = j, i
	}
	return i*k - i*(i-1)/2 + (j - i)
}

// GLWEDimension returns the GLWE dimension k of the ciphertexts the tensor was computed from.
func (ct TensorCiphertext) GLWEDimension() int {
	return len(ct.Linear)
}

// PolynomialSize returns the degree N of the polynomials.
func (ct TensorCiphertext) PolynomialSize() int {
	return ct.Body.N()
}

// CopyNew returns a deep copy of the ciphertext.
func (ct TensorCiphertext) CopyNew() *TensorCiphertext {
	return &TensorCiphertext{
		Quadratic: copyPolys(ct.Quadratic),
		Linear:    copyPolys(ct.Linear),
		Body:      ct.Body.CopyNew(),
	}
}

// Equal performs a deep equal.
func (ct TensorCiphertext) Equal(other *TensorCiphertext) bool {
	return other != nil &&
		equalPolys(ct.Quadratic, other.Quadratic) &&
		equalPolys(ct.Linear, other.Linear) &&
		ct.Body.Equal(other.Body)
}
