package engine

import (
	"errors"
)

// Errors reported by the validated entry points of an [Engine]. They are always
// returned wrapped, and must be tested with [errors.Is].
var (
	// ErrLWEDimensionMismatch reports flat-domain operands of different dimensions.
	ErrLWEDimensionMismatch = errors.New("LWE dimension mismatch")
	// ErrGLWEDimensionMismatch reports ring-domain operands with a different number of mask polynomials.
	ErrGLWEDimensionMismatch = errors.New("GLWE dimension mismatch")
	// ErrPolynomialSizeMismatch reports ring-domain operands of different polynomial degrees.
	ErrPolynomialSizeMismatch = errors.New("polynomial size mismatch")
	// ErrNullCount reports a vector operation requested with zero elements.
	ErrNullCount = errors.New("null count")
	// ErrDecompositionMismatch reports key material with an inconsistent gadget decomposition.
	ErrDecompositionMismatch = errors.New("decomposition mismatch")
	// ErrKeyKindMismatch reports a secret key of a kind the operation does not support.
	ErrKeyKindMismatch = errors.New("key kind mismatch")
	// ErrInvalidParameter reports an out-of-range scalar argument.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrIncompatibleBackend reports backend-specific material prepared by another backend.
	ErrIncompatibleBackend = errors.New("incompatible backend")
)
