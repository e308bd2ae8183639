package boolean

import (
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

// Encode returns the encoding of b with the log-scale s:
// true is mapped to 2^(32-s) and false to (2^s - 1) * 2^(32-s), that is -2^(32-s).
func Encode(b bool, logScale int) torus.Plaintext {
	if b {
		return torus.Encode(1, logScaleDelta(logScale))
	}
	return torus.Encode(torus.Cleartext(uint64(1)<<logScale)-1, logScaleDelta(logScale))
}

// Decode returns true if the phase pt lies in [0, 1/2) of the torus, that
// is in the half of the circle closer to the encoding of true than to the
// encoding of false, for any log-scale.
func Decode(pt torus.Plaintext) bool {
	return pt < 1<<(torus.LogQ-1)
}

// logScaleDelta returns the log of the scaling factor 2^(32-s).
func logScaleDelta(logScale int) int {
	return torus.LogQ - logScale
}
