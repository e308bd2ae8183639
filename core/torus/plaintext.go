package torus

// Cleartext is a raw, unscaled integer message.
type Cleartext uint32

// Plaintext is a message already encoded into the torus, i.e.
// placed in the high-order bits of the modulus.
type Plaintext Torus

// PlaintextVector is an ordered list of plaintexts, for example
// the N slots of a GLWE plaintext polynomial.
type PlaintextVector []Plaintext

// NewPlaintextVector allocates a new [PlaintextVector] of the given size.
func NewPlaintextVector(size int) PlaintextVector {
	return make(PlaintextVector, size)
}

// Count returns the number of plaintexts in the vector.
func (p PlaintextVector) Count() int {
	return len(p)
}

// CopyNew returns a deep copy of the vector.
func (p PlaintextVector) CopyNew() PlaintextVector {
	return append(PlaintextVector(nil), p...)
}

// Encode places the cleartext c in the high-order bits of the torus
// with a scaling factor of 2^logDelta.
func Encode(c Cleartext, logDelta int) Plaintext {
	return Plaintext(Torus(c) << logDelta)
}

// Decode rounds p to the closest multiple of 2^logDelta and
// returns the corresponding cleartext modulo 2^(32-logDelta).
func Decode(p Plaintext, logDelta int) Cleartext {
	if logDelta == 0 {
		return Cleartext(p)
	}
	return Cleartext((uint64(p) + (1 << (logDelta - 1))) >> logDelta & ((1 << (LogQ - logDelta)) - 1))
}
