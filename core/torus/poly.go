package torus

// Poly is a polynomial of T[X]/(X^N+1) stored by its N coefficients,
// from the constant term to the term of degree N-1.
type Poly []Torus

// NewPoly allocates a new zero [Poly] of degree N.
func NewPoly(N int) Poly {
	return make(Poly, N)
}

// N returns the number of coefficients of the polynomial.
func (p Poly) N() int {
	return len(p)
}

// CopyNew returns a deep copy of the polynomial.
func (p Poly) CopyNew() Poly {
	return append(Poly(nil), p...)
}

// Zero sets all coefficients to zero.
func (p Poly) Zero() {
	for i := range p {
		p[i] = 0
	}
}

// Equal returns true if p and other have the same coefficients.
func (p Poly) Equal(other Poly) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Add evaluates p3 = p1 + p2.
func Add(p1, p2, p3 Poly) {
	for i := range p3 {
		p3[i] = p1[i] + p2[i]
	}
}

// Sub evaluates p3 = p1 - p2.
func Sub(p1, p2, p3 Poly) {
	for i := range p3 {
		p3[i] = p1[i] - p2[i]
	}
}

// Neg evaluates p2 = -p1.
func Neg(p1, p2 Poly) {
	for i := range p2 {
		p2[i] = -p1[i]
	}
}

// MulScalarThenAdd evaluates p2 = p2 + c * p1.
func MulScalarThenAdd(p1 Poly, c Torus, p2 Poly) {
	for i := range p2 {
		p2[i] += c * p1[i]
	}
}

// MulByMonomial evaluates p2 = p1 * X^k mod X^N+1 for any k.
// p1 and p2 must not alias.
func MulByMonomial(p1 Poly, k int, p2 Poly) {

	N := len(p1)
	twoN := N << 1

	k %= twoN
	if k < 0 {
		k += twoN
	}

	if k < N {
		for i := 0; i < N-k; i++ {
			p2[i+k] = p1[i]
		}
		for i := N - k; i < N; i++ {
			p2[i+k-N] = -p1[i]
		}
	} else {
		k -= N
		for i := 0; i < N-k; i++ {
			p2[i+k] = -p1[i]
		}
		for i := N - k; i < N; i++ {
			p2[i+k-N] = p1[i]
		}
	}
}

// MulByMonomialMinusOne evaluates p2 = p1 * (X^k - 1) mod X^N+1.
// p1 and p2 must not alias.
func MulByMonomialMinusOne(p1 Poly, k int, p2 Poly) {
	MulByMonomial(p1, k, p2)
	Sub(p2, p1, p2)
}
