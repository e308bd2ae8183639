package torus

import (
	"math"
)

// Variance is the variance of a noise distribution expressed in
// torus units, i.e. relative to a torus of length one.
type Variance float64

// VarianceFromStdDev returns the [Variance] of a distribution
// of standard deviation stdDev, in torus units.
func VarianceFromStdDev(stdDev float64) Variance {
	return Variance(stdDev * stdDev)
}

// StdDev returns the standard deviation in torus units.
func (v Variance) StdDev() float64 {
	return math.Sqrt(float64(v))
}

// IntegerStdDev returns the standard deviation scaled to the
// integer representation of the torus (i.e. times 2^32).
func (v Variance) IntegerStdDev() float64 {
	return v.StdDev() * Q
}

// IsValid returns true if v is a finite non-negative number.
func (v Variance) IsValid() bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
