package boolean

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v6/utils/buffer"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
	"github.com/tuneinsight/lattigo-boolean/core/torus"
)

const (
	// MinLogScale is the smallest supported log-scale: the gates place
	// the phases of their linear combinations on multiples of 1/8.
	MinLogScale = 3

	// DefaultLogScale is the log-scale substituted when the field is left unset,
	// placing true and false at 1/8 and 7/8 of the torus.
	DefaultLogScale = 3
)

// ParametersLiteral is a literal representation of the parameters of the boolean scheme.
// It has public fields and is used to express unchecked user-defined parameters literally
// into Go programs. The [NewParametersFromLiteral] function is used to generate the actual
// checked parameters from the literal representation.
//
// LogScale is optional and defaults to [DefaultLogScale].
type ParametersLiteral struct {
	// LWEDimension is the dimension n of the flat key under which gates are evaluated.
	LWEDimension int
	// GLWEDimension is the number k of polynomials of the ring key.
	GLWEDimension int
	// PolynomialSize is the degree N of the ring key.
	PolynomialSize int
	// LWEVariance is the noise variance of the fresh encryptions and of the key-switching key.
	LWEVariance torus.Variance
	// GLWEVariance is the noise variance of the bootstrapping key.
	GLWEVariance torus.Variance
	PBSBaseLog   int
	PBSLevel     int
	KSBaseLog    int
	KSLevel      int
	LogScale     int `json:",omitempty"`
}

// Parameters is a set of parameters of the boolean scheme. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified parameters.
type Parameters struct {
	n, k, N      int
	lweVariance  torus.Variance
	glweVariance torus.Variance
	pbsDecomp    torus.Decomposition
	ksDecomp     torus.Decomposition
	logScale     int
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a [ParametersLiteral]
// specification. It returns the empty parameters Parameters{} and a non-nil error if the
// specified parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if err = engine.CheckLWEDimensionValue(pl.LWEDimension); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if err = engine.CheckGLWEParameters(pl.GLWEDimension, pl.PolynomialSize); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	for _, v := range []torus.Variance{pl.LWEVariance, pl.GLWEVariance} {
		if err = engine.CheckVariance(v); err != nil {
			return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
		}
	}

	pbs := torus.Decomposition{BaseLog: pl.PBSBaseLog, LevelCount: pl.PBSLevel}
	if err = engine.CheckDecomposition(pbs); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: PBS: %w", err)
	}

	ks := torus.Decomposition{BaseLog: pl.KSBaseLog, LevelCount: pl.KSLevel}
	if err = engine.CheckDecomposition(ks); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: KS: %w", err)
	}

	logScale := pl.LogScale
	if logScale == 0 {
		logScale = DefaultLogScale
	}

	if logScale < MinLogScale || logScale >= torus.LogQ {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: LogScale=%d must be in [%d, %d]", engine.ErrInvalidParameter, logScale, MinLogScale, torus.LogQ-1)
	}

	return Parameters{
		n:            pl.LWEDimension,
		k:            pl.GLWEDimension,
		N:            pl.PolynomialSize,
		lweVariance:  pl.LWEVariance,
		glweVariance: pl.GLWEVariance,
		pbsDecomp:    pbs,
		ksDecomp:     ks,
		logScale:     logScale,
	}, nil
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		LWEDimension:   p.n,
		GLWEDimension:  p.k,
		PolynomialSize: p.N,
		LWEVariance:    p.lweVariance,
		GLWEVariance:   p.glweVariance,
		PBSBaseLog:     p.pbsDecomp.BaseLog,
		PBSLevel:       p.pbsDecomp.LevelCount,
		KSBaseLog:      p.ksDecomp.BaseLog,
		KSLevel:        p.ksDecomp.LevelCount,
		LogScale:       p.logScale,
	}
}

// LWEDimension returns the dimension n of the flat key.
func (p Parameters) LWEDimension() int {
	return p.n
}

// GLWEDimension returns the number k of polynomials of the ring key.
func (p Parameters) GLWEDimension() int {
	return p.k
}

// PolynomialSize returns the degree N of the ring key.
func (p Parameters) PolynomialSize() int {
	return p.N
}

// ExtractedLWEDimension returns k*N, the dimension of the bootstrapped ciphertexts
// before key-switching.
func (p Parameters) ExtractedLWEDimension() int {
	return p.k * p.N
}

// LWEVariance returns the noise variance of the fresh encryptions and of the key-switching key.
func (p Parameters) LWEVariance() torus.Variance {
	return p.lweVariance
}

// GLWEVariance returns the noise variance of the bootstrapping key.
func (p Parameters) GLWEVariance() torus.Variance {
	return p.glweVariance
}

// PBSDecomposition returns the gadget decomposition of the bootstrapping key.
func (p Parameters) PBSDecomposition() torus.Decomposition {
	return p.pbsDecomp
}

// KSDecomposition returns the gadget decomposition of the key-switching key.
func (p Parameters) KSDecomposition() torus.Decomposition {
	return p.ksDecomp
}

// LogScale returns the log-scale s: true is encoded as 2^(32-s).
func (p Parameters) LogScale() int {
	return p.logScale
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other *Parameters) bool {
	return p == *other
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var pl ParametersLiteral
	if err = json.Unmarshal(data, &pl); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(pl)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (p Parameters) BinarySize() int {
	b, _ := p.MarshalJSON()
	return 4 + len(b)
}

// WriteTo writes the object on an [io.Writer]. It implements the [io.WriterTo]
// interface, and will write exactly object.BinarySize() bytes on w.
func (p Parameters) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		bytes, err := p.MarshalJSON()
		if err != nil {
			return 0, err
		}

		if n, err = buffer.WriteAsUint32(w, len(bytes)); err != nil {
			return n, fmt.Errorf("buffer.WriteAsUint32[int]: %w", err)
		}

		var inc int
		if inc, err = w.Write(bytes); err != nil {
			return n + int64(inc), fmt.Errorf("io.Writer.Write: %w", err)
		}

		n += int64(inc)

		return n, w.Flush()
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an [io.Writer]. It implements the
// [io.ReaderFrom] interface.
func (p *Parameters) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var size int
		if n, err = buffer.ReadAsUint32(r, &size); err != nil {
			return n, fmt.Errorf("buffer.ReadAsUint32[int]: %w", err)
		}

		bytes := make([]byte, size)

		var inc int
		if inc, err = io.ReadFull(r, bytes); err != nil {
			return n + int64(inc), fmt.Errorf("io.ReadFull: %w", err)
		}

		return n + int64(inc), p.UnmarshalJSON(bytes)

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a slice of bytes generated by [Parameters.MarshalBinary] on the object.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}
