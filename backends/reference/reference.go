// Package reference implements the capability interfaces of the engine package on the host.
// Polynomial products are computed exactly over the integers with a two-prime negacyclic NTT
// and a CRT lift, and are reduced modulo 2^32 afterwards.
package reference

import (
	"fmt"
	"sync"

	"github.com/tuneinsight/lattigo/v6/utils/sampling"
	"go.uber.org/zap"

	"github.com/tuneinsight/lattigo-boolean/core/engine"
)

// Engine is the reference implementation of [engine.Engine].
//
// An Engine holds scratch buffers and its own sampler and is not safe for
// concurrent use. Use [Engine.ShallowCopy] to obtain an engine per goroutine.
type Engine struct {
	*engineBase
	*sampler
}

var _ engine.Engine = (*Engine)(nil)

// engineBase is the state shared between shallow copies.
type engineBase struct {
	prng   *lockedPRNG
	logger *zap.Logger

	mu          sync.Mutex
	multipliers map[int]*polyMultiplier
}

// Option configures an [Engine].
type Option func(*engineBase)

// WithLogger sets the logger of the engine. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *engineBase) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// lockedPRNG serializes the reads of the shallow copies of an [Engine]
// on their common PRNG.
type lockedPRNG struct {
	mu   sync.Mutex
	prng sampling.PRNG
}

// Read implements [io.Reader].
func (p *lockedPRNG) Read(b []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.prng.Read(b)
}

// NewEngine creates a new [Engine] drawing all its randomness from prng.
// The caller is responsible for the quality and the seeding of prng. The engine
// and its shallow copies become the only readers of prng: it must not be read
// by anyone else while the engine is in use.
func NewEngine(prng sampling.PRNG, opts ...Option) (*Engine, error) {

	if prng == nil {
		return nil, fmt.Errorf("cannot NewEngine: prng is nil")
	}

	base := &engineBase{
		prng:        &lockedPRNG{prng: prng},
		logger:      zap.NewNop(),
		multipliers: map[int]*polyMultiplier{},
	}

	for _, opt := range opts {
		opt(base)
	}

	return &Engine{engineBase: base, sampler: newSampler(base.prng)}, nil
}

// ShallowCopy creates a shallow copy of this [Engine] in which all the
// read-only data-structures and the PRNG are shared with the receiver and
// the sampler buffers are reallocated. Reads on the shared PRNG are
// serialized, so the receiver and the returned engine can be used concurrently.
func (eng *Engine) ShallowCopy() engine.Engine {
	return &Engine{engineBase: eng.engineBase, sampler: newSampler(eng.prng)}
}

// multiplier returns the polynomial multiplier for degree N, creating and
// caching it on the first call.
func (eng *Engine) multiplier(N int) *polyMultiplier {

	eng.mu.Lock()
	defer eng.mu.Unlock()

	if m, ok := eng.multipliers[N]; ok {
		return m
	}

	m, err := newPolyMultiplier(N)

	// Sanity check, this error should not happen: N is validated upstream
	if err != nil {
		panic(fmt.Errorf("newPolyMultiplier: %w", err))
	}

	eng.logger.Debug("instantiated negacyclic multiplier",
		zap.Int("N", N),
		zap.Uint64s("moduli", m.moduli()))

	eng.multipliers[N] = m

	return m
}
