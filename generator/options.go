// SPDX-License-Identifier: MIT
// Package: seqmine/generator
//
// options.go: functional options and resolved configuration.
//
// Contract:
//   • Options are applied in order; later ones win.
//   • Option constructors panic on negative values or inverted ranges.
//   • Cross-option constraints are checked by the constructors and returned
//     as ErrBadSize.

package generator

import (
	"fmt"
	"math/rand"
)

const (
	defaultSequences  = 100
	defaultMinLength  = 10
	defaultMaxLength  = 20
	defaultSymbols    = 10
	defaultMinSetSize = 3
	defaultMaxSetSize = 7
)

// config aggregates every generator knob.
type config struct {
	rng        *rand.Rand // nil means "no randomness"
	sequences  int
	minLength  int
	maxLength  int
	symbols    int
	minSetSize int
	maxSetSize int
}

// Option customizes a generator call.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		sequences:  defaultSequences,
		minLength:  defaultMinLength,
		maxLength:  defaultMaxLength,
		symbols:    defaultSymbols,
		minSetSize: defaultMinSetSize,
		maxSetSize: defaultMaxSetSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSequences sets the number of generated sequences. Panics on n < 0.
func WithSequences(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("generator: WithSequences(%d)", n))
	}

	return func(c *config) { c.sequences = n }
}

// WithLength sets the inclusive range of sequence lengths.
// Panics unless 0 ≤ lo ≤ hi.
func WithLength(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("generator: WithLength(%d, %d)", lo, hi))
	}

	return func(c *config) { c.minLength, c.maxLength = lo, hi }
}

// WithSymbols sets the alphabet size. Panics on n < 1.
func WithSymbols(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("generator: WithSymbols(%d)", n))
	}

	return func(c *config) { c.symbols = n }
}

// WithSetSize sets the inclusive range of itemset sizes.
// Panics unless 1 ≤ lo ≤ hi.
func WithSetSize(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("generator: WithSetSize(%d, %d)", lo, hi))
	}

	return func(c *config) { c.minSetSize, c.maxSetSize = lo, hi }
}
