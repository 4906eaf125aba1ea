package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/seqmine/sequence"
)

// Items returns random Items-mode sequences.
func Items(opts ...Option) ([]sequence.Sequence[int], error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Items: %w", ErrNeedRandSource)
	}

	db := make([]sequence.Sequence[int], cfg.sequences)
	for i := range db {
		s := sequence.Empty[int](sequence.Items)
		for n := between(cfg.rng, cfg.minLength, cfg.maxLength); n > 0; n-- {
			s.Push(cfg.rng.Intn(cfg.symbols))
		}
		db[i] = s
	}

	return db, nil
}

// Itemsets returns random Itemsets-mode sequences.
func Itemsets(opts ...Option) ([]sequence.Sequence[int], error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("Itemsets: %w", ErrNeedRandSource)
	}
	if cfg.maxSetSize > cfg.symbols {
		return nil, fmt.Errorf("Itemsets: set size %d exceeds %d symbols: %w",
			cfg.maxSetSize, cfg.symbols, ErrBadSize)
	}

	db := make([]sequence.Sequence[int], cfg.sequences)
	for i := range db {
		s := sequence.Empty[int](sequence.Itemsets)
		for n := between(cfg.rng, cfg.minLength, cfg.maxLength); n > 0; n-- {
			k := between(cfg.rng, cfg.minSetSize, cfg.maxSetSize)
			s.PushSet(sequence.NewItemset(cfg.rng.Perm(cfg.symbols)[:k]...))
		}
		db[i] = s
	}

	return db, nil
}

// between draws uniformly from [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
