// Package generator produces random sequence databases with a uniform
// symbol distribution, for benchmarks, property tests and the
// "seqmine generate" command.
//
// What:
//
//   - Items:    sequences of single integer symbols.
//   - Itemsets: sequences of itemsets of distinct integer symbols.
//
// Symbols are drawn from [0, symbols). Sequence lengths are drawn uniformly
// from [minLength, maxLength] and itemset sizes from [minSetSize, maxSetSize].
//
// Determinism:
//
// Nothing is random unless asked for: both constructors return
// ErrNeedRandSource unless WithSeed or WithRand is supplied. A fixed seed
// yields the same database on every run.
//
// Defaults:
//
//	sequences  = 100
//	length     = [10, 20]
//	symbols    = 10
//	set size   = [3, 7]
//
// Errors:
//
//   - ErrNeedRandSource  no RNG configured.
//   - ErrBadSize         set size exceeds the symbol count (Itemsets only).
//
// Option constructors panic on negative or inverted ranges.
package generator
