// Package mining discovers frequent closed sequential patterns in a database
// of sequence.Sequence values by depth-first pattern growth.
//
// What:
//
//   - Mine / MineItems: resolve the support threshold, extract the frequent
//     single-item alphabet, optionally strip infrequent items from every
//     sequence, then grow patterns recursively and keep only closed ones.
//   - Project: the in-place partition primitive. It moves every member of a
//     working range that satisfies a predicate to the front and stops as soon
//     as the remaining candidates can no longer reach the threshold.
//   - WorkingSet: the capability interface ("project by extension, report
//     size, release") with two interchangeable backends selected once per
//     call: PointerPartition (re-tests full embedding on a reference array)
//     and PseudoProjection (resumes per-sequence match cursors).
//   - Frontier: support-bucketed antichains of patterns. Maintain keeps, for
//     every support value, exactly the patterns not embedded in another
//     pattern of the same support.
//
// Search:
//
//	grow(P, W):
//	  1. record P at support |W|
//	  2. itemset mode only: for e accepted by P's last itemset,
//	     extend it with e, W' = project(W), recurse if |W'| ≥ min, retract
//	  3. for every candidate e: append position {e}, W' = project(W),
//	     recurse if |W'| ≥ min, pop
//
// The root (empty pattern) skips steps 1 and 2. Item extension runs before
// sequence extension so a fully grown itemset at one timepoint reaches the
// frontier before patterns that split the same items across timepoints.
//
// Concurrency:
//
// A call is single-threaded and synchronous. The pattern buffer and the
// working set are mutated in place with stack discipline, so sibling branches
// cannot run concurrently without private copies of both.
//
// Options:
//
//   - WithBackend(b)         PointerPartition (default) or PseudoProjection.
//   - WithStripSequences(on) materialize a copy without infrequent items.
//   - WithLazyPruning(on)    drop failed sequence-extension candidates from
//     later sibling subtrees (default on).
//   - WithLogger(l)          zap logger for debug progress (default no-op).
//   - WithOnExtend(fn)       edge diagnostics for every successful extension.
//
// Errors:
//
//   - ErrInvalidSupport   relative support outside (0,1] or absolute < 1.
//   - ErrMixedKinds       database mixes Items and Itemsets sequences.
//   - ErrUnknownBackend   backend name not recognised by ParseBackend.
package mining
