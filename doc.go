// Package seqmine is an in-memory engine for mining frequent closed
// sequential patterns from databases of item or itemset sequences.
//
// 🚀 What is seqmine?
//
//	A generic, allocation-conscious toolkit that brings together:
//		• Sequences: items or itemsets per position, embedding tests,
//		  prefix/suffix projection, canonical ordering and rendering
//		• Mining: depth-first pattern growth with in-place projection,
//		  two interchangeable working-set backends and lazy pruning
//		• Closed frontier: support-bucketed antichains of patterns
//		• Prefix-closed mining against a list of suffix sequences
//		• Text and YAML codecs, a random database generator and a CLI
//
// ✨ Why choose seqmine?
//
//   - Generic over any cmp.Ordered item type (ints, strings, ...)
//   - Deterministic results: independent of backend and candidate order
//   - Observable: zap debug logs and Graphviz export of the search tree
//
// Packages:
//
//	sequence/     Itemset, Sequence, embedding and projection
//	mining/       Mine, Project, WorkingSet backends, Frontier
//	prefixclosed/ suffix-anchored mining (rewrite or re-mine)
//	seqio/        "<a,b>" / "<(a,b),(c)>" reader and writers
//	generator/    uniform random sequence databases
//	cmd/seqmine/  mine, generate and cleanup commands
//
// Quick example:
//
//	db := []sequence.Sequence[int]{
//		sequence.Of(1, 2, 3),
//		sequence.Of(1, 2),
//		sequence.Of(2, 3),
//	}
//	res, _ := mining.Mine(db, mining.Absolute(2))
//	// support 2: <1,2> <2,3>
//	// support 3: <2>
//
// See the package docs of sequence and mining for contracts and complexity.
package seqmine
