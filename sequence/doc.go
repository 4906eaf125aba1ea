// Package sequence implements the data model shared by every miner in seqmine:
// caller-supplied items, sorted unique itemsets, and ordered sequences whose
// positions are either single items or itemsets.
//
// What:
//
//   - Itemset[T]: an owned, strictly increasing collection of items. Insertion
//     is append-only and rejects any item not greater than the current maximum,
//     so sortedness is enforced by the caller and checked by the container.
//   - Sequence[T]: an ordered list of positions tagged by Kind. In Items mode a
//     position is one item and positions match on equality; in Itemsets mode a
//     position is an Itemset and a pattern position matches a target position
//     when it is a subset of it.
//   - Embedding: IsSubsequenceOf performs a single greedy left-to-right scan.
//     Matching the earliest possible position is never worse for the rest of
//     the pattern, so no backtracking is needed.
//   - Projection: PrefixProject and SuffixProject consume a subsequence from the
//     front (or back) and return the remainder.
//
// Ordering:
//
//   - Itemsets order by (size, lexicographic content).
//   - Sequences order by (length, lexicographic positions), where length is the
//     number of positions.
//
// Rendering:
//
//	<1,2,3>          Items mode
//	<(1,2),(3)>      Itemsets mode
//
// Complexity:
//
//   - Itemset.Add / RemoveLast: O(1) amortized.
//   - Itemset.Subset:           O(n+m) merge co-iteration.
//   - Push / Pop / ExtendLast:  O(1) amortized; these are the only mutations the
//     pattern-growth engine performs on its shared pattern buffer.
//   - IsSubsequenceOf:          O(|other| · cost(match)).
package sequence
