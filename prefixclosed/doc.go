// Package prefixclosed restricts closed sequential patterns to those that
// end with one of a given list of suffix sequences.
//
// Two strategies are offered:
//
//   - Rewrite post-processes an existing frontier. Every pattern in which a
//     suffix embeds (greedily from the back) with at least one position in
//     front of it is rewritten as <that front part> + suffix and kept at the
//     pattern's support, unless a pattern of higher support already covers it.
//   - Mine cuts every database sequence at the greedy back embedding of each
//     suffix, mines the front parts, and appends the suffix to every result.
//
// Both accumulate over all suffixes into one support-bucketed frontier.
package prefixclosed
