// Package seqio reads and writes the textual sequence format.
//
// Format:
//
//	<a,b,c>            Items mode: positions are single items
//	<(a,b),(c)>        Itemsets mode: positions are parenthesised sets
//	<>                 the empty sequence
//
// Sequences are separated by arbitrary whitespace, usually one per line.
// Items are any run of characters other than the delimiters ",<>()", with
// surrounding whitespace trimmed. Itemsets are sorted and de-duplicated on
// read, so "(b,a,a)" reads as (a,b). An empty itemset "()" is rejected.
//
// Errors carry the source name and the 1-based line and column of the
// offending character (*SyntaxError). Grammar violations match ErrSyntax;
// item conversion failures match ErrItem.
//
// Output:
//
//   - WriteDatabase: one sequence per line (canonical form).
//   - WriteText: for each support value in ascending order, a line with the
//     support followed by that bucket's patterns, one per line, sorted by
//     (length, lexicographic).
//   - WriteYAML: the same grouping as a YAML document.
package seqio
