// SPDX-License-Identifier: MIT
// Package: seqmine/mining
//
// frontier.go: support-bucketed closed-pattern store.
//
// Invariants (per bucket):
//   • Entries are ordered by non-increasing length (number of positions).
//   • No entry embeds in another entry of the same bucket.
//
// Complexity of Maintain: O(B · E) where B is the bucket size and E the
// cost of one embedding test.

package mining

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/seqmine/sequence"
)

// Frontier maps each support value to the closed patterns found with it.
// The zero value is not usable; call NewFrontier.
type Frontier[T cmp.Ordered] struct {
	buckets map[int][]sequence.Sequence[T]
	size    int
}

// NewFrontier returns an empty frontier.
func NewFrontier[T cmp.Ordered]() *Frontier[T] {
	return &Frontier[T]{buckets: make(map[int][]sequence.Sequence[T])}
}

// Maintain offers pattern at support. It reports whether the pattern was
// stored. A pattern embedded in an entry of the same bucket is rejected;
// otherwise a copy is inserted ahead of entries of equal or shorter length
// and every shorter entry that embeds in it is removed.
func (f *Frontier[T]) Maintain(pattern sequence.Sequence[T], support int) bool {
	bucket := f.buckets[support]
	n := pattern.Len()

	// 1. Longer entries: is the pattern dominated?
	i := 0
	for ; i < len(bucket) && bucket[i].Len() > n; i++ {
		if pattern.IsSubsequenceOf(bucket[i]) {
			return false
		}
	}
	at := i

	// 2. Equal-length entries: embedding here means equality.
	for ; i < len(bucket) && bucket[i].Len() == n; i++ {
		if pattern.IsSubsequenceOf(bucket[i]) {
			return false
		}
	}

	// 3. Insert before the first entry that is not longer.
	bucket = slices.Insert(bucket, at, pattern.Clone())

	// 4. Drop following entries subsumed by the new one.
	tail := slices.DeleteFunc(bucket[at+1:], func(q sequence.Sequence[T]) bool {
		return q.IsSubsequenceOf(pattern)
	})
	removed := len(bucket) - (at + 1 + len(tail))
	bucket = bucket[:at+1+len(tail)]

	f.buckets[support] = bucket
	f.size += 1 - removed

	return true
}

// Len reports the total number of stored patterns.
func (f *Frontier[T]) Len() int { return f.size }

// Supports returns the support values that hold at least one pattern, in
// ascending order.
func (f *Frontier[T]) Supports() []int {
	out := make([]int, 0, len(f.buckets))
	for s, b := range f.buckets {
		if len(b) > 0 {
			out = append(out, s)
		}
	}
	slices.Sort(out)

	return out
}

// Bucket returns the patterns stored at support in storage order
// (non-increasing length). The slice is shared; do not modify it.
func (f *Frontier[T]) Bucket(support int) []sequence.Sequence[T] {
	return f.buckets[support]
}

// Sorted returns a copy of the bucket at support in ascending
// sequence.Sequence.Compare order.
func (f *Frontier[T]) Sorted(support int) []sequence.Sequence[T] {
	out := slices.Clone(f.buckets[support])
	slices.SortFunc(out, sequence.Sequence[T].Compare)

	return out
}

// Contains reports whether a pattern equal to p is stored at support.
func (f *Frontier[T]) Contains(p sequence.Sequence[T], support int) bool {
	return slices.ContainsFunc(f.buckets[support], p.Equal)
}

// Walk visits every stored pattern, supports ascending and patterns in
// Sorted order. It stops early when fn returns false.
func (f *Frontier[T]) Walk(fn func(support int, pattern sequence.Sequence[T]) bool) {
	for _, s := range f.Supports() {
		for _, p := range f.Sorted(s) {
			if !fn(s, p) {
				return
			}
		}
	}
}
