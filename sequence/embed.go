package sequence

import "cmp"

// matches reports whether position i of s matches position j of other:
// equality in Items mode, subset in Itemsets mode. Kinds must agree.
func (s Sequence[T]) matches(i int, other Sequence[T], j int) bool {
	if s.kind == Items {
		return s.items[i] == other.items[j]
	}

	return s.sets[i].Subset(other.sets[j])
}

// IsSubsequenceOf reports whether s embeds in other: every position of s
// matches a distinct position of other, in order. A sequence of a different
// kind never embeds.
//
// A single greedy scan suffices. Whenever the current position of s matches,
// consuming it at the earliest possible position of other leaves the longest
// possible remainder for the rest of s.
func (s Sequence[T]) IsSubsequenceOf(other Sequence[T]) bool {
	if s.kind != other.kind {
		return false
	}

	n, m := s.Len(), other.Len()
	if n > m {
		return false
	}

	i := 0
	for j := 0; i < n && j < m; j++ {
		if s.matches(i, other, j) {
			i++
		}
	}

	return i == n
}

// prefixCut returns the index in s just past the greedy front-to-back
// embedding of sub, or s.Len() when sub does not embed.
func (s Sequence[T]) prefixCut(sub Sequence[T]) int {
	i, j := 0, 0
	for i < s.Len() && j < sub.Len() {
		if sub.matches(j, s, i) {
			j++
		}
		i++
	}

	return i
}

// suffixCut returns the index in s where the greedy back-to-front embedding
// of sub begins, or 0 when sub does not embed.
func (s Sequence[T]) suffixCut(sub Sequence[T]) int {
	i, j := s.Len(), sub.Len()
	for i > 0 && j > 0 {
		if sub.matches(j-1, s, i-1) {
			j--
		}
		i--
	}

	return i
}

// PrefixProject consumes sub greedily from the front of s and returns what
// follows the last consumed position. The result is empty when sub does not
// embed in s.
func (s Sequence[T]) PrefixProject(sub Sequence[T]) Sequence[T] {
	if s.kind != sub.kind {
		return Empty[T](s.kind)
	}

	return s.slice(s.prefixCut(sub), s.Len())
}

// SuffixProject consumes sub greedily from the back of s and returns what
// precedes the first consumed position. The result is empty when sub does
// not embed in s.
func (s Sequence[T]) SuffixProject(sub Sequence[T]) Sequence[T] {
	if s.kind != sub.kind {
		return Empty[T](s.kind)
	}

	return s.slice(0, s.suffixCut(sub))
}

// slice copies positions [lo, hi) into a new sequence.
func (s Sequence[T]) slice(lo, hi int) Sequence[T] {
	out := Sequence[T]{kind: s.kind}
	if s.kind == Items {
		out.items = append([]T(nil), s.items[lo:hi]...)
		return out
	}
	out.sets = make([]Itemset[T], 0, hi-lo)
	for i := lo; i < hi; i++ {
		out.sets = append(out.sets, s.sets[i].Clone())
	}

	return out
}

// Less is a convenience for sort functions: it reports a.Compare(b) < 0.
func Less[T cmp.Ordered](a, b Sequence[T]) bool { return a.Compare(b) < 0 }
