package sequence

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Itemset is a sorted collection of unique items occurring at one timepoint.
// The zero value is an empty itemset ready to use.
type Itemset[T cmp.Ordered] struct {
	elems []T
}

// NewItemset builds an itemset from items in any order; duplicates collapse.
func NewItemset[T cmp.Ordered](items ...T) Itemset[T] {
	elems := slices.Clone(items)
	slices.Sort(elems)

	return Itemset[T]{elems: slices.Compact(elems)}
}

// Add appends item if it is strictly greater than the current maximum.
// It reports false, leaving the itemset untouched, otherwise.
func (s *Itemset[T]) Add(item T) bool {
	if n := len(s.elems); n > 0 && s.elems[n-1] >= item {
		return false
	}
	s.elems = append(s.elems, item)

	return true
}

// RemoveLast pops and returns the maximum item.
// It panics on an empty itemset, the same way indexing an empty slice does.
func (s *Itemset[T]) RemoveLast() T {
	n := len(s.elems)
	item := s.elems[n-1]
	s.elems = s.elems[:n-1]

	return item
}

// Last returns the maximum item, or false when the itemset is empty.
func (s Itemset[T]) Last() (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}

	return s.elems[len(s.elems)-1], true
}

// Len returns the number of items.
func (s Itemset[T]) Len() int { return len(s.elems) }

// Empty reports whether the itemset has no items.
func (s Itemset[T]) Empty() bool { return len(s.elems) == 0 }

// At returns the i-th smallest item.
func (s Itemset[T]) At(i int) T { return s.elems[i] }

// Items returns the items in ascending order. The slice is shared with the
// itemset and must not be modified.
func (s Itemset[T]) Items() []T { return s.elems }

// Contains reports whether item is a member, by binary search.
func (s Itemset[T]) Contains(item T) bool {
	_, found := slices.BinarySearch(s.elems, item)

	return found
}

// Subset reports whether every item of s also occurs in other.
// The merge stops as soon as an unmatched item of s is smaller than the
// current item of other, since other can no longer contain it.
func (s Itemset[T]) Subset(other Itemset[T]) bool {
	if len(s.elems) > len(other.elems) {
		return false
	}

	i, j := 0, 0
	for i < len(s.elems) && j < len(other.elems) {
		switch {
		case s.elems[i] < other.elems[j]:
			return false
		case other.elems[j] < s.elems[i]:
			j++
		default:
			i++
			j++
		}
	}

	return i == len(s.elems)
}

// Compare orders itemsets by size first and then lexicographically.
// Dominance checks discriminate by length, which is why size leads.
func (s Itemset[T]) Compare(other Itemset[T]) int {
	if c := cmp.Compare(len(s.elems), len(other.elems)); c != 0 {
		return c
	}

	return slices.Compare(s.elems, other.elems)
}

// Equal reports whether both itemsets hold the same items.
func (s Itemset[T]) Equal(other Itemset[T]) bool {
	return slices.Equal(s.elems, other.elems)
}

// Clone returns an itemset that shares no storage with s.
func (s Itemset[T]) Clone() Itemset[T] {
	return Itemset[T]{elems: slices.Clone(s.elems)}
}

// String renders the itemset as "(a,b,c)".
func (s Itemset[T]) String() string {
	var b strings.Builder
	s.writeTo(&b)

	return b.String()
}

func (s Itemset[T]) writeTo(b *strings.Builder) {
	b.WriteByte('(')
	for i, item := range s.elems {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(b, item)
	}
	b.WriteByte(')')
}
