package sequence

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Sequence is an ordered list of positions. Its Kind decides whether a
// position is a single item or an Itemset; the two never mix in one value.
//
// Read-only methods take value receivers and mutators take pointer
// receivers. A Sequence is not a value type: a copy made by assignment
// shares its position storage with the original, so ExtendLast or Push on
// the copy can change the original. Call Clone before mutating a copy.
type Sequence[T cmp.Ordered] struct {
	kind  Kind
	items []T          // positions when kind == Items
	sets  []Itemset[T] // positions when kind == Itemsets
}

// Empty returns a sequence of the given kind with no positions.
func Empty[T cmp.Ordered](kind Kind) Sequence[T] {
	return Sequence[T]{kind: kind}
}

// Of builds an Items-mode sequence with one position per item.
func Of[T cmp.Ordered](items ...T) Sequence[T] {
	return Sequence[T]{kind: Items, items: slices.Clone(items)}
}

// OfSets builds an Itemsets-mode sequence with one position per itemset.
func OfSets[T cmp.Ordered](sets ...Itemset[T]) Sequence[T] {
	s := Sequence[T]{kind: Itemsets, sets: make([]Itemset[T], len(sets))}
	for i := range sets {
		s.sets[i] = sets[i].Clone()
	}

	return s
}

// Kind reports the position kind.
func (s Sequence[T]) Kind() Kind { return s.kind }

// Len returns the number of positions.
func (s Sequence[T]) Len() int {
	if s.kind == Itemsets {
		return len(s.sets)
	}

	return len(s.items)
}

// Size returns the total number of items over all positions.
func (s Sequence[T]) Size() int {
	if s.kind == Items {
		return len(s.items)
	}
	n := 0
	for i := range s.sets {
		n += s.sets[i].Len()
	}

	return n
}

// IsEmpty reports whether the sequence has no positions.
func (s Sequence[T]) IsEmpty() bool { return s.Len() == 0 }

// Item returns the item at position i of an Items-mode sequence.
func (s Sequence[T]) Item(i int) T { return s.items[i] }

// Set returns the itemset at position i. In Items mode the position is
// returned as a one-element itemset.
func (s Sequence[T]) Set(i int) Itemset[T] {
	if s.kind == Items {
		return Itemset[T]{elems: []T{s.items[i]}}
	}

	return s.sets[i]
}

// LastSet returns the itemset at the final position of an Itemsets-mode
// sequence, or an empty itemset when there is none.
func (s Sequence[T]) LastSet() Itemset[T] {
	if s.kind != Itemsets || len(s.sets) == 0 {
		return Itemset[T]{}
	}

	return s.sets[len(s.sets)-1]
}

// Push appends a new trailing position seeded with item.
func (s *Sequence[T]) Push(item T) {
	if s.kind == Items {
		s.items = append(s.items, item)
		return
	}

	// Reuse the storage of a previously popped position; the pattern buffer
	// pushes and pops at the tail millions of times per mining call.
	if n := len(s.sets); n < cap(s.sets) {
		s.sets = s.sets[:n+1]
		s.sets[n].elems = append(s.sets[n].elems[:0], item)
		return
	}
	s.sets = append(s.sets, Itemset[T]{elems: []T{item}})
}

// PushSet appends a copy of set as a new trailing position.
// It panics on an Items-mode sequence.
func (s *Sequence[T]) PushSet(set Itemset[T]) {
	if s.kind != Itemsets {
		panic("sequence: PushSet on items-mode sequence")
	}
	s.sets = append(s.sets, set.Clone())
}

// Pop removes the trailing position.
func (s *Sequence[T]) Pop() {
	if s.kind == Items {
		s.items = s.items[:len(s.items)-1]
		return
	}
	s.sets = s.sets[:len(s.sets)-1]
}

// ExtendLast adds item to the final itemset if Itemset.Add accepts it.
// It reports false in Items mode, on an empty sequence, or when item is not
// greater than the final itemset's maximum.
func (s *Sequence[T]) ExtendLast(item T) bool {
	if s.kind != Itemsets || len(s.sets) == 0 {
		return false
	}

	return s.sets[len(s.sets)-1].Add(item)
}

// RetractLast removes and returns the maximum item of the final itemset.
func (s *Sequence[T]) RetractLast() T {
	return s.sets[len(s.sets)-1].RemoveLast()
}

// Insert places a new position seeded with item at index i.
func (s *Sequence[T]) Insert(i int, item T) {
	if s.kind == Items {
		s.items = slices.Insert(s.items, i, item)
		return
	}
	s.sets = slices.Insert(s.sets, i, Itemset[T]{elems: []T{item}})
}

// Remove deletes the position at index i.
func (s *Sequence[T]) Remove(i int) {
	if s.kind == Items {
		s.items = slices.Delete(s.items, i, i+1)
		return
	}
	s.sets = slices.Delete(s.sets, i, i+1)
}

// Extend appends copies of all positions of other. Kinds must agree.
func (s *Sequence[T]) Extend(other Sequence[T]) {
	if s.kind == Items {
		s.items = append(s.items, other.items...)
		return
	}
	for i := range other.sets {
		s.sets = append(s.sets, other.sets[i].Clone())
	}
}

// Contains reports whether any position holds item.
func (s Sequence[T]) Contains(item T) bool {
	for i := 0; i < s.Len(); i++ {
		if s.PositionContains(i, item) {
			return true
		}
	}

	return false
}

// PositionContains reports whether position i holds item.
func (s Sequence[T]) PositionContains(i int, item T) bool {
	if s.kind == Items {
		return s.items[i] == item
	}

	return s.sets[i].Contains(item)
}

// PositionCovers reports whether set is contained in position i.
func (s Sequence[T]) PositionCovers(i int, set Itemset[T]) bool {
	if s.kind == Items {
		return set.Len() == 1 && set.elems[0] == s.items[i]
	}

	return set.Subset(s.sets[i])
}

// Alphabet returns the distinct items of the sequence in ascending order.
func (s Sequence[T]) Alphabet() []T {
	var out []T
	if s.kind == Items {
		out = slices.Clone(s.items)
	} else {
		out = make([]T, 0, s.Size())
		for i := range s.sets {
			out = append(out, s.sets[i].elems...)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// Clone returns a sequence that shares no storage with s.
func (s Sequence[T]) Clone() Sequence[T] {
	c := Sequence[T]{kind: s.kind}
	if s.kind == Items {
		c.items = slices.Clone(s.items)
		return c
	}
	c.sets = make([]Itemset[T], len(s.sets))
	for i := range s.sets {
		c.sets[i] = s.sets[i].Clone()
	}

	return c
}

// Equal reports whether both sequences have the same kind and positions.
func (s Sequence[T]) Equal(other Sequence[T]) bool {
	if s.kind != other.kind {
		return false
	}
	if s.kind == Items {
		return slices.Equal(s.items, other.items)
	}

	return slices.EqualFunc(s.sets, other.sets, Itemset[T].Equal)
}

// Compare orders sequences by length (positions) and then lexicographically
// by position. Sequences of different kinds order by kind.
func (s Sequence[T]) Compare(other Sequence[T]) int {
	if s.kind != other.kind {
		return cmp.Compare(s.kind, other.kind)
	}
	if c := cmp.Compare(s.Len(), other.Len()); c != 0 {
		return c
	}
	if s.kind == Items {
		return slices.Compare(s.items, other.items)
	}

	return slices.CompareFunc(s.sets, other.sets, Itemset[T].Compare)
}

// String renders "<a,b,c>" in Items mode and "<(a,b),(c)>" in Itemsets mode.
func (s Sequence[T]) String() string {
	var b strings.Builder
	b.WriteByte('<')
	if s.kind == Items {
		for i, item := range s.items {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprint(&b, item)
		}
	} else {
		for i := range s.sets {
			if i > 0 {
				b.WriteByte(',')
			}
			s.sets[i].writeTo(&b)
		}
	}
	b.WriteByte('>')

	return b.String()
}
