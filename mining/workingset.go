// SPDX-License-Identifier: MIT
// Package: seqmine/mining
//
// workingset.go: the working-set capability and its two backends.
//
// Both backends share one invariant: a child returned by Project is a
// prefix range of its parent's storage, and it stays valid until Release.
// The walker releases every child before projecting its next sibling.

package mining

import (
	"cmp"

	"github.com/katalvlaran/seqmine/sequence"
)

// WorkingSet is the set of database sequences that contain the current
// pattern. Its Len is the pattern's support.
type WorkingSet[T cmp.Ordered] interface {
	// Len reports the number of member sequences.
	Len() int

	// Project narrows the set to members that still contain pattern, which
	// has already been grown by ext. The result may be incomplete when its
	// Len is below minSupport.
	Project(pattern sequence.Sequence[T], ext Extension[T], minSupport int) WorkingSet[T]

	// Release undoes any per-member state Project attached to the child.
	Release()
}

// newWorkingSet builds the root working set over every database sequence.
func newWorkingSet[T cmp.Ordered](db []sequence.Sequence[T], b Backend) (WorkingSet[T], error) {
	switch b {
	case PointerPartition:
		refs := make([]*sequence.Sequence[T], len(db))
		for i := range db {
			refs[i] = &db[i]
		}

		return &partitionSet[T]{refs: refs}, nil
	case PseudoProjection:
		entries := make([]*cursor[T], len(db))
		for i := range db {
			entries[i] = &cursor[T]{seq: &db[i]}
		}

		return &pseudoSet[T]{entries: entries}, nil
	default:
		return nil, ErrUnknownBackend
	}
}

// partitionSet re-tests full embedding on every projection.
type partitionSet[T cmp.Ordered] struct {
	refs []*sequence.Sequence[T]
}

func (s *partitionSet[T]) Len() int { return len(s.refs) }

func (s *partitionSet[T]) Project(pattern sequence.Sequence[T], _ Extension[T], minSupport int) WorkingSet[T] {
	n := Project(s.refs, func(ref *sequence.Sequence[T]) bool {
		return pattern.IsSubsequenceOf(*ref)
	}, minSupport)

	return &partitionSet[T]{refs: s.refs[:n]}
}

func (s *partitionSet[T]) Release() {}

// cursor tracks, for one sequence, the position matched by every item added
// along the current branch. The top of stack is where the pattern's final
// position is embedded by the greedy earliest match.
type cursor[T cmp.Ordered] struct {
	seq   *sequence.Sequence[T]
	stack []int
}

func (c *cursor[T]) top() int {
	if len(c.stack) == 0 {
		return -1
	}

	return c.stack[len(c.stack)-1]
}

// advance extends the greedy match by ext and pushes the matched position.
// pattern already carries ext.
func (c *cursor[T]) advance(pattern sequence.Sequence[T], ext Extension[T]) bool {
	s := c.seq
	j := c.top()

	switch ext.Kind {
	case SequenceExtension:
		for j++; j < s.Len(); j++ {
			if s.PositionContains(j, ext.Item) {
				c.stack = append(c.stack, j)
				return true
			}
		}
	case ItemExtension:
		// The old final itemset already fits at j; only ext.Item is missing.
		if s.PositionContains(j, ext.Item) {
			c.stack = append(c.stack, j)
			return true
		}
		last := pattern.LastSet()
		for j++; j < s.Len(); j++ {
			if s.PositionCovers(j, last) {
				c.stack = append(c.stack, j)
				return true
			}
		}
	}

	return false
}

func (c *cursor[T]) retract() { c.stack = c.stack[:len(c.stack)-1] }

// pseudoSet resumes each member's match from its cursor.
type pseudoSet[T cmp.Ordered] struct {
	entries []*cursor[T]
}

func (s *pseudoSet[T]) Len() int { return len(s.entries) }

func (s *pseudoSet[T]) Project(pattern sequence.Sequence[T], ext Extension[T], minSupport int) WorkingSet[T] {
	n := Project(s.entries, func(c *cursor[T]) bool {
		return c.advance(pattern, ext)
	}, minSupport)

	return &pseudoSet[T]{entries: s.entries[:n]}
}

// Release pops the position pushed by the Project call that produced s.
// Members in s all advanced; rejected or unvisited ones pushed nothing.
func (s *pseudoSet[T]) Release() {
	for _, c := range s.entries {
		c.retract()
	}
}
