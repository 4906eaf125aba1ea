// SPDX-License-Identifier: MIT
// Package: seqmine/mining
//
// miner.go: entry points and the depth-first pattern-growth walker.
//
// Contract:
//   • The input database is never modified; stripping works on a copy.
//   • Every sequence must share one Kind; the empty pattern is never recorded.
//   • The result is independent of the backend, of lazy pruning, of
//     stripping and of the order of the candidate alphabet.

package mining

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/seqmine/sequence"
)

// Mine returns the closed frequent patterns of db, using every item that
// occurs in db (ascending) as the candidate alphabet.
func Mine[T cmp.Ordered](db []sequence.Sequence[T], support Support, opts ...Option) (*Result[T], error) {
	return MineItems(db, ExtractItems(db), support, opts...)
}

// MineItems is Mine with a caller-chosen candidate alphabet. Items outside
// candidates never appear in a pattern. The candidate order decides only
// the order of exploration.
func MineItems[T cmp.Ordered](db []sequence.Sequence[T], candidates []T, support Support, opts ...Option) (*Result[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	// 1. Threshold and database shape.
	minSupport, err := support.Resolve(len(db))
	if err != nil {
		return nil, err
	}
	kind, err := kindOf(db)
	if err != nil {
		return nil, err
	}

	// 2. Frequent single items.
	items := FrequentItems(db, candidates, minSupport)
	log.Debug("frequent items",
		zap.Int("candidates", len(candidates)),
		zap.Int("frequent", len(items)),
		zap.Int("min_support", minSupport),
	)

	// 3. Optional stripped copy.
	work := db
	if o.Strip {
		work = Strip(db, items)
		log.Debug("stripped database", zap.Int("sequences", len(work)))
	}

	root, err := newWorkingSet(work, o.Backend)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", o.Backend, err)
	}

	// 4. Search.
	w := &walker[T]{
		pattern:  sequence.Empty[T](kind),
		min:      minSupport,
		frontier: NewFrontier[T](),
		lazy:     o.LazyPruning,
		onExtend: o.OnExtend,
	}
	w.extendSequences(root, items)

	log.Debug("mining complete",
		zap.Stringer("backend", o.Backend),
		zap.Int("nodes", w.nodes),
		zap.Int("patterns", w.frontier.Len()),
	)

	return &Result[T]{
		Frontier:   w.frontier,
		MinSupport: minSupport,
		Alphabet:   items,
		Nodes:      w.nodes,
	}, nil
}

// walker holds the state shared by every frame of one search.
type walker[T cmp.Ordered] struct {
	pattern  sequence.Sequence[T]
	min      int
	frontier *Frontier[T]
	lazy     bool
	onExtend func(Edge)
	nodes    int
}

// grow records the current pattern and explores its extensions.
// items is the candidate list handed down by the parent frame.
func (w *walker[T]) grow(ws WorkingSet[T], items []T) {
	w.nodes++
	w.frontier.Maintain(w.pattern, ws.Len())

	if w.pattern.Kind() == sequence.Itemsets {
		for _, e := range items {
			if !w.pattern.ExtendLast(e) {
				continue
			}
			w.descend(ws, Extension[T]{Kind: ItemExtension, Item: e}, items)
			w.pattern.RetractLast()
		}
	}

	w.extendSequences(ws, items)
}

// extendSequences tries every candidate as a new trailing position. With
// lazy pruning a candidate whose projection falls below the threshold is
// removed from the list handed to later siblings' subtrees.
func (w *walker[T]) extendSequences(ws WorkingSet[T], items []T) {
	candidates := items
	if w.lazy {
		candidates = slices.Clone(items)
	}

	for i := 0; i < len(candidates); {
		e := candidates[i]
		w.pattern.Push(e)
		ok := w.descend(ws, Extension[T]{Kind: SequenceExtension, Item: e}, candidates)
		w.pattern.Pop()

		if ok || !w.lazy {
			i++
			continue
		}
		last := len(candidates) - 1
		candidates[i] = candidates[last]
		candidates = candidates[:last]
	}
}

// descend projects ws by the extension already applied to w.pattern and
// recurses when the child is frequent. It reports whether it recursed.
func (w *walker[T]) descend(ws WorkingSet[T], ext Extension[T], items []T) bool {
	child := ws.Project(w.pattern, ext, w.min)
	frequent := child.Len() >= w.min
	if frequent {
		if w.onExtend != nil {
			w.onExtend(w.edge(ext, items))
		}
		w.grow(child, items)
	}
	child.Release()

	return frequent
}

// edge renders the current extension. The parent is rebuilt by undoing ext
// for the duration of the String call.
func (w *walker[T]) edge(ext Extension[T], items []T) Edge {
	child := w.pattern.String()

	var parent string
	if ext.Kind == ItemExtension {
		w.pattern.RetractLast()
		parent = w.pattern.String()
		w.pattern.ExtendLast(ext.Item)
	} else {
		w.pattern.Pop()
		parent = w.pattern.String()
		w.pattern.Push(ext.Item)
	}

	return Edge{Parent: parent, Label: candidateLabel(items), Child: child}
}

// candidateLabel renders "N = {a,b,...}".
func candidateLabel[T cmp.Ordered](items []T) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d = {", len(items))
	for i, it := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, it)
	}
	b.WriteByte('}')

	return b.String()
}
