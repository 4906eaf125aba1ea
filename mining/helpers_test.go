package mining_test

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/seqmine/mining"
	"github.com/katalvlaran/seqmine/sequence"
)

// sets builds an Itemsets-mode sequence from item groups.
func sets(groups ...[]int) sequence.Sequence[int] {
	out := make([]sequence.Itemset[int], len(groups))
	for i, g := range groups {
		out[i] = sequence.NewItemset(g...)
	}

	return sequence.OfSets(out...)
}

// render flattens a frontier to support -> sorted pattern strings.
func render[T cmp.Ordered](f *mining.Frontier[T]) map[int][]string {
	out := make(map[int][]string)
	for _, s := range f.Supports() {
		for _, p := range f.Sorted(s) {
			out[s] = append(out[s], p.String())
		}
	}

	return out
}

// variant is one engine configuration that must produce identical results.
type variant struct {
	name string
	opts []mining.Option
}

func variants() []variant {
	return []variant{
		{"partition", []mining.Option{mining.WithBackend(mining.PointerPartition)}},
		{"partition/eager", []mining.Option{mining.WithBackend(mining.PointerPartition), mining.WithLazyPruning(false)}},
		{"partition/strip", []mining.Option{mining.WithBackend(mining.PointerPartition), mining.WithStripSequences(true)}},
		{"pseudo", []mining.Option{mining.WithBackend(mining.PseudoProjection)}},
		{"pseudo/eager", []mining.Option{mining.WithBackend(mining.PseudoProjection), mining.WithLazyPruning(false)}},
		{"pseudo/strip", []mining.Option{mining.WithBackend(mining.PseudoProjection), mining.WithStripSequences(true)}},
	}
}

// bruteForce enumerates every frequent pattern breadth-first with naive
// support counting and keeps those without an equal-support superpattern.
func bruteForce(db []sequence.Sequence[int], minSupport int) map[int][]string {
	support := func(p sequence.Sequence[int]) int {
		n := 0
		for _, s := range db {
			if p.IsSubsequenceOf(s) {
				n++
			}
		}

		return n
	}

	type counted struct {
		p sequence.Sequence[int]
		s int
	}

	kind := db[0].Kind()
	items := mining.ExtractItems(db)
	seen := map[string]bool{}
	var frequent []counted
	queue := []sequence.Sequence[int]{sequence.Empty[int](kind)}

	offer := func(p sequence.Sequence[int]) {
		key := p.String()
		if seen[key] {
			return
		}
		seen[key] = true
		if s := support(p); s >= minSupport {
			frequent = append(frequent, counted{p, s})
			queue = append(queue, p)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, e := range items {
			grown := p.Clone()
			grown.Push(e)
			offer(grown)

			if kind == sequence.Itemsets && !p.IsEmpty() {
				wider := p.Clone()
				if wider.ExtendLast(e) {
					offer(wider)
				}
			}
		}
	}

	out := map[int][]sequence.Sequence[int]{}
	for _, f := range frequent {
		closed := true
		for _, g := range frequent {
			if g.s == f.s && !g.p.Equal(f.p) && f.p.IsSubsequenceOf(g.p) {
				closed = false
				break
			}
		}
		if closed {
			out[f.s] = append(out[f.s], f.p)
		}
	}

	rendered := map[int][]string{}
	for s, ps := range out {
		slices.SortFunc(ps, sequence.Sequence[int].Compare)
		for _, p := range ps {
			rendered[s] = append(rendered[s], p.String())
		}
	}

	return rendered
}
