package mining

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/seqmine/sequence"
)

// ExtractItems returns the distinct items of the database in ascending order.
func ExtractItems[T cmp.Ordered](db []sequence.Sequence[T]) []T {
	var out []T
	for i := range db {
		out = append(out, db[i].Alphabet()...)
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// FrequentItems returns the candidates that occur in at least minSupport
// sequences, counting each item once per sequence. Candidate order is
// preserved and duplicates are dropped.
func FrequentItems[T cmp.Ordered](db []sequence.Sequence[T], candidates []T, minSupport int) []T {
	counts := make(map[T]int, len(candidates))
	for _, c := range candidates {
		counts[c] = 0
	}
	for i := range db {
		for _, item := range db[i].Alphabet() {
			if n, ok := counts[item]; ok {
				counts[item] = n + 1
			}
		}
	}

	out := make([]T, 0, len(candidates))
	seen := make(map[T]struct{}, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if counts[c] >= minSupport {
			out = append(out, c)
		}
	}

	return out
}

// Strip returns a copy of the database restricted to the keep items.
// In Itemsets mode positions left empty are dropped.
func Strip[T cmp.Ordered](db []sequence.Sequence[T], keep []T) []sequence.Sequence[T] {
	allowed := make(map[T]struct{}, len(keep))
	for _, k := range keep {
		allowed[k] = struct{}{}
	}

	out := make([]sequence.Sequence[T], len(db))
	for i := range db {
		out[i] = stripOne(db[i], allowed)
	}

	return out
}

func stripOne[T cmp.Ordered](s sequence.Sequence[T], allowed map[T]struct{}) sequence.Sequence[T] {
	out := sequence.Empty[T](s.Kind())
	for i := 0; i < s.Len(); i++ {
		if s.Kind() == sequence.Items {
			if _, ok := allowed[s.Item(i)]; ok {
				out.Push(s.Item(i))
			}
			continue
		}

		var set sequence.Itemset[T]
		for _, item := range s.Set(i).Items() {
			if _, ok := allowed[item]; ok {
				set.Add(item)
			}
		}
		if !set.Empty() {
			out.PushSet(set)
		}
	}

	return out
}

// kindOf returns the common kind of the database or ErrMixedKinds.
// An empty database is treated as Items mode.
func kindOf[T cmp.Ordered](db []sequence.Sequence[T]) (sequence.Kind, error) {
	if len(db) == 0 {
		return sequence.Items, nil
	}
	kind := db[0].Kind()
	for i := 1; i < len(db); i++ {
		if db[i].Kind() != kind {
			return kind, ErrMixedKinds
		}
	}

	return kind, nil
}
