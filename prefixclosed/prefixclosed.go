package prefixclosed

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/seqmine/mining"
	"github.com/katalvlaran/seqmine/sequence"
)

// Rewrite returns the suffix-anchored form of f. f is not modified.
func Rewrite[T cmp.Ordered](f *mining.Frontier[T], suffixes []sequence.Sequence[T]) *mining.Frontier[T] {
	out := mining.NewFrontier[T]()

	supports := f.Supports()
	slices.Reverse(supports)

	for _, suffix := range suffixes {
		for _, s := range supports {
			for _, p := range f.Bucket(s) {
				anchored := p.SuffixProject(suffix)
				if anchored.IsEmpty() {
					continue
				}
				anchored.Extend(suffix)

				if !coveredAbove(out, anchored, s) {
					out.Maintain(anchored, s)
				}
			}
		}
	}

	return out
}

// coveredAbove reports whether p embeds in a pattern stored at a support
// greater than support. Buckets are ordered by non-increasing length, so the
// scan of a bucket stops at the first shorter entry.
func coveredAbove[T cmp.Ordered](f *mining.Frontier[T], p sequence.Sequence[T], support int) bool {
	for _, s := range f.Supports() {
		if s <= support {
			continue
		}
		for _, q := range f.Bucket(s) {
			if q.Len() < p.Len() {
				break
			}
			if p.IsSubsequenceOf(q) {
				return true
			}
		}
	}

	return false
}

// MineRewrite mines db and rewrites the result with Rewrite.
func MineRewrite[T cmp.Ordered](db, suffixes []sequence.Sequence[T], support mining.Support, opts ...mining.Option) (*mining.Result[T], error) {
	res, err := mining.Mine(db, support, opts...)
	if err != nil {
		return nil, err
	}
	res.Frontier = Rewrite(res.Frontier, suffixes)

	return res, nil
}

// Mine re-mines the suffix-projected database once per suffix. The result's
// Alphabet is left empty and Nodes sums the visited patterns of every run.
func Mine[T cmp.Ordered](db, suffixes []sequence.Sequence[T], support mining.Support, opts ...mining.Option) (*mining.Result[T], error) {
	out := &mining.Result[T]{Frontier: mining.NewFrontier[T]()}

	minSupport, err := support.Resolve(len(db))
	if err != nil {
		return nil, err
	}
	out.MinSupport = minSupport

	projected := make([]sequence.Sequence[T], len(db))
	for _, suffix := range suffixes {
		for i := range db {
			projected[i] = db[i].SuffixProject(suffix)
		}

		res, err := mining.Mine(projected, mining.Absolute(minSupport), opts...)
		if err != nil {
			return nil, err
		}
		out.Nodes += res.Nodes

		for _, s := range res.Frontier.Supports() {
			for _, p := range res.Frontier.Bucket(s) {
				anchored := p.Clone()
				anchored.Extend(suffix)
				out.Frontier.Maintain(anchored, s)
			}
		}
	}

	return out, nil
}
