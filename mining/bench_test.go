package mining_test

import (
	"testing"

	"github.com/katalvlaran/seqmine/generator"
	"github.com/katalvlaran/seqmine/mining"
	"github.com/katalvlaran/seqmine/sequence"
)

func benchDB(b *testing.B, itemsets bool) []sequence.Sequence[int] {
	b.Helper()
	opts := []generator.Option{generator.WithSeed(2024), generator.WithSequences(100)}
	var (
		db  []sequence.Sequence[int]
		err error
	)
	if itemsets {
		db, err = generator.Itemsets(append(opts, generator.WithLength(4, 8))...)
	} else {
		db, err = generator.Items(opts...)
	}
	if err != nil {
		b.Fatal(err)
	}

	return db
}

func benchMine(b *testing.B, db []sequence.Sequence[int], s mining.Support, opts ...mining.Option) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mining.Mine(db, s, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMine_Items_Partition(b *testing.B) {
	benchMine(b, benchDB(b, false), mining.Relative(0.3))
}

func BenchmarkMine_Items_Pseudo(b *testing.B) {
	benchMine(b, benchDB(b, false), mining.Relative(0.3), mining.WithBackend(mining.PseudoProjection))
}

func BenchmarkMine_Items_Eager(b *testing.B) {
	benchMine(b, benchDB(b, false), mining.Relative(0.3), mining.WithLazyPruning(false))
}

func BenchmarkMine_Itemsets_Partition(b *testing.B) {
	benchMine(b, benchDB(b, true), mining.Relative(0.5))
}

func BenchmarkMine_Itemsets_Pseudo(b *testing.B) {
	benchMine(b, benchDB(b, true), mining.Relative(0.5), mining.WithBackend(mining.PseudoProjection))
}
