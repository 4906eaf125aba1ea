package mining_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/seqmine/mining"
	"github.com/katalvlaran/seqmine/sequence"
)

// ExampleMine mines a three-sequence database at absolute support 2.
func ExampleMine() {
	db := []sequence.Sequence[int]{
		sequence.Of(1, 2, 3),
		sequence.Of(1, 2),
		sequence.Of(2, 3),
	}

	res, err := mining.Mine(db, mining.Absolute(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res.Frontier.Walk(func(support int, p sequence.Sequence[int]) bool {
		fmt.Println(support, p)
		return true
	})

	// Output:
	// 2 <1,2>
	// 2 <2,3>
	// 3 <2>
}

// ExampleWriteDOT renders the search edges of a tiny itemset database.
func ExampleWriteDOT() {
	db := []sequence.Sequence[string]{
		sequence.OfSets(sequence.NewItemset("a", "b")),
		sequence.OfSets(sequence.NewItemset("a", "b")),
	}

	var log mining.EdgeLog
	if _, err := mining.Mine(db, mining.Absolute(2), mining.WithOnExtend(log.Record)); err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = mining.WriteDOT(os.Stdout, log.Edges)

	// Output:
	// digraph G {
	// 	"<>" -> "<(a)>" [label="2 = {a,b}"]
	// 	"<(a)>" -> "<(a,b)>" [label="2 = {a,b}"]
	// 	"<>" -> "<(b)>" [label="2 = {a,b}"]
	// }
}
