package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/seqmine/sequence"
)

// ExampleSequence_IsSubsequenceOf shows embedding in both position kinds.
func ExampleSequence_IsSubsequenceOf() {
	// Items mode: positions match on equality.
	fmt.Println(sequence.Of(1, 3).IsSubsequenceOf(sequence.Of(1, 2, 3)))

	// Itemsets mode: a pattern position matches any superset position.
	db := sequence.OfSets(sequence.NewItemset(1, 2), sequence.NewItemset(3))
	pattern := sequence.OfSets(sequence.NewItemset(2), sequence.NewItemset(3))
	fmt.Println(pattern, pattern.IsSubsequenceOf(db))

	// Output:
	// true
	// <(2),(3)> true
}

// ExampleItemset_Add shows that insertion order is the caller's responsibility.
func ExampleItemset_Add() {
	var s sequence.Itemset[string]
	fmt.Println(s.Add("a"), s.Add("c"), s.Add("b"))
	fmt.Println(s)

	// Output:
	// true true false
	// (a,c)
}
