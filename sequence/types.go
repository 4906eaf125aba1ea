package sequence

// Kind tags what a Sequence position holds.
type Kind uint8

const (
	// Items: every position is a single item; positions match on equality.
	Items Kind = iota

	// Itemsets: every position is an Itemset; a pattern position matches a
	// target position when it is a subset of it.
	Itemsets
)

// String returns "items" or "itemsets".
func (k Kind) String() string {
	switch k {
	case Items:
		return "items"
	case Itemsets:
		return "itemsets"
	default:
		return "unknown"
	}
}
