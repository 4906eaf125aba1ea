package mining

import (
	"bufio"
	"fmt"
	"io"
)

// EdgeLog collects edges; pass its Record method to WithOnExtend.
type EdgeLog struct {
	Edges []Edge
}

// Record appends e.
func (l *EdgeLog) Record(e Edge) { l.Edges = append(l.Edges, e) }

// WriteDOT writes edges as a Graphviz digraph, one labelled edge per line.
func WriteDOT(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	for _, e := range edges {
		fmt.Fprintf(bw, "\t%q -> %q [label=%q]\n", e.Parent, e.Child, e.Label)
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
