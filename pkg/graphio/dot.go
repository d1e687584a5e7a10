package graphio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lkirchner/graphlens/pkg/graph"
)

// WriteDOT writes g in graphviz DOT format. Nodes appear in insertion order
// and every edge exactly once, so output is deterministic for a given graph.
func WriteDOT(w io.Writer, g *graph.Graph) error {
	var buf bytes.Buffer

	keyword, connector := "graph", "--"
	if g.Directed() {
		keyword, connector = "digraph", "->"
	}

	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  node [shape=circle];\n\n")

	for _, name := range g.Names() {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}

	buf.WriteString("\n")
	for _, name := range g.Names() {
		id, _ := g.ID(name)
		for _, other := range g.Neighbors(name) {
			otherID, _ := g.ID(other)
			// Each edge shows up from both endpoints; emit it from the
			// earlier one only.
			if otherID < id {
				continue
			}
			fmt.Fprintf(&buf, "  %q %s %q;\n", name, connector, other)
		}
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteDOTFile writes g in DOT format to path.
func WriteDOTFile(path string, g *graph.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteDOT(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
