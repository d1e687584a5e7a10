// Package graph provides the in-memory graph model used by all analysis steps.
//
// Graph wraps a gonum undirected graph and keeps the mapping between the
// string identifiers found in graph files (GraphML node ids, DOT names) and
// the int64 ids gonum requires. All analysis code (centrality, profiling,
// plotting) operates on this type.
package graph

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is an undirected graph with string-named nodes.
//
// Node ids are assigned sequentially in insertion order, so iteration over
// [0, NodeCount()) visits nodes in the order they were added. Parallel edges
// collapse into one; self-loops are not representable.
type Graph struct {
	g      *simple.UndirectedGraph
	ids    map[string]int64
	names  []string
	attrs  map[string]map[string]string
	direct bool
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[string]int64),
	}
}

// SetDirected records whether the source file declared directed edges.
// Degree statistics treat the graph as undirected either way; the flag is
// kept for reporting.
func (g *Graph) SetDirected(directed bool) { g.direct = directed }

// Directed reports whether the source file declared directed edges.
func (g *Graph) Directed() bool { return g.direct }

// AddNode adds a node with the given name, returning its id.
// Adding an existing name is a no-op and returns the existing id.
func (g *Graph) AddNode(name string) int64 {
	if id, ok := g.ids[name]; ok {
		return id
	}
	id := int64(len(g.names))
	g.ids[name] = id
	g.names = append(g.names, name)
	g.g.AddNode(simple.Node(id))
	return id
}

// AddEdge adds an undirected edge between two named nodes, creating the
// nodes if needed. Self-loops and duplicate edges are ignored; the return
// value reports whether an edge was actually added.
func (g *Graph) AddEdge(from, to string) bool {
	if from == to {
		return false
	}
	f := g.AddNode(from)
	t := g.AddNode(to)
	if g.g.HasEdgeBetween(f, t) {
		return false
	}
	g.g.SetEdge(g.g.NewEdge(simple.Node(f), simple.Node(t)))
	return true
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.names) }

// EdgeCount returns the number of (undirected) edges.
func (g *Graph) EdgeCount() int { return g.g.Edges().Len() }

// Name returns the name of the node with the given id.
// It panics if id is out of range.
func (g *Graph) Name(id int64) string { return g.names[id] }

// ID returns the id for a node name.
func (g *Graph) ID(name string) (int64, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// Has reports whether a node with the given name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.ids[name]
	return ok
}

// Degree returns the number of edges incident to the node with the given id.
func (g *Graph) Degree(id int64) int {
	return g.g.From(id).Len()
}

// Degrees returns the degree of every node, indexed by node id.
func (g *Graph) Degrees() []int {
	degs := make([]int, len(g.names))
	for i := range degs {
		degs[i] = g.Degree(int64(i))
	}
	return degs
}

// Neighbors returns the names of the nodes adjacent to the named node.
func (g *Graph) Neighbors(name string) []string {
	id, ok := g.ids[name]
	if !ok {
		return nil
	}
	it := g.g.From(id)
	var out []string
	for it.Next() {
		out = append(out, g.names[it.Node().ID()])
	}
	return out
}

// SetAttr records a key/value attribute on the named node, creating the
// node if needed. Attributes come from GraphML <data> elements and carry no
// structural meaning.
func (g *Graph) SetAttr(name, key, value string) {
	g.AddNode(name)
	if g.attrs == nil {
		g.attrs = make(map[string]map[string]string)
	}
	if g.attrs[name] == nil {
		g.attrs[name] = make(map[string]string)
	}
	g.attrs[name][key] = value
}

// Attr returns a node attribute, or "" if the node or key is absent.
func (g *Graph) Attr(name, key string) string {
	return g.attrs[name][key]
}

// Attrs returns all attributes of the named node; nil if it has none.
func (g *Graph) Attrs(name string) map[string]string {
	return g.attrs[name]
}

// Names returns all node names in insertion order.
// The returned slice is shared; callers must not modify it.
func (g *Graph) Names() []string { return g.names }

// Undirected returns the underlying gonum graph for use with
// gonum.org/v1/gonum/graph algorithms.
func (g *Graph) Undirected() *simple.UndirectedGraph { return g.g }
