// Package graphio reads GraphML graph descriptions.
//
// GraphML is an XML format (http://graphml.graphdrawing.org) commonly used to
// exchange graphs between tools. The decoder maps a GraphML document onto a
// [graph.Graph]: one node per <node> element, one edge per <edge> element.
// Node <data> values are kept as attributes, resolved through the document's
// <key> declarations; edge data is ignored.
package graphio

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/lkirchner/graphlens/pkg/errors"
	"github.com/lkirchner/graphlens/pkg/graph"
)

// xmlDocument mirrors the subset of GraphML we consume.
type xmlDocument struct {
	XMLName xml.Name   `xml:"graphml"`
	Keys    []xmlKey   `xml:"key"`
	Graphs  []xmlGraph `xml:"graph"`
}

type xmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
}

type xmlGraph struct {
	ID          string    `xml:"id,attr"`
	EdgeDefault string    `xml:"edgedefault,attr"`
	Nodes       []xmlNode `xml:"node"`
	Edges       []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// ReadGraphML decodes a GraphML document into a Graph.
//
// The first <graph> element is used; GraphML files produced by graph writers
// in the wild contain exactly one. Edges referencing undeclared nodes make
// the document malformed.
func ReadGraphML(r io.Reader) (*graph.Graph, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedGraph, err, "decode graphml")
	}
	if len(doc.Graphs) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedGraph, "graphml document contains no <graph> element")
	}

	src := doc.Graphs[0]
	g := graph.New()
	g.SetDirected(src.EdgeDefault == "directed")

	// <data> elements reference <key> declarations; resolve to attr.name
	// where declared, falling back to the raw key id.
	keyNames := make(map[string]string, len(doc.Keys))
	for _, k := range doc.Keys {
		if k.AttrName != "" {
			keyNames[k.ID] = k.AttrName
		}
	}

	for _, n := range src.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "<node> element without id")
		}
		g.AddNode(n.ID)
		for _, d := range n.Data {
			name := keyNames[d.Key]
			if name == "" {
				name = d.Key
			}
			if name != "" {
				g.SetAttr(n.ID, name, d.Value)
			}
		}
	}
	for _, e := range src.Edges {
		if !g.Has(e.Source) {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "edge references undeclared node %q", e.Source)
		}
		if !g.Has(e.Target) {
			return nil, errors.New(errors.ErrCodeMalformedGraph, "edge references undeclared node %q", e.Target)
		}
		g.AddEdge(e.Source, e.Target)
	}
	return g, nil
}

// ReadGraphMLFile decodes the GraphML file at path.
func ReadGraphMLFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return ReadGraphML(f)
}
