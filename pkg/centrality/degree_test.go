package centrality

import (
	"math"
	"testing"

	"github.com/lkirchner/graphlens/pkg/graph"
)

func star(leaves int) *graph.Graph {
	g := graph.New()
	g.AddNode("hub")
	for i := 0; i < leaves; i++ {
		g.AddEdge("hub", string(rune('a'+i)))
	}
	return g
}

func TestDegreeLength(t *testing.T) {
	g := star(4)
	scores := Degree(g)
	if len(scores) != g.NodeCount() {
		t.Fatalf("len(scores) = %d, want %d", len(scores), g.NodeCount())
	}
}

func TestDegreeNormalization(t *testing.T) {
	// Star with 4 leaves: hub has degree 4 of max 4 -> 1.0; leaves 1/4.
	scores := Degree(star(4))
	if scores[0].Node != "hub" {
		t.Fatalf("first score node = %s, want hub", scores[0].Node)
	}
	if math.Abs(scores[0].Value-1.0) > 1e-12 {
		t.Errorf("hub centrality = %g, want 1.0", scores[0].Value)
	}
	for _, s := range scores[1:] {
		if math.Abs(s.Value-0.25) > 1e-12 {
			t.Errorf("leaf %s centrality = %g, want 0.25", s.Node, s.Value)
		}
	}
}

func TestDegreeEdgelessGraph(t *testing.T) {
	g := graph.New()
	for _, n := range []string{"a", "b", "c"} {
		g.AddNode(n)
	}
	for _, s := range Degree(g) {
		if s.Value != 0 {
			t.Errorf("edgeless graph: centrality of %s = %g, want 0", s.Node, s.Value)
		}
	}
}

func TestDegreeTinyGraphs(t *testing.T) {
	if got := Degree(graph.New()); len(got) != 0 {
		t.Errorf("empty graph should yield no scores, got %d", len(got))
	}

	single := graph.New()
	single.AddNode("only")
	scores := Degree(single)
	if len(scores) != 1 || scores[0].Value != 0 {
		t.Errorf("single-node graph: scores = %v, want one zero score", scores)
	}
}

func TestSortedNonIncreasing(t *testing.T) {
	scores := Degree(star(5))
	sorted := Sorted(scores)

	if len(sorted) != len(scores) {
		t.Fatalf("Sorted changed length: %d != %d", len(sorted), len(scores))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Value > sorted[i-1].Value {
			t.Fatalf("scores not non-increasing at %d: %g > %g", i, sorted[i].Value, sorted[i-1].Value)
		}
	}
	if sorted[0].Node != "hub" {
		t.Errorf("highest score = %s, want hub", sorted[0].Node)
	}

	// Input order untouched.
	if scores[0].Node != "hub" || scores[1].Node != "a" {
		t.Error("Sorted should not mutate its input")
	}
}

func TestSortedStableOnTies(t *testing.T) {
	g := graph.New()
	g.AddEdge("a", "b")
	g.AddEdge("c", "d")
	sorted := Sorted(Degree(g))
	want := []string{"a", "b", "c", "d"}
	for i, s := range sorted {
		if s.Node != want[i] {
			t.Errorf("tie order = %v, want %v", sorted, want)
			break
		}
	}
}

func TestValues(t *testing.T) {
	vals := Values([]Score{{Node: "a", Value: 0.5}, {Node: "b", Value: 0.25}})
	if len(vals) != 2 || vals[0] != 0.5 || vals[1] != 0.25 {
		t.Errorf("Values = %v", vals)
	}
}
