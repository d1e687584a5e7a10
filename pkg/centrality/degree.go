// Package centrality computes node centrality scores.
package centrality

import (
	"sort"

	"github.com/lkirchner/graphlens/pkg/graph"
)

// Score is a centrality value attached to a node.
type Score struct {
	Node  string  `json:"node"`
	Value float64 `json:"value"`
}

// Degree computes normalized degree centrality for every node: the node's
// degree divided by n-1, the maximum possible degree in a simple graph with
// n nodes. A graph with fewer than two nodes yields all-zero scores.
//
// The result has one entry per node, in node insertion order.
func Degree(g *graph.Graph) []Score {
	n := g.NodeCount()
	scores := make([]Score, n)
	var norm float64
	if n > 1 {
		norm = 1 / float64(n-1)
	}
	for i := 0; i < n; i++ {
		scores[i] = Score{
			Node:  g.Name(int64(i)),
			Value: float64(g.Degree(int64(i))) * norm,
		}
	}
	return scores
}

// Sorted returns a copy of scores ordered by descending value.
// Ties keep their relative node order, so output is deterministic.
func Sorted(scores []Score) []Score {
	out := make([]Score, len(scores))
	copy(out, scores)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// Values extracts the score magnitudes, preserving order.
func Values(scores []Score) []float64 {
	vals := make([]float64, len(scores))
	for i, s := range scores {
		vals[i] = s.Value
	}
	return vals
}
