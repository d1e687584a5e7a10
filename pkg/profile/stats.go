package profile

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"github.com/lkirchner/graphlens/pkg/graph"
)

// Stats holds the structural measurements of a graph.
type Stats struct {
	Nodes    int     `json:"nodes"`
	Edges    int     `json:"edges"`
	Directed bool    `json:"directed"`
	Density  float64 `json:"density"`

	MinDegree    int     `json:"min_degree"`
	MaxDegree    int     `json:"max_degree"`
	MeanDegree   float64 `json:"mean_degree"`
	MedianDegree float64 `json:"median_degree"`
	Isolates     int     `json:"isolates"`

	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`

	// Assortativity is the degree assortativity coefficient, the Pearson
	// correlation of degrees across edge endpoints. Only computed for the
	// complete preset; NaN when the graph has no edges.
	Assortativity float64 `json:"assortativity,omitempty"`
}

// DegreeBucket is one row of the degree distribution.
type DegreeBucket struct {
	Degree int `json:"degree"`
	Count  int `json:"count"`
}

// ComputeStats measures the graph. Degree statistics use gonum/stat;
// component structure uses gonum/graph/topo.
func ComputeStats(g *graph.Graph) Stats {
	s := Stats{
		Nodes:    g.NodeCount(),
		Edges:    g.EdgeCount(),
		Directed: g.Directed(),
	}
	if s.Nodes == 0 {
		return s
	}
	if s.Nodes > 1 {
		s.Density = 2 * float64(s.Edges) / (float64(s.Nodes) * float64(s.Nodes-1))
	}

	degs := g.Degrees()
	fdegs := make([]float64, len(degs))
	s.MinDegree = degs[0]
	for i, d := range degs {
		fdegs[i] = float64(d)
		if d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolates++
		}
	}
	s.MeanDegree = stat.Mean(fdegs, nil)

	sorted := make([]float64, len(fdegs))
	copy(sorted, fdegs)
	sort.Float64s(sorted)
	s.MedianDegree = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	comps := topo.ConnectedComponents(g.Undirected())
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.LargestComponent {
			s.LargestComponent = len(c)
		}
	}

	return s
}

// DegreeDistribution buckets nodes by degree, ordered by ascending degree.
func DegreeDistribution(g *graph.Graph) []DegreeBucket {
	counts := make(map[int]int)
	for _, d := range g.Degrees() {
		counts[d]++
	}
	dist := make([]DegreeBucket, 0, len(counts))
	for d, c := range counts {
		dist = append(dist, DegreeBucket{Degree: d, Count: c})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].Degree < dist[j].Degree })
	return dist
}

// Assortativity computes the degree assortativity coefficient: the Pearson
// correlation between the degrees of connected node pairs, with each
// undirected edge contributing both orientations.
func Assortativity(g *graph.Graph) float64 {
	var xs, ys []float64
	it := g.Undirected().Edges()
	for it.Next() {
		e := it.Edge()
		df := float64(g.Degree(e.From().ID()))
		dt := float64(g.Degree(e.To().ID()))
		xs = append(xs, df, dt)
		ys = append(ys, dt, df)
	}
	return stat.Correlation(xs, ys, nil)
}
