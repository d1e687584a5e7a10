package profile

import (
	"math"
	"strconv"
)

// formatFloat renders a measurement with four decimals, and NaN (possible
// for assortativity on edgeless graphs) as a dash.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "–"
	}
	return strconv.FormatFloat(f, 'f', 4, 64)
}

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Graph profile – {{.Input}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 54rem; color: #1a1a2e; }
  h1 { font-size: 1.5rem; }
  h2 { font-size: 1.1rem; margin-top: 2rem; border-bottom: 1px solid #ddd; padding-bottom: .3rem; }
  table { border-collapse: collapse; margin-top: .5rem; }
  th, td { text-align: left; padding: .25rem 1.25rem .25rem 0; }
  thead th { border-bottom: 1px solid #ccc; }
  .meta { color: #777; font-size: .85rem; }
  .num { font-variant-numeric: tabular-nums; }
  figure { margin: 1rem 0; overflow-x: auto; }
</style>
</head>
<body>
<h1>Graph profile</h1>
<p class="meta">input {{.Input}} · preset {{.Preset}} · run {{.ID}} · {{.CreatedAt.Format "2006-01-02 15:04:05 UTC"}}</p>

<h2>Structure</h2>
<table>
  <tr><th>Nodes</th><td class="num">{{.Stats.Nodes}}</td></tr>
  <tr><th>Edges</th><td class="num">{{.Stats.Edges}}</td></tr>
  <tr><th>Declared directed</th><td>{{if .Stats.Directed}}yes{{else}}no{{end}}</td></tr>
  <tr><th>Density</th><td class="num">{{f4 .Stats.Density}}</td></tr>
  <tr><th>Connected components</th><td class="num">{{.Stats.Components}}</td></tr>
  <tr><th>Largest component</th><td class="num">{{.Stats.LargestComponent}}</td></tr>
  <tr><th>Isolated nodes</th><td class="num">{{.Stats.Isolates}}</td></tr>
</table>

<h2>Degree</h2>
<table>
  <tr><th>Minimum</th><td class="num">{{.Stats.MinDegree}}</td></tr>
  <tr><th>Maximum</th><td class="num">{{.Stats.MaxDegree}}</td></tr>
  <tr><th>Mean</th><td class="num">{{f4 .Stats.MeanDegree}}</td></tr>
  <tr><th>Median</th><td class="num">{{f4 .Stats.MedianDegree}}</td></tr>
{{if .HasSection "assortativity"}}  <tr><th>Assortativity</th><td class="num">{{f4 .Stats.Assortativity}}</td></tr>
{{end}}</table>

{{if .HasSection "distribution"}}<h2>Degree distribution</h2>
<table>
  <thead><tr><th>Degree</th><th>Nodes</th></tr></thead>
  <tbody>
{{range .DegreeDist}}  <tr><td class="num">{{.Degree}}</td><td class="num">{{.Count}}</td></tr>
{{end}}  </tbody>
</table>
{{end}}
{{if .HasSection "hubs"}}<h2>Top hubs by degree centrality</h2>
<table>
  <thead><tr><th>Node</th><th>Centrality</th></tr></thead>
  <tbody>
{{range .Hubs}}  <tr><td>{{.Node}}</td><td class="num">{{f4 .Value}}</td></tr>
{{end}}  </tbody>
</table>
{{end}}
{{if and (.HasSection "drawing") .GraphSVG}}<h2>Drawing</h2>
<figure>{{.GraphSVG}}</figure>
{{end}}
</body>
</html>
`
