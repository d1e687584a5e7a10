// Package pkg holds the graphlens libraries.
//
// The analysis flow through the packages:
//
//	graph/graph.dot ──► [render]  ──► graph/graph.ps
//	graph/graph.graphml ──► [graphio] ──► [graph]
//	                                        │
//	                 ┌──────────────────────┤
//	                 ▼                      ▼
//	            [profile] ──► graph.html  [centrality] ──► [plot] ──► graph.png
//
// [pipeline] orchestrates the steps and adds caching ([cache]), run history
// ([store]), and viewer integration ([viewer]). [config] supplies defaults
// from graphlens.toml, and [errors] carries the coded errors everything
// returns.
package pkg
