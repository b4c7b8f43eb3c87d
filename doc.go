// Package tripplan computes single-source shortest paths over weighted,
// undirected road graphs.
//
// The module is organised in three subpackages:
//
//	core/     — Graph, Vertex, Edge and the thread-safe adjacency store
//	dijkstra/ — the relaxation engine with a binary heap or a bucket queue,
//	            run results and path reconstruction
//	builder/  — deterministic graph fixtures (paths, grids, random sparse)
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	res, _ := dijkstra.ShortestPaths(g, "A", dijkstra.WithBucketQueue())
//	p, _ := res.PathTo("C") // A -> B -> C (3)
package tripplan
