// SPDX-License-Identifier: MIT

// Package builder produces deterministic road-graph fixtures for tests,
// examples and benchmarks of the shortest-path engine.
//
// A Constructor adds vertices and edges to an existing *core.Graph; BuildGraph
// creates the graph and applies constructors in order, so topologies can be
// layered (a Grid plus a sprinkling of RandomSparse shortcuts).
//
// Constructors:
//
//	Path(n)            0—1—…—(n-1)
//	Cycle(n)           Path(n) closed back to 0
//	Star(n)            hub 0 joined to 1…n-1
//	Complete(n)        every pair once
//	Grid(rows, cols)   row-major grid, IDs "r,c"
//	RandomSparse(n, p) each pair joined with probability p
//
// Weights come from the configured weight function: constant
// DefaultEdgeWeight unless WithConstantWeight, WithUniformWeight or
// WithWeightFn say otherwise. All output is reproducible for a fixed seed.
package builder
