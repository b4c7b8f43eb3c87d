// SPDX-License-Identifier: MIT

// Package core provides the in-memory road graph consumed by the shortest-path
// engine: vertices (cities, intersections) joined by undirected, weighted edges.
//
// Storage is an adjacency list, adjacency[vertexID] = []*Edge, so incidence
// queries cost O(deg(v)) on sparse graphs. Every edge is listed once under each
// endpoint; a self-loop (only with WithLoops) is listed once.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows several parallel roads between the same endpoints.
//	    Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Construction
//	AddVertex(id string, opts ...VertexOption) error            // O(1)
//	AddEdge(from, to string, weight int64) (edgeID string, err)  // O(1)†
//
//	// Queries
//	HasVertex(id) bool, Vertex(id) (*Vertex, error)              // O(1)
//	Vertices() []string, Edges() []*Edge                         // sorted
//	IncidentEdges(id) ([]*Edge, error)                           // O(deg)
//	Opposite(id string, e *Edge) (string, error)                 // O(1)
//	MaxWeight() int64, Validate() error                          // O(E)
//
//	† O(deg) when multi-edges are disabled (parallel-edge check).
//
// Weights are non-negative int64 values. AddEdge rejects negative weights with
// ErrInvalidWeight, and Validate re-checks the whole catalog because edges are
// handed out by pointer.
//
// All methods are safe for concurrent use; a Graph may be shared read-only by
// any number of sequential or parallel shortest-path runs.
package core
