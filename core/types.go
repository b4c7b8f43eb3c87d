// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrInvalidEdge indicates Opposite was asked about a vertex that is not an
	// endpoint of the edge (or about a nil edge).
	ErrInvalidEdge = errors.New("core: vertex is not an endpoint of edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a place in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata carries display or geometric attributes (coordinates, labels);
// the shortest-path engine never reads it.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge is an undirected road between From and To.
// From and To are symmetric; the names only record insertion order.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs.
	From string
	To   string

	// Weight is the non-negative cost of travelling the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// VertexOption configures a vertex when it is first added.
type VertexOption func(*Vertex)

// WithMetadata stores key=value in the vertex Metadata.
func WithMetadata(key string, value interface{}) VertexOption {
	return func(v *Vertex) { v.Metadata[key] = value }
}

// Graph is an undirected, weighted graph stored as adjacency lists.
//
// mu guards every field below it. nextEdgeID is only touched under the write lock.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64             // edge ID counter
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[vertexID] lists every edge incident to vertexID in insertion order.
	adjacency map[string][]*Edge
}

// NewGraph creates an empty Graph with the given options.
// By default loops and multi-edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
