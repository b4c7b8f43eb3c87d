// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing.
//
// Adding an existing ID is not an error: the options are applied to the stored
// vertex, so metadata can be attached after an edge auto-created the vertex.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, opts ...VertexOption) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v := g.ensureVertex(id)
	for _, opt := range opts {
		opt(v)
	}

	return nil
}

// ensureVertex returns the vertex registered under id, creating it (with an
// empty adjacency bucket) when absent. Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) *Vertex {
	if v, ok := g.vertices[id]; ok {
		return v
	}
	v := &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.vertices[id] = v
	g.adjacency[id] = nil

	return v
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the stored vertex. Treat it as read-only.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id (a self-loop counts once).
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(g.adjacency[id]), nil
}
