// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Incidence queries used by the relaxation loop: IncidentEdges, Opposite, NeighborIDs.

package core

import (
	"fmt"
	"sort"
)

// IncidentEdges returns every edge touching id, in insertion order.
// The slice is a copy; the *Edge values are shared and must be treated as read-only.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	list, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]*Edge, len(list))
	copy(out, list)

	return out, nil
}

// Opposite returns the endpoint of e that is not id. For a self-loop it
// returns id itself.
//
// Errors:
//   - ErrInvalidEdge: e is nil or id is not one of its endpoints.
//
// Complexity: O(1).
func (g *Graph) Opposite(id string, e *Edge) (string, error) {
	switch {
	case e == nil:
		return "", fmt.Errorf("%w: nil edge", ErrInvalidEdge)
	case e.From == id:
		return e.To, nil
	case e.To == id:
		return e.From, nil
	default:
		return "", fmt.Errorf("%w: %q not on %s (%s—%s)", ErrInvalidEdge, id, e.ID, e.From, e.To)
	}
}

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from IncidentEdges.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.IncidentEdges(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	var other string
	for _, e := range edges {
		if other, err = g.Opposite(id, e); err != nil {
			return nil, err
		}
		seen[other] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}
