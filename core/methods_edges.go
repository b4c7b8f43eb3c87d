// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, Edges, EdgeCount, MaxWeight, Validate.
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence ("e1" < "e2" < "e10").

package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge between from and to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight and loop policy.
//  2. Lock, create endpoints, check the multi-edge policy.
//  3. Allocate the edge ID and store the edge.
//  4. Append the edge to both adjacency lists (once for a self-loop).
//
// Errors:
//   - ErrEmptyVertexID, ErrInvalidWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized with multi-edges enabled, O(deg(from)) otherwise.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s—%s weight=%d", ErrInvalidWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Endpoints and parallel-edge policy
	g.ensureVertex(from)
	g.ensureVertex(to)
	if !g.allowMulti {
		for _, e := range g.adjacency[from] {
			if (e.From == from && e.To == to) || (e.From == to && e.To == from) {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	// 3) Store
	g.nextEdgeID++
	e := &Edge{
		ID:     string(strconv.AppendUint([]byte{edgeIDPrefix}, g.nextEdgeID, 10)),
		From:   from,
		To:     to,
		Weight: weight,
	}
	g.edges[e.ID] = e

	// 4) Link adjacency
	g.adjacency[from] = append(g.adjacency[from], e)
	if from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// Edges returns all edges ordered by creation.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if len(out[i].ID) != len(out[j].ID) {
			return len(out[i].ID) < len(out[j].ID)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// MaxWeight returns the largest edge weight, or 0 for an edgeless graph.
// Complexity: O(E).
func (g *Graph) MaxWeight() int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var max int64
	for _, e := range g.edges {
		if e.Weight > max {
			max = e.Weight
		}
	}

	return max
}

// Validate scans every edge and reports all negative weights at once.
// Each entry of the returned *multierror.Error wraps ErrInvalidWeight, so
// errors.Is(err, ErrInvalidWeight) holds for the aggregate.
//
// AddEdge already rejects negative weights; Validate catches edges whose
// Weight was modified through the pointers returned by Edges or IncidentEdges.
// Complexity: O(E log E).
func (g *Graph) Validate() error {
	var result *multierror.Error
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			result = multierror.Append(result,
				fmt.Errorf("%w: edge %s %s—%s weight=%d", ErrInvalidWeight, e.ID, e.From, e.To, e.Weight))
		}
	}

	return result.ErrorOrNil()
}
