// SPDX-License-Identifier: MIT
//
// File: result.go
// Role: the immutable distance/predecessor table produced by Run.

package dijkstra

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stats counts the work done by one run.
type Stats struct {
	Extractions  int           // finite-distance nodes removed from the queue
	Finalized    int           // nodes whose distance became final
	Relaxations  int           // edges examined towards non-finalized neighbours
	DecreaseKeys int           // strict improvements pushed into the queue
	Elapsed      time.Duration // wall time of the main loop
}

// Result is the outcome of one run. It is never modified after Run returns
// and is safe for concurrent reads.
type Result struct {
	id       uuid.UUID
	source   string
	strategy Strategy
	order    []string         // vertex IDs, sorted
	nodes    map[string]*Node // vertex ID → node
	stats    Stats
}

// ID returns the random identifier of the run (also the "run" log key).
func (r *Result) ID() uuid.UUID { return r.id }

// Source returns the source vertex of the run.
func (r *Result) Source() string { return r.source }

// Strategy returns the priority structure the run used.
func (r *Result) Strategy() Strategy { return r.strategy }

// Stats returns the run counters.
func (r *Result) Stats() Stats { return r.stats }

// Len returns the number of vertices covered by the result.
func (r *Result) Len() int { return len(r.order) }

// Vertices returns every vertex of the graph the run was computed over, sorted.
func (r *Result) Vertices() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Node returns a copy of the final algorithm state of v.
//
// Errors:
//   - ErrNotFound: v does not belong to the run's graph.
func (r *Result) Node(v string) (Node, error) {
	n, err := r.lookup(v)
	if err != nil {
		return Node{}, err
	}

	return *n, nil
}

// Distance returns the shortest distance from the source to v, or Infinity
// when v is unreachable.
//
// Errors:
//   - ErrNotFound: v does not belong to the run's graph.
func (r *Result) Distance(v string) (int64, error) {
	n, err := r.lookup(v)
	if err != nil {
		return 0, err
	}

	return n.dist, nil
}

// Predecessor returns the vertex before v on its shortest path; "" for the
// source and for unreachable vertices.
//
// Errors:
//   - ErrNotFound: v does not belong to the run's graph.
func (r *Result) Predecessor(v string) (string, error) {
	n, err := r.lookup(v)
	if err != nil {
		return "", err
	}

	return n.Predecessor(), nil
}

// Reachable reports whether v belongs to the graph and has a finite distance.
func (r *Result) Reachable(v string) bool {
	n, ok := r.nodes[v]
	return ok && n.dist != Infinity
}

// Distances returns a fresh vertex → distance map (Infinity for unreachable).
func (r *Result) Distances() map[string]int64 {
	out := make(map[string]int64, len(r.nodes))
	for v, n := range r.nodes {
		out[v] = n.dist
	}

	return out
}

// Predecessors returns a fresh vertex → predecessor map ("" for the source and
// unreachable vertices).
func (r *Result) Predecessors() map[string]string {
	out := make(map[string]string, len(r.nodes))
	for v, n := range r.nodes {
		out[v] = n.Predecessor()
	}

	return out
}

func (r *Result) lookup(v string) (*Node, error) {
	n, ok := r.nodes[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, v)
	}

	return n, nil
}
