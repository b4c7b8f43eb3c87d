// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: per-run, per-vertex algorithm state.

package dijkstra

// State is the lifecycle phase of a vertex within one run.
type State int

const (
	// StateUnvisited: no path reached the vertex yet (distance = Infinity).
	StateUnvisited State = iota
	// StateFrontier: finite tentative distance, not yet finalized.
	StateFrontier
	// StateFinalized: shortest distance proven; distance and predecessor frozen.
	StateFinalized
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateUnvisited:
		return "unvisited"
	case StateFrontier:
		return "frontier"
	case StateFinalized:
		return "finalized"
	default:
		return "invalid"
	}
}

// Node is the algorithm payload for one vertex in one run.
// Nodes are created by Run (or NewNode for standalone queue use) and are owned
// by the Result they end up in; they are never shared between runs.
type Node struct {
	vertex string
	dist   int64
	prev   *Node
	known  bool

	// index is the 1-based heap slot (< 1 = not in a heap), or the slot inside
	// the current bucket for BucketQueue (-1 = not queued).
	index int
	// bucket is the bucket key the node is filed under (BucketQueue only).
	bucket int64
}

// NewNode returns an unvisited node for vertex with distance Infinity.
func NewNode(vertex string) *Node {
	return &Node{vertex: vertex, dist: Infinity, index: -1}
}

// Vertex returns the vertex ID this node tracks.
func (n *Node) Vertex() string { return n.vertex }

// Distance returns the tentative (or, once finalized, shortest) distance.
func (n *Node) Distance() int64 { return n.dist }

// SetDistance lowers the tentative distance. Queue implementations rely on
// callers invoking DecreaseKey right after a change made while queued.
func (n *Node) SetDistance(d int64) { n.dist = d }

// Predecessor returns the vertex preceding this one on the shortest path, or ""
// for the source and unreached vertices.
func (n *Node) Predecessor() string {
	if n.prev == nil {
		return ""
	}
	return n.prev.vertex
}

// Known reports whether the node is finalized.
func (n *Node) Known() bool { return n.known }

// Reachable reports whether a finite distance was found.
func (n *Node) Reachable() bool { return n.dist != Infinity }

// State reports the lifecycle phase.
func (n *Node) State() State {
	switch {
	case n.known:
		return StateFinalized
	case n.dist != Infinity:
		return StateFrontier
	default:
		return StateUnvisited
	}
}
