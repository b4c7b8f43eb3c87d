// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: turning predecessor links into an ordered route.

package dijkstra

import (
	"fmt"
	"strings"
)

// Path is an ordered route from the run source to a destination.
//
// A Path with no vertices is the "no path" value: the destination exists but
// is unreachable, and Distance is Infinity.
type Path struct {
	Vertices []string // source first, destination last
	Distance int64    // total weight
}

// Found reports whether the path reaches its destination.
func (p Path) Found() bool { return len(p.Vertices) > 0 }

// Len returns the number of vertices on the path.
func (p Path) Len() int { return len(p.Vertices) }

// Hops returns the number of edges on the path (0 for no path).
func (p Path) Hops() int {
	if len(p.Vertices) == 0 {
		return 0
	}
	return len(p.Vertices) - 1
}

// String renders "A -> B -> C (3)", or "no path".
func (p Path) String() string {
	if !p.Found() {
		return "no path"
	}
	return fmt.Sprintf("%s (%d)", strings.Join(p.Vertices, " -> "), p.Distance)
}

// PathTo rebuilds the shortest path from the run source to dest.
//
// Errors:
//   - ErrNotFound: dest does not belong to the run's graph.
//   - ErrPathCycle: the predecessor chain is longer than |V| or ends away from
//     the source (not produced by Run; guards hand-built or corrupted state).
//
// Complexity: O(length of the path).
func (r *Result) PathTo(dest string) (Path, error) {
	n, err := r.lookup(dest)
	if err != nil {
		return Path{}, err
	}
	if n.dist == Infinity {
		return Path{Distance: Infinity}, nil
	}

	// 1) Walk back to the source, at most |V| vertices.
	limit := len(r.nodes)
	var rev []string
	for cur := n; cur != nil; cur = cur.prev {
		if len(rev) == limit {
			return Path{}, fmt.Errorf("%w: more than %d steps from %q", ErrPathCycle, limit, dest)
		}
		rev = append(rev, cur.vertex)
	}
	if rev[len(rev)-1] != r.source {
		return Path{}, fmt.Errorf("%w: chain from %q ends at %q", ErrPathCycle, dest, rev[len(rev)-1])
	}

	// 2) Reverse into source → dest order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return Path{Vertices: rev, Distance: n.dist}, nil
}

// PathBetween is PathTo with an explicit source, which must be the run source.
//
// Errors:
//   - ErrNotFound: source or dest does not belong to the run's graph.
//   - ErrSourceMismatch: source is a vertex of the graph but not the run source.
//   - ErrPathCycle: see PathTo.
func (r *Result) PathBetween(source, dest string) (Path, error) {
	if _, err := r.lookup(source); err != nil {
		return Path{}, err
	}
	if source != r.source {
		return Path{}, fmt.Errorf("%w: asked %q, run from %q", ErrSourceMismatch, source, r.source)
	}

	return r.PathTo(dest)
}
