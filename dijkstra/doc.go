// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a core.Graph with
// non-negative integer weights, using one of two interchangeable priority
// structures.
//
// Strategies:
//
//	– StrategyBinaryHeap (default)
//	    Index-aware binary min-heap. Every vertex is inserted once; decrease-key
//	    relocates a node through its stored heap position in O(log V).
//	    Time O((V + E) log V), Space O(V).
//
//	– StrategyBucketQueue
//	    Dial's algorithm. One bucket per integer distance in
//	    [0, MaxWeight·|V|], scanned by a cursor that never moves backward.
//	    Time O(V + E + D), Space O(V + D), D = MaxWeight·|V|.
//	    Wins when D is small next to V+E (short roads, few distinct costs);
//	    memory and scan time grow with D, so the bucket count is capped by
//	    WithMaxBuckets.
//
// Both strategies satisfy the Queue contract and produce identical distance
// tables. Predecessors are identical too whenever every edge weight is
// positive: a frontier vertex reached at the same distance through several
// neighbours keeps the one with the smallest vertex ID, which does not depend
// on the order in which equal-distance vertices leave the queue.
//
// Limits:
//
//	– WithInfEdgeThreshold(t)  edges with weight ≥ t are closed: never relaxed
//	                           and left out of MaxWeight for the bucket range.
//	– WithMaxDistance(d)       vertices farther than d stay at Infinity; the
//	                           bucket range shrinks to d when d is smaller.
//
// Vertex lifecycle within a run:
//
//	StateUnvisited (distance = Infinity)
//	  → StateFrontier (finite tentative distance)
//	  → StateFinalized (distance and predecessor frozen)
//
// Each Run builds fresh Node state; a Result is never touched again after Run
// returns, so results from different sources can be compared side by side.
// Runs poll ctx once per extraction and, when cancelled, return ErrAborted and
// no result.
//
// Errors (sentinel):
//
//	– ErrNilGraph, ErrEmptySource  invalid arguments.
//	– ErrVertexNotFound            source or queried vertex not in the graph.
//	– ErrInvalidWeight             the graph holds a negative weight.
//	– ErrUnknownStrategy           Options.Strategy is not a known value.
//	– ErrBucketRangeTooLarge       MaxWeight·|V| exceeds Options.MaxBuckets.
//	– ErrAborted                   ctx was cancelled mid-run.
//	– ErrSourceMismatch            PathBetween asked about a foreign source.
//	– ErrPathCycle                 predecessor chain longer than |V|.
//
// An unreachable destination is not an error: PathTo returns a Path whose
// Found() is false.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithBucketQueue())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, _ := res.PathTo("D")
//	fmt.Println(p) // A -> B -> C -> D (4)
package dijkstra
