// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: the relaxation loop shared by every Queue strategy.

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/inconshreveable/log15"

	"github.com/katalvlaran/tripplan/core"
)

// ShortestPaths is Run with context.Background().
func ShortestPaths(g *core.Graph, source string, opts ...Option) (*Result, error) {
	return Run(context.Background(), g, source, opts...)
}

// Run computes shortest distances and predecessors from source to every vertex
// of g with the priority structure selected by opts.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrInvalidWeight, all offenders listed).
//  5. The strategy must be known (ErrUnknownStrategy); the bucket queue also
//     needs min(MaxWeight·|V|, MaxDistance)+1 ≤ MaxBuckets
//     (ErrBucketRangeTooLarge), MaxWeight taken over open edges only.
//
// Relaxation replaces a tentative distance only on a strictly smaller
// candidate. An equal-cost candidate changes the predecessor alone, and only
// when the new predecessor's ID sorts before the current one; distances are
// unaffected. With S–Z(2), S–B(1), B–Z(1) the predecessor of Z is therefore B,
// not S. This keeps predecessors identical across strategies whenever every
// weight is positive.
//
// Edges with weight ≥ Options.InfEdgeThreshold are skipped. Candidates above
// Options.MaxDistance are discarded, so such vertices end at Infinity.
//
// ctx is polled once per extraction. A cancelled run returns an error wrapping
// both ErrAborted and ctx.Err(), and no partial result.
//
// g is only read; it must not be mutated while the run is in progress.
//
// Complexity:
//   - Binary heap:   Time O((V + E) log V), Space O(V).
//   - Bucket queue:  Time O(V + E + D), Space O(V + D), D = MaxWeight·|V|.
func Run(ctx context.Context, g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if err := g.Validate(); err != nil {
		cfg.Logger.Warn("graph rejected", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidWeight, err)
	}

	// 3) Fresh per-run state
	q, err := newQueue(g, cfg)
	if err != nil {
		return nil, err
	}
	res := &Result{
		id:       uuid.New(),
		source:   source,
		strategy: cfg.Strategy,
		order:    g.Vertices(),
	}
	res.nodes = make(map[string]*Node, len(res.order))

	r := &runner{
		g:       g,
		q:       q,
		nodes:   res.nodes,
		maxDist: cfg.MaxDistance,
		infEdge: cfg.InfEdgeThreshold,
		log:     cfg.Logger.New("run", res.id.String(), "strategy", cfg.Strategy.String(), "source", source),
	}
	r.log.Debug("run started", "vertices", len(res.order), "edges", g.EdgeCount())

	// 4) Initialize and run the main loop
	start := time.Now()
	r.init(res.order, source)
	if err = r.process(ctx); err != nil {
		if errors.Is(err, ErrAborted) {
			r.log.Warn("run aborted", "err", err, "finalized", r.stats.Finalized)
		} else {
			r.log.Error("run failed", "err", err)
		}
		return nil, err
	}
	r.stats.Elapsed = time.Since(start)
	res.stats = r.stats

	r.log.Debug("run finished",
		"finalized", r.stats.Finalized,
		"extractions", r.stats.Extractions,
		"relaxations", r.stats.Relaxations,
		"decrease_keys", r.stats.DecreaseKeys,
		"elapsed", r.stats.Elapsed)

	return res, nil
}

// newQueue allocates the priority structure selected by cfg for g.
func newQueue(g *core.Graph, cfg Options) (Queue, error) {
	switch cfg.Strategy {
	case StrategyBinaryHeap:
		return NewBinaryHeap(g.VertexCount()), nil

	case StrategyBucketQueue:
		maxW := openMaxWeight(g, cfg.InfEdgeThreshold)
		maxDist, err := bucketBound(maxW, int64(g.VertexCount()), cfg.MaxDistance, cfg.MaxBuckets)
		if err != nil {
			return nil, err
		}
		return NewBucketQueue(maxDist), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
}

// openMaxWeight returns the largest weight below threshold, 0 for none.
func openMaxWeight(g *core.Graph, threshold int64) int64 {
	var maxW int64
	for _, e := range g.Edges() {
		if e.Weight < threshold && e.Weight > maxW {
			maxW = e.Weight
		}
	}

	return maxW
}

// bucketBound returns the largest key a run can file: maxWeight·vertices (the
// longest simple path) or maxDistance, whichever is smaller. It fails when the
// bucket array would not fit maxBuckets.
func bucketBound(maxWeight, vertices, maxDistance, maxBuckets int64) (int64, error) {
	bound := maxDistance
	if maxWeight == 0 || vertices <= (math.MaxInt64-1)/maxWeight {
		bound = min(bound, maxWeight*vertices)
	}
	if bound == Infinity {
		return 0, fmt.Errorf("%w: %d×%d overflows", ErrBucketRangeTooLarge, maxWeight, vertices)
	}
	if bound >= maxBuckets {
		return 0, fmt.Errorf("%w: need %d buckets, cap %d", ErrBucketRangeTooLarge, bound+1, maxBuckets)
	}

	return bound, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph      // read-only input
	q       Queue            // selected priority structure
	nodes   map[string]*Node // vertex ID → per-run node
	maxDist int64            // Options.MaxDistance
	infEdge int64            // Options.InfEdgeThreshold
	stats   Stats
	log     log15.Logger
}

// init creates one unvisited node per vertex, sets the source to 0 and queues
// every node.
func (r *runner) init(order []string, source string) {
	for _, v := range order {
		r.nodes[v] = NewNode(v)
	}
	r.nodes[source].dist = 0

	for _, v := range order {
		r.q.Insert(r.nodes[v])
	}
}

// process extracts and finalizes vertices until the queue is exhausted or the
// minimum left is unreachable.
func (r *runner) process(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrAborted, err)
		}

		u, err := r.q.ExtractMin()
		if errors.Is(err, ErrEmptyStructure) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		// Everything still queued is unreachable.
		if u.dist == Infinity {
			return nil
		}
		r.stats.Extractions++

		u.known = true
		r.stats.Finalized++

		if err = r.relax(u); err != nil {
			return err
		}
	}
}

// relax tries to improve every non-finalized neighbour of the finalized node u.
func (r *runner) relax(u *Node) error {
	edges, err := r.g.IncidentEdges(u.vertex)
	if err != nil {
		return fmt.Errorf("%w: incident edges of %q: %w", ErrInternal, u.vertex, err)
	}

	var (
		other string
		v     *Node
		ok    bool
		cand  int64
	)
	for _, e := range edges {
		if other, err = r.g.Opposite(u.vertex, e); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if v, ok = r.nodes[other]; !ok {
			return fmt.Errorf("%w: vertex %q appeared during the run", ErrInternal, other)
		}
		if v.known {
			continue
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s weight=%d", ErrInvalidWeight, e.ID, e.Weight)
		}
		if e.Weight >= r.infEdge {
			continue // closed
		}

		r.stats.Relaxations++
		cand = saturatingAdd(u.dist, e.Weight)
		if cand > r.maxDist {
			continue
		}
		switch {
		case cand < v.dist:
			v.dist = cand
			v.prev = u
			r.q.DecreaseKey(v)
			r.stats.DecreaseKeys++
		case cand == v.dist && cand != Infinity && u.vertex < v.prev.vertex:
			// Equal-cost alternative: keep the smallest predecessor ID so the
			// outcome does not hinge on queue tie order.
			v.prev = u
		}
	}

	return nil
}

// saturatingAdd returns d+w, or Infinity when the sum would overflow.
func saturatingAdd(d, w int64) int64 {
	if w > Infinity-d {
		return Infinity
	}
	return d + w
}
