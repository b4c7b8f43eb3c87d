// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, strategy selection and functional options.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/inconshreveable/log15"

	"github.com/katalvlaran/tripplan/core"
)

// Infinity is the tentative distance of a vertex no path has reached yet.
const Infinity int64 = math.MaxInt64

// DefaultMaxBuckets caps the bucket array of StrategyBucketQueue (4 Mi buckets).
const DefaultMaxBuckets int64 = 1 << 22

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptySource indicates that the source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrVertexNotFound indicates a vertex that does not belong to the graph.
	// It wraps core.ErrVertexNotFound so either sentinel matches.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrNotFound is the name used by result accessors; it is ErrVertexNotFound.
	ErrNotFound = ErrVertexNotFound

	// ErrInvalidWeight indicates a negative edge weight. It wraps core.ErrInvalidWeight.
	ErrInvalidWeight = fmt.Errorf("dijkstra: %w", core.ErrInvalidWeight)

	// ErrUnknownStrategy indicates an unsupported Options.Strategy value.
	ErrUnknownStrategy = errors.New("dijkstra: unknown strategy")

	// ErrBucketRangeTooLarge indicates that MaxWeight·|V| does not fit the bucket cap.
	ErrBucketRangeTooLarge = errors.New("dijkstra: bucket range exceeds MaxBuckets")

	// ErrBadMaxBuckets indicates WithMaxBuckets was given a non-positive value.
	ErrBadMaxBuckets = errors.New("dijkstra: MaxBuckets must be positive")

	// ErrBadMaxDistance indicates WithMaxDistance was given a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates WithInfEdgeThreshold was given zero or a
	// negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrAborted indicates the run's context was cancelled; no result is published.
	ErrAborted = errors.New("dijkstra: run aborted")

	// ErrSourceMismatch indicates PathBetween was asked about a source other than the run's.
	ErrSourceMismatch = errors.New("dijkstra: source differs from the run source")

	// ErrPathCycle indicates a predecessor chain longer than |V|.
	ErrPathCycle = errors.New("dijkstra: predecessor chain does not reach the source")

	// ErrInternal indicates a broken graph or queue invariant during a run.
	ErrInternal = errors.New("dijkstra: internal invariant violated")

	// ErrEmptyStructure is returned by Queue.ExtractMin when nothing remains
	// to extract. Run treats it as normal termination and never returns it.
	ErrEmptyStructure = errors.New("dijkstra: priority structure is empty")
)

// Strategy selects the priority structure used by a run.
type Strategy int

const (
	// StrategyBinaryHeap uses the index-aware binary min-heap.
	StrategyBinaryHeap Strategy = iota

	// StrategyBucketQueue uses Dial's bucket queue.
	StrategyBucketQueue
)

// String returns the strategy name used in logs.
func (s Strategy) String() string {
	switch s {
	case StrategyBinaryHeap:
		return "binary-heap"
	case StrategyBucketQueue:
		return "bucket-queue"
	default:
		return "unknown"
	}
}

// Options configures a run.
//
// Strategy         – priority structure (default StrategyBinaryHeap).
// MaxBuckets       – upper bound on the bucket count of StrategyBucketQueue.
// MaxDistance      – vertices farther than this stay unreached (default Infinity).
// InfEdgeThreshold – edges with weight ≥ this are impassable (default Infinity).
// Logger           – log15 logger; default discards everything.
type Options struct {
	Strategy         Strategy
	MaxBuckets       int64
	MaxDistance      int64
	InfEdgeThreshold int64
	Logger           log15.Logger
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithStrategy selects the priority structure.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithBinaryHeap is shorthand for WithStrategy(StrategyBinaryHeap).
func WithBinaryHeap() Option { return WithStrategy(StrategyBinaryHeap) }

// WithBucketQueue is shorthand for WithStrategy(StrategyBucketQueue).
func WithBucketQueue() Option { return WithStrategy(StrategyBucketQueue) }

// WithMaxBuckets bounds the bucket array of StrategyBucketQueue.
// Panics if n <= 0.
func WithMaxBuckets(n int64) Option {
	if n <= 0 {
		panic(ErrBadMaxBuckets.Error())
	}

	return func(o *Options) {
		o.MaxBuckets = n
	}
}

// WithMaxDistance stops exploring past max: a vertex whose shortest distance
// exceeds max is reported as unreachable. It also bounds the bucket array.
// Panics if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as closed.
// Closed edges are never relaxed and do not count towards the bucket range.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes run diagnostics to l. A nil logger keeps the default.
func WithLogger(l log15.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults applied before any Option:
// binary heap, DefaultMaxBuckets, no distance cap, no closed edges, and a
// logger writing to log15.DiscardHandler.
func DefaultOptions() Options {
	l := log15.New("pkg", "dijkstra")
	l.SetHandler(log15.DiscardHandler())

	return Options{
		Strategy:         StrategyBinaryHeap,
		MaxBuckets:       DefaultMaxBuckets,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
		Logger:           l,
	}
}
