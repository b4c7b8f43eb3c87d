// SPDX-License-Identifier: MIT
//
// options.go — functional options and the resolved builderConfig.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves only return errors.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// DefaultEdgeWeight is the weight of every edge when no weight option is set.
const DefaultEdgeWeight int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     func(int) string       // index → vertex ID
	rng      *rand.Rand             // nil means “no randomness”
	weightFn func(*rand.Rand) int64 // per-edge weight
	needRand bool                   // weightFn draws from rng
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over deterministic defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     strconv.Itoa,
		weightFn: func(*rand.Rand) int64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, failing when the policy needs an RNG that
// was never configured.
func (c builderConfig) weight(method string) (int64, error) {
	if c.needRand && c.rng == nil {
		return 0, fmt.Errorf("%s: weight policy: %w", method, ErrNeedRandSource)
	}
	return c.weightFn(c.rng), nil
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithPrefix names vertices prefix+index ("V0", "V1", ...).
func WithPrefix(prefix string) BuilderOption {
	return WithIDScheme(func(i int) string { return prefix + strconv.Itoa(i) })
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithConstantWeight gives every edge weight w. Panics if w < 0.
func WithConstantWeight(w int64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%d) < 0", w))
	}
	return func(c *builderConfig) {
		c.weightFn = func(*rand.Rand) int64 { return w }
		c.needRand = false
	}
}

// WithUniformWeight draws weights uniformly from [min, max]. Requires an RNG.
// Panics if min < 0 or max < min.
func WithUniformWeight(min, max int64) BuilderOption {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithUniformWeight(%d, %d) invalid range", min, max))
	}
	return func(c *builderConfig) {
		c.weightFn = func(r *rand.Rand) int64 { return min + r.Int63n(max-min+1) }
		c.needRand = true
	}
}

// WithWeightFn installs a custom weight generator; it receives the configured
// RNG, which may be nil. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.needRand = false
	}
}
