// SPDX-License-Identifier: MIT
//
// impl_random_sparse.go: Erdős–Rényi-like RandomSparse(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Unordered pairs {i,j}, i<j, are tried in (i asc, j asc) order, so the
//     graph is reproducible for a fixed seed.
//   - Pairs already joined by an earlier constructor are skipped unless the
//     graph allows multi-edges.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tripplan/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each of the n(n-1)/2
// possible edges independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1.
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		// 3) One Bernoulli trial per unordered pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !trial(cfg, p) {
					continue
				}
				err := addEdge(g, cfg, methodRandomSparse, cfg.idFn(i), cfg.idFn(j))
				if err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
					return err
				}
			}
		}
		return nil
	}
}

// trial reports whether an edge is kept; p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
