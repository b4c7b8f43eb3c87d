// SPDX-License-Identifier: MIT
//
// impl_basic.go — Path, Cycle, Star and Complete constructors.
//
// Determinism: vertices are added 0..n-1, edges in ascending (i, j) order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tripplan/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathVertices  = 1
	minCycleVertices = 3
	minStarVertices  = 2
)

// Path returns a Constructor for the chain 0—1—…—(n-1). n ≥ 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for Path(n) plus the closing edge (n-1)—0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		return addEdge(g, cfg, methodCycle, cfg.idFn(n-1), cfg.idFn(0))
	}
}

// Star returns a Constructor joining hub 0 to each of 1…n-1. n ≥ 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete returns a Constructor joining every unordered pair once. n ≥ 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathVertices, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
