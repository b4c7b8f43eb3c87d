// SPDX-License-Identifier: MIT
//
// api.go: Constructor type and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tripplan/core"
)

// Constructor adds a topology to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts once and applies
// every constructor in order on the same graph and RNG.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices registers idFn(0..n-1) in ascending order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}

// addEdge draws a weight and joins u and v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w, err := cfg.weight(method)
	if err != nil {
		return err
	}
	if _, err = g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", method, u, v, w, err)
	}
	return nil
}
