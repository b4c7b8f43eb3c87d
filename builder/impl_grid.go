// SPDX-License-Identifier: MIT
//
// impl_grid.go: rows×cols orthogonal grid (a city block map).
//
// Determinism:
//   - Vertices in row-major order with coordinate IDs "r,c" (idFn is not used).
//   - For each (r,c) the Right edge is emitted before the Bottom edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tripplan/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID Grid uses for row r, column c.
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
