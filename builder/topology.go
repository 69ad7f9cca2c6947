// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4 // rim cycle needs n-1 ≥ 3
	minCompleteNodes = 1
	minGridDim       = 1
	gridIDFmt        = "%d:%d"
)

// addVertices inserts idFn(0..n-1) and returns the labels.
func addVertices(method string, g *core.Graph[string], cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if _, err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}
	return ids, nil
}

// link adds u→v with a drawn weight, and v→u with the same weight when
// mirror is set and g is directed.
func link(method string, g *core.Graph[string], cfg builderConfig, u, v string, mirror bool) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, core.WithEdgeWeight(w)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if mirror && g.Directed() {
		if err := g.AddEdge(v, u, core.WithEdgeWeight(w)); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
		}
	}
	return nil
}

// Path builds P_n: 0-1-...-(n-1). n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices("Path", g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link("Path", g, cfg, ids[i], ids[i+1], false); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds C_n: a path closed by (n-1)→0. n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices("Cycle", g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link("Cycle", g, cfg, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds "Center" joined to leaves idFn(1..n-1). n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if _, err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("Star: AddVertex(%s): %w", centerVertexID, err)
		}
		for i := 1; i < n; i++ {
			if err := link("Star", g, cfg, centerVertexID, cfg.idFn(i), true); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel builds a rim C_{n-1} over idFn(0..n-2) plus spokes from "Center".
// n ≥ 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("Wheel: rim C_%d: %w", n-1, err)
		}
		if _, err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("Wheel: AddVertex(%s): %w", centerVertexID, err)
		}
		for i := 0; i < n-1; i++ {
			if err := link("Wheel", g, cfg, centerVertexID, cfg.idFn(i), true); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds K_n. n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices("Complete", g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link("Complete", g, cfg, ids[i], ids[j], true); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} over left+i and right+j labels.
// n1, n2 ≥ 1.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("CompleteBipartite: n1=%d, n2=%d (each must be ≥ 1): %w", n1, n2, ErrTooFewVertices)
		}
		left, right := PrefixIDFn(cfg.leftPrefix), PrefixIDFn(cfg.rightPrefix)
		for i := 0; i < n1; i++ {
			if _, err := g.AddVertex(left(i)); err != nil {
				return fmt.Errorf("CompleteBipartite: AddVertex(%s): %w", left(i), err)
			}
		}
		for j := 0; j < n2; j++ {
			if _, err := g.AddVertex(right(j)); err != nil {
				return fmt.Errorf("CompleteBipartite: AddVertex(%s): %w", right(j), err)
			}
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := link("CompleteBipartite", g, cfg, left(i), right(j), true); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice with "r:c" labels in
// row-major order. rows, cols ≥ 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: rows=%d, cols=%d (each must be ≥ %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if _, err := g.AddVertex(id); err != nil {
					return fmt.Errorf("Grid: AddVertex(%s): %w", id, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					if err := link("Grid", g, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link("Grid", g, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c), true); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
