// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/simplegraph/core"
)

// RandomSparse builds an Erdős–Rényi G(n,p) graph over idFn(0..n-1): each
// unordered pair (ordered pair on directed graphs, self-pairs excluded) is
// linked with probability p. p of 0 or 1 needs no RNG; anything in between
// requires WithSeed or WithRand.
//
// Pairs are visited i ascending, then j ascending, and one draw is taken per
// pair followed by one weight draw per emitted edge, so a fixed seed yields
// a fixed graph.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}

		ids, err := addVertices("RandomSparse", g, cfg, n)
		if err != nil {
			return err
		}

		hit := func() bool {
			switch {
			case p == 0:
				return false
			case p == 1:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if g.Directed() {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := link("RandomSparse", g, cfg, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
