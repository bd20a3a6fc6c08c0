package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// Method names used as error prefixes.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// CenterVertexID is the fixed label of the Star hub.
const CenterVertexID = "Center"

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns a Constructor that builds P_n: edges (i-1)—i for i=1..n-1.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: edges i—(i+1) mod n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub CenterVertexID and leaves
// cfg.idFn(1..n-1), each joined to the hub.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := ensureVertex(g, MethodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := ensureVertex(g, MethodStar, leaf); err != nil {
				return err
			}
			if err := addEdge(g, cfg, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds K_n, emitting each pair i<j once
// in lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids, err := addVertices(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor that keeps each pair i<j independently
// with probability p. An RNG is required unless p is 0 or 1.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate before touching g.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, minCompleteNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices in index order.
		ids, err := addVertices(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Trials in (i asc, j asc) order so a seed fixes the outcome.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
