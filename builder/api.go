package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with gopts, resolves the builder
// configuration from bopts and applies all constructors in order.
// The first constructor error is returned wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each constructor.
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

// ensureVertex adds label unless it already exists.
func ensureVertex(g *core.Graph, method, label string) error {
	if g.HasVertex(label) {
		return nil
	}
	if _, err := g.AddVertex(label); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, label, err)
	}

	return nil
}

// addVertices ensures vertices cfg.idFn(0..n-1) exist and returns their labels.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := ensureVertex(g, method, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// addEdge draws a weight and adds u—v.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
