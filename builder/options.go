package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
// Option constructors panic on meaningless input; constructors never do.
type BuilderOption func(*builderConfig)

// builderConfig holds every knob used by constructors. It is passed by value.
type builderConfig struct {
	idFn     IDFn       // index -> label
	rng      *rand.Rand // nil means no randomness
	weightFn WeightFn   // edge weight generator
}

// newBuilderConfig applies opts over the defaults: decimal IDs, no RNG and
// DefaultWeightFn. Later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex label generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}
