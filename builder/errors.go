package builder

import "errors"

// ErrTooFewVertices indicates n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
