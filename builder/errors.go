// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor or weight policy ran
// without an RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph could not apply a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
