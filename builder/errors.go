// SPDX-License-Identifier: MIT
// Package: graphcore/builder
//
// errors.go - sentinel errors. Constructors wrap them with the method name
// ("Cycle: n=2 < min=3: builder: parameter too small"); callers match with
// errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was used without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied (nil
// constructor, nil graph, or a rejected graph mutation).
var ErrConstructFailed = errors.New("builder: construction failed")
