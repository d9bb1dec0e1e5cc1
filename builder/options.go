// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options. Option constructors panic on nonsensical
// values (programmer error); constructors never panic.

package builder

import "math/rand"

// Option mutates builderConfig before construction.
type Option func(*builderConfig)

// WithRand uses r for every stochastic constructor. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) { cfg.rng = r }
}

// WithSeed seeds a fresh math/rand source.
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}
