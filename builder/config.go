// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - resolved, immutable builder configuration.

package builder

import "math/rand"

// builderConfig holds the resolved options. rng is nil unless WithSeed or
// WithRand was given; stochastic constructors reject a nil rng.
type builderConfig struct {
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
