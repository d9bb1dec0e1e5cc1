// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random.go - seeded stochastic constructors and permutations.
//
// Determinism:
//   - All randomness comes from cfg.rng; the same seed and call order give
//     the same output.

package builder

// RandomSparse adds G(n, p): each pair i<j, in row-major order, is an edge
// with probability p.
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinRandomVertices); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if err := validateRand(MethodRandomSparse, cfg); err != nil {
			return err
		}
		off := s.block(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					s.edge(off+i, off+j)
				}
			}
		}

		return nil
	}
}

// RandomRegular adds a d-regular simple graph on n vertices by stub matching
// with bounded retries.
//
// Implementation:
//   - Stage 1: validate 0 ≤ d < n and n·d even.
//   - Stage 2: lay out d stubs per vertex, shuffle, pair consecutive stubs.
//   - Stage 3: reject the attempt on a loop or a repeated pair; retry.
//
// Errors:
//   - ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed after
//     maxStubMatchingAttempts rejected attempts.
//
// Complexity: ~O(n·d) per attempt.
func RandomRegular(n, d int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, n, MinRandomVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return builderErrorf(MethodRandomRegular, ErrTooFewVertices, "degree must be in [0,%d), got %d", n, d)
		}
		if (n*d)%2 != 0 {
			return builderErrorf(MethodRandomRegular, ErrTooFewVertices, "n*d must be even (n=%d, d=%d)", n, d)
		}
		if err := validateRand(MethodRandomRegular, cfg); err != nil {
			return err
		}

		stubCount := n * d
		stubs := make([]int, 0, stubCount)
		for v := 0; v < n; v++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, v)
			}
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if pairs, ok := matchStubs(stubs); ok {
				off := s.block(n)
				for _, p := range pairs {
					s.edge(off+p[0], off+p[1])
				}

				return nil
			}
		}

		return builderErrorf(MethodRandomRegular, ErrConstructFailed,
			"no simple matching after %d attempts", maxStubMatchingAttempts)
	}
}

// matchStubs pairs consecutive stubs; ok is false on a loop or a repeated pair.
func matchStubs(stubs []int) ([][2]int, bool) {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	pairs := make([][2]int, 0, len(stubs)/2)
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return nil, false
		}
		seen[key] = struct{}{}
		pairs = append(pairs, key)
	}

	return pairs, true
}

// RandomPermutation returns a uniformly random permutation of 0..n-1 drawn
// from the RNG configured by opts.
//
// Errors: ErrTooFewVertices (n < 1), ErrNeedRandSource.
func RandomPermutation(n int, opts ...Option) ([]int, error) {
	if err := validateMin(MethodRandomPermutation, n, MinRandomVertices); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	if err := validateRand(MethodRandomPermutation, cfg); err != nil {
		return nil, err
	}

	return cfg.rng.Perm(n), nil
}
