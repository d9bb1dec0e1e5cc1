// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_basic.go - elementary topologies. Vertex 0 of each component is the
// first index of its block; edges are emitted in a stable documented order.

package builder

// Empty adds n isolated vertices (n ≥ 1).
// Complexity: O(1).
func Empty(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodEmpty, n, MinEmptyNodes); err != nil {
			return err
		}
		s.block(n)

		return nil
	}
}

// Path adds the path P_n: 0-1-…-(n-1) (n ≥ 2).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		off := s.block(n)
		for i := 0; i+1 < n; i++ {
			s.edge(off+i, off+i+1)
		}

		return nil
	}
}

// Cycle adds the cycle C_n (n ≥ 3).
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		off := s.block(n)
		for i := 0; i < n; i++ {
			s.edge(off+i, off+(i+1)%n)
		}

		return nil
	}
}

// Star adds K_{1,n-1} with the center at local index 0 (n ≥ 2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		off := s.block(n)
		for i := 1; i < n; i++ {
			s.edge(off, off+i)
		}

		return nil
	}
}

// Wheel adds W_n: a rim C_{n-1} on local indices 1..n-1 plus a hub at 0 (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodWheel, n, MinWheelNodes); err != nil {
			return err
		}
		off := s.block(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			s.edge(off+1+i, off+1+(i+1)%rim)
			s.edge(off, off+1+i)
		}

		return nil
	}
}

// Complete adds K_n (n ≥ 1).
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		off := s.block(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.edge(off+i, off+j)
			}
		}

		return nil
	}
}

// CompleteBipartite adds K_{n1,n2}; left part first (n1, n2 ≥ 1).
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, n2, MinPartition); err != nil {
			return err
		}
		off := s.block(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.edge(off+i, off+n1+j)
			}
		}

		return nil
	}
}

// Grid adds the rows×cols 4-neighborhood grid, vertex (r,c) at r*cols+c.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		off := s.block(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := off + r*cols + c
				if c+1 < cols {
					s.edge(v, v+1)
				}
				if r+1 < rows {
					s.edge(v, v+cols)
				}
			}
		}

		return nil
	}
}
