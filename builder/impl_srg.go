// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_srg.go - the two strongly regular graphs with parameters (16,6,2,2).
// Walk counts and color refinement both fail to separate them.

package builder

// shrikhandeOrder is the side of the Z4×Z4 torus underlying the Shrikhande graph.
const shrikhandeOrder = 4

// Rook adds the m×m rook's graph K_m □ K_m: (r,c) ~ (r',c') iff exactly one
// coordinate matches. Vertex (r,c) is at r*m+c (m ≥ 2).
// Rook(4) is SRG(16,6,2,2).
// Complexity: O(m³).
func Rook(m int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		if err := validateMin(MethodRook, m, MinRookDim); err != nil {
			return err
		}
		off := s.block(m * m)
		for r := 0; r < m; r++ {
			for c := 0; c < m; c++ {
				v := off + r*m + c
				for c2 := c + 1; c2 < m; c2++ {
					s.edge(v, off+r*m+c2)
				}
				for r2 := r + 1; r2 < m; r2++ {
					s.edge(v, off+r2*m+c)
				}
			}
		}

		return nil
	}
}

// Shrikhande adds the Shrikhande graph: the Cayley graph of Z4×Z4 with
// connection set {±(0,1), ±(1,0), ±(1,1)}. Vertex (i,j) is at 4i+j.
// Complexity: O(1).
func Shrikhande() Constructor {
	return func(s *sketch, _ builderConfig) error {
		const m = shrikhandeOrder
		off := s.block(m * m)
		// Half of the connection set; the other half is covered by symmetry.
		steps := [3][2]int{{0, 1}, {1, 0}, {1, 1}}
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				for _, d := range steps {
					s.edge(off+i*m+j, off+((i+d[0])%m)*m+(j+d[1])%m)
				}
			}
		}

		return nil
	}
}
