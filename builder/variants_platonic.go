// SPDX-License-Identifier: MIT
// Package: builder
//
// variants_platonic.go - fixed edge sets of the five Platonic solids.
// Every solid is vertex-transitive, so all of them are regular.

package builder

// PlatonicName selects a Platonic solid.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  3-regular
	Cube                             // V=8,  E=12, 3-regular
	Octahedron                       // V=6,  E=12, 4-regular
	Dodecahedron                     // V=20, E=30, 3-regular
	Icosahedron                      // V=12, E=30, 5-regular
)

// String implements fmt.Stringer.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

var platonicEdgeSets = map[PlatonicName][][2]int{
	Tetrahedron: {
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	},

	Cube: {
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	},

	Octahedron: {
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	},

	Dodecahedron: {
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	},

	Icosahedron: {
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	},
}

// PlatonicSolid adds the skeleton of the named solid.
// Errors: ErrConstructFailed for an unknown name.
// Complexity: O(V+E).
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *sketch, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, ErrConstructFailed, "unknown solid %d", int(name))
		}
		off := s.block(n)
		for _, e := range platonicEdgeSets[name] {
			s.edge(off+e[0], off+e[1])
		}

		return nil
	}
}
