// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go - method tags and parameter minima.

package builder

// Method tags used as error-wrapping context.
const (
	MethodEmpty             = "Empty"
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRook              = "Rook"
	MethodShrikhande        = "Shrikhande"
	MethodPlatonicSolid     = "PlatonicSolid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodRandomPermutation = "RandomPermutation"
)

// Parameter minima.
const (
	MinEmptyNodes     = 1
	MinPathNodes      = 2
	MinCycleNodes     = 3
	MinStarNodes      = 2
	MinWheelNodes     = 4
	MinCompleteNodes  = 1
	MinPartition      = 1
	MinGridDim        = 1
	MinRookDim        = 2
	MinRandomVertices = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular retries.
const maxStubMatchingAttempts = 256
