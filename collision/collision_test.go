// Package collision_test contains unit tests for collision grouping and overlap.
package collision_test

import (
	"testing"

	"github.com/katalvlaran/graphprint/collision"
	"github.com/katalvlaran/graphprint/fingerprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(b byte) fingerprint.Fingerprint {
	var f fingerprint.Fingerprint
	f[31] = b
	return f
}

func TestDetect(t *testing.T) {
	fps := []fingerprint.Fingerprint{fp(5), fp(1), fp(5), fp(9), fp(1), fp(5), fp(2)}
	groups := collision.Detect(collision.FromFingerprints(fps))

	require.Len(t, groups, 2)
	assert.Equal(t, fp(1), groups[0].Fingerprint)
	assert.Equal(t, []int{1, 4}, groups[0].Indices)
	assert.Equal(t, fp(5), groups[1].Fingerprint)
	assert.Equal(t, []int{0, 2, 5}, groups[1].Indices)
	assert.Equal(t, []int{2, 3}, collision.Sizes(groups))
	assert.Equal(t, []int{0, 1, 2, 4, 5}, collision.Implicated(groups))
}

func TestDetectEdgeCases(t *testing.T) {
	assert.Empty(t, collision.Detect(nil))
	assert.Empty(t, collision.Detect(collision.FromFingerprints([]fingerprint.Fingerprint{fp(1)})))
	assert.Empty(t, collision.Detect(collision.FromFingerprints([]fingerprint.Fingerprint{fp(1), fp(2), fp(3)})))
	assert.Empty(t, collision.Implicated(nil))
}

// TestDetectSymmetric: input order never changes the groups.
func TestDetectSymmetric(t *testing.T) {
	a := []collision.Entry{{Fingerprint: fp(3), Index: 0}, {Fingerprint: fp(3), Index: 7}, {Fingerprint: fp(1), Index: 2}, {Fingerprint: fp(1), Index: 4}}
	b := []collision.Entry{{Fingerprint: fp(1), Index: 4}, {Fingerprint: fp(3), Index: 7}, {Fingerprint: fp(1), Index: 2}, {Fingerprint: fp(3), Index: 0}}
	assert.Equal(t, collision.Detect(a), collision.Detect(b))
	assert.Equal(t, fp(1), b[0].Fingerprint, "input must not be reordered")
}

func TestOverlap(t *testing.T) {
	assert.Equal(t, []int{2, 5}, collision.Overlap([]int{1, 2, 5, 8}, []int{0, 2, 5, 9}))
	assert.Equal(t, []int{5}, collision.Overlap([]int{1, 2, 5}, []int{2, 5}, []int{5, 6}))
	assert.Empty(t, collision.Overlap([]int{1}, nil))
	assert.Nil(t, collision.Overlap())
	assert.Equal(t, []int{3, 4}, collision.Overlap([]int{3, 4}))
}
