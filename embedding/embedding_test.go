// Package embedding_test contains unit tests for the embedder registry.
package embedding_test

import (
	"testing"

	"github.com/katalvlaran/graphprint/builder"
	"github.com/katalvlaran/graphprint/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"walk", "walk-length", "wl"}, embedding.Names())

	for _, name := range embedding.Names() {
		e, err := embedding.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, e.Name())
	}

	_, err := embedding.Lookup("spectral")
	require.ErrorIs(t, err, embedding.ErrUnknownEmbedding)

	_, err = embedding.LookupAll([]string{"wl", "nope"})
	require.ErrorIs(t, err, embedding.ErrUnknownEmbedding)

	defaults := embedding.Defaults()
	require.Len(t, defaults, 2)
	assert.Equal(t, embedding.Walk, defaults[0].Name())
	assert.Equal(t, embedding.WL, defaults[1].Name())
}

// TestC6AgainstTwoTriangles: walk separates them, color refinement does not.
func TestC6AgainstTwoTriangles(t *testing.T) {
	c6, err := builder.Build(nil, builder.Cycle(6))
	require.NoError(t, err)
	twoC3, err := builder.Build(nil, builder.Cycle(3), builder.Cycle(3))
	require.NoError(t, err)

	want := map[string]bool{"walk": false, "walk-length": false, "wl": true}
	for name, collide := range want {
		e, err := embedding.Lookup(name)
		require.NoError(t, err)
		f1, err := e.Embed(c6)
		require.NoError(t, err)
		f2, err := e.Embed(twoC3)
		require.NoError(t, err)
		assert.Equal(t, collide, f1 == f2, name)
	}
}
