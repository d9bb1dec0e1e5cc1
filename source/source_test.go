// Package source_test contains unit tests for the graph streams.
package source_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/katalvlaran/graphprint/matrix"
	"github.com/katalvlaran/graphprint/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// known graph6 records of order 4
const (
	g6Empty4 = "C?"
	g6P4     = "Ch"
	g6K4     = "C~"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

// TestExhaustiveCounts pins the number of graphs up to isomorphism.
func TestExhaustiveCounts(t *testing.T) {
	all := []int{1, 2, 4, 11, 34}
	connected := []int{1, 1, 2, 6, 21}
	for n := 1; n <= 5; n++ {
		gs, err := source.Collect(context.Background(), source.Exhaustive{}, n, false)
		require.NoError(t, err)
		assert.Len(t, gs, all[n-1], "all graphs n=%d", n)

		cs, err := source.Collect(context.Background(), source.Exhaustive{}, n, true)
		require.NoError(t, err)
		assert.Len(t, cs, connected[n-1], "connected graphs n=%d", n)
		for _, a := range cs {
			assert.True(t, a.Connected())
		}
	}
}

// TestExhaustiveOrder: the empty graph has the smallest code and comes first,
// the complete graph last.
func TestExhaustiveOrder(t *testing.T) {
	gs, err := source.Collect(context.Background(), source.Exhaustive{}, 4, false)
	require.NoError(t, err)
	require.Len(t, gs, 11)
	assert.Equal(t, 0, gs[0].EdgeCount())
	assert.Equal(t, 6, gs[10].EdgeCount())
	for i := 1; i < len(gs); i++ {
		assert.False(t, gs[i].Equal(gs[i-1]))
	}
}

func TestExhaustiveErrors(t *testing.T) {
	_, err := source.Exhaustive{}.Open(context.Background(), source.MaxExhaustiveVertices+1, false)
	require.ErrorIs(t, err, source.ErrBadOrder)
	_, err = source.Exhaustive{}.Open(context.Background(), 0, false)
	require.ErrorIs(t, err, source.ErrBadOrder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	it, err := source.Exhaustive{}.Open(ctx, 4, false)
	require.NoError(t, err)
	assert.False(t, it.Next())
	require.ErrorIs(t, it.Err(), context.Canceled)
	require.NoError(t, it.Close())
}

func TestDecodeGraph6(t *testing.T) {
	a, err := source.DecodeGraph6(g6P4, 4)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, a.Edges())

	a, err = source.DecodeGraph6(">>graph6<<"+g6K4+"\n", 0)
	require.NoError(t, err)
	assert.Equal(t, 6, a.EdgeCount())

	_, err = source.DecodeGraph6(g6K4, 5)
	require.ErrorIs(t, err, source.ErrMalformed)
	_, err = source.DecodeGraph6("", 0)
	require.ErrorIs(t, err, source.ErrMalformed)
	_, err = source.DecodeGraph6("C~~~~", 4)
	require.ErrorIs(t, err, source.ErrMalformed)
}

func TestGraph6Dir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "graphs4.txt", g6Empty4+"\n"+g6P4+"\n\n"+g6K4+"\n")
	writeFile(t, dir, "cgraphs4.txt", g6P4+"\n"+g6K4+"\n")
	src := source.Graph6Dir{Dir: dir}

	gs, err := source.Collect(context.Background(), src, 4, false)
	require.NoError(t, err)
	require.Len(t, gs, 3)
	assert.Equal(t, []int{0, 3, 6}, []int{gs[0].EdgeCount(), gs[1].EdgeCount(), gs[2].EdgeCount()})

	cs, err := source.Collect(context.Background(), src, 4, true)
	require.NoError(t, err)
	assert.Len(t, cs, 2)

	_, err = src.Open(context.Background(), 5, false)
	require.ErrorIs(t, err, fs.ErrNotExist)

	assert.Equal(t, "cgraphs7.txt", source.FileName(7, true))
	assert.Equal(t, "graphs7.txt", source.FileName(7, false))
}

// TestGraph6DirMalformed: a bad record stops the stream with its line number.
func TestGraph6DirMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "graphs4.txt", g6P4+"\n"+"D??\n"+g6K4+"\n")
	it, err := source.Graph6Dir{Dir: dir}.Open(context.Background(), 4, false)
	require.NoError(t, err)
	defer it.Close()

	require.True(t, it.Next())
	assert.False(t, it.Next())
	require.ErrorIs(t, it.Err(), source.ErrMalformed)
	assert.Contains(t, it.Err().Error(), "line 2")
	assert.False(t, it.Next())

	_, err = source.Collect(context.Background(), source.Graph6Dir{Dir: dir}, 4, false)
	require.ErrorIs(t, err, source.ErrMalformed)
}

// fakeGeng installs a shell script standing in for geng.
func fakeGeng(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "geng")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestGeng(t *testing.T) {
	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	path := fakeGeng(t, `echo "$@" > `+argsFile+`
printf 'Ch\nC~\n'
`)
	gs, err := source.Collect(context.Background(), source.Geng{Path: path}, 4, true)
	require.NoError(t, err)
	assert.Len(t, gs, 2)

	got, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "-q -c 4", strings.TrimSpace(string(got)))
	assert.Equal(t, []string{"-q", "5"}, source.Geng{}.Args(5, false))
}

func TestGengFailure(t *testing.T) {
	path := fakeGeng(t, "printf 'Ch\\n'\nexit 3\n")
	it, err := source.Geng{Path: path}.Open(context.Background(), 4, false)
	require.NoError(t, err)
	require.True(t, it.Next())
	require.False(t, it.Next())
	var exitErr interface{ ExitCode() int }
	require.True(t, errors.As(it.Err(), &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
	require.NoError(t, it.Close())

	_, err = source.Geng{Path: filepath.Join(t.TempDir(), "missing")}.Open(context.Background(), 4, false)
	require.Error(t, err)
}

func TestSlice(t *testing.T) {
	p3, err := matrix.NewAdjacency(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	e3, err := matrix.NewAdjacency(3, nil)
	require.NoError(t, err)
	k2, err := matrix.NewAdjacency(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	src := source.Slice{p3, k2, nil, e3}

	gs, err := source.Collect(context.Background(), src, 3, false)
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Same(t, p3, gs[0])
	assert.Same(t, e3, gs[1])

	gs, err = source.Collect(context.Background(), src, 3, true)
	require.NoError(t, err)
	assert.Len(t, gs, 1)

	it, err := src.Open(context.Background(), 2, false)
	require.NoError(t, err)
	assert.Nil(t, it.Matrix())
	require.True(t, it.Next())
	assert.Same(t, k2, it.Matrix())
	require.False(t, it.Next())
	assert.Nil(t, it.Matrix())
}
