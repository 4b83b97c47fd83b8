// Package dfs_test verifies the exhaustive simple-path search: optimum
// selection, enumeration order, tie handling and the option hooks.
package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
)

// buildGraph creates a graph over labels and adds the given weighted edges.
func buildGraph(t *testing.T, labels []string, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(labels)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// diamond is A-B=1, B-C=2, A-C=4, C-D=1 plus an isolated E.
func diamond(t *testing.T) *core.Graph {
	return buildGraph(t, []string{"A", "B", "C", "D", "E"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 4},
		{From: "C", To: "D", Weight: 1},
	})
}

func TestMinimumWeightSimplePath_Diamond(t *testing.T) {
	g := diamond(t)

	p, err := dfs.MinimumWeightSimplePath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.Distance)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Labels)

	// Symmetric graph: the reverse query has the same weight.
	rev, err := dfs.MinimumWeightSimplePath(g, "D", "A")
	require.NoError(t, err)
	assert.Equal(t, p.Distance, rev.Distance)
	assert.Equal(t, []string{"D", "C", "B", "A"}, rev.Labels)
}

func TestMinimumWeightSimplePath_Unreachable(t *testing.T) {
	g := diamond(t)

	_, err := dfs.MinimumWeightSimplePath(g, "A", "E")
	require.ErrorIs(t, err, core.ErrUnreachable)

	paths, err := dfs.SimplePaths(g, "A", "E")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestMinimumWeightSimplePath_SelfPath(t *testing.T) {
	g := diamond(t)

	// Also holds for an isolated vertex.
	for _, l := range []string{"A", "E"} {
		p, err := dfs.MinimumWeightSimplePath(g, l, l)
		require.NoError(t, err)
		assert.Equal(t, core.Path{Distance: 0, Labels: []string{l}}, p)
	}
}

func TestMinimumWeightSimplePath_Validation(t *testing.T) {
	g := diamond(t)

	_, err := dfs.MinimumWeightSimplePath(nil, "A", "D")
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = dfs.MinimumWeightSimplePath(g, "X", "D")
	require.ErrorIs(t, err, core.ErrUnknownLabel)
	assert.Contains(t, err.Error(), "start")

	_, err = dfs.MinimumWeightSimplePath(g, "A", "X")
	require.ErrorIs(t, err, core.ErrUnknownLabel)
	assert.Contains(t, err.Error(), "end")

	_, err = dfs.SimplePaths(g, "", "A")
	require.ErrorIs(t, err, core.ErrUnknownLabel)
}

// TestMinimumWeightSimplePath_FirstOptimumWins checks that an equally light
// path found later does not replace the first one.
func TestMinimumWeightSimplePath_FirstOptimumWins(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "D", Weight: 1},
		{From: "A", To: "C", Weight: 1},
		{From: "C", To: "D", Weight: 1},
	})

	p, err := dfs.MinimumWeightSimplePath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, "A B D (2)", p.String())
}

func TestSimplePaths_DiscoveryOrder(t *testing.T) {
	g := diamond(t)

	paths, err := dfs.SimplePaths(g, "A", "D")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "A B C D (4)", paths[0].String())
	assert.Equal(t, "A C D (5)", paths[1].String())

	for _, p := range paths {
		w, err := g.PathWeight(p.Labels)
		require.NoError(t, err)
		assert.Equal(t, w, p.Distance)
	}
}

// TestSimplePaths_Complete counts the simple paths between two vertices of K5:
// 1 direct + 3 + 3·2 + 3·2·1 = 16.
func TestSimplePaths_Complete(t *testing.T) {
	labels := []string{"A", "B", "C", "D", "E"}
	var edges []core.Edge
	for i := range labels {
		for j := i + 1; j < len(labels); j++ {
			edges = append(edges, core.Edge{From: labels[i], To: labels[j], Weight: int64(i + j + 1)})
		}
	}
	g := buildGraph(t, labels, edges)

	paths, err := dfs.SimplePaths(g, "A", "E")
	require.NoError(t, err)
	assert.Len(t, paths, 16)

	for _, p := range paths {
		seen := make(map[string]bool, len(p.Labels))
		for _, l := range p.Labels {
			require.False(t, seen[l], "vertex %s repeated in %v", l, p.Labels)
			seen[l] = true
		}
		assert.Equal(t, "A", p.Labels[0])
		assert.Equal(t, "E", p.Labels[len(p.Labels)-1])
	}
}

func TestWithMaxDepth(t *testing.T) {
	g := diamond(t)

	p, err := dfs.MinimumWeightSimplePath(g, "A", "D", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, "A C D (5)", p.String())

	_, err = dfs.MinimumWeightSimplePath(g, "A", "D", dfs.WithMaxDepth(1))
	require.ErrorIs(t, err, core.ErrUnreachable)

	p, err = dfs.MinimumWeightSimplePath(g, "B", "B", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, p.Labels)
}

func TestWithContext_Canceled(t *testing.T) {
	g := diamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.MinimumWeightSimplePath(g, "A", "D", dfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithOnPath(t *testing.T) {
	g := diamond(t)

	var seen []string
	_, err := dfs.MinimumWeightSimplePath(g, "A", "D", dfs.WithOnPath(func(p core.Path) error {
		seen = append(seen, p.String())
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A B C D (4)", "A C D (5)"}, seen)

	stop := errors.New("stop")
	calls := 0
	_, err = dfs.SimplePaths(g, "A", "D", dfs.WithOnPath(func(core.Path) error {
		calls++
		return stop
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

// TestMinimumWeightSimplePath_GraphUnchanged checks that the search leaves
// the store untouched.
func TestMinimumWeightSimplePath_GraphUnchanged(t *testing.T) {
	g := diamond(t)
	before := g.Edges()

	_, err := dfs.MinimumWeightSimplePath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, before, g.Edges())
}
