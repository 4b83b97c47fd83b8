// Package dijkstra_test validates the label-correcting search: input
// validation, distances and predecessors, decrease-key behavior, options,
// and agreement with the exhaustive dfs search.
package dijkstra_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dfs"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// diamond builds A-B=1, B-C=2, A-C=4, C-D=1 with E isolated.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]string{"A", "B", "C", "D", "E"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

// frontiers lists every frontier implementation; behavior must not depend on it.
var frontiers = []dijkstra.FrontierKind{dijkstra.FrontierHeap, dijkstra.FrontierList}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := diamond(t)

	// An empty source has priority over a nil graph.
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(g)
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source("A"))
	require.ErrorIs(t, err, core.ErrNilGraph)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	require.ErrorIs(t, err, core.ErrUnknownLabel)

	_, err = dijkstra.ShortestPath(g, "A", "X")
	require.ErrorIs(t, err, core.ErrUnknownLabel)

	_, err = dijkstra.ShortestPath(g, "X", "A")
	require.ErrorIs(t, err, core.ErrUnknownLabel)

	_, err = dijkstra.ShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, core.ErrNilGraph)

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() {
		dijkstra.WithMaxDistance(-1)
	})
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestShortestDistances_Diamond(t *testing.T) {
	for _, kind := range frontiers {
		t.Run(kind.String(), func(t *testing.T) {
			res, err := dijkstra.ShortestDistances(diamond(t), "A", dijkstra.WithFrontier(kind))
			require.NoError(t, err)

			assert.Equal(t, "A", res.Source())
			assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4}, res.Distances())
			assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "C"}, res.Predecessors())
			assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order())
			assert.Equal(t, 4, res.Len())

			d, ok := res.Distance("A")
			assert.True(t, ok)
			assert.Zero(t, d)
			_, ok = res.Predecessor("A")
			assert.False(t, ok, "source has no predecessor")

			assert.False(t, res.Reachable("E"))
			_, ok = res.Distance("E")
			assert.False(t, ok)
			_, ok = res.Predecessor("E")
			assert.False(t, ok)
		})
	}
}

func TestShortestPath_Diamond(t *testing.T) {
	g := diamond(t)

	p, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, "A B C D (4)", p.String())
	assert.Equal(t, 3, p.Len())

	w, err := g.PathWeight(p.Labels)
	require.NoError(t, err)
	assert.Equal(t, p.Distance, w)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := diamond(t)

	_, err := dijkstra.ShortestPath(g, "A", "E")
	require.ErrorIs(t, err, core.ErrUnreachable)

	res, err := dijkstra.ShortestDistances(g, "E")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"E": 0}, res.Distances())

	_, err = res.PathTo("A")
	require.ErrorIs(t, err, core.ErrUnreachable)

	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, core.ErrUnknownLabel)
	require.NotErrorIs(t, err, core.ErrUnreachable)
}

func TestShortestPath_SelfPath(t *testing.T) {
	p, err := dijkstra.ShortestPath(diamond(t), "C", "C")
	require.NoError(t, err)
	assert.Equal(t, core.Path{Distance: 0, Labels: []string{"C"}}, p)
}

// TestShortestPath_Symmetric checks that swapping source and target keeps
// the distance on an undirected graph.
func TestShortestPath_Symmetric(t *testing.T) {
	g := diamond(t)
	labels := []string{"A", "B", "C", "D"}
	for _, s := range labels {
		for _, d := range labels {
			fwd, err := dijkstra.ShortestPath(g, s, d)
			require.NoError(t, err)
			back, err := dijkstra.ShortestPath(g, d, s)
			require.NoError(t, err)
			assert.Equal(t, fwd.Distance, back.Distance, "%s↔%s", s, d)
		}
	}
}

// TestShortestDistances_Idempotent checks that repeated runs on an unchanged
// graph agree and leave the graph untouched.
func TestShortestDistances_Idempotent(t *testing.T) {
	g := diamond(t)
	before := g.Edges()

	first, err := dijkstra.ShortestDistances(g, "B")
	require.NoError(t, err)
	second, err := dijkstra.ShortestDistances(g, "B")
	require.NoError(t, err)

	assert.Equal(t, first.Distances(), second.Distances())
	assert.Equal(t, first.Predecessors(), second.Predecessors())
	assert.Equal(t, before, g.Edges())
}

// ------------------------------------------------------------------------
// 3. Decrease-key and ties
// ------------------------------------------------------------------------

// TestDijkstra_DecreaseKey: D is discovered first via A-D=10, then improved
// through B and C; the final predecessor must be C.
func TestDijkstra_DecreaseKey(t *testing.T) {
	g, err := core.NewGraph([]string{"A", "B", "C", "D"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("A", "D", 10))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	for _, kind := range frontiers {
		res, err := dijkstra.ShortestDistances(g, "A", dijkstra.WithFrontier(kind))
		require.NoError(t, err)
		d, _ := res.Distance("D")
		assert.Equal(t, int64(3), d, kind.String())
		pred, _ := res.Predecessor("D")
		assert.Equal(t, "C", pred, kind.String())
	}
}

// TestDijkstra_TieKeepsFirstPredecessor: D is reachable at distance 2 via B
// and via C. B is finalized first and records D; the equal route via C must
// not replace it.
func TestDijkstra_TieKeepsFirstPredecessor(t *testing.T) {
	g, err := core.NewGraph([]string{"A", "B", "C", "D"})
	require.NoError(t, err)
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dijkstra.ShortestDistances(g, "A", dijkstra.WithFrontier(dijkstra.FrontierList))
	require.NoError(t, err)
	pred, ok := res.Predecessor("D")
	require.True(t, ok)
	assert.Equal(t, "B", pred)
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := diamond(t)

	res, err := dijkstra.ShortestDistances(g, "A", dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, res.Distances())

	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(3))
	require.ErrorIs(t, err, core.ErrUnreachable)

	res, err = dijkstra.ShortestDistances(g, "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order())
}

func TestDijkstra_OnFinalize(t *testing.T) {
	g := diamond(t)

	var got []string
	_, err := dijkstra.ShortestDistances(g, "A", dijkstra.WithOnFinalize(func(label string, dist int64) error {
		got = append(got, fmt.Sprintf("%s=%d", label, dist))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A=0", "B=1", "C=3", "D=4"}, got)

	stop := errors.New("stop")
	_, err = dijkstra.ShortestDistances(g, "A", dijkstra.WithOnFinalize(func(label string, _ int64) error {
		if label == "C" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), `"C"`)
}

func TestFrontierKind_String(t *testing.T) {
	assert.Equal(t, "heap", dijkstra.FrontierHeap.String())
	assert.Equal(t, "list", dijkstra.FrontierList.String())
}

// ------------------------------------------------------------------------
// 5. Cross-check against the exhaustive search
// ------------------------------------------------------------------------

// TestShortestPath_AgreesWithExhaustive compares every pair of small random
// graphs against dfs.MinimumWeightSimplePath. Paths may differ when several
// optima exist; distances and reachability must not.
func TestShortestPath_AgreesWithExhaustive(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g, err := builder.BuildGraph(7, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithSymbolIDs(),
			builder.WithUniformWeight(1, 9),
		}, builder.RandomSparse(0.35))
		require.NoError(t, err)

		labels := g.Labels()
		for _, s := range labels {
			for _, d := range labels {
				for _, kind := range frontiers {
					fast, ferr := dijkstra.ShortestPath(g, s, d, dijkstra.WithFrontier(kind))
					slow, serr := dfs.MinimumWeightSimplePath(g, s, d)

					if serr != nil {
						require.ErrorIs(t, serr, core.ErrUnreachable)
						require.ErrorIs(t, ferr, core.ErrUnreachable, "seed %d %s→%s", seed, s, d)
						continue
					}
					require.NoError(t, ferr, "seed %d %s→%s", seed, s, d)
					assert.Equal(t, slow.Distance, fast.Distance, "seed %d %s→%s %s", seed, s, d, kind)

					w, err := g.PathWeight(fast.Labels)
					require.NoError(t, err)
					assert.Equal(t, fast.Distance, w)
					assert.Equal(t, s, fast.Labels[0])
					assert.Equal(t, d, fast.Labels[len(fast.Labels)-1])
				}
			}
		}
	}
}

// TestShortestPath_MaxWeightAgrees builds a chain whose edges sit at
// core.Graph.MaxWeight; both searches must return the same positive total.
func TestShortestPath_MaxWeightAgrees(t *testing.T) {
	g, err := core.NewGraph([]string{"A", "B", "C"})
	require.NoError(t, err)
	limit := g.MaxWeight()
	require.Equal(t, int64(math.MaxInt64/2), limit)
	require.NoError(t, g.AddEdge("A", "B", limit))
	require.NoError(t, g.AddEdge("B", "C", limit))
	require.ErrorIs(t, g.AddEdge("A", "C", limit+1), core.ErrWeightOverflow)

	for _, kind := range frontiers {
		fast, err := dijkstra.ShortestPath(g, "A", "C", dijkstra.WithFrontier(kind))
		require.NoError(t, err, kind.String())
		assert.Equal(t, 2*limit, fast.Distance)
		assert.Equal(t, []string{"A", "B", "C"}, fast.Labels)
	}

	slow, err := dfs.MinimumWeightSimplePath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 2*limit, slow.Distance)
	assert.Positive(t, slow.Distance)
}
