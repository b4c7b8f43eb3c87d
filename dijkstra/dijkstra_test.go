// Package dijkstra_test exercises the public engine surface: validation,
// the reference scenario on both strategies, abort handling and logging.
package dijkstra_test

import (
	"context"
	"errors"
	"testing"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tripplan/core"
	"github.com/katalvlaran/tripplan/dijkstra"
)

var strategies = []dijkstra.Strategy{dijkstra.StrategyBinaryHeap, dijkstra.StrategyBucketQueue}

// scenarioGraph: A—B(1), B—C(2), A—C(5), C—D(1); E isolated.
func scenarioGraph(t testing.TB) *core.Graph {
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}, {"C", "D", 1}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("E"))

	return g
}

func TestRun_Validation(t *testing.T) {
	g := scenarioGraph(t)

	_, err := dijkstra.ShortestPaths(nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.ShortestPaths(g, "")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.ShortestPaths(g, "Z")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = dijkstra.ShortestPaths(g, "A", dijkstra.WithStrategy(dijkstra.Strategy(42)))
	require.ErrorIs(t, err, dijkstra.ErrUnknownStrategy)

	assert.Panics(t, func() { dijkstra.WithMaxBuckets(0) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

func TestRun_RejectsNegativeWeights(t *testing.T) {
	g := scenarioGraph(t)
	for _, e := range g.Edges() {
		e.Weight = -e.Weight
	}

	_, err := dijkstra.ShortestPaths(g, "A")
	require.ErrorIs(t, err, dijkstra.ErrInvalidWeight)
	require.ErrorIs(t, err, core.ErrInvalidWeight)
}

func TestRun_BucketRange(t *testing.T) {
	g := scenarioGraph(t)

	// MaxWeight 5 × 5 vertices + 1 = 26 buckets.
	_, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithBucketQueue(), dijkstra.WithMaxBuckets(25))
	require.ErrorIs(t, err, dijkstra.ErrBucketRangeTooLarge)

	res, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithBucketQueue(), dijkstra.WithMaxBuckets(26))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.StrategyBucketQueue, res.Strategy())

	huge := core.NewGraph()
	_, err = huge.AddEdge("X", "Y", 1<<62)
	require.NoError(t, err)
	_, err = dijkstra.ShortestPaths(huge, "X", dijkstra.WithBucketQueue())
	require.ErrorIs(t, err, dijkstra.ErrBucketRangeTooLarge)

	// The heap has no such limit, and large weights do not overflow.
	res, err = dijkstra.ShortestPaths(huge, "X")
	require.NoError(t, err)
	d, err := res.Distance("Y")
	require.NoError(t, err)
	assert.Equal(t, int64(1<<62), d)
}

func TestRun_Scenario(t *testing.T) {
	for _, s := range strategies {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			g := scenarioGraph(t)
			res, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithStrategy(s))
			require.NoError(t, err)

			assert.Equal(t, map[string]int64{
				"A": 0, "B": 1, "C": 3, "D": 4, "E": dijkstra.Infinity,
			}, res.Distances())
			assert.Equal(t, map[string]string{
				"A": "", "B": "A", "C": "B", "D": "C", "E": "",
			}, res.Predecessors())

			p, err := res.PathBetween("A", "D")
			require.NoError(t, err)
			assert.True(t, p.Found())
			assert.Equal(t, []string{"A", "B", "C", "D"}, p.Vertices)
			assert.Equal(t, int64(4), p.Distance)
			assert.Equal(t, 3, p.Hops())
			assert.Equal(t, "A -> B -> C -> D (4)", p.String())

			p, err = res.PathBetween("A", "E")
			require.NoError(t, err)
			assert.False(t, p.Found())
			assert.Equal(t, dijkstra.Infinity, p.Distance)
			assert.Equal(t, "no path", p.String())

			assert.True(t, res.Reachable("D"))
			assert.False(t, res.Reachable("E"))
			assert.False(t, res.Reachable("Z"))

			n, err := res.Node("E")
			require.NoError(t, err)
			assert.Equal(t, dijkstra.StateUnvisited, n.State())
			n, err = res.Node("C")
			require.NoError(t, err)
			assert.Equal(t, dijkstra.StateFinalized, n.State())
			assert.Equal(t, "B", n.Predecessor())

			st := res.Stats()
			assert.Equal(t, 4, st.Finalized)
			// E is never counted: the heap reaches it at Infinity, the bucket
			// queue parks it.
			assert.Equal(t, 4, st.Extractions)
		})
	}
}

func TestRun_EqualCostPrefersSmallerID(t *testing.T) {
	// Z is reached at 2 both directly from S and through B.
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"S", "Z", 2}, {"S", "B", 1}, {"B", "Z", 1}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	for _, s := range strategies {
		res, err := dijkstra.ShortestPaths(g, "S", dijkstra.WithStrategy(s))
		require.NoError(t, err)

		d, err := res.Distance("Z")
		require.NoError(t, err)
		assert.Equal(t, int64(2), d, s.String())
		prev, err := res.Predecessor("Z")
		require.NoError(t, err)
		assert.Equal(t, "B", prev, s.String())
	}
}

func TestRun_InfEdgeThreshold(t *testing.T) {
	g := scenarioGraph(t)

	for _, s := range strategies {
		// B—C(2) and A—C(5) are closed; only A—B stays open.
		res, err := dijkstra.ShortestPaths(g, "A",
			dijkstra.WithStrategy(s), dijkstra.WithInfEdgeThreshold(2))
		require.NoError(t, err)

		assert.Equal(t, map[string]int64{
			"A": 0, "B": 1, "C": dijkstra.Infinity, "D": dijkstra.Infinity, "E": dijkstra.Infinity,
		}, res.Distances(), s.String())
		assert.Equal(t, 1, res.Stats().Relaxations, s.String())
	}

	// Open edges peak at weight 1, so 1×5+1 buckets suffice where 26 were needed.
	_, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithBucketQueue(), dijkstra.WithMaxBuckets(6))
	require.ErrorIs(t, err, dijkstra.ErrBucketRangeTooLarge)
	_, err = dijkstra.ShortestPaths(g, "A", dijkstra.WithBucketQueue(),
		dijkstra.WithMaxBuckets(6), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)

	// A closed road beyond the bucket cap no longer rules the bucket queue out.
	_, err = g.AddEdge("D", "E", 1<<40)
	require.NoError(t, err)
	res, err := dijkstra.ShortestPaths(g, "A", dijkstra.WithBucketQueue(), dijkstra.WithInfEdgeThreshold(1<<40))
	require.NoError(t, err)
	assert.False(t, res.Reachable("E"))
}

func TestRun_MaxDistance(t *testing.T) {
	g := scenarioGraph(t)

	for _, s := range strategies {
		res, err := dijkstra.ShortestPaths(g, "A",
			dijkstra.WithStrategy(s), dijkstra.WithMaxDistance(3), dijkstra.WithMaxBuckets(4))
		require.NoError(t, err)

		assert.Equal(t, map[string]int64{
			"A": 0, "B": 1, "C": 3, "D": dijkstra.Infinity, "E": dijkstra.Infinity,
		}, res.Distances(), s.String())
		assert.Equal(t, 3, res.Stats().Finalized, s.String())

		p, err := res.PathTo("D")
		require.NoError(t, err)
		assert.False(t, p.Found())
	}
}

func TestRun_SingleVertex(t *testing.T) {
	for _, s := range strategies {
		g := core.NewGraph()
		require.NoError(t, g.AddVertex("Solo"))

		res, err := dijkstra.ShortestPaths(g, "Solo", dijkstra.WithStrategy(s))
		require.NoError(t, err)

		d, err := res.Distance("Solo")
		require.NoError(t, err)
		assert.Equal(t, int64(0), d)

		p, err := res.PathTo("Solo")
		require.NoError(t, err)
		assert.Equal(t, []string{"Solo"}, p.Vertices)
		assert.Equal(t, 0, p.Hops())
	}
}

func TestResult_NotFound(t *testing.T) {
	res, err := dijkstra.ShortestPaths(scenarioGraph(t), "A")
	require.NoError(t, err)

	_, err = res.Distance("Z")
	require.ErrorIs(t, err, dijkstra.ErrNotFound)
	_, err = res.Predecessor("Z")
	require.ErrorIs(t, err, dijkstra.ErrNotFound)
	_, err = res.Node("Z")
	require.ErrorIs(t, err, dijkstra.ErrNotFound)
	_, err = res.PathTo("Z")
	require.ErrorIs(t, err, dijkstra.ErrNotFound)
	_, err = res.PathBetween("Z", "D")
	require.ErrorIs(t, err, dijkstra.ErrNotFound)

	_, err = res.PathBetween("B", "D")
	require.ErrorIs(t, err, dijkstra.ErrSourceMismatch)
}

func TestRun_FreshStatePerRun(t *testing.T) {
	g := scenarioGraph(t)

	first, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)
	fromD, err := dijkstra.ShortestPaths(g, "D")
	require.NoError(t, err)
	again, err := dijkstra.ShortestPaths(g, "A")
	require.NoError(t, err)

	// A run from another source leaves the earlier result untouched.
	d, err := first.Distance("D")
	require.NoError(t, err)
	assert.Equal(t, int64(4), d)
	d, err = fromD.Distance("A")
	require.NoError(t, err)
	assert.Equal(t, int64(4), d)

	// Identical inputs, identical tables, distinct runs.
	assert.Equal(t, first.Distances(), again.Distances())
	assert.Equal(t, first.Predecessors(), again.Predecessors())
	assert.NotEqual(t, first.ID(), again.ID())
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, first.Vertices())
	assert.Equal(t, 5, first.Len())
	assert.Equal(t, "A", first.Source())
}

func TestRun_Abort(t *testing.T) {
	for _, s := range strategies {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := dijkstra.Run(ctx, scenarioGraph(t), "A", dijkstra.WithStrategy(s))
		require.Nil(t, res)
		require.ErrorIs(t, err, dijkstra.ErrAborted)
		require.True(t, errors.Is(err, context.Canceled))
	}
}

func TestRun_Logging(t *testing.T) {
	var records []*log15.Record
	logger := log15.New()
	logger.SetHandler(log15.FuncHandler(func(r *log15.Record) error {
		records = append(records, r)
		return nil
	}))

	res, err := dijkstra.ShortestPaths(scenarioGraph(t), "A", dijkstra.WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "run started", records[0].Msg)
	assert.Equal(t, "run finished", records[1].Msg)
	assert.Contains(t, records[1].Ctx, res.ID().String())

	records = nil
	_, err = dijkstra.ShortestPaths(scenarioGraph(t), "A", dijkstra.WithLogger(nil))
	require.NoError(t, err)
	assert.Empty(t, records, "nil logger keeps the discarding default")
}
