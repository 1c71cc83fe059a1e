// SPDX-License-Identifier: MIT

package engine_test

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/coloring"
	"github.com/katalvlaran/graphcore/core"
	"github.com/katalvlaran/graphcore/dijkstra"
	"github.com/katalvlaran/graphcore/engine"
	"github.com/katalvlaran/graphcore/metrics"
	"github.com/katalvlaran/graphcore/nodelink"
	"github.com/katalvlaran/graphcore/prim_kruskal"
)

func mustUpsert(t *testing.T, e *engine.Engine, u, v string, w int64) {
	t.Helper()
	_, err := e.UpsertEdge(u, v, w)
	require.NoError(t, err)
}

// triangle is A-B(1), B-C(1), A-C(5).
func triangle(t *testing.T) *engine.Engine {
	t.Helper()
	e := engine.New()
	mustUpsert(t, e, "A", "B", 1)
	mustUpsert(t, e, "B", "C", 1)
	mustUpsert(t, e, "A", "C", 5)

	return e
}

func TestUpsertEdge_IdempotentAndUndirected(t *testing.T) {
	e := engine.New()
	desc, err := e.UpsertEdge("A", "B", 5)
	require.NoError(t, err)
	assert.Equal(t, "Connection: [A] --(5)--> [B]", desc)

	mustUpsert(t, e, "A", "B", 5)
	assert.Equal(t, 2, e.NodeCount())
	assert.Equal(t, 1, e.EdgeCount())

	mustUpsert(t, e, "B", "A", 9)
	assert.Equal(t, 1, e.EdgeCount())
	w, ok := e.Graph().Weight(core.MustNodeID("A"), core.MustNodeID("B"))
	require.True(t, ok)
	assert.Equal(t, int64(9), w)
}

func TestUpsertEdge_RejectsWithoutMutation(t *testing.T) {
	e := triangle(t)

	_, err := e.UpsertEdgeText("A", "D", "abc")
	assert.ErrorIs(t, err, engine.ErrInvalidWeight)
	_, err = e.UpsertEdgeText("A", "D", "2.5")
	assert.ErrorIs(t, err, engine.ErrInvalidWeight)
	_, err = e.UpsertEdge("", "D", 1)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = e.UpsertEdge("D", "D", 1)
	assert.ErrorIs(t, err, core.ErrSelfLoop)

	assert.False(t, e.HasNode("D"))
	assert.Equal(t, 3, e.NodeCount())
	assert.Equal(t, 3, e.EdgeCount())

	desc, err := e.UpsertEdgeText(" A ", "D", " 7 ")
	require.NoError(t, err)
	assert.Equal(t, "Connection: [A] --(7)--> [D]", desc)
}

func TestClear_ResetsEverything(t *testing.T) {
	e := triangle(t)
	e.Clear()

	assert.Zero(t, e.NodeCount())
	assert.Zero(t, e.EdgeCount())
	assert.Equal(t, metrics.EmptyText, e.SummaryMetrics())
	assert.Equal(t, "", e.AdjacencyMatrixText())
	edges, total := e.MinimumSpanningForest()
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestShortestPath_Outcomes(t *testing.T) {
	e := triangle(t)

	res := e.ShortestPath("A", "C")
	require.True(t, res.OK())
	assert.Equal(t, core.IDs("A", "B", "C"), res.Path)
	assert.Equal(t, int64(2), res.Cost)

	res = e.ShortestPath("A", "Z")
	assert.Equal(t, dijkstra.NotFound, res.Outcome)
	assert.Equal(t, dijkstra.Infinity, res.Cost)

	require.NoError(t, e.AddNode("Z"))
	res = e.ShortestPath("A", "Z")
	assert.Equal(t, dijkstra.NoPath, res.Outcome)
	assert.Equal(t, dijkstra.Infinity, res.Cost)
	assert.Nil(t, res.Path)
}

func TestMinimumSpanningForest_Disconnected(t *testing.T) {
	e := engine.New()
	mustUpsert(t, e, "A", "B", 2)
	mustUpsert(t, e, "B", "C", 3)
	mustUpsert(t, e, "A", "C", 1)
	mustUpsert(t, e, "D", "E", 4)

	edges, total := e.MinimumSpanningForest()
	assert.Len(t, edges, 3)
	assert.Equal(t, int64(7), total)

	kEdges, kTotal, err := e.SpanningForest(prim_kruskal.MethodKruskal)
	require.NoError(t, err)
	assert.Len(t, kEdges, 3)
	assert.Equal(t, total, kTotal)

	_, _, err = e.SpanningForest("boruvka")
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestTraversals(t *testing.T) {
	e := triangle(t)
	mustUpsert(t, e, "X", "Y", 1)

	assert.Equal(t, []core.Pair{
		{From: core.MustNodeID("A"), To: core.MustNodeID("B")},
		{From: core.MustNodeID("A"), To: core.MustNodeID("C")},
	}, e.BFSEdges("A"))
	assert.Equal(t, []core.Pair{
		{From: core.MustNodeID("A"), To: core.MustNodeID("B")},
		{From: core.MustNodeID("B"), To: core.MustNodeID("C")},
	}, e.DFSEdges("A"))

	assert.Empty(t, e.BFSEdges("nope"))
	assert.Empty(t, e.DFSEdges("nope"))
	assert.NotNil(t, e.BFSEdges("nope"))
}

func TestGreedyColor_Proper(t *testing.T) {
	e := engine.New(engine.WithRand(rand.New(rand.NewSource(1))))
	for i := 0; i < 40; i++ {
		_, err := e.RandomEdge()
		require.NoError(t, err)
	}
	c := e.GreedyColor()
	require.NoError(t, coloring.Validate(e.Graph(), c))
}

func TestRandomEdge_RespectsRanges(t *testing.T) {
	e := engine.New(
		engine.WithRand(rand.New(rand.NewSource(2))),
		engine.WithRandomOptions(builder.WithIDRange(1, 3), builder.WithWeightRange(5, 5)),
	)
	for i := 0; i < 20; i++ {
		_, err := e.RandomEdge()
		require.NoError(t, err)
	}
	g := e.Graph()
	assert.LessOrEqual(t, g.NodeCount(), 3)
	for _, edge := range g.Edges() {
		assert.Equal(t, int64(5), edge.Weight)
	}
}

func TestAdjacencyMatrixText_CellWidth(t *testing.T) {
	e := engine.New(engine.WithCellWidth(1))
	mustUpsert(t, e, "1", "2", 5)
	assert.Equal(t, "   1  2\n-------\n1 | 0  5\n2 | 5  0", e.AdjacencyMatrixText())
	assert.Panics(t, func() { engine.WithCellWidth(0) })
}

func TestPersisted_RoundTripAndFailedLoadKeepsGraph(t *testing.T) {
	e := triangle(t)
	require.NoError(t, e.AddNode("solo"))
	rec := e.ToPersisted()

	other := engine.New()
	require.NoError(t, other.FromPersisted(rec))
	assert.ElementsMatch(t, e.Graph().Nodes(), other.Graph().Nodes())
	assert.Equal(t, e.Graph().Edges(), other.Graph().Edges())

	err := other.FromPersisted(nodelink.Record{Directed: true})
	assert.ErrorIs(t, err, nodelink.ErrMalformed)
	assert.Equal(t, 4, other.NodeCount(), "previous graph kept")
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	e := triangle(t)
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, e.Save(path))

	loaded := engine.New()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, e.Graph().Edges(), loaded.Graph().Edges())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"nodes":[{"id":"A"}],"links":[{"source":"A","target":"B","weight":1}]}`), 0o644))
	assert.ErrorIs(t, loaded.Load(bad), nodelink.ErrMalformed)
	assert.Equal(t, 3, loaded.EdgeCount(), "previous graph kept")
}

func TestGraph_ReturnsSnapshot(t *testing.T) {
	e := triangle(t)
	snap := e.Graph()
	_, _ = snap.UpsertEdge("Q", "R", 1)
	assert.False(t, e.HasNode("Q"))
}

func TestLogger_RecordsActions(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&buf)
	l.SetLevel(log.DebugLevel)

	e := engine.New(engine.WithLogger(l))
	mustUpsert(t, e, "A", "B", 3)
	e.Clear()

	out := buf.String()
	assert.Contains(t, out, "Connection: [A] --(3)--> [B]")
	assert.Contains(t, out, "graph cleared")
}
