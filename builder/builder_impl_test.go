// File: builder_impl_test.go
// Package builder_test contains functional tests for the Constructor
// implementations, verifying topology, counts, idempotence and weights.
package builder_test

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcore/builder"
	"github.com/katalvlaran/graphcore/core"
)

// edgeKey identifies an edge by its canonical endpoints.
type edgeKey struct{ U, V string }

// edgeWeights maps canonical edge endpoints to weights.
func edgeWeights(g *core.Graph) map[edgeKey]int64 {
	m := make(map[edgeKey]int64)
	for _, e := range g.Edges() {
		m[edgeKey{U: e.U.String(), V: e.V.String()}] = e.Weight
	}

	return m
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	const defaultWeight = builder.DefaultEdgeWeight

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for _, k := range []edgeKey{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "4"}, {"0", "4"}} {
					if w, ok := edges[k]; !ok || w != defaultWeight {
						t.Errorf("Cycle: missing or wrong weight for edge %v: got %d, ok=%v", k, w, ok)
					}
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				for i := 0; i < 3; i++ {
					k := edgeKey{fmt.Sprint(i), fmt.Sprint(i + 1)}
					if w, ok := edges[k]; !ok || w != defaultWeight {
						t.Errorf("Path: missing or wrong weight for edge %v", k)
					}
				}
			},
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				hub := core.MustNodeID(builder.CenterVertexID)
				if d := g.Degree(hub); d != 3 {
					t.Errorf("Star: hub degree %d, want 3", d)
				}
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, n := range g.Nodes() {
					if d := g.Degree(n); d != 3 {
						t.Errorf("Complete: degree(%s)=%d, want 3", n, d)
					}
				}
			},
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				edges := edgeWeights(g)
				if _, ok := edges[edgeKey{"L0", "R0"}]; !ok {
					t.Error("CompleteBipartite: missing L0-R0")
				}
				if _, ok := edges[edgeKey{"L0", "L1"}]; ok {
					t.Error("CompleteBipartite: unexpected L0-L1")
				}
			},
		},
		{
			name:  "RandomSparse_p0(5)",
			ctor:  builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
			sampleCheck: func(*testing.T, *core.Graph) {},
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10,
			sampleCheck: func(*testing.T, *core.Graph) {},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph(%s) returned error: %v", tc.name, err)
			}
			if got := g.NodeCount(); got != tc.wantV {
				t.Errorf("vertices: got %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges: got %d, want %d", got, tc.wantE)
			}
			tc.sampleCheck(t, g)

			// idempotence: running the same constructor twice changes nothing
			g, err = builder.BuildGraph(nil, tc.ctor, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph(%s, %s) returned error: %v", tc.name, tc.name, err)
			}
			if g.NodeCount() != tc.wantV || g.EdgeCount() != tc.wantE {
				t.Errorf("idempotence: counts changed after re-run of %s", tc.name)
			}
		})
	}
}

func TestBuilders_ParameterErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		ctor builder.Constructor
		want error
	}{
		"Cycle(2)":             {builder.Cycle(2), builder.ErrTooFewVertices},
		"Path(1)":              {builder.Path(1), builder.ErrTooFewVertices},
		"Star(1)":              {builder.Star(1), builder.ErrTooFewVertices},
		"Complete(0)":          {builder.Complete(0), builder.ErrTooFewVertices},
		"CompleteBipartite(0)": {builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		"RandomSparse(p=1.5)":  {builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		"RandomSparse(no rng)": {builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		"RandomEdges(no rng)":  {builder.RandomEdges(2), builder.ErrNeedRandSource},
		"RandomEdges(-1)":      {builder.RandomEdges(-1), builder.ErrTooFewVertices},
		"nil constructor":      {nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, name)
	}

	_, err := builder.BuildGraph(nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestBuilders_WeightAndIDOptions checks that weight and ID schemes reach the graph.
func TestBuilders_WeightAndIDOptions(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantWeight(9)},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, map[edgeKey]int64{{"A", "B"}: 9, {"B", "C"}: 9}, edgeWeights(g))

	g, err = builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbNumb("n"), builder.WithSeed(1), builder.WithUniformWeight(1, 20)},
		builder.Complete(5),
	)
	require.NoError(t, err)
	assert.Equal(t, core.IDs("n0", "n1", "n2", "n3", "n4"), g.NodesSortedForDisplay())
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(20))
	}
}

// TestRandomSparse_DeterministicPerSeed: the same seed yields the same graph.
func TestRandomSparse_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 9)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)

		return g
	}
	assert.Equal(t, build(5).Edges(), build(5).Edges())
}

func TestRandomEdge_Contract(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(99))
	seenIDs := map[int]bool{}
	seenW := map[int64]bool{}
	for i := 0; i < 3000; i++ {
		u, v, w, err := builder.RandomEdge(r)
		require.NoError(t, err)
		require.NotEqual(t, u, v, "endpoints must differ")
		for _, s := range []string{u, v} {
			n, convErr := strconv.Atoi(s)
			require.NoError(t, convErr)
			require.GreaterOrEqual(t, n, builder.DefaultRandomIDMin)
			require.LessOrEqual(t, n, builder.DefaultRandomIDMax)
			seenIDs[n] = true
		}
		require.GreaterOrEqual(t, w, builder.DefaultRandomWeightMin)
		require.LessOrEqual(t, w, builder.DefaultRandomWeightMax)
		seenW[w] = true
	}
	assert.Len(t, seenIDs, 9, "8..16 inclusive")
	assert.Len(t, seenW, 20, "1..20 inclusive")

	_, _, _, err := builder.RandomEdge(nil)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	u, v, w, err := builder.RandomEdge(nil, builder.WithSeed(3), builder.WithIDRange(1, 2), builder.WithWeightRange(7, 7))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "2"}, []string{u, v})
	assert.Equal(t, int64(7), w)
}

// TestRandomEdge_ExtremeRanges draws across the widest accepted ranges
// without overflowing the span arithmetic.
func TestRandomEdge_ExtremeRanges(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		u, v, w, err := builder.RandomEdge(r,
			builder.WithIDRange(0, math.MaxInt),
			builder.WithWeightRange(0, math.MaxInt64))
		require.NoError(t, err)
		require.NotEqual(t, u, v)
		require.GreaterOrEqual(t, w, int64(0))
		for _, s := range []string{u, v} {
			n, convErr := strconv.ParseInt(s, 10, 64)
			require.NoError(t, convErr)
			require.GreaterOrEqual(t, n, int64(0))
		}
	}

	// top of the range: the only pair is {MaxInt-1, MaxInt}
	u, v, w, err := builder.RandomEdge(r,
		builder.WithIDRange(math.MaxInt-1, math.MaxInt),
		builder.WithWeightRange(math.MaxInt64, math.MaxInt64))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{strconv.Itoa(math.MaxInt - 1), strconv.Itoa(math.MaxInt)}, []string{u, v})
	assert.Equal(t, int64(math.MaxInt64), w)

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformWeight(1, math.MaxInt64)},
		builder.Path(30))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
	}
}

func TestRandomEdges_UpsertsIntoGraph(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomEdges(10))
	require.NoError(t, err)
	assert.LessOrEqual(t, g.EdgeCount(), 10)
	assert.Positive(t, g.EdgeCount())
	for _, n := range g.Nodes() {
		v, ok := n.Int()
		require.True(t, ok)
		assert.True(t, v >= 8 && v <= 16)
	}
}
