package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/builder"
	"github.com/katalvlaran/brocs/coloring"
	"github.com/katalvlaran/brocs/core"
)

// mustBuild builds a fixture or fails the test.
func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, cons...)
	require.NoError(t, err)

	return g
}

func TestConnectedSequential_PathAlternates(t *testing.T) {
	g := mustBuild(t, builder.Path(8))
	for _, cs := range []*coloring.ConnectedSequential{
		coloring.NewConnectedSequential(),
		coloring.NewConnectedSequential(coloring.WithSeed(3)),
	} {
		c, err := cs.ColorGraph(g)
		require.NoError(t, err)
		require.Len(t, c, 8)
		require.True(t, coloring.IsProper(g, c))
		require.Equal(t, 2, coloring.UniqueColors(c))
		for i := 0; i+2 < len(c); i++ {
			require.Equal(t, c[i], c[i+2], "colors must alternate along the path")
		}
	}
}

func TestConnectedSequential_Cycles(t *testing.T) {
	for n := 3; n <= 10; n++ {
		g := mustBuild(t, builder.Cycle(n))
		c, err := coloring.NewConnectedSequential(coloring.WithSeed(int64(n))).ColorGraph(g)
		require.NoError(t, err)
		require.True(t, coloring.IsProper(g, c))
		want := 2
		if n%2 == 1 {
			want = 3
		}
		require.Equal(t, want, coloring.UniqueColors(c), "C_%d", n)
	}
}

func TestConnectedSequential_GreedyBound(t *testing.T) {
	for _, cons := range []builder.Constructor{
		builder.Complete(5),
		builder.Wheel(6),
		builder.DoubleTwinKite(),
		builder.ConnectedCaveman(3, 5),
		builder.RandomConnected(40, 120),
	} {
		g := mustBuild(t, cons)
		c, err := coloring.NewConnectedSequential().ColorGraph(g)
		require.NoError(t, err)
		require.True(t, coloring.IsProper(g, c))
		require.LessOrEqual(t, coloring.UniqueColors(c), coloring.MaxDegree(g)+1)
	}
}

func TestConnectedSequential_SeedDeterminism(t *testing.T) {
	g := mustBuild(t, builder.RandomConnected(60, 150))
	first, err := coloring.NewConnectedSequential(coloring.WithSeed(42)).ColorGraph(g)
	require.NoError(t, err)
	second, err := coloring.NewConnectedSequential(coloring.WithSeed(42)).ColorGraph(g)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// the same colorer value also repeats itself
	cs := coloring.NewConnectedSequential(coloring.WithSeed(7))
	a, _ := cs.ColorGraph(g)
	b, _ := cs.ColorGraph(g)
	require.Equal(t, a, b)
}

func TestConnectedSequential_InvalidInput(t *testing.T) {
	cs := coloring.NewConnectedSequential()
	_, err := cs.ColorGraph(nil)
	require.ErrorIs(t, err, coloring.ErrInvalidInputGraph)

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddVertex("c"))
	_, err = cs.ColorGraph(g)
	require.ErrorIs(t, err, coloring.ErrInvalidInputGraph)

	c, err := cs.ColorGraph(core.NewGraph())
	require.NoError(t, err)
	require.Empty(t, c)
}

func TestNew(t *testing.T) {
	for _, name := range coloring.Algorithms() {
		c, err := coloring.New(name)
		require.NoError(t, err)
		require.NotNil(t, c)
	}
	_, err := coloring.New("dsatur")
	require.ErrorIs(t, err, coloring.ErrUnknownAlgorithm)
}
