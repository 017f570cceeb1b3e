package coloring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/coloring"
	"github.com/katalvlaran/brocs/core"
)

// failing refuses every graph with more than one vertex.
type failing struct{}

var errTooBig = errors.New("too big")

func (failing) ColorGraph(g *core.Graph) (coloring.Coloring, error) {
	if g.VertexCount() > 1 {
		return nil, errTooBig
	}

	return coloring.Coloring{0}, nil
}

func triangleEdgeIsolated(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"d", "e"}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.AddVertex("f"))

	return g
}

func TestColorComponents(t *testing.T) {
	g := triangleEdgeIsolated(t)
	for _, name := range coloring.Algorithms() {
		colorer, err := coloring.New(name)
		require.NoError(t, err)

		c, err := coloring.ColorComponents(colorer, g)
		require.NoError(t, err, name)
		require.Len(t, c, 6)
		require.True(t, coloring.IsProper(g, c), name)
		require.Equal(t, 3, coloring.UniqueColors(c), name)
		require.Equal(t, 0, coloring.ByID(g, c)["f"], name)
	}
}

func TestColorComponents_Errors(t *testing.T) {
	_, err := coloring.ColorComponents(coloring.NewBrooks(), nil)
	require.ErrorIs(t, err, coloring.ErrInvalidInputGraph)

	_, err = coloring.ColorComponents(failing{}, triangleEdgeIsolated(t))
	require.ErrorIs(t, err, errTooBig)
	require.Contains(t, err.Error(), `component of "a"`)

	// a connected graph goes to the colorer unchanged
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))
	c, err := coloring.ColorComponents(failing{}, g)
	require.NoError(t, err)
	require.Equal(t, coloring.Coloring{0}, c)
}
