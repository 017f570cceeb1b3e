package flow_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/core"
	"github.com/katalvlaran/brocs/flow"
)

func graphOf(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}

	return g
}

func complete(n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprint(i))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(fmt.Sprint(i), fmt.Sprint(j))
		}
	}

	return g
}

func TestLocalVertexCut_Bowtie(t *testing.T) {
	g := graphOf(t,
		[2]string{"a", "b"}, [2]string{"b", "m"}, [2]string{"m", "a"},
		[2]string{"m", "c"}, [2]string{"c", "d"}, [2]string{"d", "m"},
	)
	for _, solver := range []flow.MaxFlowFunc{flow.Dinic, flow.EdmondsKarp} {
		opts := flow.DefaultOptions()
		opts.Solver = solver
		cut, err := flow.LocalVertexCut(g, "a", "d", opts)
		require.NoError(t, err)
		require.Equal(t, []string{"m"}, cut)
	}
}

func TestLocalVertexCut_Errors(t *testing.T) {
	g := graphOf(t, [2]string{"a", "b"}, [2]string{"b", "c"})
	opts := flow.DefaultOptions()

	_, err := flow.LocalVertexCut(g, "a", "b", opts)
	require.ErrorIs(t, err, flow.ErrAdjacentTerminals)
	_, err = flow.LocalVertexCut(g, "a", "a", opts)
	require.ErrorIs(t, err, flow.ErrSameTerminals)
	_, err = flow.LocalVertexCut(g, "z", "a", opts)
	require.ErrorIs(t, err, flow.ErrSourceNotFound)
	_, err = flow.LocalVertexCut(g, "a", "z", opts)
	require.ErrorIs(t, err, flow.ErrSinkNotFound)
	_, err = flow.LocalVertexCut(nil, "a", "c", opts)
	require.ErrorIs(t, err, flow.ErrGraphNil)
}

func TestMinVertexCut(t *testing.T) {
	opts := flow.DefaultOptions()

	// path: the first inner vertex
	cut, err := flow.MinVertexCut(graphOf(t, [2]string{"0", "1"}, [2]string{"1", "2"}, [2]string{"2", "3"}), opts)
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, cut)

	// C6 needs two opposite-side vertices
	c6 := graphOf(t,
		[2]string{"0", "1"}, [2]string{"1", "2"}, [2]string{"2", "3"},
		[2]string{"3", "4"}, [2]string{"4", "5"}, [2]string{"5", "0"},
	)
	cut, err = flow.MinVertexCut(c6, opts)
	require.NoError(t, err)
	require.Len(t, cut, 2)

	// K_{3,3}: κ = 3
	k33 := core.NewGraph()
	for _, l := range []string{"l0", "l1", "l2"} {
		for _, r := range []string{"r0", "r1", "r2"} {
			require.NoError(t, k33.AddEdge(l, r))
		}
	}
	cut, err = flow.MinVertexCut(k33, opts)
	require.NoError(t, err)
	require.Len(t, cut, 3)

	// disconnected graph is already cut
	dis := graphOf(t, [2]string{"a", "b"}, [2]string{"c", "d"})
	cut, err = flow.MinVertexCut(dis, opts)
	require.NoError(t, err)
	require.Empty(t, cut)

	// complete graphs have no cut
	for n := 1; n <= 5; n++ {
		_, err = flow.MinVertexCut(complete(n), opts)
		require.ErrorIs(t, err, flow.ErrNoVertexCut, "K_%d", n)
	}
}
