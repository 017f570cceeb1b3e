package coloring

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/core"
)

// numbered builds a graph on vertices "0".."n-1" with the given edges.
func numbered(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprint(i)))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(fmt.Sprint(e[0]), fmt.Sprint(e[1])))
	}

	return g
}

func pathEdges(n int) [][2]int {
	var out [][2]int
	for i := 0; i+1 < n; i++ {
		out = append(out, [2]int{i, i + 1})
	}

	return out
}

func TestDistanceTwoPairs(t *testing.T) {
	d := newDense(numbered(t, 4, pathEdges(4)...))
	require.Equal(t, [][2]int{{0, 2}, {1, 3}}, distanceTwoPairs(d))

	k4 := numbered(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3})
	require.Empty(t, distanceTwoPairs(newDense(k4)))
}

func TestCommonNeighbor(t *testing.T) {
	// 0 and 3 share 1 and 2; the smaller wins
	d := newDense(numbered(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 3}))
	require.Equal(t, 1, commonNeighbor(d, 0, 3))
	require.Equal(t, -1, commonNeighbor(d, 0, 1))
}

func TestSequence(t *testing.T) {
	// K_{2,3} with sides {0,1} and {2,3,4}; the pair sits on the larger side
	g := numbered(t, 5,
		[2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4},
		[2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4},
	)
	d := newDense(g)
	c, err := sequence(d, 2, 3, -1)
	require.NoError(t, err)
	require.Equal(t, Coloring{1, 1, 0, 0, 0}, c)
	require.True(t, IsProper(g, c))
}

func TestSequence_Violations(t *testing.T) {
	d := newDense(numbered(t, 5, pathEdges(5)...))

	cases := []struct {
		name    string
		a, b, x int
	}{
		{"adjacent pair", 0, 1, -1},
		{"same vertex", 2, 2, -1},
		{"no common neighbor", 0, 3, -1},
		{"x not adjacent to both", 0, 2, 3},
		{"remainder disconnected", 1, 3, 2},
	}
	for _, tc := range cases {
		_, err := sequence(d, tc.a, tc.b, tc.x)
		require.ErrorIs(t, err, ErrInvariantViolation, tc.name)
	}
}

func TestSwapColors(t *testing.T) {
	c := Coloring{0, 1, 2, 1, 0}
	swapColors(c, 0, 2)
	require.Equal(t, Coloring{2, 1, 0, 1, 2}, c)
}

func TestResolveTwoConnected_Simple(t *testing.T) {
	// K_{3,3}: G−t is K_{2,3}, still 2-connected
	var edges [][2]int
	for l := 0; l < 3; l++ {
		for r := 3; r < 6; r++ {
			edges = append(edges, [2]int{l, r})
		}
	}
	g := numbered(t, 6, edges...)
	d := newDense(g)
	b := NewBrooks()

	a, other, x, kind, err := b.resolveTwoConnected(g, d, 0)
	require.NoError(t, err)
	require.Equal(t, CaseTwoConnectedSimple, kind)
	require.Equal(t, []int{0, 1, -1}, []int{a, other, x})

	c, err := sequence(d, a, other, x)
	require.NoError(t, err)
	require.True(t, IsProper(g, c))
	require.Equal(t, 2, UniqueColors(c))
}

func TestResolveTwoConnected_Blocks(t *testing.T) {
	// bowtie 1-2-3, 3-4-5 hinged at 3, plus t=0 joined to 1, 3 and 5
	g := numbered(t, 6,
		[2]int{0, 1}, [2]int{0, 3}, [2]int{0, 5},
		[2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{3, 5},
	)
	d := newDense(g)
	b := NewBrooks()

	a, other, x, kind, err := b.resolveTwoConnected(g, d, 0)
	require.NoError(t, err)
	require.Equal(t, CaseTwoConnectedBlocks, kind)
	require.Equal(t, 0, x)
	require.ElementsMatch(t, []int{1, 5}, []int{a, other})

	c, err := sequence(d, a, other, x)
	require.NoError(t, err)
	require.True(t, IsProper(g, c))
	require.LessOrEqual(t, UniqueColors(c), g.MaxDegree())
}

func TestBlockPair_TooFewEndBlocks(t *testing.T) {
	// G−t is a triangle: one block, no end-blocks
	g := numbered(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 2}, [2]int{2, 3}, [2]int{1, 3})
	d := newDense(g)
	gt := core.InducedSubgraph(g, map[string]bool{"1": true, "2": true, "3": true})

	_, _, _, _, err := blockPair(d, gt, 0)
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestTwoConnected_Degenerate(t *testing.T) {
	var buf bytes.Buffer
	var seen []Case
	b := NewBrooks(
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		WithOnCase(func(c Case, _ int) { seen = append(seen, c) }),
	)
	edges := append(pathEdges(5), [2]int{4, 0})
	g := numbered(t, 5, edges...)

	c, err := b.twoConnected(g, newDense(g))
	require.NoError(t, err)
	require.True(t, IsProper(g, c))
	require.Equal(t, []Case{CaseDegenerate}, seen)
	require.Contains(t, buf.String(), "level=WARN")
}

func TestCase_String(t *testing.T) {
	require.Equal(t, "two-connected-blocks", CaseTwoConnectedBlocks.String())
	require.Equal(t, "Case(42)", Case(42).String())
}
