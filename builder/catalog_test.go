package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/bfs"
	"github.com/katalvlaran/brocs/builder"
)

func TestCatalog_BuildsEveryFixture(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range builder.Catalog() {
		require.False(t, seen[f.Name], "duplicate fixture %s", f.Name)
		seen[f.Name] = true

		var opts []builder.BuilderOption
		if f.Random {
			opts = append(opts, builder.WithSeed(1))
		}
		g, err := builder.BuildGraph(opts, f.Constructor)
		require.NoError(t, err, f.Name)
		require.Positive(t, g.VertexCount(), f.Name)
		if f.Random {
			continue
		}
		ok, err := bfs.IsConnected(g)
		require.NoError(t, err)
		require.True(t, ok, "%s should be connected", f.Name)
	}
}

func TestLookup(t *testing.T) {
	f, err := builder.Lookup("shovel")
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, f.Constructor)
	require.NoError(t, err)
	require.Equal(t, 7, g.VertexCount())

	_, err = builder.Lookup("fish")
	require.ErrorIs(t, err, builder.ErrConstructFailed)
	require.Contains(t, builder.Names(), "double_twin_kite")
}

func TestRandomSuite(t *testing.T) {
	suite, err := builder.RandomSuite(1)
	require.NoError(t, err)
	require.Len(t, suite, 49)
	require.Equal(t, "random_10_5_g1", suite[0].Name)

	suite, err = builder.RandomSuite(2)
	require.NoError(t, err)
	require.Len(t, suite, 98)

	_, err = builder.RandomSuite(0)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}
