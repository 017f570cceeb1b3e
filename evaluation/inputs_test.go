package evaluation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/builder"
	"github.com/katalvlaran/brocs/evaluation"
	"github.com/katalvlaran/brocs/matrix"
)

func TestLoadGraphs(t *testing.T) {
	dir := t.TempDir()
	for name, cons := range map[string]builder.Constructor{
		"b_shovel.npy": builder.Shovel(),
		"a_k4.json":    builder.Complete(4),
		"c_c5.txt":     builder.Cycle(5),
	} {
		m, err := matrix.FromGraph(fixture(t, cons))
		require.NoError(t, err)
		require.NoError(t, matrix.Save(filepath.Join(dir, name), m))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.npy"), 0o755))

	single := filepath.Join(t.TempDir(), "p3.yaml")
	m, err := matrix.FromGraph(fixture(t, builder.Path(3)))
	require.NoError(t, err)
	require.NoError(t, matrix.Save(single, m))

	graphs, err := evaluation.LoadGraphs([]string{dir, single})
	require.NoError(t, err)
	names := make([]string, len(graphs))
	for i, g := range graphs {
		names[i] = g.Name
	}
	require.Equal(t, []string{"a_k4", "b_shovel", "c_c5", "p3"}, names)
	require.Equal(t, 7, graphs[1].Graph.EdgeCount())
	require.Equal(t, 5, graphs[2].Graph.VertexCount())
}

func TestLoadGraphs_Errors(t *testing.T) {
	_, err := evaluation.LoadGraphs([]string{filepath.Join(t.TempDir(), "absent.npy")})
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "loop.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 0\n0 0\n"), 0o644))
	_, err = evaluation.LoadGraphs([]string{bad})
	require.ErrorIs(t, err, matrix.ErrNonZeroDiagonal)
}
