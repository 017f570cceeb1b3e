package evaluation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/brocs/matrix"
)

// LoadGraphs reads adjacency matrices from paths. A directory contributes
// every file directly inside it whose extension is in matrix.Extensions,
// sorted by name. A graph is named after its file without extension.
func LoadGraphs(paths []string) ([]Graph, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && knownExtension(e.Name()) {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	graphs := make([]Graph, 0, len(files))
	for _, f := range files {
		m, err := matrix.Load(f)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
		g, err := m.ToGraph()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
		base := filepath.Base(f)
		graphs = append(graphs, Graph{Name: strings.TrimSuffix(base, filepath.Ext(base)), Graph: g})
	}

	return graphs, nil
}

func knownExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range matrix.Extensions {
		if ext == known {
			return true
		}
	}

	return false
}
