package evaluation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// CSV file names written by SaveCSV.
const (
	GraphsCSV  = "graphs.csv"
	ResultsCSV = "results.csv"
)

var (
	graphsHeader  = []string{"graph_name", "num_of_vertices", "num_of_edges", "big_delta"}
	resultsHeader = []string{"run_id", "graph_name", "alg_name", "time", "number_of_colors", "proper", "coloring"}
)

// WriteCSV writes the graphs table to graphs and one row per result to
// results. Times are nanoseconds; a coloring is its colors joined by spaces.
func WriteCSV(graphs, results io.Writer, r *Report) error {
	gw := csv.NewWriter(graphs)
	if err := gw.Write(graphsHeader); err != nil {
		return err
	}
	for _, g := range r.Graphs {
		if err := gw.Write([]string{
			g.Name, strconv.Itoa(g.Vertices), strconv.Itoa(g.Edges), strconv.Itoa(g.MaxDegree),
		}); err != nil {
			return err
		}
	}
	gw.Flush()
	if err := gw.Error(); err != nil {
		return fmt.Errorf("graphs csv: %w", err)
	}

	rw := csv.NewWriter(results)
	if err := rw.Write(resultsHeader); err != nil {
		return err
	}
	for _, res := range r.Results {
		if err := rw.Write([]string{
			res.RunID,
			res.Graph,
			res.Algorithm,
			strconv.FormatInt(res.Duration.Nanoseconds(), 10),
			strconv.Itoa(res.UniqueColors),
			strconv.FormatBool(res.Proper),
			joinColors(res.Coloring),
		}); err != nil {
			return err
		}
	}
	rw.Flush()
	if err := rw.Error(); err != nil {
		return fmt.Errorf("results csv: %w", err)
	}

	return nil
}

// SaveCSV writes GraphsCSV and ResultsCSV into dir, creating it if needed.
func SaveCSV(dir string, r *Report) (err error) {
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	gf, err := os.Create(filepath.Join(dir, GraphsCSV))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := gf.Close(); err == nil {
			err = cerr
		}
	}()
	rf, err := os.Create(filepath.Join(dir, ResultsCSV))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rf.Close(); err == nil {
			err = cerr
		}
	}()

	return WriteCSV(gf, rf, r)
}

// WriteYAML writes the whole report as a YAML document.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report yaml: %w", err)
	}

	return enc.Close()
}

func joinColors(c []int) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
