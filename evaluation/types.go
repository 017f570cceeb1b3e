package evaluation

import (
	"time"

	"github.com/katalvlaran/brocs/coloring"
	"github.com/katalvlaran/brocs/core"
)

// Graph is a graph together with the name it is reported under.
type Graph struct {
	Name  string
	Graph *core.Graph
}

// Result is the outcome of one evaluation.
type Result struct {
	RunID        string            `yaml:"run_id"`
	Graph        string            `yaml:"graph"`
	Algorithm    string            `yaml:"algorithm"`
	Vertices     int               `yaml:"vertices"`
	Edges        int               `yaml:"edges"`
	MaxDegree    int               `yaml:"max_degree"`
	UniqueColors int               `yaml:"unique_colors"`
	Duration     time.Duration     `yaml:"duration"`
	Proper       bool              `yaml:"proper"`
	Coloring     coloring.Coloring `yaml:"coloring,flow"`
}

// GraphStats describes an input graph.
type GraphStats struct {
	Name      string `yaml:"name"`
	Vertices  int    `yaml:"vertices"`
	Edges     int    `yaml:"edges"`
	MaxDegree int    `yaml:"max_degree"`
}

// Summary condenses the repeated runs of one algorithm on one graph.
// BestColoring is the first coloring that used MinColors colors.
type Summary struct {
	Graph           string            `yaml:"graph"`
	Algorithm       string            `yaml:"algorithm"`
	Runs            int               `yaml:"runs"`
	Failures        int               `yaml:"failures"`
	MinColors       int               `yaml:"min_colors"`
	AllProper       bool              `yaml:"all_proper"`
	AverageDuration time.Duration     `yaml:"average_duration"`
	BestColoring    coloring.Coloring `yaml:"best_coloring,flow"`
}

// Report is everything Run produced. Results keep evaluation order:
// graph, then algorithm, then repetition.
type Report struct {
	RunID     string       `yaml:"run_id"`
	Started   time.Time    `yaml:"started"`
	Graphs    []GraphStats `yaml:"graphs"`
	Results   []Result     `yaml:"results"`
	Summaries []Summary    `yaml:"summaries"`
}

// Summary returns the summary for (graph, algorithm).
func (r *Report) Summary(graph, algorithm string) (Summary, bool) {
	for _, s := range r.Summaries {
		if s.Graph == graph && s.Algorithm == algorithm {
			return s, true
		}
	}

	return Summary{}, false
}
