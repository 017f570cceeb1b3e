package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/brocs/coloring"
)

// Run evaluates every graph with every algorithm repeat times. Repetition
// i seeds the colorer with the base seed (WithSeed, default 0) plus i.
//
// A failing evaluation is logged and counted in its Summary; the run goes
// on. Cancellation of ctx stops the run and returns the partial report
// together with ctx.Err().
//
// Errors: ErrNoGraphs, ErrNoAlgorithms, ErrInvalidRepeat, ErrUnknownAlgorithm
// (checked before anything runs), ctx.Err().
func (e *Evaluator) Run(ctx context.Context, graphs []Graph, algorithms []string, repeat int) (*Report, error) {
	switch {
	case len(graphs) == 0:
		return nil, ErrNoGraphs
	case len(algorithms) == 0:
		return nil, ErrNoAlgorithms
	case repeat < 1:
		return nil, fmt.Errorf("repeat %d: %w", repeat, ErrInvalidRepeat)
	}
	for _, alg := range algorithms {
		if _, err := coloring.New(alg); err != nil {
			return nil, err
		}
	}

	report := &Report{RunID: newRunID(), Started: time.Now().UTC()}
	log := e.logger.With(slog.String("run_id", report.RunID))
	log.Info("run started", slog.Int("graphs", len(graphs)), slog.Any("algorithms", algorithms), slog.Int("repeat", repeat))

	for _, gr := range graphs {
		stats := GraphStats{Name: gr.Name}
		if gr.Graph != nil {
			stats.Vertices, stats.Edges = gr.Graph.VertexCount(), gr.Graph.EdgeCount()
			stats.MaxDegree = coloring.MaxDegree(gr.Graph)
		}
		report.Graphs = append(report.Graphs, stats)

		for _, alg := range algorithms {
			sum := Summary{Graph: gr.Name, Algorithm: alg, AllProper: true}
			var total time.Duration
			for i := 0; i < repeat; i++ {
				res, err := e.evaluate(ctx, gr.Name, gr.Graph, alg, coloring.WithSeed(e.seed+int64(i)))
				if ctxErr := ctx.Err(); ctxErr != nil {
					return report, ctxErr
				}
				if err != nil {
					sum.Failures++
					log.Warn("skipping failed evaluation", slog.String("graph", gr.Name),
						slog.String("algorithm", alg), slog.String("error", err.Error()))
					continue
				}
				report.Results = append(report.Results, res)
				sum.Runs++
				total += res.Duration
				sum.AllProper = sum.AllProper && res.Proper
				if sum.BestColoring == nil || res.UniqueColors < sum.MinColors {
					sum.MinColors, sum.BestColoring = res.UniqueColors, res.Coloring
				}
			}
			if sum.Runs > 0 {
				sum.AverageDuration = total / time.Duration(sum.Runs)
			} else {
				sum.AllProper = false
			}
			report.Summaries = append(report.Summaries, sum)
		}
	}
	log.Info("run finished", slog.Int("results", len(report.Results)), slog.Duration("elapsed", time.Since(report.Started)))

	return report, nil
}
