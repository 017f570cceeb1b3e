package evaluation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/brocs/coloring"
	"github.com/katalvlaran/brocs/core"
)

// Evaluator colors graphs and measures the outcome. It holds no mutable
// state of its own, so one Evaluator may serve concurrent callers.
type Evaluator struct {
	logger    *slog.Logger
	metrics   *Metrics
	timeout   time.Duration
	seed      int64
	colorOpts []coloring.Option

	newColorer func(string, ...coloring.Option) (coloring.Colorer, error)
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the parent logger; the Evaluator scopes it with
// component=evaluator. The default discards every record.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l.With(slog.String("component", "evaluator"))
		}
	}
}

// WithMetrics makes the Evaluator update m.
func WithMetrics(m *Metrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// WithTimeout bounds every Evaluate call; d ≤ 0 means no bound beyond the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) { e.timeout = d }
}

// WithSeed sets the base seed of Run: repetition i colors with seed+i, so
// repeated runs of a randomized colorer differ while the run as a whole
// stays reproducible. Evaluate ignores it.
func WithSeed(seed int64) Option {
	return func(e *Evaluator) { e.seed = seed }
}

// WithColoringOptions forwards opts to every colorer the Evaluator builds.
func WithColoringOptions(opts ...coloring.Option) Option {
	return func(e *Evaluator) {
		e.colorOpts = append(e.colorOpts, opts...)
	}
}

// New returns an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		newColorer: coloring.New,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

type outcome struct {
	colors coloring.Coloring
	err    error
}

// Evaluate colors g with the named algorithm and reports the result.
//
// Errors:
//   - coloring.ErrUnknownAlgorithm for an unregistered name.
//   - coloring.ErrInvalidInputGraph for a nil graph.
//   - any colorer error, or ctx.Err() once the deadline passes.
func (e *Evaluator) Evaluate(ctx context.Context, name string, g *core.Graph, algorithm string) (Result, error) {
	return e.evaluate(ctx, name, g, algorithm)
}

// evaluate is Evaluate with extra colorer options applied after colorOpts.
func (e *Evaluator) evaluate(ctx context.Context, name string, g *core.Graph, algorithm string, extra ...coloring.Option) (Result, error) {
	if g == nil {
		e.metrics.fail(algorithm)
		return Result{}, fmt.Errorf("evaluate %q: graph is nil: %w", name, coloring.ErrInvalidInputGraph)
	}
	log := e.logger.With(slog.String("graph", name), slog.String("algorithm", algorithm))
	opts := append([]coloring.Option{coloring.WithLogger(log)}, e.colorOpts...)
	colorer, err := e.newColorer(algorithm, append(opts, extra...)...)
	if err != nil {
		e.metrics.fail(algorithm)
		return Result{}, fmt.Errorf("evaluate %q: %w", name, err)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		e.metrics.fail(algorithm)
		return Result{}, fmt.Errorf("evaluate %q with %s: %w", name, algorithm, err)
	}

	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		c, err := coloring.ColorComponents(colorer, g)
		done <- outcome{colors: c, err: err}
	}()

	var out outcome
	select {
	case <-ctx.Done():
		e.metrics.fail(algorithm)
		log.Warn("evaluation abandoned", slog.Duration("after", time.Since(start)), slog.String("error", ctx.Err().Error()))
		return Result{}, fmt.Errorf("evaluate %q with %s: %w", name, algorithm, ctx.Err())
	case out = <-done:
	}
	elapsed := time.Since(start)
	if out.err != nil {
		e.metrics.fail(algorithm)
		log.Error("coloring failed", slog.String("error", out.err.Error()))
		return Result{}, fmt.Errorf("evaluate %q with %s: %w", name, algorithm, out.err)
	}

	res := Result{
		RunID:        newRunID(),
		Graph:        name,
		Algorithm:    algorithm,
		Vertices:     g.VertexCount(),
		Edges:        g.EdgeCount(),
		MaxDegree:    coloring.MaxDegree(g),
		UniqueColors: coloring.UniqueColors(out.colors),
		Duration:     elapsed,
		Proper:       coloring.IsProper(g, out.colors),
		Coloring:     out.colors,
	}
	e.metrics.observe(res)

	level := slog.LevelInfo
	if !res.Proper {
		level = slog.LevelError
	}
	log.Log(ctx, level, "graph colored",
		slog.String("run_id", res.RunID),
		slog.Int("vertices", res.Vertices),
		slog.Int("edges", res.Edges),
		slog.Int("max_degree", res.MaxDegree),
		slog.Int("colors", res.UniqueColors),
		slog.Bool("proper", res.Proper),
		slog.Duration("elapsed", res.Duration),
	)

	return res, nil
}
