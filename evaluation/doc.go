// Package evaluation runs colorers over named graphs and reports what they
// produced: the number of distinct colors, the wall-clock duration and
// whether the coloring is proper.
//
// An Evaluator is built with functional options:
//
//	ev := evaluation.New(
//	    evaluation.WithLogger(logger),          // component-scoped slog logger
//	    evaluation.WithMetrics(metrics),        // prometheus collectors
//	    evaluation.WithTimeout(5*time.Second),  // per-evaluation deadline
//	    evaluation.WithSeed(42),                // Run: repetition i uses seed 42+i
//	)
//
// Evaluate colors one graph with one algorithm. Disconnected graphs are
// colored component by component. The colorer runs in its own goroutine and
// the deadline is enforced from outside it: on expiry Evaluate returns the
// context error while the abandoned computation finishes in the background.
//
// Run evaluates every (graph, algorithm) pair repeat times, each repetition
// with its own derived seed, and condenses
// the results into a Report with one Summary per pair: fewest colors, the
// first coloring that reached them and the average duration. Reports export
// to CSV (graphs table + results table) and YAML.
//
// Config is the YAML run description read by `brocs eval`.
package evaluation
