package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/brocs/evaluation"
)

var (
	evalConfig      string
	evalAlgorithms  []string
	evalRepeat      int
	evalSeed        int64
	evalTimeout     time.Duration
	evalCSV         string
	evalMetricsFile string
	evalReport      string
)

var evalCmd = &cobra.Command{
	Use:   "eval [path...]",
	Short: "Evaluate colorers over a set of graphs",
	Long: `Run every algorithm on every graph, repeat times, and summarize the
fewest colors reached and the average time. Paths may be matrix files or
directories; a directory contributes every matrix file directly inside it.

Flags override the values of --config.

Examples:
  brocs eval graphs/
  brocs eval graphs/ --repeat 10 --csv out/
  brocs eval --config run.yaml --metrics-file out/brocs.prom`,
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	f := evalCmd.Flags()
	f.StringVar(&evalConfig, "config", "", "YAML run config")
	f.StringSliceVar(&evalAlgorithms, "algorithm", nil, "Algorithms to run (default: all)")
	f.IntVar(&evalRepeat, "repeat", 1, "Runs per graph and algorithm")
	f.Int64Var(&evalSeed, "seed", 0, "Base seed of the connected sequential start vertex; repetition i uses seed+i")
	f.DurationVar(&evalTimeout, "timeout", 0, "Deadline per coloring (0: none)")
	f.StringVar(&evalCSV, "csv", "", "Directory to write graphs.csv and results.csv into")
	f.StringVar(&evalMetricsFile, "metrics-file", "", "Write prometheus metrics in text format to this file")
	f.StringVar(&evalReport, "report", "", "Write the full report as YAML to this file")
}

// evalSettings merges the config file with the flags that were set.
func evalSettings(cmd *cobra.Command, args []string) (evaluation.Config, error) {
	cfg := evaluation.DefaultConfig()
	if evalConfig != "" {
		loaded, err := evaluation.LoadConfig(evalConfig)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	changed := func(name string) bool { return cmd != nil && cmd.Flags().Changed(name) }

	if len(args) > 0 {
		cfg.Inputs = args
	}
	if changed("algorithm") {
		cfg.Algorithms = evalAlgorithms
	}
	if changed("repeat") {
		cfg.Repeat = evalRepeat
	}
	if changed("seed") {
		seed := evalSeed
		cfg.Seed = &seed
	}
	if changed("timeout") {
		cfg.Timeout = evalTimeout
	}
	if changed("csv") {
		cfg.CSV = evalCSV
	}
	if changed("metrics-file") {
		cfg.MetricsFile = evalMetricsFile
	}
	if changed("report") {
		cfg.Report = evalReport
	}
	if changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = logFormat
	}
	if len(cfg.Inputs) == 0 {
		return cfg, fmt.Errorf("no inputs: pass paths or set inputs in --config")
	}

	return cfg, cfg.Validate()
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := evalSettings(cmd, args)
	if err != nil {
		return err
	}
	// The log section of --config applies unless the root flags were set.
	l, err := cfg.Log.NewLogger(errOut(cmd))
	if err != nil {
		return err
	}
	logger = l
	graphs, err := evaluation.LoadGraphs(cfg.Inputs)
	if err != nil {
		return fmt.Errorf("failed to load graphs: %w", err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := evaluation.NewMetrics(reg)
	if err != nil {
		return err
	}
	opts := append([]evaluation.Option{
		evaluation.WithLogger(logger),
		evaluation.WithMetrics(metrics),
	}, cfg.EvaluatorOptions()...)
	ev := evaluation.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	report, err := ev.Run(ctx, graphs, cfg.Algorithms, cfg.Repeat)
	if report == nil {
		return err
	}
	if err != nil {
		logger.Warn("run interrupted, writing partial report", "error", err)
	}

	printSummaries(out(cmd), report)

	if cfg.CSV != "" {
		if werr := evaluation.SaveCSV(cfg.CSV, report); werr != nil {
			return fmt.Errorf("failed to write csv: %w", werr)
		}
	}
	if cfg.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(cfg.MetricsFile, reg); werr != nil {
			return fmt.Errorf("failed to write metrics: %w", werr)
		}
	}
	if cfg.Report != "" {
		if werr := writeReportFile(cfg.Report, report); werr != nil {
			return fmt.Errorf("failed to write report: %w", werr)
		}
	}

	return err
}

func printSummaries(w io.Writer, r *evaluation.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GRAPH\tALGORITHM\tRUNS\tFAILED\tMIN COLORS\tPROPER\tAVG TIME")
	for _, s := range r.Summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%t\t%s\n",
			s.Graph, s.Algorithm, s.Runs, s.Failures, s.MinColors, s.AllProper, s.AverageDuration)
	}
	tw.Flush()
}

func writeReportFile(path string, r *evaluation.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return evaluation.WriteYAML(f, r)
}
