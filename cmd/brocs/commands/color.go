package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/brocs/coloring"
	"github.com/katalvlaran/brocs/evaluation"
)

var (
	colorAlgorithm string
	colorSeed      int64
	colorOutput    string
)

var colorCmd = &cobra.Command{
	Use:   "color <matrix-file>",
	Short: "Color one graph",
	Long: `Color the graph stored in an adjacency matrix file and print the coloring.

Examples:
  brocs color graphs/shovel.npy
  brocs color graphs/k5.json --algorithm cs --seed 7
  brocs color graphs/house.txt --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runColor,
}

func init() {
	rootCmd.AddCommand(colorCmd)

	colorCmd.Flags().StringVar(&colorAlgorithm, "algorithm", coloring.AlgorithmBrooks,
		"Algorithm: "+strings.Join(coloring.Algorithms(), ", "))
	colorCmd.Flags().Int64Var(&colorSeed, "seed", 0, "Seed for the start vertex of connected sequential")
	colorCmd.Flags().StringVar(&colorOutput, "output", "text", "Output format: text, json, yaml")
}

// colorReport is the printed form of one coloring.
type colorReport struct {
	Graph        string         `json:"graph" yaml:"graph"`
	Algorithm    string         `json:"algorithm" yaml:"algorithm"`
	Vertices     int            `json:"vertices" yaml:"vertices"`
	Edges        int            `json:"edges" yaml:"edges"`
	MaxDegree    int            `json:"max_degree" yaml:"max_degree"`
	UniqueColors int            `json:"unique_colors" yaml:"unique_colors"`
	Proper       bool           `json:"proper" yaml:"proper"`
	Elapsed      string         `json:"elapsed" yaml:"elapsed"`
	Colors       map[string]int `json:"colors" yaml:"colors"`
}

func runColor(cmd *cobra.Command, args []string) error {
	switch colorOutput {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format: %s (use 'text', 'json' or 'yaml')", colorOutput)
	}
	graphs, err := evaluation.LoadGraphs(args[:1])
	if err != nil {
		return fmt.Errorf("failed to load graph: %w", err)
	}
	in := graphs[0]

	var opts []evaluation.Option
	opts = append(opts, evaluation.WithLogger(logger))
	if cmd != nil && cmd.Flags().Changed("seed") {
		opts = append(opts, evaluation.WithColoringOptions(coloring.WithSeed(colorSeed)))
	}
	res, err := evaluation.New(opts...).Evaluate(context.Background(), in.Name, in.Graph, colorAlgorithm)
	if err != nil {
		return err
	}
	if !res.Proper {
		return fmt.Errorf("%s produced an improper coloring of %s", res.Algorithm, filepath.Base(args[0]))
	}

	rep := colorReport{
		Graph:        res.Graph,
		Algorithm:    res.Algorithm,
		Vertices:     res.Vertices,
		Edges:        res.Edges,
		MaxDegree:    res.MaxDegree,
		UniqueColors: res.UniqueColors,
		Proper:       res.Proper,
		Elapsed:      res.Duration.String(),
		Colors:       coloring.ByID(in.Graph, res.Coloring),
	}

	return writeColorReport(out(cmd), rep, res.Coloring)
}

func writeColorReport(w io.Writer, rep colorReport, c coloring.Coloring) error {
	switch colorOutput {
	case "text":
		fmt.Fprintf(w, "graph:      %s (%d vertices, %d edges, Δ = %d)\n", rep.Graph, rep.Vertices, rep.Edges, rep.MaxDegree)
		fmt.Fprintf(w, "algorithm:  %s\n", rep.Algorithm)
		fmt.Fprintf(w, "colors:     %d\n", rep.UniqueColors)
		fmt.Fprintf(w, "elapsed:    %s\n", rep.Elapsed)
		fmt.Fprintf(w, "coloring:   %v\n", []int(c))
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", colorOutput)
	}
}

// out returns the command's stdout; tests call the run functions with a
// nil command.
func out(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return rootCmd.OutOrStdout()
	}

	return cmd.OutOrStdout()
}

func errOut(cmd *cobra.Command) io.Writer {
	if cmd == nil {
		return rootCmd.ErrOrStderr()
	}

	return cmd.ErrOrStderr()
}
