// Package commands holds the cobra command tree of the brocs CLI.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/brocs/evaluation"
)

var (
	logLevel  string
	logFormat string

	// logger is built from the persistent flags before any command runs.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:   "brocs",
	Short: "Brooks' theorem graph coloring",
	Long: `brocs colors undirected graphs with at most Δ colors (Brooks' theorem)
and compares the result with greedy connected-sequential coloring.

Graphs are read as square, symmetric, zero-diagonal 0/1 adjacency matrices
from .npy, .json, .yaml or plain text files.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", evaluation.LogText, "Log format: text, json")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	l, err := evaluation.LogConfig{Level: logLevel, Format: logFormat}.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = l

	return nil
}
