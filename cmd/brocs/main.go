// brocs colors graphs stored as adjacency matrices and compares the Brooks
// colorer with connected-sequential greedy coloring.
package main

import (
	"os"

	"github.com/katalvlaran/brocs/cmd/brocs/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
