// Command bellman solves single-source shortest paths over graph files and
// generates graph fixtures.
//
//	bellman solve -f graph.yaml --source a -o text
//	bellman generate --kind dag -n 8 --seed 1 --min -5 --max 10 > graph.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
