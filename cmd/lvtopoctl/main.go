// Command lvtopoctl is a small demonstration harness for lvtopo: it builds
// a Topology from a line-oriented script and prints a summary report. It
// holds the Topology in memory for the run and is not a persistence layer.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtopo/cmd/lvtopoctl/internal/script"
)

func main() {
	if err := script.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
