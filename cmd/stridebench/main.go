// Command stridebench times a + b*0.5 + ones over 512×512 float64 arrays in
// four layout pairs (contiguous/contiguous, transposed/transposed,
// contiguous/transposed, transposed/contiguous) and prints one elapsed-seconds
// line per pair. It takes no arguments.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/stridebench/bench"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}

// run executes the fixed suite and returns the process exit code.
func run(stdout, stderr io.Writer) int {
	log := bench.NewTextLogger(stderr, slog.LevelInfo)

	runner, err := bench.NewRunner(
		bench.WithOutput(stdout),
		bench.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintln(stderr, "stridebench:", err)
		return 1
	}

	cases, err := bench.Suite(runner.Shape())
	if err != nil {
		fmt.Fprintln(stderr, "stridebench:", err)
		return 1
	}

	if _, err := runner.RunSuite(cases, bench.DefaultIterations); err != nil {
		fmt.Fprintln(stderr, "stridebench:", err)
		return 1
	}

	return 0
}
