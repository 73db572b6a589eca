/*
PURPOSE:
  Entry point for the perf-metrics application.
  Initializes the CLI root command and executes it.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

ERROR HANDLING:
  - Explicit error check on Execute(); exit code 1 on failure.

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o perf-metrics ./cmd/perf-metrics
  ./perf-metrics perf_dump.txt --csv metrics.csv
*/

package main

import (
	"fmt"
	"os"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
