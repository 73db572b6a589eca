/*
PURPOSE:
  Defines the root Cobra command for the perf-metrics CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - perf-metrics <input> [--csv PATH]

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Errors are printed once, by main.go, not by cobra.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/perf-metrics/main.go
  - Calls: runReport (run.go)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for ambient flags (config, log format and level).

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/perf-metrics/main.go
  - internal/cli/run.go
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "perf-metrics <input>",
		Short: "Derive cache and bus rates from a performance-counter dump",
		Long: `Parses a key = value performance-counter dump, derives cache hit/miss,
coherency miss and bus utilization rates, prints them as a table and appends
one row to a CSV accumulation file.`,
		Example: `  # Report on a dump, appending to ./metrics.csv
  perf-metrics perf_dump.txt

  # Append to a specific accumulation file
  perf-metrics perf_dump.txt --csv results/core4.csv`,
		Args:          cobra.ExactArgs(1),
		RunE:          runReport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./perf_metrics.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFormatOverride, "log-format", "", "Log format: 'json' or 'console'")
	rootCmd.PersistentFlags().StringVar(&logLevelOverride, "log-level", "", "Log level: debug, info, warn, error (default info)")
}
