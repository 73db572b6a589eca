/*
PURPOSE:
  Implements the report action of the root command.

REQUIREMENTS:
  User-specified:
  - One positional input path.
  - --csv output path, default metrics.csv.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config, only for flags the user actually set.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  perf-metrics perf_dump.txt --csv metrics.csv

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"os"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/config"
	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/engine"
	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/output"
	"github.com/spf13/cobra"
)

var (
	csvOverride       string
	jsonOverride      string
	logFormatOverride string
	logLevelOverride  string
)

func runReport(cmd *cobra.Command, args []string) error {
	// 1. Load Config
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	// 2. Overrides
	cfg.InputPath = args[0]
	if cmd.Flags().Changed("csv") {
		cfg.CSVPath = csvOverride
	}
	if cmd.Flags().Changed("json") {
		cfg.JSONPath = jsonOverride
	}
	if logFormatOverride != "" {
		cfg.LogFormat = logFormatOverride
	}
	if logLevelOverride != "" {
		cfg.LogLevel = logLevelOverride
	}
	level, err := output.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	output.SetLogger(output.NewLogger(os.Stderr, cfg.LogFormat, level))

	// 3. Execution
	return engine.Run(cfg, cmd.OutOrStdout())
}

func init() {
	rootCmd.Flags().StringVar(&csvOverride, "csv", "metrics.csv", "CSV output file")
	rootCmd.Flags().StringVar(&jsonOverride, "json", "", "Optional JSON Lines output file")
}
