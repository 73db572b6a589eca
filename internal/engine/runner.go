/*
PURPOSE:
  High-level runner that orchestrates a single report.
  Read dump -> parse -> compute rates -> print table -> append outputs.

REQUIREMENTS:
  User-specified:
  - Print the counter/rate table to stdout.
  - Append one row to the CSV accumulation file.

  Implementation-discovered:
  - Optional JSON Lines sink shares the same report.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/parser, internal/metrics, internal/output

ERROR HANDLING:
  - Any I/O error aborts the run and is returned to the caller.
  - Nothing is printed or written if the input cannot be read.

IMPLEMENTATION RULES:
  - Straight-line, no retries.

USAGE:
  engine.Run(cfg, os.Stdout)

RELATED FILES:
  - internal/output/csv.go
  - internal/output/table.go
*/

package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/config"
	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/metrics"
	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/model"
	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/output"
	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/parser"
)

// Run processes cfg.InputPath and writes the table to stdout.
func Run(cfg *config.Config, stdout io.Writer) error {
	data, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input %s: %w", cfg.InputPath, err)
	}

	rec, skipped := parser.ParseKVStats(string(data))
	output.Logger.Debug().
		Str("input", cfg.InputPath).
		Int("keys", len(rec)).
		Int("skipped_lines", skipped).
		Msg("Parsed counter dump")

	counters := metrics.CountersFrom(rec)
	rep := model.Report{
		Source:    cfg.InputPath,
		Timestamp: time.Now(),
		Counters:  counters,
		Rates:     metrics.Compute(counters),
	}

	if err := output.PrintTable(stdout, rep.Counters, rep.Rates); err != nil {
		return fmt.Errorf("failed to print table: %w", err)
	}

	if err := output.AppendCSV(cfg.CSVPath, rep); err != nil {
		return fmt.Errorf("failed to append CSV row to %s: %w", cfg.CSVPath, err)
	}
	output.Logger.Debug().Str("path", cfg.CSVPath).Msg("Appended CSV row")

	if cfg.JSONPath != "" {
		if err := output.AppendJSON(cfg.JSONPath, rep); err != nil {
			return fmt.Errorf("failed to append JSON line to %s: %w", cfg.JSONPath, err)
		}
		output.Logger.Debug().Str("path", cfg.JSONPath).Msg("Appended JSON line")
	}

	return nil
}
