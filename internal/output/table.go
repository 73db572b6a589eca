/*
PURPOSE:
  Renders the counter/rate report as a fixed-width text table.

REQUIREMENTS:
  User-specified:
  - Labels padded to a fixed column, raw counters first, then rates.
  - cycles_bus_busy row only when the counter was reported.
  - Rates to 4 decimal places, or N/A when unavailable.

  Implementation-discovered:
  - The layout is byte-exact; downstream scripts scrape it.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Counters, internal/model.Rates

ERROR HANDLING:
  - Returns the writer's error.

IMPLEMENTATION RULES:
  - Build the whole table, then write once.

USAGE:
  output.PrintTable(os.Stdout, counters, rates)

RELATED FILES:
  - internal/engine/runner.go
*/

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/model"
)

const labelWidth = 28

var separator = strings.Repeat("-", 38)

// PrintTable writes the two-column counter/rate table to w.
// The cycles_bus_busy row only appears when the counter was reported.
func PrintTable(w io.Writer, c model.Counters, r model.Rates) error {
	var b strings.Builder

	b.WriteString("Metric                       Value\n")
	b.WriteString(separator + "\n")
	row(&b, "total_reads", c.TotalReads)
	row(&b, "read_hits", c.ReadHits)
	row(&b, "read_misses", c.ReadMisses)
	row(&b, "total_writes", c.TotalWrites)
	row(&b, "write_hits", c.WriteHits)
	row(&b, "write_misses", c.WriteMisses)
	row(&b, "coherency_invalidates", c.CoherencyInvalidates)
	row(&b, "cycles", c.Cycles)
	if c.CyclesBusBusy != nil {
		row(&b, "cycles_bus_busy", *c.CyclesBusBusy)
	}
	b.WriteString(separator + "\n")
	row(&b, "cache_hit_rate", FormatRate(r.CacheHitRate))
	row(&b, "cache_miss_rate", FormatRate(r.CacheMissRate))
	row(&b, "coherency_miss_rate", FormatRate(r.CoherencyMissRate))
	row(&b, "bus_utilization", FormatRate(r.BusUtilization))

	_, err := io.WriteString(w, b.String())
	return err
}

func row(b *strings.Builder, label string, value any) {
	fmt.Fprintf(b, "%-*s%v\n", labelWidth, label, value)
}

// FormatRate renders a rate to 4 decimal places, or "N/A" when nil.
func FormatRate(x *float64) string {
	if x == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.4f", *x)
}
