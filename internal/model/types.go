/*
PURPOSE:
  Defines the core data structures used throughout perf-metrics.
  These models represent a parsed counter dump and the rates derived from it.

REQUIREMENTS:
  User-specified:
  - Values are integers when they parse as such, raw strings otherwise.
  - Nine known counters; cycles_bus_busy distinguishes "absent" from zero.
  - Four nullable derived rates.

  Implementation-discovered:
  - Need JSON tags for the JSON Lines sink.
  - Need an explicit CSV mapping with a fixed 13-column order.

ARCHITECTURE INTEGRATION:
  - Used by: internal/parser, internal/metrics, internal/output, internal/engine
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Nullable numbers are pointers. nil means "not available".
  - Keep CSVHeader and CSVRecord() in lockstep.

USAGE:
  rec := model.Record{"cycles": model.IntValue(1000)}
  row := report.CSVRecord()

SELF-HEALING INSTRUCTIONS:
  - If a new counter is needed, add it to Counters, CSVHeader and CSVRecord().

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go

MAINTENANCE:
  - Update when adding new metrics to capture.
*/

package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Value is a single parsed dump value: an integer when it parsed as one,
// otherwise the trimmed raw text.
type Value struct {
	Int   int64
	Raw   string
	IsInt bool
}

// IntValue builds an integer Value.
func IntValue(n int64) Value {
	return Value{Int: n, Raw: strconv.FormatInt(n, 10), IsInt: true}
}

// StringValue builds a raw-string Value.
func StringValue(s string) Value {
	return Value{Raw: s}
}

// Record maps metric names to their values. No schema is enforced.
type Record map[string]Value

// Int returns the integer value of key. ok is false when the key is
// missing or its value is not an integer.
func (r Record) Int(key string) (n int64, ok bool) {
	v, found := r[key]
	if !found || !v.IsInt {
		return 0, false
	}
	return v.Int, true
}

// Counters holds the known raw counters consumed downstream.
type Counters struct {
	TotalReads           int64  `json:"total_reads"`
	ReadHits             int64  `json:"read_hits"`
	ReadMisses           int64  `json:"read_misses"`
	TotalWrites          int64  `json:"total_writes"`
	WriteHits            int64  `json:"write_hits"`
	WriteMisses          int64  `json:"write_misses"`
	CoherencyInvalidates int64  `json:"coherency_invalidates"`
	Cycles               int64  `json:"cycles"`
	CyclesBusBusy        *int64 `json:"cycles_bus_busy"` // nil when not reported
}

// Rates holds the derived ratios. A nil field means the denominator was
// zero or the source counter was absent.
type Rates struct {
	CacheHitRate      *float64 `json:"cache_hit_rate"`
	CacheMissRate     *float64 `json:"cache_miss_rate"`
	CoherencyMissRate *float64 `json:"coherency_miss_rate"`
	BusUtilization    *float64 `json:"bus_utilization"`
}

// Report is the outcome of processing a single dump file.
type Report struct {
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Counters
	Rates
}

// CSVHeader is the fixed column order of the accumulation file.
var CSVHeader = []string{
	"total_reads", "read_hits", "read_misses",
	"total_writes", "write_hits", "write_misses",
	"coherency_invalidates", "cycles", "cycles_bus_busy",
	"cache_hit_rate", "cache_miss_rate",
	"coherency_miss_rate", "bus_utilization",
}

// CSVRecord flattens the report into CSVHeader order, rendering nil values
// as empty strings.
func (r Report) CSVRecord() []string {
	c := r.Counters
	return []string{
		strconv.FormatInt(c.TotalReads, 10),
		strconv.FormatInt(c.ReadHits, 10),
		strconv.FormatInt(c.ReadMisses, 10),
		strconv.FormatInt(c.TotalWrites, 10),
		strconv.FormatInt(c.WriteHits, 10),
		strconv.FormatInt(c.WriteMisses, 10),
		strconv.FormatInt(c.CoherencyInvalidates, 10),
		strconv.FormatInt(c.Cycles, 10),
		formatOptInt(c.CyclesBusBusy),
		formatOptFloat(r.CacheHitRate),
		formatOptFloat(r.CacheMissRate),
		formatOptFloat(r.CoherencyMissRate),
		formatOptFloat(r.BusUtilization),
	}
}

func formatOptInt(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

func formatOptFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return FormatFloat(*f)
}

// FormatFloat renders f in shortest round-trip form. Integral values keep a
// trailing ".0" and very small or very large magnitudes switch to exponent
// notation, so existing accumulation files stay consistent across tools.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
