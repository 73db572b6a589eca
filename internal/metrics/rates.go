/*
PURPOSE:
  Derives cache and bus ratios from raw dump counters.

REQUIREMENTS:
  User-specified:
  - Known counters default to 0 when missing; cycles_bus_busy stays absent.
  - A zero denominator yields no rate rather than an error.

  Implementation-discovered:
  - A present cycles_bus_busy with zero cycles still yields no rate.
  - Counter sums may exceed int64 on very long runs.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.Record
  - Produces: internal/model.Counters, internal/model.Rates

ERROR HANDLING:
  - None. Division by zero is modeled as a nil rate.

IMPLEMENTATION RULES:
  - Real-valued division, no rounding.

USAGE:
  c := metrics.CountersFrom(rec)
  r := metrics.Compute(c)

RELATED FILES:
  - internal/model/types.go
*/

// Package metrics derives cache and bus ratios from raw dump counters.
package metrics

import (
	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/model"
)

// CountersFrom extracts the known counters from rec. Missing or non-integer
// values default to 0, except cycles_bus_busy which stays nil.
func CountersFrom(rec model.Record) model.Counters {
	get := func(key string) int64 {
		n, _ := rec.Int(key)
		return n
	}

	c := model.Counters{
		TotalReads:           get("total_reads"),
		ReadHits:             get("read_hits"),
		ReadMisses:           get("read_misses"),
		TotalWrites:          get("total_writes"),
		WriteHits:            get("write_hits"),
		WriteMisses:          get("write_misses"),
		CoherencyInvalidates: get("coherency_invalidates"),
		Cycles:               get("cycles"),
	}
	if n, ok := rec.Int("cycles_bus_busy"); ok {
		c.CyclesBusBusy = &n
	}
	return c
}

// Compute derives the rates from c.
func Compute(c model.Counters) model.Rates {
	// Sums are taken in float64 so int64 counters near the bound cannot wrap.
	accesses := float64(c.TotalReads) + float64(c.TotalWrites)
	hits := float64(c.ReadHits) + float64(c.WriteHits)
	misses := float64(c.ReadMisses) + float64(c.WriteMisses)

	r := model.Rates{
		CacheHitRate:      safeDiv(hits, accesses),
		CacheMissRate:     safeDiv(misses, accesses),
		CoherencyMissRate: safeDiv(float64(c.CoherencyInvalidates), float64(c.TotalReads)),
	}
	// A zero cycle count wins over a present bus-busy counter.
	if c.CyclesBusBusy != nil {
		r.BusUtilization = safeDiv(float64(*c.CyclesBusBusy), float64(c.Cycles))
	}
	return r
}

func safeDiv(n, d float64) *float64 {
	if d == 0 {
		return nil
	}
	q := n / d
	return &q
}
