package metrics

import (
	"math"
	"testing"

	"github.com/TejaRaghuveer/MOES-4core-Cache-coherency/internal/model"
)

func i64(n int64) *int64 { return &n }

func assertRate(t *testing.T, name string, got *float64, want *float64) {
	t.Helper()
	switch {
	case want == nil && got == nil:
	case want == nil:
		t.Errorf("%s: got %v, want nil", name, *got)
	case got == nil:
		t.Errorf("%s: got nil, want %v", name, *want)
	case math.Abs(*got-*want) > 1e-12:
		t.Errorf("%s: got %v, want %v", name, *got, *want)
	}
}

func f64(f float64) *float64 { return &f }

func TestCountersFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    model.Record
		expected model.Counters
	}{
		{
			name:     "empty record defaults",
			input:    model.Record{},
			expected: model.Counters{},
		},
		{
			name: "all fields",
			input: model.Record{
				"total_reads":           model.IntValue(1),
				"read_hits":             model.IntValue(2),
				"read_misses":           model.IntValue(3),
				"total_writes":          model.IntValue(4),
				"write_hits":            model.IntValue(5),
				"write_misses":          model.IntValue(6),
				"coherency_invalidates": model.IntValue(7),
				"cycles":                model.IntValue(8),
				"cycles_bus_busy":       model.IntValue(9),
				"unrelated":             model.StringValue("x"),
			},
			expected: model.Counters{
				TotalReads: 1, ReadHits: 2, ReadMisses: 3,
				TotalWrites: 4, WriteHits: 5, WriteMisses: 6,
				CoherencyInvalidates: 7, Cycles: 8, CyclesBusBusy: i64(9),
			},
		},
		{
			name: "non-integer known fields treated as absent",
			input: model.Record{
				"total_reads":     model.StringValue("lots"),
				"cycles":          model.IntValue(10),
				"cycles_bus_busy": model.StringValue("n/a"),
			},
			expected: model.Counters{Cycles: 10},
		},
		{
			name:     "zero bus busy is present",
			input:    model.Record{"cycles_bus_busy": model.IntValue(0)},
			expected: model.Counters{CyclesBusBusy: i64(0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountersFrom(tt.input)
			gotBusy, wantBusy := got.CyclesBusBusy, tt.expected.CyclesBusBusy
			if (gotBusy == nil) != (wantBusy == nil) || (gotBusy != nil && *gotBusy != *wantBusy) {
				t.Errorf("CyclesBusBusy: got %v, want %v", gotBusy, wantBusy)
			}
			got.CyclesBusBusy, tt.expected.CyclesBusBusy = nil, nil
			if got != tt.expected {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		input    model.Counters
		expected model.Rates
	}{
		{
			name: "reference dump",
			input: model.Counters{
				TotalReads: 100, ReadHits: 80, ReadMisses: 20,
				TotalWrites: 50, WriteHits: 45, WriteMisses: 5,
				CoherencyInvalidates: 10, Cycles: 10000, CyclesBusBusy: i64(2500),
			},
			expected: model.Rates{
				CacheHitRate:      f64(125.0 / 150.0),
				CacheMissRate:     f64(25.0 / 150.0),
				CoherencyMissRate: f64(0.1),
				BusUtilization:    f64(0.25),
			},
		},
		{
			name:     "no accesses",
			input:    model.Counters{Cycles: 10},
			expected: model.Rates{},
		},
		{
			name:     "bus busy absent",
			input:    model.Counters{TotalReads: 4, ReadHits: 4, Cycles: 1000},
			expected: model.Rates{CacheHitRate: f64(1), CacheMissRate: f64(0), CoherencyMissRate: f64(0)},
		},
		{
			name:     "bus busy zero is a valid rate",
			input:    model.Counters{Cycles: 1000, CyclesBusBusy: i64(0)},
			expected: model.Rates{BusUtilization: f64(0)},
		},
		{
			name:     "bus busy present but zero cycles",
			input:    model.Counters{CyclesBusBusy: i64(50)},
			expected: model.Rates{},
		},
		{
			name: "sums past the int64 bound do not wrap",
			input: model.Counters{
				TotalReads: math.MaxInt64, ReadHits: math.MaxInt64,
				TotalWrites: math.MaxInt64, WriteHits: math.MaxInt64,
			},
			expected: model.Rates{CacheHitRate: f64(1), CacheMissRate: f64(0), CoherencyMissRate: f64(0)},
		},
		{
			name:     "writes only",
			input:    model.Counters{TotalWrites: 10, WriteHits: 3, WriteMisses: 7, CoherencyInvalidates: 2},
			expected: model.Rates{CacheHitRate: f64(0.3), CacheMissRate: f64(0.7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.input)
			assertRate(t, "cache_hit_rate", got.CacheHitRate, tt.expected.CacheHitRate)
			assertRate(t, "cache_miss_rate", got.CacheMissRate, tt.expected.CacheMissRate)
			assertRate(t, "coherency_miss_rate", got.CoherencyMissRate, tt.expected.CoherencyMissRate)
			assertRate(t, "bus_utilization", got.BusUtilization, tt.expected.BusUtilization)
		})
	}
}

func TestComputeAllHits(t *testing.T) {
	for a := int64(0); a <= 5; a++ {
		for b := int64(0); b <= 5; b++ {
			r := Compute(model.Counters{TotalReads: a, ReadHits: a, TotalWrites: b, WriteHits: b})
			if a+b == 0 {
				assertRate(t, "cache_hit_rate", r.CacheHitRate, nil)
				continue
			}
			assertRate(t, "cache_hit_rate", r.CacheHitRate, f64(1))
		}
	}
}
