// Package stats tracks recent analysis latencies within a rolling window.
package stats

import (
	"sort"
	"sync"
	"time"
)

type sample struct {
	timestamp  time.Time
	format     string
	durationMs int64
}

// Snapshot is a point-in-time aggregate of analysis latency samples.
type Snapshot struct {
	Count    int            `json:"count"`
	MinMs    int64          `json:"min_ms"`
	MaxMs    int64          `json:"max_ms"`
	AvgMs    float64        `json:"avg_ms"`
	P50Ms    float64        `json:"p50_ms"`
	P95Ms    float64        `json:"p95_ms"`
	P99Ms    float64        `json:"p99_ms"`
	ByFormat map[string]int `json:"by_format,omitempty"`
}

// Tracker records analysis call latencies, pruning samples older than the
// window on every access.
type Tracker struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
}

func NewTracker(maxAge time.Duration) *Tracker {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Tracker{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
	}
}

// Record adds one analysis sample tagged with its format discriminator.
func (t *Tracker) Record(format string, d time.Duration) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked(now)
	t.samples = append(t.samples, sample{
		timestamp:  now,
		format:     format,
		durationMs: ms,
	})
}

func (t *Tracker) Snapshot() Snapshot {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pruneLocked(now)
	if len(t.samples) == 0 {
		return Snapshot{}
	}

	values := make([]int64, 0, len(t.samples))
	byFormat := make(map[string]int)
	var sum int64
	for _, sm := range t.samples {
		values = append(values, sm.durationMs)
		byFormat[sm.format]++
		sum += sm.durationMs
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return Snapshot{
		Count:    len(values),
		MinMs:    values[0],
		MaxMs:    values[len(values)-1],
		AvgMs:    float64(sum) / float64(len(values)),
		P50Ms:    percentile(values, 50),
		P95Ms:    percentile(values, 95),
		P99Ms:    percentile(values, 99),
		ByFormat: byFormat,
	}
}

func (t *Tracker) pruneLocked(now time.Time) {
	cutoff := now.Add(-t.maxAge)
	writeIdx := 0
	for _, sm := range t.samples {
		if !sm.timestamp.Before(cutoff) {
			t.samples[writeIdx] = sm
			writeIdx++
		}
	}
	t.samples = t.samples[:writeIdx]
}

// percentile interpolates linearly between the two nearest ranks.
func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
