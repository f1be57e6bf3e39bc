package profiler

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Interval histogram configuration.
// Range: 1 microsecond to 1 hour, 3 significant figures.
const (
	intervalHistMin     = 1
	intervalHistMax     = 3600000000 // 1 hour in microseconds
	intervalHistSigFigs = 3
)

func newIntervalHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(intervalHistMin, intervalHistMax, intervalHistSigFigs)
}

// IntervalStats describes the distribution of a single region's closed
// intervals. Only populated when the profiler was built WithIntervalStats.
type IntervalStats struct {
	// Count is the number of closed intervals recorded.
	Count int64

	Min  time.Duration
	Max  time.Duration
	Mean time.Duration

	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
}

// IntervalStats returns the interval distribution for label. ok is false when
// the label is unknown or interval recording is disabled. Values are
// quantized to the histogram's precision.
func (p *Profiler) IntervalStats(label string) (IntervalStats, bool) {
	for _, pt := range p.points {
		if pt.label != label || pt.intervals == nil {
			continue
		}

		h := pt.intervals
		return IntervalStats{
			Count: h.TotalCount(),
			Min:   time.Duration(h.Min()) * time.Microsecond,
			Max:   time.Duration(h.Max()) * time.Microsecond,
			Mean:  time.Duration(h.Mean() * float64(time.Microsecond)),
			P50:   time.Duration(h.ValueAtQuantile(50)) * time.Microsecond,
			P95:   time.Duration(h.ValueAtQuantile(95)) * time.Microsecond,
			P99:   time.Duration(h.ValueAtQuantile(99)) * time.Microsecond,
		}, true
	}

	return IntervalStats{}, false
}
