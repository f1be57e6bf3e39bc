package profiler

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// point is the mutable record for one profiled label.
type point struct {
	// label uniquely identifies this record within the profiler.
	label string

	// running is true between a Start and its matching Stop.
	running bool

	// isChild is fixed at creation: true if any other record was running
	// when this one was first started. It is never recomputed.
	isChild bool

	// totalDuration accumulates elapsed time across all start/stop cycles,
	// including time spent in child regions.
	totalDuration time.Duration

	// childDuration accumulates the time attributed to nested child regions
	// while this record was running.
	childDuration time.Duration

	// startTime is the start of the current run; only meaningful while
	// running is true.
	startTime time.Time

	// count is the number of times this record has been started.
	count int

	// logEvents controls whether start/stop transitions are echoed. It is
	// overwritten on every Start for this label.
	logEvents bool

	// intervals holds per-interval durations when interval stats are
	// enabled; nil otherwise.
	intervals *hdrhistogram.Histogram
}

// close marks the point as stopped and folds the current run into
// totalDuration. It returns the closed interval's elapsed time, children
// included, so the caller can credit the parent's childDuration.
func (pt *point) close(now time.Time) time.Duration {
	pt.running = false

	delta := now.Sub(pt.startTime)
	pt.totalDuration += delta

	if pt.intervals != nil {
		// Out-of-range values are dropped; the summary totals are unaffected.
		_ = pt.intervals.RecordValue(delta.Microseconds())
	}

	return delta
}
