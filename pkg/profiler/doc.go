// Package profiler provides lightweight instrumentation of named code
// regions. Callers bracket the sections they care about with Start and Stop
// calls; the profiler accumulates call counts and durations per label,
// attributes nested regions' time to their parents, and produces a sorted,
// percentage-based summary.
//
// # Quick Start
//
//	p := profiler.New()
//
//	p.Start("load")
//	data := load()
//
//	p.Start("parse")
//	doc := parse(data)
//	p.Stop(false) // closes "parse", credits its time to "load"
//
//	p.Stop(true) // closes "load" and prints the summary table
//
// Labels may be resumed: starting a label that was previously stopped
// accumulates into the same record and increments its call count. A region
// started while another is running is a child region; child time is
// subtracted from the parent when computing the parent's own time, and only
// top-level regions contribute to the percentage denominator.
//
// # Lifecycle
//
// A Profiler is an explicit object owned by the caller. It is not safe for
// concurrent use; all calls are expected to happen on one goroutine, which
// matches the single call path being profiled. Reset clears all records so
// the same Profiler can time a fresh run.
//
// # Diagnostics
//
// Misuse never panics and never returns an error. Starting a label that is
// already running, summarizing while regions are still open, or corrupted
// duration accounting are reported as warning lines on the diagnostics
// writer (os.Stderr by default) and processing continues.
package profiler
