package profiler

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/argonium/mprofiler/internal/output"
)

// eventTimeFormat prefixes Starting/Stopping event lines.
const eventTimeFormat = "01/02/2006 15:04:05"

// TableRenderer turns a header row and pre-formatted data rows into aligned
// printable lines. Implementations live outside the profiler; the default is
// a plain column-aligned text table.
type TableRenderer interface {
	Render(header []string, rows [][]string) []string
}

// Profiler is an ordered registry of profiled regions. The zero value is not
// usable; construct with New.
type Profiler struct {
	points []*point

	out      io.Writer
	diag     io.Writer
	renderer TableRenderer
	now      func() time.Time

	recordIntervals bool
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithOutput sets the writer for summary tables and start/stop event lines.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Profiler) {
		p.out = w
	}
}

// WithDiagnostics sets the writer for non-fatal warnings. Defaults to
// os.Stderr.
func WithDiagnostics(w io.Writer) Option {
	return func(p *Profiler) {
		p.diag = w
	}
}

// WithRenderer sets the table renderer used when printing summaries.
func WithRenderer(r TableRenderer) Option {
	return func(p *Profiler) {
		p.renderer = r
	}
}

// WithClock sets the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Profiler) {
		p.now = now
	}
}

// WithIntervalStats enables per-region interval histograms, queryable via
// IntervalStats. Off by default; the summary table never depends on it.
func WithIntervalStats() Option {
	return func(p *Profiler) {
		p.recordIntervals = true
	}
}

// New creates a Profiler with no recorded regions.
func New(opts ...Option) *Profiler {
	p := &Profiler{
		out:      os.Stdout,
		diag:     os.Stderr,
		renderer: output.NewTextTable(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start begins (or resumes) timing the region identified by label.
func (p *Profiler) Start(label string) {
	p.start(label, false)
}

// StartLogged is Start with event echoing: a "Starting <label>" line is
// written now and a "Stopping <label>" line when the region closes.
func (p *Profiler) StartLogged(label string) {
	p.start(label, true)
}

func (p *Profiler) start(label string, logEvents bool) {
	now := p.now()

	// Resume an existing record if the label is already known. Scan in
	// insertion order; labels are unique so the first match is the only one.
	for _, pt := range p.points {
		if pt.label != label {
			continue
		}

		if pt.running {
			// The previous run's start time is overwritten below, so the
			// unclosed interval is lost.
			fmt.Fprintf(p.diag, "Warning: profile %s is already running\n", label)
		}

		pt.running = true
		pt.startTime = now
		pt.count++
		pt.logEvents = logEvents

		p.logEvent(pt, true)
		return
	}

	// New label. Child status is decided by whether anything else is running
	// right now, before this record joins the registry.
	pt := &point{
		label:     label,
		running:   true,
		isChild:   p.HasRunningProfile(),
		startTime: now,
		count:     1,
		logEvents: logEvents,
	}
	if p.recordIntervals {
		pt.intervals = newIntervalHistogram()
	}
	p.points = append(p.points, pt)

	p.logEvent(pt, true)
}

// Stop closes the most recently started region that is still running and
// credits its elapsed time to the nearest running ancestor. With no running
// region it is a no-op (aside from summarizing when requested). When
// summarize is true the summary is printed after closing.
func (p *Profiler) Stop(summarize bool) {
	if !p.HasProfiles() {
		return
	}

	now := p.now()

	// Walk backwards for the most recently appended record that is still
	// running. This is LIFO matching over an ordered list rather than a real
	// stack, because resumed labels can sit anywhere in the sequence.
	var delta time.Duration
	i := len(p.points) - 1
	for ; i >= 0; i-- {
		if p.points[i].running {
			p.logEvent(p.points[i], false)
			delta = p.points[i].close(now)
			i--
			break
		}
	}

	// The next running record earlier in the list is the logical parent. A
	// closed interval with no running ancestor is a top-level region; its
	// delta is not attributed anywhere.
	if delta > 0 {
		for ; i >= 0; i-- {
			if p.points[i].running {
				p.points[i].childDuration += delta
				break
			}
		}
	}

	if summarize {
		if p.HasRunningProfile() {
			fmt.Fprintln(p.diag, "Warning: summarizing but there are still running profiles")
		}
		p.Summarize(true)
	}
}

// StopAll closes every running region, innermost first, then optionally
// prints the summary.
func (p *Profiler) StopAll(summarize bool) {
	for p.HasRunningProfile() {
		p.Stop(false)
	}

	if summarize {
		p.Summarize(true)
	}
}

// HasRunningProfile reports whether any region is currently running.
func (p *Profiler) HasRunningProfile() bool {
	for _, pt := range p.points {
		if pt.running {
			return true
		}
	}
	return false
}

// HasProfiles reports whether any region has ever been started.
func (p *Profiler) HasProfiles() bool {
	return len(p.points) > 0
}

// Reset discards all recorded regions. Safe to call at any time.
func (p *Profiler) Reset() {
	p.points = nil
}

// logEvent echoes a start/stop transition for points that asked for it.
func (p *Profiler) logEvent(pt *point, starting bool) {
	if !pt.logEvents {
		return
	}

	verb := "Stopping"
	if starting {
		verb = "Starting"
	}
	fmt.Fprintf(p.out, "%s: %s %s\n", p.now().Format(eventTimeFormat), verb, pt.label)
}
