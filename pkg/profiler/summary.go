package profiler

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// summaryHeader is the fixed header row handed to the table renderer.
var summaryHeader = []string{"% Time", "Total Time (ms)", "# Calls", "MS / Call", "Label"}

// Summary is a derived, read-only projection of one region's statistics.
type Summary struct {
	// PercentTime is the region's own time as a percentage of the total
	// time spent in top-level regions.
	PercentTime float64

	// TotalMS is the region's accumulated duration in milliseconds,
	// children included.
	TotalMS int64

	// NumCalls is how many times the region was started.
	NumCalls int

	// MSPerCall is own time divided by NumCalls.
	MSPerCall float64

	// Label identifies the region.
	Label string
}

// Summarize computes a summary row for every recorded region, sorted by
// percent of time descending (ties broken by total time ascending). It never
// mutates the registry, so it can be called repeatedly. When print is true
// the rows are formatted and written to the output writer as an aligned
// table; an empty registry prints nothing.
func (p *Profiler) Summarize(print bool) []Summary {
	if !p.HasProfiles() {
		return nil
	}

	// Percentages are shares of the time spent in top-level regions only.
	// Counting children too would double-book nested time.
	var totalTopLevel float64
	for _, pt := range p.points {
		if !pt.isChild {
			totalTopLevel += float64(pt.totalDuration.Milliseconds())
		}
	}

	rows := make([]Summary, 0, len(p.points))
	for _, pt := range p.points {
		if pt.totalDuration < pt.childDuration {
			// Accounting went wrong somewhere; report it and keep going with
			// the values we have.
			fmt.Fprintf(p.diag, "Error: total duration < child duration for %s\n", pt.label)
		}

		own := float64(pt.totalDuration.Milliseconds() - pt.childDuration.Milliseconds())

		pct := 0.0
		if totalTopLevel >= 1.0 {
			pct = 100.0 * own / totalTopLevel
		}

		rows = append(rows, Summary{
			PercentTime: pct,
			TotalMS:     pt.totalDuration.Milliseconds(),
			NumCalls:    pt.count,
			MSPerCall:   own / float64(pt.count),
			Label:       pt.label,
		})
	}

	slices.SortStableFunc(rows, func(a, b Summary) int {
		if c := cmp.Compare(b.PercentTime, a.PercentTime); c != 0 {
			return c
		}
		return cmp.Compare(a.TotalMS, b.TotalMS)
	})

	if print {
		p.printSummary(rows)
	}

	return rows
}

// printSummary formats the rows and hands them to the table renderer.
func (p *Profiler) printSummary(rows []Summary) {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			FormatNumber(row.PercentTime) + "%",
			FormatNumber(float64(row.TotalMS)),
			strconv.Itoa(row.NumCalls),
			FormatNumber(row.MSPerCall),
			row.Label,
		}
	}

	for _, line := range p.renderer.Render(summaryHeader, cells) {
		fmt.Fprintln(p.out, line)
	}
}
