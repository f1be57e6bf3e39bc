package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/argonium/mprofiler/internal/config"
	"github.com/argonium/mprofiler/internal/output"
	"github.com/argonium/mprofiler/pkg/profiler"
)

var runCmd = &cobra.Command{
	Use:   "run SCENARIO",
	Short: "Replay a scenario file and print the profile summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		verbose, _ := cmd.Flags().GetBool("verbose")
		dump, _ := cmd.Flags().GetBool("dump")
		stats, _ := cmd.Flags().GetBool("stats")

		// Styled output only makes sense on a real terminal.
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			noColor = true
		}

		return runScenario(args[0], runOptions{
			NoColor: noColor,
			Verbose: verbose,
			Dump:    dump,
			Stats:   stats,
		}, os.Stdout)
	},
}

func init() {
	runCmd.Flags().Bool("dump", false, "Print the raw profiler state as JSON after the summary")
	runCmd.Flags().Bool("stats", false, "Record and print per-region interval percentiles")
}

// runOptions carries the resolved run flags.
type runOptions struct {
	NoColor bool
	Verbose bool
	Dump    bool
	Stats   bool
}

// runScenario loads a scenario, replays it through a fresh profiler, and
// writes the summary (and optional extras) to out.
func runScenario(path string, opts runOptions, out io.Writer) error {
	scenario, err := config.Load(path)
	if err != nil {
		return err
	}

	log := newLogger(opts.Verbose)
	diag := log.WriterLevel(logrus.WarnLevel)
	defer diag.Close()

	scheme := output.DefaultColorScheme()
	var renderer profiler.TableRenderer = output.NewStyledTable()
	if opts.NoColor {
		scheme = output.NoColorScheme()
		renderer = output.NewTextTable()
	}

	profOpts := []profiler.Option{
		profiler.WithOutput(out),
		profiler.WithDiagnostics(diag),
		profiler.WithRenderer(renderer),
	}
	if opts.Stats {
		profOpts = append(profOpts, profiler.WithIntervalStats())
	}

	p := profiler.New(profOpts...)

	log.WithField("scenario", scenario.Name).Debug("replaying scenario")
	replayRegions(p, scenario.Regions)
	p.StopAll(false)

	title := scenario.Name
	if title == "" {
		title = path
	}
	fmt.Fprintln(out, scheme.Title.Sprintf("Profile summary: %s", title))
	p.Summarize(true)

	if opts.Stats {
		fmt.Fprintln(out)
		fmt.Fprintln(out, scheme.Title.Sprint("Interval percentiles"))
		printIntervalStats(p, scenario.Regions, renderer, out)
	}

	if opts.Dump {
		fmt.Fprintln(out)
		if err := p.DumpState(out); err != nil {
			return fmt.Errorf("error dumping profiler state: %w", err)
		}
	}

	return nil
}

// replayRegions walks the region tree depth-first, entering each region
// Repeat times and sleeping for its duration before descending.
func replayRegions(p *profiler.Profiler, regions []config.Region) {
	for _, r := range regions {
		d, err := r.ParseDuration()
		if err != nil {
			// Durations are validated at load time.
			continue
		}

		for i := 0; i < r.Repeat; i++ {
			if r.Log {
				p.StartLogged(r.Label)
			} else {
				p.Start(r.Label)
			}

			time.Sleep(d)
			replayRegions(p, r.Children)

			p.Stop(false)
		}
	}
}

// printIntervalStats renders the per-region interval percentile table, with
// labels in scenario tree order.
func printIntervalStats(p *profiler.Profiler, regions []config.Region, renderer profiler.TableRenderer, out io.Writer) {
	var labels []string
	collectLabels(regions, map[string]bool{}, &labels)

	header := []string{"Label", "Intervals", "Min", "Mean", "P95", "Max"}
	var rows [][]string
	for _, label := range labels {
		stats, ok := p.IntervalStats(label)
		if !ok {
			continue
		}
		rows = append(rows, []string{
			label,
			strconv.FormatInt(stats.Count, 10),
			stats.Min.String(),
			stats.Mean.String(),
			stats.P95.String(),
			stats.Max.String(),
		})
	}

	for _, line := range renderer.Render(header, rows) {
		fmt.Fprintln(out, line)
	}
}

func collectLabels(regions []config.Region, seen map[string]bool, labels *[]string) {
	for _, r := range regions {
		if !seen[r.Label] {
			seen[r.Label] = true
			*labels = append(*labels, r.Label)
		}
		collectLabels(r.Children, seen, labels)
	}
}

// newLogger builds the CLI diagnostic logger. Profiler warnings are routed
// here through a WriterLevel pipe so they come out as structured log lines.
func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
