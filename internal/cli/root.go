// Package cli implements the mprof command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "mprof",
	Short:   "Replay scripted workloads through the region profiler",
	Version: version,
	Long: `Mprof replays a scenario file (a nested tree of named regions with
durations) through the region profiler and prints the timing summary:
percent of time, total milliseconds, call counts, and ms per call for
every region, with nested regions' time attributed to their parents.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands to root command
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(validateCmd)
}
