package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/argonium/mprofiler/internal/config"
	"github.com/argonium/mprofiler/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate SCENARIO",
	Short: "Check a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		noColor, _ := cmd.Flags().GetBool("no-color")
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			noColor = true
		}

		scheme := output.DefaultColorScheme()
		if noColor {
			scheme = output.NoColorScheme()
		}

		scenario, err := config.Load(args[0])
		if err != nil {
			return err
		}

		name := scenario.Name
		if name == "" {
			name = args[0]
		}
		fmt.Println(scheme.Success.Sprintf("Scenario '%s' is valid (%d top-level regions)", name, len(scenario.Regions)))
		return nil
	},
}
