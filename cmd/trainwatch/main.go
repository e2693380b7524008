package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by ldflags)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	verbose bool

	// fsFactory returns the filesystem commands read from. Tests stub it.
	fsFactory = func() afero.Fs { return afero.NewOsFs() }
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitError carries a child process exit status through cobra.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "trainwatch [run-dir]",
	Short: "Follow the progress log of a training run",
	Long: `trainwatch follows progress.csv of a reinforcement learning run.

It waits for the file to appear, shows the header row once and prints
every new row as training appends it. Press Ctrl+C to stop.

The run directory defaults to $TRAINWATCH_RUN_DIR, then to
carracing/no_shield/seed1.

Examples:
  # Monitor the default run
  trainwatch

  # Monitor a specific seed, polling every 10 seconds
  trainwatch carracing/shield/seed3 --interval 10s

  # Skip the rows written before trainwatch started
  trainwatch --from-end

  # Use file notifications instead of polling
  trainwatch --engine follow`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runMonitor,
	SilenceUsage:  true, // Don't show usage on error
	SilenceErrors: true, // main prints errors; child exit statuses stay quiet
}

func init() {
	// Global flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "trainwatch %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
