package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch"
)

var (
	// show flags
	showFormat string
	showKinds  []string
)

var showCmd = &cobra.Command{
	Use:   "show [run-dir]",
	Short: "Print a progress log once (batch mode)",
	Long: `Print the progress.csv of a run directory and exit.

Unlike the default command, show does not wait for the file and does not
follow it. A last line without a trailing newline is printed too.

Examples:
  # Print the default run
  trainwatch show

  # Print a specific run as JSON Lines
  trainwatch show carracing/shield/seed3 --format jsonl

  # Print only data rows
  trainwatch show --kinds data

  # Pipe to jq for filtering
  trainwatch show --format jsonl | jq 'select(.kind == "undecodable")'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "pretty",
		"Output format: pretty, jsonl")
	showCmd.Flags().StringSliceVar(&showKinds, "kinds", nil,
		"Record kinds to print (comma-separated: header,data,undecodable)")

	registerKindCompletion(showCmd, "kinds")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	// Validate format
	if !ValidFormats[showFormat] {
		return fmt.Errorf("invalid format %q: must be one of: jsonl, pretty", showFormat)
	}

	kinds, err := NormalizeKinds(showKinds)
	if err != nil {
		return err
	}

	var dir string
	if len(args) > 0 {
		dir = args[0]
	}

	// Setup context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fsys := fsFactory()
	m, err := trainwatch.New(dir, trainwatch.WithFs(fsys))
	if err != nil {
		return err
	}

	sink, err := newSink(showFormat, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	for rec, err := range trainwatch.ReadFile(ctx, fsys, m.Path()) {
		if err != nil {
			// Ctrl+C: exit silently
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("show error: %w", err)
		}

		if len(kinds) > 0 && !slices.Contains(kinds, rec.Kind) {
			continue
		}
		if err := sink(rec); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	return nil
}
