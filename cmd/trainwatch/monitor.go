package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch"
)

var (
	// monitor flags
	pollInterval time.Duration
	waitInterval time.Duration
	fromEnd      bool
	engineName   string
)

func init() {
	rootCmd.Flags().DurationVarP(&pollInterval, "interval", "i", trainwatch.DefaultPollInterval,
		"How often to check for new rows")
	rootCmd.Flags().DurationVar(&waitInterval, "wait-interval", trainwatch.DefaultWaitInterval,
		"How often to check whether training has started")
	rootCmd.Flags().BoolVar(&fromEnd, "from-end", false,
		"Skip rows that already exist (the header is still shown)")
	rootCmd.Flags().StringVar(&engineName, "engine", string(trainwatch.EnginePoll),
		"Tail engine: poll, follow")

	registerEngineCompletion(rootCmd, "engine")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	engine, err := ParseEngine(engineName)
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

	opts := []trainwatch.Option{
		trainwatch.WithFs(fsFactory()),
		trainwatch.WithOutput(cmd.OutOrStdout()),
		trainwatch.WithPollInterval(pollInterval),
		trainwatch.WithWaitInterval(waitInterval),
		trainwatch.WithStartAtEnd(fromEnd),
		trainwatch.WithEngine(engine),
	}

	// Setup logger based on verbose flag
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, trainwatch.WithLogger(logger))
	}

	return trainwatch.Run(ctx, dir, opts...)
}
