// Package trainwatch shows the progress log of a reinforcement-learning
// training run while the trainer is still writing it.
//
// A training run writes one CSV row per update to progress.csv inside its run
// directory. The first row starting with "r," holds the column names. This
// package waits for that file to appear, then prints the header once and every
// new row as it is appended, until the context is cancelled.
//
// # Basic Usage
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := trainwatch.Run(ctx, "carracing/no_shield/seed1"); err != nil {
//	    log.Fatal(err)
//	}
//
// Run returns nil when ctx is cancelled, after printing a short summary.
// Only unrecoverable errors, such as a progress file that exists but cannot
// be read, are returned.
//
// To print an existing log once without following it:
//
//	err := trainwatch.Show(ctx, "carracing/no_shield/seed1")
//
// # Partial lines
//
// The trainer and the monitor do not coordinate. A row that is only partly
// written when the monitor reads the file is held back and printed in full on
// a later poll, once its newline has been written.
package trainwatch
