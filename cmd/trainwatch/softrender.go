package main

import (
	"context"
	"errors"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trainwatch/trainwatch-go/internal/softrender"
)

var softrenderCmd = &cobra.Command{
	Use:   "softrender -- <command> [args...]",
	Short: "Run a command with software OpenGL rendering",
	Long: `Run a command with Mesa forced onto its software rasterizer.

The command inherits the environment with LIBGL_ALWAYS_SOFTWARE=1 and
GALLIUM_DRIVER=llvmpipe set, which lets environments that render frames
run on machines without a usable GPU. Its exit status is passed through.

Examples:
  # Start a training run headless
  trainwatch softrender -- python run_carracing.py --seed 1

  # Check which renderer is picked up
  trainwatch softrender -- glxinfo -B`,
	Args:                  cobra.MinimumNArgs(1),
	DisableFlagsInUseLine: true,
	RunE:                  runSoftrender,
}

func init() {
	rootCmd.AddCommand(softrenderCmd)
}

func runSoftrender(cmd *cobra.Command, args []string) error {
	// The child gets the signal from the terminal too; wait for it to exit.
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := softrender.Command(ctx, args[0], args[1:]...)
	c.Stdout = cmd.OutOrStdout()
	c.Stderr = cmd.ErrOrStderr()
	c.Cancel = func() error { return nil }

	err := c.Run()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &exitError{code: exitStatus(ee)}
	}
	return err
}

// exitStatus returns the status a shell would report for the child: its exit
// code, or 128 plus the signal number when a signal killed it.
func exitStatus(ee *exec.ExitError) int {
	if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return ee.ExitCode()
}
