// Package rundir resolves the training run directory and its progress log.
package rundir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// EnvRunDir is the environment variable name for specifying the run directory.
const EnvRunDir = "TRAINWATCH_RUN_DIR"

// DefaultRunDir is the example run directory used when nothing else is given.
const DefaultRunDir = "carracing/no_shield/seed1"

// ProgressFileName is the name of the progress log inside a run directory.
const ProgressFileName = "progress.csv"

// ErrNotDirectory is returned when the run path exists but is not a directory.
var ErrNotDirectory = errors.New("run path is not a directory")

// Resolve returns the run directory.
//
// Priority:
//  1. explicit (if non-empty)
//  2. TRAINWATCH_RUN_DIR environment variable
//  3. DefaultRunDir
//
// The directory does not have to exist yet: training may not have started.
// If it does exist it must be a directory.
func Resolve(fsys afero.Fs, explicit string) (string, error) {
	dir := explicit
	if dir == "" {
		dir = os.Getenv(EnvRunDir)
	}
	if dir == "" {
		dir = DefaultRunDir
	}
	dir = filepath.Clean(dir)

	info, err := fsys.Stat(dir)
	if err == nil && !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return dir, nil
}

// ProgressFile returns the path of the progress log inside dir.
func ProgressFile(dir string) string {
	return filepath.Join(dir, ProgressFileName)
}
