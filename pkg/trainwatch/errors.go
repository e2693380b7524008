package trainwatch

import (
	"errors"

	"github.com/trainwatch/trainwatch-go/internal/progress"
	"github.com/trainwatch/trainwatch-go/internal/rundir"
)

// Sentinel errors returned by this package.
var (
	// ErrUnreadable is returned when the progress file exists but cannot
	// be read once the wait for it is over.
	ErrUnreadable = progress.ErrUnreadable

	// ErrNotDirectory is returned when the run directory path names a file.
	ErrNotDirectory = rundir.ErrNotDirectory

	// ErrUnsupportedEngine is returned for an unknown engine, or for the
	// follow engine on a filesystem other than the OS one.
	ErrUnsupportedEngine = errors.New("unsupported engine")

	// ErrAlreadyRunning is returned when Run is called on a Monitor that
	// is already running or has finished.
	ErrAlreadyRunning = errors.New("monitor already started")
)
