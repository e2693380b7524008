package progress

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/afero"
)

// Exists reports whether path can be stat'ed on fsys. Errors other than a
// missing file count as existing so that the caller surfaces them when it
// opens the file.
func Exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// WaitForFile blocks until path exists on fsys. It re-checks every interval
// and whenever wake fires; wake may be nil. There is no timeout. The only
// error returned is ctx.Err().
func WaitForFile(ctx context.Context, fsys afero.Fs, path string, interval time.Duration, clock Clock, wake <-chan struct{}) error {
	for !Exists(fsys, path) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(interval):
		case <-wake:
		}
	}
	return nil
}
