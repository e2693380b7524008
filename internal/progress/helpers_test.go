package progress

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testPath = "/run/progress.csv"

// appendTo appends s to path on fsys, creating the file if needed.
func appendTo(t *testing.T, fsys afero.Fs, path, s string) {
	t.Helper()
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(s)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

// fakeClock hands control of every sleep to the test. Each After call is
// announced on calls and returns only when the test reads it; the returned
// channel fires when the test calls advance.
type fakeClock struct {
	calls chan time.Duration
	tick  chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		calls: make(chan time.Duration),
		tick:  make(chan time.Time),
	}
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.calls <- d
	return c.tick
}

func (c *fakeClock) advance() {
	c.tick <- time.Time{}
}

// waitSleep waits until the code under test sleeps and returns the duration.
func (c *fakeClock) waitSleep(t *testing.T) time.Duration {
	t.Helper()
	select {
	case d := <-c.calls:
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for sleep")
		return 0
	}
}
