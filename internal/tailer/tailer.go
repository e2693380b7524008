// Package tailer follows a progress log with nxadm/tail, so that new rows are
// picked up on filesystem notifications instead of on a fixed poll interval.
package tailer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nxadm/tail"
)

// FromEnd as Config.Offset starts following at the current end of the file.
const FromEnd int64 = -1

// Config holds configuration for following a file.
type Config struct {
	// ReOpen reopens the file after it is truncated or replaced, like tail -F.
	ReOpen bool

	// Poll checks the file periodically instead of using inotify. Some
	// network and container mounts never deliver notifications.
	Poll bool

	// Offset is the byte offset reading starts at, or FromEnd.
	Offset int64
}

// DefaultConfig replays the whole file and survives log rotation.
func DefaultConfig() Config {
	return Config{ReOpen: true}
}

func (c Config) location() *tail.SeekInfo {
	if c.Offset < 0 {
		return &tail.SeekInfo{Whence: io.SeekEnd}
	}
	return &tail.SeekInfo{Offset: c.Offset, Whence: io.SeekStart}
}

// Tailer streams the complete lines appended to one file.
type Tailer struct {
	follow *tail.Tail
	cancel context.CancelFunc
	lines  chan string
	errs   chan error
	done   chan struct{}

	stopOnce sync.Once
	stopErr  error
}

// New starts following path, which must already exist. Following ends when
// ctx is done or Stop is called.
func New(ctx context.Context, path string, cfg Config) (*Tailer, error) {
	follow, err := tail.TailFile(path, tail.Config{
		Follow:        true,
		ReOpen:        cfg.ReOpen,
		Poll:          cfg.Poll,
		MustExist:     true,
		CompleteLines: true,
		Location:      cfg.location(),
		Logger:        tail.DiscardingLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("following %s: %w", path, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	t := &Tailer{
		follow: follow,
		cancel: cancel,
		lines:  make(chan string),
		errs:   make(chan error, 16),
		done:   make(chan struct{}),
	}
	go t.forward(ctx)
	return t, nil
}

// Lines delivers complete lines without their "\n". A "\r" of a CRLF line
// is left in place. The channel is closed once following ends.
func (t *Tailer) Lines() <-chan string {
	return t.lines
}

// Errors delivers read errors that did not end following. Errors that find
// the buffer full are dropped.
func (t *Tailer) Errors() <-chan error {
	return t.errs
}

// Stop ends following and waits for the forwarding goroutine. Later calls
// return the result of the first one.
func (t *Tailer) Stop() error {
	t.stopOnce.Do(func() {
		t.cancel()
		<-t.done
		t.stopErr = t.follow.Stop()
	})
	return t.stopErr
}

func (t *Tailer) forward(ctx context.Context) {
	defer close(t.done)
	defer close(t.lines)
	defer close(t.errs)

	for {
		var line *tail.Line
		select {
		case <-ctx.Done():
			return
		case l, ok := <-t.follow.Lines:
			if !ok {
				return
			}
			line = l
		}

		if line.Err != nil {
			select {
			case t.errs <- line.Err:
			default:
			}
			continue
		}

		select {
		case t.lines <- line.Text:
		case <-ctx.Done():
			return
		}
	}
}
