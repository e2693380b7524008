// Package fswatch signals when a file inside a directory is created or
// written, using fsnotify.
package fswatch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Notifier watches one directory for changes to one file name.
type Notifier struct {
	w      *fsnotify.Watcher
	name   string
	wake   chan struct{}
	errs   chan error
	doneCh chan struct{}

	mu     sync.Mutex
	closed bool
}

// New watches the parent directory of path. The directory must exist;
// the file need not.
func New(path string) (*Notifier, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	n := &Notifier{
		w:      w,
		name:   filepath.Clean(path),
		wake:   make(chan struct{}, 1),
		errs:   make(chan error, 1),
		doneCh: make(chan struct{}),
	}
	go n.run()
	return n, nil
}

// C fires after the watched file is created or written. Notifications are
// coalesced: one pending signal stands for any number of events.
func (n *Notifier) C() <-chan struct{} {
	return n.wake
}

// Errors returns watcher errors. Errors are dropped when nobody reads them.
func (n *Notifier) Errors() <-chan error {
	return n.errs
}

// Close stops watching. Safe to call multiple times.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	n.mu.Unlock()

	err := n.w.Close()
	<-n.doneCh
	return err
}

func (n *Notifier) run() {
	defer close(n.doneCh)

	for {
		select {
		case ev, ok := <-n.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != n.name {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
				select {
				case n.wake <- struct{}{}:
				default:
				}
			}
		case err, ok := <-n.w.Errors:
			if !ok {
				return
			}
			select {
			case n.errs <- err:
			default:
			}
		}
	}
}
