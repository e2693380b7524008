package trainwatch

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"github.com/spf13/afero"
	"github.com/trainwatch/trainwatch-go/internal/display"
	"github.com/trainwatch/trainwatch-go/internal/fswatch"
	"github.com/trainwatch/trainwatch-go/internal/progress"
	"github.com/trainwatch/trainwatch-go/internal/rundir"
	"github.com/trainwatch/trainwatch-go/internal/tailer"
)

// Monitor follows the progress log of one run directory.
type Monitor struct {
	cfg     *config
	dir     string
	path    string
	printer *display.Printer

	mu      sync.Mutex
	started bool
}

// New creates a Monitor for the run directory dir. An empty dir falls back to
// the TRAINWATCH_RUN_DIR environment variable, then to the example directory
// carracing/no_shield/seed1. The directory does not need to exist yet.
//
// New validates options but does not touch the progress file.
func New(dir string, opts ...Option) (*Monitor, error) {
	cfg := applyOptions(opts)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	dir, err := rundir.Resolve(cfg.fs, dir)
	if err != nil {
		return nil, err
	}

	return &Monitor{
		cfg:     cfg,
		dir:     dir,
		path:    rundir.ProgressFile(dir),
		printer: display.New(cfg.out),
	}, nil
}

// Dir returns the resolved run directory.
func (m *Monitor) Dir() string {
	return m.dir
}

// Path returns the progress file being monitored.
func (m *Monitor) Path() string {
	return m.path
}

// Run prints the banner, waits for the progress file if needed, then prints
// new rows until ctx is cancelled. Cancellation, during the wait or later,
// prints the shutdown summary and returns nil.
//
// Run can only be called once per Monitor.
func (m *Monitor) Run(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrAlreadyRunning
	}
	m.started = true
	m.mu.Unlock()

	log := m.cfg.logger.With("path", m.path, "engine", m.cfg.engine)

	if err := m.printer.Banner(m.dir); err != nil {
		return err
	}

	if !progress.Exists(m.cfg.fs, m.path) {
		if err := m.printer.Waiting(m.path); err != nil {
			return err
		}
		log.Debug("waiting for progress file", "interval", m.cfg.waitInterval)
		if err := m.wait(ctx); err != nil {
			return m.printer.Stopped(m.dir)
		}
		if err := m.printer.Started(); err != nil {
			return err
		}
	}

	log.Debug("tailing progress file", "interval", m.cfg.pollInterval, "start_at_end", m.cfg.startAtEnd)

	var err error
	switch m.cfg.engine {
	case EngineFollow:
		err = m.follow(ctx)
	default:
		err = m.poll(ctx)
	}
	if err != nil {
		return err
	}

	return m.printer.Stopped(m.dir)
}

// Summary returns what has been printed. Call it after Run returns.
func (m *Monitor) Summary() Summary {
	return m.printer.Summary()
}

// wait blocks until the progress file exists. On the OS filesystem, directory
// notifications cut the wait short; the periodic check stays as fallback for
// run directories that do not exist yet.
func (m *Monitor) wait(ctx context.Context) error {
	var wake <-chan struct{}
	if isOsFs(m.cfg.fs) {
		n, err := fswatch.New(m.path)
		if err != nil {
			m.cfg.logger.Debug("file notifications unavailable, polling only", "error", err)
		} else {
			defer n.Close()
			wake = n.C()
		}
	}
	return progress.WaitForFile(ctx, m.cfg.fs, m.path, m.cfg.waitInterval, m.cfg.clock, wake)
}

func (m *Monitor) poll(ctx context.Context) error {
	t := progress.NewTailer(m.cfg.fs, m.path, progress.Config{
		Logger:     m.cfg.logger,
		StartAtEnd: m.cfg.startAtEnd,
	})
	return progress.Run(ctx, t, m.cfg.clock, m.cfg.pollInterval, m.printer.Record)
}

func (m *Monitor) follow(ctx context.Context) error {
	var seq progress.Sequencer
	cfg := tailer.DefaultConfig()

	if m.cfg.startAtEnd {
		header, err := seq.SkipExisting(m.cfg.fs, m.path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		for _, rec := range header {
			if err := m.printer.Record(rec); err != nil {
				return err
			}
		}
		cfg.Offset = seq.Offset()
	}

	t, err := tailer.New(ctx, m.path, cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer func() { _ = t.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-t.Lines():
			if !ok {
				return nil
			}
			if err := m.printer.Record(seq.Next(line)); err != nil {
				return err
			}
		case err, ok := <-t.Errors():
			if !ok {
				return nil
			}
			m.cfg.logger.Debug("follow error", "path", m.path, "error", err)
		}
	}
}

// Run is a convenience function that creates a Monitor and runs it.
func Run(ctx context.Context, dir string, opts ...Option) error {
	m, err := New(dir, opts...)
	if err != nil {
		return err
	}
	return m.Run(ctx)
}

// ReadFile classifies every line of a progress file that is no longer being
// written, including a final line without a newline. The file is opened
// lazily; errors are yielded once and end the iteration.
func ReadFile(ctx context.Context, fsys afero.Fs, path string) iter.Seq2[Record, error] {
	return progress.ReadAll(ctx, fsys, path)
}

// Show prints the progress log of dir once, with the header and its
// separator shown at most once, and returns. Only WithFs and WithOutput
// affect Show.
func Show(ctx context.Context, dir string, opts ...Option) error {
	cfg := applyOptions(opts)

	dir, err := rundir.Resolve(cfg.fs, dir)
	if err != nil {
		return err
	}

	p := display.New(cfg.out)
	for rec, err := range ReadFile(ctx, cfg.fs, rundir.ProgressFile(dir)) {
		if err != nil {
			return err
		}
		if err := p.Record(rec); err != nil {
			return err
		}
	}
	return nil
}
