package trainwatch

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/trainwatch/trainwatch-go/internal/progress"
)

// Default intervals. The wait phase checks more often than the steady state
// so that the first rows show up soon after training starts.
const (
	DefaultPollInterval = 5 * time.Second
	DefaultWaitInterval = 2 * time.Second
)

// Option configures a Monitor using the functional options pattern.
type Option func(*config)

type config struct {
	pollInterval time.Duration
	waitInterval time.Duration
	fs           afero.Fs
	out          io.Writer
	logger       *slog.Logger
	clock        Clock
	startAtEnd   bool
	engine       Engine
}

func defaultConfig() *config {
	return &config{
		pollInterval: DefaultPollInterval,
		waitInterval: DefaultWaitInterval,
		fs:           afero.NewOsFs(),
		out:          os.Stdout,
		logger:       slog.New(slog.DiscardHandler),
		clock:        progress.RealClock,
		engine:       EnginePoll,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// validate checks for invalid option combinations.
func (c *config) validate() error {
	if c.pollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.pollInterval)
	}
	if c.waitInterval <= 0 {
		return fmt.Errorf("wait interval must be positive, got %v", c.waitInterval)
	}
	switch c.engine {
	case EnginePoll:
	case EngineFollow:
		if !isOsFs(c.fs) {
			return fmt.Errorf("%w: %s requires the OS filesystem", ErrUnsupportedEngine, c.engine)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedEngine, c.engine)
	}
	return nil
}

func isOsFs(fsys afero.Fs) bool {
	_, ok := fsys.(*afero.OsFs)
	return ok
}

// WithPollInterval sets how often the progress file is re-read once it exists.
// Default: 5 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithWaitInterval sets how often the monitor checks whether the progress
// file has been created. Default: 2 seconds.
func WithWaitInterval(d time.Duration) Option {
	return func(c *config) {
		c.waitInterval = d
	}
}

// WithFs sets the filesystem the run directory lives on.
// Default: the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(c *config) {
		if fsys != nil {
			c.fs = fsys
		}
	}
}

// WithOutput sets where progress is printed. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger sets the slog logger for debug output.
// If nil (default), logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock replaces the wall clock used between polls.
func WithClock(clock Clock) Option {
	return func(c *config) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithStartAtEnd skips rows that already exist when the file is first
// opened. The header is still shown. Default: false (replay everything).
func WithStartAtEnd(skip bool) Option {
	return func(c *config) {
		c.startAtEnd = skip
	}
}

// WithEngine selects how new rows are detected. Default: EnginePoll.
func WithEngine(engine Engine) Option {
	return func(c *config) {
		c.engine = engine
	}
}
