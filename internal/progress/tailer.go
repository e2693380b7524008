package progress

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

// ErrUnreadable is returned when the progress file exists but cannot be read
// on the first attempt, e.g. because of missing permissions.
var ErrUnreadable = errors.New("progress file unreadable")

// Config holds configuration for a Tailer.
type Config struct {
	// Logger receives debug output about skipped polls. Nil discards it.
	Logger *slog.Logger

	// StartAtEnd skips content that exists when the file is first opened.
	// The first header line of the skipped content is still reported.
	StartAtEnd bool
}

// Tailer reads a progress file incrementally, one Poll at a time.
// It owns the read cursor and the header state for one monitoring session.
// A Tailer is not safe for concurrent use.
type Tailer struct {
	fs         afero.Fs
	path       string
	logger     *slog.Logger
	startAtEnd bool

	classifier Classifier
	cursor     int64
	opened     bool
}

// NewTailer creates a Tailer for path on fsys. The file need not exist yet.
func NewTailer(fsys afero.Fs, path string, cfg Config) *Tailer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tailer{
		fs:         fsys,
		path:       path,
		logger:     logger,
		startAtEnd: cfg.StartAtEnd,
	}
}

// Cursor returns the offset up to which the file has been consumed.
func (t *Tailer) Cursor() int64 {
	return t.cursor
}

// HeaderSeen reports whether the header has been emitted in this session.
func (t *Tailer) HeaderSeen() bool {
	return t.classifier.HeaderSeen()
}

// Poll reads everything appended since the previous Poll and returns the
// complete lines as records, in file order.
//
// I/O failures are not errors: the poll is skipped and the cursor is left
// unchanged so the next Poll retries. The exception is the very first open,
// where anything other than a missing file is returned wrapped in
// ErrUnreadable.
func (t *Tailer) Poll() ([]record.Record, error) {
	f, err := t.fs.Open(t.path)
	if err != nil {
		if !t.opened && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
		}
		return t.skip("open", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return t.skip("stat", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnreadable, t.path)
	}
	size := info.Size()

	if !t.opened {
		if t.startAtEnd {
			records, err := t.seekEnd(f, size)
			if err != nil {
				return t.skip("seek end", err)
			}
			t.opened = true
			return records, nil
		}
		t.opened = true
	}

	if size < t.cursor {
		t.logger.Debug("progress file shrank, reading from start",
			"path", t.path, "size", size, "cursor", t.cursor)
		t.cursor = 0
	}
	if size == t.cursor {
		return nil, nil
	}

	if _, err := f.Seek(t.cursor, io.SeekStart); err != nil {
		return t.skip("seek", err)
	}
	chunk, err := io.ReadAll(io.LimitReader(f, size-t.cursor))
	if err != nil {
		return t.skip("read", err)
	}

	lines, consumed := SplitComplete(chunk)
	records := make([]record.Record, 0, len(lines))
	for _, line := range lines {
		records = append(records, t.classifier.Classify(line.Bytes, t.cursor+int64(line.Start)))
	}
	t.cursor += int64(consumed)

	if consumed < len(chunk) {
		t.logger.Debug("withholding unterminated line",
			"path", t.path, "offset", t.cursor, "bytes", len(chunk)-consumed)
	}
	return records, nil
}

// seekEnd moves the cursor past the last complete line of the first size
// bytes. The first header line found on the way is classified and returned.
// Nothing changes when the scan fails, so a later Poll can retry it.
func (t *Tailer) seekEnd(f io.Reader, size int64) ([]record.Record, error) {
	c := t.classifier
	records, off, err := scanToEnd(io.LimitReader(f, size), &c)
	if err != nil {
		return nil, err
	}
	t.classifier = c
	t.cursor = off
	return records, nil
}

// scanToEnd reads r line by line and returns the offset just past the last
// complete line. The first header among those lines is classified with c;
// every other line is skipped without touching c.
func scanToEnd(r io.Reader, c *Classifier) ([]record.Record, int64, error) {
	var records []record.Record
	br := bufio.NewReader(r)
	var off int64
	for {
		line, err := br.ReadBytes('\n')
		if errors.Is(err, io.EOF) {
			return records, off, nil
		}
		if err != nil {
			return nil, 0, err
		}
		if !c.HeaderSeen() && bytes.HasPrefix(line, headerPrefix) {
			if rec := c.Classify(trimEOL(line), off); rec.Kind == record.Header {
				records = append(records, rec)
			}
		}
		off += int64(len(line))
	}
}

func (t *Tailer) skip(op string, err error) ([]record.Record, error) {
	t.logger.Debug("progress poll skipped", "op", op, "path", t.path, "error", err)
	return nil, nil
}
