package progress

import (
	"bufio"
	"context"
	"errors"
	"io"
	"iter"

	"github.com/spf13/afero"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

// ReadAll classifies every line of a progress file that is no longer being
// written. Unlike Tailer, a final line without a newline is included.
//
// The file is opened lazily on first iteration. Open and read errors are
// yielded once and end the iteration; so does context cancellation.
func ReadAll(ctx context.Context, fsys afero.Fs, path string) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		f, err := fsys.Open(path)
		if err != nil {
			yield(record.Record{}, err)
			return
		}
		defer f.Close()

		var c Classifier
		r := bufio.NewReader(f)
		var off int64
		for {
			if err := ctx.Err(); err != nil {
				yield(record.Record{}, err)
				return
			}

			line, err := r.ReadBytes('\n')
			if len(line) > 0 {
				if !yield(c.Classify(trimEOL(line), off), nil) {
					return
				}
				off += int64(len(line))
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(record.Record{}, err)
				}
				return
			}
		}
	}
}
