package progress

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

// Sequencer classifies lines that arrive one at a time with their "\n"
// already removed, as a file follower delivers them, and keeps track of
// where each line starts in the file.
//
// Offsets are exact as long as every line is delivered and the file is
// never truncated or replaced. A follower that reopens a rotated file
// starts again at zero without telling the Sequencer, so offsets after a
// reopen are only approximate.
type Sequencer struct {
	classifier Classifier
	next       int64
}

// Offset returns the file offset the next line is expected to start at.
func (s *Sequencer) Offset() int64 {
	return s.next
}

// SkipExisting moves past the complete lines already in the file at path and
// returns its first header, if any. The header state is only committed when
// the whole file was read.
func (s *Sequencer) SkipExisting(fsys afero.Fs, path string) ([]record.Record, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := s.classifier
	records, off, err := scanToEnd(f, &c)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s.classifier = c
	s.next = off
	return records, nil
}

// Next classifies line, which must not include its "\n". A trailing "\r" is
// dropped from the text but still counted in the offsets.
func (s *Sequencer) Next(line string) record.Record {
	raw := []byte(line)
	rec := s.classifier.Classify(trimEOL(raw), s.next)
	s.next += int64(len(raw)) + 1
	return rec
}
