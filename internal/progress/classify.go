package progress

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

var headerPrefix = []byte(record.HeaderPrefix)

// Classifier turns raw lines into records. It remembers whether the header has
// been emitted; once it has, header-like lines are plain data.
//
// The zero value is ready to use. A Classifier is not safe for concurrent use.
type Classifier struct {
	headerSeen bool
}

// HeaderSeen reports whether a header record has been produced.
func (c *Classifier) HeaderSeen() bool {
	return c.headerSeen
}

// Classify classifies line, which starts at offset in the file.
// Lines that are not valid UTF-8 become Undecodable placeholders and never
// count as the header.
func (c *Classifier) Classify(line []byte, offset int64) record.Record {
	if !utf8.Valid(line) {
		return record.Record{
			Kind:   record.Undecodable,
			Text:   fmt.Sprintf("<undecodable row: %d bytes at offset %d>", len(line), offset),
			Offset: offset,
		}
	}

	rec := record.Record{
		Kind:   record.Data,
		Text:   strings.TrimSpace(string(line)),
		Offset: offset,
	}
	if !c.headerSeen && bytes.HasPrefix(line, headerPrefix) {
		c.headerSeen = true
		rec.Kind = record.Header
	}
	return rec
}
