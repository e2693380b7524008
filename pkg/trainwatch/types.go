package trainwatch

import (
	"github.com/trainwatch/trainwatch-go/internal/display"
	"github.com/trainwatch/trainwatch-go/internal/progress"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

// Re-export record types for convenience.

// Record is one classified line of a progress log.
type Record = record.Record

// Kind is the classification of a progress log line.
type Kind = record.Kind

// Kind constants.
const (
	KindHeader      = record.Header
	KindData        = record.Data
	KindUndecodable = record.Undecodable
)

// Clock provides the timers the monitor sleeps on. Tests can supply their
// own to drive the poll loop without waiting.
type Clock = progress.Clock

// Engine selects how new lines are detected.
type Engine string

const (
	// EnginePoll re-reads the file from a byte cursor every poll interval.
	EnginePoll Engine = "poll"

	// EngineFollow uses filesystem notifications via nxadm/tail and
	// reopens the file when it is rotated. It needs the OS filesystem.
	// Record offsets restart at zero after a reopen and are approximate
	// from then on.
	EngineFollow Engine = "follow"
)

// EngineNames lists the valid engine names.
func EngineNames() []string {
	return []string{string(EngineFollow), string(EnginePoll)}
}

// Summary counts the rows a Monitor has printed.
type Summary = display.Summary
