// Package record defines the Record type produced when a training progress
// log is read.
//
// This package is separated from the main trainwatch package to avoid import
// cycles between pkg/trainwatch and internal/progress.
package record

import (
	"sort"
	"strings"
)

// HeaderPrefix marks the column-name row of a progress log.
const HeaderPrefix = "r,"

// Kind is the classification of a single progress log line.
type Kind string

const (
	// Header is the first line beginning with HeaderPrefix.
	Header Kind = "header"

	// Data is any other line, including header-like lines seen after the header.
	Data Kind = "data"

	// Undecodable is a line that is not valid UTF-8.
	Undecodable Kind = "undecodable"
)

// allKinds is the canonical list of record kinds.
var allKinds = []Kind{Header, Data, Undecodable}

// KindNames returns a sorted list of all valid kind names.
func KindNames() []string {
	names := make([]string, len(allKinds))
	for i, k := range allKinds {
		names[i] = string(k)
	}
	sort.Strings(names)
	return names
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(allKinds))
	for _, k := range allKinds {
		m[string(k)] = k
	}
	return m
}()

// ParseKind converts a string to Kind if valid.
// It is case-insensitive and trims leading/trailing whitespace.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	k, ok := kindByName[name]
	return k, ok
}

// Record is one classified line of a progress log.
type Record struct {
	// Kind is the line classification.
	Kind Kind `json:"kind"`

	// Text is the trimmed line content. For Undecodable records it is a
	// human-readable placeholder instead of the raw bytes.
	Text string `json:"text"`

	// Offset is the byte offset of the start of the line in the file. When
	// the file is followed across a truncation or rotation, offsets after
	// the reopen may be approximate.
	Offset int64 `json:"offset"`
}
