package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trainwatch/trainwatch-go/internal/display"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch"
)

// ValidFormats lists the output formats of the show command.
var ValidFormats = map[string]bool{
	"pretty": true,
	"jsonl":  true,
}

// recordSink writes records in one output format.
type recordSink func(trainwatch.Record) error

// newSink returns the sink for format writing to w.
func newSink(format string, w io.Writer) (recordSink, error) {
	switch format {
	case "jsonl":
		return func(rec trainwatch.Record) error { return OutputJSON(rec, w) }, nil
	case "pretty":
		return display.New(w).Record, nil
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of: jsonl, pretty", format)
	}
}

// OutputJSON writes rec as one line of JSON.
func OutputJSON(rec trainwatch.Record, w io.Writer) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
