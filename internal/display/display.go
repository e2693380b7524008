// Package display renders monitoring progress as plain terminal lines.
//
// Styling comes from a lipgloss renderer bound to the destination writer, so
// output to a file or pipe carries no escape codes.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/trainwatch/trainwatch-go/pkg/trainwatch/record"
)

const ruleWidth = 80

// Summary counts what a Printer has shown.
type Summary struct {
	HeaderShown bool
	Rows        int
	Undecodable int
}

// Printer writes notices and records to an output sink.
// A Printer is not safe for concurrent use.
type Printer struct {
	w       io.Writer
	notice  lipgloss.Style
	header  lipgloss.Style
	rule    lipgloss.Style
	invalid lipgloss.Style
	summary Summary
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		notice:  r.NewStyle().Foreground(lipgloss.Color("6")),
		header:  r.NewStyle().Bold(true).TabWidth(lipgloss.NoTabConversion),
		rule:    r.NewStyle().Faint(true),
		invalid: r.NewStyle().Foreground(lipgloss.Color("1")).Italic(true),
	}
}

// TensorboardCommand returns the command that opens dir in TensorBoard.
func TensorboardCommand(dir string) string {
	return "tensorboard --logdir=" + dir
}

// Banner prints the startup banner for the run directory dir.
func (p *Printer) Banner(dir string) error {
	return p.println(
		"Monitoring training in: "+dir,
		"Tensorboard logs: "+dir+"/",
		"To view tensorboard: "+TensorboardCommand(dir),
		p.rule.Render(strings.Repeat("=", ruleWidth)),
		"",
	)
}

// Waiting prints the notice shown while the progress log does not exist.
func (p *Printer) Waiting(path string) error {
	return p.println(p.notice.Render(fmt.Sprintf("Waiting for training to start (looking for %s)...", path)))
}

// Started prints the notice shown once the progress log appears.
func (p *Printer) Started() error {
	return p.println(p.notice.Render("Training started!"), "")
}

// Record prints one classified line. The header is followed by a rule.
func (p *Printer) Record(rec record.Record) error {
	switch rec.Kind {
	case record.Header:
		p.summary.HeaderShown = true
		return p.println(p.header.Render(rec.Text), p.rule.Render(strings.Repeat("-", ruleWidth)))
	case record.Undecodable:
		p.summary.Undecodable++
		return p.println(p.invalid.Render(rec.Text))
	default:
		p.summary.Rows++
		return p.println(rec.Text)
	}
}

// Stopped prints the shutdown summary for the run directory dir.
func (p *Printer) Stopped(dir string) error {
	counts := fmt.Sprintf("Rows shown: %d", p.summary.Rows)
	if p.summary.Undecodable > 0 {
		counts += fmt.Sprintf(" (%d undecodable)", p.summary.Undecodable)
	}
	return p.println(
		"",
		"Monitoring stopped.",
		counts,
		"",
		"To view detailed logs with tensorboard:",
		"  "+TensorboardCommand(dir),
	)
}

// Summary returns the counts so far.
func (p *Printer) Summary() Summary {
	return p.summary
}

func (p *Printer) println(lines ...string) error {
	for _, line := range lines {
		if _, err := io.WriteString(p.w, line+"\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}
