package tailer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func recvLine(t *testing.T, tl *Tailer) string {
	t.Helper()
	select {
	case line, ok := <-tl.Lines():
		if !ok {
			t.Fatal("Lines channel closed")
		}
		return line
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for line")
		return ""
	}
}

func TestTailer_FromStart(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	if err := os.WriteFile(logFile, []byte("r,reward,steps\n1,10,100\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tl, err := New(ctx, logFile, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer tl.Stop()

	for _, want := range []string{"r,reward,steps", "1,10,100"} {
		if got := recvLine(t, tl); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestTailer_AppendedLines(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	f, err := os.Create(logFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tl, err := New(ctx, logFile, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer tl.Stop()

	time.Sleep(100 * time.Millisecond)

	rows := []string{"1,10,100", "2,15,120", "3,18,140"}
	for i, row := range rows {
		f.WriteString(row + "\n")
		f.Sync()

		if got := recvLine(t, tl); got != row {
			t.Errorf("row %d: got %q, want %q", i, got, row)
		}
	}
}

func TestTailer_PartialLineWithheld(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	f, err := os.Create(logFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tl, err := New(ctx, logFile, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer tl.Stop()

	time.Sleep(100 * time.Millisecond)

	f.WriteString("1,10,")
	f.Sync()

	select {
	case line := <-tl.Lines():
		t.Fatalf("got %q before the line was terminated", line)
	case <-time.After(300 * time.Millisecond):
	}

	f.WriteString("100\n")
	f.Sync()

	if got := recvLine(t, tl); got != "1,10,100" {
		t.Errorf("got %q, want %q", got, "1,10,100")
	}
}

func TestTailer_Stop(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	f, err := os.Create(logFile)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tl, err := New(ctx, logFile, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	tl.Stop()

	select {
	case _, ok := <-tl.Lines():
		if ok {
			t.Error("expected Lines channel to be closed")
		}
	case <-time.After(time.Second):
		t.Error("timeout waiting for Lines channel to close")
	}
}

func TestTailer_StopMultipleTimes(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	f, err := os.Create(logFile)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	tl, err := New(context.Background(), logFile, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	if err := tl.Stop(); err != nil {
		t.Errorf("first Stop() error = %v", err)
	}
	if err := tl.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestTailer_ContextCancel(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	f, err := os.Create(logFile)
	if err != nil {
		t.Fatal(err)
	}
	f.Close()

	ctx, cancel := context.WithCancel(context.Background())

	tl, err := New(ctx, logFile, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer tl.Stop()

	cancel()

	select {
	case _, ok := <-tl.Lines():
		if ok {
			t.Error("expected Lines channel to be closed after context cancel")
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for Lines channel to close")
	}
}

func TestTailer_FileNotExists(t *testing.T) {
	_, err := New(context.Background(), filepath.Join(t.TempDir(), "progress.csv"), DefaultConfig())
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestTailer_Offset(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	if err := os.WriteFile(logFile, []byte("r,reward\n1\n2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Offset = int64(len("r,reward\n1\n"))

	tl, err := New(context.Background(), logFile, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer tl.Stop()

	if got := recvLine(t, tl); got != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
}

func TestTailer_FromEnd(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "progress.csv")

	if err := os.WriteFile(logFile, []byte("r,reward\n1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Offset = FromEnd

	tl, err := New(context.Background(), logFile, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer tl.Stop()

	time.Sleep(100 * time.Millisecond)

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	f.WriteString("2\n")
	f.Sync()

	if got := recvLine(t, tl); got != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
}
