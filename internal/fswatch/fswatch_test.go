package fswatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNotifier_Create(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "progress.csv")

	n, err := New(path)
	require.NoError(t, err)
	defer n.Close()

	require.NoError(t, os.WriteFile(path, []byte("r,reward\n"), 0o644))

	select {
	case <-n.C():
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for create notification")
	}
}

func TestNotifier_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	n, err := New(filepath.Join(dir, "progress.csv"))
	require.NoError(t, err)
	defer n.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{}"), 0o644))

	select {
	case <-n.C():
		t.Fatal("unexpected notification for another file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNotifier_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "progress.csv"))
	assert.Error(t, err)
}

func TestNotifier_CloseTwice(t *testing.T) {
	defer goleak.VerifyNone(t)

	n, err := New(filepath.Join(t.TempDir(), "progress.csv"))
	require.NoError(t, err)

	assert.NoError(t, n.Close())
	assert.NoError(t, n.Close())
}
