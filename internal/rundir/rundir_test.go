package rundir

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestResolve(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/runs/seed2", 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
	}{
		{"explicit wins over env", "/runs/seed2", "/runs/other", "/runs/seed2"},
		{"env used when explicit empty", "", "/runs/seed2", "/runs/seed2"},
		{"default when nothing set", "", "", DefaultRunDir},
		{"missing dir is allowed", "/runs/seed9", "", "/runs/seed9"},
		{"path is cleaned", "/runs/seed2/", "", "/runs/seed2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvRunDir, tt.env)

			got, err := Resolve(fsys, tt.explicit)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if got != filepath.Clean(tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_NotDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/runs/progress.csv", []byte("r,a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Resolve(fsys, "/runs/progress.csv")
	if !errors.Is(err, ErrNotDirectory) {
		t.Errorf("Resolve() error = %v, want %v", err, ErrNotDirectory)
	}
}

func TestProgressFile(t *testing.T) {
	got := ProgressFile("carracing/no_shield/seed1")
	want := filepath.Join("carracing", "no_shield", "seed1", "progress.csv")
	if got != want {
		t.Errorf("ProgressFile() = %v, want %v", got, want)
	}
}
