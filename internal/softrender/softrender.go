// Package softrender runs commands with OpenGL forced onto the Mesa software
// rasterizer, for training on headless machines without a usable GPU driver.
package softrender

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Variables forces software rendering. Values override the inherited ones.
var Variables = map[string]string{
	"LIBGL_ALWAYS_SOFTWARE": "1",
	"GALLIUM_DRIVER":        "llvmpipe",
}

// Env returns base with every entry of Variables set, replacing any existing
// value. Order of the untouched entries is preserved.
func Env(base []string) []string {
	env := make([]string, 0, len(base)+len(Variables))
	for _, kv := range base {
		name, _, _ := strings.Cut(kv, "=")
		if _, forced := Variables[name]; forced {
			continue
		}
		env = append(env, kv)
	}
	for _, name := range []string{"LIBGL_ALWAYS_SOFTWARE", "GALLIUM_DRIVER"} {
		env = append(env, name+"="+Variables[name])
	}
	return env
}

// Command returns a command running name with args under software rendering,
// wired to the current process's standard streams.
func Command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = Env(os.Environ())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
