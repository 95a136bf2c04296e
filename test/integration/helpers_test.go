//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths for one sandboxed bootstrap run.
type testEnv struct {
	ProjectDir string // the directory being scaffolded
	ToolLog    string // invocation log written by the stub installer
}

// setupTestEnv creates an isolated project directory and installs a stub
// installer tool named "uvstub" on PATH. The stub appends "add <spec>" to the
// invocation log per call and exits 1 for any spec containing "badpkg".
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool requires a POSIX shell")
	}

	binDir := t.TempDir()
	env := &testEnv{
		ProjectDir: t.TempDir(),
		ToolLog:    filepath.Join(binDir, "invocations.log"),
	}

	script := `#!/bin/sh
echo "$1 $2" >> "$STUB_LOG"
case "$2" in
  *badpkg*)
    echo "no such package: $2" >&2
    exit 1
    ;;
esac
echo "added $2"
`
	if err := os.WriteFile(filepath.Join(binDir, "uvstub"), []byte(script), 0o755); err != nil {
		t.Fatalf("writing stub tool: %v", err)
	}

	t.Setenv("STUB_LOG", env.ToolLog)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func invocations(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.ToolLog)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("reading tool log: %v", err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("%s is a directory, want file", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", path)
	}
}
