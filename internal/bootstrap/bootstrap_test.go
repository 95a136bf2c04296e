package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/stencil-labs/stencil/internal/logkit"
	"github.com/stencil-labs/stencil/internal/manifest"
)

func writeRequirements(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeStubTool installs a fake installer on PATH that fails on any spec
// containing "badpkg".
func writeStubTool(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tool requires a POSIX shell")
	}

	dir := t.TempDir()
	script := `#!/bin/sh
case "$2" in
  *badpkg*)
    echo "no such package: $2" >&2
    exit 1
    ;;
esac
echo "added $2"
`
	if err := os.WriteFile(filepath.Join(dir, "uvstub"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func baseOptions(dir string, out *bytes.Buffer) Options {
	return Options{
		Dir:              dir,
		RequirementsFile: "requirements.txt",
		ManifestFile:     "pyproject.toml",
		Tool:             "uvstub",
		Out:              out,
	}
}

func TestRun_SkipInstall(t *testing.T) {
	dir := t.TempDir()
	writeRequirements(t, dir, "numpy\n# comment\n\npandas==1.2.3")

	var out bytes.Buffer
	opts := baseOptions(dir, &out)
	opts.SkipInstall = true

	res := Run(context.Background(), opts)
	if !res.OK {
		t.Fatalf("Run failed: %+v", res.Diagnostics)
	}
	if res.State != StateDone {
		t.Errorf("State = %s, want done", res.State)
	}

	specs := make([]string, len(res.Requirements))
	for i, r := range res.Requirements {
		specs[i] = r.Spec()
	}
	if len(specs) != 2 || specs[0] != "numpy" || specs[1] != "pandas==1.2.3" {
		t.Errorf("Requirements = %v", specs)
	}

	// The manifest was synthesized and cleared.
	doc, err := manifest.Load(filepath.Join(dir, "pyproject.toml"))
	if err != nil {
		t.Fatalf("Load manifest: %v", err)
	}
	if len(doc.Project.Dependencies) != 0 {
		t.Errorf("Dependencies = %v, want empty", doc.Project.Dependencies)
	}

	// The skeleton was materialized.
	if _, err := os.Stat(filepath.Join(dir, "src", "Front", "Logging", "logging.py")); err != nil {
		t.Errorf("skeleton missing: %v", err)
	}

	for _, want := range []string{
		"Clearing existing dependencies in pyproject.toml...",
		"Successfully cleared dependencies.",
		"Creating source package skeleton...",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("narrative missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_Install(t *testing.T) {
	writeStubTool(t)
	dir := t.TempDir()
	writeRequirements(t, dir, "numpy\npandas==1.2.3")

	var out bytes.Buffer
	res := Run(context.Background(), baseOptions(dir, &out))
	if !res.OK {
		t.Fatalf("Run failed: %+v", res.Diagnostics)
	}
	if !strings.Contains(out.String(), "All packages added successfully.") {
		t.Errorf("narrative missing install summary:\n%s", out.String())
	}
}

func TestRun_MissingRequirementsFileIsFatal(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	opts := baseOptions(dir, &out)
	opts.SkipInstall = true

	res := Run(context.Background(), opts)
	if res.OK {
		t.Fatal("expected failure for missing requirement file")
	}
	if res.State != StateFailed {
		t.Errorf("State = %s, want failed", res.State)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Phase != PhaseParse || !res.Diagnostics[0].Fatal {
		t.Errorf("Diagnostics = %+v", res.Diagnostics)
	}

	// The pipeline aborted before the skeleton phase.
	if _, err := os.Stat(filepath.Join(dir, "src")); !os.IsNotExist(err) {
		t.Error("skeleton was created after a fatal parse failure")
	}
}

func TestRun_InvalidLinesAreNonFatal(t *testing.T) {
	dir := t.TempDir()
	writeRequirements(t, dir, "numpy\n==bogus\npandas==1.2.3")

	var out bytes.Buffer
	opts := baseOptions(dir, &out)
	opts.SkipInstall = true

	res := Run(context.Background(), opts)
	if !res.OK {
		t.Fatalf("Run failed: %+v", res.Diagnostics)
	}
	if len(res.Requirements) != 2 {
		t.Errorf("Requirements = %v", res.Requirements)
	}

	fatal := 0
	for _, d := range res.Diagnostics {
		if d.Fatal {
			fatal++
		}
	}
	if fatal != 0 {
		t.Errorf("fatal diagnostics = %d, want 0", fatal)
	}
	if !strings.Contains(out.String(), "Skipping invalid line: ==bogus") {
		t.Errorf("narrative missing skip line:\n%s", out.String())
	}
}

func TestRun_InstallFailureHaltsPipeline(t *testing.T) {
	writeStubTool(t)
	dir := t.TempDir()
	writeRequirements(t, dir, "numpy\nbadpkg==9.9.9\npandas==1.2.3")

	var out bytes.Buffer
	res := Run(context.Background(), baseOptions(dir, &out))
	if res.OK {
		t.Fatal("expected failure on badpkg")
	}
	if res.State != StateFailed {
		t.Errorf("State = %s, want failed", res.State)
	}

	var fatal *Diagnostic
	for i := range res.Diagnostics {
		if res.Diagnostics[i].Fatal {
			fatal = &res.Diagnostics[i]
		}
	}
	if fatal == nil || fatal.Phase != PhaseInstall {
		t.Fatalf("fatal diagnostic = %+v", fatal)
	}

	// The skeleton phase never ran.
	if _, err := os.Stat(filepath.Join(dir, "src")); !os.IsNotExist(err) {
		t.Error("skeleton was created after an install failure")
	}
}

func TestRun_ReRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeRequirements(t, dir, "numpy")

	opts := baseOptions(dir, &bytes.Buffer{})
	opts.SkipInstall = true

	if res := Run(context.Background(), opts); !res.OK {
		t.Fatalf("first run failed: %+v", res.Diagnostics)
	}

	// Hand-edit a generated file between runs.
	edited := filepath.Join(dir, "src", "Front", "Utils", "utils.py")
	if err := os.WriteFile(edited, []byte("# custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	opts.Out = &out
	if res := Run(context.Background(), opts); !res.OK {
		t.Fatalf("second run failed: %+v", res.Diagnostics)
	}

	data, err := os.ReadFile(edited)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# custom\n" {
		t.Errorf("re-run overwrote a user edit: %q", data)
	}
}

func TestRun_WritesRunLog(t *testing.T) {
	dir := t.TempDir()
	writeRequirements(t, dir, "numpy")

	logs := logkit.New(filepath.Join(dir, "logs"), zapcore.InfoLevel)
	defer logs.Close()

	opts := baseOptions(dir, &bytes.Buffer{})
	opts.SkipInstall = true
	opts.Logs = logs

	if res := Run(context.Background(), opts); !res.OK {
		t.Fatalf("Run failed: %+v", res.Diagnostics)
	}
	_ = logs.Close()

	data, err := os.ReadFile(filepath.Join(dir, "logs", LogChannel+".log"))
	if err != nil {
		t.Fatalf("run log missing: %v", err)
	}
	for _, want := range []string{"manifest normalized", "requirements parsed", "skeleton materialized"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("run log missing %q", want)
		}
	}
}
