package bootstrap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/stencil-labs/stencil/internal/installer"
	"github.com/stencil-labs/stencil/internal/logkit"
	"github.com/stencil-labs/stencil/internal/manifest"
	"github.com/stencil-labs/stencil/internal/requirements"
	"github.com/stencil-labs/stencil/internal/skeleton"
)

// LogChannel is the registry channel the pipeline writes its run log to.
const LogChannel = "bootstrap"

// Options configures one pipeline run.
type Options struct {
	// Dir is the project root. Empty means the current directory.
	Dir string

	// RequirementsFile and ManifestFile are relative to Dir unless absolute.
	RequirementsFile string
	ManifestFile     string

	// Tool is the installer command, e.g. "uv".
	Tool string

	// Timeout bounds each installer invocation. Zero means no timeout.
	Timeout time.Duration

	// SkipInstall parses requirements and builds the skeleton without
	// invoking the installer tool.
	SkipInstall bool

	// Out receives the sequential progress narrative.
	Out io.Writer

	// Logs, when non-nil, receives a structured run log on LogChannel.
	Logs *logkit.Registry
}

// Result is the outcome of a pipeline run. OK is the public contract; State
// and Diagnostics explain it.
type Result struct {
	OK           bool
	State        State
	Requirements []requirements.Requirement
	Diagnostics  []Diagnostic
}

// Run executes the pipeline phases in order, stopping at the first failure.
func Run(ctx context.Context, opts Options) *Result {
	res := &Result{State: StateStart}
	log := runLogger(opts)

	fail := func(phase Phase, err error) *Result {
		res.State = StateFailed
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Phase:   phase,
			Message: err.Error(),
			Fatal:   true,
		})
		fmt.Fprintf(opts.Out, "Error: %v\n", err)
		log.Error("phase failed", zap.String("phase", string(phase)), zap.Error(err))
		return res
	}

	// Phase 1: manifest normalization.
	manifestPath := opts.resolve(opts.ManifestFile)
	fmt.Fprintf(opts.Out, "Clearing existing dependencies in %s...\n", opts.ManifestFile)
	doc, err := manifest.Normalize(manifestPath)
	if err != nil {
		return fail(PhaseManifest, err)
	}
	fmt.Fprintln(opts.Out, "Successfully cleared dependencies.")
	log.Info("manifest normalized",
		zap.String("path", manifestPath),
		zap.String("project", doc.Project.Name))
	res.State = StateManifestCleared

	// Phase 2: requirement ingestion.
	reqsPath := opts.resolve(opts.RequirementsFile)
	reqs, skips, err := requirements.ParseFile(reqsPath)
	if err != nil {
		return fail(PhaseParse, err)
	}
	for _, skip := range skips {
		fmt.Fprintf(opts.Out, "Skipping invalid line: %s\n", skip.Line)
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Phase:   PhaseParse,
			Message: skip.String(),
		})
	}
	res.Requirements = reqs
	log.Info("requirements parsed",
		zap.String("path", reqsPath),
		zap.Int("accepted", len(reqs)),
		zap.Int("skipped", len(skips)))
	res.State = StateRequirementsParsed

	// Phase 3: dependency installation.
	if opts.SkipInstall {
		fmt.Fprintf(opts.Out, "Skipping installation of %d packages.\n", len(reqs))
		log.Info("installation skipped", zap.Int("requirements", len(reqs)))
	} else {
		runner := &installer.Runner{
			Tool:    opts.Tool,
			Dir:     opts.Dir,
			Timeout: opts.Timeout,
			Stdout:  opts.Out,
			Stderr:  opts.Out,
		}
		if err := runner.InstallAll(ctx, opts.Out, reqs); err != nil {
			return fail(PhaseInstall, err)
		}
		fmt.Fprintln(opts.Out, "All packages added successfully.")
		log.Info("dependencies installed", zap.Int("count", len(reqs)))
	}
	res.State = StateDependenciesInstalled

	// Phase 4: skeleton materialization.
	fmt.Fprintln(opts.Out, "Creating source package skeleton...")
	if err := skeleton.Materialize(opts.Out, opts.Dir); err != nil {
		return fail(PhaseSkeleton, err)
	}
	log.Info("skeleton materialized", zap.String("root", opts.Dir))
	res.State = StateSkeletonCreated

	res.State = StateDone
	res.OK = true
	return res
}

// resolve joins a file name with the project dir unless it is absolute.
func (o Options) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.Dir, name)
}

// runLogger returns the structured run logger, or a no-op logger when the
// registry is absent or the channel cannot be opened.
func runLogger(opts Options) *zap.Logger {
	if opts.Logs == nil {
		return zap.NewNop()
	}
	log, err := opts.Logs.Get(LogChannel)
	if err != nil {
		fmt.Fprintf(opts.Out, "Warning: run log unavailable: %v\n", err)
		return zap.NewNop()
	}
	return log
}
