package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/stencil-labs/stencil/internal/requirements"
)

// Output captures the result of one installer tool invocation.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner invokes the external installer tool.
type Runner struct {
	// Tool is the installer command name, e.g. "uv".
	Tool string

	// Dir is the working directory for invocations. Empty means the
	// current directory.
	Dir string

	// Timeout bounds each invocation. Zero means no timeout.
	Timeout time.Duration

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// LookupTool verifies the installer tool exists on PATH and returns its
// resolved path.
func (r *Runner) LookupTool() (string, error) {
	bin, err := exec.LookPath(r.Tool)
	if err != nil {
		return "", fmt.Errorf("installer tool %q not found on PATH: %w", r.Tool, err)
	}
	return bin, nil
}

// Add runs `<tool> add <spec>`, blocking until the subprocess exits. A
// non-zero exit is reported through Output.ExitCode, not the error return;
// the error covers failures to start or interrupt the subprocess.
func (r *Runner) Add(ctx context.Context, spec string) (*Output, error) {
	bin, err := r.LookupTool()
	if err != nil {
		return nil, err
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, bin, "add", spec)
	cmd.Dir = r.Dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s add %s: %w", r.Tool, spec, err)
	}

	output.ExitCode = 0
	return output, nil
}

// InstallAll installs requirements in input order, printing progress to w.
// The first failure halts the batch: later requirements are never attempted.
func (r *Runner) InstallAll(ctx context.Context, w io.Writer, reqs []requirements.Requirement) error {
	for _, req := range reqs {
		spec := req.Spec()
		fmt.Fprintf(w, "Adding %s to the manifest...\n", spec)

		out, err := r.Add(ctx, spec)
		if err != nil {
			return fmt.Errorf("adding %s: %w", spec, err)
		}
		if out.ExitCode != 0 {
			return fmt.Errorf("adding %s: %s exited with code %d: %s",
				spec, r.Tool, out.ExitCode, out.Stderr)
		}

		fmt.Fprintf(w, "  [ OK ] Added %s\n", spec)
	}
	return nil
}
