// ABOUTME: Runs the conan CLI as a subprocess and captures its output
// ABOUTME: CommandExecutor is the seam tests use to substitute canned results
package conan

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the tool invoked when no explicit path is configured
const DefaultBinary = "conan"

// waitDelay bounds how long Run waits for output pipes after the process is killed
const waitDelay = 2 * time.Second

// Output is the captured result of one tool invocation
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status 0
func (o *Output) Success() bool {
	return o.ExitCode == 0
}

// CommandExecutor runs the conan CLI.
// A non-zero exit is not an error at this level: it is reported through
// Output.ExitCode so callers can decide how to treat it.
type CommandExecutor interface {
	Run(ctx context.Context, args ...string) (*Output, error)
}

// DefaultExecutor runs commands using a real binary on disk
type DefaultExecutor struct {
	Binary string   // Tool name or path, resolved through PATH
	Env    []string // Extra KEY=VALUE pairs appended to the environment
}

// NewDefaultExecutor creates an executor for the given binary, falling back to "conan"
func NewDefaultExecutor(binary string) *DefaultExecutor {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	return &DefaultExecutor{Binary: binary}
}

// Run executes the tool with args and waits for it to finish
func (e *DefaultExecutor) Run(ctx context.Context, args ...string) (*Output, error) {
	path, err := exec.LookPath(e.Binary)
	if err != nil {
		return nil, &EnvironmentError{Binary: e.Binary, Err: err}
	}

	slog.Debug("running command", "binary", path, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.WaitDelay = waitDelay
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()

	out := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err == nil {
		slog.Debug("command exited", "binary", path, "exit_code", 0)
		return out, nil
	}

	// A killed process also surfaces as an ExitError, so check the deadline first
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, &TimeoutError{Command: commandLine(e.Binary, args)}
		}
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		slog.Debug("command exited", "binary", path, "exit_code", out.ExitCode)
		return out, nil
	}
	return nil, &EnvironmentError{Binary: e.Binary, Err: err}
}

func commandLine(binary string, args []string) string {
	return strings.TrimSpace(binary + " " + strings.Join(args, " "))
}
