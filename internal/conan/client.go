// ABOUTME: Typed operations over the conan CLI built on a CommandExecutor
// ABOUTME: Turns exit codes and stdout into Go values or classified errors
package conan

import (
	"context"
	"strings"
	"time"
)

// Client issues conan commands through an executor
type Client struct {
	executor CommandExecutor
	name     string        // Tool name used in error messages
	timeout  time.Duration // Per-command bound; zero leaves ctx as is
}

// NewClient creates a client. name is only used to describe commands in errors.
func NewClient(executor CommandExecutor, name string) *Client {
	if strings.TrimSpace(name) == "" {
		name = DefaultBinary
	}
	return &Client{executor: executor, name: name}
}

// WithTimeout returns a copy of the client that bounds every command it runs
// by d. Multi-step operations such as SaveCache get d for each step.
func (c *Client) WithTimeout(d time.Duration) *Client {
	clone := *c
	clone.timeout = d
	return &clone
}

// run executes args and converts a non-zero exit into an ExecutionError.
// Output of a failed command is never handed back to the caller.
func (c *Client) run(ctx context.Context, args ...string) (*Output, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	out, err := c.executor.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if !out.Success() {
		return nil, &ExecutionError{
			Command:  c.command(args),
			ExitCode: out.ExitCode,
			Stderr:   out.Stderr,
		}
	}
	return out, nil
}

func (c *Client) command(args []string) string {
	return commandLine(c.name, args)
}
