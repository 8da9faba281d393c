// ABOUTME: Fake CommandExecutor returning canned output for tests
// ABOUTME: Records every invocation so tests can assert which commands ran
package conantest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/conanup/conanup/internal/conan"
)

// Response is the canned result for one command line
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error         // Returned instead of output when set
	Delay    time.Duration // Simulated run time; honours ctx cancellation
}

// Executor is a conan.CommandExecutor that never spawns a process
type Executor struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     [][]string
}

// NewExecutor creates an executor with no canned responses
func NewExecutor() *Executor {
	return &Executor{responses: make(map[string]Response)}
}

// On registers the response returned when the executor is run with args
func (e *Executor) On(resp Response, args ...string) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.responses[strings.Join(args, " ")] = resp
	return e
}

// Run returns the response registered for args
func (e *Executor) Run(ctx context.Context, args ...string) (*conan.Output, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls = append(e.calls, append([]string(nil), args...))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, ok := e.responses[strings.Join(args, " ")]
	if !ok {
		return nil, fmt.Errorf("conantest: no response registered for %q", strings.Join(args, " "))
	}
	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return &conan.Output{Stdout: resp.Stdout, Stderr: resp.Stderr, ExitCode: resp.ExitCode}, nil
}

// Calls returns the argument lists of every Run, in order
func (e *Executor) Calls() [][]string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([][]string(nil), e.calls...)
}

// Called reports whether Run was invoked with exactly args
func (e *Executor) Called(args ...string) bool {
	want := strings.Join(args, " ")
	for _, call := range e.Calls() {
		if strings.Join(call, " ") == want {
			return true
		}
	}
	return false
}
