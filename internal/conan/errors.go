// ABOUTME: Error types for failures talking to the conan CLI
// ABOUTME: Separates a broken tool from bad output so callers can report which one happened
package conan

import (
	"fmt"
	"strings"
)

// maxExcerpt bounds how much tool output is echoed back in error messages
const maxExcerpt = 200

// EnvironmentError indicates the tool binary could not be found or started
type EnvironmentError struct {
	Binary string
	Err    error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf(`environment error: cannot run %q: %v

Make sure conan is installed and on your PATH, or point conanup at it:

  conanup --conan /path/to/conan ...`, e.Binary, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// ExecutionError indicates the tool ran but exited with a non-zero status.
// Stderr holds the full output; Error only shows an excerpt of it.
type ExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("execution error: %q exited with status %d", e.Command, e.ExitCode)
	if stderr := Excerpt(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// ParseError indicates the tool succeeded but its output could not be understood
type ParseError struct {
	Command string
	Output  string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: output of %q is malformed: %v (output: %q)",
		e.Command, e.Err, Excerpt(e.Output))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TimeoutError indicates the tool did not finish before the deadline
type TimeoutError struct {
	Command string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: %q did not finish in time", e.Command)
}

// Excerpt trims s and shortens it to a size suitable for a single error line
func Excerpt(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= maxExcerpt {
		return s
	}
	return string(runes[:maxExcerpt]) + "..."
}
