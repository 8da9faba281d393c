// ABOUTME: Verifies that the conan CLI reports a given profile as installed
// ABOUTME: Classifies every failure so a broken tool is never mistaken for a missing profile
package check

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/conanup/conanup/internal/conan"
)

// DefaultProfile is the profile checked when none is configured
const DefaultProfile = "my-profile"

// DefaultTimeout bounds the profile listing subprocess
const DefaultTimeout = 30 * time.Second

// Kind names the outcome of a check
type Kind string

const (
	KindFound        Kind = "found"
	KindEnvironment  Kind = "environment-error"
	KindExecution    Kind = "execution-error"
	KindParse        Kind = "parse-error"
	KindVerification Kind = "verification-failure"
	KindTimeout      Kind = "timeout"
	KindUnknown      Kind = "error"
)

// Options configures a Checker
type Options struct {
	Profile string        // Profile that must be installed
	Timeout time.Duration // Zero means DefaultTimeout
}

// Result describes a successful check
type Result struct {
	Profile   string
	Installed []string
}

// VerificationFailure indicates the listing succeeded but the profile is absent
type VerificationFailure struct {
	Profile   string
	Installed []string
}

func (e *VerificationFailure) Error() string {
	installed := "none"
	if len(e.Installed) > 0 {
		installed = strings.Join(e.Installed, ", ")
	}
	return fmt.Sprintf("verification failure: profile %q is not installed (installed profiles: %s)", e.Profile, installed)
}

// Checker runs the profile existence check. It holds no state between runs.
type Checker struct {
	client  *conan.Client
	profile string
	timeout time.Duration
}

// New creates a Checker that lists profiles through client
func New(client *conan.Client, opts Options) *Checker {
	profile := opts.Profile
	if profile == "" {
		profile = DefaultProfile
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Checker{client: client, profile: profile, timeout: timeout}
}

// Profile returns the profile the checker looks for
func (c *Checker) Profile() string {
	return c.profile
}

// Check lists installed profiles and verifies the configured one is present.
// The listing must exit successfully before its output is parsed.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	installed, err := c.client.InstalledProfiles(ctx)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(installed, c.profile) {
		return nil, &VerificationFailure{Profile: c.profile, Installed: installed}
	}

	return &Result{Profile: c.profile, Installed: installed}, nil
}

// Classify maps the outcome of Check to its Kind
func Classify(err error) Kind {
	if err == nil {
		return KindFound
	}

	var (
		envErr     *conan.EnvironmentError
		execErr    *conan.ExecutionError
		parseErr   *conan.ParseError
		verifyErr  *VerificationFailure
		timeoutErr *conan.TimeoutError
	)

	switch {
	case errors.As(err, &verifyErr):
		return KindVerification
	case errors.As(err, &envErr):
		return KindEnvironment
	case errors.As(err, &execErr):
		return KindExecution
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	default:
		return KindUnknown
	}
}
