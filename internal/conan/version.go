// ABOUTME: Detects the installed conan version and derives cache keys from it
// ABOUTME: Version strings are parsed with Masterminds/semver
package conan

import (
	"context"
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

var versionPattern = regexp.MustCompile(`(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)`)

// ParseVersion extracts the first major.minor.patch triple from text such as
// "Conan version 2.8.0"
func ParseVersion(text string) (*semver.Version, error) {
	match := versionPattern.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("could not parse version: %q", Excerpt(text))
	}
	return semver.NewVersion(match)
}

// Version returns the version reported by `conan --version`
func (c *Client) Version(ctx context.Context) (*semver.Version, error) {
	args := []string{"--version"}
	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	v, err := ParseVersion(out.Stdout)
	if err != nil {
		return nil, &ParseError{Command: c.command(args), Output: out.Stdout, Err: err}
	}
	return v, nil
}

// CacheKey builds the cache key for a conan version and a user or profile key
func CacheKey(v *semver.Version, key string) string {
	return fmt.Sprintf("conan-v%d.%d.%d-%s", v.Major(), v.Minor(), v.Patch(), key)
}

// PipIndexArgs ask pip for the conan releases published on the package index
var PipIndexArgs = []string{"index", "versions", "conan"}

// LatestRelease returns the newest conan release known to pip. Its output
// starts with "conan (X.Y.Z)", so the first version found is the latest.
func LatestRelease(ctx context.Context, pip CommandExecutor) (*semver.Version, error) {
	c := NewClient(pip, "pip")
	out, err := c.run(ctx, PipIndexArgs...)
	if err != nil {
		return nil, err
	}

	v, err := ParseVersion(out.Stdout)
	if err != nil {
		return nil, &ParseError{Command: c.command(PipIndexArgs), Output: out.Stdout, Err: err}
	}
	return v, nil
}
