// ABOUTME: Profile operations: listing, default profile detection and hashing
// ABOUTME: Decodes the JSON emitted by `conan profile list/show --format json`
package conan

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// DefaultProfile is the profile conan falls back to when none is given
const DefaultProfile = "default"

// ProfileListArgs are the arguments that request a JSON profile listing
var ProfileListArgs = []string{"profile", "list", "--format", "json"}

// InstalledProfiles returns the profile names reported by `conan profile list`
func (c *Client) InstalledProfiles(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, ProfileListArgs...)
	if err != nil {
		return nil, err
	}

	names, err := ParseProfileList(out.Stdout)
	if err != nil {
		return nil, &ParseError{Command: c.command(ProfileListArgs), Output: out.Stdout, Err: err}
	}
	return names, nil
}

// ParseProfileList decodes a profile listing.
// The top-level value must be an array whose elements are either profile
// names or objects carrying a string "name" field.
func ParseProfileList(data string) ([]string, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, fmt.Errorf("expected a JSON array of profiles, got null")
	}

	names := make([]string, 0, len(items))
	for i, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			names = append(names, name)
			continue
		}

		var entry struct {
			Name *string `json:"name"`
		}
		if err := json.Unmarshal(item, &entry); err == nil && entry.Name != nil {
			names = append(names, *entry.Name)
			continue
		}

		return nil, fmt.Errorf("element %d is neither a profile name nor an object with a name", i)
	}
	return names, nil
}

// DetectDefaultProfile runs `conan profile detect` to create the default profile
func (c *Client) DetectDefaultProfile(ctx context.Context) error {
	_, err := c.run(ctx, "profile", "detect")
	return err
}

// EnsureDefaultProfile creates the default profile only if it is not installed.
// It reports whether detection ran.
func (c *Client) EnsureDefaultProfile(ctx context.Context) (bool, error) {
	profiles, err := c.InstalledProfiles(ctx)
	if err != nil {
		return false, err
	}
	if slices.Contains(profiles, DefaultProfile) {
		return false, nil
	}
	if err := c.DetectDefaultProfile(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ProfileShowArgs builds the arguments for showing the combined host profiles
func ProfileShowArgs(hostProfiles []string) []string {
	args := []string{"profile", "show", "--format", "json"}
	for _, p := range hostProfiles {
		args = append(args, "--profile:host="+p)
	}
	return args
}

// ProfileHash returns a digest of the effective configuration of hostProfiles.
// The digest ignores key order and whitespace in the tool's output.
func (c *Client) ProfileHash(ctx context.Context, hostProfiles []string) (string, error) {
	args := ProfileShowArgs(hostProfiles)
	out, err := c.run(ctx, args...)
	if err != nil {
		return "", err
	}

	sum, err := JSONHash(out.Stdout)
	if err != nil {
		return "", &ParseError{Command: c.command(args), Output: out.Stdout, Err: err}
	}
	return sum, nil
}

// InstallConfig runs `conan config install` on a file, directory, archive,
// URL or git repository that carries profiles and other conan configuration
func (c *Client) InstallConfig(ctx context.Context, source string) error {
	_, err := c.run(ctx, "config", "install", source)
	return err
}
