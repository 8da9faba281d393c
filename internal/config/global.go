// ABOUTME: Global configuration management for conanup
// ABOUTME: Handles loading and saving ~/.conanup/config.json
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GlobalConfig represents the global configuration file structure
type GlobalConfig struct {
	Conan ConanConfig `json:"conan"`
	Check CheckConfig `json:"check"`
}

// ConanConfig controls how the conan CLI is invoked
type ConanConfig struct {
	Binary  string `json:"binary,omitempty"`
	Timeout string `json:"timeout,omitempty"` // Go duration, e.g. "30s"
}

// CheckConfig holds defaults for `conanup check`
type CheckConfig struct {
	Profile string `json:"profile,omitempty"`
}

// DefaultConfig returns a new config with default values
func DefaultConfig() *GlobalConfig {
	return &GlobalConfig{
		Conan: ConanConfig{
			Binary:  "conan",
			Timeout: "30s",
		},
		Check: CheckConfig{
			Profile: "my-profile",
		},
	}
}

// TimeoutDuration parses Conan.Timeout
func (c *GlobalConfig) TimeoutDuration() (time.Duration, error) {
	if c.Conan.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Conan.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid conan.timeout %q: %w", c.Conan.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("conan.timeout must be positive, got %q", c.Conan.Timeout)
	}
	return d, nil
}

// setters maps user-facing keys to the fields they update
var setters = map[string]func(*GlobalConfig, string) error{
	"conan.binary": func(c *GlobalConfig, v string) error {
		c.Conan.Binary = v
		return nil
	},
	"conan.timeout": func(c *GlobalConfig, v string) error {
		previous := c.Conan.Timeout
		c.Conan.Timeout = v
		if _, err := c.TimeoutDuration(); err != nil {
			c.Conan.Timeout = previous
			return err
		}
		return nil
	},
	"check.profile": func(c *GlobalConfig, v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("check.profile cannot be empty")
		}
		c.Check.Profile = v
		return nil
	},
}

// Keys returns the settable configuration keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set updates the value for key, validating it first
func (c *GlobalConfig) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	return set(c, value)
}

// Load reads config.json from home. A missing file yields the defaults.
func Load(home string) (*GlobalConfig, error) {
	data, err := os.ReadFile(ConfigPath(home))
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigPath(home), err)
	}

	return cfg, nil
}

// Save writes the global config to disk
func Save(home string, cfg *GlobalConfig) error {
	cfgPath := ConfigPath(home)

	// Ensure directory exists
	dir := filepath.Dir(cfgPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Write config
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(cfgPath, data, 0644)
}
