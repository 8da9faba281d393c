// ABOUTME: Centralized path resolution for conanup directories
// ABOUTME: Respects CONANUP_HOME and CONANUP_CONAN environment variables for isolation

package config

import (
	"os"
	"path/filepath"
	"strings"
)

// MustConanupHome returns the conanup home directory.
// Checks CONANUP_HOME env var first, falls back to ~/.conanup.
// Panics if CONANUP_HOME is set but invalid (whitespace-only or relative path).
// Panics if home directory cannot be determined.
func MustConanupHome() string {
	if home := os.Getenv("CONANUP_HOME"); home != "" {
		home = strings.TrimSpace(home)
		if home == "" {
			panic("CONANUP_HOME is set but contains only whitespace")
		}
		if !filepath.IsAbs(home) {
			panic("CONANUP_HOME must be an absolute path: " + home)
		}
		return home
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic("cannot determine home directory: " + err.Error())
	}
	return filepath.Join(homeDir, ".conanup")
}

// ConanBinary returns the conan executable to run.
// CONANUP_CONAN overrides the configured value; empty means "conan" on PATH.
func ConanBinary(cfg *GlobalConfig) string {
	if bin := strings.TrimSpace(os.Getenv("CONANUP_CONAN")); bin != "" {
		return bin
	}
	if cfg != nil && cfg.Conan.Binary != "" {
		return cfg.Conan.Binary
	}
	return "conan"
}

// ConfigPath returns the path of config.json under home
func ConfigPath(home string) string {
	return filepath.Join(home, "config.json")
}

// HistoryPath returns the path of the check history log under home
func HistoryPath(home string) string {
	return filepath.Join(home, "history.jsonl")
}
