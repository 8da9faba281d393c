// ABOUTME: TestEnv provides isolated test environments for acceptance tests
// ABOUTME: Creates a temp conanup home and a fake conan script, then runs the CLI binary against them
package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// TestEnv represents an isolated test environment
type TestEnv struct {
	TempDir     string // Root temp directory
	ConanupDir  string // Fake ~/.conanup
	ConfigFile  string // Fake ~/.conanup/config.json
	HistoryFile string // Fake ~/.conanup/history.jsonl
	ConanPath   string // Fake conan executable
	Binary      string // Path to conanup binary
}

// Result holds the captured output of one CLI run
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// NewTestEnv creates a new isolated test environment.
// The fake conan lists "default" and "my-profile" until replaced.
func NewTestEnv(binary string) *TestEnv {
	tempDir := GinkgoT().TempDir()

	env := &TestEnv{
		TempDir:     tempDir,
		ConanupDir:  filepath.Join(tempDir, ".conanup"),
		ConfigFile:  filepath.Join(tempDir, ".conanup", "config.json"),
		HistoryFile: filepath.Join(tempDir, ".conanup", "history.jsonl"),
		ConanPath:   filepath.Join(tempDir, "bin", "conan"),
		Binary:      binary,
	}

	Expect(os.MkdirAll(env.ConanupDir, 0755)).To(Succeed())
	Expect(os.MkdirAll(filepath.Dir(env.ConanPath), 0755)).To(Succeed())

	env.FakeProfiles("default", "my-profile")

	return env
}

// FakeConan replaces the fake conan executable with a shell script body.
// The script sees the joined arguments in "$*".
func (e *TestEnv) FakeConan(body string) {
	script := "#!/bin/sh\n" + body + "\n"
	Expect(os.WriteFile(e.ConanPath, []byte(script), 0755)).To(Succeed())
}

// FakeProfiles makes the fake conan list the given profiles and report version 2.8.0
func (e *TestEnv) FakeProfiles(names ...string) {
	if names == nil {
		names = []string{}
	}
	listing, err := json.Marshal(names)
	Expect(err).NotTo(HaveOccurred())

	e.FakeConan(fmt.Sprintf(`case "$*" in
  "profile list --format json") printf '%%s\n' '%s' ;;
  "--version") echo "Conan version 2.8.0" ;;
  *) echo "unexpected arguments: $*" >&2; exit 2 ;;
esac`, listing))
}

// Run executes the CLI with the given arguments
func (e *TestEnv) Run(args ...string) *Result {
	return e.RunWithEnv(nil, args...)
}

// RunWithEnv executes the CLI with extra KEY=VALUE environment entries
func (e *TestEnv) RunWithEnv(extra []string, args ...string) *Result {
	cmd := exec.Command(e.Binary, args...)
	cmd.Env = append(os.Environ(),
		"CONANUP_HOME="+e.ConanupDir,
		"CONANUP_CONAN="+e.ConanPath,
		"NO_COLOR=1",
	)
	cmd.Env = append(cmd.Env, extra...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// HistoryLines returns the raw lines of the check history log
func (e *TestEnv) HistoryLines() []string {
	data, err := os.ReadFile(e.HistoryFile)
	if os.IsNotExist(err) {
		return nil
	}
	Expect(err).NotTo(HaveOccurred())
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// BuildBinary builds the conanup binary and returns its path
func BuildBinary() string {
	binPath := filepath.Join(GinkgoT().TempDir(), "conanup")

	// Find the project root by looking for go.mod
	projectRoot, err := findProjectRoot()
	Expect(err).NotTo(HaveOccurred())

	sourcePath := filepath.Join(projectRoot, "cmd", "conanup")

	cmd := exec.Command("go", "build", "-o", binPath, sourcePath)
	cmd.Dir = projectRoot
	Expect(cmd.Run()).To(Succeed())
	return binPath
}

// findProjectRoot walks up the directory tree to find go.mod
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}
		dir = parent
	}
}

// WriteJSON writes data as JSON to the specified path
func WriteJSON(path string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	Expect(err).NotTo(HaveOccurred())
	Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
	Expect(os.WriteFile(path, jsonData, 0644)).To(Succeed())
}
