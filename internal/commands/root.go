// ABOUTME: Root command and CLI initialization for conanup
// ABOUTME: Sets up cobra command structure, global flags and settings resolution
package commands

import (
	"context"
	"time"

	"github.com/conanup/conanup/internal/config"
	"github.com/conanup/conanup/internal/conan"
	"github.com/conanup/conanup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	conanBinary string
	conanupHome string
	timeoutFlag time.Duration
	verbose     bool
)

// newExecutor builds the process runner for the conan binary; tests replace it
var newExecutor = func(binary string) conan.CommandExecutor {
	return conan.NewDefaultExecutor(binary)
}

var rootCmd = &cobra.Command{
	Use:   "conanup",
	Short: "Verify and prepare Conan profiles",
	Long: `conanup checks and prepares Conan installations, typically on CI runners.

It provides:
  - Verification that a Conan profile is installed (check)
  - Default profile detection and profile hashing (profile)
  - Cache keys and local cache archives (cache-key, cache)
  - A record of past checks (history)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetupLogging(cmd.ErrOrStderr(), verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which cancels running conan processes
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version for the root command
func SetVersion(version string) {
	rootCmd.Version = version
}

func init() {
	ui.SetupHelpTemplate(rootCmd)

	// Global flags - respect CONANUP_HOME if set
	rootCmd.PersistentFlags().StringVar(&conanupHome, "conanup-home", config.MustConanupHome(), "conanup home directory")
	rootCmd.PersistentFlags().StringVar(&conanBinary, "conan", "", "conan executable (default from CONANUP_CONAN, config, then PATH)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "timeout for each conan command (default from config, 30s)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every conan invocation to stderr")
}

// settings are the effective values after applying flags over env and config
type settings struct {
	binary  string
	timeout time.Duration
	profile string
}

// loadSettings resolves settings with precedence flag > env > config > default
func loadSettings() (*settings, error) {
	cfg, err := config.Load(conanupHome)
	if err != nil {
		return nil, err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	s := &settings{
		binary:  config.ConanBinary(cfg),
		timeout: timeout,
		profile: cfg.Check.Profile,
	}
	if conanBinary != "" {
		s.binary = conanBinary
	}
	if timeoutFlag > 0 {
		s.timeout = timeoutFlag
	}
	if s.timeout <= 0 {
		s.timeout = 30 * time.Second
	}
	return s, nil
}

// client returns a conan client that bounds each conan command by the timeout
func (s *settings) client() *conan.Client {
	return conan.NewClient(newExecutor(s.binary), s.binary).WithTimeout(s.timeout)
}
