// ABOUTME: Check command verifying that a Conan profile is installed
// ABOUTME: Exits 0 when found and 1 for a missing profile or any tool failure
package commands

import (
	"fmt"
	"log/slog"

	"github.com/conanup/conanup/internal/check"
	"github.com/conanup/conanup/internal/config"
	"github.com/conanup/conanup/internal/history"
	"github.com/conanup/conanup/internal/ui"
	"github.com/spf13/cobra"
)

var checkRecord bool

var checkCmd = &cobra.Command{
	Use:   "check [profile]",
	Short: "Verify that a Conan profile is installed",
	Long: `Runs 'conan profile list --format json' and verifies the profile is listed.

The profile defaults to check.profile from the config (my-profile).

Failures are reported by kind so a broken tool is not mistaken for a
missing profile:
  environment error      conan could not be found or started
  execution error        conan exited with a non-zero status
  parse error            conan printed something that is not a profile list
  verification failure   the listing is valid but the profile is absent
  timeout                conan did not finish within --timeout`,
	Example: `  # Check the configured profile
  conanup check

  # Check a specific profile and record the outcome
  conanup check linux_gcc --record`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkRecord, "record", false, "Append the outcome to the check history")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	profile := s.profile
	if len(args) == 1 {
		profile = args[0]
	}

	checker := check.New(s.client(), check.Options{Profile: profile, Timeout: s.timeout})
	result, checkErr := checker.Check(cmd.Context())

	if checkRecord {
		recordCheck(cmd, s.binary, checker.Profile(), checkErr)
	}

	if checkErr != nil {
		return checkErr
	}

	ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Profile %q is installed", result.Profile))
	return nil
}

// recordCheck appends the outcome to the history log. Failing to record
// only warns: the check result is what the exit code reports.
func recordCheck(cmd *cobra.Command, tool, profile string, checkErr error) {
	entry := &history.Entry{
		Tool:    tool,
		Profile: profile,
		Outcome: string(check.Classify(checkErr)),
	}
	if checkErr != nil {
		entry.Message = checkErr.Error()
	}

	log, err := history.Open(config.HistoryPath(conanupHome))
	if err == nil {
		err = log.Append(entry)
	}
	if err != nil {
		slog.Debug("failed to record check", "path", config.HistoryPath(conanupHome), "error", err)
		ui.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("Could not record check: %v", err))
	}
}
