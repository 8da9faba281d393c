// ABOUTME: History command listing recorded check outcomes
// ABOUTME: Reads the JSONL log written by `conanup check --record`
package commands

import (
	"fmt"
	"time"

	"github.com/conanup/conanup/internal/check"
	"github.com/conanup/conanup/internal/config"
	"github.com/conanup/conanup/internal/history"
	"github.com/conanup/conanup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	historyLimit   int
	historyProfile string
	historyOutcome string
	historySince   time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded profile checks",
	Example: `  # Last 10 checks
  conanup history --limit 10

  # Failures for one profile during the last day
  conanup history --profile my-profile --outcome verification-failure --since 24h`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of entries (0 for all)")
	historyCmd.Flags().StringVar(&historyProfile, "profile", "", "Only show checks of this profile")
	historyCmd.Flags().StringVar(&historyOutcome, "outcome", "", "Only show this outcome (found, verification-failure, ...)")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "Only show checks newer than this duration")
}

func runHistory(cmd *cobra.Command, args []string) error {
	log, err := history.Open(config.HistoryPath(conanupHome))
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}

	filters := history.Filters{
		Profile: historyProfile,
		Outcome: historyOutcome,
		Limit:   historyLimit,
	}
	if historySince > 0 {
		filters.Since = now().Add(-historySince)
	}

	entries, err := log.Query(filters)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		ui.PrintMuted(out, fmt.Sprintf("No recorded checks in %s. Use 'conanup check --record' to record one.", log.Path()))
		return nil
	}

	fmt.Fprintln(out, ui.RenderSection("Recorded checks", len(entries)))
	for _, e := range entries {
		status := ui.Error(ui.SymbolError)
		if e.Outcome == string(check.KindFound) {
			status = ui.Success(ui.SymbolSuccess)
		}
		fmt.Fprintf(out, "  %s %s  %-20s %s\n",
			status,
			ui.Muted(e.Timestamp.Local().Format(time.DateTime)),
			e.Profile,
			e.Outcome)
	}
	return nil
}
