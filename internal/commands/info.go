// ABOUTME: Info command summarizing the conan installation conanup will use
// ABOUTME: Shows binary, version, timeout, the checked profile and optionally the latest release
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conanup/conanup/internal/config"
	"github.com/conanup/conanup/internal/conan"
	"github.com/conanup/conanup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	infoLatest bool
	infoPip    string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the conan installation and effective settings",
	Long: `Shows the conan binary, its version and the settings conanup resolves.

With --latest the newest conan release is looked up through
'pip index versions conan' and compared with the installed version.`,
	Example: `  conanup info --latest`,
	Args:    cobra.NoArgs,
	RunE:    runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoLatest, "latest", false, "Look up the latest conan release with pip")
	infoCmd.Flags().StringVar(&infoPip, "pip", "pip", "pip executable used by --latest")
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.RenderHeader("conanup"))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Binary", s.binary), 1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Timeout", s.timeout.String()), 1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Checked profile", ui.Bold(s.profile)), 1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Config", config.ConfigPath(conanupHome)), 1))

	version, err := s.client().Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Conan version", version.String()), 1))

	if !infoLatest {
		return nil
	}

	// The lookup is advisory, so a missing or failing pip only warns
	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	latest, err := conan.LatestRelease(lookupCtx, newExecutor(infoPip))
	if err != nil {
		slog.Debug("latest release lookup failed", "pip", infoPip, "error", err)
		ui.PrintWarning(cmd.ErrOrStderr(), "Could not look up the latest conan release with "+infoPip)
		return nil
	}
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("Latest release", latest.String()), 1))

	fmt.Fprintln(out)
	if version.LessThan(latest) {
		ui.PrintInfo(out, fmt.Sprintf("conan %s is available (installed %s)", latest, version))
	} else {
		ui.PrintSuccess(out, "conan is up to date")
	}
	return nil
}
