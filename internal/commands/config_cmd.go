// ABOUTME: Config subcommands for viewing and changing ~/.conanup/config.json
// ABOUTME: Implements show and set operations
package commands

import (
	"fmt"
	"strings"

	"github.com/conanup/conanup/internal/config"
	"github.com/conanup/conanup/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change conanup settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a stored setting",
	Long: `Change a stored setting. Valid keys:

  ` + strings.Join(config.Keys(), "\n  "),
	Example: `  conanup config set check.profile linux_gcc
  conanup config set conan.timeout 1m`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(conanupHome)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.RenderSection(config.ConfigPath(conanupHome), -1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("conan.binary", cfg.Conan.Binary), 1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("conan.timeout", cfg.Conan.Timeout), 1))
	fmt.Fprintln(out, ui.Indent(ui.RenderDetail("check.profile", cfg.Check.Profile), 1))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(conanupHome)
	if err != nil {
		return err
	}

	if err := cfg.Set(args[0], args[1]); err != nil {
		return err
	}

	if err := config.Save(conanupHome, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	ui.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Set %s to %s", args[0], args[1]))
	return nil
}
