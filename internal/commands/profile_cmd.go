// ABOUTME: Profile subcommands for inspecting and preparing Conan profiles
// ABOUTME: Implements list, install, detect, and hash operations
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/conanup/conanup/internal/conan"
	"github.com/conanup/conanup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	profileListFormat  string
	profileDetectForce bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and prepare Conan profiles",
	Long: `Profiles are named Conan configurations (settings, options, tool requirements)
stored in the Conan home. These commands read and create them through the conan CLI.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed profiles",
	Example: `  # Human readable listing
  conanup profile list

  # Machine readable listing, same shape as conan's own output
  conanup profile list --format json`,
	Args: cobra.NoArgs,
	RunE: runProfileList,
}

var profileInstallCmd = &cobra.Command{
	Use:   "install <config>",
	Short: "Install profiles and settings with conan config install",
	Long: `Runs 'conan config install <config>' and lists the profiles installed afterwards.

The source can be a directory, a zip archive, a URL or a git repository with a
profiles/ folder. This is how CI runners provision the profiles that
'conanup check' verifies.`,
	Example: `  conanup profile install ./ci/conan-config
  conanup profile install https://github.com/acme/conan-config.git`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileInstall,
}

var profileDetectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Create the default profile if it is missing",
	Long: `Runs 'conan profile detect' when no profile named "default" is installed.

Use --force to run detection even if the default profile exists.`,
	Args: cobra.NoArgs,
	RunE: runProfileDetect,
}

var profileHashCmd = &cobra.Command{
	Use:   "hash <profile>...",
	Short: "Print a digest of the combined host profiles",
	Long: `Runs 'conan profile show --format json' for the given host profiles and prints
the MD5 of the canonical JSON. The digest is stable across key order, so it can
be used in cache keys.`,
	Example: `  conanup profile hash default linux_gcc`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runProfileHash,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileInstallCmd)
	profileCmd.AddCommand(profileDetectCmd)
	profileCmd.AddCommand(profileHashCmd)

	profileListCmd.Flags().StringVar(&profileListFormat, "format", "text", "Output format: text or json")
	profileDetectCmd.Flags().BoolVar(&profileDetectForce, "force", false, "Run detection even if the default profile exists")
}

func runProfileList(cmd *cobra.Command, args []string) error {
	if profileListFormat != "text" && profileListFormat != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", profileListFormat)
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	profiles, err := s.client().InstalledProfiles(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if profileListFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}

	fmt.Fprintln(out, ui.RenderSection("Installed profiles", len(profiles)))
	if len(profiles) == 0 {
		ui.PrintMuted(out, "  No profiles installed. Run 'conanup profile detect' to create one.")
		return nil
	}
	fmt.Fprintln(out, ui.RenderColumns(profiles, ui.TerminalWidth(), s.profile))
	return nil
}

func runProfileInstall(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client := s.client()

	if err := client.InstallConfig(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to install conan configuration: %w", err)
	}

	profiles, err := client.InstalledProfiles(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ui.PrintSuccess(out, "Installed conan configuration from "+args[0])
	fmt.Fprintln(out, ui.RenderSection("Installed profiles", len(profiles)))
	if len(profiles) > 0 {
		fmt.Fprintln(out, ui.RenderColumns(profiles, ui.TerminalWidth(), s.profile))
	}
	return nil
}

func runProfileDetect(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	client := s.client()
	out := cmd.OutOrStdout()

	if profileDetectForce {
		if err := client.DetectDefaultProfile(ctx); err != nil {
			return fmt.Errorf("failed to detect default profile: %w", err)
		}
		ui.PrintSuccess(out, "Detected default profile")
		return nil
	}

	detected, err := client.EnsureDefaultProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure default profile: %w", err)
	}
	if detected {
		ui.PrintSuccess(out, "Detected default profile")
	} else {
		ui.PrintInfo(out, fmt.Sprintf("Profile %q already installed", conan.DefaultProfile))
	}
	return nil
}

func runProfileHash(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	sum, err := s.client().ProfileHash(ctx, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}
