// ABOUTME: Cache commands computing cache keys and moving the Conan cache to archives
// ABOUTME: Keys have the form conan-v<version>-<key>
package commands

import (
	"fmt"
	"time"

	"github.com/conanup/conanup/internal/conan"
	"github.com/conanup/conanup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	cacheKeyProfiles        []string
	cacheKeyAppendTimestamp bool
)

// now is replaced in tests
var now = time.Now

var cacheKeyCmd = &cobra.Command{
	Use:   "cache-key [key]",
	Short: "Print the cache key for the installed Conan version",
	Long: `Prints conan-v<major>.<minor>.<patch>-<key>.

The key is taken from the argument when given, otherwise from the hash of the
host profiles passed with --profile. Without either, the "default" host
profile is hashed.`,
	Example: `  # Explicit key
  conanup cache-key linux-x86_64

  # Key derived from host profiles
  conanup cache-key --profile default --profile linux_gcc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCacheKey,
}

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Save or restore the Conan package cache",
}

var cacheSaveCmd = &cobra.Command{
	Use:   "save <archive>",
	Short: "Clean the cache and save every package to an archive",
	Long: `Runs 'conan cache clean' and then 'conan cache save' into the archive.

--timeout bounds each of the two conan commands separately. Saving a large
cache can take minutes, so raise it accordingly.`,
	Example: `  conanup --timeout 10m cache save /tmp/conan-cache.tgz`,
	Args:    cobra.ExactArgs(1),
	RunE:    runCacheSave,
}

var cacheRestoreCmd = &cobra.Command{
	Use:   "restore <archive>",
	Short: "Restore packages from an archive; a missing archive is a cache miss",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheRestore,
}

func init() {
	rootCmd.AddCommand(cacheKeyCmd)
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheSaveCmd)
	cacheCmd.AddCommand(cacheRestoreCmd)

	cacheKeyCmd.Flags().StringArrayVar(&cacheKeyProfiles, "profile", nil, "Host profile to hash into the key (repeatable)")
	cacheKeyCmd.Flags().BoolVar(&cacheKeyAppendTimestamp, "append-timestamp", false, "Append the current UTC time to the key")
}

func runCacheKey(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	client := s.client()

	version, err := client.Version(ctx)
	if err != nil {
		return err
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		profiles := cacheKeyProfiles
		if len(profiles) == 0 {
			profiles = []string{conan.DefaultProfile}
		}
		key, err = client.ProfileHash(ctx, profiles)
		if err != nil {
			return err
		}
	}

	if cacheKeyAppendTimestamp {
		key += "-" + now().UTC().Format("20060102150405")
	}

	fmt.Fprintln(cmd.OutOrStdout(), conan.CacheKey(version, key))
	return nil
}

func runCacheSave(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if err := s.client().SaveCache(ctx, args[0]); err != nil {
		return err
	}

	ui.PrintSuccess(cmd.OutOrStdout(), "Saved cache to "+args[0])
	return nil
}

func runCacheRestore(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	hit, err := s.client().RestoreCache(ctx, args[0])
	if err != nil {
		return err
	}

	if hit {
		ui.PrintSuccess(cmd.OutOrStdout(), "Restored cache from "+args[0])
	} else {
		ui.PrintInfo(cmd.OutOrStdout(), "No cache archive at "+args[0])
	}
	return nil
}
