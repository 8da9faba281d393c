// ABOUTME: Saves and restores the conan package cache to a local archive
// ABOUTME: Wraps `conan cache clean/save/restore`
package conan

import (
	"context"
	"fmt"
	"os"
)

// SaveCache cleans temporary cache files and writes every package to archive
func (c *Client) SaveCache(ctx context.Context, archive string) error {
	if _, err := c.run(ctx, "cache", "clean", "*"); err != nil {
		return fmt.Errorf("failed to clean cache: %w", err)
	}

	_, err := c.run(ctx,
		"cache", "save",
		"--core-conf", "core.gzip:compresslevel=0",
		"--file", archive,
		"*:*",
	)
	if err != nil {
		return fmt.Errorf("failed to save cache: %w", err)
	}
	return nil
}

// RestoreCache loads packages from archive into the cache.
// A missing archive is a cache miss and reported as false without error.
func (c *Client) RestoreCache(ctx context.Context, archive string) (bool, error) {
	if _, err := os.Stat(archive); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat cache archive: %w", err)
	}

	if _, err := c.run(ctx, "cache", "restore", archive); err != nil {
		return false, fmt.Errorf("failed to restore cache: %w", err)
	}
	return true, nil
}
