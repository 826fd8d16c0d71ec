package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/quotecraft/pkg/cache"
	"github.com/matzehuels/quotecraft/pkg/config"
)

// cacheCommand groups the font index cache subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or empty the font index cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Delete cached font indexes",
			Args:  cobra.NoArgs,
			RunE:  func(*cobra.Command, []string) error { return c.clearCache() },
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show where the cache lives",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				dir, err := config.CacheDir()
				if err != nil {
					return fmt.Errorf("locate cache: %w", err)
				}
				fmt.Fprintln(c.Out, dir)
				return nil
			},
		},
	)
	return cmd
}

func (c *CLI) clearCache() error {
	dir, err := config.CacheDir()
	if err != nil {
		return fmt.Errorf("locate cache: %w", err)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	n, err := fc.Clear()
	if err != nil {
		return err
	}

	ui := c.ui()
	if n == 0 {
		ui.info("Cache is empty")
		return nil
	}
	ui.success("Cleared %d cached entries", n)
	ui.keyValue("Directory", dir)
	return nil
}
