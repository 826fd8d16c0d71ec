package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/quotecraft/pkg/fonts"
)

// fontsCommand lists indexed fonts.
func (c *CLI) fontsCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "fonts [query]",
		Short: "List available fonts",
		Long: `List fonts found in the fonts directory and the system font directories.
Any name shown can be passed to "create --font". An optional query filters
by substring.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			idx, cached, err := c.fontIndex(ctx, cfg, noCache)
			if err != nil {
				return err
			}

			names := idx.Names()
			if len(args) == 1 {
				names = idx.Search(args[0])
			}
			if len(names) == 0 {
				c.ui().warn("No fonts found")
				c.ui().detail("Built-in: %s", fonts.DefaultName)
				return nil
			}

			c.ui().block(fontTable(idx, names))
			c.ui().indexStats(len(names), cached)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "rescan instead of using the cached index")
	return cmd
}

func fontTable(idx fonts.Index, names []string) string {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n, idx[n]})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleHighlight
			}
			return StyleDim
		}).
		String()
}
