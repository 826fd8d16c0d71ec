package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/quotecraft/pkg/background"
	"github.com/matzehuels/quotecraft/pkg/errors"
)

// backgroundsCommand lists background presets.
func (c *CLI) backgroundsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "backgrounds [category]",
		Aliases: []string{"bg"},
		Short:   "List background presets",
		Long: `List background presets grouped by category.

Built-in solids, gradients and patterns are always available. Photos are
picked up from the backgrounds directory, and custom presets come from the
[[backgrounds]] tables of the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			photos, err := background.Discover(cfg.Paths.Backgrounds)
			if err != nil {
				return err
			}
			catalog := background.NewCatalog(photos, cfg.Backgrounds)

			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			presets := catalog.Presets(category)
			if len(presets) == 0 {
				return errors.New(errors.ErrCodeBackgroundNotFound, "no backgrounds in category %q (have: %v)", category, catalog.Categories())
			}

			c.ui().block(backgroundTable(presets))
			c.ui().detail("%d presets · photos from %s", len(presets), cfg.Paths.Backgrounds)
			c.ui().blank()
			c.ui().nextStep("Use one", "quotecraft create -b "+presets[0].Name)
			return nil
		},
	}
}

func backgroundTable(presets []background.Config) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{p.Category, p.Name, describeBackground(p)})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Category", "Name", "Details").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorGray)
			case col == 1:
				return StyleHighlight
			}
			return StyleDim
		}).
		String()
}

// describeBackground summarizes what a preset draws.
func describeBackground(p background.Config) string {
	switch p.Kind {
	case background.KindSolid:
		return p.Color
	case background.KindGradient:
		return p.From + " " + iconArrow + " " + p.To
	case background.KindPattern:
		if p.Path != "" {
			return "tile " + filepath.Base(p.Path)
		}
		return fmt.Sprintf("%s on %s", p.Motif, p.Color)
	case background.KindPhoto:
		s := filepath.Base(p.Path)
		if p.Blur > 0 {
			s += fmt.Sprintf(", blur %.1f", p.Blur)
		}
		return s
	}
	return string(p.Kind)
}
