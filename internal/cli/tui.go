package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/quotecraft/pkg/background"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// BackgroundPickerModel - Interactive background selection
// =============================================================================

// BackgroundPickerModel is the bubbletea model for choosing a background:
// first a category, then a preset inside it.
type BackgroundPickerModel struct {
	Categories []string
	Presets    []background.Config // presets of Category, once chosen
	Category   string
	Cursor     int
	Offset     int
	Height     int
	Selected   *background.Config

	catalog *background.Catalog
}

// NewBackgroundPickerModel creates a picker over the catalog's presets.
func NewBackgroundPickerModel(c *background.Catalog) BackgroundPickerModel {
	return BackgroundPickerModel{
		Categories: c.Categories(),
		Height:     15,
		catalog:    c,
	}
}

func (m BackgroundPickerModel) Init() tea.Cmd {
	return nil
}

func (m BackgroundPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc", "backspace", "left", "h":
			if m.Category == "" {
				if msg.String() == "esc" {
					return m, tea.Quit
				}
				return m, nil
			}
			// Back to the category list, cursor on the category we left.
			for i, cat := range m.Categories {
				if cat == m.Category {
					m.Cursor = i
				}
			}
			m.Category, m.Presets, m.Offset = "", nil, 0
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.len()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", "right", "l":
			if m.len() == 0 {
				return m, nil
			}
			if m.Category == "" {
				m.Category = m.Categories[m.Cursor]
				m.Presets = m.catalog.Presets(m.Category)
				m.Cursor, m.Offset = 0, 0
				return m, nil
			}
			p := m.Presets[m.Cursor]
			m.Selected = &p
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m BackgroundPickerModel) len() int {
	if m.Category == "" {
		return len(m.Categories)
	}
	return len(m.Presets)
}

func (m BackgroundPickerModel) View() string {
	var b strings.Builder

	title := "Choose Background"
	if m.Category != "" {
		title += " › " + m.Category
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  ← back  q quit"))
	b.WriteString("\n\n")

	if m.Category == "" {
		for i, cat := range m.Categories {
			cursor := "  "
			if i == m.Cursor {
				cursor = "▸ "
			}
			line := fmt.Sprintf("%s%-12s %s", cursor, cat,
				listDimStyle.Render(fmt.Sprintf("%d presets", len(m.catalog.Presets(cat)))))
			if i == m.Cursor {
				b.WriteString(listSelectedStyle.Render(line))
			} else {
				b.WriteString(listNormalStyle.Render(line))
			}
			b.WriteString("\n")
		}
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Presets))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Presets[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, p.Name, string(p.Kind), describeBackground(p)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Kind", "Details").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 2 || col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Presets))))

	return b.String()
}
