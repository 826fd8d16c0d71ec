package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 palette shared by every command.
var (
	colorTeal  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorAmber = lipgloss.Color("220")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorTeal)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)

	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)
	styleSpinner = lipgloss.NewStyle().Foreground(colorTeal)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// mark is the leading glyph of a status line.
type mark struct {
	glyph string
	style lipgloss.Style
}

var (
	markOK   = mark{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	markWarn = mark{"!", lipgloss.NewStyle().Foreground(colorAmber)}
	markInfo = mark{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

const iconArrow = "→"

// printer writes styled status lines for a command. It writes to the
// command's output so tests can capture what a user would see.
type printer struct {
	w io.Writer
}

func (c *CLI) ui() printer { return printer{w: c.Out} }

func (p printer) status(m mark, msg string) {
	fmt.Fprintln(p.w, m.style.Render(m.glyph)+" "+msg)
}

func (p printer) success(format string, args ...any) {
	p.status(markOK, fmt.Sprintf(format, args...))
}

func (p printer) warn(format string, args ...any) {
	p.status(markWarn, styleWarning.Render(fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.status(markInfo, fmt.Sprintf(format, args...))
}

// detail prints an indented, muted line under the previous status line.
func (p printer) detail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (p printer) file(path string) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func (p printer) keyValue(key, value string) {
	fmt.Fprintln(p.w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// indexStats reports how many fonts were found and whether the index was
// read from the cache or rebuilt by scanning.
func (p printer) indexStats(count int, cached bool) {
	source := lipgloss.NewStyle().Foreground(colorGray).Render("scanned")
	if cached {
		source = lipgloss.NewStyle().Foreground(colorGreen).Render("cached")
	}
	p.detail("%d fonts · %s", count, source)
}

func (p printer) nextStep(description, cmd string) {
	fmt.Fprintln(p.w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func (p printer) block(s string) { fmt.Fprintln(p.w, s) }

func (p printer) blank() { fmt.Fprintln(p.w) }
