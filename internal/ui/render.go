// ABOUTME: Rendering functions for headers, sections, details and name columns
// ABOUTME: Provides consistent formatting for structured CLI output
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	// HeaderWidth is the fixed width for header boxes
	HeaderWidth = 42

	// defaultWidth is used when the terminal size is unknown
	defaultWidth = 80
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 2).
			Width(HeaderWidth).
			Align(lipgloss.Center)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInfo)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// RenderHeader returns a styled header box with the given title
func RenderHeader(title string) string {
	return headerStyle.Render(title)
}

// RenderSection returns a styled section header with optional count
// Pass -1 for count to omit the count display
func RenderSection(title string, count int) string {
	if count >= 0 {
		return sectionStyle.Render(fmt.Sprintf("%s (%d)", title, count))
	}
	return sectionStyle.Render(title)
}

// RenderDetail returns a label: value pair with consistent formatting
func RenderDetail(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// Indent returns the string with the specified indentation level (2 spaces per level)
func Indent(s string, level int) string {
	return strings.Repeat("  ", level) + s
}

// RenderColumns lays out bulleted names in as many columns as fit in width.
// highlight, when non-empty, is rendered in the success style.
func RenderColumns(names []string, width int, highlight string) string {
	if len(names) == 0 {
		return ""
	}

	cell := 0
	for _, n := range names {
		if w := lipgloss.Width(n); w > cell {
			cell = w
		}
	}
	cell += 4 // indent, bullet and gap

	perRow := width / cell
	if perRow < 1 {
		perRow = 1
	}

	var b strings.Builder
	for i, n := range names {
		col := i % perRow
		if col == 0 {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  ")
		}

		text := n
		if n == highlight {
			text = Success(n)
		}
		b.WriteString(Muted(SymbolBullet) + " " + text)

		if col < perRow-1 && i < len(names)-1 {
			b.WriteString(strings.Repeat(" ", cell-4-lipgloss.Width(n)+2))
		}
	}
	return b.String()
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
