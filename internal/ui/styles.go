// ABOUTME: Defines color palette, symbols, and color profile initialization
// ABOUTME: Colors are dropped for NO_COLOR, TERM=dumb, and output that is not a terminal
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Semantic color definitions
var (
	ColorSuccess = lipgloss.Color("#22c55e") // Green
	ColorError   = lipgloss.Color("#ef4444") // Red
	ColorWarning = lipgloss.Color("#eab308") // Yellow
	ColorInfo    = lipgloss.Color("#06b6d4") // Cyan
	ColorMuted   = lipgloss.Color("#6b7280") // Gray
	ColorAccent  = lipgloss.Color("#8b5cf6") // Purple
)

// Symbol definitions
var (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolBullet  = "•"
)

func init() {
	initColorProfile()
}

func initColorProfile() {
	if !colorEnabled(os.Getenv, term.IsTerminal(int(os.Stdout.Fd()))) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// colorEnabled respects the NO_COLOR standard (https://no-color.org/).
// CI logs are usually not a TTY, so plain output is the default there.
func colorEnabled(getenv func(string) string, isTTY bool) bool {
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	if getenv("CLICOLOR_FORCE") != "" {
		return true
	}
	return isTTY
}
