// ABOUTME: Package documentation for the ui package
// ABOUTME: Describes the purpose and usage patterns for terminal styling

// Package ui provides consistent terminal styling and output formatting
// for conanup CLI commands using lipgloss.
//
// Usage:
//   - Use Print* functions for standalone messages: ui.PrintSuccess(w, "Done!")
//   - Use inline helpers for composing output: fmt.Fprintln(w, ui.Bold("Title:"), ui.Muted(detail))
//   - Use FormatError for anything written to stderr before exiting
//   - Respects NO_COLOR and drops colors when stdout is not a terminal
package ui
