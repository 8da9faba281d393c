// ABOUTME: Formats errors for display on stderr
// ABOUTME: Styles the headline and keeps any guidance lines readable
package ui

import "strings"

// FormatError renders err with an error symbol on the first line.
// Multi-line messages keep their remaining lines unstyled.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	headline, rest, found := strings.Cut(err.Error(), "\n")
	out := errorStyle.Render(SymbolError + " " + headline)
	if found {
		out += "\n" + rest
	}
	return out
}
