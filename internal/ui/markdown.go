package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderDetails renders todo details as markdown wrapped to width. Plain
// text is returned if rendering fails, and "(no details)" for empty input.
func RenderDetails(details string, width int) string {
	if strings.TrimSpace(details) == "" {
		return C(current.Muted, "(no details)")
	}

	style := "notty"
	if colorEnabled() {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return details
	}
	out, err := r.Render(details)
	if err != nil {
		return details
	}
	return strings.Trim(out, "\n")
}
