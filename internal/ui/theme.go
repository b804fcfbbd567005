package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// Theme bundles palette, status glyphs and box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name  string
	Plain bool // never styled, whatever the terminal supports

	Title, Muted, Accent, Success, Error, Pending, Selected lipgloss.Style
	Border                                                  lipgloss.Border
	BorderColor                                             lipgloss.TerminalColor

	SymNotStarted, SymInProgress, SymCompleted string
	SymOK, SymFail                             string
}

var current = classic()

func classic() Theme {
	return Theme{
		Name:          "classic",
		Title:         lipgloss.NewStyle().Bold(true),
		Muted:         lipgloss.NewStyle().Faint(true),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:      lipgloss.NewStyle().Bold(true).Reverse(true),
		Border:        lipgloss.NormalBorder(),
		BorderColor:   lipgloss.Color("8"),
		SymNotStarted: "☐", SymInProgress: "◐", SymCompleted: "☑",
		SymOK: "✔", SymFail: "✖",
	}
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:          "neon",
			Title:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Border:        lipgloss.RoundedBorder(),
			BorderColor:   lipgloss.Color("13"),
			SymNotStarted: "◻", SymInProgress: "◧", SymCompleted: "◼",
			SymOK: "✔", SymFail: "✖",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Plain: true,
			Title: plain, Muted: plain, Accent: plain, Success: plain, Error: plain, Pending: plain,
			Selected:      plain.Reverse(true),
			Border:        asciiBorder,
			BorderColor:   lipgloss.NoColor{},
			SymNotStarted: "[ ]", SymInProgress: "[~]", SymCompleted: "[x]",
			SymOK: "ok", SymFail: "error:",
		}
	default:
		current = classic()
	}
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// Expose what renderers need
func Current() Theme { return current }

// StatusGlyph is the checkbox-like symbol for s.
func (t Theme) StatusGlyph(s model.Status) string {
	switch s {
	case model.StatusInProgress:
		return t.SymInProgress
	case model.StatusCompleted:
		return t.SymCompleted
	}
	return t.SymNotStarted
}

// StatusStyle colors a status: muted, pending, success.
func (t Theme) StatusStyle(s model.Status) lipgloss.Style {
	switch s {
	case model.StatusInProgress:
		return t.Pending
	case model.StatusCompleted:
		return t.Success
	}
	return t.Muted
}
