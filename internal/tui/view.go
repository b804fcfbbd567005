package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

// reservedRows is the vertical space kept free of the list for the search
// and filter lines, the inline pane, toasts and the outer border.
const reservedRows = 14

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.processing && m.modal == modalNone && len(m.todos) == 0 {
		return m.overlay(m.spinner.View() + " Loading todos...")
	}
	if m.processing {
		return m.overlay(m.spinner.View() + " Working...")
	}

	switch m.modal {
	case modalForm:
		return m.overlay(m.form.View())
	case modalConfirm:
		return m.overlay(m.confirm.View())
	case modalView:
		if m.selected != nil {
			return m.overlay(renderDetail(*m.selected, m.modalWidth()))
		}
	}

	sections := []string{
		m.searchLine(),
		m.filterLine(),
		"",
		m.list.View(),
	}
	if pane := m.pane(); pane != "" {
		sections = append(sections, pane)
	}
	if toasts := m.toasts.View(); toasts != "" {
		sections = append(sections, "", toasts)
	}
	return ui.Panel([]string{lipgloss.JoinVertical(lipgloss.Left, sections...)})
}

// header is the list title with live counts per status.
func (m Model) header() string {
	t := ui.Current()
	counts := map[model.Status]int{}
	for _, td := range m.todos {
		counts[td.Status]++
	}
	parts := []string{"Todos"}
	for _, s := range model.Statuses() {
		parts = append(parts, fmt.Sprintf("%s %d", t.StatusGlyph(s), counts[s]))
	}
	parts = append(parts, fmt.Sprintf("Total %d", len(m.todos)))
	return strings.Join(parts, "   ")
}

func (m Model) searchLine() string {
	if m.searching || m.search.Value() != "" {
		return m.search.View()
	}
	return ui.Current().Muted.Render("/ Search todos...")
}

func (m Model) filterLine() string {
	t := ui.Current()
	opts := append([]model.Status{model.StatusAll}, model.Statuses()...)
	parts := make([]string, 0, len(opts))
	for _, s := range opts {
		label := " " + s.Label() + " "
		if s == m.filter || (s == model.StatusAll && m.filter == "") {
			parts = append(parts, t.Selected.Render(label))
		} else {
			parts = append(parts, t.Muted.Render(label))
		}
	}
	return "Filter by status: " + strings.Join(parts, " ")
}

// pane renders the open action menu or the open inline details.
func (m Model) pane() string {
	t := ui.Current()
	if id, ok := m.menu.ID(); ok {
		if td, found := m.find(id); found {
			return t.Accent.Render(ui.Truncate(td.Title, 40)+": ") + "v view · e edit · d delete · esc close"
		}
	}
	if id, ok := m.details.ID(); ok {
		if td, found := m.find(id); found {
			return lipgloss.JoinVertical(lipgloss.Left,
				t.Title.Render(td.Title)+"  "+ui.Badge(td.Status),
				ui.RenderDetails(td.Details, max(m.width-8, 20)),
			)
		}
	}
	return ""
}

func (m Model) find(id int) (model.Todo, bool) {
	for _, t := range m.todos {
		if t.ID == id {
			return t, true
		}
	}
	return model.Todo{}, false
}

func (m Model) overlay(content string) string {
	t := ui.Current()
	box := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(1, 2).
		Render(content)
	if toasts := m.toasts.View(); toasts != "" {
		box = lipgloss.JoinVertical(lipgloss.Left, box, "", toasts)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func renderDetail(td model.Todo, width int) string {
	t := ui.Current()
	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(td.Title),
		t.Muted.Render(fmt.Sprintf("#%d", td.ID))+"  "+ui.Badge(td.Status),
		"",
		ui.RenderDetails(td.Details, width),
		"",
		t.Muted.Render("s cycle status · e edit · d delete · esc close"),
	)
}
