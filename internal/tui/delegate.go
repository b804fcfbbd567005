package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

// listItem adapts model.Todo to bubbles/list.Item
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return i.todo.Details }
func (i listItem) FilterValue() string { return i.todo.Title }

func toItems(todos []model.Todo) []list.Item {
	out := make([]list.Item, 0, len(todos))
	for _, t := range todos {
		out = append(out, listItem{todo: t})
	}
	return out
}

// itemDelegate renders one line per todo. Rows with an open menu or open
// details get a marker; the content itself is drawn below the list.
type itemDelegate struct {
	menu    *Selection
	details *Selection
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	glyph := t.StatusStyle(it.todo.Status).Render(t.StatusGlyph(it.todo.Status))
	title := ui.Truncate(it.todo.Title, max(m.Width()-12, 10))
	if it.todo.Status == model.StatusCompleted {
		title = t.Muted.Strikethrough(true).Render(title)
	}

	marker := " "
	switch {
	case d.menu.Is(it.todo.ID):
		marker = t.Accent.Render("…")
	case d.details.Is(it.todo.ID):
		marker = t.Accent.Render("▾")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, glyph, title, marker)
}
