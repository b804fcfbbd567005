package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

const (
	focusTitle = iota
	focusDetails
	focusStatus
	focusCount
)

// FormModal collects title, details and status for create and edit.
type FormModal struct {
	editID  int // 0 when creating
	title   textinput.Model
	details textarea.Model
	status  model.Status
	focus   int
	err     string

	submitted bool
	cancelled bool
}

// NewCreateForm returns an empty form with status "not started".
func NewCreateForm() FormModal {
	return newForm(0, model.NewFields("", "", ""))
}

// NewEditForm returns a form prefilled from t.
func NewEditForm(t model.Todo) FormModal {
	return newForm(t.ID, t.Fields())
}

func newForm(id int, f model.Fields) FormModal {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Title"
	ti.CharLimit = 200
	ti.SetValue(f.Title)
	ti.CursorEnd()
	ti.Focus()

	ta := textarea.New()
	ta.Placeholder = "Details"
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000
	ta.SetHeight(4)
	ta.SetValue(f.Details)
	ta.Blur()

	return FormModal{editID: id, title: ti, details: ta, status: f.Status}
}

// Editing reports whether the form edits an existing todo.
func (m FormModal) Editing() bool { return m.editID != 0 }

// EditID is the id of the todo being edited.
func (m FormModal) EditID() int { return m.editID }

func (m FormModal) Submitted() bool { return m.submitted }

func (m FormModal) Cancelled() bool { return m.cancelled }

// Fields returns the entered triple with the title trimmed.
func (m FormModal) Fields() model.Fields {
	return model.NewFields(strings.TrimSpace(m.title.Value()), m.details.Value(), m.status)
}

// SetWidth sizes the inputs.
func (m *FormModal) SetWidth(w int) {
	w = max(w, 20)
	m.title.Width = w - 4
	m.details.SetWidth(w)
}

// Reset clears the submitted flag after a failed save so the form can be
// submitted again.
func (m *FormModal) Reset() { m.submitted = false }

func (m FormModal) Update(msg tea.Msg) (FormModal, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.cancelled = true
			return m, nil
		case "ctrl+s":
			return m.submit(), nil
		case "tab":
			return m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "enter":
			if m.focus != focusDetails {
				return m.submit(), nil
			}
		}

		if m.focus == focusStatus {
			switch km.String() {
			case "right", "l", " ":
				m.status = m.status.Next()
			case "left", "h":
				m.status = m.status.Next().Next()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDetails:
		m.details, cmd = m.details.Update(msg)
	}
	return m, cmd
}

func (m FormModal) submit() FormModal {
	if strings.TrimSpace(m.title.Value()) == "" {
		m.err = "Title is required"
		return m
	}
	m.err = ""
	m.submitted = true
	return m
}

func (m FormModal) setFocus(i int) (FormModal, tea.Cmd) {
	m.focus = i
	m.title.Blur()
	m.details.Blur()

	var cmd tea.Cmd
	switch i {
	case focusTitle:
		cmd = m.title.Focus()
	case focusDetails:
		cmd = m.details.Focus()
	}
	return m, cmd
}

func (m FormModal) View() string {
	t := ui.Current()

	heading := "Create Todo"
	if m.Editing() {
		heading = "Edit Todo"
	}
	if m.err != "" {
		heading += "  " + t.Error.Render(m.err)
	}

	statuses := make([]string, 0, 3)
	for _, s := range model.Statuses() {
		label := s.Label()
		if s == m.status {
			label = t.Selected.Render(" " + label + " ")
		} else {
			label = t.Muted.Render(" " + label + " ")
		}
		statuses = append(statuses, label)
	}
	statusLabel := "Status:"
	if m.focus == focusStatus {
		statusLabel = t.Accent.Render("Status:")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(heading),
		"",
		m.title.View(),
		"",
		m.details.View(),
		"",
		statusLabel+" "+strings.Join(statuses, " "),
		"",
		t.Muted.Render("tab next field · ←/→ status · enter/ctrl+s save · esc cancel"),
	)
}
