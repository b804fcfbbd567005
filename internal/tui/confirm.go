package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/remotetodo/internal/ui"
)

// ConfirmModal is a simple yes/no confirmation dialog.
type ConfirmModal struct {
	message   string
	confirmed bool
	cancelled bool
}

func NewConfirmModal(message string) ConfirmModal {
	return ConfirmModal{message: message}
}

// Update handles input for the confirmation modal.
func (m ConfirmModal) Update(msg tea.Msg) (ConfirmModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.confirmed || m.cancelled {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y", "enter":
		m.confirmed = true
	case "n", "N", "esc":
		m.cancelled = true
	}
	return m, nil
}

func (m ConfirmModal) View() string {
	t := ui.Current()
	return t.Error.Render(m.message) + "\n" + t.Title.Render("Continue? (y/n)")
}

func (m ConfirmModal) Confirmed() bool { return m.confirmed }

func (m ConfirmModal) Cancelled() bool { return m.cancelled }
