package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/remotetodo/internal/model"
)

func TestToastController_Lifecycle(t *testing.T) {
	c := NewToastController()
	assert.False(t, c.HasToasts())
	assert.Empty(t, c.View())

	c.Success("one")
	c.Error("two")
	assert.Equal(t, []string{"one", "two"}, c.Texts())
	assert.Contains(t, c.View(), "Error: two")

	c.Tick(defaultToastTTL - time.Millisecond)
	assert.True(t, c.HasToasts())
	c.Tick(time.Millisecond)
	assert.False(t, c.HasToasts())
}

func TestToastController_EvictsOldest(t *testing.T) {
	c := NewToastController()
	for _, s := range []string{"a", "b", "c", "d"} {
		c.Success(s)
	}
	assert.Equal(t, []string{"b", "c", "d"}, c.Texts())

	c.Dismiss()
	assert.Equal(t, []string{"b", "c"}, c.Texts())
}

func TestSelection_Toggle(t *testing.T) {
	var s Selection
	_, ok := s.ID()
	assert.False(t, ok)

	s.Toggle(3)
	assert.True(t, s.Is(3))

	s.Toggle(4)
	assert.True(t, s.Is(4))
	assert.False(t, s.Is(3), "only one row open at a time")

	s.Toggle(4)
	_, ok = s.ID()
	assert.False(t, ok)

	s.Toggle(5)
	s.Clear()
	assert.False(t, s.Is(5))
}

func TestConfirmModal_Keys(t *testing.T) {
	tests := []struct {
		key       tea.KeyMsg
		confirmed bool
		cancelled bool
	}{
		{runes("y"), true, false},
		{runes("Y"), true, false},
		{enter, true, false},
		{runes("n"), false, true},
		{esc, false, true},
		{runes("x"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			m, _ := NewConfirmModal("Delete?").Update(tt.key)
			assert.Equal(t, tt.confirmed, m.Confirmed())
			assert.Equal(t, tt.cancelled, m.Cancelled())
		})
	}
}

func TestConfirmModal_DecisionIsFinal(t *testing.T) {
	m, _ := NewConfirmModal("Delete?").Update(runes("y"))
	m, _ = m.Update(runes("n"))
	assert.True(t, m.Confirmed())
	assert.False(t, m.Cancelled())
}

func TestFormModal_Fields(t *testing.T) {
	f := NewEditForm(model.Todo{ID: 9, Title: "  Buy milk ", Details: "2%", Status: model.StatusInProgress})
	assert.True(t, f.Editing())
	assert.Equal(t, 9, f.EditID())
	assert.Equal(t, model.Fields{Title: "Buy milk", Details: "2%", Status: model.StatusInProgress}, f.Fields())

	c := NewCreateForm()
	assert.False(t, c.Editing())
	assert.Equal(t, model.StatusNotStarted, c.Fields().Status)

	c, _ = c.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, c.Submitted())
	assert.Equal(t, "Title is required", c.err)
}

func TestFormModal_EnterInDetailsInsertsNewline(t *testing.T) {
	f := NewCreateForm()
	f, _ = f.Update(runes("x"))
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f, _ = f.Update(runes("line1"))
	f, _ = f.Update(enter)
	f, _ = f.Update(runes("line2"))

	assert.False(t, f.Submitted())
	assert.Equal(t, "line1\nline2", f.Fields().Details)
}
