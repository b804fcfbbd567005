package tui

// Selection holds at most one active todo id. Opening one row closes any
// other, so per-row booleans never disagree.
type Selection struct {
	id     int
	active bool
}

// Toggle opens id, or closes it when it is already open.
func (s *Selection) Toggle(id int) {
	if s.active && s.id == id {
		s.Clear()
		return
	}
	s.id, s.active = id, true
}

func (s *Selection) Clear() { s.id, s.active = 0, false }

// Is reports whether id is the active selection.
func (s *Selection) Is(id int) bool { return s.active && s.id == id }

// ID returns the active id and whether one is set.
func (s *Selection) ID() (int, bool) { return s.id, s.active }
