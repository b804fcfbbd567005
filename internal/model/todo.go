package model

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// Status is the lifecycle state of a todo as the service stores it.
// StatusAll is a filter value only and never comes back from the service.
type Status string

const (
	StatusNotStarted Status = "not started"
	StatusInProgress Status = "in progress"
	StatusCompleted  Status = "completed"

	StatusAll Status = "all"
)

var persisted = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// Statuses returns the persisted statuses in display order.
func Statuses() []Status {
	out := make([]Status, len(persisted))
	copy(out, persisted)
	return out
}

// Valid reports whether s is a status the service persists.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// IsFilter reports whether s narrows a listing. The empty status and
// StatusAll both mean "every status".
func (s Status) IsFilter() bool {
	return s.Valid()
}

// Next cycles through the persisted statuses.
func (s Status) Next() Status {
	for i, st := range persisted {
		if st == s {
			return persisted[(i+1)%len(persisted)]
		}
	}
	return StatusNotStarted
}

// NextFilter cycles all -> not started -> in progress -> completed -> all.
func (s Status) NextFilter() Status {
	switch s {
	case "", StatusAll:
		return StatusNotStarted
	case StatusCompleted:
		return StatusAll
	}
	return s.Next()
}

// Label is the human form used in pickers ("Not started").
func (s Status) Label() string {
	if s == "" || s == StatusAll {
		return "All"
	}
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}

// ParseStatus accepts the wire form and the dashed form used on the command
// line ("in-progress"), case-insensitively.
func ParseStatus(s string) (Status, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	st := Status(norm)
	if st == StatusAll || st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q (want one of: all, not started, in progress, completed)", s)
}

// Todo is the sole domain entity. ID is assigned by the service.
type Todo struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
	Status  Status `json:"status"`
}

// Fields returns the mutable triple of t.
func (t Todo) Fields() Fields {
	return Fields{Title: t.Title, Details: t.Details, Status: t.Status}
}

// Fields is the create/replace payload. It is the only shape sent to the
// service, so anything outside the triple never reaches the wire.
type Fields struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Status  Status `json:"status"`
}

// NewFields builds a payload, defaulting an empty status to not started.
func NewFields(title, details string, status Status) Fields {
	if status == "" {
		status = StatusNotStarted
	}
	return Fields{Title: title, Details: details, Status: status}
}

// Validate reports criterio field errors for a missing title or a status
// the service does not persist.
func (f Fields) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("title", f.Title, requiredTitle),
		criterio.Run("status", f.Status, persistedStatus),
	)
}

// Patch is a partial update. Nil fields are omitted from the request body.
type Patch struct {
	Title   *string `json:"title,omitempty"`
	Details *string `json:"details,omitempty"`
	Status  *Status `json:"status,omitempty"`
}

// PatchFrom turns a full triple into a patch that sets every field.
func PatchFrom(f Fields) Patch {
	return Patch{Title: &f.Title, Details: &f.Details, Status: &f.Status}
}

// Empty reports whether p changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Details == nil && p.Status == nil
}

// Apply merges p over the current record and returns the full triple.
func (p Patch) Apply(t Todo) Fields {
	f := t.Fields()
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Details != nil {
		f.Details = *p.Details
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	return f
}

func requiredTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func persistedStatus(s Status) error {
	if !s.Valid() {
		return fmt.Errorf("invalid status %q", s)
	}
	return nil
}
