package todoserver

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/idilsaglam/remotetodo/internal/model"
)

var (
	ErrNotFound   = errors.New("todo not found")
	ErrValidation = errors.New("validation error")
)

// Snapshotter persists the full record set after every mutation.
type Snapshotter interface {
	Load() ([]model.Todo, error)
	Save([]model.Todo) error
}

// Filter narrows a listing. Zero value matches everything.
type Filter struct {
	Status model.Status
	Search string
}

// MemoryStore keeps todos in memory, ordered by id.
type MemoryStore struct {
	mu     sync.Mutex
	todos  map[int]model.Todo
	nextID int
	snap   Snapshotter
}

// NewMemoryStore creates an empty store. When snap is non-nil its contents
// seed the store and every mutation is written back.
func NewMemoryStore(snap Snapshotter) (*MemoryStore, error) {
	s := &MemoryStore{todos: map[int]model.Todo{}, nextID: 1, snap: snap}
	if snap == nil {
		return s, nil
	}
	items, err := snap.Load()
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		s.todos[t.ID] = t
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s, nil
}

func (s *MemoryStore) List(_ context.Context, f Filter) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(f.Search)
	out := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		if f.Status.IsFilter() && t.Status != f.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Details), needle) {
			continue
		}
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b model.Todo) int { return a.ID - b.ID })
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id int) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.todos[id]
	if !ok {
		return model.Todo{}, ErrNotFound
	}
	return t, nil
}

func (s *MemoryStore) Create(_ context.Context, f model.Fields) (model.Todo, error) {
	f = model.NewFields(f.Title, f.Details, f.Status)
	if err := f.Validate(); err != nil {
		return model.Todo{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Todo{ID: s.nextID, Title: f.Title, Details: f.Details, Status: f.Status}
	s.nextID++
	s.todos[t.ID] = t
	if err := s.persist(); err != nil {
		delete(s.todos, t.ID)
		return model.Todo{}, err
	}
	return t, nil
}

// Update applies p. Nil fields are left unchanged.
func (s *MemoryStore) Update(_ context.Context, id int, p model.Patch) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.todos[id]
	if !ok {
		return model.Todo{}, ErrNotFound
	}
	f := p.Apply(cur)
	if err := f.Validate(); err != nil {
		return model.Todo{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	next := model.Todo{ID: id, Title: f.Title, Details: f.Details, Status: f.Status}
	s.todos[id] = next
	if err := s.persist(); err != nil {
		s.todos[id] = cur
		return model.Todo{}, err
	}
	return next, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.todos[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	if err := s.persist(); err != nil {
		s.todos[id] = cur
		return err
	}
	return nil
}

// persist must be called with mu held.
func (s *MemoryStore) persist() error {
	if s.snap == nil {
		return nil
	}
	items := make([]model.Todo, 0, len(s.todos))
	for _, t := range s.todos {
		items = append(items, t)
	}
	slices.SortFunc(items, func(a, b model.Todo) int { return a.ID - b.ID })
	return s.snap.Save(items)
}
