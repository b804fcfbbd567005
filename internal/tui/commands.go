package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/remotetodo/internal/model"
)

// Service is the subset of the data-access client the TUI drives.
type Service interface {
	List(ctx context.Context, status model.Status, search string) ([]model.Todo, error)
	Create(ctx context.Context, f model.Fields) (model.Todo, error)
	Update(ctx context.Context, id int, p model.Patch) (model.Todo, error)
	Delete(ctx context.Context, id int) error
}

type mutation int

const (
	opCreate mutation = iota
	opUpdate
	opDelete
)

// todosLoadedMsg carries the result of a List call. gen identifies the
// fetch so superseded results can be dropped.
type todosLoadedMsg struct {
	gen   int
	todos []model.Todo
	err   error
}

// mutationDoneMsg carries the result of a create, update or delete.
type mutationDoneMsg struct {
	op   mutation
	todo model.Todo
	err  error
}

type toastTickMsg struct{}

func fetchCmd(ctx context.Context, svc Service, gen int, status model.Status, search string) tea.Cmd {
	return func() tea.Msg {
		todos, err := svc.List(ctx, status, search)
		return todosLoadedMsg{gen: gen, todos: todos, err: err}
	}
}

func createCmd(ctx context.Context, svc Service, f model.Fields) tea.Cmd {
	return func() tea.Msg {
		t, err := svc.Create(ctx, f)
		return mutationDoneMsg{op: opCreate, todo: t, err: err}
	}
}

func updateCmd(ctx context.Context, svc Service, id int, p model.Patch) tea.Cmd {
	return func() tea.Msg {
		t, err := svc.Update(ctx, id, p)
		return mutationDoneMsg{op: opUpdate, todo: t, err: err}
	}
}

func deleteCmd(ctx context.Context, svc Service, t model.Todo) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(ctx, t.ID)
		return mutationDoneMsg{op: opDelete, todo: t, err: err}
	}
}
