// Package tui is the interactive presentation layer: a Bubble Tea program
// over the data-access client. It holds only ephemeral UI state; the list is
// a cache of the last fetch and is re-fetched after every mutation.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalForm
	modalView
	modalConfirm
)

// Toast texts shown after each operation.
const (
	msgFetchFailed  = "Failed to fetch todos."
	msgCreateFailed = "Failed to create todo."
	msgUpdateFailed = "Failed to update todo."
	msgDeleteFailed = "Failed to delete todo."
	msgCreated      = "Todo created successfully!"
	msgUpdated      = "Todo updated successfully!"
	msgDeleted      = "Todo deleted successfully!"
)

type Model struct {
	ctx    context.Context
	svc    Service
	logger zerolog.Logger
	keys   keyMap

	list      list.Model
	search    textinput.Model
	searching bool
	filter    model.Status
	todos     []model.Todo

	// processing gates a blocking overlay while a request is in flight.
	// gen numbers fetches; only the latest result is applied.
	processing bool
	gen        int
	spinner    spinner.Model

	menu    *Selection
	details *Selection

	selected      *model.Todo
	modal         modalKind
	form          FormModal
	formReturn    modalKind
	confirm       ConfirmModal
	confirmReturn modalKind

	toasts *ToastController
	tick   func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	width, height int
	quitting      bool
}

// New builds the model. The first fetch is issued by Init.
func New(ctx context.Context, svc Service, logger zerolog.Logger) Model {
	keys := defaultKeys()
	menu, details := &Selection{}, &Selection{}

	l := list.New(nil, itemDelegate{menu: menu, details: details}, 0, 0)
	l.Title = "Todos"
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.Title = ui.Current().Title
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"), key.WithHelp("→/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←/pgup", "prev page"))
	l.KeyMap.Quit = keys.Quit
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.short

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search todos..."
	search.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		svc:        svc,
		logger:     logger,
		keys:       keys,
		list:       l,
		search:     search,
		filter:     model.StatusAll,
		processing: true,
		gen:        1,
		spinner:    sp,
		menu:       menu,
		details:    details,
		toasts:     NewToastController(),
		tick:       tea.Tick,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchCmd(m.ctx, m.svc, m.gen, m.filter, m.search.Value()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, m.scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case todosLoadedMsg:
		return m.handleLoaded(msg)

	case mutationDoneMsg:
		return m.handleMutation(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.modal == modalForm:
		m.form, cmd = m.form.Update(msg)
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) handleLoaded(msg todosLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logger.Debug().Int("gen", msg.gen).Int("current", m.gen).Msg("dropping stale fetch")
		return m, nil
	}
	m.processing = false

	if msg.err != nil {
		m.toasts.Error(msgFetchFailed)
		return m, m.scheduleToastTick()
	}

	m.todos = msg.todos
	m.pruneSelections()
	m.list.Title = m.header()
	return m, m.list.SetItems(toItems(m.todos))
}

func (m Model) handleMutation(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	m.processing = false

	if msg.err != nil {
		switch msg.op {
		case opCreate:
			m.toasts.Error(msgCreateFailed)
		case opUpdate:
			m.toasts.Error(msgUpdateFailed)
		case opDelete:
			m.toasts.Error(msgDeleteFailed)
		}
		switch m.modal {
		case modalForm:
			m.form.Reset()
		case modalConfirm:
			m.modal = m.confirmReturn
			if m.modal == modalNone {
				m.selected = nil
			}
		}
		return m, m.scheduleToastTick()
	}

	switch msg.op {
	case opCreate:
		m.logger.Info().Int("id", msg.todo.ID).Msg("todo created")
		m.toasts.Success(msgCreated)
		m.modal = modalNone
	case opUpdate:
		m.logger.Info().Int("id", msg.todo.ID).Msg("todo updated")
		m.toasts.Success(msgUpdated)
		updated := msg.todo
		m.selected = &updated
		if m.modal == modalForm {
			m.modal = m.formReturn
		}
	case opDelete:
		m.logger.Info().Int("id", msg.todo.ID).Msg("todo deleted")
		m.toasts.Success(msgDeleted)
		m.modal = modalNone
		if m.menu.Is(msg.todo.ID) {
			m.menu.Clear()
		}
		if m.details.Is(msg.todo.ID) {
			m.details.Clear()
		}
	}
	if m.modal == modalNone {
		m.selected = nil
	}

	fetch := m.refetch()
	return m, tea.Batch(fetch, m.scheduleToastTick())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.processing {
		return m, nil
	}

	switch m.modal {
	case modalForm:
		return m.updateForm(msg)
	case modalConfirm:
		return m.updateConfirm(msg)
	case modalView:
		return m.updateView(msg)
	}

	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, m.refetch()
		case "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		if _, open := m.menu.ID(); open {
			m.menu.Clear()
		} else {
			m.toasts.Dismiss()
		}
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.menu.Clear()
		return m.openCreate()
	case key.Matches(msg, m.keys.Search):
		m.menu.Clear()
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.NextFilter()
		return m, m.refetch()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.refetch()
	}

	if t, ok := m.current(); ok {
		switch {
		case key.Matches(msg, m.keys.Details):
			m.menu.Clear()
			m.details.Toggle(t.ID)
			return m, nil
		case key.Matches(msg, m.keys.Menu):
			m.menu.Toggle(t.ID)
			return m, nil
		case key.Matches(msg, m.keys.View):
			m.menu.Clear()
			m.selected = &t
			m.modal = modalView
			return m, nil
		case key.Matches(msg, m.keys.Edit):
			m.menu.Clear()
			return m.openEdit(t, modalNone)
		case key.Matches(msg, m.keys.Delete):
			m.menu.Clear()
			return m.openConfirm(t, modalNone)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	switch {
	case m.form.Cancelled():
		m.modal = m.formReturn
		if m.modal == modalNone {
			m.selected = nil
		}
		return m, nil
	case m.form.Submitted():
		f := m.form.Fields()
		m.processing = true
		if m.form.Editing() {
			return m, updateCmd(m.ctx, m.svc, m.form.EditID(), model.PatchFrom(f))
		}
		return m, createCmd(m.ctx, m.svc, f)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)

	switch {
	case m.confirm.Cancelled():
		m.modal = m.confirmReturn
		if m.modal == modalNone {
			m.selected = nil
		}
	case m.confirm.Confirmed() && m.selected != nil:
		m.processing = true
		return m, deleteCmd(m.ctx, m.svc, *m.selected)
	}
	return m, nil
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.selected == nil {
		m.modal = modalNone
		return m, nil
	}
	t := *m.selected

	switch {
	case key.Matches(msg, m.keys.Close), msg.String() == "q":
		m.modal = modalNone
		m.selected = nil
	case key.Matches(msg, m.keys.Status):
		f := t.Fields()
		f.Status = f.Status.Next()
		m.processing = true
		return m, updateCmd(m.ctx, m.svc, t.ID, model.PatchFrom(f))
	case key.Matches(msg, m.keys.Edit):
		return m.openEdit(t, modalView)
	case key.Matches(msg, m.keys.Delete):
		return m.openConfirm(t, modalView)
	}
	return m, nil
}

func (m Model) openCreate() (tea.Model, tea.Cmd) {
	m.form = NewCreateForm()
	m.form.SetWidth(m.modalWidth())
	m.formReturn = modalNone
	m.selected = nil
	m.modal = modalForm
	return m, textinput.Blink
}

func (m Model) openEdit(t model.Todo, ret modalKind) (tea.Model, tea.Cmd) {
	m.form = NewEditForm(t)
	m.form.SetWidth(m.modalWidth())
	m.formReturn = ret
	m.selected = &t
	m.modal = modalForm
	return m, textinput.Blink
}

func (m Model) openConfirm(t model.Todo, ret modalKind) (tea.Model, tea.Cmd) {
	m.confirm = NewConfirmModal(fmt.Sprintf("Delete %q?", t.Title))
	m.confirmReturn = ret
	m.selected = &t
	m.modal = modalConfirm
	return m, nil
}

// refetch issues a List with the current filter and search text. Any
// in-flight fetch is superseded.
func (m *Model) refetch() tea.Cmd {
	m.gen++
	m.processing = true
	return fetchCmd(m.ctx, m.svc, m.gen, m.filter, m.search.Value())
}

func (m *Model) scheduleToastTick() tea.Cmd {
	if m.toasts.Ticking() {
		return nil
	}
	m.toasts.SetTicking(true)
	return m.tick(toastTickInterval, func(time.Time) tea.Msg { return toastTickMsg{} })
}

func (m Model) current() (model.Todo, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return li.todo, true
}

// pruneSelections closes toggles whose row disappeared from the list.
func (m *Model) pruneSelections() {
	for _, sel := range []*Selection{m.menu, m.details} {
		id, ok := sel.ID()
		if !ok {
			continue
		}
		found := false
		for _, t := range m.todos {
			if t.ID == id {
				found = true
				break
			}
		}
		if !found {
			sel.Clear()
		}
	}
}

func (m *Model) resize() {
	m.list.SetSize(max(m.width-4, 20), max(m.height-reservedRows, 3))
	m.search.Width = max(m.width-10, 10)
	if m.modal == modalForm {
		m.form.SetWidth(m.modalWidth())
	}
}

func (m Model) modalWidth() int {
	return min(max(m.width-12, 30), 72)
}
