package cli

import (
	"fmt"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

const detailsWidth = 72

func counts(todos []model.Todo) map[model.Status]int {
	c := map[model.Status]int{}
	for _, t := range todos {
		c[t.Status]++
	}
	return c
}

func listLines(todos []model.Todo, group bool) []string {
	th := ui.Current()
	c := counts(todos)

	header := ui.C(th.Title, "Todos")
	for _, s := range model.Statuses() {
		header += fmt.Sprintf("  %s %d", ui.C(th.StatusStyle(s), th.StatusGlyph(s)), c[s])
	}
	header += fmt.Sprintf("  %s %d", ui.C(th.Accent, "Total"), len(todos))

	lines := []string{
		header,
		ui.C(th.Muted, ui.ProgressBar(c[model.StatusCompleted], len(todos), 28)),
		"",
	}
	if group {
		lines = append(lines, groupLines(todos)...)
	} else {
		lines = append(lines, flatLines(todos)...)
	}
	lines = append(lines, "", ui.C(th.Muted, "Tip: add with `todo add \"Buy milk\"`"))
	return lines
}

func flatLines(todos []model.Todo) []string {
	th := ui.Current()
	if len(todos) == 0 {
		return []string{ui.C(th.Muted, "no todos")}
	}
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C(th.Muted, fmt.Sprintf("#%-3d", t.ID)),
			ui.C(th.StatusStyle(t.Status), th.StatusGlyph(t.Status)),
			ui.Truncate(t.Title, 80)))
	}
	return out
}

func groupLines(todos []model.Todo) []string {
	th := ui.Current()
	by := map[model.Status][]model.Todo{}
	for _, t := range todos {
		by[t.Status] = append(by[t.Status], t)
	}

	var lines []string
	for i, s := range model.Statuses() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, ui.C(th.Accent, s.Label()))
		if len(by[s]) == 0 {
			lines = append(lines, ui.C(th.Muted, "(none)"))
			continue
		}
		lines = append(lines, flatLines(by[s])...)
	}
	return lines
}

func detailLines(t model.Todo) []string {
	th := ui.Current()
	return []string{
		ui.C(th.Title, t.Title),
		ui.C(th.Muted, fmt.Sprintf("#%d", t.ID)) + "  " + ui.Badge(t.Status),
		"",
		ui.RenderDetails(t.Details, detailsWidth),
	}
}
