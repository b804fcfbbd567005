package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

func (a *App) lsCommand() *cobra.Command {
	var (
		status string
		search string
		group  bool
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List todos",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := model.StatusAll
			if status != "" {
				s, err := model.ParseStatus(status)
				if err != nil {
					return &usageError{err: err}
				}
				filter = s
			}
			todos, err := a.client.List(cmd.Context(), filter, search)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, ui.Panel(listLines(todos, group)))
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only show todos with this status (not-started, in-progress, completed, all)")
	cmd.Flags().StringVar(&search, "search", "", "only show todos matching this text")
	cmd.Flags().BoolVar(&group, "group", false, "group output by status")
	return cmd
}

func (a *App) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one todo",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0])
			if err != nil {
				return err
			}
			t, err := a.client.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, ui.Panel(detailLines(t)))
			return nil
		},
	}
}

func (a *App) addCommand() *cobra.Command {
	var (
		details string
		status  string
	)
	cmd := &cobra.Command{
		Use:   "add [title...]",
		Short: "Add a todo (prompts when no title is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := model.NewFields(strings.Join(args, " "), details, "")
			if status != "" {
				s, err := model.ParseStatus(status)
				if err != nil {
					return &usageError{err: err}
				}
				f.Status = s
			}

			if len(args) == 0 {
				if err := a.prompt(&f); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return fmt.Errorf("prompt: %w", err)
				}
			}

			f.Title = strings.TrimSpace(f.Title)
			if err := f.Validate(); err != nil {
				return usageErrorf("add: %w", err)
			}

			t, err := a.client.Create(cmd.Context(), f)
			if err != nil {
				return err
			}
			ui.OK(a.out, fmt.Sprintf("added #%d %s", t.ID, t.Title))
			return nil
		},
	}
	cmd.Flags().StringVar(&details, "details", "", "details (markdown)")
	cmd.Flags().StringVar(&status, "status", "", "initial status (default not-started)")
	return cmd
}

func (a *App) editCommand() *cobra.Command {
	var title, details, status string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the title, details or status of a todo",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0])
			if err != nil {
				return err
			}

			var p model.Patch
			if cmd.Flags().Changed("title") {
				p.Title = &title
			}
			if cmd.Flags().Changed("details") {
				p.Details = &details
			}
			if cmd.Flags().Changed("status") {
				s, err := model.ParseStatus(status)
				if err != nil {
					return &usageError{err: err}
				}
				p.Status = &s
			}
			if p.Empty() {
				return usageErrorf("edit: nothing to change, pass --title, --details or --status")
			}
			return a.update(cmd, id, p)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&details, "details", "", "new details")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	return cmd
}

func (a *App) doneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0])
			if err != nil {
				return err
			}
			s := model.StatusCompleted
			return a.update(cmd, id, model.Patch{Status: &s})
		},
	}
}

func (a *App) rmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(cmd, args[0])
			if err != nil {
				return err
			}
			if err := a.client.Delete(cmd.Context(), id); err != nil {
				return err
			}
			ui.OK(a.out, fmt.Sprintf("removed #%d", id))
			return nil
		},
	}
}

// update fetches the todo, merges p and sends the full record.
func (a *App) update(cmd *cobra.Command, id int, p model.Patch) error {
	current, err := a.client.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	f := p.Apply(current)
	f.Title = strings.TrimSpace(f.Title)
	if err := f.Validate(); err != nil {
		return usageErrorf("%s: %w", cmd.Name(), err)
	}

	t, err := a.client.Update(cmd.Context(), id, model.PatchFrom(f))
	if err != nil {
		return err
	}
	ui.OK(a.out, fmt.Sprintf("updated #%d %s", t.ID, ui.Badge(t.Status)))
	return nil
}

// promptFields collects a new todo interactively. f carries the defaults.
func promptFields(f *model.Fields) error {
	opts := make([]huh.Option[model.Status], 0, len(model.Statuses()))
	for _, s := range model.Statuses() {
		opts = append(opts, huh.NewOption(s.Label(), s))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Buy milk").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}).
				Value(&f.Title),
			huh.NewText().
				Title("Details").
				Description("Optional, markdown").
				Value(&f.Details),
			huh.NewSelect[model.Status]().
				Title("Status").
				Options(opts...).
				Value(&f.Status),
		),
	).Run()
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usageErrorf("usage: %s", cmd.UseLine())
		}
		return nil
	}
}

func parseID(cmd *cobra.Command, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, usageErrorf("%s: not a valid id: %s", cmd.Name(), s)
	}
	return id, nil
}
