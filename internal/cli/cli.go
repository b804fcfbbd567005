// Package cli implements the todo command-line interface: one-shot
// subcommands over the data-access client, and the TUI when no subcommand is
// given.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/remotetodo/internal/client"
	"github.com/idilsaglam/remotetodo/internal/config"
	"github.com/idilsaglam/remotetodo/internal/model"
	"github.com/idilsaglam/remotetodo/internal/tui"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

// Exit codes returned by Run.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitCanceled = 130
)

// App holds state shared by all commands. It is populated by the root
// command's pre-run hook from config, environment and flags.
type App struct {
	out    io.Writer
	errOut io.Writer

	cfg      *config.Config
	logger   zerolog.Logger
	client   *client.Client
	closeLog func()

	configPath string
	apiURL     string
	logLevel   string
	logFile    string
	noColor    bool

	runTUI func(context.Context, tui.Service, zerolog.Logger) error
	prompt func(*model.Fields) error
}

// New returns an App writing to out and errOut.
func New(out, errOut io.Writer) *App {
	return &App{
		out:      out,
		errOut:   errOut,
		logger:   zerolog.Nop(),
		closeLog: func() {},
		runTUI:   tui.Run,
		prompt:   promptFields,
	}
}

// Run executes the command line and returns a process exit code
// (0 ok, 1 failure, 2 usage, 130 interrupted).
func Run(ctx context.Context, args []string) int {
	return New(os.Stdout, os.Stderr).Run(ctx, args)
}

func (a *App) Run(ctx context.Context, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	code := a.exitCode(root.ExecuteContext(ctx))
	a.closeLog()
	return code
}

func (a *App) exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		ui.Fail(a.errOut, uerr.Error())
		fmt.Fprintln(a.errOut, ui.C(ui.Current().Muted, "Run `todo --help` for usage."))
		return ExitUsage
	}

	a.logger.Error().Err(err).Msg("command failed")
	ui.Fail(a.errOut, client.UserMessage(err))
	return ExitFailure
}

// usageError marks bad arguments or flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
