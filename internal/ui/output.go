package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/idilsaglam/remotetodo/internal/model"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorEnabled reports whether styled output should be written: not
// disabled, not a plain theme, and either forced or going to a terminal.
func colorEnabled() bool {
	if disableColor || current.Plain {
		return false
	}
	return forceColor || isTTY()
}

// C renders s with style when color output is enabled.
func C(style lipgloss.Style, s string) string {
	if !colorEnabled() {
		return s
	}
	return style.Render(s)
}

// Badge renders a status as "☑ completed" in its theme color.
func Badge(s model.Status) string {
	return C(current.StatusStyle(s), current.StatusGlyph(s)+" "+string(s))
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Success, current.SymOK+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(current.Error, current.SymFail+" "+msg))
}
