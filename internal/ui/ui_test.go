package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/remotetodo/internal/model"
)

func plain(t *testing.T) {
	t.Helper()
	SetColorForcing(false, true)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ünïcö...", Truncate("ünïcödé-text", 8))
}

func TestPanel(t *testing.T) {
	plain(t)
	SetTheme("mono")

	out := Panel([]string{"Todos", "one"})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "+-"))
	assert.Contains(t, lines[1], "| Todos")
	assert.Contains(t, lines[2], "| one")
}

func TestBadge(t *testing.T) {
	plain(t)

	assert.Equal(t, "☑ completed", Badge(model.StatusCompleted))
	assert.Equal(t, "◐ in progress", Badge(model.StatusInProgress))
	assert.Equal(t, "☐ not started", Badge(model.StatusNotStarted))

	SetTheme("mono")
	assert.Equal(t, "[x] completed", Badge(model.StatusCompleted))
}

func TestOKFail(t *testing.T) {
	plain(t)

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "boom")
	assert.Equal(t, "✔ added\n✖ boom\n", buf.String())
}

func TestRenderDetails(t *testing.T) {
	plain(t)

	assert.Equal(t, "(no details)", RenderDetails("  ", 40))
	assert.Contains(t, RenderDetails("2% **organic**", 40), "organic")
}

func TestRenderDetails_Styling(t *testing.T) {
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})

	SetColorForcing(false, false)
	if !isTTY() {
		out := RenderDetails("**organic** milk", 40)
		assert.NotContains(t, out, "\x1b[", "piped output carries no escapes")
		assert.Contains(t, out, "organic")
	}

	SetColorForcing(true, false)
	assert.Contains(t, RenderDetails("**organic** milk", 40), "\x1b[")

	SetTheme("mono")
	assert.NotContains(t, RenderDetails("**organic** milk", 40), "\x1b[")
}

func TestMonoThemeIsNotSticky(t *testing.T) {
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})
	SetColorForcing(true, false)

	SetTheme("mono")
	assert.False(t, colorEnabled())
	assert.Equal(t, "x", C(Current().Error, "x"))

	SetTheme("classic")
	assert.True(t, colorEnabled(), "leaving mono restores styled output")
	assert.False(t, disableColor)
}
