package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/remotetodo/internal/ui"
)

const (
	defaultToastTTL   = 3 * time.Second
	defaultMaxToasts  = 3
	toastTickInterval = 100 * time.Millisecond
)

type toastLevel int

const (
	toastSuccess toastLevel = iota
	toastError
)

type toast struct {
	level     toastLevel
	title     string
	text      string
	remaining time.Duration
}

// ToastController manages the lifecycle of transient notifications.
type ToastController struct {
	toasts  []toast
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Success pushes a success toast.
func (c *ToastController) Success(text string) { c.push(toastSuccess, "Success", text) }

// Error pushes an error toast.
func (c *ToastController) Error(text string) { c.push(toastError, "Error", text) }

// push adds a toast; the oldest is evicted past defaultMaxToasts.
func (c *ToastController) push(level toastLevel, title, text string) {
	c.toasts = append(c.toasts, toast{level: level, title: title, text: text, remaining: defaultToastTTL})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// Tick decrements the remaining TTL on all toasts by d and removes
// any that have expired.
func (c *ToastController) Tick(d time.Duration) {
	alive := c.toasts[:0]
	for _, t := range c.toasts {
		t.remaining -= d
		if t.remaining > 0 {
			alive = append(alive, t)
		}
	}
	c.toasts = alive
}

// Dismiss removes the newest toast.
func (c *ToastController) Dismiss() {
	if len(c.toasts) > 0 {
		c.toasts = c.toasts[:len(c.toasts)-1]
	}
}

func (c *ToastController) HasToasts() bool { return len(c.toasts) > 0 }

func (c *ToastController) Ticking() bool { return c.ticking }

func (c *ToastController) SetTicking(v bool) { c.ticking = v }

// Texts returns the messages of the active toasts, oldest first.
func (c *ToastController) Texts() []string {
	out := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		out = append(out, t.text)
	}
	return out
}

// View renders the toast stack, one line per toast.
func (c *ToastController) View() string {
	if len(c.toasts) == 0 {
		return ""
	}
	th := ui.Current()
	lines := make([]string, 0, len(c.toasts))
	for _, t := range c.toasts {
		style, sym := th.Success, th.SymOK
		if t.level == toastError {
			style, sym = th.Error, th.SymFail
		}
		lines = append(lines, style.Render(sym+" "+t.title+": ")+t.text)
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(lines, "\n"))
}
