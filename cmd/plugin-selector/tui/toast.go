package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/plugin-selector/internal/selection"
)

// Toasts shows the latest notification for a fixed time. A newer
// notification replaces the one on screen.
type Toasts struct {
	current  *selection.Notification
	id       int
	duration time.Duration // zero keeps a toast until the next one
}

// NewToasts creates a toast area whose messages expire after d.
func NewToasts(d time.Duration) Toasts {
	return Toasts{duration: d}
}

// Push shows n and returns the command that will expire it.
func (t *Toasts) Push(n selection.Notification) tea.Cmd {
	t.id++
	t.current = &n
	if t.duration <= 0 {
		return nil
	}
	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Expire clears the toast if msg belongs to it.
func (t *Toasts) Expire(msg toastExpiredMsg) {
	if msg.id == t.id {
		t.current = nil
	}
}

// Current returns the visible notification, if any.
func (t Toasts) Current() (selection.Notification, bool) {
	if t.current == nil {
		return selection.Notification{}, false
	}
	return *t.current, true
}

// View renders the toast centered in width columns, or a blank line.
func (t Toasts) View(width int) string {
	n, ok := t.Current()
	if !ok {
		return ""
	}
	var style lipgloss.Style
	switch n.Level {
	case selection.Success:
		style = ToastSuccessStyle
	case selection.Warning:
		style = ToastWarningStyle
	case selection.Error:
		style = ToastErrorStyle
	default:
		style = ToastInfoStyle
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(n.Message))
}
