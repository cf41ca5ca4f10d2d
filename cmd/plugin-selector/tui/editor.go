package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Editor is the free-text JSON pane.
//
// textarea keeps at most 10000 lines. Text longer than that is shown cut
// off and the editor turns read-only, so the cut-off copy is never taken
// for the user's edit.
type Editor struct {
	area      textarea.Model
	focused   bool
	truncated bool
}

// NewEditor creates an editor holding text.
func NewEditor(text string) Editor {
	ta := textarea.New()
	ta.Placeholder = "Select plugins or paste/edit plugin JSON here"
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(colorSurface0)
	ta.Blur()
	e := Editor{area: ta}
	e.SetValue(text)
	return e
}

// Value returns the text exactly as typed.
func (e Editor) Value() string {
	return e.area.Value()
}

// SetValue replaces the text, e.g. after a checklist toggle.
func (e *Editor) SetValue(text string) {
	e.area.SetValue(text)
	e.truncated = e.area.Value() != text
}

// Truncated reports whether the last SetValue did not fit in the text area.
func (e Editor) Truncated() bool {
	return e.truncated
}

// SetSize sets the text area dimensions.
func (e *Editor) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 1 {
		height = 1
	}
	e.area.SetWidth(width)
	e.area.SetHeight(height)
}

// Focus gives the editor keyboard focus.
func (e *Editor) Focus() tea.Cmd {
	e.focused = true
	return e.area.Focus()
}

// Blur removes keyboard focus.
func (e *Editor) Blur() {
	e.focused = false
	e.area.Blur()
}

// Focused reports whether the editor has keyboard focus.
func (e Editor) Focused() bool {
	return e.focused
}

// Update forwards msg to the text area. changed reports whether the text
// differs afterwards. Keys are ignored while the text is truncated.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok && e.truncated {
		return e, nil, false
	}
	before := e.area.Value()
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)
	return e, cmd, e.area.Value() != before
}

// View renders the text area.
func (e Editor) View() string {
	return e.area.View()
}
