package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

// StatusBar renders the bottom row with selection counts and keyboard shortcuts.
type StatusBar struct {
	summary SelectionSummary
	focus   FocusZone
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{summary: SelectionSummary{Valid: true}}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar with a new selection summary and focus.
func (s *StatusBar) Update(summary SelectionSummary, focus FocusZone) {
	s.summary = summary
	s.focus = focus
}

// View renders the status bar.
func (s StatusBar) View() string {
	// Left side: selection info.
	left := fmt.Sprintf("%d/%d plugins selected", s.summary.Selected, s.summary.Total)
	size := humanize.Bytes(uint64(s.summary.Bytes)) + " JSON"
	if !s.summary.Valid {
		size += " (invalid)"
	}
	leftPart := fmt.Sprintf("%s · %s", left, size)

	// Right side: keyboard shortcuts for the focused pane.
	var shortcuts []string
	switch s.focus {
	case FocusEditor:
		shortcuts = []string{
			StatusBarKeyStyle.Render("Esc") + ": plugins",
			StatusBarKeyStyle.Render("Ctrl+Y") + ": copy",
		}
	default:
		shortcuts = []string{
			StatusBarKeyStyle.Render("Space") + ": toggle",
			StatusBarKeyStyle.Render("Tab") + ": edit JSON",
			StatusBarKeyStyle.Render("y") + ": copy",
			StatusBarKeyStyle.Render("?") + ": help",
		}
	}
	rightPart := strings.Join(shortcuts, " · ")

	// Calculate padding between left and right.
	leftWidth := ansi.StringWidth(leftPart)
	rightWidth := ansi.StringWidth(rightPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	gap := availableWidth - leftWidth - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart

	return StatusBarStyle.Width(s.width).Render(content)
}
