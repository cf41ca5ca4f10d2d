package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// helpBindings lists the key bindings shown in the help overlay.
var helpBindings = [][2]string{
	{"Plugins pane", ""},
	{"↑/k ↓/j", "move"},
	{"g / G", "first / last plugin"},
	{"Space, Enter, x", "toggle plugin"},
	{"a", "select every plugin"},
	{"n", "clear the selection"},
	{"/", "filter by name (Enter keeps, Esc clears)"},
	{"y, c", "copy configuration"},
	{"Tab, →/l", "edit JSON"},
	{"Esc, q", "quit"},
	{"", ""},
	{"Configuration pane", ""},
	{"typing", "edit JSON; invalid JSON is kept as typed"},
	{"Tab, Esc", "back to plugins"},
	{"", ""},
	{"Anywhere", ""},
	{"Ctrl+Y", "copy configuration"},
	{"Ctrl+C", "quit"},
}

// HelpOverlay is a scrollable modal listing key bindings.
type HelpOverlay struct {
	viewport viewport.Model
	active   bool
}

// NewHelpOverlay creates an active help overlay.
func NewHelpOverlay() HelpOverlay {
	vp := viewport.New(OverlayMinWidth(), len(helpBindings))
	vp.SetContent(helpText())
	return HelpOverlay{viewport: vp, active: true}
}

func helpText() string {
	var b strings.Builder
	for _, kb := range helpBindings {
		switch {
		case kb[0] == "" && kb[1] == "":
			b.WriteString("\n")
		case kb[1] == "":
			b.WriteString(HeaderStyle.Render(kb[0]) + "\n")
		default:
			key := StatusBarKeyStyle.UnsetBackground().Render(kb[0])
			pad := 18 - ansi.StringWidth(kb[0])
			if pad < 1 {
				pad = 1
			}
			b.WriteString("  " + key + strings.Repeat(" ", pad) + kb[1] + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Active returns whether the overlay is currently shown.
func (o HelpOverlay) Active() bool {
	return o.active
}

// SetSize fits the overlay inside a terminal of the given size.
func (o *HelpOverlay) SetSize(termWidth, termHeight int) {
	o.viewport.Width = OverlayMaxWidth(termWidth)
	h := termHeight - 8 // border, padding, title and hint lines
	if h > len(helpBindings) {
		h = len(helpBindings)
	}
	if h < 3 {
		h = 3
	}
	o.viewport.Height = h
}

// Update closes the overlay on Esc, q, ? or Enter and scrolls otherwise.
func (o HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?", "enter":
			o.active = false
			return o, nil
		}
	}
	var cmd tea.Cmd
	o.viewport, cmd = o.viewport.Update(msg)
	return o, cmd
}

// View renders the overlay box. Compositing over the background is the
// caller's job (see Composite).
func (o HelpOverlay) View() string {
	if !o.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(o.viewport.View())
	b.WriteString("\n\n")
	hint := "Esc: close"
	if !o.viewport.AtTop() || !o.viewport.AtBottom() {
		hint = "↑/↓: scroll  " + hint
	}
	b.WriteString(OverlayScrollHintStyle.Render(hint))
	return OverlayStyle.Render(b.String())
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (totalHeight - len(overlayLines)) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - overlayWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}
		bg := bgLines[row]
		bgWidth := ansi.StringWidth(bg)

		left := ansi.Truncate(bg, startCol, "")
		if w := ansi.StringWidth(left); w < startCol {
			left += strings.Repeat(" ", startCol-w)
		}
		right := ""
		if end := startCol + ansi.StringWidth(overlayLine); end < bgWidth {
			right = ansi.TruncateLeft(bg, end, "")
		}
		bgLines[row] = left + overlayLine + right
	}

	if len(bgLines) > totalHeight {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}

// OverlayMinWidth returns a reasonable minimum width for the overlay content.
func OverlayMinWidth() int {
	return 40
}

// OverlayMaxWidth returns a reasonable maximum width for the overlay content.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < OverlayMinWidth() {
		w = OverlayMinWidth()
	}
	if w > 64 {
		w = 64
	}
	return w
}
