package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/plugin-selector/internal/catalog"
	"github.com/ruminaider/plugin-selector/internal/clipboard"
	"github.com/ruminaider/plugin-selector/internal/selection"
)

// copyTimeout bounds a single clipboard write.
const copyTimeout = 5 * time.Second

// Options tunes the root model.
type Options struct {
	// ToastDuration is how long notifications stay visible. Zero keeps each
	// one until the next.
	ToastDuration time.Duration
	// Context bounds clipboard writes. Defaults to context.Background().
	Context context.Context
}

// Model is the root bubbletea model: plugin checklist on the left, JSON
// editor on the right, toast line and status bar below.
type Model struct {
	catalog *catalog.Catalog
	sel     *selection.Synchronizer
	inbox   *selection.Inbox
	ctx     context.Context

	checklist Checklist
	editor    Editor
	toasts    Toasts
	statusBar StatusBar
	help      HelpOverlay

	focusZone     FocusZone
	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool
}

// NewModel creates the root model with an empty selection.
func NewModel(cat *catalog.Catalog, clip clipboard.Writer, opts Options) Model {
	inbox := &selection.Inbox{}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		catalog:   cat,
		sel:       selection.New(inbox, clip),
		inbox:     inbox,
		ctx:       ctx,
		checklist: NewChecklist(cat),
		toasts:    NewToasts(opts.ToastDuration),
		statusBar: NewStatusBar(),
		focusZone: FocusChecklist,
	}
	m.editor = NewEditor(m.sel.Text())
	m.checklist.SetFocused(true)
	m.syncStatusBar()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Text returns the current textual form of the selection.
func (m Model) Text() string {
	return m.sel.Text()
}

// Update satisfies tea.Model. Routes messages to the focused pane.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case toastExpiredMsg:
		m.toasts.Expire(msg)
		return m, nil
	}

	// When the help overlay is up, it gets every message.
	if m.help.Active() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	// Global key handling.
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+y":
			cmd := m.copy()
			return m, cmd
		case "tab", "shift+tab":
			if m.focusZone == FocusChecklist && m.checklist.Filtering() {
				break
			}
			cmd := m.switchFocus()
			return m, cmd
		case "?":
			if m.focusZone == FocusChecklist && !m.checklist.Filtering() {
				m.help = NewHelpOverlay()
				m.help.SetSize(m.width, m.height)
				return m, nil
			}
		}
	}

	switch m.focusZone {
	case FocusEditor:
		return m.updateEditor(msg)
	default:
		return m.updateChecklist(msg)
	}
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	header := TitleStyle.Render("Plugin Selector") + "\n" +
		SubtitleStyle.Render("Select a plugin to view, edit, and copy its JSON configuration.")

	leftWidth, rightWidth, paneHeight := m.paneSizes()

	leftStyle, rightStyle := PaneStyle, PaneStyle
	if m.focusZone == FocusChecklist {
		leftStyle = FocusedPaneStyle
	} else {
		rightStyle = FocusedPaneStyle
	}

	left := leftStyle.Width(leftWidth).Height(paneHeight).Render(
		HeaderStyle.Render("Available Plugins") + "\n" + clampHeight(m.checklist.View(), paneHeight-1))

	editorTitle := HeaderStyle.Render("Configuration")
	if !m.sel.Valid() {
		editorTitle += " " + InvalidTagStyle.Render("invalid JSON")
	}
	if m.editor.Truncated() {
		editorTitle += " " + InvalidTagStyle.Render("too long to edit, Ctrl+Y copies all")
	}
	button := ButtonDimStyle
	if m.focusZone == FocusEditor {
		button = ButtonStyle
	}
	copyButton := lipgloss.PlaceHorizontal(rightWidth-2, lipgloss.Center, button.Render("⧉ Copy Configuration (Ctrl+Y)"))
	right := rightStyle.Width(rightWidth).Height(paneHeight).Render(
		editorTitle + "\n" + m.editor.View() + "\n" + copyButton)

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	frame := header + "\n" + main + "\n" + m.toasts.View(m.width) + "\n" + m.statusBar.View()

	if m.help.Active() {
		return Composite(frame, m.help.View(), m.width, m.height)
	}
	return frame
}

// --- Update helpers ---

func (m Model) updateChecklist(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		action Action
		cmd    tea.Cmd
	)
	m.checklist, action, cmd = m.checklist.Update(msg)

	var next tea.Cmd
	switch action {
	case ActionToggle:
		if name, ok := m.checklist.Current(); ok {
			next = m.toggle(name)
		}
	case ActionSelectAll:
		next = m.selectAll()
	case ActionClear:
		m.sel.Reset()
		m.editor.SetValue(m.sel.Text())
		m.refresh()
	case ActionCopy:
		next = m.copy()
	case ActionFocusEditor:
		next = m.switchFocus()
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, tea.Batch(cmd, next)
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		cmd := m.switchFocus()
		return m, cmd
	}

	var (
		cmd     tea.Cmd
		changed bool
	)
	m.editor, cmd, changed = m.editor.Update(msg)
	if changed {
		m.sel.EditText(m.editor.Value())
		m.refresh()
	}
	return m, cmd
}

// toggle flips one plugin. On invalid JSON the synchronizer has already
// queued a warning, so the error itself needs no further handling.
func (m *Model) toggle(name string) tea.Cmd {
	d, ok := m.catalog.Lookup(name)
	if !ok {
		return nil
	}
	if err := m.sel.Toggle(d); err != nil && !errors.Is(err, selection.ErrInvalidJSON) {
		m.inbox.Notify(selection.Notification{Level: selection.Error, Message: err.Error()})
	}
	m.editor.SetValue(m.sel.Text())
	m.refresh()
	return m.flushNotifications()
}

// selectAll toggles on every catalog plugin that is not selected yet, in
// catalog order, stopping at the first failure.
func (m *Model) selectAll() tea.Cmd {
	for _, d := range m.catalog.Entries() {
		if m.sel.Selected(d.Name) && m.sel.Valid() {
			continue
		}
		if err := m.sel.Toggle(d); err != nil {
			if !errors.Is(err, selection.ErrInvalidJSON) {
				m.inbox.Notify(selection.Notification{Level: selection.Error, Message: err.Error()})
			}
			break
		}
	}
	m.editor.SetValue(m.sel.Text())
	m.refresh()
	return m.flushNotifications()
}

// copy writes the configuration to the clipboard. Failures become an error
// toast instead of ending the program.
func (m *Model) copy() tea.Cmd {
	ctx, cancel := context.WithTimeout(m.ctx, copyTimeout)
	defer cancel()
	if _, err := m.sel.Copy(ctx); err != nil {
		m.inbox.Notify(selection.Notification{
			Level:   selection.Error,
			Message: fmt.Sprintf("Copy failed: %v", err),
		})
	}
	return m.flushNotifications()
}

// flushNotifications turns queued notifications into toasts. Only the last
// one stays visible, so only its expiry is scheduled.
func (m *Model) flushNotifications() tea.Cmd {
	var cmd tea.Cmd
	for _, n := range m.inbox.Drain() {
		cmd = m.toasts.Push(n)
	}
	return cmd
}

func (m *Model) switchFocus() tea.Cmd {
	if m.focusZone == FocusChecklist {
		m.focusZone = FocusEditor
		m.checklist.SetFocused(false)
		m.syncStatusBar()
		return m.editor.Focus()
	}
	m.focusZone = FocusChecklist
	m.editor.Blur()
	m.checklist.SetFocused(true)
	m.syncStatusBar()
	return nil
}

// refresh pushes the selection into the checklist and status bar.
func (m *Model) refresh() {
	m.checklist.SetSelected(m.sel.Selected)
	m.syncStatusBar()
}

func (m *Model) syncStatusBar() {
	m.statusBar.Update(SelectionSummary{
		Selected: m.checklist.SelectedCount(),
		Total:    m.checklist.TotalCount(),
		Bytes:    len(m.sel.Text()),
		Valid:    m.sel.Valid(),
	}, m.focusZone)
}

// paneSizes returns the lipgloss widths of both panes (content plus
// padding, without border) and their shared content height.
func (m Model) paneSizes() (left, right, height int) {
	const border = 2
	leftOuter := m.width * 2 / 5
	if leftOuter < ChecklistMinWidth {
		leftOuter = ChecklistMinWidth
	}
	rightOuter := m.width - leftOuter
	if rightOuter < 24 {
		rightOuter = 24
	}
	// header (2), pane borders (2), toast line, status bar
	height = m.height - 6
	if height < 3 {
		height = 3
	}
	return leftOuter - border, rightOuter - border, height
}

func (m *Model) distributeSize() {
	const padding = 2
	left, right, height := m.paneSizes()
	m.checklist.SetSize(left-padding, height-1) // pane title
	m.editor.SetSize(right-padding, height-2)   // pane title and copy button
	m.statusBar.SetWidth(m.width)
	if m.help.Active() {
		m.help.SetSize(m.width, m.height)
	}
}

// clampHeight truncates s to at most maxLines lines.
func clampHeight(s string, maxLines int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
