package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/plugin-selector/internal/catalog"
)

// ChecklistItem is one catalog plugin row.
type ChecklistItem struct {
	Name     string
	Version  string
	Selected bool
}

// Checklist lists every catalog plugin with its selection state. It does not
// own the selection: the root model toggles plugins and pushes the result
// back with SetSelected.
type Checklist struct {
	items     []ChecklistItem
	visible   []int // indices into items that match the filter
	cursor    int   // index into visible
	offset    int   // scroll offset for long lists
	height    int   // number of visible rows
	width     int
	focused   bool
	filtering bool // true while the filter input has focus
	filter    textinput.Model
}

// NewChecklist creates a checklist with one row per catalog plugin.
func NewChecklist(cat *catalog.Catalog) Checklist {
	items := make([]ChecklistItem, 0, cat.Len())
	for _, d := range cat.Entries() {
		items = append(items, ChecklistItem{Name: d.Name, Version: d.Version})
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter plugins"
	ti.CharLimit = 64
	ti.PromptStyle = FilterPromptStyle

	c := Checklist{
		items:  items,
		height: 20,
		filter: ti,
	}
	c.applyFilter()
	return c
}

// SetSelected refreshes every row's checkbox from the selection.
func (c *Checklist) SetSelected(selected func(name string) bool) {
	for i := range c.items {
		c.items[i].Selected = selected(c.items[i].Name)
	}
}

// SetFocused sets whether the checklist receives key presses.
func (c *Checklist) SetFocused(f bool) {
	c.focused = f
}

// SetSize sets the space available for rows.
func (c *Checklist) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.filter.Width = width - 4
	c.clampScroll()
}

// Current returns the plugin name under the cursor.
func (c Checklist) Current() (string, bool) {
	if len(c.visible) == 0 {
		return "", false
	}
	return c.items[c.visible[c.cursor]].Name, true
}

// Filtering reports whether the filter input has focus.
func (c Checklist) Filtering() bool {
	return c.filtering
}

// FilterText returns the active filter.
func (c Checklist) FilterText() string {
	return c.filter.Value()
}

// SelectedCount returns the number of checked rows.
func (c Checklist) SelectedCount() int {
	n := 0
	for _, it := range c.items {
		if it.Selected {
			n++
		}
	}
	return n
}

// TotalCount returns the number of rows, ignoring the filter.
func (c Checklist) TotalCount() int {
	return len(c.items)
}

// Update handles key messages and reports what the root model should do.
func (c Checklist) Update(msg tea.Msg) (Checklist, Action, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if c.filtering {
			var cmd tea.Cmd
			c.filter, cmd = c.filter.Update(msg)
			return c, ActionNone, cmd
		}
		return c, ActionNone, nil
	}

	if c.filtering {
		return c.updateFilter(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		c.moveCursor(-1)
	case "down", "j":
		c.moveCursor(1)
	case "home", "g":
		c.cursor = 0
		c.clampScroll()
	case "end", "G":
		c.cursor = len(c.visible) - 1
		if c.cursor < 0 {
			c.cursor = 0
		}
		c.clampScroll()
	case " ", "enter", "x":
		if len(c.visible) > 0 {
			return c, ActionToggle, nil
		}
	case "a":
		return c, ActionSelectAll, nil
	case "n":
		return c, ActionClear, nil
	case "y", "c":
		return c, ActionCopy, nil
	case "right", "l":
		return c, ActionFocusEditor, nil
	case "/":
		c.filtering = true
		return c, ActionNone, c.filter.Focus()
	case "esc":
		if c.filter.Value() != "" {
			c.clearFilter()
			return c, ActionNone, nil
		}
		return c, ActionQuit, nil
	case "q":
		return c, ActionQuit, nil
	}
	return c, ActionNone, nil
}

func (c Checklist) updateFilter(msg tea.KeyMsg) (Checklist, Action, tea.Cmd) {
	switch msg.String() {
	case "esc":
		c.clearFilter()
		return c, ActionNone, nil
	case "enter":
		c.filtering = false
		c.filter.Blur()
		return c, ActionNone, nil
	case "up", "down":
		if msg.String() == "up" {
			c.moveCursor(-1)
		} else {
			c.moveCursor(1)
		}
		return c, ActionNone, nil
	}

	var cmd tea.Cmd
	c.filter, cmd = c.filter.Update(msg)
	c.applyFilter()
	return c, ActionNone, cmd
}

// View renders the checklist rows with scrolling support.
func (c Checklist) View() string {
	var b strings.Builder

	if c.filtering || c.filter.Value() != "" {
		b.WriteString(c.filter.View() + "\n")
	}

	if len(c.items) == 0 {
		b.WriteString("(no plugins in catalog)")
		return b.String()
	}
	if len(c.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(colorOverlay0).Render("(no plugins match)"))
		return b.String()
	}

	rows := c.rowCapacity()
	hasAbove := c.offset > 0
	hasBelow := c.offset+rows < len(c.visible)
	if hasAbove {
		rows--
	}
	if hasBelow {
		rows--
	}
	if rows < 1 {
		rows = 1
	}

	dimStyle := lipgloss.NewStyle().Foreground(colorOverlay0)
	if hasAbove {
		b.WriteString(dimStyle.Render("  ↑ more") + "\n")
	}

	end := c.offset + rows
	if end > len(c.visible) {
		end = len(c.visible)
	}
	for vi := c.offset; vi < end; vi++ {
		it := c.items[c.visible[vi]]

		cursor := "  "
		if c.focused && vi == c.cursor {
			cursor = "> "
		}

		var checkbox string
		if it.Selected {
			checkbox = SelectedStyle.Render("[x]")
		} else {
			checkbox = UnselectedStyle.Render("[ ]")
		}

		name := it.Name
		if c.focused && vi == c.cursor {
			name = lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(name)
		} else if !c.focused {
			name = dimStyle.Render(name)
		}

		line := cursor + checkbox + " " + name
		if it.Version != "" {
			line += " " + VersionStyle.Render(it.Version)
		}
		if it.Selected {
			line += " " + SelectedMarkerStyle.Render("›")
		}
		b.WriteString(line + "\n")
	}

	if hasBelow {
		b.WriteString(dimStyle.Render("  ↓ more") + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// --- Internal helpers ---

// rowCapacity is the number of lines left for rows once the filter line is drawn.
func (c Checklist) rowCapacity() int {
	h := c.height
	if c.filtering || c.filter.Value() != "" {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (c *Checklist) moveCursor(dir int) {
	next := c.cursor + dir
	if next < 0 || next >= len(c.visible) {
		return
	}
	c.cursor = next
	c.clampScroll()
}

func (c *Checklist) clearFilter() {
	c.filter.SetValue("")
	c.filter.Blur()
	c.filtering = false
	c.applyFilter()
}

// applyFilter recomputes the visible rows, keeping the cursor on the same
// plugin when it is still visible.
func (c *Checklist) applyFilter() {
	current, hadCurrent := c.Current()

	query := strings.ToLower(strings.TrimSpace(c.filter.Value()))
	c.visible = c.visible[:0]
	for i, it := range c.items {
		if query == "" || strings.Contains(strings.ToLower(it.Name), query) {
			c.visible = append(c.visible, i)
		}
	}

	c.cursor = 0
	if hadCurrent {
		for vi, idx := range c.visible {
			if c.items[idx].Name == current {
				c.cursor = vi
				break
			}
		}
	}
	c.offset = 0
	c.clampScroll()
}

// clampScroll ensures the cursor is within the visible window by adjusting
// the scroll offset.
func (c *Checklist) clampScroll() {
	rows := c.rowCapacity()
	total := len(c.visible)

	// When rows overflow, scroll indicators take up to 2 lines.
	effective := rows
	if total > rows {
		effective -= 2
	}
	if effective < 1 {
		effective = 1
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+effective {
		c.offset = c.cursor - effective + 1
	}
	maxOffset := total - effective
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
}
