package tui

// FocusZone identifies which pane currently has keyboard focus.
type FocusZone int

const (
	FocusChecklist FocusZone = iota
	FocusEditor              // JSON text area
)

// String returns the display name for a focus zone.
func (z FocusZone) String() string {
	switch z {
	case FocusChecklist:
		return "Plugins"
	case FocusEditor:
		return "Configuration"
	default:
		return "Unknown"
	}
}

// Action is what a checklist key press asks the root model to do.
type Action int

const (
	ActionNone        Action = iota
	ActionToggle             // toggle the plugin under the cursor
	ActionSelectAll          // add every plugin not yet selected
	ActionClear              // empty the selection
	ActionCopy               // copy the configuration
	ActionFocusEditor        // move focus to the editor
	ActionQuit
)

// --- Messages ---

// toastExpiredMsg fires when a toast's display time is over. id guards
// against clearing a newer toast.
type toastExpiredMsg struct{ id int }

// SelectionSummary carries counts for the status bar.
type SelectionSummary struct {
	Selected int
	Total    int
	Bytes    int
	Valid    bool
}
