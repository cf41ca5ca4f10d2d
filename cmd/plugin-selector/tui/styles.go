package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// ChecklistMinWidth is the narrowest the plugin checklist pane gets.
const ChecklistMinWidth = 28

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Page header styles.
var (
	// TitleStyle is used for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	// SubtitleStyle is used for the line under the title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// Pane styles.
var (
	// PaneStyle frames an unfocused pane.
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// FocusedPaneStyle frames the pane holding keyboard focus.
	FocusedPaneStyle = PaneStyle.
				BorderForeground(colorBlue)

	// HeaderStyle is used for pane titles.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// InvalidTagStyle marks the editor title while the text is not a JSON array.
	InvalidTagStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Italic(true)
)

// Checklist styles.
var (
	// SelectedStyle is used for checked items.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// UnselectedStyle is used for unchecked items.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// SelectedMarkerStyle is used for the chevron after selected rows.
	SelectedMarkerStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// VersionStyle is used for the version next to each plugin name.
	VersionStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// FilterPromptStyle is used for the "/" filter prompt.
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(colorYellow)
)

// Copy button styles.
var (
	// ButtonStyle is the copy button when the editor has focus.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorText).
			Padding(0, 2)

	// ButtonDimStyle is the copy button otherwise.
	ButtonDimStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 2)
)

// Toast styles, one per notification level.
var (
	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface1).
			Padding(0, 1)

	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorGreen).
				Padding(0, 1)

	ToastWarningStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorYellow).
				Padding(0, 1)

	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorRed).
			Padding(0, 1)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for modal overlays.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// OverlayTitleStyle is used for the title text in overlays.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// OverlayScrollHintStyle is used for scroll indicators in overlays.
	OverlayScrollHintStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)
)
