package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// statusClearAfter is how long transient status messages stay visible.
	statusClearAfter = 3 * time.Second

	// Panel bounds in terminal cells.
	minPanelWidth  = 16
	maxPanelWidth  = 48
	minPanelHeight = 6
	maxPanelHeight = 14

	// Host safe-area insets are in CSS pixels; these approximate one cell.
	pixelsPerColumn = 8
	pixelsPerRow    = 16

	// panelCell fills a panel or slider cell with its background color.
	panelCell = " "
	// cursorGlyph marks the selection inside the panel.
	cursorGlyph = "+"
	// hueMarker points at the selected hue below the slider.
	hueMarker = "^"
)

const (
	IconCheck   = "✔"
	IconCross   = "✘"
	IconInfo    = "ℹ"
	IconPalette = "🎨"
)

// Accent variables looked up in the host's style map, most specific first.
var accentVariables = []string{
	"--color-accent",
	"--color-ring-primary",
	"--color-text-info",
}

var defaultAccent = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"}).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#404040", Dark: "#B0B0B0"})

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#A0A0A0", Dark: "#505050"}).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#707070", Dark: "#808080"}).
			Italic(true)

	statusBarBaseStyle = lipgloss.NewStyle().
				Padding(0, 1)

	statusInfoStyle = statusBarBaseStyle.
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}).
			Background(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#303030"})

	statusSuccessStyle = statusBarBaseStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#1B5E20"})

	statusErrorStyle = statusBarBaseStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
				Background(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#B71C1C"})
)
