package tui

import (
	"strconv"

	"colorpick/internal/appbridge"
	"colorpick/internal/picker"
	"colorpick/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type focusArea int

const (
	focusPanel focusArea = iota
	focusHue
	focusHex
	focusRed
	focusGreen
	focusBlue
	focusCount
)

// Indexes into Model.inputs.
const (
	fieldHex = iota
	fieldRed
	fieldGreen
	fieldBlue
	fieldCount
)

// StatusType selects the status bar style.
type StatusType int

const (
	StatusInfo StatusType = iota
	StatusSuccess
	StatusError
)

// Options configures a Model.
type Options struct {
	// Title is shown in the header.
	Title string
	// InitialColor seeds the picker. Malformed values fall back to the default.
	InitialColor string
	// LogChannel, when set, feeds the status bar with log lines.
	LogChannel <-chan logging.LogEntry
	// Dark forces the dark palette; otherwise the terminal decides.
	Dark *bool
}

// Model is the Bubble Tea model for the picker. It must be used through a
// pointer because the controller keeps a reference to it as its view.
type Model struct {
	ctrl  *picker.Controller
	frame picker.Frame

	keys     KeyMap
	help     help.Model
	showHelp bool

	focus    focusArea
	inputs   [fieldCount]textinput.Model
	rendered [fieldCount]string

	width  int
	height int

	insets appbridge.SafeAreaInsets
	accent lipgloss.TerminalColor
	dark   bool

	hueDragging bool

	title      string
	host       string
	statusMsg  string
	statusType StatusType
	statusID   int
	lastLog    string
	logChannel <-chan logging.LogEntry

	quitting bool
}

var (
	_ tea.Model        = (*Model)(nil)
	_ picker.View      = (*Model)(nil)
	_ picker.Presenter = (*Model)(nil)
)

// New creates the model and its controller and performs the first render.
// Extra picker options are applied after the model's own view and presenter.
func New(opts Options, pickerOpts ...picker.Option) *Model {
	m := &Model{
		keys:       DefaultKeyMap(),
		help:       help.New(),
		title:      opts.Title,
		accent:     defaultAccent,
		dark:       lipgloss.HasDarkBackground(),
		logChannel: opts.LogChannel,
	}
	if m.title == "" {
		m.title = "Color Picker"
	}
	if opts.Dark != nil {
		m.setDark(*opts.Dark)
	}

	m.inputs[fieldHex] = newField("Hex ", 7)
	m.inputs[fieldRed] = newField("R ", 3)
	m.inputs[fieldGreen] = newField("G ", 3)
	m.inputs[fieldBlue] = newField("B ", 3)

	all := append([]picker.Option{picker.WithView(m), picker.WithPresenter(m)}, pickerOpts...)
	m.ctrl = picker.NewFromHex(opts.InitialColor, all...)
	m.ctrl.Render()
	return m
}

func newField(prompt string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = limit
	ti.Width = limit
	return ti
}

// Controller exposes the picker so callers can attach it to a bridge session.
func (m *Model) Controller() *picker.Controller {
	return m.ctrl
}

// Render implements picker.View. Every field is overwritten, including the
// one being edited, so the display always reflects canonical state.
func (m *Model) Render(f picker.Frame) {
	m.frame = f
	values := [fieldCount]string{
		f.Hex,
		strconv.Itoa(int(f.RGB.R)),
		strconv.Itoa(int(f.RGB.G)),
		strconv.Itoa(int(f.RGB.B)),
	}
	for i, v := range values {
		m.inputs[i].SetValue(v)
		m.rendered[i] = v
	}
}

// ApplyHostContext implements picker.Presenter. Only the parts present in
// hc are applied.
func (m *Model) ApplyHostContext(hc appbridge.HostContext) {
	switch hc.Theme {
	case "dark":
		m.setDark(true)
	case "light":
		m.setDark(false)
	}
	if hc.SafeAreaInsets != nil {
		m.insets = *hc.SafeAreaInsets
	}
	if hc.Styles == nil {
		return
	}
	for _, name := range accentVariables {
		value, ok := hc.Styles.Variables[name]
		if !ok {
			continue
		}
		if _, err := colorful.Hex(value); err != nil {
			logging.Debug("TUI", "Ignoring non-hex style variable %s=%q", name, value)
			continue
		}
		m.accent = lipgloss.Color(value)
		break
	}
	if hc.Styles.CSS != nil && hc.Styles.CSS.Fonts != "" {
		logging.Debug("TUI", "Host fonts are not applicable to a terminal")
	}
}

func (m *Model) setDark(dark bool) {
	m.dark = dark
	lipgloss.SetHasDarkBackground(dark)
}

// fieldFor maps a focus area to its input index, or -1.
func fieldFor(f focusArea) int {
	switch f {
	case focusHex:
		return fieldHex
	case focusRed:
		return fieldRed
	case focusGreen:
		return fieldGreen
	case focusBlue:
		return fieldBlue
	default:
		return -1
	}
}

// padding converts the host safe-area insets to cells.
func (m *Model) padding() (top, right, bottom, left int) {
	return m.insets.Top / pixelsPerRow,
		m.insets.Right / pixelsPerColumn,
		m.insets.Bottom / pixelsPerRow,
		m.insets.Left / pixelsPerColumn
}

// chromeRows is every row of the view that is not the panel: header, three
// spacers, slider, marker, bordered fields, status bar and help.
const chromeRows = 1 + 3 + 1 + 1 + 3 + 1 + 1 + 1

// panelSize is the panel's size in cells for the current window.
func (m *Model) panelSize() (w, h int) {
	top, right, bottom, left := m.padding()

	w = 32
	if m.width > 0 {
		w = m.width - left - right - 4
	}
	h = 10
	if m.height > 0 {
		h = m.height - top - bottom - chromeRows
	}
	return clampInt(w, minPanelWidth, maxPanelWidth), clampInt(h, minPanelHeight, maxPanelHeight)
}

// origin is the screen cell of the panel's top-left corner.
func (m *Model) origin() (x, y int) {
	top, _, _, left := m.padding()
	return left + 2, top + 2
}

// panelRect spans cell centers, so the first and last columns map to 0 and 1.
func (m *Model) panelRect() picker.Rect {
	x, y := m.origin()
	w, h := m.panelSize()
	return picker.Rect{X: float64(x), Y: float64(y), W: float64(w - 1), H: float64(h - 1)}
}

func (m *Model) hueRow() int {
	_, y := m.origin()
	_, h := m.panelSize()
	return y + h + 1
}

func (m *Model) inPanel(x, y int) bool {
	ox, oy := m.origin()
	w, h := m.panelSize()
	return x >= ox && x < ox+w && y >= oy && y < oy+h
}

func (m *Model) onHueSlider(x, y int) bool {
	ox, _ := m.origin()
	w, _ := m.panelSize()
	return y == m.hueRow() && x >= ox && x < ox+w
}

// hueAt maps a screen column to a hue in [0,360).
func (m *Model) hueAt(x int) float64 {
	ox, _ := m.origin()
	w, _ := m.panelSize()
	col := clampInt(x-ox, 0, w-1)
	return float64(col) / float64(w) * 360
}

// cursorCell is the panel cell holding the current selection.
func (m *Model) cursorCell() (col, row int) {
	w, h := m.panelSize()
	col = int(m.frame.HSV.S*float64(w-1) + 0.5)
	row = int((1-m.frame.HSV.V)*float64(h-1) + 0.5)
	return col, row
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
