package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// View renders the picker. Row positions must agree with origin and hueRow,
// which mouse handling relies on.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	top, _, _, left := m.padding()
	ox, _ := m.origin()
	indent := strings.Repeat(" ", ox)

	var lines []string
	for i := 0; i < top; i++ {
		lines = append(lines, "")
	}
	lines = append(lines, strings.Repeat(" ", left)+headerStyle.Render(IconPalette+" "+m.title), "")
	for _, row := range m.renderPanel() {
		lines = append(lines, indent+row)
	}
	lines = append(lines, "")
	lines = append(lines, indent+m.renderHueSlider(), indent+m.renderHueMarker(), "")
	lines = append(lines, lipgloss.NewStyle().PaddingLeft(ox).Render(m.renderFields()), "")
	lines = append(lines, m.renderStatusBar())
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// panelColor is the panel color at saturation s and value v: white blended
// toward the pure hue, then darkened toward black.
func panelColor(pure colorful.Color, s, v float64) colorful.Color {
	c := white.BlendRgb(pure, s)
	return colorful.Color{R: c.R * v, G: c.G * v, B: c.B * v}.Clamped()
}

// contrastFor picks a legible foreground for text drawn on bg.
func contrastFor(bg colorful.Color) lipgloss.Color {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

func (m *Model) renderPanel() []string {
	w, h := m.panelSize()
	pure := colorful.Hsv(m.frame.HSV.H, 1, 1)
	curCol, curRow := m.cursorCell()

	rows := make([]string, 0, h)
	for row := 0; row < h; row++ {
		v := 1 - float64(row)/float64(h-1)
		var b strings.Builder
		for col := 0; col < w; col++ {
			c := panelColor(pure, float64(col)/float64(w-1), v)
			style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
			glyph := panelCell
			if col == curCol && row == curRow {
				style = style.Foreground(contrastFor(c)).Bold(true)
				glyph = cursorGlyph
			}
			b.WriteString(style.Render(glyph))
		}
		rows = append(rows, b.String())
	}
	return rows
}

func (m *Model) renderHueSlider() string {
	w, _ := m.panelSize()
	var b strings.Builder
	for col := 0; col < w; col++ {
		c := colorful.Hsv(float64(col)/float64(w)*360, 1, 1)
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(panelCell))
	}
	return b.String()
}

func (m *Model) renderHueMarker() string {
	w, _ := m.panelSize()
	col := clampInt(int(m.frame.HSV.H/360*float64(w)), 0, w-1)
	style := lipgloss.NewStyle().Foreground(m.accent)
	if m.focus == focusHue {
		style = style.Bold(true)
	}
	marker := strings.Repeat(" ", col) + style.Render(hueMarker)
	if m.focus == focusHue {
		marker += "  " + hintStyle.Render(m.frame.HSV.String())
	}
	return marker
}

func (m *Model) renderFields() string {
	boxes := make([]string, 0, fieldCount+1)
	for i := range m.inputs {
		style := fieldStyle
		if fieldFor(m.focus) == i {
			style = style.BorderForeground(m.accent)
		}
		boxes = append(boxes, style.Render(m.inputs[i].View()))
	}
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(m.frame.Swatch)).
		Width(8).
		Height(3).
		Render("")
	boxes = append(boxes, " ", swatch)
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m *Model) renderStatusBar() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	style := statusInfoStyle
	text := m.statusMsg
	switch {
	case text != "" && m.statusType == StatusSuccess:
		style = statusSuccessStyle
	case text != "" && m.statusType == StatusError:
		style = statusErrorStyle
	case text == "":
		text = m.lastLog
	}

	right := "standalone"
	if m.host != "" {
		right = "host: " + m.host
	}
	right = labelStyle.Render(m.frame.Hex) + "  " + right

	// Two cells of padding from the style.
	avail := width - 2 - lipgloss.Width(right) - 1
	if avail < 0 {
		avail = 0
	}
	left := runewidth.FillRight(runewidth.Truncate(text, avail, "…"), avail)
	return style.Width(width).Render(left + " " + right)
}
