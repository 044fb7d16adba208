package tui

import (
	"fmt"
	"time"

	"colorpick/internal/picker"
	"colorpick/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Init starts the log listener and the cursor blink.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(listenForLogs(m.logChannel), textinput.Blink)
}

// Update handles one message. The controller only runs from here.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case hostEventMsg:
		if msg.f != nil {
			msg.f()
		}
		return m, nil

	case HostConnectedMsg:
		m.ctrl.SetNotifier(msg.Notifier)
		m.host = msg.Host
		if msg.Context != nil {
			m.ctrl.OnHostContextChanged(*msg.Context)
		}
		return m, m.setStatusMessage(fmt.Sprintf("%s Connected to %s", IconCheck, msg.Host), StatusSuccess, statusClearAfter)

	case HostDisconnectedMsg:
		m.ctrl.SetNotifier(nil)
		m.host = ""
		if msg.Err != nil {
			return m, m.setStatusMessage(fmt.Sprintf("%s Host disconnected: %v", IconCross, msg.Err), StatusError, statusClearAfter)
		}
		return m, m.setStatusMessage(fmt.Sprintf("%s Host closed the picker", IconInfo), StatusInfo, statusClearAfter)

	case logEntryMsg:
		m.lastLog = fmt.Sprintf("[%s] %s: %s", msg.entry.Timestamp.Format("15:04:05"), msg.entry.Subsystem, msg.entry.Message)
		if msg.entry.Err != nil {
			m.lastLog += ": " + msg.entry.Err.Error()
		}
		return m, listenForLogs(m.logChannel)

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other input bookkeeping.
	if i := fieldFor(m.focus); i >= 0 {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return tea.Quit
	}

	if i := fieldFor(m.focus); i >= 0 {
		return m.handleFieldKey(i, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	case key.Matches(msg, m.keys.Copy):
		return m.copyHex()
	case key.Matches(msg, m.keys.ToggleDark):
		m.setDark(!m.dark)
		return nil
	case key.Matches(msg, m.keys.Tab):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.ShiftTab):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusPanel:
		m.handlePanelKey(msg)
	case focusHue:
		m.handleHueKey(msg)
	}
	return nil
}

// handleFieldKey routes keys while a text field has focus. Letters go to the
// field, so only navigation and commit keys are interpreted.
func (m *Model) handleFieldKey(i int, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Tab):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.ShiftTab):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Enter):
		m.commitField(i)
		return nil
	case key.Matches(msg, m.keys.Esc):
		m.inputs[i].SetValue(m.rendered[i])
		return m.setFocus(focusPanel)
	}
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return cmd
}

// handlePanelKey moves the panel cursor one cell, as if the user clicked the
// neighbouring cell.
func (m *Model) handlePanelKey(msg tea.KeyMsg) {
	col, row := m.cursorCell()
	switch {
	case key.Matches(msg, m.keys.Left):
		col--
	case key.Matches(msg, m.keys.Right):
		col++
	case key.Matches(msg, m.keys.Up):
		row--
	case key.Matches(msg, m.keys.Down):
		row++
	default:
		return
	}
	w, h := m.panelSize()
	col = clampInt(col, 0, w-1)
	row = clampInt(row, 0, h-1)

	rect := m.panelRect()
	m.ctrl.PointerDown(picker.Point{X: rect.X + float64(col), Y: rect.Y + float64(row)}, rect)
	m.ctrl.PointerUp()
}

func (m *Model) handleHueKey(msg tea.KeyMsg) {
	h := m.ctrl.HSV().H
	switch {
	case key.Matches(msg, m.keys.Left):
		m.ctrl.SetHue(h - 1)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.SetHue(h + 1)
	case key.Matches(msg, m.keys.CoarseLeft):
		m.ctrl.SetHue(h - 10)
	case key.Matches(msg, m.keys.CoarseRight):
		m.ctrl.SetHue(h + 10)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	p := picker.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		switch {
		case m.inPanel(msg.X, msg.Y):
			cmd := m.setFocus(focusPanel)
			m.ctrl.PointerDown(p, m.panelRect())
			return cmd
		case m.onHueSlider(msg.X, msg.Y):
			cmd := m.setFocus(focusHue)
			m.hueDragging = true
			m.ctrl.SetHue(m.hueAt(msg.X))
			return cmd
		}

	case tea.MouseActionMotion:
		switch {
		case m.ctrl.Captured():
			m.ctrl.PointerMove(p, m.panelRect())
		case m.hueDragging:
			m.ctrl.SetHue(m.hueAt(msg.X))
		}

	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
		m.hueDragging = false
	}
	return nil
}

// setFocus commits and blurs the field losing focus, then focuses next.
func (m *Model) setFocus(next focusArea) tea.Cmd {
	if i := fieldFor(m.focus); i >= 0 {
		m.inputs[i].Blur()
		m.commitField(i)
	}
	m.focus = next
	if i := fieldFor(next); i >= 0 {
		return m.inputs[i].Focus()
	}
	return nil
}

// commitField applies a field whose text differs from what was last rendered.
func (m *Model) commitField(i int) {
	if m.inputs[i].Value() == m.rendered[i] {
		return
	}
	if i == fieldHex {
		m.ctrl.CommitHex(m.inputs[fieldHex].Value())
	} else {
		m.ctrl.CommitRGB(
			m.inputs[fieldRed].Value(),
			m.inputs[fieldGreen].Value(),
			m.inputs[fieldBlue].Value(),
		)
	}
	// Rejected text falls back to the last valid value.
	if m.inputs[i].Value() != m.rendered[i] {
		m.inputs[i].SetValue(m.rendered[i])
	}
}

func (m *Model) copyHex() tea.Cmd {
	hex := m.ctrl.Hex()
	if err := clipboard.WriteAll(hex); err != nil {
		logging.Error("TUI", err, "Failed to copy color to clipboard")
		return m.setStatusMessage(fmt.Sprintf("%s Failed to copy: %v", IconCross, err), StatusError, statusClearAfter)
	}
	return m.setStatusMessage(fmt.Sprintf("%s Copied %s to clipboard", IconCheck, hex), StatusSuccess, statusClearAfter)
}

// setStatusMessage shows msg and schedules its removal. A newer message
// supersedes the pending clear of an older one.
func (m *Model) setStatusMessage(msg string, t StatusType, clearAfter time.Duration) tea.Cmd {
	m.statusID++
	m.statusMsg = msg
	m.statusType = t
	id := m.statusID
	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// listenForLogs waits for the next log entry. A closed channel ends the
// listener.
func listenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}
