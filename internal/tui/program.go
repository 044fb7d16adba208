package tui

import (
	"colorpick/internal/appbridge"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram wraps m in a full-screen program that reports mouse motion, so
// panel drags keep tracking outside the panel.
func NewProgram(m *Model, opts ...tea.ProgramOption) *tea.Program {
	all := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}, opts...)
	return tea.NewProgram(m, all...)
}

// Dispatcher delivers bridge callbacks to p's event loop. Once the program
// has exited, callbacks are dropped.
func Dispatcher(p *tea.Program) appbridge.Dispatcher {
	return func(f func()) {
		p.Send(hostEventMsg{f: f})
	}
}
