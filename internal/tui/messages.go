package tui

import (
	"colorpick/internal/appbridge"
	"colorpick/internal/picker"
	"colorpick/pkg/logging"
)

// hostEventMsg carries a bridge callback onto the Bubble Tea loop.
type hostEventMsg struct {
	f func()
}

type logEntryMsg struct {
	entry logging.LogEntry
}

type clearStatusMsg struct {
	id int
}

// HostConnectedMsg is sent once the bridge handshake completes. Notifier
// receives model-context updates from then on.
type HostConnectedMsg struct {
	Host     string
	Notifier picker.Notifier
	Context  *appbridge.HostContext
}

// HostDisconnectedMsg is sent when the bridge session ends. Err is nil on a
// clean shutdown.
type HostDisconnectedMsg struct {
	Err error
}
