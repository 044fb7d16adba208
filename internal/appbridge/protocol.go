package appbridge

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCP Apps methods exchanged between an embedded app and its host.
const (
	MethodInitialize         = "ui/initialize"
	MethodInitialized        = "ui/notifications/initialized"
	MethodToolInput          = "ui/notifications/tool-input"
	MethodToolResult         = "ui/notifications/tool-result"
	MethodHostContextChanged = "ui/notifications/host-context-changed"
	MethodResourceTeardown   = "ui/resource-teardown"
	MethodUpdateModelContext = "ui/update-model-context"
	MethodPing               = "ping"
)

// HostContext is the presentation state a host shares with the app.
type HostContext struct {
	Theme          string          `json:"theme,omitempty"`
	Styles         *HostStyles     `json:"styles,omitempty"`
	SafeAreaInsets *SafeAreaInsets `json:"safeAreaInsets,omitempty"`
}

// HostStyles carries CSS custom properties and font declarations.
type HostStyles struct {
	Variables map[string]string `json:"variables,omitempty"`
	CSS       *HostCSS          `json:"css,omitempty"`
}

// HostCSS holds raw CSS snippets supplied by the host.
type HostCSS struct {
	Fonts string `json:"fonts,omitempty"`
}

// SafeAreaInsets are pixel insets the app should keep clear.
type SafeAreaInsets struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// TeardownResult is the empty acknowledgement returned for ui/resource-teardown.
type TeardownResult struct{}

type initializeParams struct {
	AppInfo         mcp.Implementation `json:"appInfo"`
	AppCapabilities map[string]any     `json:"appCapabilities"`
	ProtocolVersion string             `json:"protocolVersion"`
}

type initializeResult struct {
	ProtocolVersion  string             `json:"protocolVersion"`
	HostInfo         mcp.Implementation `json:"hostInfo"`
	HostCapabilities map[string]any     `json:"hostCapabilities,omitempty"`
	HostContext      *HostContext       `json:"hostContext,omitempty"`
}

type toolInputParams struct {
	Arguments map[string]any `json:"arguments,omitempty"`
}

type updateModelContextParams struct {
	Content []mcp.Content `json:"content"`
}

// header classifies an inbound message before its params or result are
// decoded. Responses are decoded again as transport.JSONRPCResponse.
type header struct {
	ID     *mcp.RequestId  `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
}

func (h *header) isRequest() bool      { return h.Method != "" && h.ID != nil }
func (h *header) isNotification() bool { return h.Method != "" && h.ID == nil }
func (h *header) isResponse() bool     { return h.Method == "" && h.ID != nil }
