package config

// ColorpickConfig is the top-level configuration structure for colorpick.
type ColorpickConfig struct {
	Server ServerConfig `yaml:"server"`
	Picker PickerConfig `yaml:"picker"`
	Bridge BridgeConfig `yaml:"bridge"`
	UI     UIConfig     `yaml:"ui"`
}

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// ServerConfig defines how the MCP server announces and exposes itself.
type ServerConfig struct {
	Name      string `yaml:"name,omitempty"`      // Implementation name sent in initialize (default: "Color Picker MCP App")
	Version   string `yaml:"version,omitempty"`   // Implementation version (default: "1.0.0")
	Transport string `yaml:"transport,omitempty"` // stdio, sse or streamable-http (default: stdio)
	Host      string `yaml:"host,omitempty"`      // Host to bind HTTP transports to (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Port for HTTP transports (default: 3001)
}

// PickerConfig holds picker defaults.
type PickerConfig struct {
	DefaultColor string `yaml:"defaultColor,omitempty"` // Initial color when the host supplies none
}

// BridgeConfig locates the host an interactive picker connects to.
type BridgeConfig struct {
	URL string `yaml:"url,omitempty"` // ws:// or wss:// host endpoint; empty means stdin/stdout when headless
}

// UIConfig holds terminal UI preferences.
type UIConfig struct {
	Theme string `yaml:"theme,omitempty"` // "auto", "light" or "dark"
}

// Theme names accepted in UIConfig.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)
