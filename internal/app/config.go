package app

import (
	"colorpick/internal/config"
	"colorpick/internal/picker"
	"colorpick/pkg/logging"
)

// Config holds the application configuration
type Config struct {
	// UI mode
	NoTUI bool

	// Debug settings
	Debug bool

	// LogLevel is "debug", "info", "warn" or "error". Debug wins over it.
	LogLevel string

	// ConfigPath, when set, replaces the layered config lookup.
	ConfigPath string

	// HostURL is a websocket URL for the host bridge. Empty means stdio in
	// headless mode and standalone in TUI mode.
	HostURL string

	// Standalone runs without any host bridge.
	Standalone bool

	// Color overrides the configured initial color.
	Color string

	// Loaded configuration
	ColorpickConfig *config.ColorpickConfig
}

// NewConfig creates a new application configuration
func NewConfig(noTUI, debug bool, configPath string) *Config {
	return &Config{
		NoTUI:      noTUI,
		Debug:      debug,
		ConfigPath: configPath,
	}
}

// InitialColor picks the starting color: the flag, then config, then the
// built-in default.
func (c *Config) InitialColor() string {
	if c.Color != "" {
		return c.Color
	}
	if c.ColorpickConfig != nil && c.ColorpickConfig.Picker.DefaultColor != "" {
		return c.ColorpickConfig.Picker.DefaultColor
	}
	return picker.DefaultColor
}

// AppName is announced to the host during the handshake.
func (c *Config) AppName() string {
	if c.ColorpickConfig != nil && c.ColorpickConfig.Server.Name != "" {
		return c.ColorpickConfig.Server.Name
	}
	return "Color Picker"
}

func (c *Config) appVersion() string {
	if c.ColorpickConfig != nil && c.ColorpickConfig.Server.Version != "" {
		return c.ColorpickConfig.Server.Version
	}
	return "dev"
}

// BridgeURL is the host bridge URL from the flag or the config file.
func (c *Config) BridgeURL() string {
	if c.HostURL != "" {
		return c.HostURL
	}
	if c.ColorpickConfig != nil {
		return c.ColorpickConfig.Bridge.URL
	}
	return ""
}

func (c *Config) logLevel() logging.LogLevel {
	if c.Debug {
		return logging.LevelDebug
	}
	return logging.ParseLevel(c.LogLevel)
}
