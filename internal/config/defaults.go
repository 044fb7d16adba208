package config

// GetDefaultConfig returns the built-in configuration that user and project
// files are layered on.
func GetDefaultConfig() ColorpickConfig {
	return ColorpickConfig{
		Server: ServerConfig{
			Name:      "Color Picker MCP App",
			Version:   "1.0.0",
			Transport: MCPTransportStdio,
			Host:      "localhost",
			Port:      3001,
		},
		Picker: PickerConfig{
			DefaultColor: "#6366f1",
		},
		UI: UIConfig{
			Theme: ThemeAuto,
		},
	}
}
