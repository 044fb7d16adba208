package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"colorpick/internal/color"
	"colorpick/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/colorpick"
	projectConfigDir = ".colorpick"
	configFileName   = "config.yaml"
)

// LoadConfig loads the colorpick configuration by layering default, user, and project settings.
func LoadConfig() (ColorpickConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = overlayFile(config, userConfigPath)
		if err != nil {
			return ColorpickConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = overlayFile(config, projectConfigPath)
		if err != nil {
			return ColorpickConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := config.Validate(); err != nil {
		return ColorpickConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath layers a single file over the defaults, skipping the
// user and project locations. path is either the file itself or a directory
// holding config.yaml; it must exist.
func LoadConfigFromPath(path string) (ColorpickConfig, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, configFileName)
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return ColorpickConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := config.Validate(); err != nil {
		return ColorpickConfig{}, err
	}
	return config, nil
}

func overlayFile(base ColorpickConfig, path string) (ColorpickConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return ColorpickConfig{}, err
	}
	logging.Debug("Config", "Applied configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a ColorpickConfig from a YAML file.
func loadConfigFromFile(filePath string) (ColorpickConfig, error) {
	var config ColorpickConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ColorpickConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return ColorpickConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// overlay leave base untouched.
func mergeConfigs(base, overlay ColorpickConfig) ColorpickConfig {
	merged := base

	if overlay.Server.Name != "" {
		merged.Server.Name = overlay.Server.Name
	}
	if overlay.Server.Version != "" {
		merged.Server.Version = overlay.Server.Version
	}
	if overlay.Server.Transport != "" {
		merged.Server.Transport = overlay.Server.Transport
	}
	if overlay.Server.Host != "" {
		merged.Server.Host = overlay.Server.Host
	}
	if overlay.Server.Port != 0 {
		merged.Server.Port = overlay.Server.Port
	}

	if overlay.Picker.DefaultColor != "" {
		merged.Picker.DefaultColor = overlay.Picker.DefaultColor
	}
	if overlay.Bridge.URL != "" {
		merged.Bridge.URL = overlay.Bridge.URL
	}
	if overlay.UI.Theme != "" {
		merged.UI.Theme = overlay.UI.Theme
	}

	return merged
}

// Validate checks values that would otherwise fail late, at serve or pick time.
func (c ColorpickConfig) Validate() error {
	switch c.Server.Transport {
	case MCPTransportStdio, MCPTransportSSE, MCPTransportStreamableHTTP:
	default:
		return fmt.Errorf("unsupported server transport %q", c.Server.Transport)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if _, err := color.ParseHex(c.Picker.DefaultColor); err != nil {
		return fmt.Errorf("picker.defaultColor: %w", err)
	}
	switch c.UI.Theme {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("unsupported ui theme %q", c.UI.Theme)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
