package app

import (
	"context"
	"fmt"
	"os"

	"colorpick/internal/config"
	"colorpick/pkg/logging"
)

// Application is the main application structure that bootstraps and runs the picker
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration and opens the host bridge.
func NewApplication(ctx context.Context, cfg *Config) (*Application, error) {
	// stdout may carry the bridge protocol, so CLI logs go to stderr.
	logging.InitForCLI(cfg.logLevel(), os.Stderr)

	var loaded config.ColorpickConfig
	var err error

	if cfg.ConfigPath != "" {
		loaded, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Info("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		loaded, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}
	cfg.ColorpickConfig = &loaded

	services, err := InitializeServices(ctx, cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	defer func() { _ = a.services.Close() }()

	if a.config.NoTUI {
		return runHeadlessMode(ctx, a.config, a.services)
	}
	return runTUIMode(ctx, a.config, a.services)
}
