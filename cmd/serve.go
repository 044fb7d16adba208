package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"colorpick/internal/config"
	"colorpick/internal/server"
	"colorpick/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	serveTransport string
	serveHost      string
	servePort      int
)

// serveCmd starts the MCP server that exposes the picker tool and document.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the color picker MCP server",
	Long: `Starts an MCP server exposing the "color-picker" tool and the
ui://color-picker/mcp-app.html document that MCP Apps hosts embed.

Transports:
  stdio            - for hosts that launch colorpick as a subprocess (default)
  streamable-http  - serves on http://<host>:<port>/mcp
  sse              - serves on http://<host>:<port>/sse

Flags override the transport, host and port from config.yaml.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol on stdio.
	logging.InitForCLI(cliLogLevel(), os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Server.Transport = serveTransport
	}
	if flags.Changed("host") {
		cfg.Server.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.ConfigFrom(cfg))
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}
	logging.Info("Serve", "%s %s listening on %s", cfg.Server.Name, cfg.Server.Version, srv.Endpoint())

	select {
	case err := <-srv.Errors():
		if err != nil {
			logging.Error("Serve", err, "MCP server stopped")
			return err
		}
		return nil
	case <-ctx.Done():
		logging.Info("Serve", "Shutting down")
		return srv.Stop(context.Background())
	}
}

// loadConfig honours --config, falling back to the layered lookup.
func loadConfig() (config.ColorpickConfig, error) {
	if configPath != "" {
		cfg, err := config.LoadConfigFromPath(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load configuration from path %s: %w", configPath, err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveTransport, "transport", config.MCPTransportStdio, "MCP transport (stdio, streamable-http, sse)")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind HTTP transports to")
	serveCmd.Flags().IntVar(&servePort, "port", 3001, "Port for HTTP transports")
}
