package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"colorpick/internal/appbridge"
	"colorpick/pkg/logging"
)

// Mockable for tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Services holds the host bridge transport, if any.
type Services struct {
	// Transport is nil when running standalone.
	Transport appbridge.Transport
	// HostLabel names the host endpoint in status output.
	HostLabel string
}

// InitializeServices opens the host bridge. In TUI mode stdio belongs to the
// terminal, so without a URL the picker runs standalone.
func InitializeServices(ctx context.Context, cfg *Config) (*Services, error) {
	if cfg.Standalone {
		logging.Info("Bootstrap", "Running standalone without a host bridge")
		return &Services{}, nil
	}

	if url := cfg.BridgeURL(); url != "" {
		t, err := appbridge.DialWebsocket(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to host bridge at %s: %w", url, err)
		}
		logging.Info("Bootstrap", "Connected to host bridge at %s", url)
		return &Services{Transport: t, HostLabel: url}, nil
	}

	if !cfg.NoTUI {
		logging.Info("Bootstrap", "No host bridge URL configured, running standalone")
		return &Services{}, nil
	}

	return &Services{Transport: appbridge.NewStreamTransport(stdin, stdout), HostLabel: "stdio"}, nil
}

// Close releases the bridge transport.
func (s *Services) Close() error {
	if s == nil || s.Transport == nil {
		return nil
	}
	return s.Transport.Close()
}
