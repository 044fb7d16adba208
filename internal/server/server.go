package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"colorpick/internal/config"
	"colorpick/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Config selects the transport and identity of the server.
type Config struct {
	Name         string
	Version      string
	Transport    string
	Host         string
	Port         int
	DefaultColor string

	// Stdin and Stdout back the stdio transport; nil means os.Stdin/os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer
}

// ConfigFrom builds a server Config from loaded configuration.
func ConfigFrom(cfg config.ColorpickConfig) Config {
	return Config{
		Name:         cfg.Server.Name,
		Version:      cfg.Server.Version,
		Transport:    cfg.Server.Transport,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		DefaultColor: cfg.Picker.DefaultColor,
	}
}

// Server exposes the color picker tool and its document over MCP.
type Server struct {
	config Config
	server *mcpserver.MCPServer

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	sseServer  *mcpserver.SSEServer
	httpServer *mcpserver.StreamableHTTPServer
	errCh      chan error
}

// New creates a server with the tool and resource registered. Nothing is
// served until Start.
func New(cfg Config) *Server {
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 3001
	}
	if cfg.Transport == "" {
		cfg.Transport = config.MCPTransportStdio
	}
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = "#6366f1"
	}

	s := &Server{config: cfg}

	hooks := &mcpserver.Hooks{}
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, message any, err error) {
		logging.Warn("Server", "%s failed: %v", method, err)
	})
	hooks.AddOnRegisterSession(func(ctx context.Context, session mcpserver.ClientSession) {
		logging.Debug("Server", "Client session %s registered", session.SessionID())
	})

	s.server = mcpserver.NewMCPServer(
		cfg.Name,
		cfg.Version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithRecovery(),
		mcpserver.WithHooks(hooks),
	)
	s.register(s.server)
	return s
}

// MCPServer returns the underlying server, for in-process clients.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.server
}

// Endpoint returns the URL clients connect to, or "stdio".
func (s *Server) Endpoint() string {
	switch s.config.Transport {
	case config.MCPTransportSSE:
		return fmt.Sprintf("http://%s:%d/sse", s.config.Host, s.config.Port)
	case config.MCPTransportStreamableHTTP:
		return fmt.Sprintf("http://%s:%d/mcp", s.config.Host, s.config.Port)
	default:
		return config.MCPTransportStdio
	}
}

// Start serves on the configured transport in the background. Serving
// errors are delivered on Errors.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errCh != nil {
		return fmt.Errorf("server already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancelFunc = cancel
	s.errCh = make(chan error, 1)
	errCh := s.errCh

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	switch s.config.Transport {
	case config.MCPTransportStdio:
		stdin, stdout := s.config.Stdin, s.config.Stdout
		if stdin == nil {
			stdin = os.Stdin
		}
		if stdout == nil {
			stdout = os.Stdout
		}
		logging.Info("Server", "Serving MCP over stdio")
		stdioServer := mcpserver.NewStdioServer(s.server)
		go func() {
			err := stdioServer.Listen(ctx, stdin, stdout)
			if errors.Is(err, context.Canceled) {
				err = nil
			}
			errCh <- err
		}()

	case config.MCPTransportSSE:
		s.sseServer = mcpserver.NewSSEServer(
			s.server,
			mcpserver.WithBaseURL(fmt.Sprintf("http://%s", addr)),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		logging.Info("Server", "Serving MCP over SSE on %s", s.Endpoint())
		go func() {
			errCh <- ignoreClosed(sseServer.Start(addr))
		}()

	case config.MCPTransportStreamableHTTP:
		s.httpServer = mcpserver.NewStreamableHTTPServer(s.server, mcpserver.WithEndpointPath("/mcp"))
		httpServer := s.httpServer
		logging.Info("Server", "Serving MCP over streamable HTTP on %s", s.Endpoint())
		go func() {
			errCh <- ignoreClosed(httpServer.Start(addr))
		}()

	default:
		cancel()
		s.errCh = nil
		return fmt.Errorf("unsupported transport %q", s.config.Transport)
	}

	return nil
}

// Errors receives the serve loop's result once it ends. A nil value means a
// clean shutdown.
func (s *Server) Errors() <-chan error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errCh
}

// Stop shuts the transport down, waiting up to 5s for HTTP connections.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.errCh == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}
	cancel := s.cancelFunc
	sseServer := s.sseServer
	httpServer := s.httpServer
	s.mu.Unlock()

	logging.Info("Server", "Stopping MCP server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()

	var err error
	if sseServer != nil {
		err = sseServer.Shutdown(shutdownCtx)
	}
	if httpServer != nil {
		err = httpServer.Shutdown(shutdownCtx)
	}
	if err != nil {
		logging.Error("Server", err, "Error shutting down HTTP transport")
	}

	s.mu.Lock()
	s.sseServer = nil
	s.httpServer = nil
	s.mu.Unlock()
	return err
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
