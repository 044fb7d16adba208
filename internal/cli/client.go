package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"colorpick/internal/server"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultEndpoint is where `colorpick serve --transport streamable-http` listens.
const DefaultEndpoint = "http://localhost:3001/mcp"

// CLIClient provides a simplified MCP client for CLI commands
type CLIClient struct {
	endpoint string
	client   client.MCPClient
	timeout  time.Duration
}

// NewCLIClientWithEndpoint creates a new CLI client with a specific endpoint
func NewCLIClientWithEndpoint(endpoint string) *CLIClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &CLIClient{
		endpoint: endpoint,
		timeout:  30 * time.Second,
	}
}

// NewCLIClientFromMCP wraps an already started, uninitialized client.
func NewCLIClientFromMCP(c client.MCPClient) *CLIClient {
	return &CLIClient{endpoint: "in-process", client: c, timeout: 30 * time.Second}
}

// Endpoint returns the server URL.
func (c *CLIClient) Endpoint() string {
	return c.endpoint
}

// Connect establishes the connection and performs the MCP handshake. An
// endpoint ending in /sse uses the SSE transport, anything else streamable HTTP.
func (c *CLIClient) Connect(ctx context.Context) error {
	if c.client == nil {
		var mcpClient *client.Client
		var err error
		if strings.HasSuffix(c.endpoint, "/sse") {
			mcpClient, err = client.NewSSEMCPClient(c.endpoint)
		} else {
			mcpClient, err = client.NewStreamableHttpClient(c.endpoint)
		}
		if err != nil {
			return fmt.Errorf("failed to create client for %s: %w", c.endpoint, err)
		}
		if err := mcpClient.Start(ctx); err != nil {
			return fmt.Errorf("failed to start client for %s: %w", c.endpoint, err)
		}
		c.client = mcpClient
	}

	if err := c.initialize(ctx); err != nil {
		c.Close()
		return fmt.Errorf("initialization failed: %w", err)
	}
	return nil
}

// CallTool executes a tool and returns the result
func (c *CLIClient) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	if c.client == nil {
		return nil, fmt.Errorf("client not connected")
	}

	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.CallTool(timeoutCtx, req)
	if err != nil {
		return nil, fmt.Errorf("tool call failed: %w", err)
	}
	if result.IsError {
		return nil, fmt.Errorf("tool error: %s", joinText(result))
	}
	return result, nil
}

// PickerResult is what the color-picker tool reports back.
type PickerResult struct {
	Color       string `json:"color" yaml:"color"`
	Message     string `json:"message" yaml:"message"`
	ResourceURI string `json:"resourceUri,omitempty" yaml:"resourceUri,omitempty"`
}

// OpenPicker calls the color-picker tool. An empty color lets the server
// choose its default.
func (c *CLIClient) OpenPicker(ctx context.Context, color string) (PickerResult, error) {
	args := map[string]any{}
	if color != "" {
		args["color"] = color
	}
	result, err := c.CallTool(ctx, server.ToolName, args)
	if err != nil {
		return PickerResult{}, err
	}

	out := PickerResult{Message: joinText(result)}
	if structured, ok := result.StructuredContent.(map[string]any); ok {
		out.Color, _ = structured["color"].(string)
	}
	if result.Meta != nil {
		if ui, ok := result.Meta.AdditionalFields["ui"].(map[string]any); ok {
			out.ResourceURI, _ = ui["resourceUri"].(string)
		}
	}
	return out, nil
}

// Close closes the connection
func (c *CLIClient) Close() error {
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
	return nil
}

// initialize performs the MCP protocol handshake
func (c *CLIClient) initialize(ctx context.Context) error {
	var req mcp.InitializeRequest
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "colorpick-cli",
		Version: "1.0.0",
	}
	req.Params.Capabilities = mcp.ClientCapabilities{}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, err := c.client.Initialize(timeoutCtx, req)
	return err
}

func joinText(result *mcp.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if textContent, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, textContent.Text)
		}
	}
	return strings.Join(parts, "\n")
}
