package server

import (
	"context"
	"fmt"

	"colorpick/internal/markup"
	"colorpick/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	// ToolName is the name the picker tool is registered under.
	ToolName = "color-picker"
	// ResourceURI locates the picker document.
	ResourceURI = "ui://color-picker/mcp-app.html"
)

// ToolOutput is the structured content returned by the picker tool.
type ToolOutput struct {
	Color string `json:"color"`
}

// uiMeta links a tool or result to the document a host renders for it.
func uiMeta() *mcp.Meta {
	return mcp.NewMetaFromMap(map[string]any{
		"ui": map[string]any{"resourceUri": ResourceURI},
	})
}

// Tool returns the color-picker tool definition.
func (s *Server) Tool() mcp.Tool {
	tool := mcp.NewTool(ToolName,
		mcp.WithTitleAnnotation("Color Picker"),
		mcp.WithDescription("Opens an interactive color picker UI. Optionally accepts an initial color."),
		mcp.WithString("color",
			mcp.Description(fmt.Sprintf("Initial color in hex format (e.g. #ff0000). Defaults to %s.", s.config.DefaultColor)),
		),
		mcp.WithOutputSchema[ToolOutput](),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
	tool.Meta = uiMeta()
	return tool
}

// Resource returns the picker document's resource definition.
func (s *Server) Resource() mcp.Resource {
	res := mcp.NewResource(ResourceURI, ResourceURI,
		mcp.WithResourceDescription("Interactive color picker"),
		mcp.WithMIMEType(markup.MIMEType),
	)
	return res
}

// handleColorPicker echoes the requested color back; the host opens the
// document named in the tool's metadata and forwards the color to it.
func (s *Server) handleColorPicker(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	color := request.GetString("color", "")
	if color == "" {
		color = s.config.DefaultColor
	}
	logging.Debug("Server", "Tool %s called with color %s", ToolName, color)

	result := mcp.NewToolResultStructured(ToolOutput{Color: color}, "Color picker opened with: "+color)
	result.Meta = uiMeta()
	return result, nil
}

func (s *Server) handleReadDocument(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	html, err := markup.HTML(s.config.DefaultColor, markup.Options{
		AppName: "Color Picker",
		Version: s.config.Version,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", ResourceURI, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      ResourceURI,
			MIMEType: markup.MIMEType,
			Text:     html,
		},
	}, nil
}

func (s *Server) register(mcpServer *mcpserver.MCPServer) {
	mcpServer.AddTool(s.Tool(), s.handleColorPicker)
	mcpServer.AddResource(s.Resource(), s.handleReadDocument)
}
