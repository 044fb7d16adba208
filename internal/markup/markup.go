// Package markup renders the picker's HTML document served as the
// ui://color-picker/mcp-app.html resource.
package markup

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"colorpick/internal/color"
	"colorpick/internal/picker"

	"github.com/mark3labs/mcp-go/mcp"
)

// MIMEType marks the document as an MCP App for hosts.
const MIMEType = "text/html;profile=mcp-app"

//go:embed templates/mcp-app.html.tmpl templates/picker.js
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/mcp-app.html.tmpl"))

var script = func() template.JS {
	data, err := templates.ReadFile("templates/picker.js")
	if err != nil {
		panic(err)
	}
	return template.JS(data)
}()

// AppInfo identifies the app in its ui/initialize request.
type AppInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocolVersion"`
}

type pageData struct {
	Title    string
	Frame    picker.Frame
	Backdrop template.CSS
	App      AppInfo
	Initial  color.HSV
	Script   template.JS
}

// Options controls document rendering.
type Options struct {
	Title   string
	AppName string
	Version string
}

// Render writes the document for initial, with every surface pre-filled.
func Render(w io.Writer, initial color.HSV, opts Options) error {
	if opts.Title == "" {
		opts.Title = "Color Picker"
	}
	if opts.AppName == "" {
		opts.AppName = "Color Picker"
	}
	if opts.Version == "" {
		opts.Version = "1.0.0"
	}

	frame := picker.NewFrame(initial)
	data := pageData{
		Title: opts.Title,
		Frame: frame,
		// Generated from a number, never from user text.
		Backdrop: template.CSS(frame.Backdrop.CSS),
		App: AppInfo{
			Name:            opts.AppName,
			Version:         opts.Version,
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
		},
		Initial: frame.HSV,
		Script:  script,
	}
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render picker markup: %w", err)
	}
	return nil
}

// HTML renders the document for the hex color initial.
func HTML(initial string, opts Options) (string, error) {
	rgb, err := color.ParseHex(initial)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := Render(&buf, rgb.HSV(), opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
