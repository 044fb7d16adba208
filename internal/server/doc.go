// Package server exposes the color picker as an MCP App: a "color-picker"
// tool whose metadata points hosts at the ui://color-picker/mcp-app.html
// resource, served over stdio, SSE or streamable HTTP.
package server
