// Package appbridge implements the app side of the MCP Apps protocol.
//
// An MCP App is UI referenced by a tool's `_meta.ui.resourceUri`. The host
// renders it and talks to it over JSON-RPC 2.0: the app sends ui/initialize
// and receives the host context, then the host pushes tool input, tool
// results and context changes as notifications and asks for teardown. The
// app reports what the user is doing with ui/update-model-context.
//
// Envelopes are mcp-go's JSON-RPC types (transport.JSONRPCRequest,
// mcp.JSONRPCNotification, mcp.JSONRPCResponse, mcp.JSONRPCError), so ids
// and error codes match what MCP clients and servers use.
//
// # Threading
//
// The Session reads on its own goroutine. Handler methods are never called
// from it directly when a Dispatcher is configured; they are posted to the
// app's event loop so UI state stays single-threaded.
//
// # Transports
//
//   - StreamTransport: newline-delimited JSON over any reader/writer pair
//   - WebsocketTransport: one message per text frame (gorilla/websocket)
package appbridge
