// Package config provides configuration management for colorpick.
//
// Configuration is loaded from up to three YAML sources and merged in order,
// later sources overriding earlier ones field by field:
//
//  1. Built-in defaults (GetDefaultConfig)
//  2. User configuration (~/.config/colorpick/config.yaml)
//  3. Project configuration (./.colorpick/config.yaml)
//
// A path passed with --config replaces steps 2 and 3.
//
// # Configuration Structure
//
//	server:
//	  name: "Color Picker MCP App"
//	  version: "1.0.0"
//	  transport: "streamable-http"  # stdio, sse or streamable-http
//	  host: "localhost"
//	  port: 3001
//
//	picker:
//	  defaultColor: "#6366f1"
//
//	bridge:
//	  url: "ws://localhost:4000/apps"  # empty: bridge over stdin/stdout
//
//	ui:
//	  theme: "auto"  # auto, light or dark
//
// Unset fields keep the value of the previous layer. The merged result is
// validated before it is returned.
package config
