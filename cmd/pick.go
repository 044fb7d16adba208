package cmd

import (
	"context"
	"fmt"

	"colorpick/internal/app"

	"github.com/spf13/cobra"
)

var (
	pickNoTUI      bool
	pickHostURL    string
	pickColor      string
	pickStandalone bool
)

// pickCmd runs the picker itself, as a terminal UI or headless.
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Run the color picker in the terminal or as a headless bridge app",
	Long: `Runs the color picker app.

1. Interactive TUI Mode (default):
   - Draws the saturation/value panel, hue slider, hex and RGB fields.
   - Mouse and keyboard drive the selection; 'y' copies the hex value.
   - With --host-url the picker joins a host over a websocket bridge and
     reports each selection to the model.

2. Headless Mode (using --no-tui flag):
   - Speaks the MCP Apps bridge protocol on stdin/stdout, or over
     --host-url when set.
   - Applies colors the host sends and exits when the host disconnects.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(pickNoTUI, debug, configPath)
	cfg.LogLevel = logLevel
	cfg.HostURL = pickHostURL
	cfg.Color = pickColor
	cfg.Standalone = pickStandalone

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	application, err := app.NewApplication(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().BoolVar(&pickNoTUI, "no-tui", false, "Run headless, driven only by the host bridge")
	pickCmd.Flags().StringVar(&pickHostURL, "host-url", "", "Websocket URL of the host bridge (overrides bridge.url)")
	pickCmd.Flags().StringVar(&pickColor, "color", "", "Initial color as #rrggbb (overrides picker.defaultColor)")
	pickCmd.Flags().BoolVar(&pickStandalone, "standalone", false, "Do not connect to any host")
}
