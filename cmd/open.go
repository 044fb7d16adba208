package cmd

import (
	"colorpick/internal/cli"

	"github.com/spf13/cobra"
)

var (
	openEndpoint     string
	openColor        string
	openOutputFormat string
)

// openCmd calls the color-picker tool on a running server.
var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Call the color-picker tool on a running server",
	Long: `Connects to a colorpick MCP server over HTTP and calls the
"color-picker" tool, printing the echoed color and the document URI a host
would embed.

An endpoint ending in /sse uses the SSE transport; anything else uses
streamable HTTP.

Note: the server must be running (use 'colorpick serve --transport streamable-http').`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(openOutputFormat)
	if err != nil {
		return err
	}

	client := cli.NewCLIClientWithEndpoint(openEndpoint)
	defer client.Close()

	ctx := cmd.Context()
	if err := client.Connect(ctx); err != nil {
		return err
	}

	result, err := client.OpenPicker(ctx, openColor)
	if err != nil {
		return err
	}

	f := cli.Formatter{Format: format, Out: cmd.OutOrStdout()}
	return f.WritePickerResult(result)
}

func init() {
	rootCmd.AddCommand(openCmd)

	openCmd.Flags().StringVar(&openEndpoint, "endpoint", cli.DefaultEndpoint, "MCP server endpoint")
	openCmd.Flags().StringVar(&openColor, "color", "", "Initial color to pass to the tool")
	openCmd.Flags().StringVarP(&openOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
}
