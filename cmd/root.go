package cmd

import (
	"os"

	"colorpick/pkg/logging"

	"github.com/spf13/cobra"
)

// versionTemplate is shared by --version and the version command.
const versionTemplate = `{{printf "colorpick version %s\n" .Version}}`

var (
	// configPath replaces the layered config lookup when set.
	configPath string
	// debug enables verbose logging across the application.
	debug bool
	// logLevel filters log output unless --debug is set.
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorpick",
	Short: "An interactive color picker served as an MCP App",
	Long: `colorpick is an interactive color picker that an AI assistant can
open inside its chat. The MCP server exposes a "color-picker" tool and an
HTML document the host embeds; colors the user picks are reported back to
the model.

The same picker also runs in the terminal, either standalone or attached to
a host bridge, and small helpers convert colors between hex, RGB and HSV.`,
	// Errors from RunE are reported on their own, without the usage text.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	rootCmd.SetVersionTemplate(versionTemplate)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file, or directory containing config.yaml (default: layered ~/.config/colorpick and ./.colorpick)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

// cliLogLevel resolves --debug and --log-level.
func cliLogLevel() logging.LogLevel {
	if debug {
		return logging.LevelDebug
	}
	return logging.ParseLevel(logLevel)
}
