package cmd

import (
	"fmt"

	"colorpick/internal/cli"

	"github.com/spf13/cobra"
)

var convertOutputFormat string

// convertCmd prints each color in hex, RGB and HSV.
var convertCmd = &cobra.Command{
	Use:   "convert <color>...",
	Short: "Convert colors between hex, RGB and HSV",
	Long: `Converts each argument and prints it as hex, RGB and HSV.

A color is "#rrggbb", "rrggbb" or "r,g,b" with channels in 0..255.

Examples:
  colorpick convert "#6366f1"
  colorpick convert 255,0,0 00ff00 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseOutputFormat(convertOutputFormat)
	if err != nil {
		return err
	}

	reports := make([]cli.ColorReport, 0, len(args))
	for _, arg := range args {
		rgb, err := cli.ParseColor(arg)
		if err != nil {
			return fmt.Errorf("invalid color %q: %w", arg, err)
		}
		reports = append(reports, cli.NewColorReport(rgb))
	}

	f := cli.Formatter{Format: format, Out: cmd.OutOrStdout()}
	return f.WriteColors(reports)
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutputFormat, "output", "o", "table", "Output format (table, json, yaml)")
}
