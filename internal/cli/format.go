package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"colorpick/internal/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// ColorReport describes one color in every supported notation.
type ColorReport struct {
	Hex string    `json:"hex" yaml:"hex"`
	RGB color.RGB `json:"rgb" yaml:"rgb"`
	HSV color.HSV `json:"hsv" yaml:"hsv"`
}

// NewColorReport derives the report for c.
func NewColorReport(c color.RGB) ColorReport {
	return ColorReport{Hex: c.Hex(), RGB: c, HSV: c.HSV()}
}

// ParseColor accepts "#rrggbb", "rrggbb" or "r,g,b" with channels in [0,255].
func ParseColor(input string) (color.RGB, error) {
	input = strings.TrimSpace(input)
	if strings.Contains(input, ",") {
		parts := strings.Split(input, ",")
		if len(parts) != 3 {
			return color.RGB{}, fmt.Errorf("%q: expected r,g,b", input)
		}
		var channels [3]uint8
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 || n > 255 {
				return color.RGB{}, fmt.Errorf("%q: channel %q is not an integer in [0,255]", input, part)
			}
			channels[i] = uint8(n)
		}
		return color.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
	}
	return color.ParseHex(color.NormalizeHexInput(input))
}

// Formatter writes command results in the selected format.
type Formatter struct {
	Format OutputFormat
	Out    io.Writer
}

// WriteColors writes one report per color.
func (f Formatter) WriteColors(reports []ColorReport) error {
	switch f.Format {
	case OutputFormatJSON:
		return f.writeJSON(reports)
	case OutputFormatYAML:
		return f.writeYAML(reports)
	case OutputFormatTable:
		t := f.newTable()
		t.AppendHeader(table.Row{"", header("hex"), header("rgb"), header("hsv")})
		for _, r := range reports {
			t.AppendRow(table.Row{swatch(r.Hex), r.Hex, r.RGB.String(), r.HSV.String()})
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", f.Format)
	}
}

// WritePickerResult writes the outcome of a color-picker tool call.
func (f Formatter) WritePickerResult(result PickerResult) error {
	switch f.Format {
	case OutputFormatJSON:
		return f.writeJSON(result)
	case OutputFormatYAML:
		return f.writeYAML(result)
	case OutputFormatTable:
		t := f.newTable()
		t.AppendHeader(table.Row{header("field"), header("value")})
		t.AppendRow(table.Row{"color", swatch(result.Color) + " " + result.Color})
		t.AppendRow(table.Row{"message", result.Message})
		if result.ResourceURI != "" {
			t.AppendRow(table.Row{"resource", text.FgHiBlue.Sprint(result.ResourceURI)})
		}
		t.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", f.Format)
	}
}

func (f Formatter) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(f.Out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (f Formatter) writeJSON(v any) error {
	enc := json.NewEncoder(f.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f Formatter) writeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = f.Out.Write(data)
	return err
}

func header(s string) string {
	return text.FgHiCyan.Sprint(strings.ToUpper(s))
}

// swatch renders a two-cell block in hex, or nothing for an invalid color.
func swatch(hex string) string {
	if _, err := color.ParseHex(hex); err != nil {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
