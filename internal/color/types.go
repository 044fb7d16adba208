package color

import (
	"encoding/json"
	"fmt"
)

// HSV is the canonical color representation.
type HSV struct {
	H float64 `json:"h" yaml:"h"`
	S float64 `json:"s" yaml:"s"`
	V float64 `json:"v" yaml:"v"`
}

// Normalize returns c with hue taken modulo 360 and saturation and value
// clamped into [0,1].
func (c HSV) Normalize() HSV {
	return HSV{H: NormalizeHue(c.H), S: Clamp01(c.S), V: Clamp01(c.V)}
}

// RGB projects c onto 8-bit channels.
func (c HSV) RGB() RGB {
	n := c.Normalize()
	r, g, b := HSVToRGB(n.H, n.S, n.V)
	return RGB{R: r, G: g, B: b}
}

// Hex projects c onto "#rrggbb".
func (c HSV) Hex() string {
	return c.RGB().Hex()
}

// MarshalJSON keeps the object form in contexts that would otherwise pick
// String, such as html/template script blocks.
func (c HSV) MarshalJSON() ([]byte, error) {
	type plain HSV
	return json.Marshal(plain(c))
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.1f, %.1f%%, %.1f%%)", c.H, c.S*100, c.V*100)
}

// RGB is a derived 8-bit color.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// ParseHex parses "#rrggbb" into an RGB value.
func ParseHex(hex string) (RGB, error) {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: r, G: g, B: b}, nil
}

// HSV converts c to the canonical representation.
func (c RGB) HSV() HSV {
	h, s, v := RGBToHSV(c.R, c.G, c.B)
	return HSV{H: h, S: s, V: v}
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HueColor is the fully saturated, full value color at hue h.
func HueColor(h float64) RGB {
	return HSV{H: h, S: 1, V: 1}.RGB()
}
