package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned for any color text that is not "#rrggbb".
var ErrInvalidFormat = errors.New("color must be in #rrggbb hex format")

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6})$`)

// HexToRGB parses "#rrggbb", case-insensitive. Shorthand, alpha, a missing
// '#' and stray characters are all rejected with ErrInvalidFormat.
func HexToRGB(hex string) (r, g, b uint8, err error) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	v, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// RGBToHex formats channels as "#rrggbb" with lowercase digits.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// NormalizeHexInput trims whitespace and prefixes '#' when missing. It does
// not validate; pass the result to HexToRGB.
func NormalizeHexInput(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	return text
}

// ParseChannel reads a numeric channel field. Unparseable text counts as 0;
// the result is rounded and clamped into [0,255].
func ParseChannel(text string) uint8 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return ClampChannel(f)
}
