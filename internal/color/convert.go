package color

import (
	"math"
)

// HSVToRGB converts a hue in [0,360) and saturation/value in [0,1] to 8-bit
// channels rounded to nearest. A hue of exactly 360 must be reduced to 0 by
// the caller.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r1, g1, b1 float64
	switch {
	case h < 60:
		r1, g1, b1 = c, x, 0
	case h < 120:
		r1, g1, b1 = x, c, 0
	case h < 180:
		r1, g1, b1 = 0, c, x
	case h < 240:
		r1, g1, b1 = 0, x, c
	case h < 300:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	return toByte(r1 + m), toByte(g1 + m), toByte(b1 + m)
}

// RGBToHSV converts 8-bit channels to hue in [0,360) and saturation/value in
// [0,1]. Achromatic input (r == g == b) reports a hue of 0.
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	r1 := float64(r) / 255
	g1 := float64(g) / 255
	b1 := float64(b) / 255

	max := math.Max(r1, math.Max(g1, b1))
	min := math.Min(r1, math.Min(g1, b1))
	d := max - min

	if d != 0 {
		switch max {
		case r1:
			h = 60 * math.Mod((g1-b1)/d, 6)
		case g1:
			h = 60 * ((b1-r1)/d + 2)
		default:
			h = 60 * ((r1-g1)/d + 4)
		}
	}
	if h < 0 {
		h += 360
	}

	if max != 0 {
		s = d / max
	}
	return h, s, max
}

// NormalizeHue reduces h into [0,360). Non-finite input yields 0.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod of a tiny negative can round back up to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// Clamp01 clamps x into [0,1]. NaN yields 0.
func Clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ClampChannel rounds x to the nearest integer and clamps it into [0,255].
// NaN yields 0.
func ClampChannel(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(math.Round(x))
}

func toByte(unit float64) uint8 {
	return ClampChannel(unit * 255)
}
