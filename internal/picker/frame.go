package picker

import (
	"fmt"
	"math"

	"colorpick/internal/color"
)

// Point is a pointer position in the presentation layer's coordinate space.
type Point struct {
	X, Y float64
}

// Rect is the saturation/value panel's bounds in the same space as Point.
type Rect struct {
	X, Y, W, H float64
}

// local maps p into the panel's unit square, clamped on both axes.
func (r Rect) local(p Point) (x, y float64) {
	if r.W > 0 {
		x = color.Clamp01((p.X - r.X) / r.W)
	}
	if r.H > 0 {
		y = color.Clamp01((p.Y - r.Y) / r.H)
	}
	return x, y
}

// Backdrop is the saturation panel's horizontal gradient, white to the pure
// color at the current hue. It depends on hue alone.
type Backdrop struct {
	From string
	To   string
	CSS  string
}

// Frame holds every value a render writes into the display surfaces.
type Frame struct {
	HSV color.HSV
	RGB color.RGB
	Hex string

	// Cursor position inside the panel, in percent of its size.
	CursorX float64
	CursorY float64

	HueSlider int
	Swatch    string
	Backdrop  Backdrop
}

// NewFrame derives a frame from canonical state.
func NewFrame(hsv color.HSV) Frame {
	hsv = hsv.Normalize()
	rgb := hsv.RGB()
	hex := rgb.Hex()

	return Frame{
		HSV:       hsv,
		RGB:       rgb,
		Hex:       hex,
		CursorX:   hsv.S * 100,
		CursorY:   (1 - hsv.V) * 100,
		HueSlider: int(math.Round(hsv.H)),
		Swatch:    hex,
		Backdrop:  backdropFor(hsv.H),
	}
}

func backdropFor(hue float64) Backdrop {
	return Backdrop{
		From: "#ffffff",
		To:   color.HueColor(hue).Hex(),
		CSS:  fmt.Sprintf("linear-gradient(to right, #fff, hsl(%g, 100%%, 50%%))", hue),
	}
}

// Description is the model-context text announcing a selection.
func (f Frame) Description() string {
	return fmt.Sprintf("User selected color: %s (rgb: %d, %d, %d)", f.Hex, f.RGB.R, f.RGB.G, f.RGB.B)
}
