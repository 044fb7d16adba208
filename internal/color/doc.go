// Package color implements the color model behind the picker.
//
// Three representations are supported:
//   - HSV: hue in degrees [0,360), saturation and value as unit fractions
//   - RGB: 8-bit red, green and blue channels
//   - Hex: "#rrggbb" strings, always emitted in lowercase
//
// All functions are pure and deterministic. HSV is the canonical form held by
// callers; RGB and hex are projections recomputed from it on demand.
//
// # Round-tripping
//
// Any integer RGB triple survives RGB -> HSV -> RGB unchanged. The reverse
// direction may lose the hue when saturation or value is zero, since an
// achromatic color has no unique hue; RGBToHSV reports 0 in that case.
//
// # Usage Example
//
//	h, s, v := color.RGBToHSV(99, 102, 241)
//	r, g, b := color.HSVToRGB(h, s, v)
//	fmt.Println(color.RGBToHex(r, g, b)) // #6366f1
//
//	if _, _, _, err := color.HexToRGB("#zzz"); errors.Is(err, color.ErrInvalidFormat) {
//	    // leave state unchanged
//	}
package color
