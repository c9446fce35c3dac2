package fire

import "image/color"

var firePalette = buildFirePalette()

// Palette exposes the 256-entry intensity ramp used for rendering: black
// through red, orange, and yellow to white, monotonically brightening.
func Palette() []color.RGBA {
	return firePalette
}

// buildFirePalette generates the ramp from index alone. The breakpoints and
// multipliers are load-bearing: every presenter of the effect reproduces
// exactly these values.
func buildFirePalette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	for i := range palette {
		c := color.RGBA{A: 255}
		switch {
		case i < 64:
			// Black to red.
			c.R = uint8(i * 4)
		case i < 128:
			// Red to yellow.
			c.R = 255
			c.G = uint8((i - 64) * 4)
		case i < 192:
			// Yellow to white.
			c.R = 255
			c.G = 255
			c.B = uint8((i - 128) * 4)
		default:
			c.R = 255
			c.G = 255
			c.B = 255
		}
		palette[i] = c
	}
	return palette
}

// XTerm256Palette maps each intensity onto an xterm-256 color index for
// terminals without truecolor support. The mapping is many-to-one and keeps
// the brightness ordering of the full palette.
func XTerm256Palette() []uint8 {
	palette := make([]uint8, 256)
	for i := range palette {
		switch {
		case i == 0:
			palette[i] = 16
		case i < 64:
			palette[i] = uint8(52 + i/16)
		case i < 128:
			palette[i] = uint8(160 + (i-64)/16*6)
		case i < 220:
			palette[i] = uint8(202 + (i-128)/10)
		default:
			palette[i] = 231
		}
	}
	return palette
}
