package render

import "image/color"

// fillFrameRGBA converts a finished simulation frame into the flat RGBA byte
// layout texture uploads expect.
func fillFrameRGBA(buf []byte, frame []color.RGBA) {
	for i, c := range frame {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
