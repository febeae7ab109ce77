package render

import "image/color"

// FillRGBA converts cell values into RGBA pixels in buf. Values index the
// palette and saturate at its last entry. Without a palette, zero cells use
// off and everything else on.
func FillRGBA(buf []byte, cells []uint8, palette []color.RGBA, on, off color.Color) {
	if len(palette) == 0 {
		fillBinaryRGBA(buf, cells, on, off)
		return
	}
	fillPaletteRGBA(buf, cells, palette)
}

func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	cOn := color.RGBAModel.Convert(on).(color.RGBA)
	cOff := color.RGBAModel.Convert(off).(color.RGBA)
	for i, c := range cells {
		col := cOff
		if c != 0 {
			col = cOn
		}
		putRGBA(buf[i*4:], col)
	}
}

func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		putRGBA(buf[i*4:], palette[idx])
	}
}

func putRGBA(dst []byte, c color.RGBA) {
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
	dst[3] = c.A
}
