package text

// Glyph is one character quad in screen pixels with its atlas UVs.
type Glyph struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// Layout appends the glyph quads of s drawn with its top-left corner at
// (x, y) and integer pixel scale. Newlines start a new line; spaces and
// unknown runes advance without emitting a quad.
func (a *Atlas) Layout(dst []Glyph, s string, x, y float32, scale int) []Glyph {
	if scale < 1 {
		scale = 1
	}
	adv := float32(CellW * scale)
	lineH := float32(CellH * scale)
	baseX := x
	for _, r := range s {
		if r == '\n' {
			x = baseX
			y += lineH
			continue
		}
		if r != ' ' {
			if u0, v0, u1, v1, ok := a.UV(r); ok {
				dst = append(dst, Glyph{
					X0: x, Y0: y, X1: x + adv, Y1: y + lineH,
					U0: u0, V0: v0, U1: u1, V1: v1,
				})
			}
		}
		x += adv
	}
	return dst
}

// Width returns the width in pixels of the longest line of s at scale.
func Width(s string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	lineLen, maxLen := 0, 0
	for _, r := range s {
		if r == '\n' {
			maxLen = max(maxLen, lineLen)
			lineLen = 0
			continue
		}
		lineLen++
	}
	return max(maxLen, lineLen) * CellW * scale
}

// Height returns the line height in pixels at scale.
func Height(scale int) int {
	if scale < 1 {
		scale = 1
	}
	return CellH * scale
}
