// Package text rasterises the basicfont face into a glyph atlas and lays
// strings out as textured quads.
package text

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range covered by the atlas.
const (
	FirstRune = ' '
	LastRune  = '~'
	Cols      = 16
)

var face = basicfont.Face7x13

// Cell size of one glyph in the atlas, in pixels.
var (
	CellW = face.Advance
	CellH = face.Height
)

// Atlas is a single-channel glyph sheet.
type Atlas struct {
	Img  *image.Alpha
	Rows int
}

// NewAtlas rasterises every printable ASCII glyph into a grid of
// CellW x CellH cells, Cols per row.
func NewAtlas() *Atlas {
	n := int(LastRune-FirstRune) + 1
	rows := (n + Cols - 1) / Cols
	img := image.NewAlpha(image.Rect(0, 0, Cols*CellW, rows*CellH))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
	}
	for r := FirstRune; r <= LastRune; r++ {
		col, row := cell(r)
		d.Dot = fixed.P(col*CellW, row*CellH+face.Ascent)
		d.DrawString(string(r))
	}
	return &Atlas{Img: img, Rows: rows}
}

// Size returns the atlas dimensions in pixels.
func (a *Atlas) Size() (int, int) {
	b := a.Img.Bounds()
	return b.Dx(), b.Dy()
}

// UV returns the normalized texture rectangle of r. Runes outside the atlas
// report ok=false.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32, ok bool) {
	if r < FirstRune || r > LastRune {
		return 0, 0, 0, 0, false
	}
	w, h := a.Size()
	col, row := cell(r)
	u0 = float32(col*CellW) / float32(w)
	v0 = float32(row*CellH) / float32(h)
	u1 = float32((col+1)*CellW) / float32(w)
	v1 = float32((row+1)*CellH) / float32(h)
	return u0, v0, u1, v1, true
}

func cell(r rune) (col, row int) {
	i := int(r - FirstRune)
	return i % Cols, i / Cols
}
