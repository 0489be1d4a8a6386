package ui

import (
	"image"
	"image/color"
)

// Quad is a solid rectangle in framebuffer pixels.
type Quad struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// Label is a line of text whose top-left corner sits at (X, Y).
type Label struct {
	Text  string
	X, Y  int
	Scale int
	Color color.RGBA
}

// DrawList is everything the panel wants drawn this frame, back to front:
// all quads first, then all labels.
type DrawList struct {
	Quads  []Quad
	Labels []Label
}

func (d *DrawList) Reset() {
	d.Quads = d.Quads[:0]
	d.Labels = d.Labels[:0]
}

func (d *DrawList) rect(r image.Rectangle, c color.RGBA) {
	d.Quads = append(d.Quads, Quad{Rect: r, Color: c})
}

func (d *DrawList) text(s string, x, y, scale int, c color.RGBA) {
	d.Labels = append(d.Labels, Label{Text: s, X: x, Y: y, Scale: scale, Color: c})
}

// Empty reports whether there is nothing to draw.
func (d *DrawList) Empty() bool { return len(d.Quads) == 0 && len(d.Labels) == 0 }
