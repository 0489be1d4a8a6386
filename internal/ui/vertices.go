package ui

import (
	"image/color"

	"lavalamp/internal/text"
)

// FloatsPerVertex is the overlay vertex layout: pos(2) + uv(2) + color(4).
const FloatsPerVertex = 8

// solidUV marks a vertex as untextured in overlay.frag.
const solidUV = -1

// Vertices appends the triangles of d to dst in draw order and returns the
// extended slice. Glyph UVs come from atlas; glyphs is scratch space handed
// back for reuse.
func (d *DrawList) Vertices(dst []float32, atlas *text.Atlas, glyphs []text.Glyph) ([]float32, []text.Glyph) {
	for _, q := range d.Quads {
		if q.Rect.Empty() {
			continue
		}
		r, g, b, a := rgba(q.Color)
		dst = appendQuad(dst,
			float32(q.Rect.Min.X), float32(q.Rect.Min.Y), float32(q.Rect.Max.X), float32(q.Rect.Max.Y),
			solidUV, solidUV, solidUV, solidUV,
			r, g, b, a)
	}
	for _, l := range d.Labels {
		glyphs = atlas.Layout(glyphs[:0], l.Text, float32(l.X), float32(l.Y), l.Scale)
		r, g, b, a := rgba(l.Color)
		for _, q := range glyphs {
			dst = appendQuad(dst, q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, r, g, b, a)
		}
	}
	return dst, glyphs
}

// appendQuad emits two triangles: TL, TR, BL then TR, BR, BL.
func appendQuad(dst []float32, x0, y0, x1, y1, u0, v0, u1, v1, r, g, b, a float32) []float32 {
	return append(dst,
		x0, y0, u0, v0, r, g, b, a,
		x1, y0, u1, v0, r, g, b, a,
		x0, y1, u0, v1, r, g, b, a,
		x1, y0, u1, v0, r, g, b, a,
		x1, y1, u1, v1, r, g, b, a,
		x0, y1, u0, v1, r, g, b, a,
	)
}

func rgba(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
