package ui

import (
	"image"
	"image/color"
	"testing"

	"lavalamp/internal/text"
)

func TestVerticesSolidQuad(t *testing.T) {
	var d DrawList
	d.rect(image.Rect(10, 20, 30, 40), color.RGBA{R: 255, A: 255})
	d.rect(image.Rectangle{}, color.RGBA{A: 255}) // empty, skipped

	v, _ := d.Vertices(nil, text.NewAtlas(), nil)
	if len(v) != 6*FloatsPerVertex {
		t.Fatalf("got %d floats, want %d", len(v), 6*FloatsPerVertex)
	}
	// Vertex 4 is the bottom-right corner.
	br := v[4*FloatsPerVertex : 5*FloatsPerVertex]
	want := []float32{30, 40, solidUV, solidUV, 1, 0, 0, 1}
	for i := range want {
		if br[i] != want[i] {
			t.Fatalf("bottom-right vertex = %v, want %v", br, want)
		}
	}
}

func TestVerticesLabelsSkipSpaces(t *testing.T) {
	var d DrawList
	d.text("a b", 0, 0, 2, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	atlas := text.NewAtlas()
	v, glyphs := d.Vertices(nil, atlas, nil)
	if len(glyphs) != 2 {
		t.Fatalf("laid out %d glyphs, want 2", len(glyphs))
	}
	if len(v) != 2*6*FloatsPerVertex {
		t.Fatalf("got %d floats", len(v))
	}
	u0, v0, _, _, _ := atlas.UV('b')
	second := v[6*FloatsPerVertex:]
	if second[0] != float32(2*text.CellW*2) || second[2] != u0 || second[3] != v0 {
		t.Fatalf("second glyph top-left = %v", second[:4])
	}
}

func TestVerticesQuadsBeforeLabels(t *testing.T) {
	var d DrawList
	d.text("x", 0, 0, 1, color.RGBA{A: 255})
	d.rect(image.Rect(0, 0, 5, 5), color.RGBA{A: 255})

	v, _ := d.Vertices(nil, text.NewAtlas(), nil)
	if v[2] != solidUV {
		t.Fatalf("first vertex uv = %v, want solid", v[2])
	}
}
