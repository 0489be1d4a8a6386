package text

import "testing"

func TestAtlasCoversPrintableASCII(t *testing.T) {
	a := NewAtlas()
	w, h := a.Size()
	if w != Cols*CellW || h != a.Rows*CellH {
		t.Fatalf("atlas is %dx%d, want %dx%d", w, h, Cols*CellW, a.Rows*CellH)
	}
	if a.Rows*Cols < int(LastRune-FirstRune)+1 {
		t.Fatalf("%d rows cannot hold the printable range", a.Rows)
	}

	// 'M' must leave ink in its cell, ' ' must not.
	if ink(a, 'M') == 0 {
		t.Fatal("no ink rasterised for 'M'")
	}
	if ink(a, ' ') != 0 {
		t.Fatal("space cell is not empty")
	}
}

func ink(a *Atlas, r rune) int {
	col, row := cell(r)
	total := 0
	for y := row * CellH; y < (row+1)*CellH; y++ {
		for x := col * CellW; x < (col+1)*CellW; x++ {
			total += int(a.Img.AlphaAt(x, y).A)
		}
	}
	return total
}

func TestUVRejectsOutOfRange(t *testing.T) {
	a := NewAtlas()
	if _, _, _, _, ok := a.UV('\t'); ok {
		t.Fatal("tab accepted")
	}
	if _, _, _, _, ok := a.UV('é'); ok {
		t.Fatal("non-ASCII accepted")
	}
	u0, v0, u1, v1, ok := a.UV('A')
	if !ok || u0 >= u1 || v0 >= v1 || u1 > 1 || v1 > 1 {
		t.Fatalf("bad uv for 'A': %v %v %v %v %v", u0, v0, u1, v1, ok)
	}
}

func TestLayoutAdvancesAndSkipsSpaces(t *testing.T) {
	a := NewAtlas()
	glyphs := a.Layout(nil, "a b\nc", 10, 20, 2)
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(glyphs))
	}
	adv := float32(CellW * 2)
	if glyphs[0].X0 != 10 || glyphs[1].X0 != 10+2*adv {
		t.Fatalf("x positions %v, %v", glyphs[0].X0, glyphs[1].X0)
	}
	if glyphs[2].X0 != 10 || glyphs[2].Y0 != 20+float32(CellH*2) {
		t.Fatalf("newline glyph at (%v, %v)", glyphs[2].X0, glyphs[2].Y0)
	}
	if glyphs[0].X1-glyphs[0].X0 != adv {
		t.Fatalf("glyph width %v, want %v", glyphs[0].X1-glyphs[0].X0, adv)
	}
}

func TestWidth(t *testing.T) {
	if got := Width("abc\nde", 1); got != 3*CellW {
		t.Fatalf("width = %d, want %d", got, 3*CellW)
	}
	if got := Width("", 3); got != 0 {
		t.Fatalf("empty width = %d", got)
	}
	if Height(2) != 2*CellH {
		t.Fatalf("height = %d", Height(2))
	}
}
