// Package shader holds the GLSL sources and the uniform contract of the
// metaball pass.
package shader

import _ "embed"

var (
	//go:embed metaballs.vert
	metaballsVert string
	//go:embed metaballs.frag
	metaballsFrag string
	//go:embed overlay.vert
	overlayVert string
	//go:embed overlay.frag
	overlayFrag string
)

// Source is a vertex/fragment pair ready for glShaderSource. Both strings are
// NUL terminated.
type Source struct {
	Vertex   string
	Fragment string
}

// Metaballs returns the full-screen metaball field program.
func Metaballs() Source {
	return Source{Vertex: cstr(metaballsVert), Fragment: cstr(metaballsFrag)}
}

// Overlay returns the program used for panel rectangles and glyphs.
func Overlay() Source {
	return Source{Vertex: cstr(overlayVert), Fragment: cstr(overlayFrag)}
}

func cstr(s string) string { return s + "\x00" }
