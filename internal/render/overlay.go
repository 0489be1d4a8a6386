package render

import (
	"fmt"

	"lavalamp/internal/shader"
	"lavalamp/internal/text"
	"lavalamp/internal/ui"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// fontUnit is the texture unit the glyph atlas is bound to.
const fontUnit = 1

// Overlay draws ui.DrawList contents in framebuffer pixel space.
type Overlay struct {
	prog uint32
	vao  uint32
	vbo  uint32
	tex  uint32

	uResolution int32

	atlas    *text.Atlas
	verts    []float32
	glyphs   []text.Glyph
	maxVerts int
}

// NewOverlay compiles the overlay program and uploads atlas as a
// single-channel texture.
func NewOverlay(atlas *text.Atlas) (*Overlay, error) {
	prog, err := linkProgram(shader.Overlay())
	if err != nil {
		return nil, fmt.Errorf("overlay program: %w", err)
	}
	o := &Overlay{
		prog:        prog,
		uResolution: uniform(prog, "uResolution"),
		atlas:       atlas,
	}
	gl.UseProgram(prog)
	gl.Uniform1i(uniform(prog, "uFontTex"), fontUnit)
	gl.UseProgram(0)

	w, h := atlas.Size()
	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	o.maxVerts = 1024 * 6
	stride := int32(ui.FloatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, o.maxVerts*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	gl.BindVertexArray(0)
	return o, nil
}

// Draw renders d with alpha blending over whatever is in the framebuffer.
func (o *Overlay) Draw(d *ui.DrawList, fbW, fbH int) {
	if d.Empty() {
		return
	}
	o.verts, o.glyphs = d.Vertices(o.verts[:0], o.atlas, o.glyphs)
	n := len(o.verts) / ui.FloatsPerVertex
	if n == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(o.prog)
	gl.Uniform2f(o.uResolution, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE0 + fontUnit)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	if n > o.maxVerts {
		o.maxVerts = n
		gl.BufferData(gl.ARRAY_BUFFER, len(o.verts)*4, gl.Ptr(o.verts), gl.STREAM_DRAW)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(o.verts)*4, gl.Ptr(o.verts))
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	gl.BindVertexArray(0)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.UseProgram(0)
	gl.Disable(gl.BLEND)
}

func (o *Overlay) Destroy() {
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteTextures(1, &o.tex)
	gl.DeleteProgram(o.prog)
}
