package render

import (
	"fmt"

	"lavalamp/internal/shader"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Metaballs draws the field shader over the whole viewport.
type Metaballs struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uMetaballs  int32
	uCount      int32
	uThreshold  int32
	uResolution int32
	uBaseColor  int32
}

// NewMetaballs compiles the metaball program and builds its quad. It fails
// when the shader does not compile or link.
func NewMetaballs() (*Metaballs, error) {
	prog, err := linkProgram(shader.Metaballs())
	if err != nil {
		return nil, fmt.Errorf("metaball program: %w", err)
	}
	m := &Metaballs{
		prog:        prog,
		uMetaballs:  uniform(prog, shader.UniformMetaballs),
		uCount:      uniform(prog, shader.UniformCount),
		uThreshold:  uniform(prog, shader.UniformThreshold),
		uResolution: uniform(prog, shader.UniformResolution),
		uBaseColor:  uniform(prog, shader.UniformBaseColor),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	quad := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	gl.BindVertexArray(0)
	return m, nil
}

// Draw uploads u and covers the viewport, then unbinds the program.
func (m *Metaballs) Draw(u *shader.Uniforms) {
	gl.UseProgram(m.prog)
	gl.Uniform3fv(m.uMetaballs, int32(len(u.Metaballs)), &u.Metaballs[0][0])
	gl.Uniform1i(m.uCount, u.Count)
	gl.Uniform1f(m.uThreshold, u.Threshold)
	gl.Uniform2f(m.uResolution, u.Resolution[0], u.Resolution[1])
	gl.Uniform3f(m.uBaseColor, u.BaseColor[0], u.BaseColor[1], u.BaseColor[2])

	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (m *Metaballs) Destroy() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteProgram(m.prog)
}
