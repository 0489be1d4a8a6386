//go:build !android

package game

import (
	"lavalamp/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	keys *input.Edges[glfw.Key]
}

func NewInput() *Input {
	return &Input{keys: input.NewEdges[glfw.Key]()}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	return in.keys.Pressed(key, window.GetKey(key) == glfw.Press)
}

// Pointer reads the cursor in framebuffer pixels with the left button level.
func Pointer(window *glfw.Window, fbW, fbH int) input.Pointer {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	x, y := input.ToFramebuffer(cx, cy, winW, winH, fbW, fbH)
	return input.Pointer{
		X:    x,
		Y:    y,
		Down: window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
	}
}
