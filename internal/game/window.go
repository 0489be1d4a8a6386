//go:build !android

package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// initWindow opens a fullscreen window on the primary monitor, or a
// width x height one when windowed is set.
func initWindow(title string, windowed bool, width, height int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if !windowed {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			mode := monitor.GetVideoMode()
			width, height = mode.Width, mode.Height
			glfw.WindowHint(glfw.RedBits, mode.RedBits)
			glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
			glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
			glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		}
	}

	window, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
