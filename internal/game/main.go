//go:build !android

// Package game drives the lava lamp on a glfw window with an OpenGL 4.1
// core context.
package game

import (
	"fmt"
	"log"
	"runtime"

	"lavalamp/internal/app"
	"lavalamp/internal/audio"
	"lavalamp/internal/config"
	"lavalamp/internal/events"
	"lavalamp/internal/render"
	"lavalamp/internal/text"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// maxFrameTime caps dt so a stalled frame cannot push balls far past an edge.
const maxFrameTime = 0.1

// RunDesktop opens the window and runs the frame loop until it closes.
func RunDesktop(cfg *config.Config) error {
	runtime.LockOSThread()

	defaults, err := config.LoadDefaults()
	if err != nil {
		return err
	}

	window, err := initWindow(defaults.Title, cfg.Windowed, defaults.Window.Width, defaults.Window.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	rend, err := render.NewRenderer(text.NewAtlas())
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	bus := events.NewBus()
	if cfg.Mute {
		app.Wire(bus, nil)
	} else if snd, err := audio.New(cfg.Volume); err != nil {
		log.Printf("audio init failed (continuing without sound): %v", err)
		app.Wire(bus, nil)
	} else {
		app.Wire(bus, snd)
	}

	fbW, fbH := window.GetFramebufferSize()
	lamp := app.New(defaults, cfg.Seed, cfg.PanelScale(fbH), bus)
	log.Printf("%dx%d framebuffer, seed %d", fbW, fbH, cfg.Seed)

	input := NewInput()
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		panel := lamp.Update(app.FrameInput{
			Pointer: Pointer(window, fbW, fbH),
			Toggle:  input.JustPressed(window, glfw.KeyTab),
			Spawn:   input.JustPressed(window, glfw.KeySpace),
			Width:   fbW,
			Height:  fbH,
			DT:      float32(dt),
		})

		rend.Frame(lamp.Uniforms(fbW, fbH), panel, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
