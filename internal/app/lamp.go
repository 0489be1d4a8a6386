// Package app runs the lava lamp one frame at a time, independent of the
// window and GL backend.
package app

import (
	"lavalamp/internal/config"
	"lavalamp/internal/events"
	"lavalamp/internal/input"
	"lavalamp/internal/shader"
	"lavalamp/internal/sim"
	"lavalamp/internal/ui"
)

// FrameInput is what the backend polled for one frame. Toggle and Spawn are
// already edge-triggered.
type FrameInput struct {
	Pointer       input.Pointer
	Toggle        bool
	Spawn         bool
	Width, Height int
	DT            float32
}

// Lamp owns the simulation, its settings and the settings panel.
type Lamp struct {
	Settings sim.Settings

	sim      *sim.Simulation
	bus      *events.Bus
	panel    *ui.Panel
	uniforms shader.Uniforms
}

// New builds a Lamp from the decoded defaults. bus receives every spawn,
// clear and panel event.
func New(d config.Defaults, seed uint64, panelScale int, bus *events.Bus) *Lamp {
	return &Lamp{
		Settings: d.InitialSettings(),
		sim:      sim.New(seed),
		bus:      bus,
		panel:    ui.NewPanel(d.Sliders.Speed.Range(), d.Sliders.BallRadius.Range(), panelScale),
	}
}

// Update runs the panel, then the key actions, then the simulation step. It
// returns the panel draw list for this frame.
func (l *Lamp) Update(in FrameInput) *ui.DrawList {
	list := l.panel.Frame(in.Pointer, &l.Settings, l.sim.Len(), l)

	if in.Toggle {
		on := l.Settings.TogglePanel()
		l.bus.Emit(events.Event{Type: events.EventPanelToggled, On: on})
	}
	if in.Spawn {
		l.Spawn()
	}

	l.sim.Step(l.Settings.Speed, in.DT, in.Width, in.Height)
	return list
}

// Spawn adds a ball with the current radius, or reports a rejection at the
// cap.
func (l *Lamp) Spawn() {
	b, ok := l.sim.Spawn(l.Settings.BallRadius)
	if !ok {
		l.bus.Emit(events.Event{Type: events.EventSpawnRejected, Count: l.sim.Len()})
		return
	}
	l.bus.Emit(events.Event{
		Type:   events.EventBallSpawned,
		X:      b.Pos[0],
		Y:      b.Pos[1],
		Radius: b.Radius,
		Count:  l.sim.Len(),
	})
}

// ClearBalls implements ui.Actions.
func (l *Lamp) ClearBalls() {
	n := l.sim.Clear()
	l.bus.Emit(events.Event{Type: events.EventBallsCleared, Count: n})
}

// HidePanel implements ui.Actions.
func (l *Lamp) HidePanel() {
	if !l.Settings.ShowPanel {
		return
	}
	l.Settings.ShowPanel = false
	l.bus.Emit(events.Event{Type: events.EventPanelToggled, On: false})
}

// Uniforms packs the current balls for a width x height viewport. The
// result is reused by the next call.
func (l *Lamp) Uniforms(width, height int) *shader.Uniforms {
	shader.Pack(&l.uniforms, l.sim.Balls(), width, height, l.Settings.Color)
	return &l.uniforms
}

func (l *Lamp) Balls() []sim.Ball { return l.sim.Balls() }
