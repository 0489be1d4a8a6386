package app

import (
	"math"
	"testing"

	"lavalamp/internal/config"
	"lavalamp/internal/events"
	"lavalamp/internal/input"
	"lavalamp/internal/sfx"
	"lavalamp/internal/sim"
)

var away = input.Pointer{X: -1, Y: -1}

func newLamp(t *testing.T) (*Lamp, *events.Bus) {
	t.Helper()
	d, err := config.LoadDefaults()
	if err != nil {
		t.Fatal(err)
	}
	bus := events.NewBus()
	return New(d, 42, 1, bus), bus
}

func frame(spawn, toggle bool) FrameInput {
	return FrameInput{Pointer: away, Spawn: spawn, Toggle: toggle, Width: 800, Height: 600}
}

func TestSpawnStopsAtCap(t *testing.T) {
	l, bus := newLamp(t)
	var spawned, rejected int
	bus.Subscribe(events.EventBallSpawned, func(events.Event) { spawned++ })
	bus.Subscribe(events.EventSpawnRejected, func(events.Event) { rejected++ })

	for i := 0; i < sim.MaxBalls+5; i++ {
		l.Update(frame(true, false))
	}
	if n := len(l.Balls()); n != sim.MaxBalls {
		t.Fatalf("balls = %d, want %d", n, sim.MaxBalls)
	}
	if spawned != sim.MaxBalls || rejected != 5 {
		t.Fatalf("spawned %d rejected %d", spawned, rejected)
	}
}

func TestSpawnUsesCurrentRadius(t *testing.T) {
	l, _ := newLamp(t)
	l.Settings.BallRadius = 0.2
	l.Update(frame(true, false))
	if r := l.Balls()[0].Radius; math.Abs(float64(r)-0.2) > 1e-6 {
		t.Fatalf("radius = %v, want 0.2", r)
	}
}

func TestToggleTwiceRestoresPanel(t *testing.T) {
	l, bus := newLamp(t)
	var seen []bool
	bus.Subscribe(events.EventPanelToggled, func(e events.Event) { seen = append(seen, e.On) })

	start := l.Settings.ShowPanel
	l.Update(frame(false, true))
	if l.Settings.ShowPanel == start {
		t.Fatal("toggle did not flip the panel")
	}
	if !l.Update(frame(false, false)).Empty() {
		t.Fatal("hidden panel still draws")
	}
	l.Update(frame(false, true))
	if l.Settings.ShowPanel != start {
		t.Fatal("two toggles did not restore the panel")
	}
	if len(seen) != 2 || seen[0] == seen[1] {
		t.Fatalf("toggle events %v", seen)
	}
}

func TestClearBallsEmptiesAndReports(t *testing.T) {
	l, bus := newLamp(t)
	removed := -1
	bus.Subscribe(events.EventBallsCleared, func(e events.Event) { removed = e.Count })

	for i := 0; i < 3; i++ {
		l.Update(frame(true, false))
	}
	l.ClearBalls()
	if len(l.Balls()) != 0 || removed != 3 {
		t.Fatalf("after clear: %d balls, event count %d", len(l.Balls()), removed)
	}
}

func TestHidePanelOnlyOnce(t *testing.T) {
	l, bus := newLamp(t)
	n := 0
	bus.Subscribe(events.EventPanelToggled, func(events.Event) { n++ })
	l.HidePanel()
	l.HidePanel()
	if l.Settings.ShowPanel || n != 1 {
		t.Fatalf("show=%v events=%d", l.Settings.ShowPanel, n)
	}
}

func TestUpdateKeepsBallsInside(t *testing.T) {
	l, _ := newLamp(t)
	l.Settings.Speed = 1
	for i := 0; i < 20; i++ {
		l.Update(frame(true, false))
	}
	in := frame(false, false)
	in.DT = 0.1
	for i := 0; i < 200; i++ {
		l.Update(in)
	}
	for i, b := range l.Balls() {
		if b.Pos[0] < 0 || b.Pos[0] > 1 || b.Pos[1] < 0 || b.Pos[1] > 1 {
			t.Fatalf("ball %d escaped to %v", i, b.Pos)
		}
	}
}

func TestUniformsFollowSettings(t *testing.T) {
	l, _ := newLamp(t)
	l.Update(frame(true, false))
	l.Update(frame(true, false))
	l.Settings.Color[1] = 0.5

	u := l.Uniforms(800, 600)
	if u.Count != 2 || u.BaseColor != l.Settings.Color {
		t.Fatalf("count %d color %v", u.Count, u.BaseColor)
	}
	b := l.Balls()[1]
	if u.Metaballs[1][0] != b.Pos[0] || u.Metaballs[1][2] != b.Radius {
		t.Fatalf("slot 1 = %v, ball %+v", u.Metaballs[1], b)
	}
}

type fakePlayer struct {
	cues   []sfx.Cue
	params []float64
}

func (f *fakePlayer) Play(c sfx.Cue, param float64) {
	f.cues = append(f.cues, c)
	f.params = append(f.params, param)
}

func TestWirePlaysCues(t *testing.T) {
	l, bus := newLamp(t)
	p := &fakePlayer{}
	Wire(bus, p)

	l.Settings.BallRadius = 0.1
	l.Update(frame(true, false))
	l.ClearBalls()
	l.ClearBalls() // nothing left, no sweep
	l.Update(frame(false, true))

	want := []sfx.Cue{sfx.CueSpawn, sfx.CueClear, sfx.CueToggle}
	if len(p.cues) != len(want) {
		t.Fatalf("cues = %v, want %v", p.cues, want)
	}
	for i := range want {
		if p.cues[i] != want[i] {
			t.Fatalf("cues = %v, want %v", p.cues, want)
		}
	}
	if math.Abs(p.params[0]-0.1) > 1e-6 || p.params[1] != 1 {
		t.Fatalf("params = %v", p.params)
	}
}

func TestWireWithoutPlayer(t *testing.T) {
	bus := events.NewBus()
	Wire(bus, nil)
	bus.Emit(events.Event{Type: events.EventSpawnRejected, Count: sim.MaxBalls})
}
