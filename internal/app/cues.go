package app

import (
	"log"

	"lavalamp/internal/events"
	"lavalamp/internal/sfx"
)

// CuePlayer plays a synthesized cue. *audio.System implements it.
type CuePlayer interface {
	Play(c sfx.Cue, param float64)
}

// Wire subscribes the audio cues and log lines to bus. p may be nil.
func Wire(bus *events.Bus, p CuePlayer) {
	bus.Subscribe(events.EventSpawnRejected, func(e events.Event) {
		log.Printf("spawn ignored: %d balls is the limit", e.Count)
	})
	bus.Subscribe(events.EventBallsCleared, func(e events.Event) {
		log.Printf("cleared %d balls", e.Count)
	})
	if p == nil {
		return
	}
	bus.Subscribe(events.EventBallSpawned, func(e events.Event) {
		p.Play(sfx.CueSpawn, float64(e.Radius))
	})
	bus.Subscribe(events.EventSpawnRejected, func(events.Event) {
		p.Play(sfx.CueRejected, 0)
	})
	bus.Subscribe(events.EventBallsCleared, func(e events.Event) {
		if e.Count > 0 {
			p.Play(sfx.CueClear, float64(e.Count))
		}
	})
	bus.Subscribe(events.EventPanelToggled, func(e events.Event) {
		p.Play(sfx.CueToggle, 0)
	})
}
