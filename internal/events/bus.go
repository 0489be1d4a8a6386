// Package events is a synchronous publish/subscribe bus for things that
// happen to the simulation.
package events

type EventType int

const (
	EventBallSpawned EventType = iota
	EventSpawnRejected
	EventBallsCleared
	EventPanelToggled
)

func (t EventType) String() string {
	switch t {
	case EventBallSpawned:
		return "ball-spawned"
	case EventSpawnRejected:
		return "spawn-rejected"
	case EventBallsCleared:
		return "balls-cleared"
	case EventPanelToggled:
		return "panel-toggled"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	X, Y   float32
	Radius float32
	Count  int  // Balls removed for EventBallsCleared, live balls otherwise.
	On     bool // Panel visibility for EventPanelToggled.
}

type Handler func(Event)

type Bus struct {
	handlers map[EventType][]Handler
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

func (b *Bus) Subscribe(t EventType, fn Handler) {
	b.handlers[t] = append(b.handlers[t], fn)
}

// Emit runs every handler for e.Type inline, in subscription order.
func (b *Bus) Emit(e Event) {
	for _, fn := range b.handlers[e.Type] {
		fn(e)
	}
}
