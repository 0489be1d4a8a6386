package sim

import "github.com/go-gl/mathgl/mgl32"

// Settings is the frame-loop owned tuning state. The UI panel and key
// handlers write it; the update and render steps read it.
type Settings struct {
	Speed      float32
	BallRadius float32
	Color      mgl32.Vec3
	ShowPanel  bool
}

// TogglePanel flips panel visibility and returns the new value.
func (s *Settings) TogglePanel() bool {
	s.ShowPanel = !s.ShowPanel
	return s.ShowPanel
}
