package sim

import "github.com/go-gl/mathgl/mgl32"

// MaxBalls caps the number of live metaballs. The metaball shader declares a
// uniform array of exactly this length.
const MaxBalls = 100

// Spawn area and direction bounds for new balls.
const (
	SpawnMin = 0.1
	SpawnMax = 0.9
	DirMin   = -1.0
	DirMax   = 1.0
)

// Ball is a single metaball. Pos is in normalized viewport coordinates (0..1
// on both axes), Dir is unnormalized with components in [-1, 1].
type Ball struct {
	Pos    mgl32.Vec2
	Dir    mgl32.Vec2
	Radius float32
}

// Extent returns the ball radius per axis, corrected so the ball looks round
// on a width x height viewport.
func (b Ball) Extent(width, height float32) (rx, ry float32) {
	avg := (width + height) / 2
	return b.Radius * avg / width, b.Radius * avg / height
}
