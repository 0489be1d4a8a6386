package shader

import (
	"lavalamp/internal/sim"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names as declared in metaballs.frag.
const (
	UniformMetaballs  = "metaballs"
	UniformCount      = "count"
	UniformThreshold  = "threshold"
	UniformResolution = "resolution"
	UniformBaseColor  = "base_color"
)

// Threshold is the field value at which a pixel joins the silhouette.
const Threshold float32 = 1.0

// Uniforms is one frame's worth of metaball uniform values, laid out the way
// glUniform3fv expects the metaballs array.
type Uniforms struct {
	Metaballs  [sim.MaxBalls]mgl32.Vec3
	Count      int32
	Threshold  float32
	Resolution mgl32.Vec2
	BaseColor  mgl32.Vec3
}

// Pack fills u from the live balls. Slots past the last ball are zeroed and
// balls beyond sim.MaxBalls are ignored.
func Pack(u *Uniforms, balls []sim.Ball, width, height int, color mgl32.Vec3) {
	n := min(len(balls), sim.MaxBalls)
	for i := 0; i < n; i++ {
		b := balls[i]
		u.Metaballs[i] = mgl32.Vec3{b.Pos[0], b.Pos[1], b.Radius}
	}
	clear(u.Metaballs[n:])
	u.Count = int32(n)
	u.Threshold = Threshold
	u.Resolution = mgl32.Vec2{float32(width), float32(height)}
	u.BaseColor = color
}
