package sim

import "github.com/go-gl/mathgl/mgl32"

// Simulation owns the live balls and the RNG used to place new ones.
type Simulation struct {
	balls []Ball
	rng   *Rand
}

// New returns an empty simulation seeded for spawn placement.
func New(seed uint64) *Simulation {
	return &Simulation{
		balls: make([]Ball, 0, MaxBalls),
		rng:   NewRand(seed),
	}
}

// Balls exposes the live balls. The slice is only valid until the next Spawn,
// Add or Clear.
func (s *Simulation) Balls() []Ball { return s.balls }

// Len returns the number of live balls.
func (s *Simulation) Len() int { return len(s.balls) }

// Full reports whether the ball cap has been reached.
func (s *Simulation) Full() bool { return len(s.balls) >= MaxBalls }

// Spawn places a ball at a random position inside the spawn area with a
// random direction. It is a no-op once MaxBalls is reached.
func (s *Simulation) Spawn(radius float32) (Ball, bool) {
	if s.Full() {
		return Ball{}, false
	}
	b := Ball{
		Pos: mgl32.Vec2{
			s.rng.RangeF32(SpawnMin, SpawnMax),
			s.rng.RangeF32(SpawnMin, SpawnMax),
		},
		Dir: mgl32.Vec2{
			s.rng.RangeF32(DirMin, DirMax),
			s.rng.RangeF32(DirMin, DirMax),
		},
		Radius: radius,
	}
	s.balls = append(s.balls, b)
	return b, true
}

// Add appends b unless the simulation is full.
func (s *Simulation) Add(b Ball) bool {
	if s.Full() {
		return false
	}
	s.balls = append(s.balls, b)
	return true
}

// Clear removes every ball and returns how many were removed.
func (s *Simulation) Clear() int {
	n := len(s.balls)
	s.balls = s.balls[:0]
	return n
}

// Step advances the simulation by dt seconds on a width x height viewport.
func (s *Simulation) Step(speed, dt float32, width, height int) {
	Step(s.balls, speed, float32(width), float32(height), dt)
}
