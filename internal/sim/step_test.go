package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStepMovesByDirSpeedDt(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{0.5, 0.5}, Dir: mgl32.Vec2{1, -0.5}, Radius: 0.01}}
	Step(balls, 0.2, 800, 800, 0.5)

	want := mgl32.Vec2{0.6, 0.45}
	if !balls[0].Pos.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("pos = %v, want %v", balls[0].Pos, want)
	}
	if balls[0].Dir != (mgl32.Vec2{1, -0.5}) {
		t.Fatalf("direction changed without reaching an edge: %v", balls[0].Dir)
	}
}

func TestStepReflectsHighX(t *testing.T) {
	const w, h = 1600, 900
	b := Ball{Pos: mgl32.Vec2{0.97, 0.5}, Dir: mgl32.Vec2{0.8, 0}, Radius: 0.05}
	balls := []Ball{b}
	Step(balls, 0.5, w, h, 0.1)

	rx, _ := b.Extent(w, h)
	if balls[0].Pos[0] != 1-rx {
		t.Fatalf("x = %v, want exactly %v", balls[0].Pos[0], 1-rx)
	}
	if balls[0].Dir[0] != -0.8 {
		t.Fatalf("x direction = %v, want -0.8", balls[0].Dir[0])
	}
	if balls[0].Dir[1] != 0 {
		t.Fatalf("y direction = %v, want 0", balls[0].Dir[1])
	}
}

func TestStepReflectsEveryEdge(t *testing.T) {
	const w, h = 1000, 500
	cases := []struct {
		name    string
		ball    Ball
		axis    int
		wantPos func(rx, ry float32) float32
	}{
		{"low x", Ball{Pos: mgl32.Vec2{0.01, 0.5}, Dir: mgl32.Vec2{-1, 0}, Radius: 0.04}, 0,
			func(rx, _ float32) float32 { return rx }},
		{"high x", Ball{Pos: mgl32.Vec2{0.99, 0.5}, Dir: mgl32.Vec2{1, 0}, Radius: 0.04}, 0,
			func(rx, _ float32) float32 { return 1 - rx }},
		{"low y", Ball{Pos: mgl32.Vec2{0.5, 0.01}, Dir: mgl32.Vec2{0, -1}, Radius: 0.04}, 1,
			func(_, ry float32) float32 { return ry }},
		{"high y", Ball{Pos: mgl32.Vec2{0.5, 0.99}, Dir: mgl32.Vec2{0, 1}, Radius: 0.04}, 1,
			func(_, ry float32) float32 { return 1 - ry }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			balls := []Ball{tc.ball}
			Step(balls, 0.1, w, h, 1.0/60)
			rx, ry := tc.ball.Extent(w, h)
			if got, want := balls[0].Pos[tc.axis], tc.wantPos(rx, ry); got != want {
				t.Fatalf("pos[%d] = %v, want %v", tc.axis, got, want)
			}
			if got, want := balls[0].Dir[tc.axis], -tc.ball.Dir[tc.axis]; got != want {
				t.Fatalf("dir[%d] = %v, want %v", tc.axis, got, want)
			}
		})
	}
}

func TestStepKeepsBallsInViewport(t *testing.T) {
	viewports := [][2]float32{{1920, 1080}, {1080, 1920}, {800, 800}, {2560, 1440}}
	rng := NewRand(7)
	for _, vp := range viewports {
		balls := make([]Ball, 0, MaxBalls)
		for i := 0; i < MaxBalls; i++ {
			balls = append(balls, Ball{
				Pos:    mgl32.Vec2{rng.RangeF32(0, 1), rng.RangeF32(0, 1)},
				Dir:    mgl32.Vec2{rng.RangeF32(-1, 1), rng.RangeF32(-1, 1)},
				Radius: rng.RangeF32(0, 0.5),
			})
		}
		for frame := 0; frame < 600; frame++ {
			Step(balls, 1.0, vp[0], vp[1], 0.1)
			for i, b := range balls {
				if b.Pos[0] < 0 || b.Pos[0] > 1 || b.Pos[1] < 0 || b.Pos[1] > 1 {
					t.Fatalf("viewport %v frame %d ball %d out of range: %v (r=%v)", vp, frame, i, b.Pos, b.Radius)
				}
			}
		}
	}
}

func TestStepZeroViewportIsNoop(t *testing.T) {
	balls := []Ball{{Pos: mgl32.Vec2{0.5, 0.5}, Dir: mgl32.Vec2{1, 1}, Radius: 0.1}}
	Step(balls, 1, 0, 600, 1)
	Step(balls, 1, 800, 0, 1)
	if balls[0].Pos != (mgl32.Vec2{0.5, 0.5}) {
		t.Fatalf("ball moved on an empty viewport: %v", balls[0].Pos)
	}
}

func TestExtentSquareViewport(t *testing.T) {
	rx, ry := Ball{Radius: 0.2}.Extent(640, 640)
	if rx != 0.2 || ry != 0.2 {
		t.Fatalf("extent = (%v, %v), want (0.2, 0.2)", rx, ry)
	}
}
