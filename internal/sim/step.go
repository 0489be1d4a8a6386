package sim

// Step advances every ball by dir*speed*dt and reflects it off the viewport
// edges. A ball whose extent crosses 0 or 1 on an axis is clamped back onto
// the boundary and that axis of its direction is inverted. Balls do not
// collide with each other.
//
// A non-positive width or height (minimised window) leaves balls untouched.
func Step(balls []Ball, speed, width, height, dt float32) {
	if width <= 0 || height <= 0 {
		return
	}
	for i := range balls {
		b := &balls[i]
		b.Pos = b.Pos.Add(b.Dir.Mul(speed * dt))

		rx, ry := b.Extent(width, height)
		b.Pos[0], b.Dir[0] = reflect(b.Pos[0], b.Dir[0], rx)
		b.Pos[1], b.Dir[1] = reflect(b.Pos[1], b.Dir[1], ry)
	}
}

// reflect applies the low edge check before the high edge check.
func reflect(p, d, r float32) (float32, float32) {
	if p-r < 0 {
		p = r
		d = -d
	}
	if p+r > 1 {
		p = 1 - r
		d = -d
	}
	return p, d
}
