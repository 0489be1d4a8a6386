package input

// Pointer is the mouse state for one frame in framebuffer pixels.
type Pointer struct {
	X, Y float64
	Down bool
}

// ToFramebuffer scales a cursor position reported in window coordinates to
// framebuffer pixels, which differ on HiDPI displays.
func ToFramebuffer(cx, cy float64, winW, winH, fbW, fbH int) (float64, float64) {
	if winW <= 0 || winH <= 0 {
		return cx, cy
	}
	return cx * float64(fbW) / float64(winW), cy * float64(fbH) / float64(winH)
}
