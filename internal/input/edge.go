// Package input turns polled button levels into press edges and maps the
// cursor into framebuffer pixels.
package input

// Edges tracks the previous level of a set of buttons keyed by K. Poll each
// key once per frame.
type Edges[K comparable] struct {
	prev map[K]bool
}

func NewEdges[K comparable]() *Edges[K] {
	return &Edges[K]{prev: make(map[K]bool)}
}

// Pressed records the current level of k and reports a rising edge.
func (e *Edges[K]) Pressed(k K, down bool) bool {
	jp := down && !e.prev[k]
	e.prev[k] = down
	return jp
}
