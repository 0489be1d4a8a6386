package render

import (
	"fmt"

	"lavalamp/internal/shader"
	"lavalamp/internal/text"
	"lavalamp/internal/ui"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer draws one frame: the metaball field, then the panel on top.
type Renderer struct {
	balls   *Metaballs
	overlay *Overlay
}

// NewRenderer needs a current GL context with gl.Init already done.
func NewRenderer(atlas *text.Atlas) (*Renderer, error) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 1)

	balls, err := NewMetaballs()
	if err != nil {
		return nil, err
	}
	overlay, err := NewOverlay(atlas)
	if err != nil {
		balls.Destroy()
		return nil, fmt.Errorf("overlay: %w", err)
	}
	return &Renderer{balls: balls, overlay: overlay}, nil
}

// Frame clears the framebuffer and draws u then panel.
func (r *Renderer) Frame(u *shader.Uniforms, panel *ui.DrawList, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.balls.Draw(u)
	r.overlay.Draw(panel, fbW, fbH)
}

func (r *Renderer) Destroy() {
	r.overlay.Destroy()
	r.balls.Destroy()
}
