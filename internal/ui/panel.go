// Package ui implements the immediate-mode settings panel drawn over the
// metaballs.
package ui

import (
	"fmt"
	"image"
	"image/color"

	"lavalamp/internal/input"
	"lavalamp/internal/sim"
	"lavalamp/internal/text"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Actions are the panel effects that reach beyond Settings.
type Actions interface {
	ClearBalls()
	HidePanel()
}

type widgetID int

const (
	widgetNone widgetID = iota
	widgetClose
	widgetSpeed
	widgetRadius
	widgetSwatch
	widgetHue
	widgetSat
	widgetVal
	widgetClear
	widgetPanel
)

// Picker slider ranges.
var (
	hueRange = Range{Min: 0, Max: 359}
	satRange = Range{Min: 0, Max: 1}
	valRange = Range{Min: 0, Max: 1}
)

// Panel is the "Settings" window. It keeps only interaction state between
// frames; every value it shows is read from Settings each frame.
type Panel struct {
	Speed  Range
	Radius Range

	scale    int
	prevDown bool
	active   widgetID

	pickerOpen bool
	hsv        [3]float32
	synced     mgl32.Vec3
	hasSynced  bool

	hits map[widgetID]image.Rectangle
	list DrawList
}

// NewPanel builds a panel with the given slider ranges. scale multiplies
// every metric and the text size.
func NewPanel(speed, radius Range, scale int) *Panel {
	if scale < 1 {
		scale = 1
	}
	return &Panel{
		Speed:  speed,
		Radius: radius,
		scale:  scale,
		hits:   make(map[widgetID]image.Rectangle),
	}
}

// Frame runs the panel for one frame: it applies pointer interaction to s
// and act, and returns what to draw. The returned list is reused by the
// next call.
func (p *Panel) Frame(ptr input.Pointer, s *sim.Settings, balls int, act Actions) *DrawList {
	pressed := ptr.Down && !p.prevDown
	released := !ptr.Down && p.prevDown
	p.prevDown = ptr.Down
	p.list.Reset()
	clear(p.hits)

	if !s.ShowPanel {
		p.active = widgetNone
		return &p.list
	}

	f := frame{p: p, ptr: ptr, pressed: pressed, released: released}
	f.layout(s, balls, act)

	if released || !ptr.Down {
		p.active = widgetNone
	}
	return &p.list
}

// frame carries one Frame call's pointer state through the layout.
type frame struct {
	p        *Panel
	ptr      input.Pointer
	pressed  bool
	released bool
	y        int
}

func (f *frame) m(v int) int { return v * f.p.scale }

func (f *frame) layout(s *sim.Settings, balls int, act Actions) {
	p := f.p
	x0, w := f.m(anchorX), f.m(panelWidth)
	pad := f.m(padding)
	f.y = f.m(anchorY)

	// Slot 0 is the background; its height is known only at the end.
	p.list.rect(image.Rectangle{}, panelBg)

	titleH := f.m(titleHeight)
	p.list.rect(image.Rect(x0, f.y, x0+w, f.y+titleH), titleBg)
	p.list.text("Settings", x0+pad, f.y+(titleH-text.Height(p.scale))/2, p.scale, textColor)
	inset := f.m(3)
	closeRect := image.Rect(x0+w-titleH+inset, f.y+inset, x0+w-inset, f.y+titleH-inset)
	if f.button(widgetClose, closeRect, "x") {
		act.HidePanel()
	}
	f.y += titleH + pad

	s.Speed = f.slider(widgetSpeed, "Speed", s.Speed, p.Speed, x0+pad, w-2*pad)
	s.BallRadius = f.slider(widgetRadius, "Ball Radius", s.BallRadius, p.Radius, x0+pad, w-2*pad)

	f.y += f.m(4)
	f.colorRow(s, x0+pad, w-2*pad)

	f.y += pad
	bw := f.m(clearWidth)
	clearRect := image.Rect(x0+pad, f.y, x0+pad+bw, f.y+f.m(buttonHeight))
	if f.button(widgetClear, clearRect, "Clear Balls") {
		act.ClearBalls()
	}
	f.y += f.m(buttonHeight) + pad

	status := fmt.Sprintf("Balls: %d/%d", balls, sim.MaxBalls)
	p.list.text(status, x0+pad, f.y, p.scale, dimText)
	f.y += text.Height(p.scale) + f.m(4)
	p.list.text("Tab: panel  Space: spawn", x0+pad, f.y, p.scale, dimText)
	f.y += text.Height(p.scale) + pad

	bg := image.Rect(x0, f.m(anchorY), x0+w, f.y)
	p.list.Quads[0].Rect = bg
	p.hits[widgetPanel] = bg
}

// slider draws a labelled track and returns the (possibly dragged) value.
func (f *frame) slider(id widgetID, label string, v float32, r Range, x, w int) float32 {
	p := f.p
	th := text.Height(p.scale)
	p.list.text(label, x, f.y, p.scale, textColor)
	f.y += th + f.m(4)

	track := image.Rect(x, f.y, x+w, f.y+f.m(trackHeight))
	hit := image.Rect(track.Min.X, track.Min.Y-f.m(5), track.Max.X, track.Max.Y+f.m(5))
	p.hits[id] = hit

	hovered := pointIn(f.ptr.X, f.ptr.Y, hit)
	if f.pressed && hovered {
		p.active = id
	}
	if p.active == id && f.ptr.Down {
		v = r.At((f.ptr.X - float64(track.Min.X)) / float64(track.Dx()))
	} else {
		v = r.Clamp(v)
	}

	bg := trackBg
	if hovered || p.active == id {
		bg = trackHover
	}
	p.list.rect(track, bg)
	fill := int(r.Fraction(v) * float64(track.Dx()))
	p.list.rect(image.Rect(track.Min.X, track.Min.Y, track.Min.X+fill, track.Max.Y), trackFill)
	kw := f.m(knobWidth)
	kx := track.Min.X + fill - kw/2
	p.list.rect(image.Rect(kx, track.Min.Y-f.m(3), kx+kw, track.Max.Y+f.m(3)), knobColor)

	value := r.Format(v)
	p.list.text(value, x+w-text.Width(value, p.scale), f.y-th-f.m(4), p.scale, textColor)

	f.y += f.m(trackHeight) + f.m(rowGap)
	return v
}

// button draws a clickable rectangle. It reports a click on release when
// both the press and the release happened inside it.
func (f *frame) button(id widgetID, r image.Rectangle, label string) bool {
	p := f.p
	p.hits[id] = r
	hovered := pointIn(f.ptr.X, f.ptr.Y, r)
	if f.pressed && hovered {
		p.active = id
	}
	clicked := f.released && p.active == id && hovered

	bg := buttonBg
	switch {
	case hovered && p.active == id:
		bg = buttonActive
	case hovered:
		bg = buttonHover
	}
	p.list.rect(r, bg)
	if label != "" {
		tx := r.Min.X + (r.Dx()-text.Width(label, p.scale))/2
		ty := r.Min.Y + (r.Dy()-text.Height(p.scale))/2
		p.list.text(label, tx, ty, p.scale, textColor)
	}
	return clicked
}

// colorRow draws the swatch button with the hex value and, when the picker is
// open, hue/saturation/value sliders that drive s.Color.
func (f *frame) colorRow(s *sim.Settings, x, w int) {
	p := f.p
	p.syncHSV(s.Color)

	sz := f.m(buttonHeight)
	swatch := image.Rect(x, f.y, x+sz, f.y+sz)
	if f.button(widgetSwatch, swatch, "") {
		p.pickerOpen = !p.pickerOpen
	}
	border := f.m(2)
	p.list.rect(swatch.Inset(border), toRGBA(s.Color))

	c := colorOf(s.Color)
	label := c.Hex()
	p.list.text(label, swatch.Max.X+f.m(8), f.y+(sz-text.Height(p.scale))/2, p.scale, textColor)
	f.y += sz + f.m(rowGap)

	if !p.pickerOpen {
		return
	}
	h := f.slider(widgetHue, "Hue", p.hsv[0], hueRange, x, w)
	sat := f.slider(widgetSat, "Saturation", p.hsv[1], satRange, x, w)
	val := f.slider(widgetVal, "Value", p.hsv[2], valRange, x, w)
	if h != p.hsv[0] || sat != p.hsv[1] || val != p.hsv[2] {
		p.hsv = [3]float32{h, sat, val}
		rgb := colorful.Hsv(float64(h), float64(sat), float64(val)).Clamped()
		s.Color = mgl32.Vec3{float32(rgb.R), float32(rgb.G), float32(rgb.B)}
		p.synced = s.Color
	}
}

// syncHSV refreshes the picker from c when the colour changed outside the
// picker. Picker edits do not resync, so hue survives at zero saturation.
func (p *Panel) syncHSV(c mgl32.Vec3) {
	if p.hasSynced && c == p.synced {
		return
	}
	h, s, v := colorOf(c).Hsv()
	p.hsv = [3]float32{float32(h), float32(s), float32(v)}
	p.synced = c
	p.hasSynced = true
}

func colorOf(c mgl32.Vec3) colorful.Color {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped()
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	r, g, b := colorOf(c).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func pointIn(x, y float64, r image.Rectangle) bool {
	return x >= float64(r.Min.X) && x < float64(r.Max.X) && y >= float64(r.Min.Y) && y < float64(r.Max.Y)
}

// Metrics at scale 1, in pixels.
const (
	anchorX      = 20
	anchorY      = 20
	panelWidth   = 250
	padding      = 10
	titleHeight  = 22
	trackHeight  = 8
	knobWidth    = 6
	rowGap       = 10
	buttonHeight = 24
	clearWidth   = 110
)

var (
	panelBg      = color.RGBA{R: 16, G: 16, B: 20, A: 230}
	titleBg      = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	textColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	dimText      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg     = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	buttonHover  = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	buttonActive = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	trackBg      = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	trackHover   = color.RGBA{R: 70, G: 72, B: 84, A: 255}
	trackFill    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	knobColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
