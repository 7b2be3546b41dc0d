package easel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	arrowheadLength = 14.0
	arrowheadAngle  = math.Pi / 6
	handleBoxSize   = 7.0 // drawn size of a resize handle square
	dashLength      = 6.0
	dashPeriod      = 2 * dashLength
)

var (
	selectionColor = Color{R: 0.18, G: 0.45, B: 0.95, A: 1}
	marqueeColor   = Color{R: 0.18, G: 0.45, B: 0.95, A: 0.8}
)

// Renderer repaints the object set into a Canvas and draws the transient
// selection decoration (bounds, handles, marquee) onto a separate target so
// decoration is never baked into history snapshots.
type Renderer struct {
	store  *Store
	canvas *Canvas

	redrawing bool // guards against re-entrant repaints from change events

	ants *gween.Tween // marching-ants phase for dashed outlines
	dash float64
}

// NewRenderer creates a renderer painting store contents into canvas.
func NewRenderer(store *Store, canvas *Canvas) *Renderer {
	return &Renderer{
		store:  store,
		canvas: canvas,
		ants:   gween.New(0, dashPeriod, 0.5, ease.Linear),
	}
}

// Update advances the marching-ants animation by dt seconds.
func (r *Renderer) Update(dt float64) {
	val, finished := r.ants.Update(float32(dt))
	r.dash = float64(val)
	if finished {
		r.ants.Reset()
	}
}

// Redraw clears the canvas and repaints every visible object in paint
// order. Re-entrant calls (an object mutation event firing mid-draw) are
// dropped: the repaint already in progress covers them.
func (r *Renderer) Redraw() {
	if r.redrawing {
		return
	}
	r.redrawing = true
	defer func() { r.redrawing = false }()

	r.canvas.Clear()
	dst := r.canvas.Image()
	for _, o := range r.store.Objects() {
		if !o.Visible {
			continue
		}
		drawObject(dst, o)
	}
}

// DrawOverlay paints selection decoration for the current frame: the dashed
// selection outline with its 8 handles, and the drag-select marquee.
func (r *Renderer) DrawOverlay(dst *ebiten.Image, ctrl *Controller) {
	if sel, ok := r.store.Selected(); ok {
		b := sel.Bounds()
		drawDashedRect(dst, b, r.dash, selectionColor)
		for _, h := range handleOrder {
			drawHandle(dst, handlePosition(b, h))
		}
	}
	if ctrl != nil {
		if m, ok := ctrl.Marquee(); ok && !m.IsEmpty() {
			drawDashedRect(dst, m, r.dash, marqueeColor)
		}
	}
}

// drawObject rasterizes a single object. The switch is exhaustive over
// ShapeType; adding a shape means extending it.
func drawObject(dst *ebiten.Image, o *Object) {
	stroke := o.Props.StrokeColor.withOpacity(o.Props.Opacity).toRGBA()
	fill := o.Props.FillColor.withOpacity(o.Props.Opacity).toRGBA()
	sw := float32(o.Props.StrokeWidth)

	switch o.Type {
	case ShapeRectangle:
		if o.Props.EnableFill {
			vector.DrawFilledRect(dst, float32(o.X), float32(o.Y),
				float32(o.Width), float32(o.Height), fill, true)
		}
		vector.StrokeRect(dst, float32(o.X), float32(o.Y),
			float32(o.Width), float32(o.Height), sw, stroke, true)
	case ShapeCircle:
		if o.Props.EnableFill {
			vector.DrawFilledCircle(dst, float32(o.X), float32(o.Y),
				float32(o.Radius), fill, true)
		}
		vector.StrokeCircle(dst, float32(o.X), float32(o.Y),
			float32(o.Radius), sw, stroke, true)
	case ShapeLine:
		a, b := o.Points[0], o.Points[1]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y), sw, stroke, true)
	case ShapeArrow:
		a, b := o.Points[0], o.Points[1]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y), sw, stroke, true)
		drawArrowhead(dst, a, b, sw, stroke)
	case ShapeFreehand:
		for i := 1; i < len(o.Path); i++ {
			p, q := o.Path[i-1], o.Path[i]
			vector.StrokeLine(dst, float32(p.X), float32(p.Y),
				float32(q.X), float32(q.Y), sw, stroke, true)
		}
		if o.Props.LineCap == LineCapRound && o.Props.StrokeWidth > 2 {
			// Round the segment joints so fast strokes look continuous.
			for _, p := range o.Path {
				vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y),
					sw/2, stroke, true)
			}
		}
	}
}

// drawArrowhead draws the two barbs of an arrow terminating at b.
func drawArrowhead(dst *ebiten.Image, a, b Vec2, sw float32, clr colorRGBA) {
	angle := Angle(a, b)
	for _, da := range [2]float64{arrowheadAngle, -arrowheadAngle} {
		tip := Vec2{
			X: b.X - arrowheadLength*math.Cos(angle+da),
			Y: b.Y - arrowheadLength*math.Sin(angle+da),
		}
		vector.StrokeLine(dst, float32(b.X), float32(b.Y),
			float32(tip.X), float32(tip.Y), sw, clr, true)
	}
}

// drawHandle draws one resize handle: a white square with a blue border.
func drawHandle(dst *ebiten.Image, p Vec2) {
	half := float32(handleBoxSize / 2)
	x := float32(p.X) - half
	y := float32(p.Y) - half
	vector.DrawFilledRect(dst, x, y, float32(handleBoxSize), float32(handleBoxSize),
		ColorWhite.toRGBA(), true)
	vector.StrokeRect(dst, x, y, float32(handleBoxSize), float32(handleBoxSize),
		1, selectionColor.toRGBA(), true)
}

// drawDashedRect strokes the rectangle outline with marching dashes offset
// by phase.
func drawDashedRect(dst *ebiten.Image, r Rect, phase float64, clr Color) {
	c := clr.toRGBA()
	corners := [5]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y},
	}
	// Walk the perimeter as one path so the dash pattern flows around
	// corners instead of restarting on each edge.
	offset := math.Mod(phase, dashPeriod)
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[i+1]
		length := Distance(a, b)
		pos := -offset
		for pos < length {
			start := math.Max(pos, 0)
			end := math.Min(pos+dashLength, length)
			if end > start {
				p := Lerp(a, b, start/length)
				q := Lerp(a, b, end/length)
				vector.StrokeLine(dst, float32(p.X), float32(p.Y),
					float32(q.X), float32(q.Y), 1, c, true)
			}
			pos += dashPeriod
		}
		offset = math.Mod(offset+length, dashPeriod)
	}
}

// withOpacity returns the color with its alpha multiplied by op.
func (c Color) withOpacity(op float64) Color {
	c.A *= op
	return c
}
