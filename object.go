package easel

import (
	"math"
	"time"
)

// hitTolerance is the minimum pick distance in pixels for stroke-based
// shapes. Thin lines are still selectable: the effective pick distance is
// max(strokeWidth, hitTolerance).
const hitTolerance = 5.0

// Properties holds the visual style of an Object.
type Properties struct {
	StrokeColor Color
	FillColor   Color
	StrokeWidth float64
	EnableFill  bool
	Opacity     float64
	LineCap     LineCap
}

// defaultProperties returns the style applied by the typed constructors.
func defaultProperties() Properties {
	return Properties{
		StrokeColor: ColorBlack,
		FillColor:   ColorWhite,
		StrokeWidth: 2,
		Opacity:     1,
		LineCap:     LineCapRound,
	}
}

// Object is a single drawable element. Which geometry fields are
// authoritative depends on Type:
//
//   - ShapeRectangle: X, Y, Width, Height
//   - ShapeCircle: X, Y (center) and Radius
//   - ShapeLine, ShapeArrow: Points (exactly 2 entries)
//   - ShapeFreehand: Path
//
// For point-bearing shapes X, Y, Width, Height mirror the point envelope and
// are kept consistent by every mutating operation.
//
// Objects are owned by a Store after Add; callers hold them by ID only.
type Object struct {
	ID       string
	Type     ShapeType
	X, Y     float64
	Width    float64
	Height   float64
	Rotation float64
	Radius   float64
	Path     []Vec2
	Points   []Vec2
	Props    Properties
	Created  time.Time
	Visible  bool
}

// NewRectangle creates an axis-aligned rectangle object.
func NewRectangle(x, y, w, h float64) *Object {
	return &Object{
		Type:  ShapeRectangle,
		X:     x,
		Y:     y,
		Width: w, Height: h,
		Props: defaultProperties(),
	}
}

// NewCircle creates a circle object centered at (cx, cy).
func NewCircle(cx, cy, r float64) *Object {
	return &Object{
		Type:   ShapeCircle,
		X:      cx,
		Y:      cy,
		Radius: r,
		Width:  2 * r,
		Height: 2 * r,
		Props:  defaultProperties(),
	}
}

// NewLine creates a line segment object from a to b.
func NewLine(a, b Vec2) *Object {
	o := &Object{
		Type:   ShapeLine,
		Points: []Vec2{a, b},
		Props:  defaultProperties(),
	}
	o.syncEnvelope()
	return o
}

// NewArrow creates a line with an arrowhead at b.
func NewArrow(a, b Vec2) *Object {
	o := &Object{
		Type:   ShapeArrow,
		Points: []Vec2{a, b},
		Props:  defaultProperties(),
	}
	o.syncEnvelope()
	return o
}

// NewFreehand creates a freehand polyline through the given points.
// The point slice is copied.
func NewFreehand(points []Vec2) *Object {
	o := &Object{
		Type:  ShapeFreehand,
		Path:  append([]Vec2(nil), points...),
		Props: defaultProperties(),
	}
	o.syncEnvelope()
	return o
}

// Clone returns a deep copy of the object. Slices are copied so mutating the
// clone never affects the original.
func (o *Object) Clone() *Object {
	c := *o
	if o.Path != nil {
		c.Path = append([]Vec2(nil), o.Path...)
	}
	if o.Points != nil {
		c.Points = append([]Vec2(nil), o.Points...)
	}
	return &c
}

// Bounds returns the object's axis-aligned bounding box.
func (o *Object) Bounds() Rect {
	switch o.Type {
	case ShapeRectangle:
		return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
	case ShapeCircle:
		return Rect{X: o.X - o.Radius, Y: o.Y - o.Radius, Width: 2 * o.Radius, Height: 2 * o.Radius}
	case ShapeLine, ShapeArrow:
		return Envelope(o.Points)
	case ShapeFreehand:
		return Envelope(o.Path)
	default:
		return Rect{}
	}
}

// Contains reports whether (x, y) hits the object. Invisible objects are
// never hit. The test is shape-specific: box containment for rectangles,
// center distance for circles, and clamped segment distance for strokes.
func (o *Object) Contains(x, y float64) bool {
	if !o.Visible {
		return false
	}
	p := Vec2{X: x, Y: y}
	switch o.Type {
	case ShapeRectangle:
		return o.Bounds().Contains(x, y)
	case ShapeCircle:
		return Distance(p, Vec2{X: o.X, Y: o.Y}) <= o.Radius
	case ShapeLine, ShapeArrow:
		return PointNearSegment(p, o.Points[0], o.Points[1], o.pickDistance())
	case ShapeFreehand:
		tol := o.pickDistance()
		for i := 1; i < len(o.Path); i++ {
			if PointNearSegment(p, o.Path[i-1], o.Path[i], tol) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// pickDistance is the stroke hit distance: the stroke width, floored at
// hitTolerance so hairlines stay selectable.
func (o *Object) pickDistance() float64 {
	return math.Max(o.Props.StrokeWidth, hitTolerance)
}

// translate moves the object by (dx, dy). Point-bearing shapes store
// absolute coordinates in both the envelope fields and the point list, so
// both are updated together.
func (o *Object) translate(dx, dy float64) {
	o.X += dx
	o.Y += dy
	for i := range o.Path {
		o.Path[i].X += dx
		o.Path[i].Y += dy
	}
	for i := range o.Points {
		o.Points[i].X += dx
		o.Points[i].Y += dy
	}
}

// scaleAboutCenter scales the object by (sx, sy) keeping its center fixed.
// Circles scale their radius by max(sx, sy). This is the programmatic resize
// path; interactive handle resizes go through applyBox instead.
func (o *Object) scaleAboutCenter(sx, sy float64) {
	center := o.Bounds().Center()
	switch o.Type {
	case ShapeRectangle:
		w := o.Width * sx
		h := o.Height * sy
		o.X = center.X - w/2
		o.Y = center.Y - h/2
		o.Width = w
		o.Height = h
	case ShapeCircle:
		o.Radius *= math.Max(sx, sy)
		o.Width = 2 * o.Radius
		o.Height = 2 * o.Radius
	case ShapeLine, ShapeArrow:
		for i := range o.Points {
			o.Points[i].X = center.X + (o.Points[i].X-center.X)*sx
			o.Points[i].Y = center.Y + (o.Points[i].Y-center.Y)*sy
		}
		o.syncEnvelope()
	case ShapeFreehand:
		for i := range o.Path {
			o.Path[i].X = center.X + (o.Path[i].X-center.X)*sx
			o.Path[i].Y = center.Y + (o.Path[i].Y-center.Y)*sy
		}
		o.syncEnvelope()
	}
}

// applyBox remaps the object's geometry into the given bounding box. Used by
// the handle-driven resize: the box is computed from the anchor handle, this
// just fits the shape into it.
func (o *Object) applyBox(box Rect) {
	switch o.Type {
	case ShapeRectangle:
		o.X = box.X
		o.Y = box.Y
		o.Width = box.Width
		o.Height = box.Height
	case ShapeCircle:
		c := box.Center()
		o.X = c.X
		o.Y = c.Y
		o.Radius = math.Min(box.Width, box.Height) / 2
		o.Width = 2 * o.Radius
		o.Height = 2 * o.Radius
	case ShapeLine, ShapeArrow:
		// Preserve the segment's diagonal orientation: each endpoint keeps
		// the side of the box it was on.
		a, b := o.Points[0], o.Points[1]
		if a.X <= b.X {
			o.Points[0].X = box.X
			o.Points[1].X = box.X + box.Width
		} else {
			o.Points[0].X = box.X + box.Width
			o.Points[1].X = box.X
		}
		if a.Y <= b.Y {
			o.Points[0].Y = box.Y
			o.Points[1].Y = box.Y + box.Height
		} else {
			o.Points[0].Y = box.Y + box.Height
			o.Points[1].Y = box.Y
		}
		o.syncEnvelope()
	case ShapeFreehand:
		// Scale every path point from the current envelope into the box.
		old := o.Bounds()
		sx, sy := 1.0, 1.0
		if old.Width > 0 {
			sx = box.Width / old.Width
		}
		if old.Height > 0 {
			sy = box.Height / old.Height
		}
		for i := range o.Path {
			o.Path[i].X = box.X + (o.Path[i].X-old.X)*sx
			o.Path[i].Y = box.Y + (o.Path[i].Y-old.Y)*sy
		}
		o.syncEnvelope()
	}
}

// copyGeometryFrom restores the geometry fields of o from src. Used by the
// gesture cancel path; identity and style are left untouched.
func (o *Object) copyGeometryFrom(src *Object) {
	o.X = src.X
	o.Y = src.Y
	o.Width = src.Width
	o.Height = src.Height
	o.Rotation = src.Rotation
	o.Radius = src.Radius
	if src.Path != nil {
		o.Path = append(o.Path[:0], src.Path...)
	}
	if src.Points != nil {
		o.Points = append(o.Points[:0], src.Points...)
	}
}

// syncEnvelope refreshes X, Y, Width, Height from the point list for
// point-bearing shapes.
func (o *Object) syncEnvelope() {
	var env Rect
	switch o.Type {
	case ShapeLine, ShapeArrow:
		env = Envelope(o.Points)
	case ShapeFreehand:
		env = Envelope(o.Path)
	default:
		return
	}
	o.X = env.X
	o.Y = env.Y
	o.Width = env.Width
	o.Height = env.Height
}
