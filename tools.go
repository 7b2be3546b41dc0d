package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// minDragDistance is the smallest pointer travel that produces a shape;
// anything shorter is treated as an accidental click.
const minDragDistance = 2.0

// minPenStep thins freehand input: sampled points closer than this to the
// previous one are dropped.
const minPenStep = 1.5

// Tool receives the surface's pointer gestures. Down/Drag/Up follow the
// press-move-release cycle of the left button; Hover fires while no button
// is held and reports the cursor to display. Deactivate abandons any gesture
// in progress without committing.
type Tool interface {
	Name() string
	Down(x, y float64)
	Drag(x, y float64)
	Up(x, y float64)
	Hover(x, y float64) Cursor
	Deactivate()
	DrawPreview(dst *ebiten.Image)
}

// --- Select tool ---

// SelectTool routes gestures to the surface's selection controller.
type SelectTool struct {
	surface *Surface
}

// NewSelectTool creates the selection/manipulation tool.
func NewSelectTool(s *Surface) *SelectTool {
	return &SelectTool{surface: s}
}

func (t *SelectTool) Name() string { return "select" }

func (t *SelectTool) Down(x, y float64) { t.surface.ctrl.PointerDown(x, y) }
func (t *SelectTool) Drag(x, y float64) { t.surface.ctrl.PointerMove(x, y) }
func (t *SelectTool) Up(x, y float64)   { t.surface.ctrl.PointerUp(x, y) }

func (t *SelectTool) Hover(x, y float64) Cursor {
	return t.surface.ctrl.CursorAt(x, y)
}

func (t *SelectTool) Deactivate() { t.surface.ctrl.Cancel() }

func (t *SelectTool) DrawPreview(dst *ebiten.Image) {}

// --- Pen tool ---

// PenTool draws freehand paths. Points accumulate during the drag and the
// finished path is appended to the store on release.
type PenTool struct {
	surface *Surface
	points  []Vec2
	active  bool
}

// NewPenTool creates the freehand drawing tool.
func NewPenTool(s *Surface) *PenTool {
	return &PenTool{surface: s}
}

func (t *PenTool) Name() string { return "pen" }

func (t *PenTool) Down(x, y float64) {
	t.active = true
	t.points = append(t.points[:0], Vec2{X: x, Y: y})
}

func (t *PenTool) Drag(x, y float64) {
	if !t.active {
		return
	}
	p := Vec2{X: x, Y: y}
	if Distance(t.points[len(t.points)-1], p) < minPenStep {
		return
	}
	t.points = append(t.points, p)
}

func (t *PenTool) Up(x, y float64) {
	if !t.active {
		return
	}
	t.Drag(x, y)
	if len(t.points) >= 2 {
		o := NewFreehand(t.points)
		o.Props = t.surface.style
		t.surface.store.Add(o)
		t.surface.commit()
	}
	t.reset()
}

func (t *PenTool) Hover(x, y float64) Cursor { return CursorDefault }

func (t *PenTool) Deactivate() { t.reset() }

func (t *PenTool) reset() {
	t.active = false
	t.points = t.points[:0]
}

// DrawPreview draws the in-progress stroke on the overlay so the user sees
// it before it is committed to the canvas.
func (t *PenTool) DrawPreview(dst *ebiten.Image) {
	if !t.active || len(t.points) < 2 {
		return
	}
	o := &Object{Type: ShapeFreehand, Path: t.points, Props: t.surface.style, Visible: true}
	drawObject(dst, o)
}

// --- Shape tools ---

// ShapeTool draws a rectangle, circle, line, or arrow by dragging out its
// two defining corners.
type ShapeTool struct {
	surface *Surface
	kind    ShapeType
	start   Vec2
	current Vec2
	active  bool
}

// NewRectangleTool creates a tool that drags out rectangles.
func NewRectangleTool(s *Surface) *ShapeTool {
	return &ShapeTool{surface: s, kind: ShapeRectangle}
}

// NewCircleTool creates a tool that drags out circles inscribed in the drag
// rectangle.
func NewCircleTool(s *Surface) *ShapeTool {
	return &ShapeTool{surface: s, kind: ShapeCircle}
}

// NewLineTool creates a tool that drags out line segments.
func NewLineTool(s *Surface) *ShapeTool {
	return &ShapeTool{surface: s, kind: ShapeLine}
}

// NewArrowTool creates a tool that drags out arrows.
func NewArrowTool(s *Surface) *ShapeTool {
	return &ShapeTool{surface: s, kind: ShapeArrow}
}

func (t *ShapeTool) Name() string { return t.kind.String() }

func (t *ShapeTool) Down(x, y float64) {
	t.active = true
	t.start = Vec2{X: x, Y: y}
	t.current = t.start
}

func (t *ShapeTool) Drag(x, y float64) {
	if t.active {
		t.current = Vec2{X: x, Y: y}
	}
}

func (t *ShapeTool) Up(x, y float64) {
	if !t.active {
		return
	}
	t.current = Vec2{X: x, Y: y}
	if o := t.build(); o != nil {
		o.Props = t.surface.style
		t.surface.store.Add(o)
		t.surface.commit()
	}
	t.active = false
}

func (t *ShapeTool) Hover(x, y float64) Cursor { return CursorDefault }

func (t *ShapeTool) Deactivate() { t.active = false }

// DrawPreview draws the in-progress shape on the overlay.
func (t *ShapeTool) DrawPreview(dst *ebiten.Image) {
	if !t.active {
		return
	}
	if o := t.build(); o != nil {
		o.Props = t.surface.style
		o.Visible = true
		drawObject(dst, o)
	}
}

// build constructs the object for the current drag, or nil if the drag is
// too small to mean anything.
func (t *ShapeTool) build() *Object {
	if Distance(t.start, t.current) < minDragDistance {
		return nil
	}
	switch t.kind {
	case ShapeRectangle:
		box := rectFromCorners(t.start, t.current)
		return NewRectangle(box.X, box.Y, box.Width, box.Height)
	case ShapeCircle:
		box := rectFromCorners(t.start, t.current)
		c := box.Center()
		r := min(box.Width, box.Height) / 2
		if r <= 0 {
			return nil
		}
		return NewCircle(c.X, c.Y, r)
	case ShapeLine:
		return NewLine(t.start, t.current)
	case ShapeArrow:
		return NewArrow(t.start, t.current)
	default:
		return nil
	}
}
