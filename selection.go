package easel

import "math"

// gestureState tracks what the controller is doing between pointer down and
// pointer up.
type gestureState uint8

const (
	gestureIdle gestureState = iota
	gestureMoving
	gestureResizing
	gestureRectSelecting
)

// Controller interprets pointer and keyboard input against a Store to
// select, move, and resize objects.
//
// A pointer gesture is a state machine: Idle → {Moving | Resizing |
// RectSelecting} on pointer down, back to Idle on pointer up. Rect selection
// is visual-only feedback; releasing it selects nothing.
type Controller struct {
	store *Store

	state        gestureState
	activeHandle Handle
	origBounds   Rect    // selection bounds when the resize began
	origGeometry *Object // clone taken at gesture start, for Cancel
	lastX, lastY float64 // previous pointer position (moves are incremental)
	dirty        bool    // geometry changed during this gesture

	marqueeStart Vec2
	marquee      Rect
	marqueeShown bool

	// CanvasChanged publishes the commit request when a modifying gesture
	// completes or the selection is deleted.
	CanvasChanged Topic[CanvasChanged]
}

// NewController creates a controller operating on the given store.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// PointerDown begins a gesture at (x, y). Priority order: a resize handle of
// the current selection, then the body of the current selection, then a hit
// test against the whole store. A miss deselects and starts the visual
// selection rectangle.
func (c *Controller) PointerDown(x, y float64) {
	c.lastX, c.lastY = x, y
	c.dirty = false

	if sel, ok := c.store.Selected(); ok {
		if h := handleAt(sel.Bounds(), x, y); h != HandleNone {
			c.state = gestureResizing
			c.activeHandle = h
			c.origBounds = sel.Bounds()
			c.origGeometry = sel.Clone()
			return
		}
		if sel.Contains(x, y) {
			c.state = gestureMoving
			c.origGeometry = sel.Clone()
			return
		}
	}

	if hit, ok := c.store.HitTest(x, y); ok {
		c.store.Select(hit.ID)
		c.state = gestureIdle
		return
	}

	c.store.Deselect()
	c.state = gestureRectSelecting
	c.marqueeStart = Vec2{X: x, Y: y}
	c.marquee = Rect{X: x, Y: y}
	c.marqueeShown = true
}

// PointerMove continues the active gesture. Moves forward the delta from the
// previous pointer position; resizes recompute the full box from the
// original bounds and the anchor handle every time.
func (c *Controller) PointerMove(x, y float64) {
	switch c.state {
	case gestureMoving:
		dx := x - c.lastX
		dy := y - c.lastY
		if dx != 0 || dy != 0 {
			c.store.Move(c.store.SelectedID(), dx, dy)
			c.dirty = true
		}
	case gestureResizing:
		box := resizeBox(c.origBounds, c.activeHandle, x, y)
		c.store.setBounds(c.store.SelectedID(), box)
		c.dirty = true
	case gestureRectSelecting:
		c.marquee = rectFromCorners(c.marqueeStart, Vec2{X: x, Y: y})
	}
	c.lastX, c.lastY = x, y
}

// PointerUp ends the gesture. A move or resize that changed geometry commits
// by publishing CanvasChanged; the selection rectangle is simply discarded.
func (c *Controller) PointerUp(x, y float64) {
	committed := (c.state == gestureMoving || c.state == gestureResizing) && c.dirty
	c.reset()
	if committed {
		c.CanvasChanged.Publish(CanvasChanged{})
	}
}

// Cancel abandons the gesture in progress, restoring the pre-gesture
// geometry without committing a history entry. Called from a tool's
// deactivate path.
func (c *Controller) Cancel() {
	if (c.state == gestureMoving || c.state == gestureResizing) && c.origGeometry != nil {
		c.store.restoreGeometry(c.store.SelectedID(), c.origGeometry)
	}
	c.reset()
}

func (c *Controller) reset() {
	c.state = gestureIdle
	c.activeHandle = HandleNone
	c.origGeometry = nil
	c.dirty = false
	c.marqueeShown = false
}

// DeleteSelected removes the selected object from the store and commits.
// No-op when nothing is selected. Bound to Delete/Backspace by Surface.
func (c *Controller) DeleteSelected() {
	id := c.store.SelectedID()
	if id == "" {
		return
	}
	c.store.Delete(id)
	c.CanvasChanged.Publish(CanvasChanged{})
}

// CursorAt reports the pointer shape for hovering at (x, y) with no button
// pressed: a compass resize cursor over a handle, the move cursor over the
// selected object, the default otherwise.
func (c *Controller) CursorAt(x, y float64) Cursor {
	sel, ok := c.store.Selected()
	if !ok {
		return CursorDefault
	}
	if h := handleAt(sel.Bounds(), x, y); h != HandleNone {
		return cursorForHandle(h)
	}
	if sel.Contains(x, y) {
		return CursorMove
	}
	return CursorDefault
}

// Marquee returns the visual selection rectangle, if one is being dragged.
func (c *Controller) Marquee() (Rect, bool) {
	return c.marquee, c.marqueeShown
}

// --- Handle geometry ---

// handleOrder is the fixed enumeration order of the 8 resize handles.
var handleOrder = [8]Handle{
	HandleNW, HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW,
}

// handlePosition returns the anchor point of handle h on bounds b.
func handlePosition(b Rect, h Handle) Vec2 {
	midX := b.X + b.Width/2
	midY := b.Y + b.Height/2
	switch h {
	case HandleNW:
		return Vec2{X: b.X, Y: b.Y}
	case HandleN:
		return Vec2{X: midX, Y: b.Y}
	case HandleNE:
		return Vec2{X: b.X + b.Width, Y: b.Y}
	case HandleE:
		return Vec2{X: b.X + b.Width, Y: midY}
	case HandleSE:
		return Vec2{X: b.X + b.Width, Y: b.Y + b.Height}
	case HandleS:
		return Vec2{X: midX, Y: b.Y + b.Height}
	case HandleSW:
		return Vec2{X: b.X, Y: b.Y + b.Height}
	case HandleW:
		return Vec2{X: b.X, Y: midY}
	default:
		return Vec2{}
	}
}

// handleAt returns the handle of bounds b within handleSize of (x, y), or
// HandleNone.
func handleAt(b Rect, x, y float64) Handle {
	p := Vec2{X: x, Y: y}
	for _, h := range handleOrder {
		if Distance(p, handlePosition(b, h)) <= handleSize {
			return h
		}
	}
	return HandleNone
}

// cursorForHandle maps a handle to its 8-way compass resize cursor.
func cursorForHandle(h Handle) Cursor {
	switch h {
	case HandleN, HandleS:
		return CursorResizeNS
	case HandleE, HandleW:
		return CursorResizeEW
	case HandleNW, HandleSE:
		return CursorResizeNWSE
	case HandleNE, HandleSW:
		return CursorResizeNESW
	default:
		return CursorDefault
	}
}

// resizeBox computes the new bounds from the original bounds and the dragged
// handle at pointer (px, py). Corner handles move two edges; edge handles
// move one. The edges not touching the handle stay fixed, so the resize
// anchors on the opposite corner or edge. Width and height are floored at
// minObjectSize against the anchored edge.
func resizeBox(orig Rect, h Handle, px, py float64) Rect {
	x1 := orig.X
	y1 := orig.Y
	x2 := orig.X + orig.Width
	y2 := orig.Y + orig.Height

	switch h {
	case HandleNW:
		x1, y1 = px, py
	case HandleN:
		y1 = py
	case HandleNE:
		x2, y1 = px, py
	case HandleE:
		x2 = px
	case HandleSE:
		x2, y2 = px, py
	case HandleS:
		y2 = py
	case HandleSW:
		x1, y2 = px, py
	case HandleW:
		x1 = px
	}

	// Clamp the dragged edges so the box never shrinks below the floor;
	// the anchored edges do not move.
	switch h {
	case HandleNW, HandleW, HandleSW:
		x1 = math.Min(x1, x2-minObjectSize)
	case HandleNE, HandleE, HandleSE:
		x2 = math.Max(x2, x1+minObjectSize)
	}
	switch h {
	case HandleNW, HandleN, HandleNE:
		y1 = math.Min(y1, y2-minObjectSize)
	case HandleSW, HandleS, HandleSE:
		y2 = math.Max(y2, y1+minObjectSize)
	}

	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// rectFromCorners builds the normalized rect spanning two opposite corners.
func rectFromCorners(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}
