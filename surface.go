package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the application root of a drawing canvas. It owns the object
// store, the raster history, the selection controller, the offscreen canvas,
// and the renderer, and wires pointer and keyboard input to the active tool.
//
// Surface implements the update/draw halves of an [ebiten.Game]; embed it in
// your game type or use [Run].
type Surface struct {
	store    *Store
	history  *History
	ctrl     *Controller
	canvas   *Canvas
	renderer *Renderer

	tool  Tool
	style Properties // applied to objects created by drawing tools

	needsRedraw bool
	cursor      Cursor

	// Input edge tracking. Easel is single-threaded: input is polled once
	// per Update tick, in event order.
	mouseDown     bool
	prevDelete    bool
	prevBackspace bool
}

// NewSurface creates a drawing surface with a canvas of the given pixel
// size and the default history depth. The initial blank canvas is pushed as
// the history baseline so the first drawn shape can be undone.
func NewSurface(w, h int) *Surface {
	return NewSurfaceWithHistory(w, h, DefaultMaxHistory)
}

// NewSurfaceWithHistory creates a drawing surface retaining at most
// maxHistory snapshots.
func NewSurfaceWithHistory(w, h, maxHistory int) *Surface {
	store := NewStore()
	canvas := NewCanvas(w, h)
	s := &Surface{
		store:    store,
		history:  NewHistory(maxHistory),
		ctrl:     NewController(store),
		canvas:   canvas,
		renderer: NewRenderer(store, canvas),
		style:    defaultProperties(),
	}
	s.tool = NewSelectTool(s)

	store.Events.Changed.Subscribe(func(ObjectsChanged) {
		s.needsRedraw = true
	})
	s.ctrl.CanvasChanged.Subscribe(func(CanvasChanged) {
		s.commit()
	})

	s.history.Push(canvas.Capture())
	return s
}

// Store returns the object store.
func (s *Surface) Store() *Store { return s.store }

// History returns the undo/redo history.
func (s *Surface) History() *History { return s.history }

// Controller returns the selection controller.
func (s *Surface) Controller() *Controller { return s.ctrl }

// Canvas returns the offscreen canvas.
func (s *Surface) Canvas() *Canvas { return s.canvas }

// Cursor returns the pointer shape the host should display this frame.
func (s *Surface) Cursor() Cursor { return s.cursor }

// Style returns the properties applied to newly drawn objects.
func (s *Surface) Style() Properties { return s.style }

// SetStyle sets the properties applied to newly drawn objects.
func (s *Surface) SetStyle(p Properties) { s.style = p }

// SetTool switches the active tool, running the old tool's deactivate path
// first so an in-flight gesture is abandoned without committing.
func (s *Surface) SetTool(t Tool) {
	if s.tool != nil {
		s.tool.Deactivate()
	}
	s.tool = t
}

// ActiveTool returns the current tool.
func (s *Surface) ActiveTool() Tool { return s.tool }

// Update polls input, dispatches pointer and keyboard events to the active
// tool, and advances decoration animation. Call once per ebiten tick.
func (s *Surface) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	s.renderer.Update(dt)

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case pressed && !s.mouseDown:
		s.tool.Down(x, y)
	case pressed && s.mouseDown:
		s.tool.Drag(x, y)
	case !pressed && s.mouseDown:
		s.tool.Up(x, y)
	default:
		s.cursor = s.tool.Hover(x, y)
	}
	s.mouseDown = pressed

	s.pollKeyboard()
}

// pollKeyboard handles Delete and Backspace, both of which delete the
// selected object.
func (s *Surface) pollKeyboard() {
	del := ebiten.IsKeyPressed(ebiten.KeyDelete)
	back := ebiten.IsKeyPressed(ebiten.KeyBackspace)
	if (del && !s.prevDelete) || (back && !s.prevBackspace) {
		s.ctrl.DeleteSelected()
	}
	s.prevDelete = del
	s.prevBackspace = back
}

// Draw repaints the canvas if objects changed since the last frame, then
// blits it to screen and draws the tool preview and selection decoration on
// top. Call from your game's Draw.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.needsRedraw {
		s.renderer.Redraw()
		s.needsRedraw = false
	}
	screen.DrawImage(s.canvas.Image(), nil)
	s.tool.DrawPreview(screen)
	s.renderer.DrawOverlay(screen, s.ctrl)
}

// Undo restores the previous history snapshot into the canvas. Silent no-op
// at the start of history. The restored raster stands until the next object
// mutation; undone objects are not re-editable.
func (s *Surface) Undo() {
	snap, ok := s.history.Undo()
	if !ok {
		return
	}
	if err := s.canvas.Restore(snap); err == nil {
		s.needsRedraw = false
	}
}

// Redo restores the next history snapshot into the canvas. Silent no-op at
// the end of history.
func (s *Surface) Redo() {
	snap, ok := s.history.Redo()
	if !ok {
		return
	}
	if err := s.canvas.Restore(snap); err == nil {
		s.needsRedraw = false
	}
}

// Clear removes every object, repaints the blank canvas, and commits it as a
// history entry.
func (s *Surface) Clear() {
	s.store.Clear()
	s.commit()
}

// commit repaints the canvas from the current object set and pushes the
// pixels as a new history entry. Runs synchronously; capture cost is
// O(width*height).
func (s *Surface) commit() {
	s.renderer.Redraw()
	s.needsRedraw = false
	s.history.Push(s.canvas.Capture())
}
