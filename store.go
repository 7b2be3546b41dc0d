package easel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Store is the sole owner of the drawable object set. It preserves insertion
// order, which defines both paint order and hit-test priority, assigns ids,
// and tracks the single selected object.
//
// A Store is not safe for concurrent use; like the rest of easel it assumes
// a single event-driven thread of control.
type Store struct {
	objects  []*Object
	byID     map[string]*Object
	nextID   int
	selected string

	// Events publishes store mutations. Subscribe before mutating.
	Events StoreEvents
}

// NewStore creates an empty object store.
func NewStore() *Store {
	return &Store{
		byID:   make(map[string]*Object),
		nextID: 1,
	}
}

// Add takes ownership of o, assigns it the next sequential id, fills
// defaults, and appends it to the paint order. Returns the assigned id.
// Add always succeeds.
func (s *Store) Add(o *Object) string {
	o.ID = fmt.Sprintf("obj_%d", s.nextID)
	s.nextID++
	o.Visible = true
	if o.Created.IsZero() {
		o.Created = time.Now()
	}
	s.objects = append(s.objects, o)
	s.byID[o.ID] = o
	s.Events.Added.Publish(ObjectAdded{ID: o.ID})
	s.Events.Changed.Publish(ObjectsChanged{})
	return o.ID
}

// Get returns the object with the given id.
func (s *Store) Get(id string) (*Object, bool) {
	o, ok := s.byID[id]
	return o, ok
}

// Objects returns the objects in paint order. The slice is a copy; the
// objects themselves are shared, so treat them as read-only.
func (s *Store) Objects() []*Object {
	return append([]*Object(nil), s.objects...)
}

// Len returns the number of objects in the store.
func (s *Store) Len() int {
	return len(s.objects)
}

// Select marks the object with the given id as selected. Selecting a missing
// id is a silent no-op. Re-selecting the current selection does not re-fire.
func (s *Store) Select(id string) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	if s.selected == id {
		return
	}
	if s.selected != "" {
		s.Events.Deselected.Publish(ObjectDeselected{ID: s.selected})
	}
	s.selected = id
	s.Events.Selected.Publish(ObjectSelected{ID: id})
	s.Events.Changed.Publish(ObjectsChanged{})
}

// Deselect clears the selection. No-op if nothing is selected.
func (s *Store) Deselect() {
	if s.selected == "" {
		return
	}
	prev := s.selected
	s.selected = ""
	s.Events.Deselected.Publish(ObjectDeselected{ID: prev})
	s.Events.Changed.Publish(ObjectsChanged{})
}

// SelectedID returns the id of the selected object, or "" if none.
func (s *Store) SelectedID() string {
	return s.selected
}

// Selected returns the selected object.
func (s *Store) Selected() (*Object, bool) {
	if s.selected == "" {
		return nil, false
	}
	return s.Get(s.selected)
}

// Delete removes the object with the given id. Deleting a missing id is a
// silent no-op. If the object was selected it is deselected first.
func (s *Store) Delete(id string) {
	o, ok := s.byID[id]
	if !ok {
		return
	}
	if s.selected == id {
		s.Deselect()
	}
	delete(s.byID, id)
	for i, obj := range s.objects {
		if obj == o {
			copy(s.objects[i:], s.objects[i+1:])
			s.objects[len(s.objects)-1] = nil
			s.objects = s.objects[:len(s.objects)-1]
			break
		}
	}
	s.Events.Deleted.Publish(ObjectDeleted{ID: id})
	s.Events.Changed.Publish(ObjectsChanged{})
}

// Move translates the object by (dx, dy). For point-bearing shapes both the
// envelope and every stored point move together. Missing ids are a silent
// no-op.
func (s *Store) Move(id string, dx, dy float64) {
	o, ok := s.byID[id]
	if !ok {
		return
	}
	o.translate(dx, dy)
	s.Events.Moved.Publish(ObjectMoved{ID: id, DX: dx, DY: dy})
	s.Events.Changed.Publish(ObjectsChanged{})
}

// Resize scales the object by (scaleX, scaleY) about its center. Circles
// scale their radius by max(scaleX, scaleY). This is the programmatic resize
// path; the interactive handle-driven resize in Controller anchors on the
// opposite handle instead. Missing ids are a silent no-op.
func (s *Store) Resize(id string, scaleX, scaleY float64) {
	o, ok := s.byID[id]
	if !ok {
		return
	}
	o.scaleAboutCenter(scaleX, scaleY)
	s.Events.Resized.Publish(ObjectResized{ID: id, Bounds: o.Bounds()})
	s.Events.Changed.Publish(ObjectsChanged{})
}

// HitTest returns the topmost visible object containing (x, y). Objects are
// tested from last-inserted to first, so later objects win.
func (s *Store) HitTest(x, y float64) (*Object, bool) {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].Contains(x, y) {
			return s.objects[i], true
		}
	}
	return nil, false
}

// Clear removes every object. The id counter is not reset, so ids stay
// unique for the lifetime of the store.
func (s *Store) Clear() {
	if len(s.objects) == 0 {
		return
	}
	s.Deselect()
	s.objects = s.objects[:0]
	s.byID = make(map[string]*Object)
	s.Events.Changed.Publish(ObjectsChanged{})
}

// setBounds applies a new bounding box to an object via its type-specific
// remap and publishes the resize. Used by the selection controller.
func (s *Store) setBounds(id string, box Rect) {
	o, ok := s.byID[id]
	if !ok {
		return
	}
	o.applyBox(box)
	s.Events.Resized.Publish(ObjectResized{ID: id, Bounds: o.Bounds()})
	s.Events.Changed.Publish(ObjectsChanged{})
}

// restoreGeometry overwrites an object's geometry from a saved clone without
// publishing move/resize events. Used by the gesture cancel path; only a
// repaint is requested.
func (s *Store) restoreGeometry(id string, saved *Object) {
	o, ok := s.byID[id]
	if !ok {
		return
	}
	o.copyGeometryFrom(saved)
	s.Events.Changed.Publish(ObjectsChanged{})
}

// replaceAll swaps the entire object set, reseeding the id counter past the
// highest numeric suffix present. Selection is cleared. Used by project
// import, which validates before calling so the swap is all-or-nothing.
func (s *Store) replaceAll(objects []*Object) {
	s.Deselect()
	s.objects = append(s.objects[:0:0], objects...)
	s.byID = make(map[string]*Object, len(objects))
	highest := 0
	for _, o := range objects {
		s.byID[o.ID] = o
		if n, ok := numericSuffix(o.ID); ok && n > highest {
			highest = n
		}
	}
	s.nextID = highest + 1
	s.Events.Changed.Publish(ObjectsChanged{})
}

// numericSuffix extracts N from an "obj_N" id.
func numericSuffix(id string) (int, bool) {
	i := strings.LastIndexByte(id, '_')
	if i < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
