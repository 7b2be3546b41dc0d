package easel

import (
	"fmt"
	"testing"
)

// --- Add and identity ---

func TestAddAssignsSequentialIDs(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 5; i++ {
		id := s.Add(NewRectangle(0, 0, 10, 10))
		want := fmt.Sprintf("obj_%d", i)
		if id != want {
			t.Errorf("id %d = %q, want %q", i, id, want)
		}
	}
	if s.Len() != 5 {
		t.Errorf("Len = %d, want 5", s.Len())
	}
	if err := s.validate(); err != nil {
		t.Error(err)
	}
}

func TestAddSetsDefaults(t *testing.T) {
	s := NewStore()
	id := s.Add(NewCircle(10, 10, 5))
	o, ok := s.Get(id)
	if !ok {
		t.Fatal("added object not found")
	}
	if !o.Visible {
		t.Error("added object should be visible")
	}
	if o.Created.IsZero() {
		t.Error("added object should have a creation time")
	}
}

func TestAddPublishesEvents(t *testing.T) {
	s := NewStore()
	var added []string
	var changed int
	s.Events.Added.Subscribe(func(e ObjectAdded) { added = append(added, e.ID) })
	s.Events.Changed.Subscribe(func(ObjectsChanged) { changed++ })

	id := s.Add(NewRectangle(0, 0, 10, 10))
	if len(added) != 1 || added[0] != id {
		t.Errorf("Added events = %v, want [%s]", added, id)
	}
	if changed != 1 {
		t.Errorf("Changed fired %d times, want 1", changed)
	}
}

// --- Selection ---

func TestSelectAndDeselect(t *testing.T) {
	s := NewStore()
	a := s.Add(NewRectangle(0, 0, 10, 10))
	b := s.Add(NewRectangle(20, 20, 10, 10))

	var selected, deselected []string
	s.Events.Selected.Subscribe(func(e ObjectSelected) { selected = append(selected, e.ID) })
	s.Events.Deselected.Subscribe(func(e ObjectDeselected) { deselected = append(deselected, e.ID) })

	s.Select(a)
	if s.SelectedID() != a {
		t.Errorf("SelectedID = %q, want %q", s.SelectedID(), a)
	}
	// Switching selection deselects the previous object first.
	s.Select(b)
	if len(deselected) != 1 || deselected[0] != a {
		t.Errorf("Deselected events = %v, want [%s]", deselected, a)
	}
	if len(selected) != 2 {
		t.Errorf("Selected fired %d times, want 2", len(selected))
	}

	s.Deselect()
	if s.SelectedID() != "" {
		t.Error("Deselect should clear selection")
	}
}

func TestSelectMissingIsNoOp(t *testing.T) {
	s := NewStore()
	a := s.Add(NewRectangle(0, 0, 10, 10))
	s.Select(a)
	s.Select("obj_999")
	if s.SelectedID() != a {
		t.Error("selecting a missing id must not change the selection")
	}
}

func TestReselectDoesNotRefire(t *testing.T) {
	s := NewStore()
	a := s.Add(NewRectangle(0, 0, 10, 10))
	var fired int
	s.Events.Selected.Subscribe(func(ObjectSelected) { fired++ })
	s.Select(a)
	s.Select(a)
	if fired != 1 {
		t.Errorf("Selected fired %d times, want 1", fired)
	}
}

// --- Delete ---

func TestDelete(t *testing.T) {
	s := NewStore()
	a := s.Add(NewRectangle(0, 0, 10, 10))
	b := s.Add(NewRectangle(20, 20, 10, 10))

	var deleted []string
	s.Events.Deleted.Subscribe(func(e ObjectDeleted) { deleted = append(deleted, e.ID) })

	s.Delete(a)
	if _, ok := s.Get(a); ok {
		t.Error("deleted object still retrievable")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	if len(deleted) != 1 || deleted[0] != a {
		t.Errorf("Deleted events = %v, want [%s]", deleted, a)
	}
	if err := s.validate(); err != nil {
		t.Error(err)
	}

	// Deleting a missing id is silent.
	s.Delete("obj_999")
	if s.Len() != 1 {
		t.Error("deleting a missing id changed the store")
	}
	_ = b
}

func TestDeleteSelectedObjectDeselects(t *testing.T) {
	s := NewStore()
	a := s.Add(NewRectangle(0, 0, 10, 10))
	s.Select(a)
	s.Delete(a)
	if s.SelectedID() != "" {
		t.Error("deleting the selected object must clear the selection")
	}
}

// --- Move and resize ---

func TestMoveRoundTrip(t *testing.T) {
	s := NewStore()
	id := s.Add(NewFreehand([]Vec2{{1, 2}, {3, 4}}))
	s.Move(id, 10.5, -4.25)
	s.Move(id, -10.5, 4.25)
	o, _ := s.Get(id)
	assertVec(t, "path[0]", o.Path[0], Vec2{1, 2})
	assertVec(t, "path[1]", o.Path[1], Vec2{3, 4})
	assertNear(t, "x", o.X, 1)
	assertNear(t, "y", o.Y, 2)
}

func TestMovePublishesDelta(t *testing.T) {
	s := NewStore()
	id := s.Add(NewRectangle(0, 0, 10, 10))
	var got ObjectMoved
	s.Events.Moved.Subscribe(func(e ObjectMoved) { got = e })
	s.Move(id, 3, -7)
	if got.ID != id {
		t.Errorf("Moved.ID = %q, want %q", got.ID, id)
	}
	assertNear(t, "dx", got.DX, 3)
	assertNear(t, "dy", got.DY, -7)
}

func TestResizeAnchorsCenter(t *testing.T) {
	s := NewStore()
	id := s.Add(NewRectangle(10, 10, 20, 40))
	var got ObjectResized
	s.Events.Resized.Subscribe(func(e ObjectResized) { got = e })
	s.Resize(id, 2, 0.5)
	o, _ := s.Get(id)
	assertRect(t, "bounds", o.Bounds(), Rect{X: 0, Y: 20, Width: 40, Height: 20})
	assertRect(t, "event bounds", got.Bounds, o.Bounds())
}

// --- Hit testing ---

func TestHitTestTopmostWins(t *testing.T) {
	s := NewStore()
	bottom := s.Add(NewRectangle(0, 0, 100, 100))
	top := s.Add(NewRectangle(40, 40, 100, 100))

	hit, ok := s.HitTest(50, 50)
	if !ok || hit.ID != top {
		t.Errorf("overlap hit = %v, want %s", hit, top)
	}
	hit, ok = s.HitTest(10, 10)
	if !ok || hit.ID != bottom {
		t.Errorf("bottom-only hit = %v, want %s", hit, bottom)
	}
	if _, ok := s.HitTest(500, 500); ok {
		t.Error("empty space should miss")
	}
}

func TestHitTestSkipsInvisible(t *testing.T) {
	s := NewStore()
	under := s.Add(NewRectangle(0, 0, 100, 100))
	over := s.Add(NewRectangle(0, 0, 100, 100))
	o, _ := s.Get(over)
	o.Visible = false

	hit, ok := s.HitTest(50, 50)
	if !ok || hit.ID != under {
		t.Error("hit test must pass through invisible objects")
	}
}

// --- Clear and replaceAll ---

func TestClearKeepsIDCounter(t *testing.T) {
	s := NewStore()
	s.Add(NewRectangle(0, 0, 10, 10))
	s.Add(NewRectangle(0, 0, 10, 10))
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after clear = %d, want 0", s.Len())
	}
	// Ids stay unique for the store's lifetime.
	id := s.Add(NewRectangle(0, 0, 10, 10))
	if id != "obj_3" {
		t.Errorf("id after clear = %q, want obj_3", id)
	}
}

func TestClearEmptyIsSilent(t *testing.T) {
	s := NewStore()
	var changed int
	s.Events.Changed.Subscribe(func(ObjectsChanged) { changed++ })
	s.Clear()
	if changed != 0 {
		t.Error("clearing an empty store should not publish")
	}
}

func TestReplaceAllReseedsCounter(t *testing.T) {
	s := NewStore()
	s.Add(NewRectangle(0, 0, 10, 10))

	a := NewRectangle(0, 0, 10, 10)
	a.ID = "obj_7"
	b := NewCircle(5, 5, 2)
	b.ID = "obj_12"
	s.replaceAll([]*Object{a, b})

	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
	id := s.Add(NewRectangle(0, 0, 10, 10))
	if id != "obj_13" {
		t.Errorf("id after replaceAll = %q, want obj_13", id)
	}
	if err := s.validate(); err != nil {
		t.Error(err)
	}
}

func TestObjectsReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Add(NewRectangle(0, 0, 10, 10))
	list := s.Objects()
	list[0] = nil
	if s.Objects()[0] == nil {
		t.Error("mutating the returned slice must not affect the store")
	}
}
