package easel

// Topic is a single-threaded typed publish/subscribe channel. Handlers run
// synchronously, in subscription order, on the goroutine that publishes.
// The zero value is ready to use.
type Topic[T any] struct {
	handlers []topicHandler[T]
	nextID   uint32
}

type topicHandler[T any] struct {
	id uint32
	fn func(T)
}

// Subscription allows removing a registered topic handler.
type Subscription struct {
	remove func()
}

// Remove unregisters the handler so it no longer fires. Safe to call on the
// zero value and safe to call more than once.
func (s Subscription) Remove() {
	if s.remove != nil {
		s.remove()
	}
}

// Subscribe registers fn to be called on every Publish.
func (t *Topic[T]) Subscribe(fn func(T)) Subscription {
	t.nextID++
	id := t.nextID
	t.handlers = append(t.handlers, topicHandler[T]{id: id, fn: fn})
	return Subscription{remove: func() {
		for i := range t.handlers {
			if t.handlers[i].id == id {
				copy(t.handlers[i:], t.handlers[i+1:])
				t.handlers[len(t.handlers)-1] = topicHandler[T]{}
				t.handlers = t.handlers[:len(t.handlers)-1]
				return
			}
		}
	}}
}

// Publish delivers event to every handler subscribed at the time of the
// call. Handlers may remove their own or other subscriptions during
// delivery; the removal takes effect for the next Publish.
func (t *Topic[T]) Publish(event T) {
	// Iterate a snapshot: Remove compacts t.handlers in place, which would
	// otherwise leave the running loop holding a zeroed entry.
	snapshot := append([]topicHandler[T](nil), t.handlers...)
	for _, h := range snapshot {
		h.fn(event)
	}
}

// --- Event payloads ---

// ObjectAdded fires when an object is appended to the store.
type ObjectAdded struct {
	ID string
}

// ObjectsChanged fires after any mutation of the object set or geometry.
// Renderers subscribe to this to schedule a repaint.
type ObjectsChanged struct{}

// ObjectSelected fires when the selection changes to an object.
type ObjectSelected struct {
	ID string
}

// ObjectDeselected fires when the selection is cleared.
type ObjectDeselected struct {
	ID string // the previously selected object
}

// ObjectMoved fires after a translation is applied.
type ObjectMoved struct {
	ID     string
	DX, DY float64
}

// ObjectResized fires after a resize is applied, with the new bounds.
type ObjectResized struct {
	ID     string
	Bounds Rect
}

// ObjectDeleted fires after an object is removed from the store.
type ObjectDeleted struct {
	ID string
}

// HistoryState carries undo/redo availability. Broadcast after every push,
// undo, redo, and clear so UI enablement never needs polling.
type HistoryState struct {
	CanUndo bool
	CanRedo bool
}

// CanvasChanged signals that a user action completed and the current canvas
// contents should be committed as a history snapshot. Published by tools on
// shape completion and by the selection controller on move/resize/delete.
type CanvasChanged struct{}

// StoreEvents groups the topics published by a Store.
type StoreEvents struct {
	Added      Topic[ObjectAdded]
	Changed    Topic[ObjectsChanged]
	Selected   Topic[ObjectSelected]
	Deselected Topic[ObjectDeselected]
	Moved      Topic[ObjectMoved]
	Resized    Topic[ObjectResized]
	Deleted    Topic[ObjectDeleted]
}
