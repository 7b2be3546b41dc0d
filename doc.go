// Package easel is a retained-mode vector drawing surface for [Ebitengine].
//
// Easel provides the object model, hit testing, selection and resize
// handling, raster undo/redo history, and render loop that an interactive
// drawing or diagramming canvas needs.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	surface := easel.NewSurface(960, 640)
//	easel.Run(surface, easel.RunConfig{
//		Title: "My Board", Width: 960, Height: 640,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Surface.Update] and [Surface.Draw] directly:
//
//	type Game struct{ surface *easel.Surface }
//
//	func (g *Game) Update() error              { g.surface.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.surface.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Object model
//
// Every drawn element is an [Object]: a rectangle, circle, line, arrow, or
// freehand path. Objects live in a [Store], which is the sole authority over
// the object set, insertion order (paint order and hit-test priority), and
// the current selection. Create objects with the typed constructors
// [NewRectangle], [NewCircle], [NewLine], [NewArrow], [NewFreehand], then
// add them:
//
//	store := easel.NewStore()
//	id := store.Add(easel.NewRectangle(10, 10, 120, 80))
//	store.Select(id)
//
// # Undo/redo
//
// [History] holds a bounded sequence of whole-canvas raster [Snapshot]
// values. A snapshot is pushed on every committed action; undo and redo
// restore pixels, not vectors, so an undone object is no longer editable.
//
// # Events
//
// Store, history, and surface changes are published on typed topics
// ([Topic]): subscribe to the topics on [Store.Events] or
// [History.StateChanged] to drive UI enablement without polling.
//
// [Ebitengine]: https://ebitengine.org
package easel
