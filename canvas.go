package easel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the persistent offscreen raster that holds the drawn picture.
// The render loop repaints objects into it when they change; history
// snapshots capture and restore its pixels directly. It is owned by the
// caller and never recycled between frames.
type Canvas struct {
	image      *ebiten.Image
	w, h       int
	background Color
}

// NewCanvas creates a canvas of the given size, filled with white.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		image:      ebiten.NewImage(w, h),
		w:          w,
		h:          h,
		background: ColorWhite,
	}
	c.Clear()
	return c
}

// Image returns the underlying *ebiten.Image for direct drawing.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// SetBackground sets the fill color used by Clear.
func (c *Canvas) SetBackground(col Color) {
	c.background = col
}

// Clear fills the canvas with its background color.
func (c *Canvas) Clear() {
	c.image.Fill(c.background.toRGBA())
}

// Capture reads the canvas pixels into a new history snapshot.
func (c *Canvas) Capture() *Snapshot {
	return CaptureSnapshot(c.image)
}

// Restore writes a snapshot back into the canvas.
func (c *Canvas) Restore(snap *Snapshot) error {
	return snap.Restore(c.image)
}

// Dispose deallocates the underlying image. The canvas must not be used
// afterwards.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
