package easel

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot is a captured full raster image of canvas contents at a point in
// time. Pixels are premultiplied RGBA, 4 bytes per pixel, row-major, the
// layout ebiten's ReadPixels produces.
type Snapshot struct {
	Pixels []byte
	Width  int
	Height int
}

// Clone returns a deep copy. History hands out clones so a caller mutating
// the returned pixels can never corrupt a stored entry.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Pixels: append([]byte(nil), s.Pixels...),
		Width:  s.Width,
		Height: s.Height,
	}
}

// CaptureSnapshot reads the full pixel contents of img. This is a
// synchronous O(width*height) copy from the GPU; callers should capture on
// commit, not per frame.
func CaptureSnapshot(img *ebiten.Image) *Snapshot {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	snap := &Snapshot{
		Pixels: make([]byte, 4*w*h),
		Width:  w,
		Height: h,
	}
	img.ReadPixels(snap.Pixels)
	return snap
}

// Restore writes the snapshot's pixels back into img. The image must have
// the same dimensions the snapshot was captured at.
func (s *Snapshot) Restore(img *ebiten.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() != s.Width || bounds.Dy() != s.Height {
		return fmt.Errorf("easel: snapshot is %dx%d, image is %dx%d",
			s.Width, s.Height, bounds.Dx(), bounds.Dy())
	}
	img.WritePixels(s.Pixels)
	return nil
}

// ToImage converts the snapshot to a straight-alpha NRGBA image suitable for
// encoding with image/png.
func (s *Snapshot) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for i := 0; i+3 < len(s.Pixels); i += 4 {
		r, g, b, a := s.Pixels[i], s.Pixels[i+1], s.Pixels[i+2], s.Pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
