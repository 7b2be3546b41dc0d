package easel

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black, the default stroke color.
var ColorBlack = Color{0, 0, 0, 1}

// toRGBA converts an easel Color to a premultiplied color value.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image fills.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ShapeType distinguishes the geometry carried by an Object. The set is
// closed: every geometric operation switches exhaustively over these values.
type ShapeType uint8

const (
	ShapeRectangle ShapeType = iota // axis-aligned box at X, Y with Width, Height
	ShapeCircle                     // center X, Y with Radius
	ShapeLine                       // two endpoints in Points
	ShapeArrow                      // line with an arrowhead at Points[1]
	ShapeFreehand                   // polyline through Path
)

// String returns the name used in project files and event payloads.
func (t ShapeType) String() string {
	switch t {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	case ShapeLine:
		return "line"
	case ShapeArrow:
		return "arrow"
	case ShapeFreehand:
		return "freehand"
	default:
		return "unknown"
	}
}

// shapeTypeFromString is the inverse of ShapeType.String for project import.
func shapeTypeFromString(s string) (ShapeType, bool) {
	switch s {
	case "rectangle":
		return ShapeRectangle, true
	case "circle":
		return ShapeCircle, true
	case "line":
		return ShapeLine, true
	case "arrow":
		return ShapeArrow, true
	case "freehand":
		return ShapeFreehand, true
	default:
		return 0, false
	}
}

// LineCap selects stroke end-cap rendering.
type LineCap uint8

const (
	LineCapRound LineCap = iota // rounded end caps (default)
	LineCapButt                 // flat end caps
)

// Handle identifies one of the 8 resize handles on a selection's bounding
// box: 4 corners plus 4 edge midpoints, named by compass direction.
type Handle uint8

const (
	HandleNone Handle = iota
	HandleNW
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
)

// String returns the compass name of the handle.
func (h Handle) String() string {
	switch h {
	case HandleNW:
		return "nw"
	case HandleN:
		return "n"
	case HandleNE:
		return "ne"
	case HandleE:
		return "e"
	case HandleSE:
		return "se"
	case HandleS:
		return "s"
	case HandleSW:
		return "sw"
	case HandleW:
		return "w"
	default:
		return "none"
	}
}

// Cursor is the pointer shape the host should display, reported by the
// selection controller during hover.
type Cursor uint8

const (
	CursorDefault    Cursor = iota // arrow
	CursorMove                     // four-way move
	CursorResizeNS                 // vertical resize (n/s handles)
	CursorResizeEW                 // horizontal resize (e/w handles)
	CursorResizeNWSE               // diagonal resize (nw/se handles)
	CursorResizeNESW               // diagonal resize (ne/sw handles)
)

const (
	// handleSize is the hit radius in pixels around each resize handle.
	handleSize = 8.0
	// minObjectSize is the floor applied to width and height after any
	// interactive resize.
	minObjectSize = 10.0
	// DefaultMaxHistory is the default bound on retained history snapshots.
	DefaultMaxHistory = 50
)
