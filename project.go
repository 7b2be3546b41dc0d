package easel

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Document is the serialized form of a project: the object collection plus
// canvas metadata. The field layout is the on-disk contract; import accepts
// only documents that round-trip through it cleanly.
type Document struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Objects []objectJSON `json:"objects"`
}

type objectJSON struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Rotation   float64        `json:"rotation"`
	Radius     float64        `json:"radius,omitempty"`
	Path       []pointJSON    `json:"path,omitempty"`
	Points     []pointJSON    `json:"points,omitempty"`
	Properties propertiesJSON `json:"properties"`
	Timestamp  time.Time      `json:"timestamp"`
	Visible    bool           `json:"visible"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type propertiesJSON struct {
	StrokeColor string  `json:"strokeColor"`
	FillColor   string  `json:"fillColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	EnableFill  bool    `json:"enableFill"`
	Opacity     float64 `json:"opacity"`
	LineCap     string  `json:"lineCap"`
}

// EncodeProject serializes the store's objects as a project document.
// A fresh document id is generated on every encode.
func EncodeProject(store *Store, name string, width, height int) ([]byte, error) {
	doc := Document{
		ID:     uuid.NewString(),
		Name:   name,
		Width:  width,
		Height: height,
	}
	for _, o := range store.Objects() {
		doc.Objects = append(doc.Objects, encodeObject(o))
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("easel: encode project: %w", err)
	}
	return data, nil
}

// ImportProject parses data and replaces the store's object set with the
// document's objects. The import is all-or-nothing: invalid JSON or an
// invalid object leaves the store untouched and returns the error. On
// success the id counter continues past the highest imported suffix and the
// history is cleared.
func ImportProject(store *Store, history *History, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("easel: import project: %w", err)
	}

	objects := make([]*Object, 0, len(doc.Objects))
	seen := make(map[string]bool, len(doc.Objects))
	for i, oj := range doc.Objects {
		o, err := decodeObject(oj)
		if err != nil {
			return fmt.Errorf("easel: import project: object %d: %w", i, err)
		}
		if seen[o.ID] {
			return fmt.Errorf("easel: import project: object %d: duplicate id %q", i, o.ID)
		}
		seen[o.ID] = true
		objects = append(objects, o)
	}

	store.replaceAll(objects)
	if history != nil {
		history.Clear()
	}
	return nil
}

// SaveProject writes the current object set as a project file.
func (s *Surface) SaveProject(path, name string) error {
	data, err := EncodeProject(s.store, name, s.canvas.Width(), s.canvas.Height())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("easel: save project %s: %w", path, err)
	}
	return nil
}

// LoadProject replaces the surface contents with a project file. The loaded
// state is repainted and pushed as the new history baseline.
func (s *Surface) LoadProject(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("easel: load project %s: %w", path, err)
	}
	if err := ImportProject(s.store, s.history, data); err != nil {
		return err
	}
	s.commit()
	return nil
}

func encodeObject(o *Object) objectJSON {
	oj := objectJSON{
		ID:       o.ID,
		Type:     o.Type.String(),
		X:        o.X,
		Y:        o.Y,
		Width:    o.Width,
		Height:   o.Height,
		Rotation: o.Rotation,
		Radius:   o.Radius,
		Properties: propertiesJSON{
			StrokeColor: colorToHex(o.Props.StrokeColor),
			FillColor:   colorToHex(o.Props.FillColor),
			StrokeWidth: o.Props.StrokeWidth,
			EnableFill:  o.Props.EnableFill,
			Opacity:     o.Props.Opacity,
			LineCap:     lineCapToString(o.Props.LineCap),
		},
		Timestamp: o.Created,
		Visible:   o.Visible,
	}
	for _, p := range o.Path {
		oj.Path = append(oj.Path, pointJSON{X: p.X, Y: p.Y})
	}
	for _, p := range o.Points {
		oj.Points = append(oj.Points, pointJSON{X: p.X, Y: p.Y})
	}
	return oj
}

func decodeObject(oj objectJSON) (*Object, error) {
	if oj.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	t, ok := shapeTypeFromString(oj.Type)
	if !ok {
		return nil, fmt.Errorf("unknown type %q", oj.Type)
	}

	o := &Object{
		ID:       oj.ID,
		Type:     t,
		X:        oj.X,
		Y:        oj.Y,
		Width:    oj.Width,
		Height:   oj.Height,
		Rotation: oj.Rotation,
		Radius:   oj.Radius,
		Created:  oj.Timestamp,
		Visible:  oj.Visible,
	}

	switch t {
	case ShapeRectangle:
		if oj.Width < 0 || oj.Height < 0 {
			return nil, fmt.Errorf("negative size %gx%g", oj.Width, oj.Height)
		}
	case ShapeCircle:
		if oj.Radius < 0 {
			return nil, fmt.Errorf("negative radius %g", oj.Radius)
		}
	case ShapeLine, ShapeArrow:
		if len(oj.Points) != 2 {
			return nil, fmt.Errorf("expected 2 points, got %d", len(oj.Points))
		}
	case ShapeFreehand:
		if len(oj.Path) == 0 {
			return nil, fmt.Errorf("empty path")
		}
	}

	for _, p := range oj.Path {
		o.Path = append(o.Path, Vec2{X: p.X, Y: p.Y})
	}
	for _, p := range oj.Points {
		o.Points = append(o.Points, Vec2{X: p.X, Y: p.Y})
	}
	// The point list is authoritative for point-bearing shapes; a
	// hand-edited file may carry a stale envelope.
	o.syncEnvelope()

	stroke, err := colorFromHex(oj.Properties.StrokeColor)
	if err != nil {
		return nil, fmt.Errorf("strokeColor: %w", err)
	}
	fill, err := colorFromHex(oj.Properties.FillColor)
	if err != nil {
		return nil, fmt.Errorf("fillColor: %w", err)
	}
	lineCap, err := lineCapFromString(oj.Properties.LineCap)
	if err != nil {
		return nil, err
	}
	if oj.Properties.StrokeWidth < 0 {
		return nil, fmt.Errorf("negative strokeWidth %g", oj.Properties.StrokeWidth)
	}
	o.Props = Properties{
		StrokeColor: stroke,
		FillColor:   fill,
		StrokeWidth: oj.Properties.StrokeWidth,
		EnableFill:  oj.Properties.EnableFill,
		Opacity:     clamp01(oj.Properties.Opacity),
		LineCap:     lineCap,
	}
	return o, nil
}

// colorToHex formats a color as #rrggbb, or #rrggbbaa when not fully opaque.
func colorToHex(c Color) string {
	r := uint8(clamp01(c.R) * 255)
	g := uint8(clamp01(c.G) * 255)
	b := uint8(clamp01(c.B) * 255)
	a := uint8(clamp01(c.A) * 255)
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// colorFromHex parses #rrggbb and #rrggbbaa. An empty string is opaque black.
func colorFromHex(s string) (Color, error) {
	if s == "" {
		return ColorBlack, nil
	}
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	var r, g, b, a uint64
	if len(s) == 7 {
		r, g, b, a = v>>16&0xff, v>>8&0xff, v&0xff, 255
	} else {
		r, g, b, a = v>>24&0xff, v>>16&0xff, v>>8&0xff, v&0xff
	}
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func lineCapToString(c LineCap) string {
	if c == LineCapButt {
		return "butt"
	}
	return "round"
}

func lineCapFromString(s string) (LineCap, error) {
	switch s {
	case "", "round":
		return LineCapRound, nil
	case "butt":
		return LineCapButt, nil
	default:
		return 0, fmt.Errorf("unknown lineCap %q", s)
	}
}
