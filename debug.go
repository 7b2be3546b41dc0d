package easel

import "fmt"

// validate checks the store's structural invariants: id uniqueness, index
// consistency, envelope consistency for point-bearing shapes, and that the
// selected id exists. Used by tests and debug builds.
func (s *Store) validate() error {
	seen := make(map[string]bool, len(s.objects))
	for i, o := range s.objects {
		if o.ID == "" {
			return fmt.Errorf("easel debug: object %d has empty id", i)
		}
		if seen[o.ID] {
			return fmt.Errorf("easel debug: duplicate id %q", o.ID)
		}
		seen[o.ID] = true
		if s.byID[o.ID] != o {
			return fmt.Errorf("easel debug: index mismatch for %q", o.ID)
		}
		if err := o.validate(); err != nil {
			return err
		}
	}
	if len(s.byID) != len(s.objects) {
		return fmt.Errorf("easel debug: index has %d entries, order has %d", len(s.byID), len(s.objects))
	}
	if s.selected != "" && !seen[s.selected] {
		return fmt.Errorf("easel debug: selected id %q not in store", s.selected)
	}
	return nil
}

// validate checks a single object's geometry invariants.
func (o *Object) validate() error {
	switch o.Type {
	case ShapeLine, ShapeArrow:
		if len(o.Points) != 2 {
			return fmt.Errorf("easel debug: %s %q has %d points", o.Type, o.ID, len(o.Points))
		}
	case ShapeFreehand:
		if len(o.Path) == 0 {
			return fmt.Errorf("easel debug: freehand %q has empty path", o.ID)
		}
	}
	switch o.Type {
	case ShapeLine, ShapeArrow, ShapeFreehand:
		env := o.Bounds()
		if env.X != o.X || env.Y != o.Y || env.Width != o.Width || env.Height != o.Height {
			return fmt.Errorf("easel debug: %s %q envelope out of sync", o.Type, o.ID)
		}
	case ShapeCircle:
		if o.Radius < 0 {
			return fmt.Errorf("easel debug: circle %q has negative radius", o.ID)
		}
	case ShapeRectangle:
		if o.Width < 0 || o.Height < 0 {
			return fmt.Errorf("easel debug: rectangle %q has negative size", o.ID)
		}
	}
	return nil
}

// validate checks the history's cursor and bound invariants.
func (h *History) validate() error {
	if h.cursor < -1 || h.cursor > len(h.entries)-1 {
		return fmt.Errorf("easel debug: history cursor %d out of range for %d entries", h.cursor, len(h.entries))
	}
	if len(h.entries) > h.maxEntries {
		return fmt.Errorf("easel debug: history holds %d entries, bound is %d", len(h.entries), h.maxEntries)
	}
	return nil
}
