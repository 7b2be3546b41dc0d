package easel

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertRect(t *testing.T, name string, got, want Rect) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon ||
		math.Abs(got.Y-want.Y) > epsilon ||
		math.Abs(got.Width-want.Width) > epsilon ||
		math.Abs(got.Height-want.Height) > epsilon {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

// --- Vec2 ---

func TestDistance(t *testing.T) {
	assertNear(t, "3-4-5", Distance(Vec2{0, 0}, Vec2{3, 4}), 5)
	assertNear(t, "same point", Distance(Vec2{7, -2}, Vec2{7, -2}), 0)
	assertNear(t, "horizontal", Distance(Vec2{-5, 1}, Vec2{5, 1}), 10)
}

func TestAngle(t *testing.T) {
	assertNear(t, "east", Angle(Vec2{0, 0}, Vec2{1, 0}), 0)
	assertNear(t, "south", Angle(Vec2{0, 0}, Vec2{0, 1}), math.Pi/2)
	assertNear(t, "west", Angle(Vec2{0, 0}, Vec2{-1, 0}), math.Pi)
	assertNear(t, "diagonal", Angle(Vec2{10, 10}, Vec2{20, 20}), math.Pi/4)
}

func TestLerp(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 20}
	assertVec(t, "t=0", Lerp(a, b, 0), a)
	assertVec(t, "t=1", Lerp(a, b, 1), b)
	assertVec(t, "t=0.5", Lerp(a, b, 0.5), Vec2{5, 10})
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if !r.Contains(25, 40) {
		t.Error("interior point should be contained")
	}
	// Edges count as inside.
	if !r.Contains(10, 20) {
		t.Error("top-left corner should be contained")
	}
	if !r.Contains(40, 60) {
		t.Error("bottom-right corner should be contained")
	}
	if r.Contains(9.999, 30) {
		t.Error("point left of rect should not be contained")
	}
	if r.Contains(25, 60.001) {
		t.Error("point below rect should not be contained")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	// Sharing only an edge still counts.
	if !a.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if a.Intersects(Rect{X: 11, Y: 0, Width: 10, Height: 10}) {
		t.Error("separated rects should not intersect")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 5, Width: 10, Height: 10}
	assertRect(t, "union", a.Union(b), Rect{X: 0, Y: 0, Width: 30, Height: 15})
	assertRect(t, "empty left", Rect{}.Union(b), b)
	assertRect(t, "empty right", a.Union(Rect{}), a)
}

func TestRectIsEmpty(t *testing.T) {
	if (Rect{X: 5, Y: 5, Width: 1, Height: 1}).IsEmpty() {
		t.Error("rect with area should not be empty")
	}
	if !(Rect{Width: 0, Height: 10}).IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
	if !(Rect{Width: 10, Height: -1}).IsEmpty() {
		t.Error("negative-height rect should be empty")
	}
}

func TestRectCenter(t *testing.T) {
	assertVec(t, "center", Rect{X: 10, Y: 20, Width: 30, Height: 40}.Center(), Vec2{25, 40})
}

func TestEnvelope(t *testing.T) {
	pts := []Vec2{{5, 12}, {-3, 4}, {9, 7}}
	assertRect(t, "envelope", Envelope(pts), Rect{X: -3, Y: 4, Width: 12, Height: 8})
	assertRect(t, "single point", Envelope([]Vec2{{2, 3}}), Rect{X: 2, Y: 3})
	assertRect(t, "empty", Envelope(nil), Rect{})
}

// --- Segment distance ---

func TestDistanceToSegment(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 0}
	// Perpendicular projection falls inside the segment.
	assertNear(t, "above middle", DistanceToSegment(Vec2{5, 3}, a, b), 3)
	// Projection falls past an endpoint, so the endpoint is closest.
	assertNear(t, "past right end", DistanceToSegment(Vec2{13, 4}, a, b), 5)
	assertNear(t, "past left end", DistanceToSegment(Vec2{-3, -4}, a, b), 5)
	assertNear(t, "on segment", DistanceToSegment(Vec2{7, 0}, a, b), 0)
}

func TestDistanceToSegmentDegenerate(t *testing.T) {
	p := Vec2{3, 4}
	assertNear(t, "zero-length segment", DistanceToSegment(p, Vec2{0, 0}, Vec2{0, 0}), 5)
}

func TestPointNearSegment(t *testing.T) {
	a := Vec2{0, 0}
	b := Vec2{10, 0}
	if !PointNearSegment(Vec2{5, 4}, a, b, 5) {
		t.Error("point within tolerance should be near")
	}
	// Exactly at tolerance counts as near.
	if !PointNearSegment(Vec2{5, 5}, a, b, 5) {
		t.Error("point at exact tolerance should be near")
	}
	if PointNearSegment(Vec2{5, 5.001}, a, b, 5) {
		t.Error("point past tolerance should not be near")
	}
}
