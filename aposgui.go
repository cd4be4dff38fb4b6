package aposgui

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. The zero Rect means "unbounded"
// when used as a clipping rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// emptyClip is the canonical "nothing visible" clipping rectangle: empty
// but deliberately not the zero Rect, so it stays distinct from
// "unclipped". Produced when a scrollable container's visible rectangle
// and its inherited clip do not overlap.
var emptyClip = Rect{Width: -1, Height: -1}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside; an empty rectangle contains
// no points.
func (r Rect) Contains(x, y float64) bool {
	return r.Width > 0 && r.Height > 0 &&
		x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersect returns the overlap of r and other, or the zero Rect if they
// do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x || y2 <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Empty reports whether r has no area. The zero rectangle is empty too;
// as a clip the zero value means "unclipped" while any other empty
// rectangle means "nothing visible".
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
