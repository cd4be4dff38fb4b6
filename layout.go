package aposgui

// Geometry is the container-side input to a Layout: the container's concrete
// bounds, its scroll offset, and the clipping rectangle to forward to
// children.
type Geometry struct {
	Bounds Rect
	Offset Vec2
	Clip   Rect
}

// Layout is a pluggable algorithm that computes child geometry from a
// container's geometry and each child's preferred size.
//
// Arrange must be total over any ordered child slice, including empty, and
// must not mutate the children's preferred sizes; it assigns each child's
// concrete bounds and clip and returns the container's resulting size.
type Layout interface {
	Arrange(children []Component, g Geometry) (w, h float64)
}

// StackLayout stacks children vertically: each child receives the
// container's width and its own preferred height, placed consecutively from
// the container's top-left plus the scroll offset. The resulting container
// height is the sum of the children's preferred heights, 0 with no children.
type StackLayout struct{}

// Arrange implements Layout.
func (StackLayout) Arrange(children []Component, g Geometry) (w, h float64) {
	y := g.Bounds.Y + g.Offset.Y
	for _, child := range children {
		_, ph := child.PrefSize()
		child.SetBounds(Rect{
			X:      g.Bounds.X + g.Offset.X,
			Y:      y,
			Width:  g.Bounds.Width,
			Height: ph,
		})
		child.SetClip(g.Clip)
		y += ph
		h += ph
	}
	return g.Bounds.Width, h
}

// CenterStackLayout stacks children vertically like StackLayout, but each
// child keeps its preferred width and is centered within the container's
// width.
type CenterStackLayout struct{}

// Arrange implements Layout.
func (CenterStackLayout) Arrange(children []Component, g Geometry) (w, h float64) {
	y := g.Bounds.Y + g.Offset.Y
	for _, child := range children {
		pw, ph := child.PrefSize()
		child.SetBounds(Rect{
			X:      g.Bounds.X + g.Offset.X + (g.Bounds.Width-pw)/2,
			Y:      y,
			Width:  pw,
			Height: ph,
		})
		child.SetClip(g.Clip)
		y += ph
		h += ph
	}
	return g.Bounds.Width, h
}
