package aposgui

import (
	"testing"
)

func TestStackLayoutSumInvariant(t *testing.T) {
	panel := NewPanel(StackLayout{})
	panel.SetBounds(Rect{X: 5, Y: 7, Width: 100, Height: 0})

	heights := []float64{10, 20, 30}
	for _, h := range heights {
		panel.Add(newProbe(40, h))
	}
	panel.UpdateSetup()

	if _, h := panel.ContentSize(); h != 60 {
		t.Errorf("content height = %v, want 60 (sum of preferred heights)", h)
	}

	wantY := 7.0
	for i, child := range panel.Children() {
		got := child.Bounds()
		want := Rect{X: 5, Y: wantY, Width: 100, Height: heights[i]}
		if got != want {
			t.Errorf("child %d bounds = %v, want %v", i, got, want)
		}
		wantY += heights[i]
	}
}

func TestStackLayoutEmpty(t *testing.T) {
	panel := NewPanel(StackLayout{})
	panel.SetBounds(Rect{Width: 100, Height: 50})
	panel.UpdateSetup()

	if w, h := panel.ContentSize(); w != 100 || h != 0 {
		t.Errorf("ContentSize() = (%v, %v), want (100, 0)", w, h)
	}
}

func TestStackLayoutScrollOffset(t *testing.T) {
	panel := NewPanel(StackLayout{})
	panel.SetBounds(Rect{X: 0, Y: 0, Width: 100, Height: 30})
	panel.SetOffset(Vec2{Y: -12})
	panel.Add(newProbe(0, 10))
	panel.Add(newProbe(0, 10))
	panel.UpdateSetup()

	if y := panel.Children()[0].Bounds().Y; y != -12 {
		t.Errorf("child 0 Y = %v, want -12 (top-left plus scroll offset)", y)
	}
	if y := panel.Children()[1].Bounds().Y; y != -2 {
		t.Errorf("child 1 Y = %v, want -2", y)
	}
}

func TestCenterStackLayoutCentering(t *testing.T) {
	panel := NewPanel(CenterStackLayout{})
	panel.SetBounds(Rect{X: 10, Y: 0, Width: 100, Height: 0})
	panel.Add(newProbe(40, 10))
	panel.Add(newProbe(80, 10))
	panel.UpdateSetup()

	containerCenter := 10.0 + 100.0/2
	for i, child := range panel.Children() {
		b := child.Bounds()
		center := b.X + b.Width/2
		if center != containerCenter {
			t.Errorf("child %d horizontal center = %v, want %v", i, center, containerCenter)
		}
		pw, _ := child.PrefSize()
		if b.Width != pw {
			t.Errorf("child %d width = %v, want preferred width %v", i, b.Width, pw)
		}
	}
}

func TestLayoutDoesNotMutatePrefSizes(t *testing.T) {
	panel := NewPanel(StackLayout{})
	panel.SetBounds(Rect{Width: 100})
	child := newProbe(40, 10)
	panel.Add(child)
	panel.UpdateSetup()

	if w, h := child.PrefSize(); w != 40 || h != 10 {
		t.Errorf("PrefSize() = (%v, %v) after arrange, want (40, 10)", w, h)
	}
}

// countingLayout wraps a Layout and records how many times Arrange runs.
type countingLayout struct {
	inner Layout
	calls int
}

func (c *countingLayout) Arrange(children []Component, g Geometry) (w, h float64) {
	c.calls++
	return c.inner.Arrange(children, g)
}

func TestLayoutRecomputeTriggers(t *testing.T) {
	layout := &countingLayout{inner: StackLayout{}}
	panel := NewPanel(layout)
	panel.SetBounds(Rect{Width: 100, Height: 50})
	panel.Add(newProbe(0, 10))

	panel.UpdateSetup()
	if layout.calls != 1 {
		t.Fatalf("arrange calls = %d after first setup, want 1", layout.calls)
	}

	// Unchanged geometry and child set: no recompute.
	panel.UpdateSetup()
	if layout.calls != 1 {
		t.Errorf("arrange calls = %d after unchanged setup, want 1", layout.calls)
	}

	// Geometry change triggers a recompute.
	panel.SetBounds(Rect{Width: 200, Height: 50})
	panel.UpdateSetup()
	if layout.calls != 2 {
		t.Errorf("arrange calls = %d after resize, want 2", layout.calls)
	}

	// Child-set change triggers a recompute.
	panel.Add(newProbe(0, 10))
	panel.UpdateSetup()
	if layout.calls != 3 {
		t.Errorf("arrange calls = %d after adding a child, want 3", layout.calls)
	}

	// Scroll offset change triggers a recompute.
	panel.ScrollBy(0, -5)
	panel.UpdateSetup()
	if layout.calls != 4 {
		t.Errorf("arrange calls = %d after scrolling, want 4", layout.calls)
	}
}

func TestNestedPanelsSettle(t *testing.T) {
	outer := NewPanel(StackLayout{})
	outer.SetBounds(Rect{Width: 100, Height: 100})
	inner := NewPanel(StackLayout{})
	inner.Add(newProbe(0, 10))
	inner.Add(newProbe(0, 20))
	outer.Add(inner)

	// First pass computes the inner panel's content size; the second honors
	// it in the outer layout.
	outer.UpdateSetup()
	outer.UpdateSetup()

	if h := inner.Bounds().Height; h != 30 {
		t.Errorf("inner panel height = %v, want 30 (its content height)", h)
	}
}
