package aposgui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Panel is a container component: it owns an ordered sequence of children
// and delegates their geometry to a Layout. A scrollable panel additionally
// clips its children to its own visible rectangle and offsets them by its
// scroll offset.
type Panel struct {
	Base

	children   []Component
	layout     Layout
	offset     Vec2
	scrollable bool

	layoutDirty  bool
	lastArranged Geometry
	lastPrefs    []Vec2
	childClip    Rect
}

// NewPanel creates an empty panel using the given layout.
func NewPanel(layout Layout) *Panel {
	if layout == nil {
		panic("aposgui: panel requires a layout")
	}
	p := &Panel{layout: layout, layoutDirty: true}
	InitComponent(p)
	return p
}

// Add appends child to the panel and sets its parent back-reference. Add is
// the only way to establish the link, so both sides always stay consistent.
// A child that already has a parent is detached from it first, so Add moves
// children between containers. Panics if child is nil, uninitialized, or an
// ancestor of the panel.
//
// Structural mutation during the input or update pass is disallowed; use
// [UI.Defer] to queue it to the frame boundary.
func (p *Panel) Add(child Component) {
	attachChild(p, child)
	p.children = append(p.children, child)
	p.layoutDirty = true
}

// Remove detaches child from the panel. Panics if the child's parent is not
// this panel.
func (p *Panel) Remove(child Component) {
	if child == nil || child.Parent() != Component(p) {
		panic("aposgui: child's parent is not this panel")
	}
	p.detachChild(child)
}

// detachChild unlinks child from the panel's child list. A no-op if the
// panel does not own child.
func (p *Panel) detachChild(child Component) {
	for i, c := range p.children {
		if c == child {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			child.setParent(nil)
			p.layoutDirty = true
			return
		}
	}
}

// Children returns the child list. The returned slice must not be mutated.
func (p *Panel) Children() []Component { return p.children }

// SetLayout replaces the panel's layout strategy.
func (p *Panel) SetLayout(layout Layout) {
	if layout == nil {
		panic("aposgui: panel requires a layout")
	}
	p.layout = layout
	p.layoutDirty = true
}

// Offset returns the panel's scroll offset.
func (p *Panel) Offset() Vec2 { return p.offset }

// SetOffset assigns the panel's scroll offset.
func (p *Panel) SetOffset(offset Vec2) {
	if p.offset == offset {
		return
	}
	p.offset = offset
	p.layoutDirty = true
}

// ScrollBy shifts the panel's scroll offset by (dx, dy).
func (p *Panel) ScrollBy(dx, dy float64) {
	p.SetOffset(Vec2{X: p.offset.X + dx, Y: p.offset.Y + dy})
}

// SetScrollable marks the panel as scrollable. A scrollable panel clips its
// children to its own visible rectangle instead of forwarding its inherited
// clip unchanged.
func (p *Panel) SetScrollable(scrollable bool) {
	if p.scrollable == scrollable {
		return
	}
	p.scrollable = scrollable
	p.layoutDirty = true
}

// ContentSize returns the size the layout produced on the last arrange.
func (p *Panel) ContentSize() (w, h float64) {
	return p.prefWidth, p.prefHeight
}

// --- Lifecycle ---

// UpdateSetup recomputes child geometry when the panel's own geometry or
// child set changed since the last arrange, then recurses into children.
func (p *Panel) UpdateSetup() {
	assigned := p.Bounds()

	childClip := p.Clip()
	if p.scrollable {
		visible := assigned
		if !childClip.IsZero() {
			visible = assigned.Intersect(childClip)
		}
		childClip = visible
		if childClip.IsZero() {
			// The visible rectangle vanished entirely. The zero Rect
			// would read as "unclipped", so forward the distinct
			// nothing-visible clip instead.
			childClip = emptyClip
		}
	}

	// The layout's resulting size is the panel's preferred size: its report
	// upward. The panel's concrete bounds stay whatever its parent (or the
	// host, at the root) assigned, so a scrollable panel's visible rectangle
	// survives content growth.
	g := Geometry{Bounds: assigned, Offset: p.offset, Clip: childClip}
	if p.layoutDirty || g != p.lastArranged || p.prefsChanged() {
		w, h := p.layout.Arrange(p.children, g)
		p.SetPrefSize(w, h)
		p.childClip = childClip
		p.lastArranged = g
		p.recordPrefs()
		p.layoutDirty = false
	}

	for _, child := range p.children {
		child.UpdateSetup()
	}
}

// UpdateInput refreshes the panel's hover state, offers input to children in
// order, and evaluates the panel's own bindings only if no child consumed.
// Children past the consumption point still get their hover state refreshed
// so every node's hover edges advance once per frame, but their bindings do
// not run.
func (p *Panel) UpdateInput(in *Input) bool {
	p.refreshHover(in)
	consumed := false
	for _, child := range p.children {
		if consumed {
			child.refreshHoverTree(in)
			continue
		}
		consumed = child.UpdateInput(in)
	}
	if consumed {
		return true
	}
	return p.evalBindings(in)
}

func (p *Panel) refreshHoverTree(in *Input) {
	p.refreshHover(in)
	for _, child := range p.children {
		child.refreshHoverTree(in)
	}
}

// Update recurses into children.
func (p *Panel) Update(dt float64) {
	for _, child := range p.children {
		child.Update(dt)
	}
}

// Draw renders children in order. A scrollable panel draws them through a
// sub-image restricted to its visible rectangle, and draws nothing at all
// when that rectangle is empty.
func (p *Panel) Draw(screen *ebiten.Image) {
	target := screen
	if p.scrollable {
		if p.childClip.Empty() {
			return
		}
		clip := p.childClip
		sub := screen.SubImage(image.Rect(
			int(clip.X), int(clip.Y),
			int(clip.X+clip.Width), int(clip.Y+clip.Height),
		))
		target = sub.(*ebiten.Image)
	}
	for _, child := range p.children {
		child.Draw(target)
	}
}

// --- Focus traversal ---

// nextFocusOf scans the children after child in order; when traversal would
// exit the last child it continues at the panel's own parent, or wraps
// within the panel at the root.
func (p *Panel) nextFocusOf(child Component) (Component, bool) {
	idx := p.indexOf(child)
	if idx >= 0 {
		for i := idx + 1; i < len(p.children); i++ {
			if first, ok := p.children[i].firstFocusable(); ok {
				return first, true
			}
		}
	}
	if p.parent != nil {
		return p.parent.nextFocusOf(p)
	}
	return p.firstFocusable()
}

func (p *Panel) prevFocusOf(child Component) (Component, bool) {
	idx := p.indexOf(child)
	if idx >= 0 {
		for i := idx - 1; i >= 0; i-- {
			if last, ok := p.children[i].lastFocusable(); ok {
				return last, true
			}
		}
	}
	if p.parent != nil {
		return p.parent.prevFocusOf(p)
	}
	return p.lastFocusable()
}

// firstFocusable returns the first focusable descendant in child order, the
// panel itself if it is focusable and no child is, or nothing.
func (p *Panel) firstFocusable() (Component, bool) {
	for _, child := range p.children {
		if first, ok := child.firstFocusable(); ok {
			return first, true
		}
	}
	if p.focusable {
		return p.self, true
	}
	return nil, false
}

func (p *Panel) lastFocusable() (Component, bool) {
	for i := len(p.children) - 1; i >= 0; i-- {
		if last, ok := p.children[i].lastFocusable(); ok {
			return last, true
		}
	}
	if p.focusable {
		return p.self, true
	}
	return nil, false
}

// prefsChanged reports whether any child's preferred size differs from the
// inputs of the last arrange. Layout reruns when its inputs change, which
// lets nested containers settle.
func (p *Panel) prefsChanged() bool {
	if len(p.lastPrefs) != len(p.children) {
		return true
	}
	for i, child := range p.children {
		w, h := child.PrefSize()
		if p.lastPrefs[i] != (Vec2{X: w, Y: h}) {
			return true
		}
	}
	return false
}

func (p *Panel) recordPrefs() {
	p.lastPrefs = p.lastPrefs[:0]
	for _, child := range p.children {
		w, h := child.PrefSize()
		p.lastPrefs = append(p.lastPrefs, Vec2{X: w, Y: h})
	}
}

func (p *Panel) indexOf(child Component) int {
	for i, c := range p.children {
		if c == child {
			return i
		}
	}
	return -1
}
