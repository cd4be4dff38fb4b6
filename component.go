package aposgui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Component is a node in the UI tree. Concrete widgets embed [Base], which
// supplies every method, and override the lifecycle methods they need.
//
// The host invokes the four lifecycle methods on the root in fixed order
// exactly once per frame: UpdateSetup, UpdateInput, Update, Draw. Containers
// recurse into their children from each.
type Component interface {
	// UpdateSetup propagates geometry and clipping to children, top-down.
	// Containers run their Layout here before recursing.
	UpdateSetup()

	// UpdateInput attempts to handle input for this subtree and reports
	// whether input was consumed. A node offers input to its children first
	// and only then evaluates its own bindings, so the innermost handler
	// wins. A consumed frame short-circuits all remaining ancestors.
	UpdateInput(in *Input) bool

	// Update runs per-frame logic unrelated to input (animations, timers).
	// It always runs, regardless of input consumption.
	Update(dt float64)

	// Draw renders the component. It must not mutate logical state.
	Draw(screen *ebiten.Image)

	// NextFocus and PrevFocus return the next/previous focusable component
	// in depth-first document order, wrapping at tree boundaries. If no
	// other focusable component exists they return the receiver itself,
	// never nil.
	NextFocus() Component
	PrevFocus() Component

	// FirstFocusable and LastFocusable return the first/last focusable
	// descendant reachable from this component, or the component itself if
	// the subtree holds none. Used to decide where focus lands when it
	// enters a subtree.
	FirstFocusable() Component
	LastFocusable() Component

	Bounds() Rect
	SetBounds(r Rect)
	PrefSize() (w, h float64)
	SetPrefSize(w, h float64)
	Clip() Rect
	SetClip(r Rect)

	IsHovered() bool
	// WasHovered reports the hover state at the end of the previous frame's
	// input pass. Together with IsHovered it exposes hover edges.
	WasHovered() bool
	SetHovered(hovered bool)

	IsFocused() bool
	Focus()
	Blur()
	IsFocusable() bool
	SetFocusable(focusable bool)

	// Parent returns the owning component, or nil at the root. The link is
	// non-owning and used only for upward traversal.
	Parent() Component

	// AddAction appends a (condition, action) binding evaluated during the
	// input pass. Bindings run in registration order; the first condition
	// that holds stops evaluation and its action's result is the consumed
	// flag.
	AddAction(cond Condition, act Action)

	// AddHoverCondition narrows hovering: the component only counts as
	// hovered while inside its clip-adjusted bounds and every registered
	// hover condition holds.
	AddHoverCondition(cond Condition)

	// Unexported tree plumbing, satisfied by embedding Base.
	base() *Base
	setParent(p Component)
	detachChild(child Component)
	refreshHoverTree(in *Input)
	nextFocusOf(child Component) (Component, bool)
	prevFocusOf(child Component) (Component, bool)
	firstFocusable() (Component, bool)
	lastFocusable() (Component, bool)
}

// binding pairs a pure predicate with an effect, stored as data so
// evaluation order stays auditable.
type binding struct {
	cond Condition
	act  Action
}

// Base carries the state every component shares: geometry, clipping, hover
// and focus flags, the parent back-reference, and the binding list. Embed it
// by value and call [InitComponent] on the outer widget before use; the
// package constructors do this for the built-in widgets.
type Base struct {
	self   Component // outer widget, for virtual dispatch from Base methods
	parent Component

	x, y                  float64
	width, height         float64
	prefWidth, prefHeight float64
	clip                  Rect

	hovered    bool
	oldHovered bool
	focused    bool
	focusable  bool

	hoverConds []Condition
	bindings   []binding
}

// InitComponent wires a widget's embedded Base back to the widget so that
// Base methods dispatch through the outer type. Custom widgets must call it
// once after construction; the package constructors already do.
func InitComponent(c Component) {
	c.base().self = c
}

func (b *Base) base() *Base { return b }

func (b *Base) setParent(p Component) { b.parent = p }

// detachChild releases the given child; containers override this so a
// child can be moved between owners. Leaves own no children.
func (b *Base) detachChild(child Component) {}

// Parent returns the owning component, or nil at the root.
func (b *Base) Parent() Component { return b.parent }

// --- Geometry ---

// Bounds returns the component's concrete rectangle in UI coordinates.
func (b *Base) Bounds() Rect {
	return Rect{X: b.x, Y: b.y, Width: b.width, Height: b.height}
}

// SetBounds assigns the component's concrete rectangle. Normally called by
// the parent's Layout during UpdateSetup.
func (b *Base) SetBounds(r Rect) {
	b.x, b.y = r.X, r.Y
	b.width, b.height = r.Width, r.Height
}

// PrefSize returns the size the component wants. Containers may honor or
// override it.
func (b *Base) PrefSize() (w, h float64) { return b.prefWidth, b.prefHeight }

// SetPrefSize sets the size the component wants.
func (b *Base) SetPrefSize(w, h float64) {
	b.prefWidth, b.prefHeight = w, h
}

// Clip returns the clipping rectangle propagated from the nearest scrollable
// ancestor. The zero Rect means unclipped.
func (b *Base) Clip() Rect { return b.clip }

// SetClip assigns the clipping rectangle.
func (b *Base) SetClip(r Rect) { b.clip = r }

// clippedBounds returns the bounds restricted to the clip rectangle.
func (b *Base) clippedBounds() Rect {
	bounds := b.Bounds()
	if b.clip.IsZero() {
		return bounds
	}
	return bounds.Intersect(b.clip)
}

// --- Hover and focus state ---

// IsHovered reports whether the pointer is within the component's clipped
// bounds as of the current frame's input pass.
func (b *Base) IsHovered() bool { return b.hovered }

// WasHovered reports the hover state at the end of the previous frame's
// input pass.
func (b *Base) WasHovered() bool { return b.oldHovered }

// SetHovered assigns the hover flag directly. Facade nodes override this to
// keep their delegate in lockstep.
func (b *Base) SetHovered(hovered bool) { b.hovered = hovered }

// IsFocused reports whether this component currently has focus.
func (b *Base) IsFocused() bool { return b.focused }

// Focus marks the component as focused. Facade nodes override this to
// propagate to their active delegate.
func (b *Base) Focus() { b.focused = true }

// Blur clears the focus flag.
func (b *Base) Blur() { b.focused = false }

// IsFocusable reports whether this component can ever receive focus.
func (b *Base) IsFocusable() bool { return b.focusable }

// SetFocusable sets whether this component can receive focus.
func (b *Base) SetFocusable(focusable bool) { b.focusable = focusable }

// --- Bindings ---

// AddAction appends a (condition, action) binding. See Component.AddAction.
func (b *Base) AddAction(cond Condition, act Action) {
	b.bindings = append(b.bindings, binding{cond: cond, act: act})
}

// AddHoverCondition appends a hover-narrowing condition.
func (b *Base) AddHoverCondition(cond Condition) {
	b.hoverConds = append(b.hoverConds, cond)
}

// refreshHover snapshots the previous frame's hover state and recomputes the
// current one. Called exactly once per input pass, before bindings run.
func (b *Base) refreshHover(in *Input) {
	b.oldHovered = b.hovered

	hovered := in.Active && b.clippedBounds().Contains(in.PointerX, in.PointerY)
	for _, cond := range b.hoverConds {
		if !hovered {
			break
		}
		hovered = cond(b.self, in)
	}
	b.hovered = hovered
}

// refreshHoverTree refreshes hover state for this whole subtree without
// evaluating any bindings. Containers override it to recurse; the input
// pass uses it for subtrees the consumption short-circuit skips, so every
// component's hover edges advance exactly once per frame.
func (b *Base) refreshHoverTree(in *Input) {
	b.refreshHover(in)
}

// evalBindings runs the binding list in registration order. The first
// condition that holds stops evaluation; its action's result is returned as
// the consumed flag.
func (b *Base) evalBindings(in *Input) bool {
	for _, bd := range b.bindings {
		if bd.cond(b.self, in) {
			return bd.act(b.self, in)
		}
	}
	return false
}

// --- Lifecycle defaults (leaf behavior) ---

// UpdateSetup is a no-op for leaves.
func (b *Base) UpdateSetup() {}

// UpdateInput refreshes hover state and evaluates this component's bindings.
func (b *Base) UpdateInput(in *Input) bool {
	b.refreshHover(in)
	return b.evalBindings(in)
}

// Update is a no-op for leaves.
func (b *Base) Update(dt float64) {}

// Draw is a no-op; visible widgets override it.
func (b *Base) Draw(screen *ebiten.Image) {}

// --- Tree plumbing shared by containers ---

// attachChild links child under parent, keeping both sides consistent. A
// child that already has a parent is first detached from it, so adding is
// also how children move between owners. Panics on nil or uninitialized
// children and on cycles; malformed trees are prevented by construction
// rather than detected during traversal.
func attachChild(parent, child Component) {
	if child == nil {
		panic("aposgui: cannot add nil child")
	}
	if child.base().self == nil {
		panic("aposgui: child not initialized; call InitComponent")
	}
	if isAncestor(child, parent) {
		panic("aposgui: adding child would create a cycle")
	}
	if old := child.Parent(); old != nil {
		old.detachChild(child)
	}
	child.setParent(parent)
}

// isAncestor reports whether candidate is an ancestor of c (or c itself).
func isAncestor(candidate, c Component) bool {
	for p := c; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}
