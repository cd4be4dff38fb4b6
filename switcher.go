package aposgui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Switcher is a variant component: an insertion-ordered mapping from keys to
// owned children that exposes exactly one child as active and forwards every
// Component operation to it. Inactive keyed children are invisible to input,
// drawing, and focus traversal.
//
// With no explicit selection the active child defaults to the first-inserted
// key still present. Selecting an absent key is a no-op. When the selected
// key is removed the stored selection is kept but resolution falls back to
// the first-inserted rule; re-adding the key restores the selection.
type Switcher[K comparable] struct {
	Base

	keys     []K
	children map[K]Component

	selected    K
	hasSelected bool
}

// NewSwitcher creates an empty switcher.
func NewSwitcher[K comparable]() *Switcher[K] {
	s := &Switcher[K]{children: make(map[K]Component)}
	InitComponent(s)
	return s
}

// Add inserts child under key, replacing any previous child at that key
// while keeping the key's insertion position. Panics like Panel.Add on nil,
// already-attached, or cyclic children.
func (s *Switcher[K]) Add(key K, child Component) {
	attachChild(s, child)
	if old, ok := s.children[key]; ok {
		old.setParent(nil)
		s.children[key] = child
		return
	}
	s.keys = append(s.keys, key)
	s.children[key] = child
}

// Remove detaches the child at key. A no-op if the key is absent. The
// stored selection is intentionally left untouched; see the type comment.
func (s *Switcher[K]) Remove(key K) {
	child, ok := s.children[key]
	if !ok {
		return
	}
	child.setParent(nil)
	delete(s.children, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// detachChild removes the key whose child is being moved to another owner.
func (s *Switcher[K]) detachChild(child Component) {
	for key, c := range s.children {
		if c == child {
			s.Remove(key)
			return
		}
	}
}

// SetActiveKey selects the child to expose. Selecting a key that is not
// present is a no-op and the previous selection is retained.
func (s *Switcher[K]) SetActiveKey(key K) {
	if _, ok := s.children[key]; !ok {
		return
	}
	s.selected = key
	s.hasSelected = true
}

// ActiveKey returns the key whose child is currently active. ok is false
// when the switcher has no children.
func (s *Switcher[K]) ActiveKey() (key K, ok bool) {
	if s.hasSelected {
		if _, present := s.children[s.selected]; present {
			return s.selected, true
		}
	}
	if len(s.keys) > 0 {
		return s.keys[0], true
	}
	return key, false
}

// Active returns the active child, or nil if the switcher is empty.
func (s *Switcher[K]) Active() Component {
	key, ok := s.ActiveKey()
	if !ok {
		return nil
	}
	return s.children[key]
}

// Len returns the number of keyed children.
func (s *Switcher[K]) Len() int { return len(s.keys) }

// --- Lifecycle forwarding ---

// UpdateSetup hands the switcher's geometry and clip to the active child,
// then recurses into it.
func (s *Switcher[K]) UpdateSetup() {
	active := s.Active()
	if active == nil {
		return
	}
	active.SetBounds(s.Bounds())
	active.SetClip(s.Clip())
	active.UpdateSetup()
}

// UpdateInput offers input to the active child first and evaluates the
// switcher's own bindings only if the child declined, like any other
// container. The switcher's own hover state mirrors the facade geometry so
// hover edges stay well-defined for it too.
func (s *Switcher[K]) UpdateInput(in *Input) bool {
	s.refreshHover(in)
	if active := s.Active(); active != nil && active.UpdateInput(in) {
		return true
	}
	return s.evalBindings(in)
}

func (s *Switcher[K]) refreshHoverTree(in *Input) {
	s.refreshHover(in)
	if active := s.Active(); active != nil {
		active.refreshHoverTree(in)
	}
}

// Update forwards to the active child.
func (s *Switcher[K]) Update(dt float64) {
	if active := s.Active(); active != nil {
		active.Update(dt)
	}
}

// Draw forwards to the active child.
func (s *Switcher[K]) Draw(screen *ebiten.Image) {
	if active := s.Active(); active != nil {
		active.Draw(screen)
	}
}

// PrefSize reports the active child's preferred size, so layouts size the
// facade exactly like the child it stands in for.
func (s *Switcher[K]) PrefSize() (w, h float64) {
	if active := s.Active(); active != nil {
		return active.PrefSize()
	}
	return s.prefWidth, s.prefHeight
}

// --- Facade state propagation ---

// Focus marks the switcher and its active child as focused, keeping the
// facade and its delegate in lockstep.
func (s *Switcher[K]) Focus() {
	s.focused = true
	if active := s.Active(); active != nil {
		active.Focus()
	}
}

// Blur clears focus on the switcher and its active child.
func (s *Switcher[K]) Blur() {
	s.focused = false
	if active := s.Active(); active != nil {
		active.Blur()
	}
}

// SetHovered assigns the hover flag on the switcher and its active child.
func (s *Switcher[K]) SetHovered(hovered bool) {
	s.hovered = hovered
	if active := s.Active(); active != nil {
		active.SetHovered(hovered)
	}
}

// --- Focus traversal ---

// The switcher short-circuits traversal to its active child; with no active
// child it behaves as if it had no focusable content, delegating to its
// parent (Base behavior). Hidden keyed children are never visited.

// NextFocus forwards to the active child.
func (s *Switcher[K]) NextFocus() Component {
	if active := s.Active(); active != nil {
		return active.NextFocus()
	}
	return s.Base.NextFocus()
}

// PrevFocus forwards to the active child.
func (s *Switcher[K]) PrevFocus() Component {
	if active := s.Active(); active != nil {
		return active.PrevFocus()
	}
	return s.Base.PrevFocus()
}

func (s *Switcher[K]) firstFocusable() (Component, bool) {
	if active := s.Active(); active != nil {
		return active.firstFocusable()
	}
	return nil, false
}

func (s *Switcher[K]) lastFocusable() (Component, bool) {
	if active := s.Active(); active != nil {
		return active.lastFocusable()
	}
	return nil, false
}
