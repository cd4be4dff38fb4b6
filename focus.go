package aposgui

// Focus traversal is a stateless, tree-shape-driven bidirectional walk.
//
// Each component answers four questions: the next/previous focusable node in
// depth-first document order relative to itself, and the first/last
// focusable node of its own subtree. Leaves delegate next/previous to their
// parent, containers scan their children and exit to their own parent past
// the first/last child, and the topmost container wraps around. The walk
// never produces nil: when no other focusable node exists, a component is
// its own neighbor.

// NextFocus returns the next focusable component in document order,
// wrapping at the tree boundary. Returns the receiver if the tree holds no
// other focusable component.
func (b *Base) NextFocus() Component {
	if b.parent != nil {
		if next, ok := b.parent.nextFocusOf(b.self); ok {
			return next
		}
	}
	return b.self
}

// PrevFocus returns the previous focusable component in document order,
// wrapping at the tree boundary. Returns the receiver if the tree holds no
// other focusable component.
func (b *Base) PrevFocus() Component {
	if b.parent != nil {
		if prev, ok := b.parent.prevFocusOf(b.self); ok {
			return prev
		}
	}
	return b.self
}

// FirstFocusable returns the first focusable component in this subtree, or
// the receiver if there is none.
func (b *Base) FirstFocusable() Component {
	if first, ok := b.self.firstFocusable(); ok {
		return first
	}
	return b.self
}

// LastFocusable returns the last focusable component in this subtree, or
// the receiver if there is none.
func (b *Base) LastFocusable() Component {
	if last, ok := b.self.lastFocusable(); ok {
		return last
	}
	return b.self
}

// firstFocusable is the leaf default: the component itself when focusable.
func (b *Base) firstFocusable() (Component, bool) {
	if b.focusable {
		return b.self, true
	}
	return nil, false
}

func (b *Base) lastFocusable() (Component, bool) {
	if b.focusable {
		return b.self, true
	}
	return nil, false
}

// nextFocusOf is the default for components that parent children without
// offering them as traversal stops (facade nodes, single-child wrappers):
// traversal passes straight through to this component's own parent, or
// wraps within the subtree at the root.
func (b *Base) nextFocusOf(child Component) (Component, bool) {
	if b.parent != nil {
		return b.parent.nextFocusOf(b.self)
	}
	return b.self.firstFocusable()
}

func (b *Base) prevFocusOf(child Component) (Component, bool) {
	if b.parent != nil {
		return b.parent.prevFocusOf(b.self)
	}
	return b.self.lastFocusable()
}
