package aposgui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// UI owns a component tree's root, the per-frame input snapshot, the current
// focus target, and the deferred-mutation queue. The host calls Update and
// Draw once per frame from its ebiten.Game.
type UI struct {
	root    Component
	input   Input
	poll    poller
	focused Component

	deferred []func()
}

// New creates a UI around root using the default keymap.
func New(root Component) *UI {
	return NewWithKeymap(root, DefaultKeymap())
}

// NewWithKeymap creates a UI around root with a custom keymap.
func NewWithKeymap(root Component, keymap Keymap) *UI {
	if root == nil {
		panic("aposgui: ui requires a root component")
	}
	if root.base().self == nil {
		panic("aposgui: root not initialized; call InitComponent")
	}
	return &UI{root: root, poll: poller{keymap: keymap}}
}

// Root returns the tree's root component.
func (u *UI) Root() Component { return u.root }

// Input returns the current frame's input snapshot.
func (u *UI) Input() *Input { return &u.input }

// Update runs one frame: deferred structural mutations, input polling, then
// the fixed pipeline UpdateSetup → UpdateInput → Update over the tree.
// Global focus navigation applies only when the tree did not consume input.
func (u *UI) Update() {
	u.runDeferred()

	dt := frameDelta(ebiten.TPS())
	u.poll.refresh(&u.input)

	u.root.UpdateSetup()
	if !u.root.UpdateInput(&u.input) {
		u.applyGlobalNav()
	}
	u.root.Update(dt)
}

// frameDelta converts the host tick rate to a fixed time step. With
// ebiten.SyncWithFPS the reported rate is negative; fall back to the
// default rate rather than producing a negative step.
func frameDelta(tps int) float64 {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1.0 / float64(tps)
}

// Step is Update with a caller-supplied snapshot and dt instead of device
// polling; deterministic drivers and tests feed input through it.
func (u *UI) Step(in Input, dt float64) {
	u.runDeferred()
	u.input = in

	u.root.UpdateSetup()
	if !u.root.UpdateInput(&u.input) {
		u.applyGlobalNav()
	}
	u.root.Update(dt)
}

// Draw renders the tree.
func (u *UI) Draw(screen *ebiten.Image) {
	u.root.Draw(screen)
}

// Defer queues fn to run at the next frame boundary, before the setup pass.
// Structural tree mutation (adding or removing children) is not allowed
// while a traversal pass is running; route it through Defer.
func (u *UI) Defer(fn func()) {
	u.deferred = append(u.deferred, fn)
}

func (u *UI) runDeferred() {
	if len(u.deferred) == 0 {
		return
	}
	pending := u.deferred
	u.deferred = nil
	for _, fn := range pending {
		fn()
	}
}

// --- Focus bookkeeping ---

// Focused returns the component currently holding focus, or nil.
func (u *UI) Focused() Component { return u.focused }

// GrabFocus transfers focus to c, blurring the previous target. It is the
// canonical callback to hand widgets that request focus on activation.
func (u *UI) GrabFocus(c Component) {
	if c == nil || c == u.focused {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = c
	c.Focus()
}

// DropFocus blurs the current focus target, leaving nothing focused.
func (u *UI) DropFocus() {
	if u.focused == nil {
		return
	}
	u.focused.Blur()
	u.focused = nil
}

// FocusNext moves focus to the next focusable component in document order,
// or to the tree's first focusable component when nothing is focused.
func (u *UI) FocusNext() {
	if u.focused == nil {
		u.focusIfFocusable(u.root.FirstFocusable())
		return
	}
	u.GrabFocus(u.focused.NextFocus())
}

// FocusPrev moves focus to the previous focusable component in document
// order, or to the tree's last focusable component when nothing is focused.
func (u *UI) FocusPrev() {
	if u.focused == nil {
		u.focusIfFocusable(u.root.LastFocusable())
		return
	}
	u.GrabFocus(u.focused.PrevFocus())
}

func (u *UI) focusIfFocusable(c Component) {
	if c != nil && c.IsFocusable() {
		u.GrabFocus(c)
	}
}

// applyGlobalNav handles the release edges of the focus-navigation inputs
// after the tree declined to consume the frame.
func (u *UI) applyGlobalNav() {
	switch {
	case u.input.FocusNext.JustReleased():
		u.FocusNext()
	case u.input.FocusPrev.JustReleased():
		u.FocusPrev()
	case u.input.Cancel.JustReleased():
		u.DropFocus()
	}
}
