package aposgui

// Condition is a pure predicate over a component's state and the frame's
// input snapshot. Conditions must not mutate state.
type Condition func(c Component, in *Input) bool

// Action is the effect half of a binding. It may mutate state and reports
// whether it consumed the input, which stops propagation to ancestors for
// the rest of the frame.
type Action func(c Component, in *Input) bool

// --- Canonical conditions ---

// Hovered holds while the pointer is inside the component's clip-adjusted
// bounds.
func Hovered() Condition {
	return func(c Component, in *Input) bool {
		return c.IsHovered()
	}
}

// JustHovered holds only on the frame the component transitions from not
// hovered to hovered.
func JustHovered() Condition {
	return func(c Component, in *Input) bool {
		return c.IsHovered() && !c.WasHovered()
	}
}

// Activated holds when the component is focused and the confirm input was
// released this frame, or the component is hovered and the primary pointer
// button was released this frame.
func Activated() Condition {
	return func(c Component, in *Input) bool {
		return (c.IsFocused() && in.Confirm.JustReleased()) ||
			(c.IsHovered() && in.Pointer.JustReleased())
	}
}

// FocusNextRequested holds on the release edge of the focus-next input,
// independent of any specific component.
func FocusNextRequested() Condition {
	return func(c Component, in *Input) bool {
		return in.FocusNext.JustReleased()
	}
}

// FocusPrevRequested holds on the release edge of the focus-previous input.
func FocusPrevRequested() Condition {
	return func(c Component, in *Input) bool {
		return in.FocusPrev.JustReleased()
	}
}

// CancelRequested holds on the release edge of the cancel input.
func CancelRequested() Condition {
	return func(c Component, in *Input) bool {
		return in.Cancel.JustReleased()
	}
}

// Always holds unconditionally. Pair it with an action that should fire on
// every frame the bindings before it did not match.
func Always() Condition {
	return func(c Component, in *Input) bool {
		return true
	}
}

// --- Action helpers ---

// Consume is an action that does nothing except claim the input.
func Consume() Action {
	return func(c Component, in *Input) bool {
		return true
	}
}

// Invoke wraps a callback as a consuming action.
func Invoke(fn func(c Component)) Action {
	return func(c Component, in *Input) bool {
		fn(c)
		return true
	}
}

// Grab wraps a caller-supplied focus-transfer callback as a consuming
// action, so the focus policy stays decoupled from the widget requesting
// it. Pass [UI.GrabFocus] or your own.
func Grab(grab func(c Component)) Action {
	return func(c Component, in *Input) bool {
		if grab != nil {
			grab(c)
		}
		return true
	}
}
