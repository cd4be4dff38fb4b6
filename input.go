package aposgui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// stickNavThreshold is how far the left stick must deflect before it counts
// as a focus-navigation press.
const stickNavThreshold = 0.5

// ButtonState is the current-versus-previous frame state of one semantic
// button, exposing press and release edges.
type ButtonState struct {
	Down     bool
	PrevDown bool
}

// JustPressed reports a rising edge: down this frame, up last frame.
func (b ButtonState) JustPressed() bool { return b.Down && !b.PrevDown }

// JustReleased reports a falling edge: up this frame, down last frame.
func (b ButtonState) JustReleased() bool { return !b.Down && b.PrevDown }

// next shifts the state by one frame.
func (b ButtonState) next(down bool) ButtonState {
	return ButtonState{Down: down, PrevDown: b.Down}
}

// Input is the process-wide input snapshot for one frame: pointer position
// in UI coordinates, semantic button edges, and analog stick values, each
// with its previous-frame counterpart. It is refreshed once per frame before
// the input pass and held immutable for the duration of that pass, so
// conditions are pure functions of (component, snapshot).
//
// Tests and replay tooling construct Input values directly instead of
// polling devices.
type Input struct {
	// Active reports whether input should be acted on at all. It is false
	// while the application window is unfocused, suppressing stale hover
	// and clicks.
	Active bool

	PointerX, PointerY         float64
	PrevPointerX, PrevPointerY float64

	// Pointer is the primary pointer button.
	Pointer ButtonState
	// Confirm is the primary "activate the focused component" input.
	Confirm ButtonState
	// FocusNext, FocusPrev, and Cancel are the global focus-navigation
	// inputs.
	FocusNext ButtonState
	FocusPrev ButtonState
	Cancel    ButtonState

	StickX, StickY         float64
	PrevStickX, PrevStickY float64
}

// Keymap maps the semantic inputs to concrete ebiten keys and gamepad
// controls. The zero value maps nothing; start from DefaultKeymap.
type Keymap struct {
	ConfirmKeys   []ebiten.Key
	CancelKeys    []ebiten.Key
	FocusNextKeys []ebiten.Key
	FocusPrevKeys []ebiten.Key

	ConfirmButtons   []ebiten.StandardGamepadButton
	CancelButtons    []ebiten.StandardGamepadButton
	FocusNextButtons []ebiten.StandardGamepadButton
	FocusPrevButtons []ebiten.StandardGamepadButton

	// TabCycles makes Tab move focus forward and Shift+Tab backward, on
	// top of the explicit key lists.
	TabCycles bool
}

// DefaultKeymap returns the standard bindings: Enter/Space or gamepad A to
// confirm, Escape or gamepad B to cancel, Tab/Shift+Tab and the arrow keys,
// D-pad, or left stick to move focus.
func DefaultKeymap() Keymap {
	return Keymap{
		ConfirmKeys:   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
		CancelKeys:    []ebiten.Key{ebiten.KeyEscape},
		FocusNextKeys: []ebiten.Key{ebiten.KeyArrowDown},
		FocusPrevKeys: []ebiten.Key{ebiten.KeyArrowUp},

		ConfirmButtons:   []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		CancelButtons:    []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		FocusNextButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		FocusPrevButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},

		TabCycles: true,
	}
}

// poller reads device state from ebiten through a Keymap and shifts an
// Input snapshot forward one frame.
type poller struct {
	keymap     Keymap
	gamepadIDs []ebiten.GamepadID
}

// refresh shifts in by one frame from the current device state.
func (p *poller) refresh(in *Input) {
	in.Active = ebiten.IsFocused()

	mx, my := ebiten.CursorPosition()
	in.PrevPointerX, in.PrevPointerY = in.PointerX, in.PointerY
	in.PointerX, in.PointerY = float64(mx), float64(my)

	pad, hasPad := p.firstStandardGamepad()

	in.Pointer = in.Pointer.next(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	sx, sy := 0.0, 0.0
	if hasPad {
		sx = ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
		sy = ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickVertical)
	}
	in.PrevStickX, in.PrevStickY = in.StickX, in.StickY
	in.StickX, in.StickY = sx, sy

	km := &p.keymap
	confirm := anyKeyPressed(km.ConfirmKeys) || anyPadPressed(pad, hasPad, km.ConfirmButtons)
	cancel := anyKeyPressed(km.CancelKeys) || anyPadPressed(pad, hasPad, km.CancelButtons)
	next := anyKeyPressed(km.FocusNextKeys) || anyPadPressed(pad, hasPad, km.FocusNextButtons) ||
		sy > stickNavThreshold
	prev := anyKeyPressed(km.FocusPrevKeys) || anyPadPressed(pad, hasPad, km.FocusPrevButtons) ||
		sy < -stickNavThreshold

	if km.TabCycles && ebiten.IsKeyPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			prev = true
		} else {
			next = true
		}
	}

	in.Confirm = in.Confirm.next(confirm)
	in.Cancel = in.Cancel.next(cancel)
	in.FocusNext = in.FocusNext.next(next)
	in.FocusPrev = in.FocusPrev.next(prev)
}

// firstStandardGamepad returns the first connected gamepad with a standard
// layout mapping.
func (p *poller) firstStandardGamepad() (ebiten.GamepadID, bool) {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	for _, id := range p.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyPadPressed(pad ebiten.GamepadID, hasPad bool, buttons []ebiten.StandardGamepadButton) bool {
	if !hasPad {
		return false
	}
	for _, b := range buttons {
		if ebiten.IsStandardGamepadButtonPressed(pad, b) {
			return true
		}
	}
	return false
}
