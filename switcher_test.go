package aposgui

import (
	"testing"
)

func makeSwitcher(t *testing.T) (*Switcher[string], map[string]*probe) {
	t.Helper()
	s := NewSwitcher[string]()
	children := map[string]*probe{}
	for _, key := range []string{"A", "B", "C"} {
		c := newProbe(10, 10)
		children[key] = c
		s.Add(key, c)
	}
	return s, children
}

func assertActiveKey(t *testing.T, s *Switcher[string], want string) {
	t.Helper()
	key, ok := s.ActiveKey()
	if !ok {
		t.Fatalf("ActiveKey() ok = false, want key %q", want)
	}
	if key != want {
		t.Errorf("ActiveKey() = %q, want %q", key, want)
	}
}

func TestSwitcherDefaultsToFirstInserted(t *testing.T) {
	s, children := makeSwitcher(t)
	assertActiveKey(t, s, "A")
	if s.Active() != Component(children["A"]) {
		t.Error("Active() should be the first-inserted child")
	}
}

func TestSwitcherSelectAndInvalidKey(t *testing.T) {
	s, _ := makeSwitcher(t)

	s.SetActiveKey("C")
	assertActiveKey(t, s, "C")

	// Absent key: no-op, previous selection retained.
	s.SetActiveKey("D")
	assertActiveKey(t, s, "C")
}

func TestSwitcherRemoveActiveKeyFallsBack(t *testing.T) {
	s, _ := makeSwitcher(t)
	s.SetActiveKey("C")
	s.Remove("C")
	assertActiveKey(t, s, "A")

	// Re-adding the selected key restores the selection.
	s.Add("C", newProbe(10, 10))
	assertActiveKey(t, s, "C")
}

func TestSwitcherRemoveAbsentKeyIsNoOp(t *testing.T) {
	s, _ := makeSwitcher(t)
	s.Remove("Z")
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestEmptySwitcher(t *testing.T) {
	s := NewSwitcher[string]()
	if _, ok := s.ActiveKey(); ok {
		t.Error("empty switcher must report no active key")
	}
	if s.Active() != nil {
		t.Error("empty switcher must report no active child")
	}

	// Lifecycle on an empty switcher must not crash.
	in := activeInput(0, 0)
	s.UpdateSetup()
	s.UpdateInput(&in)
	s.Update(0.1)
}

func TestSwitcherBindingsRunWhenChildDeclines(t *testing.T) {
	s, children := makeSwitcher(t)
	fired := 0
	s.AddAction(Always(), Invoke(func(Component) { fired++ }))

	in := activeInput(-100, -100)
	if !s.UpdateInput(&in) {
		t.Error("the switcher's own binding should consume when the child declines")
	}
	if fired != 1 {
		t.Fatalf("binding fired %d times, want 1", fired)
	}

	children["A"].AddAction(Always(), Consume())
	s.UpdateInput(&in)
	if fired != 1 {
		t.Error("a consuming child must skip the switcher's own bindings")
	}
}

func TestSwitcherChildMovesToAnotherOwner(t *testing.T) {
	s, children := makeSwitcher(t)
	s.SetActiveKey("B")

	panel := NewPanel(StackLayout{})
	panel.Add(children["B"])

	if children["B"].Parent() != Component(panel) {
		t.Errorf("Parent() = %v after the move, want the panel", children["B"].Parent())
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d after the move, want 2", s.Len())
	}
	// The moved child's key is gone, so resolution falls back.
	assertActiveKey(t, s, "A")
	s.SetActiveKey("B")
	assertActiveKey(t, s, "A")
}

func TestSwitcherFocusPropagation(t *testing.T) {
	s, children := makeSwitcher(t)
	s.SetActiveKey("B")

	s.Focus()
	if !children["B"].IsFocused() {
		t.Error("active child must gain focus with the facade")
	}
	if children["A"].IsFocused() || children["C"].IsFocused() {
		t.Error("inactive children's focus flags must not change")
	}
	if !s.IsFocused() {
		t.Error("the facade itself should report focus")
	}

	s.Blur()
	if children["B"].IsFocused() || s.IsFocused() {
		t.Error("Blur must clear the facade and its delegate")
	}
}

func TestSwitcherHoverPropagation(t *testing.T) {
	s, children := makeSwitcher(t)
	s.SetHovered(true)
	if !children["A"].IsHovered() {
		t.Error("active child must mirror the facade's hover flag")
	}
	if children["B"].IsHovered() {
		t.Error("inactive children must not change")
	}
}

func TestSwitcherForwardsLifecycle(t *testing.T) {
	s, children := makeSwitcher(t)
	s.SetActiveKey("B")
	s.SetBounds(Rect{X: 1, Y: 2, Width: 30, Height: 40})

	s.UpdateSetup()
	if children["B"].setupCalls != 1 {
		t.Error("UpdateSetup must forward to the active child")
	}
	if got := children["B"].Bounds(); got != s.Bounds() {
		t.Errorf("active child bounds = %v, want the switcher's %v", got, s.Bounds())
	}

	in := activeInput(-100, -100)
	s.UpdateInput(&in)
	if children["B"].inputCalls != 1 {
		t.Error("UpdateInput must forward to the active child")
	}

	s.Update(0.5)
	if children["B"].updateCalls != 1 {
		t.Error("Update must forward to the active child")
	}
	if children["A"].setupCalls+children["A"].inputCalls+children["A"].updateCalls != 0 {
		t.Error("inactive children must not receive lifecycle calls")
	}
}

func TestSwitcherPrefSizeMirrorsActive(t *testing.T) {
	s, children := makeSwitcher(t)
	children["A"].SetPrefSize(123, 45)
	if w, h := s.PrefSize(); w != 123 || h != 45 {
		t.Errorf("PrefSize() = (%v, %v), want the active child's (123, 45)", w, h)
	}
}

func TestSwitcherReplaceChildKeepsPosition(t *testing.T) {
	s, _ := makeSwitcher(t)
	replacement := newProbe(10, 10)
	s.Add("A", replacement)
	assertActiveKey(t, s, "A")
	if s.Active() != Component(replacement) {
		t.Error("Add on an existing key should replace the child in place")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d after replace, want 3", s.Len())
	}
}
