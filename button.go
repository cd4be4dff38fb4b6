package aposgui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	defaultButtonPadding = 8.0
	highlightDuration    = 0.15 // seconds
)

// Button reference colors. The highlight value blends base toward hover.
var (
	buttonBaseColor  = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	buttonHoverColor = color.RGBA{R: 110, G: 110, B: 130, A: 255}
	buttonFocusEdge  = color.RGBA{R: 230, G: 200, B: 80, A: 255}
	buttonEdge       = color.RGBA{R: 20, G: 20, B: 24, A: 255}
)

// Button wraps an inner component with padding and makes it interactive:
// hovering lights it up (and claims the input so containers beneath the
// cursor do not also react), activating it runs the caller's operation, and
// the caller-supplied grab callback decides how focus transfers to it.
type Button struct {
	Base

	content Component
	padding float64

	onActivate func(*Button)

	highlight float64 // 0 = base, 1 = fully hovered
	tween     *gween.Tween
	tweenTo   float64
}

// NewButton creates a button around content. grab is invoked when the
// button's activation should transfer focus to it (pass [UI.GrabFocus] or
// nil); onActivate is the button's operation. content may be nil for a bare
// hit area.
func NewButton(content Component, grab func(Component), onActivate func(*Button)) *Button {
	b := &Button{
		content:    content,
		padding:    defaultButtonPadding,
		onActivate: onActivate,
	}
	InitComponent(b)
	b.SetFocusable(true)
	if content != nil {
		attachChild(b, content)
	}

	b.AddAction(Activated(), func(c Component, in *Input) bool {
		if grab != nil {
			grab(c)
		}
		if b.onActivate != nil {
			b.onActivate(b)
		}
		return true
	})
	// Hovering alone claims the input, so a container beneath the cursor
	// does not react the same frame.
	b.AddAction(JustHovered(), Consume())

	syncPref(b)
	return b
}

// SetPadding changes the space between the button's edge and its content.
func (b *Button) SetPadding(padding float64) {
	b.padding = padding
	syncPref(b)
}

// Content returns the wrapped component, or nil.
func (b *Button) Content() Component { return b.content }

// detachChild releases the content when it is moved to another owner.
func (b *Button) detachChild(child Component) {
	if b.content == child {
		b.content = nil
		child.setParent(nil)
	}
}

// syncPref derives the button's preferred size from its content plus
// padding.
func syncPref(b *Button) {
	if b.content == nil {
		return
	}
	cw, ch := b.content.PrefSize()
	b.SetPrefSize(cw+2*b.padding, ch+2*b.padding)
}

// --- Lifecycle ---

// UpdateSetup insets the content into the button's bounds and recurses.
func (b *Button) UpdateSetup() {
	syncPref(b)
	if b.content == nil {
		return
	}
	bounds := b.Bounds()
	b.content.SetBounds(Rect{
		X:      bounds.X + b.padding,
		Y:      bounds.Y + b.padding,
		Width:  bounds.Width - 2*b.padding,
		Height: bounds.Height - 2*b.padding,
	})
	b.content.SetClip(b.Clip())
	b.content.UpdateSetup()
}

// UpdateInput offers input to the content first, then evaluates the
// button's own bindings.
func (b *Button) UpdateInput(in *Input) bool {
	b.refreshHover(in)
	if b.content != nil && b.content.UpdateInput(in) {
		return true
	}
	return b.evalBindings(in)
}

func (b *Button) refreshHoverTree(in *Input) {
	b.refreshHover(in)
	if b.content != nil {
		b.content.refreshHoverTree(in)
	}
}

// Update advances the hover-highlight tween toward the current visual
// state and recurses into the content.
func (b *Button) Update(dt float64) {
	target := 0.0
	if b.hovered || b.focused {
		target = 1.0
	}
	if b.highlight != target && (b.tween == nil || b.tweenTo != target) {
		b.tween = gween.New(float32(b.highlight), float32(target), highlightDuration, ease.OutQuad)
		b.tweenTo = target
	}
	if b.tween != nil {
		v, done := b.tween.Update(float32(dt))
		b.highlight = float64(v)
		if done {
			b.tween = nil
		}
	}
	if b.content != nil {
		b.content.Update(dt)
	}
}

// Draw renders the button background, border, and content. Pure read.
func (b *Button) Draw(screen *ebiten.Image) {
	bounds := b.Bounds()
	bg := lerpRGBA(buttonBaseColor, buttonHoverColor, b.highlight)
	vector.DrawFilledRect(screen,
		float32(bounds.X), float32(bounds.Y),
		float32(bounds.Width), float32(bounds.Height), bg, true)

	edge := buttonEdge
	if b.focused {
		edge = buttonFocusEdge
	}
	vector.StrokeRect(screen,
		float32(bounds.X), float32(bounds.Y),
		float32(bounds.Width), float32(bounds.Height), 1, edge, true)

	if b.content != nil {
		b.content.Draw(screen)
	}
}

// lerpRGBA blends a toward b by t in [0, 1].
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 255,
	}
}
