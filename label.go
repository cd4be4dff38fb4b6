package aposgui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug-font glyph cell, matching ebitenutil's fixed font.
const (
	labelCharWidth  = 6.0
	labelLineHeight = 16.0
)

// Label is a leaf component that renders a single line of text with the
// debug font. Its preferred size follows the text.
type Label struct {
	Base
	text string
}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label {
	l := &Label{}
	InitComponent(l)
	l.SetText(text)
	return l
}

// Text returns the label's current text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label's text and updates its preferred size.
func (l *Label) SetText(text string) {
	l.text = text
	l.SetPrefSize(float64(len(text))*labelCharWidth, labelLineHeight)
}

// Draw renders the text at the label's top-left corner.
func (l *Label) Draw(screen *ebiten.Image) {
	b := l.Bounds()
	ebitenutil.DebugPrintAt(screen, l.text, int(b.X), int(b.Y))
}
