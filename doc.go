// Package aposgui is a retained-mode GUI component tree for [Ebitengine]
// games and interactive tools.
//
// The library runs a fixed per-frame pipeline over a tree of components:
// geometry and clipping propagate top-down, input dispatches bottom-up with
// single-consumer semantics, logic updates run, and the tree draws. It
// provides the component and container contracts, composable layout
// strategies, bidirectional focus traversal, and a declarative
// condition/action input-binding model. Widget visuals beyond the reference
// Button and Label are left to the host.
//
// # Quick start
//
// Build a tree, hand the root to a [UI], and drive it from an [ebiten.Game]:
//
//	panel := aposgui.NewPanel(aposgui.StackLayout{})
//	ui := aposgui.New(panel)
//	panel.Add(aposgui.NewLabel("hello"))
//	panel.Add(aposgui.NewButton(aposgui.NewLabel("ok"), ui.GrabFocus, onOK))
//
//	type Game struct{ ui *aposgui.UI }
//
//	func (g *Game) Update() error              { g.ui.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.ui.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Components
//
// Every node implements [Component]; concrete widgets embed [Base] and
// override the lifecycle methods they care about. [Panel] owns an ordered
// child list and delegates geometry to a [Layout]. [Switcher] holds keyed
// children and exposes exactly one as active.
//
// # Input bindings
//
// Interactive nodes hold an ordered list of (condition, action) pairs.
// During the input pass each node first offers input to its children, then
// evaluates its own bindings in registration order, stopping at the first
// condition that holds. Conditions are pure predicates over the component
// and the frame's [Input] snapshot; actions may mutate state and report
// whether they consumed the input, which short-circuits ancestors for the
// rest of the frame.
//
// [Ebitengine]: https://ebitengine.org
package aposgui
