// Package ui holds the expand/collapse control panel. It tracks hover and
// click state only; drawing is left to the game package.
package ui

// Action is what a click on the panel asked for.
type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionShuffle
	ActionOpen
)

// Button is a rectangular clickable area.
type Button struct {
	X, Y, W, H int
	Label      string

	Hovered bool
	Pressed bool
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// Update refreshes hover state and reports a click: a press and a release
// both inside the button.
func (b *Button) Update(mx, my int, justPressed, justReleased bool) bool {
	b.Hovered = b.Contains(mx, my)
	if b.Hovered && justPressed {
		b.Pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.Pressed && b.Hovered
		b.Pressed = false
	}
	return clicked
}

const (
	padding        = 8
	bodyWidth      = 180
	rowHeight      = 28
	labelCollapsed = "Expand"
	labelExpanded  = "Collapse"
)

// Panel is a toggle button with a body that is only shown when expanded.
type Panel struct {
	Expanded bool

	Toggle  Button
	Shuffle Button
	Open    Button
}

// NewPanel lays out a panel whose toggle button sits at (x, y).
func NewPanel(x, y, w, h int, expanded bool) *Panel {
	p := &Panel{
		Expanded: expanded,
		Toggle:   Button{X: x, Y: y, W: w, H: h},
	}
	bodyY := y + h + padding
	p.Shuffle = Button{X: x + padding, Y: bodyY + padding, W: bodyWidth - 2*padding, H: rowHeight, Label: "Shuffle media"}
	p.Open = Button{X: x + padding, Y: bodyY + 2*padding + rowHeight, W: bodyWidth - 2*padding, H: rowHeight, Label: "Open file..."}
	p.syncLabel()
	return p
}

// Flip switches between expanded and collapsed.
func (p *Panel) Flip() {
	p.Expanded = !p.Expanded
	p.syncLabel()
}

func (p *Panel) syncLabel() {
	if p.Expanded {
		p.Toggle.Label = labelExpanded
	} else {
		p.Toggle.Label = labelCollapsed
	}
}

// Body returns the rectangle of the expanded body. It is empty when the
// panel is collapsed.
func (p *Panel) Body() (x, y, w, h int) {
	if !p.Expanded {
		return p.Toggle.X, p.Toggle.Y + p.Toggle.H, 0, 0
	}
	return p.Toggle.X, p.Toggle.Y + p.Toggle.H + padding, bodyWidth, 3*padding + 2*rowHeight
}

// Update feeds pointer state to the panel and returns the resulting action.
// Body buttons only react while the panel is expanded.
func (p *Panel) Update(mx, my int, justPressed, justReleased bool) Action {
	if p.Toggle.Update(mx, my, justPressed, justReleased) {
		p.Flip()
		return ActionToggle
	}
	if !p.Expanded {
		p.Shuffle.Hovered, p.Shuffle.Pressed = false, false
		p.Open.Hovered, p.Open.Pressed = false, false
		return ActionNone
	}
	if p.Shuffle.Update(mx, my, justPressed, justReleased) {
		return ActionShuffle
	}
	if p.Open.Update(mx, my, justPressed, justReleased) {
		return ActionOpen
	}
	return ActionNone
}
