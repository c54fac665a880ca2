// Package input turns raw button state into per-frame, edge-triggered actions.
package input

// opposite pairs directions that cannot be held together.
var opposite = map[Action]Action{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// Pad tracks which actions are held and which went down since the last Latch.
type Pad struct {
	held    Frame
	pressed Frame

	// Called once per press transition; used for debug logging.
	onPress func(Action)
}

// New creates a Pad. onPress may be nil.
func New(onPress func(Action)) *Pad {
	return &Pad{onPress: onPress}
}

// Press marks a as held. Holding a direction blocks its opposite, and a
// press only registers on the released-to-held transition.
func (p *Pad) Press(a Action) {
	if a >= actionCount {
		return
	}
	if o, ok := opposite[a]; ok && p.held.Has(o) {
		return
	}
	if p.held.Has(a) {
		return
	}

	p.held |= Of(a)
	p.pressed |= Of(a)

	if p.onPress != nil {
		p.onPress(a)
	}
}

// Release marks a as no longer held.
func (p *Pad) Release(a Action) {
	p.held &^= Of(a)
}

// Set presses or releases a.
func (p *Pad) Set(a Action, down bool) {
	if down {
		p.Press(a)
	} else {
		p.Release(a)
	}
}

// Held reports whether a is currently held.
func (p *Pad) Held(a Action) bool {
	return p.held.Has(a)
}

// Latch returns the actions pressed since the previous Latch and clears them.
// Call it exactly once per frame.
func (p *Pad) Latch() Frame {
	f := p.pressed
	p.pressed = 0
	return f
}
