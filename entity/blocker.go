package entity

import "github.com/jerry930829/ML-pingpong/physics"

// Blocker is an obstacle sliding back and forth across the middle of the
// field. It takes no input; its trajectory depends only on its starting state.
type Blocker struct {
	enabled bool
	field   physics.Rect

	start    physics.Vec2
	startVel physics.Vec2

	rect     physics.Rect
	velocity physics.Vec2
}

// NewBlocker creates a blocker starting at x on the blocker row and moving
// horizontally at vx. A disabled blocker is parked outside the field and never
// moves.
func NewBlocker(enabled bool, x, vx int, field physics.Rect) *Blocker {
	b := &Blocker{enabled: enabled, field: field}
	if enabled {
		b.start = physics.Vec2{X: x, Y: BlockerY}
		b.startVel = physics.Vec2{X: vx}
	} else {
		b.start = physics.Vec2{X: 0, Y: BlockerParkedY}
	}
	b.Reset()
	return b
}

// Move advances the blocker by one frame.
func (b *Blocker) Move() {
	if !b.enabled {
		return
	}
	b.rect, b.velocity = AdvanceBlocker(b.rect, b.velocity, b.field)
}

// Reset returns the blocker to its starting position and direction.
func (b *Blocker) Reset() {
	b.rect = physics.NewRect(b.start, physics.BlockerWidth, physics.BlockerHeight)
	b.velocity = b.startVel
}

func (b *Blocker) Enabled() bool          { return b.enabled }
func (b *Blocker) Rect() physics.Rect     { return b.rect }
func (b *Blocker) Pos() physics.Vec2      { return b.rect.Pos() }
func (b *Blocker) Velocity() physics.Vec2 { return b.velocity }

// Obstacle returns the blocker as seen by the collision resolver.
func (b *Blocker) Obstacle() physics.Obstacle {
	return physics.Obstacle{Rect: b.rect, Velocity: b.velocity}
}

// AdvanceBlocker moves a blocker rectangle by vel and turns it around once it
// reaches a side of the field. It is shared with the landing predictor so both
// follow the same trajectory.
func AdvanceBlocker(r physics.Rect, vel physics.Vec2, field physics.Rect) (physics.Rect, physics.Vec2) {
	r = r.Translate(vel)
	if r.Left() <= field.Left() {
		r.X = field.Left()
		vel.X = physics.Abs(vel.X)
	} else if r.Right() >= field.Right() {
		r.X = field.Right() - r.W
		vel.X = -physics.Abs(vel.X)
	}
	return r, vel
}
