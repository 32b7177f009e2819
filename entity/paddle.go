package entity

import "github.com/jerry930829/ML-pingpong/physics"

// Paddle is a player-controlled platform. It only moves horizontally and is
// always kept inside its bounds.
type Paddle struct {
	side   Side
	start  physics.Vec2
	bounds physics.Rect

	rect physics.Rect
	// velocity is the displacement applied by the last call to Move.
	velocity physics.Vec2
}

// NewPaddle creates the paddle of the side passed at its starting position.
func NewPaddle(side Side, bounds physics.Rect) *Paddle {
	start := Paddle1PStart
	if side == Side2P {
		start = Paddle2PStart
	}
	return NewPaddleAt(side, start, bounds)
}

// NewPaddleAt creates a paddle at an arbitrary starting position.
func NewPaddleAt(side Side, start physics.Vec2, bounds physics.Rect) *Paddle {
	p := &Paddle{side: side, start: start, bounds: bounds}
	p.Reset()
	return p
}

// Move translates the paddle by PaddleSpeed for MOVE_LEFT and MOVE_RIGHT. Any
// other action leaves the paddle where it is; serve actions are handled by the
// rally, not by the paddle.
func (p *Paddle) Move(a Action) {
	dx := 0
	switch a {
	case ActionMoveLeft:
		dx = -PaddleSpeed
	case ActionMoveRight:
		dx = PaddleSpeed
	}
	oldX := p.rect.X
	p.rect.X = physics.Clamp(p.rect.X+dx, p.bounds.Left(), p.bounds.Right()-p.rect.W)
	p.velocity = physics.Vec2{X: p.rect.X - oldX}
}

// Reset moves the paddle back to its starting position.
func (p *Paddle) Reset() {
	p.rect = physics.NewRect(p.start, physics.PaddleWidth, physics.PaddleHeight)
	p.velocity = physics.Vec2{}
}

func (p *Paddle) Side() Side             { return p.side }
func (p *Paddle) Rect() physics.Rect     { return p.rect }
func (p *Paddle) Pos() physics.Vec2      { return p.rect.Pos() }
func (p *Paddle) Velocity() physics.Vec2 { return p.velocity }

// Obstacle returns the paddle as seen by the collision resolver.
func (p *Paddle) Obstacle() physics.Obstacle {
	return physics.Obstacle{Rect: p.rect, Velocity: p.velocity}
}
