package entity

import "github.com/jerry930829/ML-pingpong/physics"

// Ball is the rally ball. Until it is served it is glued to the serving
// paddle; afterwards it moves by its velocity each frame.
type Ball struct {
	physics.Body

	initVel      int
	sliceEnabled bool

	served      bool
	servedFrame int
	serveFrom   Side
}

// NewBall creates a ball waiting to be served by 1P.
func NewBall(initVel int, sliceEnabled bool) *Ball {
	if initVel == 0 {
		initVel = DefaultInitVel
	}
	b := &Ball{
		initVel:      physics.Abs(initVel),
		sliceEnabled: sliceEnabled,
		serveFrom:    Side1P,
	}
	b.Rect = physics.Rect{W: physics.BallSize, H: physics.BallSize}
	b.restoreVelocity()
	return b
}

// StickToPaddle places the ball flush against the field-facing edge of the
// paddle passed, centred on it horizontally.
func (b *Ball) StickToPaddle(p *Paddle) {
	pr := p.Rect()
	b.Rect.X = pr.CenterX() - b.Rect.W/2
	if p.Side() == Side1P {
		b.Rect.Y = pr.Top() - b.Rect.H
	} else {
		b.Rect.Y = pr.Bottom()
	}
}

// Serve launches the ball. The horizontal component follows the serve
// direction and the vertical component points away from the serving paddle.
// Actions other than the two serve actions are ignored.
func (b *Ball) Serve(a Action, frame int) {
	if !a.Serve() || b.served {
		return
	}
	vx := b.initVel
	if a == ActionServeToLeft {
		vx = -vx
	}
	vy := -b.initVel
	if b.serveFrom == Side2P {
		vy = b.initVel
	}
	b.Velocity = physics.Vec2{X: vx, Y: vy}
	b.served = true
	b.servedFrame = frame
}

// SpeedUp increases the magnitude of each non-zero velocity component by one.
func (b *Ball) SpeedUp() {
	b.Velocity.X += physics.Sign(b.Velocity.X)
	b.Velocity.Y += physics.Sign(b.Velocity.Y)
}

// Reset prepares the ball for the next rally. The serving side alternates.
func (b *Ball) Reset() {
	b.served = false
	b.servedFrame = 0
	b.serveFrom = b.serveFrom.Opponent()
	b.restoreVelocity()
}

// restoreVelocity sets the pre-serve velocity, which is only reported to
// observers: the ball does not move before it is served.
func (b *Ball) restoreVelocity() {
	vy := -b.initVel
	if b.serveFrom == Side2P {
		vy = b.initVel
	}
	b.Velocity = physics.Vec2{X: b.initVel, Y: vy}
}

func (b *Ball) Served() bool       { return b.served }
func (b *Ball) ServedFrame() int   { return b.servedFrame }
func (b *Ball) ServeFrom() Side    { return b.serveFrom }
func (b *Ball) SliceEnabled() bool { return b.sliceEnabled }
func (b *Ball) InitVel() int       { return b.initVel }
