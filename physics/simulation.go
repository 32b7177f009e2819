package physics

// Body is a moving rectangle.
type Body struct {
	Rect     Rect
	Velocity Vec2
}

// Step translates the body by its velocity. It is the only source of motion;
// deflections are applied afterwards by Resolve.
func (b *Body) Step() {
	b.Rect = b.Rect.Translate(b.Velocity)
}

// Obstacle is a rectangle the ball may strike during a frame, together with the
// distance it moved during that frame.
type Obstacle struct {
	Rect     Rect
	Velocity Vec2
}

// Contact identifies what the ball struck during a frame.
type Contact uint8

const (
	ContactNone Contact = iota
	ContactPaddle1P
	ContactPaddle2P
	ContactBlocker
)

// String ...
func (c Contact) String() string {
	switch c {
	case ContactPaddle1P:
		return "paddle_1P"
	case ContactPaddle2P:
		return "paddle_2P"
	case ContactBlocker:
		return "blocker"
	}
	return "none"
}

// Paddle returns true if the contact is with either paddle.
func (c Contact) Paddle() bool {
	return c == ContactPaddle1P || c == ContactPaddle2P
}

// Arena holds everything the ball can collide with during one frame.
// Paddle1P sits at the bottom of the field and is approached from above,
// Paddle2P sits at the top and is approached from below.
type Arena struct {
	Field    Rect
	Paddle1P Obstacle
	Paddle2P Obstacle

	Blocker        Obstacle
	BlockerEnabled bool

	// Slice enables transfer of paddle motion into the ball's horizontal speed.
	Slice bool
}

// Outcome describes how a frame's collision resolution ended.
type Outcome struct {
	// Contact is the first obstacle struck this frame, if any.
	Contact Contact
	// Tunneled is true if a paddle contact was registered by the plane crossing
	// fallback rather than by a rectangle overlap.
	Tunneled bool

	// Crossed1P and Crossed2P report that the ball's leading edge crossed the
	// plane of the respective paddle during this frame, whether or not the
	// paddle was underneath it.
	Crossed1P bool
	Crossed2P bool
}

// Resolve applies wall reflection and obstacle collisions to a ball that has
// just been stepped from last. Obstacles are checked in a fixed order: 1P
// paddle, 2P paddle, blocker; the first one overlapped is the only one
// resolved. If no rectangle overlap happened but the ball's leading edge
// crossed a paddle's plane while horizontally level with the paddle, the ball
// is treated as having struck that paddle at its plane.
//
// Both the authoritative rally update and the landing predictor call Resolve,
// so the two can never disagree on the physics of a frame.
func Resolve(ball *Body, last Rect, a Arena) Outcome {
	ball.Rect, ball.Velocity = ReflectInBox(ball.Rect, ball.Velocity, a.Field)

	var out Outcome
	switch {
	case ball.Rect.Intersects(a.Paddle1P.Rect):
		out.Contact = ContactPaddle1P
		a.bounce(ball, a.Paddle1P, faceTop, true)
	case ball.Rect.Intersects(a.Paddle2P.Rect):
		out.Contact = ContactPaddle2P
		a.bounce(ball, a.Paddle2P, faceBottom, true)
	case a.BlockerEnabled && ball.Rect.Intersects(a.Blocker.Rect):
		out.Contact = ContactBlocker
		a.bounce(ball, a.Blocker, faceNearest, false)
	}

	if out.Contact == ContactNone {
		out.Crossed1P = CrossedDown(last, ball.Rect, a.Paddle1P.Rect.Top())
		out.Crossed2P = CrossedUp(last, ball.Rect, a.Paddle2P.Rect.Bottom())

		vy := ball.Velocity.Y
		if out.Crossed1P && ball.Rect.OverlapsX(a.Paddle1P.Rect) {
			out.Contact, out.Tunneled = ContactPaddle1P, true
			ball.Rect.Y = a.Paddle1P.Rect.Top() - ball.Rect.H
			ball.Velocity.Y = -Abs(ball.Velocity.Y)
			a.slice(ball, a.Paddle1P, vy)
		} else if out.Crossed2P && ball.Rect.OverlapsX(a.Paddle2P.Rect) {
			out.Contact, out.Tunneled = ContactPaddle2P, true
			ball.Rect.Y = a.Paddle2P.Rect.Bottom()
			ball.Velocity.Y = Abs(ball.Velocity.Y)
			a.slice(ball, a.Paddle2P, vy)
		}
	}

	// bounce already keeps the ball inside the field.
	ball.Rect = ball.Rect.ClampInside(a.Field)
	return out
}

// face is the side of an obstacle the ball is put against when a wall leaves
// no room beside it.
type face int

const (
	faceNearest face = iota
	faceTop
	faceBottom
)

// bounce resolves a ball overlapping o. If the resolved position lies past a
// wall, pulling it back would overlap o again, so the ball is put against the
// face passed instead and keeps its horizontal velocity.
func (a Arena) bounce(ball *Body, o Obstacle, f face, slice bool) {
	vel := ball.Velocity
	ball.Rect, ball.Velocity = BounceOff(ball.Rect, ball.Velocity, o.Rect, o.Velocity)

	if r := ball.Rect.ClampInside(a.Field); r != ball.Rect && r.Intersects(o.Rect) {
		ball.Rect = r
		ball.Velocity.X = vel.X
		switch f {
		case faceTop:
			ball.Rect.Y, ball.Velocity.Y = o.Rect.Top()-r.H, -Abs(vel.Y)
		case faceBottom:
			ball.Rect.Y, ball.Velocity.Y = o.Rect.Bottom(), Abs(vel.Y)
		default:
			_, y := depenetration(r, o.Rect)
			ball.Rect.Y, ball.Velocity.Y = y.pos, y.dir*Abs(vel.Y)
		}
	}
	if slice {
		a.slice(ball, o, vel.Y)
	}
}

// slice applies the paddle's motion to the ball, but only to a return: the
// vertical velocity must have been turned around. Side hits are never sliced.
func (a Arena) slice(ball *Body, paddle Obstacle, vyBefore int) {
	if a.Slice && Sign(ball.Velocity.Y) != Sign(vyBefore) {
		ball.Velocity.X = Slice(ball.Velocity.X, paddle.Velocity.X)
	}
}
