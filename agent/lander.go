package agent

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/physics"
	"github.com/jerry930829/ML-pingpong/predict"
)

const (
	landerDeadZone = 3
	// landerFlipFrames is how long a move direction is held before the
	// opposite direction is accepted.
	landerFlipFrames = 4
	// landerOverride is how far left of the paddle a landing must be before
	// the safety override forces a move left.
	landerOverride = 8
)

// Lander moves to where the predictor says the ball will reach its paddle.
// While the ball is heading for the opponent it returns to the middle.
type Lander struct {
	Side  entity.Side
	Serve entity.Action

	oracle  Oracle
	history *History[game.Scene]

	lastMove      entity.Action
	lastMoveFrame int

	// lastLanding is the last landing the agent acted on.
	lastLanding predict.Landing
}

// NewLander ...
func NewLander(side entity.Side, oracle Oracle) *Lander {
	l := &Lander{Side: side, Serve: DefaultServe(side), oracle: oracle, history: NewHistory[game.Scene](2)}
	l.Reset()
	return l
}

// Act ...
func (l *Lander) Act(s game.Scene) entity.Action {
	l.history.Append(s)
	if shouldServe(s, l.Side) {
		return l.Serve
	}
	if !s.BallServed {
		return entity.ActionNone
	}

	q := predict.QueryFromScene(s)
	q.Paddle1PVelocity, q.Paddle2PVelocity = l.paddleVelocities()
	landing := l.oracle.Predict(q)
	l.lastLanding = landing

	self := paddleCentre(s, l.Side)
	target := float64(physics.FieldWidth) / 2
	if landing.Side == l.Side {
		target = landing.X
	}

	action := steer(self, target, landerDeadZone)
	if action.Move() && l.lastMove.Move() && action != l.lastMove && s.Frame-l.lastMoveFrame < landerFlipFrames {
		action = l.lastMove
	}
	if action.Move() {
		l.lastMove, l.lastMoveFrame = action, s.Frame
	}

	if l.incoming(s) && landing.X < self-landerOverride {
		action = entity.ActionMoveLeft
	}
	return action
}

// incoming returns true if the ball is moving towards the agent's paddle.
func (l *Lander) incoming(s game.Scene) bool {
	if l.Side == entity.Side2P {
		return s.BallVelocity.Y < 0
	}
	return s.BallVelocity.Y > 0
}

// paddleVelocities estimates both paddles' velocities from the last two
// scenes seen.
func (l *Lander) paddleVelocities() (mgl64.Vec2, mgl64.Vec2) {
	if l.history.Len() < 2 {
		return mgl64.Vec2{}, mgl64.Vec2{}
	}
	prev, _ := l.history.Get(0)
	cur, _ := l.history.Get(1)
	d1 := cur.Paddle1P.Sub(prev.Paddle1P)
	d2 := cur.Paddle2P.Sub(prev.Paddle2P)
	return mgl64.Vec2{float64(d1.X), float64(d1.Y)}, mgl64.Vec2{float64(d2.X), float64(d2.Y)}
}

// Reset ...
func (l *Lander) Reset() {
	l.history.Clear()
	l.lastMove = entity.ActionNone
	l.lastMoveFrame = -landerFlipFrames
	l.lastLanding = predict.Landing{}
}

// LastLanding returns the landing used for the last decision.
func (l *Lander) LastLanding() predict.Landing {
	return l.lastLanding
}
