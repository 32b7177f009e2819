package agent

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/physics"
)

const (
	anticipateFrames   = 8
	anticipateDeadZone = 6
	anticipateJitter   = 4
)

// Anticipate aims where the ball will be a few frames from now if it kept
// going in a straight line. With a random source it adds jitter to the aim
// point.
type Anticipate struct {
	Side  entity.Side
	Serve entity.Action

	rng *rand.Rand
}

// NewAnticipate creates an Anticipate agent. rng may be nil for no jitter.
func NewAnticipate(side entity.Side, rng *rand.Rand) *Anticipate {
	return &Anticipate{Side: side, Serve: DefaultServe(side), rng: rng}
}

// Act ...
func (a *Anticipate) Act(s game.Scene) entity.Action {
	if shouldServe(s, a.Side) {
		return a.Serve
	}
	ball := mgl64.Vec2{ballCentre(s), float64(s.Ball.Y)}
	vel := mgl64.Vec2{float64(s.BallVelocity.X), float64(s.BallVelocity.Y)}
	target := ball.Add(vel.Mul(anticipateFrames)).X()
	if a.rng != nil {
		target += (a.rng.Float64()*2 - 1) * anticipateJitter
	}
	target = mgl64.Clamp(target, physics.PaddleWidth/2, physics.FieldWidth-physics.PaddleWidth/2)
	return steer(paddleCentre(s, a.Side), target, anticipateDeadZone)
}

// Reset ...
func (a *Anticipate) Reset() {}
