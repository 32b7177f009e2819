// Package agent contains scripted players. They read the scene snapshot of a
// frame and return the action for their side; none of them touch game state.
package agent

import (
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/physics"
	"github.com/jerry930829/ML-pingpong/predict"
)

// Agent decides the action of one side each frame.
type Agent interface {
	Act(s game.Scene) entity.Action
	// Reset is called at the start of every rally.
	Reset()
}

// Oracle answers landing queries. *predict.Predictor and *predict.Locked
// implement it.
type Oracle interface {
	Predict(q predict.Query) predict.Landing
}

// DefaultServe returns the serve direction a side prefers: 1P serves to the
// right and 2P to the left.
func DefaultServe(side entity.Side) entity.Action {
	if side == entity.Side2P {
		return entity.ActionServeToLeft
	}
	return entity.ActionServeToRight
}

// shouldServe returns true if the side passed is holding the ball.
func shouldServe(s game.Scene, side entity.Side) bool {
	return !s.BallServed && s.ServingSide == side
}

// paddleCentre returns the horizontal centre of the side's paddle.
func paddleCentre(s game.Scene, side entity.Side) float64 {
	return float64(s.Paddle(side).X) + physics.PaddleWidth/2
}

// ballCentre returns the horizontal centre of the ball.
func ballCentre(s game.Scene) float64 {
	return float64(s.Ball.X) + physics.BallSize/2
}

// steer returns the move that brings a paddle centred at from towards target,
// or no action if it is within deadZone of it.
func steer(from, target, deadZone float64) entity.Action {
	switch {
	case target < from-deadZone:
		return entity.ActionMoveLeft
	case target > from+deadZone:
		return entity.ActionMoveRight
	}
	return entity.ActionNone
}
