package agent

import (
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
)

const followDeadZone = 5

// FollowBall keeps its paddle under the ball.
type FollowBall struct {
	Side  entity.Side
	Serve entity.Action
}

// NewFollowBall ...
func NewFollowBall(side entity.Side) *FollowBall {
	return &FollowBall{Side: side, Serve: DefaultServe(side)}
}

// Act ...
func (a *FollowBall) Act(s game.Scene) entity.Action {
	if shouldServe(s, a.Side) {
		return a.Serve
	}
	return steer(paddleCentre(s, a.Side), ballCentre(s), followDeadZone)
}

// Reset ...
func (a *FollowBall) Reset() {}
