package game

import (
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/physics"
)

// Scene is the read-only snapshot of a match handed to both players each
// frame. Positions are top-left corners.
type Scene struct {
	Frame  int    `json:"frame"`
	Status Status `json:"status"`

	Ball         physics.Vec2 `json:"ball"`
	BallVelocity physics.Vec2 `json:"ball_speed"`
	BallServed   bool         `json:"ball_served"`
	ServingSide  entity.Side  `json:"serving_side"`

	Paddle1P         physics.Vec2 `json:"platform_1P"`
	Paddle2P         physics.Vec2 `json:"platform_2P"`
	Paddle1PVelocity physics.Vec2 `json:"platform_1P_speed"`
	Paddle2PVelocity physics.Vec2 `json:"platform_2P_speed"`

	// Blocker is (0, 0) when the blocker is disabled.
	Blocker         physics.Vec2 `json:"blocker"`
	BlockerVelocity physics.Vec2 `json:"blocker_speed"`
	BlockerEnabled  bool         `json:"blocker_enabled"`
	Slice           bool         `json:"slice"`
}

// Paddle returns the position of the paddle of the side passed.
func (s Scene) Paddle(side entity.Side) physics.Vec2 {
	if side == entity.Side2P {
		return s.Paddle2P
	}
	return s.Paddle1P
}

// PaddleVelocity returns the last displacement of the paddle of the side passed.
func (s Scene) PaddleVelocity(side entity.Side) physics.Vec2 {
	if side == entity.Side2P {
		return s.Paddle2PVelocity
	}
	return s.Paddle1PVelocity
}

// BallRect returns the ball's rectangle.
func (s Scene) BallRect() physics.Rect {
	return physics.NewRect(s.Ball, physics.BallSize, physics.BallSize)
}
