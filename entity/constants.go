package entity

import "github.com/jerry930829/ML-pingpong/physics"

const (
	DefaultInitVel = 7

	PaddleSpeed  = 5
	BlockerSpeed = 5

	BlockerY = 240
	// BlockerParkedY places a disabled blocker well below the field so it can
	// never overlap the ball.
	BlockerParkedY = 1000
)

var (
	Paddle1PStart = physics.Vec2{X: 80, Y: 420}
	Paddle2PStart = physics.Vec2{X: 80, Y: 70}
)
