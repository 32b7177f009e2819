package game

const (
	// ServeTimeoutFrames is the frame of a rally from which the server no longer
	// waits for a serve action and the ball is served in a random direction.
	ServeTimeoutFrames = 150
	// SpeedUpFrames is the number of frames after the serve between two ball
	// speed-ups.
	SpeedUpFrames = 100
	// DrawBallSpeed is the ball speed above which a rally is declared a draw.
	DrawBallSpeed = 40

	DefaultGameOverScore = 3
)
