package physics

const (
	FieldWidth  = 200
	FieldHeight = 500

	BallSize = 10

	PaddleWidth  = 40
	PaddleHeight = 30

	BlockerWidth  = 30
	BlockerHeight = 20

	// SliceBoost is added to the ball's horizontal speed when it is struck by a
	// paddle moving in the same direction.
	SliceBoost = 3
)

// Field is the bounding box of the play area. Presentation offsets applied by
// renderers are not part of it.
var Field = Rect{X: 0, Y: 0, W: FieldWidth, H: FieldHeight}
