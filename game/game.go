package game

import (
	"math/rand"
	"strings"

	"github.com/jerry930829/ML-pingpong/assert"
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/oerror"
	"github.com/jerry930829/ML-pingpong/physics"
	"github.com/sirupsen/logrus"
)

// Game is the authoritative state of one match: a sequence of rallies played
// until either side reaches the game over score. It is not safe for concurrent
// use; every match owns its own Game.
type Game struct {
	opts Options
	log  *logrus.Logger
	rng  *rand.Rand

	ball     *entity.Ball
	paddle1P *entity.Paddle
	paddle2P *entity.Paddle
	blocker  *entity.Blocker

	frame       int
	totalFrames int
	status      Status
	lastRally   Status
	lastContact physics.Contact
	score       ScoreBoard

	// awaitingReset is set when a rally ends and cleared by Reset.
	awaitingReset bool
}

// New creates a match waiting for 1P to serve.
func New(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	g := &Game{
		opts:  opts,
		log:   opts.Log,
		rng:   NewDeterministicRNG(opts.Seed, "match"),
		score: NewScoreBoard(opts.GameOverScore),
	}
	g.ball = entity.NewBall(opts.InitVel, opts.Difficulty.SliceEnabled())
	g.paddle1P = entity.NewPaddle(entity.Side1P, physics.Field)
	g.paddle2P = entity.NewPaddle(entity.Side2P, physics.Field)

	// The blocker starts on a 20 pixel grid so that it never starts overlapping
	// a wall.
	blockerX := g.rng.Intn((physics.FieldWidth-physics.BlockerWidth)/20+1) * 20
	blockerVX := entity.BlockerSpeed
	if g.rng.Intn(2) == 0 {
		blockerVX = -blockerVX
	}
	g.blocker = entity.NewBlocker(opts.Difficulty.BlockerEnabled(), blockerX, blockerVX, physics.Field)

	g.ball.StickToPaddle(g.servingPaddle())
	g.log.WithFields(logrus.Fields{
		"difficulty":      opts.Difficulty,
		"game_over_score": opts.GameOverScore,
		"init_vel":        g.ball.InitVel(),
		"seed":            opts.Seed,
	}).Debug("match created")
	return g, nil
}

// Update advances the match by one frame using an action from each side and
// returns what the caller should do next. Once a rally has ended, Update has no
// effect until Reset is called; once the match is over it has no effect at all.
func (g *Game) Update(action1P, action2P entity.Action) Result {
	switch {
	case g.status == StatusOver:
		return ResultQuit
	case g.awaitingReset:
		return ResultReset
	}

	g.frame++
	g.totalFrames++
	g.lastContact = physics.ContactNone

	g.paddle1P.Move(action1P)
	g.paddle2P.Move(action2P)
	g.blocker.Move()

	if !g.ball.Served() {
		g.waitForServe(action1P, action2P)
	} else {
		g.moveBall()
	}

	g.status = g.rallyStatus()
	if !g.status.RallyEnded() {
		return ResultContinue
	}
	return g.finishRally()
}

// UpdateCommands is Update for actions received as command tokens. Unknown
// tokens are treated as no action.
func (g *Game) UpdateCommands(command1P, command2P string) Result {
	return g.Update(entity.ParseAction(command1P), entity.ParseAction(command2P))
}

// Reset starts the next rally. The serving side alternates between rallies
// and the score is kept. Reset has no effect once the match is over.
func (g *Game) Reset() {
	if g.status == StatusOver {
		return
	}
	g.frame = 0
	g.status = StatusAlive
	g.awaitingReset = false
	g.lastContact = physics.ContactNone

	g.ball.Reset()
	g.paddle1P.Reset()
	g.paddle2P.Reset()
	g.blocker.Reset()
	g.ball.StickToPaddle(g.servingPaddle())
}

// waitForServe keeps the ball on the serving paddle until that side serves.
// A side that has not served by ServeTimeoutFrames serves in a random
// direction.
func (g *Game) waitForServe(action1P, action2P entity.Action) {
	g.ball.StickToPaddle(g.servingPaddle())

	action := action1P
	if g.ball.ServeFrom() == entity.Side2P {
		action = action2P
	}
	if !action.Serve() && g.frame >= ServeTimeoutFrames {
		action = entity.ActionServeToLeft
		if g.rng.Intn(2) == 1 {
			action = entity.ActionServeToRight
		}
		g.log.WithField("side", g.ball.ServeFrom()).Debug("serve timed out, serving randomly")
	}
	g.ball.Serve(action, g.frame)
}

func (g *Game) moveBall() {
	if (g.frame-g.ball.ServedFrame())%SpeedUpFrames == 0 {
		g.ball.SpeedUp()
	}
	last := g.ball.Rect
	g.ball.Step()
	out := physics.Resolve(&g.ball.Body, last, g.Arena())
	g.lastContact = out.Contact

	assert.IsTrue(g.ball.Rect.Within(physics.Field), "ball %v escaped the field", g.ball.Rect)
}

func (g *Game) rallyStatus() Status {
	ball := g.ball.Rect
	switch {
	case ball.Top() > g.paddle1P.Rect().Bottom():
		return Status2PWin
	case ball.Bottom() < g.paddle2P.Rect().Top():
		return Status1PWin
	case g.opts.Draw.Triggered(g.ball.Velocity.X, g.ball.Velocity.Y):
		return StatusDraw
	}
	return StatusAlive
}

func (g *Game) finishRally() Result {
	g.lastRally = g.status
	g.score.Record(g.status)
	g.log.WithFields(logrus.Fields{
		"status":   g.status,
		"frame":    g.frame,
		"score_1P": g.score.Score(entity.Side1P),
		"score_2P": g.score.Score(entity.Side2P),
	}).Debug("rally finished")

	if g.score.Reached() {
		g.status = StatusOver
		res := g.MatchResult()
		g.log.WithFields(logrus.Fields{
			"score_1P": res.Players[entity.Side1P].Score,
			"score_2P": res.Players[entity.Side2P].Score,
			"frames":   res.FrameUsed,
		}).Info("match over")
		return ResultQuit
	}
	g.awaitingReset = true
	return ResultReset
}

func (g *Game) servingPaddle() *entity.Paddle {
	if g.ball.ServeFrom() == entity.Side2P {
		return g.paddle2P
	}
	return g.paddle1P
}

// Arena returns the collision world of the current frame.
func (g *Game) Arena() physics.Arena {
	return physics.Arena{
		Field:          physics.Field,
		Paddle1P:       g.paddle1P.Obstacle(),
		Paddle2P:       g.paddle2P.Obstacle(),
		Blocker:        g.blocker.Obstacle(),
		BlockerEnabled: g.blocker.Enabled(),
		Slice:          g.ball.SliceEnabled(),
	}
}

// Scene returns a snapshot of the current frame.
func (g *Game) Scene() Scene {
	s := Scene{
		Frame:            g.frame,
		Status:           g.status,
		Ball:             g.ball.Rect.Pos(),
		BallVelocity:     g.ball.Velocity,
		BallServed:       g.ball.Served(),
		ServingSide:      g.ball.ServeFrom(),
		Paddle1P:         g.paddle1P.Pos(),
		Paddle2P:         g.paddle2P.Pos(),
		Paddle1PVelocity: g.paddle1P.Velocity(),
		Paddle2PVelocity: g.paddle2P.Velocity(),
		BlockerEnabled:   g.blocker.Enabled(),
		Slice:            g.ball.SliceEnabled(),
	}
	if g.blocker.Enabled() {
		s.Blocker = g.blocker.Pos()
		s.BlockerVelocity = g.blocker.Velocity()
	}
	return s
}

// MatchResult returns the result of the match so far.
func (g *Game) MatchResult() MatchResult {
	return newMatchResult(g.status == StatusOver, g.totalFrames, &g.score, g.ball.Velocity)
}

// Score returns the score of the side passed.
func (g *Game) Score(side entity.Side) int {
	return g.score.Score(side)
}

// Command returns the command accepted for a side, validating it first. It is
// used by callers that receive commands from an untrusted source and want to
// report malformed input rather than silently ignoring it.
func Command(token string) (entity.Action, error) {
	a := entity.ParseAction(token)
	if t := strings.ToUpper(strings.TrimSpace(token)); a == entity.ActionNone && t != "" && t != entity.ActionNone.String() {
		return a, oerror.New("unknown command %q", token)
	}
	return a, nil
}

func (g *Game) Status() Status               { return g.status }
func (g *Game) LastRally() Status            { return g.lastRally }
func (g *Game) LastContact() physics.Contact { return g.lastContact }
func (g *Game) Frame() int                   { return g.frame }
func (g *Game) Over() bool                   { return g.status == StatusOver }
func (g *Game) Options() Options             { return g.opts }
func (g *Game) AwaitingReset() bool          { return g.awaitingReset }
func (g *Game) ServingSide() entity.Side     { return g.ball.ServeFrom() }
func (g *Game) Ball() physics.Body           { return g.ball.Body }
func (g *Game) Paddle1P() physics.Rect       { return g.paddle1P.Rect() }
func (g *Game) Paddle2P() physics.Rect       { return g.paddle2P.Rect() }
func (g *Game) BlockerRect() physics.Rect    { return g.blocker.Rect() }
