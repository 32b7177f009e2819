package match

import (
	"context"
	"io"

	"github.com/jerry930829/ML-pingpong/agent"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/predict"
	"github.com/jerry930829/ML-pingpong/recording"
	"github.com/sirupsen/logrus"
)

// Runner drives one match between two agents until the game signals QUIT.
type Runner struct {
	game      *game.Game
	player1P  agent.Agent
	player2P  agent.Agent
	predictor *predict.Predictor
	log       *logrus.Logger

	// OnFrame, if set, is called after every update. An error stops the match.
	OnFrame func(f recording.Frame) error

	rallyLengths []int
}

// NewRunner creates a runner. predictor may be nil if neither agent uses one;
// otherwise it is reset together with the game between rallies.
func NewRunner(g *game.Game, player1P, player2P agent.Agent, predictor *predict.Predictor, log *logrus.Logger) *Runner {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Runner{game: g, player1P: player1P, player2P: player2P, predictor: predictor, log: log}
}

// Play runs the match to the end and returns its result. The context is
// checked between rallies.
func (r *Runner) Play(ctx context.Context) (game.MatchResult, error) {
	for {
		scene := r.game.Scene()
		a1, a2 := r.player1P.Act(scene), r.player2P.Act(scene)
		res := r.game.Update(a1, a2)

		if r.OnFrame != nil {
			if err := r.OnFrame(recording.Frame{Action1P: a1, Action2P: a2, Result: res, Scene: r.game.Scene()}); err != nil {
				return r.game.MatchResult(), err
			}
		}

		switch res {
		case game.ResultQuit:
			r.rallyLengths = append(r.rallyLengths, r.game.Frame())
			return r.game.MatchResult(), nil
		case game.ResultReset:
			r.rallyLengths = append(r.rallyLengths, r.game.Frame())
			r.log.WithFields(logrus.Fields{
				"rally":  len(r.rallyLengths),
				"status": r.game.LastRally(),
				"frames": r.game.Frame(),
			}).Debug("starting next rally")
			r.reset()
			if err := ctx.Err(); err != nil {
				return r.game.MatchResult(), err
			}
		}
	}
}

func (r *Runner) reset() {
	r.game.Reset()
	r.player1P.Reset()
	r.player2P.Reset()
	if r.predictor != nil {
		r.predictor.Reset()
	}
}

// RallyLengths returns the length in frames of every rally played so far.
func (r *Runner) RallyLengths() []int {
	return r.rallyLengths
}
