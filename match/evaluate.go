package match

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/jerry930829/ML-pingpong/agent"
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/oerror"
	"github.com/jerry930829/ML-pingpong/predict"
	"github.com/jerry930829/ML-pingpong/recording"
	"github.com/jerry930829/ML-pingpong/settings"
	"github.com/jerry930829/ML-pingpong/worker"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Report is the outcome of one evaluated match.
type Report struct {
	Index        int              `json:"index"`
	Seed         string           `json:"seed"`
	Result       game.MatchResult `json:"result"`
	RallyLengths []int            `json:"rally_lengths"`
	Predictor    predict.Stats    `json:"predictor"`
	Err          error            `json:"-"`
}

// Summary aggregates the reports of an evaluation.
type Summary struct {
	Matches   int `json:"matches"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`

	Wins1P int `json:"wins_1P"`
	Wins2P int `json:"wins_2P"`
	Level  int `json:"level"`

	Score1P int `json:"score_1P"`
	Score2P int `json:"score_2P"`
	Draws   int `json:"draws"`

	WinRate1P float32 `json:"win_rate_1P"`
	WinRate2P float32 `json:"win_rate_2P"`

	RallyFrames game.Distribution `json:"rally_frames"`
	Predictor   predict.Stats     `json:"predictor"`

	Reports []Report `json:"reports"`
}

var errNotPlayed = oerror.New("match was not played")

// Evaluate plays s.Eval.Matches matches on a pool of s.Eval.Workers workers and
// summarises them. Every match owns its game, agents and predictor; match i is
// seeded with "<seed>/<i>". Cancelling ctx stops scheduling further matches;
// the summary then covers the matches that finished and ctx's error is
// returned alongside it.
func Evaluate(ctx context.Context, s settings.Settings, log *logrus.Logger) (Summary, error) {
	if err := s.Validate(); err != nil {
		return Summary{}, err
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	if s.Eval.RecordDir != "" {
		if err := os.MkdirAll(s.Eval.RecordDir, 0755); err != nil {
			return Summary{}, fmt.Errorf("unable to create record directory: %w", err)
		}
	}

	reports := make([]Report, s.Eval.Matches)
	var finished atomic.Int64

	pool := worker.NewPool(s.Eval.Workers, log)
	var scheduleErr error
	for i := range reports {
		reports[i] = Report{Index: i, Seed: matchSeed(s.Game.Seed, i), Err: errNotPlayed}
		i := i
		err := pool.Submit(ctx, func() {
			// A panic leaves the report marked as failed.
			reports[i].Err = oerror.New("match panicked")
			reports[i] = playOne(ctx, s, i, log)
			n := finished.Inc()
			log.WithFields(logrus.Fields{
				"match":    i,
				"finished": n,
				"total":    len(reports),
				"score":    fmt.Sprintf("%d:%d", reports[i].Result.Players[entity.Side1P].Score, reports[i].Result.Players[entity.Side2P].Score),
			}).Info("match finished")
		})
		if err != nil {
			scheduleErr = err
			break
		}
	}
	pool.Close()

	sum := summarise(reports)
	if scheduleErr != nil {
		return sum, scheduleErr
	}
	return sum, ctx.Err()
}

func matchSeed(root string, i int) string {
	return fmt.Sprintf("%s/%d", root, i)
}

// playOne sets up and plays match i.
func playOne(ctx context.Context, s settings.Settings, i int, log *logrus.Logger) Report {
	rep := Report{Index: i, Seed: matchSeed(s.Game.Seed, i)}

	opts, err := s.GameOptions(log)
	if err != nil {
		rep.Err = err
		return rep
	}
	opts.Seed = rep.Seed
	g, err := game.New(opts)
	if err != nil {
		rep.Err = err
		return rep
	}

	pred := predict.New(s.Predictor.MaxSteps, s.Predictor.CacheSize)
	p1 := NewAgent(s.Eval.Player1P, entity.Side1P, pred, game.NewDeterministicRNG(rep.Seed, "1P"), s.Eval.RandomActionProb)
	p2 := NewAgent(s.Eval.Player2P, entity.Side2P, pred, game.NewDeterministicRNG(rep.Seed, "2P"), s.Eval.RandomActionProb)

	runner := NewRunner(g, p1, p2, pred, log)
	if s.Eval.RecordDir != "" {
		rec, err := recording.Create(filepath.Join(s.Eval.RecordDir, fmt.Sprintf("match_%03d.jsonl", i)), recording.Header{
			Match:         i,
			Seed:          rep.Seed,
			Difficulty:    opts.Difficulty,
			GameOverScore: g.Options().GameOverScore,
			InitVel:       opts.InitVel,
			Player1P:      s.Eval.Player1P,
			Player2P:      s.Eval.Player2P,
		})
		if err != nil {
			rep.Err = err
			return rep
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.WithError(err).Error("unable to close recording")
			}
		}()
		runner.OnFrame = rec.Record
	}

	rep.Result, rep.Err = runner.Play(ctx)
	rep.RallyLengths = runner.RallyLengths()
	rep.Predictor = pred.Stats()
	return rep
}

// NewAgent creates the agent registered under name for a side. Agents draw
// their randomness from rng; a positive randomProb wraps the agent in
// agent.Randomized.
func NewAgent(name string, side entity.Side, oracle agent.Oracle, rng *rand.Rand, randomProb float64) agent.Agent {
	var a agent.Agent
	switch strings.ToLower(name) {
	case settings.AgentAnticipate:
		a = agent.NewAnticipate(side, rng)
	case settings.AgentLander:
		a = agent.NewLander(side, oracle)
	default:
		a = agent.NewFollowBall(side)
	}
	if randomProb > 0 {
		a = agent.NewRandomized(a, randomProb, rng)
	}
	return a
}

func summarise(reports []Report) Summary {
	sum := Summary{Matches: len(reports), Reports: reports}
	var rallies []int
	for _, rep := range reports {
		if rep.Err != nil {
			sum.Failed++
			continue
		}
		sum.Completed++
		res := rep.Result
		sum.Score1P += res.Players[entity.Side1P].Score
		sum.Score2P += res.Players[entity.Side2P].Score
		sum.Draws += res.Draws
		switch winner, ok := res.Winner(); {
		case !ok:
			sum.Level++
		case winner == entity.Side1P:
			sum.Wins1P++
		default:
			sum.Wins2P++
		}
		rallies = append(rallies, rep.RallyLengths...)

		sum.Predictor.Queries += rep.Predictor.Queries
		sum.Predictor.Simulations += rep.Predictor.Simulations
		sum.Predictor.Steps += rep.Predictor.Steps
		sum.Predictor.FrameHits += rep.Predictor.FrameHits
		sum.Predictor.CacheHits += rep.Predictor.CacheHits
		sum.Predictor.Evictions += rep.Predictor.Evictions
	}
	sum.WinRate1P = game.Rate(sum.Wins1P, sum.Completed)
	sum.WinRate2P = game.Rate(sum.Wins2P, sum.Completed)
	sum.RallyFrames = game.Describe(game.Floats(rallies))
	return sum
}
