package game

import (
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/physics"
)

const (
	PlayerPass = "GAME_PASS"
	PlayerOver = "GAME_OVER"
	PlayerDraw = "GAME_DRAW"
)

// PlayerResult is one side's line in a MatchResult.
type PlayerResult struct {
	Side   entity.Side `json:"player"`
	Rank   int         `json:"rank"`
	Score  int         `json:"score"`
	Status string      `json:"status"`
}

// MatchResult summarises a match, finished or not.
type MatchResult struct {
	Finished  bool            `json:"finished"`
	FrameUsed int             `json:"frame_used"`
	Rallies   int             `json:"rallies"`
	Draws     int             `json:"draws"`
	BallSpeed physics.Vec2    `json:"ball_speed"`
	Players   [2]PlayerResult `json:"players"`
}

// Winner returns the winning side, or false if the match is level.
func (r MatchResult) Winner() (entity.Side, bool) {
	a, b := r.Players[entity.Side1P].Score, r.Players[entity.Side2P].Score
	switch {
	case a > b:
		return entity.Side1P, true
	case b > a:
		return entity.Side2P, true
	}
	return entity.Side1P, false
}

func newMatchResult(finished bool, frames int, score *ScoreBoard, ballSpeed physics.Vec2) MatchResult {
	r := MatchResult{
		Finished:  finished,
		FrameUsed: frames,
		Rallies:   score.Rallies(),
		Draws:     score.Draws(),
		BallSpeed: ballSpeed,
	}
	for _, side := range []entity.Side{entity.Side1P, entity.Side2P} {
		r.Players[side] = PlayerResult{Side: side, Score: score.Score(side), Rank: 1, Status: PlayerDraw}
	}
	if winner, ok := r.Winner(); ok {
		r.Players[winner].Status = PlayerPass
		r.Players[winner.Opponent()].Status = PlayerOver
		r.Players[winner.Opponent()].Rank = 2
	}
	return r
}
