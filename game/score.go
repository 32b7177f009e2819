package game

import "github.com/jerry930829/ML-pingpong/entity"

// ScoreBoard counts rallies won by each side over a match. Scores never
// decrease.
type ScoreBoard struct {
	threshold int
	scores    [2]int
	draws     int
	rallies   int
}

// NewScoreBoard creates a score board ending the match at threshold points.
func NewScoreBoard(threshold int) ScoreBoard {
	return ScoreBoard{threshold: threshold}
}

// Record credits the result of a finished rally. A draw credits both sides.
func (s *ScoreBoard) Record(status Status) {
	switch status {
	case Status1PWin:
		s.scores[entity.Side1P]++
	case Status2PWin:
		s.scores[entity.Side2P]++
	case StatusDraw:
		s.scores[entity.Side1P]++
		s.scores[entity.Side2P]++
		s.draws++
	default:
		return
	}
	s.rallies++
}

// Reached returns true once either side has reached the threshold.
func (s *ScoreBoard) Reached() bool {
	return s.scores[entity.Side1P] >= s.threshold || s.scores[entity.Side2P] >= s.threshold
}

// Score returns the score of the side passed.
func (s *ScoreBoard) Score(side entity.Side) int {
	return s.scores[side]
}

func (s *ScoreBoard) Draws() int     { return s.draws }
func (s *ScoreBoard) Rallies() int   { return s.rallies }
func (s *ScoreBoard) Threshold() int { return s.threshold }
