package game

import (
	"io"
	"strings"

	"github.com/jerry930829/ML-pingpong/oerror"
	"github.com/jerry930829/ML-pingpong/physics"
	"github.com/sirupsen/logrus"
)

// Difficulty selects which optional mechanics are active in a match.
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	// DifficultyNormal enables slicing.
	DifficultyNormal
	// DifficultyHard enables slicing and the blocker.
	DifficultyHard
)

// ParseDifficulty parses a difficulty name case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EASY":
		return DifficultyEasy, nil
	case "NORMAL", "":
		return DifficultyNormal, nil
	case "HARD":
		return DifficultyHard, nil
	}
	return 0, oerror.New("unknown difficulty %q", s)
}

// String ...
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "EASY"
	case DifficultyHard:
		return "HARD"
	}
	return "NORMAL"
}

func (d Difficulty) SliceEnabled() bool   { return d != DifficultyEasy }
func (d Difficulty) BlockerEnabled() bool { return d == DifficultyHard }

// MarshalText ...
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText ...
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// DrawRule decides when the ball has become too fast to keep playing.
type DrawRule uint8

const (
	// DrawRuleMinComponent draws once both velocity components exceed
	// DrawBallSpeed.
	DrawRuleMinComponent DrawRule = iota
	// DrawRuleMaxComponent draws once either velocity component exceeds
	// DrawBallSpeed.
	DrawRuleMaxComponent
)

// Triggered returns true if a ball moving at (vx, vy) ends the rally as a draw.
func (r DrawRule) Triggered(vx, vy int) bool {
	ax, ay := physics.Abs(vx), physics.Abs(vy)
	if r == DrawRuleMaxComponent {
		return max(ax, ay) > DrawBallSpeed
	}
	return min(ax, ay) > DrawBallSpeed
}

// Options configure a match.
type Options struct {
	Difficulty Difficulty
	// GameOverScore is the number of rallies a side must win to end the match.
	GameOverScore int
	// InitVel is the magnitude of each velocity component at the serve.
	InitVel int
	// Seed drives the blocker start and timed-out serves. Matches created with
	// equal options and equal action sequences are identical.
	Seed string
	Draw DrawRule

	Log *logrus.Logger
}

// Validate returns an error if the options cannot describe a playable match.
// Zero values are accepted and replaced by defaults in New.
func (o Options) Validate() error {
	if o.GameOverScore < 0 {
		return oerror.New("game over score must not be negative, got %d", o.GameOverScore)
	}
	if o.InitVel < 0 {
		return oerror.New("initial velocity must not be negative, got %d", o.InitVel)
	}
	if o.InitVel > DrawBallSpeed {
		return oerror.New("initial velocity %d exceeds the draw speed %d", o.InitVel, DrawBallSpeed)
	}
	if o.Difficulty > DifficultyHard {
		return oerror.New("unknown difficulty %d", o.Difficulty)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.GameOverScore == 0 {
		o.GameOverScore = DefaultGameOverScore
	}
	if o.Log == nil {
		o.Log = logrus.New()
		o.Log.SetOutput(io.Discard)
	}
	return o
}
