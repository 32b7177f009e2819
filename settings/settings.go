package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/oerror"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Agent names accepted by Eval.Player1P and Eval.Player2P.
const (
	AgentFollow     = "follow"
	AgentAnticipate = "anticipate"
	AgentLander     = "lander"
)

// Settings contains everything that can be configured for a self-play run.
type Settings struct {
	Game struct {
		// Difficulty is one of EASY, NORMAL or HARD.
		Difficulty    string
		GameOverScore int
		InitVel       int
		Seed          string
		// DrawRule is MIN or MAX: whether both or either velocity component must
		// exceed the draw speed.
		DrawRule string
	}
	Predictor struct {
		MaxSteps  int
		CacheSize int
	}
	Eval struct {
		Matches int
		Workers int
		// RecordDir is where match recordings are written. Empty disables
		// recording.
		RecordDir string
		Player1P  string
		Player2P  string
		// RandomActionProb is the chance an agent's move is replaced by a
		// random one.
		RandomActionProb float64
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Game.Difficulty = game.DifficultyHard.String()
	s.Game.GameOverScore = game.DefaultGameOverScore
	s.Game.InitVel = 7
	s.Game.Seed = "pingpong"
	s.Game.DrawRule = "MIN"

	s.Predictor.MaxSteps = 300
	s.Predictor.CacheSize = 32768

	s.Eval.Matches = 20
	s.Eval.Workers = 4
	s.Eval.Player1P = AgentLander
	s.Eval.Player2P = AgentAnticipate
	s.Eval.RandomActionProb = 0.05
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if
// the file does not exist or the settings it holds are invalid.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	s := DefaultSettings()
	if err = toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	s.fillDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return s, nil
}

// fillDefaults replaces settings left empty by a partial file with their
// default values.
func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	setString(&s.Game.Difficulty, def.Game.Difficulty)
	setInt(&s.Game.GameOverScore, def.Game.GameOverScore)
	setInt(&s.Game.InitVel, def.Game.InitVel)
	setString(&s.Game.Seed, def.Game.Seed)
	setString(&s.Game.DrawRule, def.Game.DrawRule)
	setInt(&s.Predictor.MaxSteps, def.Predictor.MaxSteps)
	setInt(&s.Predictor.CacheSize, def.Predictor.CacheSize)
	setInt(&s.Eval.Matches, def.Eval.Matches)
	setInt(&s.Eval.Workers, def.Eval.Workers)
	setString(&s.Eval.Player1P, def.Eval.Player1P)
	setString(&s.Eval.Player2P, def.Eval.Player2P)
}

func setString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

// Validate returns an error describing the first invalid setting.
func (s Settings) Validate() error {
	if _, err := s.GameOptions(nil); err != nil {
		return err
	}
	if s.Predictor.MaxSteps <= 0 {
		return oerror.New("Predictor.MaxSteps must be positive, got %d", s.Predictor.MaxSteps)
	}
	if s.Predictor.CacheSize <= 0 {
		return oerror.New("Predictor.CacheSize must be positive, got %d", s.Predictor.CacheSize)
	}
	if s.Eval.Matches <= 0 {
		return oerror.New("Eval.Matches must be positive, got %d", s.Eval.Matches)
	}
	if s.Eval.Workers <= 0 {
		return oerror.New("Eval.Workers must be positive, got %d", s.Eval.Workers)
	}
	if s.Eval.RandomActionProb < 0 || s.Eval.RandomActionProb > 1 {
		return oerror.New("Eval.RandomActionProb must be within [0, 1], got %v", s.Eval.RandomActionProb)
	}
	for _, name := range []string{s.Eval.Player1P, s.Eval.Player2P} {
		switch strings.ToLower(name) {
		case AgentFollow, AgentAnticipate, AgentLander:
		default:
			return oerror.New("unknown agent %q", name)
		}
	}
	return nil
}

// GameOptions converts the game settings into options for game.New.
func (s Settings) GameOptions(log *logrus.Logger) (game.Options, error) {
	d, err := game.ParseDifficulty(s.Game.Difficulty)
	if err != nil {
		return game.Options{}, err
	}
	rule := game.DrawRuleMinComponent
	switch strings.ToUpper(s.Game.DrawRule) {
	case "MIN", "":
	case "MAX":
		rule = game.DrawRuleMaxComponent
	default:
		return game.Options{}, oerror.New("unknown draw rule %q", s.Game.DrawRule)
	}
	opts := game.Options{
		Difficulty:    d,
		GameOverScore: s.Game.GameOverScore,
		InitVel:       s.Game.InitVel,
		Seed:          s.Game.Seed,
		Draw:          rule,
		Log:           log,
	}
	return opts, opts.Validate()
}
