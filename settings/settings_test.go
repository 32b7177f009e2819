package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jerry930829/ML-pingpong/game"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatal(err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatal("expected an error when the settings file already exists")
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s != DefaultSettings() {
		t.Fatalf("loaded settings differ from the defaults: %+v", s)
	}
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := "[Game]\nDifficulty = \"easy\"\nGameOverScore = 5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	opts, err := s.GameOptions(nil)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Difficulty != game.DifficultyEasy || opts.GameOverScore != 5 || opts.InitVel != 7 {
		t.Fatalf("unexpected options %+v", opts)
	}
	if s.Predictor.MaxSteps != 300 {
		t.Fatal("missing values must keep their defaults")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[Game]\nDifficulty = \"IMPOSSIBLE\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected an error for an unknown difficulty")
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Settings){
		"draw rule":   func(s *Settings) { s.Game.DrawRule = "AVG" },
		"score":       func(s *Settings) { s.Game.GameOverScore = -1 },
		"steps":       func(s *Settings) { s.Predictor.MaxSteps = 0 },
		"cache":       func(s *Settings) { s.Predictor.CacheSize = -5 },
		"matches":     func(s *Settings) { s.Eval.Matches = 0 },
		"workers":     func(s *Settings) { s.Eval.Workers = 0 },
		"probability": func(s *Settings) { s.Eval.RandomActionProb = 2 },
		"agent":       func(s *Settings) { s.Eval.Player2P = "human" },
	}
	for name, mutate := range tests {
		s := DefaultSettings()
		mutate(&s)
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("defaults must be valid: %v", err)
	}

	s := DefaultSettings()
	s.Game.DrawRule = "max"
	if opts, err := s.GameOptions(nil); err != nil || opts.Draw != game.DrawRuleMaxComponent {
		t.Fatalf("expected the max draw rule, got %v %v", opts.Draw, err)
	}
}
