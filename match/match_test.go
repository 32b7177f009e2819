package match

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jerry930829/ML-pingpong/agent"
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/predict"
	"github.com/jerry930829/ML-pingpong/recording"
	"github.com/jerry930829/ML-pingpong/settings"
)

func TestRunnerPlaysToTheEnd(t *testing.T) {
	g, err := game.New(game.Options{Difficulty: game.DifficultyHard, GameOverScore: 2, Seed: "runner"})
	if err != nil {
		t.Fatal(err)
	}
	pred := predict.New(0, 0)
	r := NewRunner(g, agent.NewLander(entity.Side1P, pred), agent.NewFollowBall(entity.Side2P), pred, nil)

	frames := 0
	r.OnFrame = func(f recording.Frame) error {
		frames++
		if f.Result == game.ResultQuit && f.Scene.Status != game.StatusOver {
			t.Errorf("QUIT reported with status %v", f.Scene.Status)
		}
		return nil
	}
	res, err := r.Play(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Finished || !g.Over() {
		t.Fatal("expected the match to be over")
	}
	if frames != res.FrameUsed {
		t.Fatalf("expected one hook call per frame, got %d calls for %d frames", frames, res.FrameUsed)
	}
	if len(r.RallyLengths()) != res.Rallies {
		t.Fatalf("expected %d rally lengths, got %d", res.Rallies, len(r.RallyLengths()))
	}
	total := 0
	for _, n := range r.RallyLengths() {
		total += n
	}
	if total != res.FrameUsed {
		t.Fatalf("rally lengths add up to %d, expected %d", total, res.FrameUsed)
	}
	if pred.Stats().Queries == 0 {
		t.Fatal("expected the lander to query the predictor")
	}
}

func TestRunnerCancelled(t *testing.T) {
	g, err := game.New(game.Options{GameOverScore: 100, Seed: "cancel"})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewRunner(g, agent.NewFollowBall(entity.Side1P), agent.NewFollowBall(entity.Side2P), nil, nil)
	if _, err := r.Play(ctx); err == nil {
		t.Fatal("expected the cancelled match to stop after its first rally")
	}
	if len(r.RallyLengths()) != 1 {
		t.Fatalf("expected a single rally, got %d", len(r.RallyLengths()))
	}
}

func testSettings() settings.Settings {
	s := settings.DefaultSettings()
	s.Game.GameOverScore = 2
	s.Eval.Matches = 4
	s.Eval.Workers = 2
	s.Eval.Player2P = settings.AgentLander
	return s
}

func TestEvaluate(t *testing.T) {
	s := testSettings()
	a, err := Evaluate(context.Background(), s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Matches != 4 || a.Completed != 4 || a.Failed != 0 {
		t.Fatalf("unexpected counts %+v", a)
	}
	if a.Wins1P+a.Wins2P+a.Level != 4 {
		t.Fatalf("every match needs an outcome: %+v", a)
	}
	if a.RallyFrames.Count == 0 || a.RallyFrames.Mean <= 0 {
		t.Fatalf("expected rally statistics, got %+v", a.RallyFrames)
	}
	if a.Predictor.Queries == 0 || a.Predictor.FrameHits == 0 {
		t.Fatalf("expected the shared predictor to be used by both sides, got %+v", a.Predictor)
	}

	b, err := Evaluate(context.Background(), s, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Reports {
		if a.Reports[i].Result != b.Reports[i].Result {
			t.Fatalf("match %d is not deterministic: %+v != %+v", i, a.Reports[i].Result, b.Reports[i].Result)
		}
	}
	if a.WinRate1P != b.WinRate1P || a.RallyFrames != b.RallyFrames {
		t.Fatal("summaries differ between identical evaluations")
	}
}

func TestEvaluateRecords(t *testing.T) {
	s := testSettings()
	s.Eval.Matches = 2
	s.Eval.RecordDir = filepath.Join(t.TempDir(), "records")
	sum, err := Evaluate(context.Background(), s, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		rec, err := recording.DecodeFile(filepath.Join(s.Eval.RecordDir, "match_00"+string(rune('0'+i))+".jsonl"))
		if err != nil {
			t.Fatal(err)
		}
		if len(rec.Frames) != sum.Reports[i].Result.FrameUsed {
			t.Fatalf("match %d: recorded %d frames, played %d", i, len(rec.Frames), sum.Reports[i].Result.FrameUsed)
		}
		if rec.Header.Seed != sum.Reports[i].Seed {
			t.Fatalf("unexpected header %+v", rec.Header)
		}
	}
	entries, err := os.ReadDir(s.Eval.RecordDir)
	if err != nil || len(entries) != 2 {
		t.Fatalf("expected two recordings, got %d (%v)", len(entries), err)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := Evaluate(ctx, testSettings(), nil)
	if err == nil {
		t.Fatal("expected a cancelled evaluation to return an error")
	}
	if sum.Completed+sum.Failed != sum.Matches {
		t.Fatalf("inconsistent summary %+v", sum)
	}
}

func TestEvaluateInvalidSettings(t *testing.T) {
	s := testSettings()
	s.Eval.Workers = 0
	if _, err := Evaluate(context.Background(), s, nil); err == nil {
		t.Fatal("expected invalid settings to be rejected")
	}
}
