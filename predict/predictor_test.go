package predict

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/physics"
)

func straightServe() Query {
	return Query{
		Frame:        1,
		Ball:         mgl64.Vec2{95, 70},
		BallVelocity: mgl64.Vec2{0, 7},
		Paddle1P:     mgl64.Vec2{80, 420},
		Paddle2P:     mgl64.Vec2{160, 70},
	}
}

func TestStraightServe(t *testing.T) {
	p := New(0, 0)
	l := p.Predict(straightServe())

	wantSteps := (420 - 70 - physics.BallSize + 6) / 7
	if l.Steps != wantSteps || l.Steps != 49 {
		t.Fatalf("expected %d steps, got %d", wantSteps, l.Steps)
	}
	if l.X != 100 {
		t.Fatalf("expected landing at the serve x centre 100, got %v", l.X)
	}
	if !l.Hit || !l.Contact || l.Side != entity.Side1P {
		t.Fatalf("expected a 1P contact, got %+v", l)
	}
}

func TestDeterminism(t *testing.T) {
	q := straightServe()
	q.BallVelocity = mgl64.Vec2{-9, 11}
	q.BlockerEnabled = true
	q.Blocker = mgl64.Vec2{60, 240}
	q.BlockerVelocity = mgl64.Vec2{5, 0}
	q.Slice = true

	a, b := New(0, 0).Predict(q), New(0, 0).Predict(q)
	if a != b {
		t.Fatalf("predictions differ: %+v != %+v", a, b)
	}
	q.Frame = 2
	if c := New(0, 0).Predict(q); c != a {
		t.Fatalf("frame number must not affect the result: %+v != %+v", c, a)
	}
}

func TestQuantization(t *testing.T) {
	q := straightServe()
	r := q
	r.Ball = mgl64.Vec2{95.3, 69.6}
	r.BallVelocity = mgl64.Vec2{0.2, 7.4}
	if q.Key(DefaultMaxSteps) != r.Key(DefaultMaxSteps) {
		t.Fatal("queries within rounding distance must share a key")
	}

	r.BlockerVelocity = mgl64.Vec2{5, 0}
	r.Blocker = mgl64.Vec2{10, 10}
	if q.Key(DefaultMaxSteps) != r.Key(DefaultMaxSteps) {
		t.Fatal("a disabled blocker must not affect the key")
	}
	if q.Key(DefaultMaxSteps).Hash() != r.Key(DefaultMaxSteps).Hash() {
		t.Fatal("equal keys must hash equally")
	}
}

func TestFrameCache(t *testing.T) {
	p := New(0, 0)
	q := straightServe()

	first := p.Predict(q)
	second := p.Predict(q)
	if first != second {
		t.Fatalf("cached result differs: %+v != %+v", first, second)
	}
	s := p.Stats()
	if s.Simulations != 1 || s.FrameHits != 1 || s.Steps != 49 {
		t.Fatalf("expected one simulation and one frame hit, got %+v", s)
	}

	q.Frame = 2
	if third := p.Predict(q); third != first {
		t.Fatalf("cached result differs: %+v != %+v", third, first)
	}
	s = p.Stats()
	if s.Simulations != 1 || s.CacheHits != 1 || s.Queries != 3 {
		t.Fatalf("expected an LRU hit for a new frame, got %+v", s)
	}

	p.Reset()
	p.Predict(q)
	if p.Stats().Simulations != 2 {
		t.Fatal("expected a reset to clear both caches")
	}
}

func TestAntiTunneling(t *testing.T) {
	q := Query{
		Ball:         mgl64.Vec2{95, 380},
		BallVelocity: mgl64.Vec2{0, 75},
		Paddle1P:     mgl64.Vec2{80, 420},
		Paddle2P:     mgl64.Vec2{80, 70},
	}
	l := New(0, 0).Predict(q)
	if l.Steps != 1 || !l.Contact || l.Side != entity.Side1P {
		t.Fatalf("expected a tunnelling contact on the first step, got %+v", l)
	}
	if l.Ball.Y != 420-physics.BallSize {
		t.Fatalf("expected the ball on the paddle plane, got %v", l.Ball)
	}
}

func TestPlaneCrossingWithoutContact(t *testing.T) {
	q := Query{
		Ball:         mgl64.Vec2{10, 400},
		BallVelocity: mgl64.Vec2{0, 7},
		Paddle1P:     mgl64.Vec2{150, 420},
		Paddle2P:     mgl64.Vec2{80, 70},
	}
	l := New(0, 0).Predict(q)
	if !l.Hit || l.Contact || l.Side != entity.Side1P || l.X != 15 {
		t.Fatalf("expected a plane crossing at x 15, got %+v", l)
	}
}

func TestStepBudget(t *testing.T) {
	q := straightServe()
	q.MaxSteps = 10
	l := New(0, 0).Predict(q)
	if l.Hit || l.Steps != 10 {
		t.Fatalf("expected a best-effort result after 10 steps, got %+v", l)
	}
	if l.Ball != (physics.Vec2{X: 95, Y: 140}) {
		t.Fatalf("unexpected best-effort position %v", l.Ball)
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(2)
	k := func(x int) Key { return Key{Ball: physics.Vec2{X: x}, MaxSteps: 1} }

	if c.Put(k(1), Landing{X: 1}) || c.Put(k(2), Landing{X: 2}) {
		t.Fatal("no eviction expected below capacity")
	}
	if _, ok := c.Get(k(1)); !ok {
		t.Fatal("expected k1 to be cached")
	}
	if !c.Put(k(3), Landing{X: 3}) {
		t.Fatal("expected an eviction at capacity")
	}
	if _, ok := c.Get(k(2)); ok {
		t.Fatal("expected the least recently used entry to be evicted")
	}
	if l, ok := c.Get(k(1)); !ok || l.X != 1 {
		t.Fatal("expected k1 to survive")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatal("expected an empty cache")
	}
}

func TestPredictorEvictionStats(t *testing.T) {
	p := New(5, 1)
	q := straightServe()
	p.Predict(q)
	q.Ball = mgl64.Vec2{40, 70}
	p.Predict(q)
	if s := p.Stats(); s.Evictions != 1 || p.Cached() != 1 {
		t.Fatalf("expected one eviction, got %+v", s)
	}
}

// TestParityWithGame checks every prediction made during a rally against what
// the game actually did, as long as no speed-up happens in between.
func TestParityWithGame(t *testing.T) {
	configs := []struct {
		difficulty game.Difficulty
		seed       string
		serve      entity.Action
		shift2P    int
	}{
		{game.DifficultyNormal, "a", entity.ActionServeToLeft, 12},
		{game.DifficultyNormal, "b", entity.ActionServeToRight, 0},
		{game.DifficultyHard, "c", entity.ActionServeToLeft, 5},
		{game.DifficultyHard, "d", entity.ActionServeToRight, 10},
		{game.DifficultyHard, "e", entity.ActionServeToLeft, 0},
	}

	compared := 0
	for _, c := range configs {
		g, err := game.New(game.Options{Difficulty: c.difficulty, Seed: c.seed})
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < c.shift2P; i++ {
			g.Update(entity.ActionNone, entity.ActionMoveRight)
		}
		g.Update(c.serve, entity.ActionNone)
		served := g.Frame()

		scenes := map[int]game.Scene{}
		contacts := map[int]physics.Contact{}
		for {
			scenes[g.Frame()] = g.Scene()
			contacts[g.Frame()] = g.LastContact()
			if g.Frame()-served >= game.SpeedUpFrames-1 {
				break
			}
			if res := g.Update(entity.ActionNone, entity.ActionNone); res != game.ResultContinue {
				scenes[g.Frame()] = g.Scene()
				contacts[g.Frame()] = g.LastContact()
				break
			}
		}

		p := New(0, 0)
		for f, s := range scenes {
			if s.Status != game.StatusAlive {
				continue
			}
			l := p.Predict(QueryFromScene(s))
			if !l.Hit {
				continue
			}
			after, ok := scenes[f+l.Steps]
			if !ok {
				continue
			}
			if after.Ball != l.Ball {
				t.Fatalf("%s frame %d: predicted ball %v after %d steps, game had %v", c.seed, f, l.Ball, l.Steps, after.Ball)
			}
			if l.Contact {
				want := physics.ContactPaddle1P
				if l.Side == entity.Side2P {
					want = physics.ContactPaddle2P
				}
				if contacts[f+l.Steps] != want {
					t.Fatalf("%s frame %d: predicted %v contact, game had %v", c.seed, f, want, contacts[f+l.Steps])
				}
			}
			compared++
		}
	}
	if compared == 0 {
		t.Fatal("no prediction could be compared")
	}
}

func TestLocked(t *testing.T) {
	l := NewLocked(New(0, 0))
	done := make(chan Landing, 4)
	for i := 0; i < 4; i++ {
		go func() { done <- l.Predict(straightServe()) }()
	}
	first := <-done
	for i := 0; i < 3; i++ {
		if got := <-done; got != first {
			t.Fatalf("concurrent predictions differ: %+v != %+v", got, first)
		}
	}
	if s := l.Stats(); s.Queries != 4 || s.Simulations != 1 {
		t.Fatalf("unexpected stats %+v", s)
	}
	l.Reset()
}
