package predict

import (
	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/physics"
	"go.uber.org/atomic"
)

// DefaultMaxSteps is the default step budget of a prediction.
const DefaultMaxSteps = 300

// Landing is where the ball is expected to reach a paddle's plane.
type Landing struct {
	// X is the horizontal centre of the ball at the landing step.
	X float64
	// Steps is the number of frames simulated.
	Steps int
	// Side is the paddle whose plane the ball reached.
	Side entity.Side
	// Hit is false if the step budget ran out first; X is then the ball's
	// centre at the last simulated step and should be trusted less.
	Hit bool
	// Contact is true if the ball struck the paddle rather than crossing its
	// plane beside it.
	Contact bool
	// Ball is the ball's final top-left position.
	Ball physics.Vec2
}

// Stats are counters describing the work a Predictor has done.
type Stats struct {
	Queries     uint64
	Simulations uint64
	Steps       uint64
	FrameHits   uint64
	CacheHits   uint64
	Evictions   uint64
}

type stats struct {
	queries     atomic.Uint64
	simulations atomic.Uint64
	steps       atomic.Uint64
	frameHits   atomic.Uint64
	cacheHits   atomic.Uint64
	evictions   atomic.Uint64
}

// Predictor answers landing queries by replaying the collision resolver on a
// private copy of the scene. It memoizes results in a frame slot and a bounded
// LRU cache. A Predictor is owned by one match and is not safe for concurrent
// use; see Locked.
type Predictor struct {
	maxSteps int
	cache    *Cache
	frame    FrameCache
	stats    stats
}

// New creates a predictor. Non-positive arguments select the defaults.
func New(maxSteps, cacheSize int) *Predictor {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Predictor{maxSteps: maxSteps, cache: NewCache(cacheSize)}
}

// Predict returns the landing for the query passed. It never fails: if no
// paddle plane is reached within the step budget, the best-effort position at
// the last step is returned with Hit set to false.
func (p *Predictor) Predict(q Query) Landing {
	p.stats.queries.Inc()
	k := q.Key(p.maxSteps)
	if l, ok := p.frame.Get(q.Frame, k); ok {
		p.stats.frameHits.Inc()
		return l
	}
	l, ok := p.cache.Get(k)
	if ok {
		p.stats.cacheHits.Inc()
	} else {
		l = p.simulate(k)
		if p.cache.Put(k, l) {
			p.stats.evictions.Inc()
		}
	}
	p.frame.Set(q.Frame, k, l)
	return l
}

// Reset clears both caches. It is called between rallies; the statistics are
// kept.
func (p *Predictor) Reset() {
	p.frame.Invalidate()
	p.cache.Clear()
}

// Stats returns a snapshot of the predictor's counters. It may be called from
// any goroutine.
func (p *Predictor) Stats() Stats {
	return Stats{
		Queries:     p.stats.queries.Load(),
		Simulations: p.stats.simulations.Load(),
		Steps:       p.stats.steps.Load(),
		FrameHits:   p.stats.frameHits.Load(),
		CacheHits:   p.stats.cacheHits.Load(),
		Evictions:   p.stats.evictions.Load(),
	}
}

func (p *Predictor) MaxSteps() int { return p.maxSteps }
func (p *Predictor) Cached() int   { return p.cache.Len() }

func (p *Predictor) simulate(k Key) Landing {
	p.stats.simulations.Inc()
	l := Simulate(k)
	p.stats.steps.Add(uint64(l.Steps))
	return l
}

// Simulate runs the uncached forward simulation for a key. Each step moves the
// blocker, then the ball, then resolves collisions with physics.Resolve, in the
// same order as a game frame. Paddles stay where they are.
func Simulate(k Key) Landing {
	ball := physics.Body{
		Rect:     physics.NewRect(k.Ball, physics.BallSize, physics.BallSize),
		Velocity: k.BallVelocity,
	}
	arena := physics.Arena{
		Field: physics.Field,
		Paddle1P: physics.Obstacle{
			Rect:     physics.NewRect(k.Paddle1P, physics.PaddleWidth, physics.PaddleHeight),
			Velocity: k.Paddle1PVelocity,
		},
		Paddle2P: physics.Obstacle{
			Rect:     physics.NewRect(k.Paddle2P, physics.PaddleWidth, physics.PaddleHeight),
			Velocity: k.Paddle2PVelocity,
		},
		Blocker: physics.Obstacle{
			Rect:     physics.NewRect(k.Blocker, physics.BlockerWidth, physics.BlockerHeight),
			Velocity: k.BlockerVelocity,
		},
		BlockerEnabled: k.BlockerEnabled,
		Slice:          k.Slice,
	}

	for step := 1; step <= k.MaxSteps; step++ {
		if arena.BlockerEnabled && arena.Blocker.Velocity != (physics.Vec2{}) {
			arena.Blocker.Rect, arena.Blocker.Velocity = entity.AdvanceBlocker(arena.Blocker.Rect, arena.Blocker.Velocity, arena.Field)
		}
		last := ball.Rect
		ball.Step()
		out := physics.Resolve(&ball, last, arena)

		switch {
		case out.Contact == physics.ContactPaddle1P || out.Crossed1P:
			return landing(ball, step, entity.Side1P, true, out.Contact == physics.ContactPaddle1P)
		case out.Contact == physics.ContactPaddle2P || out.Crossed2P:
			return landing(ball, step, entity.Side2P, true, out.Contact == physics.ContactPaddle2P)
		}
	}

	side := entity.Side1P
	if ball.Velocity.Y < 0 {
		side = entity.Side2P
	}
	return landing(ball, k.MaxSteps, side, false, false)
}

func landing(ball physics.Body, steps int, side entity.Side, hit, contact bool) Landing {
	return Landing{
		X:       float64(ball.Rect.X) + float64(ball.Rect.W)/2,
		Steps:   steps,
		Side:    side,
		Hit:     hit,
		Contact: contact,
		Ball:    ball.Rect.Pos(),
	}
}
