package agent

import (
	"math/rand"

	"github.com/jerry930829/ML-pingpong/entity"
	"github.com/jerry930829/ML-pingpong/game"
)

var randomMoves = []entity.Action{entity.ActionNone, entity.ActionMoveLeft, entity.ActionMoveRight}

// Randomized wraps an agent and, with probability P, replaces its non-serve
// actions with a random move.
type Randomized struct {
	Agent
	P float64

	rng *rand.Rand
}

// NewRandomized ...
func NewRandomized(a Agent, p float64, rng *rand.Rand) *Randomized {
	return &Randomized{Agent: a, P: p, rng: rng}
}

// Act ...
func (r *Randomized) Act(s game.Scene) entity.Action {
	action := r.Agent.Act(s)
	if action.Serve() || r.rng.Float64() >= r.P {
		return action
	}
	return randomMoves[r.rng.Intn(len(randomMoves))]
}
