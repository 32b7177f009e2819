package predict

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jerry930829/ML-pingpong/game"
	"github.com/jerry930829/ML-pingpong/physics"
	"github.com/zeebo/xxh3"
)

// Query is a prediction request. Positions are top-left corners in field
// units and may be fractional; they are rounded to whole units before
// simulating.
type Query struct {
	// Frame is the frame number the snapshot was taken on. Repeated queries for
	// the same frame are answered from a single-slot cache.
	Frame int

	Ball         mgl64.Vec2
	BallVelocity mgl64.Vec2

	Paddle1P mgl64.Vec2
	Paddle2P mgl64.Vec2
	// Paddle velocities are optional and only feed the slice rule.
	Paddle1PVelocity mgl64.Vec2
	Paddle2PVelocity mgl64.Vec2

	Blocker         mgl64.Vec2
	BlockerVelocity mgl64.Vec2
	BlockerEnabled  bool

	Slice bool
	// MaxSteps overrides the predictor's step budget if positive.
	MaxSteps int
}

// QueryFromScene builds a query from a scene snapshot.
func QueryFromScene(s game.Scene) Query {
	return Query{
		Frame:            s.Frame,
		Ball:             vec(s.Ball),
		BallVelocity:     vec(s.BallVelocity),
		Paddle1P:         vec(s.Paddle1P),
		Paddle2P:         vec(s.Paddle2P),
		Paddle1PVelocity: vec(s.Paddle1PVelocity),
		Paddle2PVelocity: vec(s.Paddle2PVelocity),
		Blocker:          vec(s.Blocker),
		BlockerVelocity:  vec(s.BlockerVelocity),
		BlockerEnabled:   s.BlockerEnabled,
		Slice:            s.Slice,
	}
}

// Key is the quantized form of a Query. Two queries with equal keys always
// produce the same Landing.
type Key struct {
	Ball, BallVelocity                 physics.Vec2
	Paddle1P, Paddle2P                 physics.Vec2
	Paddle1PVelocity, Paddle2PVelocity physics.Vec2
	Blocker, BlockerVelocity           physics.Vec2
	BlockerEnabled, Slice              bool
	MaxSteps                           int
}

// Key quantizes the query. defaultSteps is used when the query carries no step
// budget of its own.
func (q Query) Key(defaultSteps int) Key {
	k := Key{
		Ball:             quantize(q.Ball),
		BallVelocity:     quantize(q.BallVelocity),
		Paddle1P:         quantize(q.Paddle1P),
		Paddle2P:         quantize(q.Paddle2P),
		Paddle1PVelocity: quantize(q.Paddle1PVelocity),
		Paddle2PVelocity: quantize(q.Paddle2PVelocity),
		BlockerEnabled:   q.BlockerEnabled,
		Slice:            q.Slice,
		MaxSteps:         q.MaxSteps,
	}
	if k.MaxSteps <= 0 {
		k.MaxSteps = defaultSteps
	}
	// A disabled blocker is reported at the origin, which is inside the field.
	// Its position must not split otherwise equal keys.
	if q.BlockerEnabled {
		k.Blocker = quantize(q.Blocker)
		k.BlockerVelocity = quantize(q.BlockerVelocity)
	}
	return k
}

// Hash returns a 64-bit hash of the key used to index the LRU cache.
func (k Key) Hash() uint64 {
	var buf [8*17 + 2]byte
	b := buf[:0]
	for _, v := range []physics.Vec2{
		k.Ball, k.BallVelocity, k.Paddle1P, k.Paddle2P,
		k.Paddle1PVelocity, k.Paddle2PVelocity, k.Blocker, k.BlockerVelocity,
	} {
		b = binary.LittleEndian.AppendUint64(b, uint64(int64(v.X)))
		b = binary.LittleEndian.AppendUint64(b, uint64(int64(v.Y)))
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(int64(k.MaxSteps)))
	b = append(b, boolByte(k.BlockerEnabled), boolByte(k.Slice))
	return xxh3.Hash(b)
}

func quantize(v mgl64.Vec2) physics.Vec2 {
	return physics.Vec2{X: int(math.Round(v.X())), Y: int(math.Round(v.Y()))}
}

func vec(v physics.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X), float64(v.Y)}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
