package game

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// DeterministicSeed derives a reproducible RNG seed from a root seed and a
// label, so independent consumers of one root seed draw from unrelated streams.
func DeterministicSeed(root, label string) int64 {
	h := xxhash.New()
	_, _ = h.WriteString(root)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(label)
	seed := int64(h.Sum64() & 0x7fffffffffffffff)
	if seed == 0 {
		seed = 1
	}
	return seed
}

// NewDeterministicRNG returns a math/rand source seeded from root and label.
func NewDeterministicRNG(root, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeed(root, label)))
}
