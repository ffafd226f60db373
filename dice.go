package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Dice is the only source of randomness the game reads from. All rolls go
// through it so a seeded session replays identically.
type Dice interface {
	// Between returns an integer in [lo, hi].
	Between(lo, hi int) int
	// Chance reports true with probability p.
	Chance(p float64) bool
}

type rngDice struct {
	rng *rand.Rand
}

func newDice(seed int64) *rngDice {
	return &rngDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *rngDice) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + d.rng.Intn(hi-lo+1)
}

func (d *rngDice) Chance(p float64) bool {
	return d.rng.Float64() < p
}

// newSeed picks a fresh seed when the caller did not ask for one.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}
