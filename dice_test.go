package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiceBetweenStaysInRange(t *testing.T) {
	d := newDice(42)
	for i := 0; i < 1000; i++ {
		v := d.Between(-2, 3)
		if v < -2 || v > 3 {
			t.Fatalf("expected value in [-2,3], got %d", v)
		}
	}
	assert.Equal(t, 7, d.Between(7, 7))
	assert.Equal(t, 7, d.Between(7, 2))
}

func TestDiceSameSeedSameRolls(t *testing.T) {
	a, b := newDice(99), newDice(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Between(1, 100), b.Between(1, 100))
		assert.Equal(t, a.Chance(0.35), b.Chance(0.35))
	}
}

func TestDiceChanceExtremes(t *testing.T) {
	d := newDice(7)
	for i := 0; i < 100; i++ {
		assert.False(t, d.Chance(0))
		assert.True(t, d.Chance(1))
	}
}

func TestNewSeedIsNonNegative(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.GreaterOrEqual(t, newSeed(), int64(0))
	}
}
