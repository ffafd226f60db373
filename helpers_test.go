package main

import (
	"bytes"
	"testing"
)

// scriptedDice replays queued values. Between clamps each value into the
// requested range and falls back to 0 (clamped) once the queue is empty;
// Chance returns false once its queue is empty. Every probability asked for
// is kept in odds.
type scriptedDice struct {
	rolls   []int
	chances []bool
	odds    []float64
}

func (d *scriptedDice) Between(lo, hi int) int {
	v := 0
	if len(d.rolls) > 0 {
		v = d.rolls[0]
		d.rolls = d.rolls[1:]
	}
	return clamp(v, lo, hi)
}

func (d *scriptedDice) Chance(p float64) bool {
	d.odds = append(d.odds, p)
	if len(d.chances) == 0 {
		return false
	}
	c := d.chances[0]
	d.chances = d.chances[1:]
	return c
}

func newTestGame(t *testing.T, roster Roster, dice Dice) (*GameState, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	seed := int64(1)
	s := NewGame(&seed, roster, &out)
	s.Dice = dice
	s.SavePath = t.TempDir() + "/save.ini"
	out.Reset()
	return s, &out
}

func soloRoster(hp, atk, def int) Roster {
	r := DefaultRoster()
	r.Heroes = []HeroSpec{{Name: "Vestal", HP: hp, Attack: atk, Defense: def}}
	return r
}
