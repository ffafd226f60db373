package main

import (
	"io"
)

type Phase int

const (
	PhaseExploring Phase = iota
	PhaseCombat
	PhaseBossCombat
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseExploring:
		return "exploring"
	case PhaseCombat:
		return "combat"
	case PhaseBossCombat:
		return "boss_combat"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

// Dungeon tracks relic progress and the state of the base camp.
type Dungeon struct {
	Relics         int
	RequiredRelics int
	BaseFunctional bool
}

func (d *Dungeon) ReadyForBoss() bool { return d.Relics >= d.RequiredRelics }

// Encounter is a single fight. It exists only while a combat phase is active.
type Encounter struct {
	Enemy *Enemy
	Hero  *Hero
	Round int

	// queue holds the heroes still to act this round in a boss fight.
	queue []*Hero
}

type GameState struct {
	ID        string
	Party     *Party
	Dungeon   Dungeon
	Boss      *Enemy
	Phase     Phase
	Encounter *Encounter
	Dice      Dice
	Seed      int64

	IsPlaying  bool
	IsHeadless bool
	Turns      int

	SavePath string
	Out      io.Writer
	Journal  *Journal
}

func initState(s *GameState, r Roster) {
	s.Party = &Party{}
	for _, h := range r.Heroes {
		s.Party.Heroes = append(s.Party.Heroes, NewHero(h.Name, h.HP, h.Attack, h.Defense))
	}
	s.Boss = NewEnemy(r.Boss.Name, r.Boss.HP, r.Boss.Attack)
	s.Boss.IsBoss = true
	s.Dungeon = Dungeon{
		Relics:         0,
		RequiredRelics: r.Relics,
		BaseFunctional: true,
	}
	s.Phase = PhaseExploring
	s.Encounter = nil
	s.IsPlaying = true
	s.Turns = 0
}

func (s *GameState) inCombat() bool {
	return s.Phase == PhaseCombat || s.Phase == PhaseBossCombat
}
