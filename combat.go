package main

import (
	"errors"
	"log/slog"
)

var ErrBossLocked = errors.New("the boss lair stays sealed until every relic is found")

// combatTuning holds the numbers that differ between regular and boss fights.
type combatTuning struct {
	retaliateLo, retaliateHi int
	stressLo, stressHi       int
	panicChance              float64
	panicLo, panicHi         int
	aura                     int
}

var (
	regularTuning = combatTuning{
		retaliateLo: -2,
		retaliateHi: 3,
		stressLo:    3,
		stressHi:    9,
		panicChance: PanicChance,
		panicLo:     3,
		panicHi:     8,
	}
	bossTuning = combatTuning{
		retaliateLo: 0,
		retaliateHi: 4,
		stressLo:    7,
		stressHi:    14,
		panicChance: BossPanicChance,
		panicLo:     4,
		panicHi:     10,
		aura:        BossAuraStress,
	}
)

func tuningFor(s *GameState) combatTuning {
	if s.Phase == PhaseBossCombat {
		return bossTuning
	}
	return regularTuning
}

// startCombat rolls a regular foe and hands the first turn to a random hero.
func startCombat(s *GameState) {
	foe := NewEnemy("Abomination", s.Dice.Between(20, 30), s.Dice.Between(5, 8))
	outPrintln(s)
	logEvent(s, EventCombat, "👹 %s appears! (HP %d)", foe.Name, foe.HP)
	engage(s, foe)
}

// startBossCombat opens the boss fight. The boss keeps whatever damage it took
// in earlier attempts.
func startBossCombat(s *GameState) error {
	if !s.Dungeon.ReadyForBoss() {
		return ErrBossLocked
	}
	if !s.Boss.Alive() {
		return nil
	}
	outPrintln(s)
	logEvent(s, EventBoss, "💀 BOSS: %s (HP %d)", s.Boss.Name, s.Boss.HP)
	engage(s, s.Boss)
	return nil
}

// engage opens an encounter against foe and picks the first actor.
func engage(s *GameState, foe *Enemy) {
	s.Encounter = &Encounter{Enemy: foe}
	if foe.IsBoss {
		s.Phase = PhaseBossCombat
	} else {
		s.Phase = PhaseCombat
	}
	nextActor(s)
}

// nextActor picks who acts next. A regular fight draws a random living hero
// every round; a boss round walks every hero alive at the start of the round
// in party order.
func nextActor(s *GameState) {
	enc := s.Encounter
	if s.Phase == PhaseCombat {
		enc.Round++
		enc.Hero = s.Party.RandomAlive(s.Dice)
		return
	}

	for {
		for len(enc.queue) > 0 {
			h := enc.queue[0]
			enc.queue = enc.queue[1:]
			if h.Alive() {
				enc.Hero = h
				return
			}
		}
		alive := s.Party.Alive()
		if len(alive) == 0 {
			enc.Hero = nil
			return
		}
		enc.Round++
		enc.queue = append([]*Hero(nil), alive...)
	}
}

// resolveTurn runs one hero turn: the chosen action, the enemy's reply, the
// guard revert, the boss aura and panic checks.
func resolveTurn(s *GameState, action Action) actionOutcome {
	enc := s.Encounter
	hero := enc.Hero
	enemy := enc.Enemy
	tune := tuningFor(s)

	preDef := hero.Defense
	slog.Debug("hero turn", "run", s.ID, "round", enc.Round, "hero", hero.Name, "action", action.String())
	outcome := actions[action].handler(&actionContext{s: s, hero: hero, enemy: enemy})

	if enemy.Alive() {
		if target := s.Party.RandomAlive(s.Dice); target != nil {
			raw := enemy.Attack + s.Dice.Between(tune.retaliateLo, tune.retaliateHi)
			dmg := target.ReceiveDamage(raw)
			target.AddStress(s.Dice.Between(tune.stressLo, tune.stressHi))
			if enemy.IsBoss {
				logEvent(s, EventEnemy, "☠️  %s punishes %s for %d.", enemy.Name, target.Name, dmg)
			} else {
				logEvent(s, EventEnemy, "👹 %s hits %s for %d.", enemy.Name, target.Name, dmg)
			}
		}
	}

	hero.Defense = preDef

	if tune.aura > 0 {
		for _, h := range s.Party.Alive() {
			h.AddStress(tune.aura)
		}
	}

	for _, h := range s.Party.Alive() {
		if h.Stress >= PanicThreshold && s.Dice.Chance(tune.panicChance) {
			dmg := h.TakeTrueDamage(s.Dice.Between(tune.panicLo, tune.panicHi))
			logEvent(s, EventPanic, "😵 %s breaks under the stress and takes %d!", h.Name, dmg)
		}
	}

	switch {
	case s.Party.AllDead():
		endCombat(s, false)
	case !enemy.Alive():
		endCombat(s, true)
	default:
		nextActor(s)
	}
	return outcome
}

func endCombat(s *GameState, victory bool) {
	enc := s.Encounter
	s.Encounter = nil
	if !victory {
		logEvent(s, EventCombat, "The party has been wiped out...")
		s.Phase = PhaseLost
		return
	}
	if enc.Enemy.IsBoss {
		logEvent(s, EventBoss, "🏆 %s has fallen!", enc.Enemy.Name)
		s.Phase = PhaseExploring
		return
	}

	logEvent(s, EventCombat, "You have slain the %s.", enc.Enemy.Name)
	heal := s.Dice.Between(3, 7)
	for _, h := range s.Party.Alive() {
		h.Heal(heal)
	}
	logEvent(s, EventRest, "⛺ The party catches its breath: +%d HP.", heal)
	s.Phase = PhaseExploring
}

func showTurnHeader(s *GameState) {
	enc := s.Encounter
	if enc == nil || enc.Hero == nil {
		return
	}
	label := "Enemy"
	if enc.Enemy.IsBoss {
		label = "Boss"
	}
	outPrintln(s)
	outPrintf(s, "%s's turn (HP %d/%d, stress %d). %s HP: %d\n",
		enc.Hero.Name, enc.Hero.HP, enc.Hero.MaxHP, enc.Hero.Stress, label, enc.Enemy.HP)
	showActionMenu(s)
}
