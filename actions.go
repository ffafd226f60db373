package main

import (
	"strconv"
	"strings"
)

type Action int

const (
	ActionStrike Action = iota
	ActionGuard
	ActionCalm
)

// actionContext is what a combat action may read and mutate.
type actionContext struct {
	s     *GameState
	hero  *Hero
	enemy *Enemy
}

// actionOutcome reports what an action did, for logging and tests.
type actionOutcome struct {
	Damage   int
	Critical bool
	Calmed   int
}

type actionHandler func(ctx *actionContext) actionOutcome

type actionEntry struct {
	action  Action
	name    string
	aliases []string
	handler actionHandler
}

var actions = []actionEntry{
	{ActionStrike, "Strike", []string{"STRIKE", "ATTACK", "HIT", "S"}, actStrike},
	{ActionGuard, "Guard", []string{"GUARD", "DEFEND", "G"}, actGuard},
	{ActionCalm, "Calm", []string{"CALM", "COMPOSE", "C"}, actCalm},
}

func (a Action) String() string {
	if int(a) >= 0 && int(a) < len(actions) {
		return actions[a].name
	}
	return "Unknown"
}

func actStrike(ctx *actionContext) actionOutcome {
	base := ctx.hero.Attack + ctx.s.Dice.Between(-2, 3)
	crit := ctx.s.Dice.Chance(CritChance)
	if crit {
		base *= 2
	}
	dmg := ctx.enemy.ReceiveDamage(base)
	if crit {
		logEvent(ctx.s, EventAction, "⚔️  %s strikes for %d (CRITICAL).", ctx.hero.Name, dmg)
	} else {
		logEvent(ctx.s, EventAction, "⚔️  %s strikes for %d.", ctx.hero.Name, dmg)
	}
	return actionOutcome{Damage: dmg, Critical: crit}
}

func actGuard(ctx *actionContext) actionOutcome {
	ctx.hero.Defense += GuardBonus
	logEvent(ctx.s, EventAction, "🛡️  %s takes a defensive stance (+%d DEF this turn).", ctx.hero.Name, GuardBonus)
	return actionOutcome{}
}

func actCalm(ctx *actionContext) actionOutcome {
	calm := ctx.s.Dice.Between(8, 15)
	before := ctx.hero.Stress
	ctx.hero.Calm(calm)
	logEvent(ctx.s, EventAction, "🧘 %s steadies their nerves (-%d stress).", ctx.hero.Name, before-ctx.hero.Stress)
	return actionOutcome{Calmed: before - ctx.hero.Stress}
}

// parseAction maps operator input to an action. Numbers outside the menu are
// clamped to the nearest entry and anything unrecognised means Strike.
func parseAction(input string) Action {
	trimmed := strings.ToUpper(strings.TrimSpace(input))
	if trimmed == "" {
		return ActionStrike
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return Action(clamp(n, 1, len(actions)) - 1)
	}
	for _, entry := range actions {
		for _, alias := range entry.aliases {
			if trimmed == alias {
				return entry.action
			}
		}
	}
	return ActionStrike
}

func showActionMenu(s *GameState) {
	for i, entry := range actions {
		outPrintf(s, "  %d. %s\n", i+1, entry.name)
	}
}
