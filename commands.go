package main

import (
	"errors"
	"strings"
)

type commandHandler func(s *GameState, noun string, consumeTurn *bool)

type commandEntry struct {
	verb    string
	handler commandHandler
}

func splitCommand(cmd string) (verb, noun string) {
	trimmed := strings.TrimSpace(cmd)
	spacePos := strings.Index(trimmed, " ")
	if spacePos >= 0 {
		verb = strings.ToUpper(trimmed[:spacePos])
		noun = strings.TrimSpace(trimmed[spacePos+1:])
	} else {
		verb = strings.ToUpper(trimmed)
		noun = ""
	}
	return
}

func cmdExplore(s *GameState, noun string, consumeTurn *bool) {
	explore(s)
	if s.Party.AllDead() {
		return
	}
	if s.Dice.Chance(AmbushChance) {
		outPrintln(s, "Something stirs in the dark...")
		startCombat(s)
	}
}

func cmdFight(s *GameState, noun string, consumeTurn *bool) {
	startCombat(s)
}

func cmdRepair(s *GameState, noun string, consumeTurn *bool) {
	repairBase(s)
}

func cmdBoss(s *GameState, noun string, consumeTurn *bool) {
	if err := startBossCombat(s); err != nil {
		if errors.Is(err, ErrBossLocked) {
			outPrintf(s, "You still need every relic (%d/%d).\n", s.Dungeon.Relics, s.Dungeon.RequiredRelics)
		} else {
			outPrintf(s, "Error: %v\n", err)
		}
		*consumeTurn = false
	}
}

func cmdRest(s *GameState, noun string, consumeTurn *bool) {
	rest(s)
}

func cmdQuit(s *GameState, noun string, consumeTurn *bool) {
	s.IsPlaying = false
	*consumeTurn = false
	finishRun(s, "quit")
}

func cmdStatus(s *GameState, noun string, consumeTurn *bool) {
	showStatus(s)
	*consumeTurn = false
}

func cmdShowHelp(s *GameState, noun string, consumeTurn *bool) {
	outPrintln(s)
	outPrintln(s, "Actions:")
	outPrintln(s, "  1) 🔦 EXPLORE        - Search the halls for relics")
	outPrintln(s, "  2) ⚔️  FIGHT          - Seek out a minor encounter")
	outPrintln(s, "  3) 🔧 REPAIR         - Repair the base")
	outPrintln(s, "  4) 💀 BOSS           - Face the boss (requires every relic)")
	outPrintln(s, "  5) 🛌 REST           - Heal and lower stress")
	outPrintln(s, "  6) 🚪 QUIT (Q)       - Leave the dungeon")
	outPrintln(s, "     📋 STATUS         - Show the party")
	outPrintln(s, "     💾 SAVE / LOAD    - Save or load your progress")
	outPrintln(s)
	*consumeTurn = false
}

func cmdSave(s *GameState, noun string, consumeTurn *bool) {
	if err := saveGame(s, s.SavePath); err != nil {
		outPrintf(s, "Error saving game: %v\n", err)
	} else {
		outPrintln(s, "💾 Game saved.")
	}
	*consumeTurn = false
}

func cmdLoad(s *GameState, noun string, consumeTurn *bool) {
	if err := loadGame(s, s.SavePath); err != nil {
		if errors.Is(err, ErrNoSave) {
			outPrintln(s, "No save file found.")
		} else {
			outPrintf(s, "Error loading save file: %v\n", err)
		}
	} else {
		outPrintln(s, "📂 Game loaded.")
		showStatus(s)
	}
	*consumeTurn = false
}

var commands = []commandEntry{
	{"1", cmdExplore},
	{"EXPLORE", cmdExplore},
	{"E", cmdExplore},
	{"2", cmdFight},
	{"FIGHT", cmdFight},
	{"F", cmdFight},
	{"3", cmdRepair},
	{"REPAIR", cmdRepair},
	{"4", cmdBoss},
	{"BOSS", cmdBoss},
	{"5", cmdRest},
	{"REST", cmdRest},
	{"6", cmdQuit},
	{"QUIT", cmdQuit},
	{"Q", cmdQuit},
	{"STATUS", cmdStatus},
	{"HELP", cmdShowHelp},
	{"H", cmdShowHelp},
	{"?", cmdShowHelp},
	{"SAVE", cmdSave},
	{"LOAD", cmdLoad},
}

func isQuit(verb string) bool {
	return verb == "QUIT" || verb == "Q"
}

// processCommand applies one line of operator input to the current phase.
func processCommand(s *GameState, cmd string) {
	if !s.IsPlaying {
		return
	}
	verb, noun := splitCommand(cmd)
	consumeTurn := true

	if s.inCombat() {
		if isQuit(verb) {
			cmdQuit(s, noun, &consumeTurn)
		} else {
			resolveTurn(s, parseAction(verb))
		}
	} else {
		handler := commandHandler(cmdExplore)
		for _, entry := range commands {
			if verb == entry.verb {
				handler = entry.handler
				break
			}
		}
		handler(s, noun, &consumeTurn)
	}

	if s.IsPlaying && consumeTurn {
		s.Turns++
	}
	if checkOutcome(s) != OutcomeContinue || !s.IsPlaying {
		return
	}

	if s.inCombat() {
		showTurnHeader(s)
	} else if consumeTurn {
		showStatus(s)
		showMenu(s)
	}
}

type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeLose
)

// checkOutcome moves the session to Won or Lost when either condition holds.
// A wiped party is checked first.
func checkOutcome(s *GameState) Outcome {
	var out Outcome
	switch {
	case s.Party.AllDead():
		out = OutcomeLose
		s.Phase = PhaseLost
	case !s.Boss.Alive() && s.Dungeon.ReadyForBoss():
		out = OutcomeWin
		s.Phase = PhaseWon
	default:
		return OutcomeContinue
	}

	if s.IsPlaying {
		outPrintln(s)
		if out == OutcomeWin {
			logEvent(s, EventOutcome, "🎉 You gathered every relic and destroyed the %s!", s.Boss.Name)
			finishRun(s, "won")
		} else {
			logEvent(s, EventOutcome, "💀 Your company has fallen. Defeat.")
			finishRun(s, "lost")
		}
		s.IsPlaying = false
	}
	return out
}
