package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewGame builds a fresh session. A nil seed draws a random one; out may be
// nil for stdout.
func NewGame(seed *int64, roster Roster, out io.Writer) *GameState {
	var s GameState
	initState(&s, roster)
	s.ID = uuid.NewString()
	if out != nil {
		s.Out = out
	}
	if seed != nil {
		s.Seed = *seed
	} else {
		s.Seed = newSeed()
	}
	s.Dice = newDice(s.Seed)
	s.SavePath = "data/save.ini"

	outPrintln(&s, "=== Gloomhold: a descent into the dark ===")
	showStatus(&s)
	showMenu(&s)
	return &s
}

// AttachJournal starts recording this run. Failures are logged and the game
// carries on without a journal.
func AttachJournal(s *GameState, j *Journal) {
	if j == nil {
		return
	}
	if err := j.StartRun(context.Background(), s.ID); err != nil {
		slog.Warn("journal disabled", "run", s.ID, "err", err)
		return
	}
	s.Journal = j
}

func finishRun(s *GameState, outcome string) {
	if s.Journal == nil {
		return
	}
	err := s.Journal.FinishRun(context.Background(), s.ID, outcome, s.Turns, s.Dungeon.Relics)
	if err != nil {
		slog.Warn("journal finish failed", "run", s.ID, "outcome", outcome, "err", err)
	}
}

// resumeRun switches the session to a saved run id. The run being replaced is
// closed as abandoned.
func resumeRun(s *GameState, id string) {
	if id == s.ID {
		return
	}
	finishRun(s, "abandoned")
	s.ID = id
	if s.Journal == nil {
		return
	}
	if err := s.Journal.StartRun(context.Background(), id); err != nil {
		slog.Warn("journal resume failed", "run", id, "err", err)
	}
}
