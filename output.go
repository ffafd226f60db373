package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func outWriter(s *GameState) io.Writer {
	if s != nil && s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func outPrint(s *GameState, a ...any) {
	_, _ = fmt.Fprint(outWriter(s), a...)
}

func outPrintln(s *GameState, a ...any) {
	_, _ = fmt.Fprintln(outWriter(s), a...)
}

func outPrintf(s *GameState, format string, a ...any) {
	_, _ = fmt.Fprintf(outWriter(s), format, a...)
}

// logEvent prints a game log line and records it in the run journal.
func logEvent(s *GameState, kind EventKind, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	wrapWriteLn(s, msg)
	if s.Journal == nil {
		return
	}
	err := s.Journal.Append(context.Background(), Event{
		RunID:   s.ID,
		Turn:    s.Turns,
		Kind:    kind,
		Message: msg,
	})
	if err != nil {
		slog.Warn("journal append failed", "run", s.ID, "kind", kind, "err", err)
	}
}
