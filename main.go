package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		exitf("config: %v", err)
	}
	opts, err := parseFlags(cfg, os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		exitf("flags: %v", err)
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	roster, err := LoadRoster(opts.Roster)
	if err != nil {
		slog.Warn("using built-in roster", "path", opts.Roster, "err", err)
		roster = DefaultRoster()
	}

	var journal *Journal
	if opts.Journal != "" {
		journal, err = OpenJournal(opts.Journal)
		if err != nil {
			exitf("journal: %v", err)
		}
		defer journal.Close()
	}

	if opts.History > 0 {
		if journal == nil {
			exitf("history: no journal configured (use -journal)")
		}
		if err := printHistory(os.Stdout, journal, opts.History); err != nil {
			exitf("history: %v", err)
		}
		return
	}

	if opts.MCPHTTP {
		server := NewMCPServer(opts.Seed, roster, journal, opts.SavePath)
		if err := RunMCPHTTP(server, opts.MCP); err != nil {
			slog.Error("mcp server stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	s := NewGame(opts.Seed, roster, nil)
	s.IsHeadless = opts.Headless
	s.SavePath = opts.SavePath
	AttachJournal(s, journal)
	slog.Debug("run started", "run", s.ID, "seed", s.Seed, "heroes", len(s.Party.Heroes))

	console := NewConsole(os.Stdin, s.IsHeadless)
	for s.IsPlaying {
		line, err := console.ReadLine(s, promptFor(s))
		if err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Warn("input closed", "err", err)
			}
			line = "QUIT"
		}
		processCommand(s, line)
	}
	outPrintln(s)
	outPrintln(s, "Thanks for playing!")
}

func printHistory(w io.Writer, j *Journal, limit int) error {
	runs, err := j.RecentRuns(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}
	for _, r := range runs {
		id := r.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(w, "%s  %s  %-9s turns %3d  relics %d\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"), id, r.Outcome, r.Turns, r.Relics)
	}
	return nil
}
