package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CommandInput struct {
	Command string `json:"command" jsonschema:"Menu choice or combat action to apply"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Start a new run before applying the command"`
	Seed    *int64 `json:"seed,omitempty" jsonschema:"Seed to use when resetting the run"`
}

type CommandOutput struct {
	Output string      `json:"output" jsonschema:"Raw game output"`
	State  GameSummary `json:"state" jsonschema:"Summary of the current game state"`
}

type StatusInput struct{}

// MCPServer owns a single game and serialises every tool call against it.
type MCPServer struct {
	mu          sync.Mutex
	game        *GameState
	roster      Roster
	journal     *Journal
	savePath    string
	defaultSeed *int64
}

func NewMCPServer(seed *int64, roster Roster, journal *Journal, savePath string) *MCPServer {
	srv := &MCPServer{
		roster:      roster,
		journal:     journal,
		savePath:    savePath,
		defaultSeed: seed,
	}
	srv.game = srv.newGame(seed, io.Discard)
	return srv
}

func (m *MCPServer) newGame(seed *int64, out io.Writer) *GameState {
	g := NewGame(seed, m.roster, out)
	g.IsHeadless = true
	if m.savePath != "" {
		g.SavePath = m.savePath
	}
	AttachJournal(g, m.journal)
	return g
}

// ExecuteCommand runs one input line and returns everything it printed.
// An empty command reprints the status and current menu.
func ExecuteCommand(s *GameState, cmd string) (string, GameSummary) {
	var buf bytes.Buffer
	prevOut := s.Out
	s.Out = &buf
	defer func() {
		s.Out = prevOut
	}()

	trimmed := strings.TrimSpace(cmd)
	switch {
	case !s.IsPlaying:
		outPrintf(s, "The run is over (%s). Reset to play again.\n", s.Phase)
	case trimmed == "" && s.inCombat():
		showTurnHeader(s)
	case trimmed == "":
		showStatus(s)
		showMenu(s)
	default:
		processCommand(s, trimmed)
	}

	return buf.String(), SummarizeState(s)
}

func (m *MCPServer) HandleCommand(_ context.Context, _ *mcp.CallToolRequest, input *CommandInput) (*mcp.CallToolResult, *CommandOutput, error) {
	if input == nil {
		input = &CommandInput{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if input.Reset {
		if m.game.IsPlaying {
			finishRun(m.game, "abandoned")
		}
		seed := m.defaultSeed
		if input.Seed != nil {
			seed = input.Seed
		}
		var buf bytes.Buffer
		m.game = m.newGame(seed, &buf)
		m.game.Out = io.Discard
		if strings.TrimSpace(input.Command) == "" {
			return nil, &CommandOutput{
				Output: buf.String(),
				State:  SummarizeState(m.game),
			}, nil
		}
		output, summary := ExecuteCommand(m.game, input.Command)
		return nil, &CommandOutput{
			Output: buf.String() + output,
			State:  summary,
		}, nil
	}

	output, summary := ExecuteCommand(m.game, input.Command)
	return nil, &CommandOutput{
		Output: output,
		State:  summary,
	}, nil
}

func (m *MCPServer) HandleStatus(_ context.Context, _ *mcp.CallToolRequest, _ *StatusInput) (*mcp.CallToolResult, *GameSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	summary := SummarizeState(m.game)
	return nil, &summary, nil
}

type MCPOptions struct {
	Addr         string
	Path         string
	Origins      []string
	Token        string
	JSONResponse bool
	Stateless    bool
}

func (m *MCPServer) Handler(opts MCPOptions) http.Handler {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "gloomhold",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "command",
		Description: "Send a menu choice or combat action to the dungeon run and return output plus state summary.",
	}, m.HandleCommand)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "status",
		Description: "Return the party, dungeon and encounter summary without taking a turn.",
	}, m.HandleStatus)

	path := opts.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:    opts.Stateless,
		JSONResponse: opts.JSONResponse,
		Logger:       slog.Default(),
	})

	originSet := map[string]struct{}{}
	for _, origin := range opts.Origins {
		originSet[origin] = struct{}{}
	}

	guarded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedOrigin(r, originSet) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if opts.Token != "" && r.Header.Get("Authorization") != "Bearer "+opts.Token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})

	mux := http.NewServeMux()
	mux.Handle(path, guarded)
	return mux
}

func RunMCPHTTP(m *MCPServer, opts MCPOptions) error {
	slog.Info("mcp server listening", "addr", opts.Addr, "path", opts.Path, "stateless", opts.Stateless)
	serverHTTP := &http.Server{
		Addr:    opts.Addr,
		Handler: m.Handler(opts),
	}
	return serverHTTP.ListenAndServe()
}

func isAllowedOrigin(r *http.Request, allowed map[string]struct{}) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}
