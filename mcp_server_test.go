package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMCPServer(t *testing.T) *MCPServer {
	t.Helper()
	seed := int64(5)
	return NewMCPServer(&seed, DefaultRoster(), nil, filepath.Join(t.TempDir(), "save.ini"))
}

func TestExecuteCommandCapturesOutput(t *testing.T) {
	s, out := newTestGame(t, DefaultRoster(), &scriptedDice{rolls: []int{1}})

	text, summary := ExecuteCommand(s, "explore")

	assert.Contains(t, text, "Relic found")
	assert.Empty(t, out.String(), "output goes to the capture buffer, not the game writer")
	assert.Equal(t, 1, summary.Relics)
	assert.Equal(t, "exploring", summary.Phase)
	assert.Equal(t, 1, summary.Turns)
	assert.Len(t, summary.Heroes, 4)
}

func TestExecuteEmptyCommandRedrawsMenu(t *testing.T) {
	s, _ := newTestGame(t, DefaultRoster(), &scriptedDice{})
	text, summary := ExecuteCommand(s, "  ")
	assert.Contains(t, text, "=== STATUS ===")
	assert.Equal(t, 0, summary.Turns)

	engage(s, NewEnemy("Rat", 10, 1))
	text, summary = ExecuteCommand(s, "")
	assert.Contains(t, text, "Crusader's turn")
	require.NotNil(t, summary.Enemy)
	assert.Equal(t, "Rat", summary.Enemy.Name)
	assert.NotEmpty(t, summary.ActingHero)
}

func TestHandleCommandAndReset(t *testing.T) {
	srv := newTestMCPServer(t)
	ctx := context.Background()
	firstRun := srv.game.ID

	_, out, err := srv.HandleCommand(ctx, nil, &CommandInput{Command: "6"})
	require.NoError(t, err)
	assert.False(t, out.State.IsPlaying)

	_, out, err = srv.HandleCommand(ctx, nil, &CommandInput{Command: "1"})
	require.NoError(t, err)
	assert.Contains(t, out.Output, "The run is over")

	seed := int64(9)
	_, out, err = srv.HandleCommand(ctx, nil, &CommandInput{Reset: true, Seed: &seed})
	require.NoError(t, err)
	assert.True(t, out.State.IsPlaying)
	assert.NotEqual(t, firstRun, out.State.RunID)
	assert.Contains(t, out.Output, "Gloomhold")
	assert.Equal(t, int64(9), srv.game.Seed)
}

func TestHandleCommandNilInput(t *testing.T) {
	srv := newTestMCPServer(t)
	_, out, err := srv.HandleCommand(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Contains(t, out.Output, "Actions:")
	assert.Equal(t, 0, out.State.Turns)
}

func TestHandleStatus(t *testing.T) {
	srv := newTestMCPServer(t)
	_, summary, err := srv.HandleStatus(context.Background(), nil, &StatusInput{})
	require.NoError(t, err)
	assert.Equal(t, "exploring", summary.Phase)
	assert.Equal(t, 4, summary.RequiredRelics)
	assert.Equal(t, 120, summary.BossHP)
}

func TestMCPHandlerGuards(t *testing.T) {
	srv := newTestMCPServer(t)
	h := srv.Handler(MCPOptions{
		Path:    "mcp",
		Origins: []string{"http://localhost"},
		Token:   "secret",
	})

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}"))
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}"))
	req.Header.Set("Origin", "http://localhost")
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIsAllowedOrigin(t *testing.T) {
	allowed := map[string]struct{}{"http://localhost": {}}

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	assert.True(t, isAllowedOrigin(req, allowed), "requests without Origin pass")

	req.Header.Set("Origin", "http://localhost")
	assert.True(t, isAllowedOrigin(req, allowed))

	req.Header.Set("Origin", "http://other")
	assert.False(t, isAllowedOrigin(req, allowed))
}
