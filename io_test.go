package main

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReadsPlainLines(t *testing.T) {
	var out bytes.Buffer
	s := &GameState{Out: &out}
	c := NewConsole(strings.NewReader("1\r\nguard\n3"), false)

	line, err := c.ReadLine(s, "> ")
	require.NoError(t, err)
	assert.Equal(t, "1", line)

	line, err = c.ReadLine(s, "> ")
	require.NoError(t, err)
	assert.Equal(t, "guard", line)

	line, err = c.ReadLine(s, "> ")
	require.NoError(t, err)
	assert.Equal(t, "3", line, "a final line without newline is still returned")

	_, err = c.ReadLine(s, "> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > > ", out.String())
}

func TestConsoleHistorySkipsRepeats(t *testing.T) {
	c := NewConsole(strings.NewReader(""), true)
	c.remember("1")
	c.remember("1")
	c.remember("")
	c.remember("2")
	assert.Equal(t, 2, c.historyCount)
	assert.Equal(t, "2", c.history[1])
}

func TestWrapWriteLn(t *testing.T) {
	var out bytes.Buffer
	s := &GameState{Out: &out}
	long := strings.Repeat("shadow ", 30)

	wrapWriteLn(s, long)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, l := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 79)
	}
}

func TestPromptFollowsPhase(t *testing.T) {
	s, _ := newTestGame(t, DefaultRoster(), &scriptedDice{})
	assert.Equal(t, "Choose: ", promptFor(s))
	engage(s, NewEnemy("Rat", 3, 1))
	assert.Equal(t, "Action (1/2/3): ", promptFor(s))
}

func TestStatusMarksFallenHeroes(t *testing.T) {
	s, out := newTestGame(t, DefaultRoster(), &scriptedDice{})
	s.Party.Heroes[1].HP = 0
	s.Dungeon.BaseFunctional = false
	showStatus(s)
	assert.Contains(t, out.String(), "Occultist      HP  0/22 | Stress   0 ✝")
	assert.Contains(t, out.String(), "Base: NOT functional")
}
