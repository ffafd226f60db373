package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadRoster(t *testing.T) {
	path := writeRoster(t, `
[Dungeon]
Relics = 2

[Boss]
Name = Prophet
HP = 90
Attack = 10

[Hero1]
Name = Highwayman
HP = 23
Attack = 8
Defense = 1

[Hero3]
Name = Hellion
HP = 26
Attack = 10
`)
	r, err := LoadRoster(path)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Relics)
	assert.Equal(t, EnemySpec{Name: "Prophet", HP: 90, Attack: 10}, r.Boss)
	require.Len(t, r.Heroes, 2)
	assert.Equal(t, HeroSpec{Name: "Highwayman", HP: 23, Attack: 8, Defense: 1}, r.Heroes[0])
	assert.Equal(t, "Hellion", r.Heroes[1].Name)
	assert.Equal(t, 2, r.Heroes[1].Defense, "missing defense falls back")
}

func TestLoadRosterDefaultsBossAndRelics(t *testing.T) {
	path := writeRoster(t, "[Hero1]\nName = Vestal\nHP = 24\n")
	r, err := LoadRoster(path)
	require.NoError(t, err)
	def := DefaultRoster()
	assert.Equal(t, def.Boss, r.Boss)
	assert.Equal(t, def.Relics, r.Relics)
}

func TestLoadRosterErrors(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorContains(t, err, "load roster")

	_, err = LoadRoster(writeRoster(t, "[Boss]\nHP = 10\n"))
	assert.ErrorContains(t, err, "no [HeroN] sections")

	_, err = LoadRoster(writeRoster(t, "[Hero1]\nName = Ghost\nHP = 0\n"))
	assert.ErrorContains(t, err, "no hit points")
}

func TestShippedRosterMatchesDefaults(t *testing.T) {
	r, err := LoadRoster("data/roster.ini")
	require.NoError(t, err)
	assert.Equal(t, DefaultRoster(), r)
}

func TestNewGameBuildsPartyFromRoster(t *testing.T) {
	s, _ := newTestGame(t, DefaultRoster(), &scriptedDice{})
	require.Len(t, s.Party.Heroes, 4)
	assert.Equal(t, 32, s.Party.Heroes[0].HP)
	assert.Equal(t, 32, s.Party.Heroes[0].MaxHP)
	assert.True(t, s.Boss.IsBoss)
	assert.Equal(t, 120, s.Boss.HP)
	assert.Equal(t, PhaseExploring, s.Phase)
	assert.True(t, s.Dungeon.BaseFunctional)
	assert.NotEmpty(t, s.ID)
}
