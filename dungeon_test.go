package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExploreResolvesExactlyOneOutcome(t *testing.T) {
	tests := []struct {
		name    string
		dice    *scriptedDice
		relics  int
		hp      int
		stress  int
		baseOK  bool
		logLine string
	}{
		{
			name:    "relic",
			dice:    &scriptedDice{rolls: []int{45, 0, 5}},
			relics:  1,
			hp:      20,
			stress:  5,
			baseOK:  true,
			logLine: "Relic found (1/4)",
		},
		{
			name:    "trap",
			dice:    &scriptedDice{rolls: []int{46, 0, 6, 9}},
			hp:      14,
			stress:  9,
			baseOK:  true,
			logLine: "Trap!",
		},
		{
			name:    "base wrecked",
			dice:    &scriptedDice{rolls: []int{76}, chances: []bool{true}},
			hp:      20,
			baseOK:  false,
			logLine: "NOT functional",
		},
		{
			name:    "minor encounter",
			dice:    &scriptedDice{rolls: []int{90}},
			hp:      20,
			baseOK:  true,
			logLine: "minor encounter",
		},
		{
			name:    "tension",
			dice:    &scriptedDice{rolls: []int{91, 0, 17}},
			hp:      20,
			stress:  17,
			baseOK:  true,
			logLine: "Dread creeps in",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newTestGame(t, soloRoster(20, 5, 0), tt.dice)
			hero := s.Party.Heroes[0]

			explore(s)

			assert.Equal(t, tt.relics, s.Dungeon.Relics)
			assert.Equal(t, tt.hp, hero.HP)
			assert.Equal(t, tt.stress, hero.Stress)
			assert.Equal(t, tt.baseOK, s.Dungeon.BaseFunctional)
			assert.Contains(t, out.String(), tt.logLine)
		})
	}
}

func TestTrapDamageGoesThroughDefense(t *testing.T) {
	s, _ := newTestGame(t, soloRoster(20, 5, 4), &scriptedDice{rolls: []int{60, 0, 3, 8}})
	explore(s)
	assert.Equal(t, 20, s.Party.Heroes[0].HP)
	assert.Equal(t, 8, s.Party.Heroes[0].Stress)
}

func TestRepairBase(t *testing.T) {
	s, out := newTestGame(t, DefaultRoster(), &scriptedDice{})

	repairBase(s)
	assert.Contains(t, out.String(), "already functional")

	s.Dungeon.BaseFunctional = false
	repairBase(s)
	assert.True(t, s.Dungeon.BaseFunctional)
	assert.Contains(t, out.String(), "Base repaired")
}

func TestRestHealsAndCalmsTheLiving(t *testing.T) {
	r := DefaultRoster()
	r.Heroes = []HeroSpec{
		{Name: "A", HP: 20, Attack: 1, Defense: 0},
		{Name: "B", HP: 20, Attack: 1, Defense: 0},
	}
	s, _ := newTestGame(t, r, &scriptedDice{rolls: []int{4, 10}, chances: []bool{true}})
	a, b := s.Party.Heroes[0], s.Party.Heroes[1]
	a.HP, a.Stress = 10, 50
	b.HP, b.Stress = 0, 50

	rest(s)

	assert.Equal(t, 14, a.HP)
	assert.Equal(t, 40, a.Stress)
	assert.Equal(t, 0, b.HP, "the dead do not rest")
	assert.Equal(t, 50, b.Stress)
	assert.False(t, s.Dungeon.BaseFunctional)
}

func TestReadyForBoss(t *testing.T) {
	d := Dungeon{RequiredRelics: 4}
	assert.False(t, d.ReadyForBoss())
	d.Relics = 4
	assert.True(t, d.ReadyForBoss())
	d.Relics = 5
	assert.True(t, d.ReadyForBoss())
}
