package main

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

type HeroSpec struct {
	Name    string
	HP      int
	Attack  int
	Defense int
}

type EnemySpec struct {
	Name   string
	HP     int
	Attack int
}

// Roster is the static setup a session starts from.
type Roster struct {
	Heroes []HeroSpec
	Boss   EnemySpec
	Relics int
}

func DefaultRoster() Roster {
	return Roster{
		Heroes: []HeroSpec{
			{Name: "Crusader", HP: 32, Attack: 9, Defense: 3},
			{Name: "Occultist", HP: 22, Attack: 7, Defense: 1},
			{Name: "Jester", HP: 24, Attack: 6, Defense: 2},
			{Name: "Plague Doctor", HP: 26, Attack: 7, Defense: 2},
		},
		Boss:   EnemySpec{Name: "Heart of Darkness", HP: 120, Attack: 12},
		Relics: DefaultRelics,
	}
}

// LoadRoster reads heroes, boss and dungeon settings from an INI file.
// Missing keys fall back to the defaults; a file with no heroes is an error.
func LoadRoster(path string) (Roster, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Roster{}, fmt.Errorf("load roster: %w", err)
	}

	def := DefaultRoster()
	r := Roster{
		Relics: cfg.Section("Dungeon").Key("Relics").MustInt(def.Relics),
	}
	if r.Relics < 1 {
		r.Relics = def.Relics
	}

	boss := cfg.Section("Boss")
	r.Boss = EnemySpec{
		Name:   boss.Key("Name").MustString(def.Boss.Name),
		HP:     boss.Key("HP").MustInt(def.Boss.HP),
		Attack: boss.Key("Attack").MustInt(def.Boss.Attack),
	}

	for i := 1; i <= MaxHeroes; i++ {
		sectionName := fmt.Sprintf("Hero%d", i)
		if !cfg.HasSection(sectionName) {
			continue
		}
		sec := cfg.Section(sectionName)
		h := HeroSpec{
			Name:    strings.TrimSpace(sec.Key("Name").String()),
			HP:      sec.Key("HP").MustInt(28),
			Attack:  sec.Key("Attack").MustInt(8),
			Defense: sec.Key("Defense").MustInt(2),
		}
		if h.Name == "" {
			h.Name = sectionName
		}
		if h.HP < 1 {
			return Roster{}, fmt.Errorf("load roster: %s has no hit points", sectionName)
		}
		r.Heroes = append(r.Heroes, h)
	}
	if len(r.Heroes) == 0 {
		return Roster{}, fmt.Errorf("load roster: no [HeroN] sections in %s", path)
	}
	if r.Boss.HP < 1 {
		return Roster{}, fmt.Errorf("load roster: boss has no hit points")
	}
	return r, nil
}
