package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

var ErrNoSave = errors.New("no save file")

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// saveGame writes the exploring-phase state. Combat is never saved; an
// encounter only lives until it ends.
func saveGame(s *GameState, path string) error {
	if s.inCombat() {
		return fmt.Errorf("cannot save during combat")
	}
	cfg := ini.Empty()

	sec, _ := cfg.NewSection("State")
	sec.Key("ID").SetValue(s.ID)
	sec.Key("Turns").SetValue(strconv.Itoa(s.Turns))
	sec.Key("Relics").SetValue(strconv.Itoa(s.Dungeon.Relics))
	sec.Key("RequiredRelics").SetValue(strconv.Itoa(s.Dungeon.RequiredRelics))
	sec.Key("BaseFunctional").SetValue(boolStr(s.Dungeon.BaseFunctional))

	boss, _ := cfg.NewSection("Boss")
	boss.Key("Name").SetValue(s.Boss.Name)
	boss.Key("HP").SetValue(strconv.Itoa(s.Boss.HP))
	boss.Key("MaxHP").SetValue(strconv.Itoa(s.Boss.MaxHP))
	boss.Key("Attack").SetValue(strconv.Itoa(s.Boss.Attack))

	for i, h := range s.Party.Heroes {
		hs, _ := cfg.NewSection(fmt.Sprintf("Hero%d", i+1))
		hs.Key("Name").SetValue(h.Name)
		hs.Key("HP").SetValue(strconv.Itoa(h.HP))
		hs.Key("MaxHP").SetValue(strconv.Itoa(h.MaxHP))
		hs.Key("Stress").SetValue(strconv.Itoa(h.Stress))
		hs.Key("Attack").SetValue(strconv.Itoa(h.Attack))
		hs.Key("Defense").SetValue(strconv.Itoa(h.Defense))
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create save directory: %w", err)
		}
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

func loadGame(s *GameState, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrNoSave
	}
	if s.inCombat() {
		return fmt.Errorf("cannot load during combat")
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("read save: %w", err)
	}

	var heroes []*Hero
	for i := 1; i <= MaxHeroes; i++ {
		sectionName := fmt.Sprintf("Hero%d", i)
		if !cfg.HasSection(sectionName) {
			break
		}
		sec := cfg.Section(sectionName)
		h := &Hero{
			Name:    sec.Key("Name").String(),
			MaxHP:   sec.Key("MaxHP").MustInt(1),
			Attack:  sec.Key("Attack").MustInt(0),
			Defense: sec.Key("Defense").MustInt(0),
		}
		if h.MaxHP < 1 {
			h.MaxHP = 1
		}
		h.HP = clamp(sec.Key("HP").MustInt(h.MaxHP), 0, h.MaxHP)
		h.Stress = clamp(sec.Key("Stress").MustInt(0), 0, MaxStress)
		heroes = append(heroes, h)
	}
	if len(heroes) == 0 {
		return fmt.Errorf("read save: no heroes in %s", path)
	}

	state := cfg.Section("State")
	bossSec := cfg.Section("Boss")
	boss := &Enemy{
		Name:   bossSec.Key("Name").MustString(s.Boss.Name),
		MaxHP:  bossSec.Key("MaxHP").MustInt(s.Boss.MaxHP),
		Attack: bossSec.Key("Attack").MustInt(s.Boss.Attack),
		IsBoss: true,
	}
	boss.HP = clamp(bossSec.Key("HP").MustInt(boss.MaxHP), 0, boss.MaxHP)

	s.Party = &Party{Heroes: heroes}
	s.Boss = boss
	s.Turns = state.Key("Turns").MustInt(0)
	s.Dungeon.RequiredRelics = state.Key("RequiredRelics").MustInt(DefaultRelics)
	if s.Dungeon.RequiredRelics < 1 {
		s.Dungeon.RequiredRelics = DefaultRelics
	}
	s.Dungeon.Relics = max(state.Key("Relics").MustInt(0), 0)
	s.Dungeon.BaseFunctional = parseBool(state.Key("BaseFunctional").String())
	s.Phase = PhaseExploring
	s.Encounter = nil
	if id := strings.TrimSpace(state.Key("ID").String()); id != "" {
		resumeRun(s, id)
	}
	return nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "-1", "yes":
		return true
	}
	return false
}
