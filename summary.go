package main

type HeroSummary struct {
	Name    string `json:"name" jsonschema:"Hero name"`
	HP      int    `json:"hp" jsonschema:"Current hit points"`
	MaxHP   int    `json:"max_hp" jsonschema:"Maximum hit points"`
	Stress  int    `json:"stress" jsonschema:"Stress level, 0-200"`
	Attack  int    `json:"attack" jsonschema:"Attack power"`
	Defense int    `json:"defense" jsonschema:"Defense value"`
	Alive   bool   `json:"alive" jsonschema:"Whether the hero can still act"`
}

type EnemySummary struct {
	Name   string `json:"name" jsonschema:"Enemy name"`
	HP     int    `json:"hp" jsonschema:"Current hit points"`
	MaxHP  int    `json:"max_hp" jsonschema:"Maximum hit points"`
	Attack int    `json:"attack" jsonschema:"Attack power"`
	IsBoss bool   `json:"is_boss" jsonschema:"Whether this is the boss"`
}

type GameSummary struct {
	RunID          string        `json:"run_id" jsonschema:"Unique id of this run"`
	Phase          string        `json:"phase" jsonschema:"exploring, combat, boss_combat, won or lost"`
	Turns          int           `json:"turns" jsonschema:"Number of turns taken"`
	IsPlaying      bool          `json:"is_playing" jsonschema:"Whether the game is still active"`
	Relics         int           `json:"relics" jsonschema:"Relics collected"`
	RequiredRelics int           `json:"required_relics" jsonschema:"Relics needed to face the boss"`
	BaseFunctional bool          `json:"base_functional" jsonschema:"Whether the base is functional"`
	Heroes         []HeroSummary `json:"heroes" jsonschema:"Party members in roster order"`
	ActingHero     string        `json:"acting_hero,omitempty" jsonschema:"Hero whose turn it is during combat"`
	Enemy          *EnemySummary `json:"enemy,omitempty" jsonschema:"Current opponent during combat"`
	BossHP         int           `json:"boss_hp" jsonschema:"Boss hit points remaining"`
}

func SummarizeState(s *GameState) GameSummary {
	summary := GameSummary{
		RunID:          s.ID,
		Phase:          s.Phase.String(),
		Turns:          s.Turns,
		IsPlaying:      s.IsPlaying,
		Relics:         s.Dungeon.Relics,
		RequiredRelics: s.Dungeon.RequiredRelics,
		BaseFunctional: s.Dungeon.BaseFunctional,
		BossHP:         s.Boss.HP,
	}
	for _, h := range s.Party.Heroes {
		summary.Heroes = append(summary.Heroes, HeroSummary{
			Name:    h.Name,
			HP:      h.HP,
			MaxHP:   h.MaxHP,
			Stress:  h.Stress,
			Attack:  h.Attack,
			Defense: h.Defense,
			Alive:   h.Alive(),
		})
	}
	if enc := s.Encounter; enc != nil {
		if enc.Hero != nil {
			summary.ActingHero = enc.Hero.Name
		}
		summary.Enemy = &EnemySummary{
			Name:   enc.Enemy.Name,
			HP:     enc.Enemy.HP,
			MaxHP:  enc.Enemy.MaxHP,
			Attack: enc.Enemy.Attack,
			IsBoss: enc.Enemy.IsBoss,
		}
	}
	return summary
}
