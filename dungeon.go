package main

// explore resolves exactly one exploration outcome from a single 1..100 roll.
func explore(s *GameState) {
	roll := s.Dice.Between(1, 100)
	switch {
	case roll <= 45:
		s.Dungeon.Relics++
		logEvent(s, EventExplore, "🔍 Relic found (%d/%d).", s.Dungeon.Relics, s.Dungeon.RequiredRelics)
		if h := s.Party.RandomAlive(s.Dice); h != nil {
			h.AddStress(s.Dice.Between(3, 8))
		}
	case roll <= 75:
		if h := s.Party.RandomAlive(s.Dice); h != nil {
			dmg := h.ReceiveDamage(s.Dice.Between(3, 7))
			h.AddStress(s.Dice.Between(8, 15))
			logEvent(s, EventExplore, "⚠️  Trap! %s takes %d damage and grows tense.", h.Name, dmg)
		}
	case roll <= 90:
		if s.Dice.Chance(BaseBreakChance) {
			s.Dungeon.BaseFunctional = false
			logEvent(s, EventBase, "🏚️  Something wrecks the camp. The base is NOT functional.")
		} else {
			logEvent(s, EventExplore, "🪝 A minor encounter, nothing comes of it.")
		}
	default:
		if h := s.Party.RandomAlive(s.Dice); h != nil {
			h.AddStress(s.Dice.Between(10, 18))
			logEvent(s, EventExplore, "😖 Dread creeps in: %s grows tense.", h.Name)
		}
	}
}

func repairBase(s *GameState) {
	if s.Dungeon.BaseFunctional {
		outPrintln(s, "The base is already functional.")
		return
	}
	s.Dungeon.BaseFunctional = true
	logEvent(s, EventBase, "🔧 Base repaired.")
}

func rest(s *GameState) {
	for _, h := range s.Party.Alive() {
		h.Heal(s.Dice.Between(2, 5))
		h.Calm(s.Dice.Between(6, 12))
	}
	logEvent(s, EventRest, "🛌 You rest: +HP and -stress.")
	if s.Dice.Chance(RestBreakChance) {
		s.Dungeon.BaseFunctional = false
		logEvent(s, EventBase, "Incident: the base is NOT functional.")
	}
}
