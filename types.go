package main

const (
	MaxStress      = 200
	PanicThreshold = 100
	GuardBonus     = 3
	CritChance     = 0.15
	AmbushChance   = 0.35
	DefaultRelics  = 4
	MaxHeroes      = 8
	MaxHistory     = 10

	BaseBreakChance = 0.3
	RestBreakChance = 0.2

	PanicChance     = 0.25
	BossPanicChance = 0.30
	BossAuraStress  = 2
)

// Hero is a party member controlled by the player.
type Hero struct {
	Name    string
	MaxHP   int
	HP      int
	Stress  int
	Attack  int
	Defense int
}

// Enemy is a hostile actor. A boss is an enemy tied to the win condition.
type Enemy struct {
	Name   string
	MaxHP  int
	HP     int
	Attack int
	IsBoss bool
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func NewHero(name string, hp, atk, def int) *Hero {
	return &Hero{Name: name, MaxHP: hp, HP: hp, Attack: atk, Defense: def}
}

func NewEnemy(name string, hp, atk int) *Enemy {
	return &Enemy{Name: name, MaxHP: hp, HP: hp, Attack: atk}
}

func (h *Hero) Alive() bool { return h.HP > 0 }

// ReceiveDamage applies raw damage reduced by the hero's current defense and
// returns what actually landed.
func (h *Hero) ReceiveDamage(raw int) int {
	dmg := raw - h.Defense
	if dmg < 0 {
		dmg = 0
	}
	h.HP = clamp(h.HP-dmg, 0, h.MaxHP)
	return dmg
}

// TakeTrueDamage ignores defense.
func (h *Hero) TakeTrueDamage(n int) int {
	if n < 0 {
		n = 0
	}
	h.HP = clamp(h.HP-n, 0, h.MaxHP)
	return n
}

func (h *Hero) AddStress(n int) { h.Stress = clamp(h.Stress+n, 0, MaxStress) }

func (h *Hero) Calm(n int) { h.Stress = clamp(h.Stress-n, 0, MaxStress) }

func (h *Hero) Heal(n int) { h.HP = clamp(h.HP+n, 0, h.MaxHP) }

func (e *Enemy) Alive() bool { return e.HP > 0 }

func (e *Enemy) ReceiveDamage(n int) int {
	if n < 0 {
		n = 0
	}
	e.HP = clamp(e.HP-n, 0, e.MaxHP)
	return n
}

// Party is the fixed, ordered roster for a session. Dead heroes stay in it.
type Party struct {
	Heroes []*Hero
}

func (p *Party) Alive() []*Hero {
	var alive []*Hero
	for _, h := range p.Heroes {
		if h.Alive() {
			alive = append(alive, h)
		}
	}
	return alive
}

func (p *Party) AllDead() bool {
	for _, h := range p.Heroes {
		if h.HP > 0 {
			return false
		}
	}
	return true
}

// RandomAlive returns a uniformly chosen living hero, or nil if none remain.
func (p *Party) RandomAlive(d Dice) *Hero {
	alive := p.Alive()
	if len(alive) == 0 {
		return nil
	}
	return alive[d.Between(0, len(alive)-1)]
}
