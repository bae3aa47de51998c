package crawl

import "github.com/mkraev/tui-crawler/internal/core"

// Loot is a ground drop. The payload is a union: any subset of the fields
// may be set, and pickup applies every non-empty one. A single drop legally
// carries several effects at once.
type Loot struct {
	Pos core.Vec2

	Gold        int
	PotionHP    bool
	PotionMana  bool
	Weapon      *Weapon
	DamageBoost bool
	ShieldBoost bool

	TTL float64
}

// Consumed reports whether this loot has already been picked up or expired.
func (l *Loot) Consumed() bool {
	return l.TTL <= 0
}

// ApplyTo grants every set payload field to the player and forces the TTL
// to zero so the drop is removed this tick. Calling it on an
// already-consumed drop is a no-op, so double pickup cannot happen.
func (l *Loot) ApplyTo(p *Player, lc lootRules) {
	if l.Consumed() {
		return
	}
	if l.Gold > 0 {
		p.Gold += l.Gold
	}
	if l.PotionHP {
		p.PotionsHP++
	}
	if l.PotionMana {
		p.PotionsMana++
	}
	if l.Weapon != nil {
		p.Weapon = *l.Weapon
	}
	if l.DamageBoost {
		p.DamageMult = lc.boostMult
		p.DamageTimer = lc.boostTime
	}
	if l.ShieldBoost {
		p.Shield = core.Max(p.Shield, lc.shieldPoints)
	}
	l.TTL = 0
}

// lootRules carries the few tunables pickup resolution needs, so ApplyTo
// does not depend on the whole config.
type lootRules struct {
	boostMult    float64
	boostTime    float64
	shieldPoints int
}
