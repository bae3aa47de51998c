package crawl

import (
	"math/rand"

	"github.com/mkraev/tui-crawler/internal/config"
	"github.com/mkraev/tui-crawler/internal/core"
)

// Weapon is the hero's equipped weapon.
type Weapon struct {
	Name        string
	DamageMin   int
	DamageMax   int
	AttackSpeed float64
}

// RollDamage rolls a damage value in [DamageMin, DamageMax].
func (w Weapon) RollDamage(rng *rand.Rand) int {
	span := w.DamageMax - w.DamageMin
	if span < 0 {
		span = 0
	}
	return w.DamageMin + rng.Intn(span+1)
}

// StartingWeapon is what every run begins with.
func StartingWeapon() Weapon {
	return Weapon{Name: "Rusty Dagger", DamageMin: 6, DamageMax: 10, AttackSpeed: 2.5}
}

// Player is the hero. hp stays clamped to [0, MaxHP]; reaching 0 hands the
// run to the respawn policy.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64

	HP      int
	MaxHP   int
	Mana    int
	MaxMana int

	Level    int
	XP       int
	XPToNext int
	Gold     int

	PotionsHP   int
	PotionsMana int

	// Per-action cooldowns, decremented every tick and clamped at 0.
	BasicCD float64
	PowerCD float64
	DashCD  float64

	// Active timers.
	DashTimer   float64
	IFrames     float64
	DamageTimer float64

	// Facing is the last nonzero move direction; dash and fallback aim use
	// it when the current frame has no direction of its own.
	Facing  core.Vec2
	DashDir core.Vec2

	DamageMult float64
	Shield     int

	Weapon Weapon
}

// NewPlayer creates a fresh level-1 hero at the given position.
func NewPlayer(pos core.Vec2, cfg config.CrawlConfig) Player {
	pc := cfg.Player
	return Player{
		Pos:         pos,
		Radius:      pc.Radius,
		HP:          pc.HP,
		MaxHP:       pc.HP,
		Mana:        pc.Mana,
		MaxMana:     pc.Mana,
		Level:       1,
		XPToNext:    cfg.Progression.XPToNext,
		PotionsHP:   1,
		PotionsMana: 1,
		DamageMult:  1.0,
		Facing:      core.V(1, 0),
		Weapon:      StartingWeapon(),
	}
}

// TickTimers decrements every cooldown and buff timer by dt, clamping at
// zero. The damage boost multiplier drops back to 1.0 when its timer runs
// out.
func (p *Player) TickTimers(dt float64) {
	p.BasicCD = core.ClampF(p.BasicCD-dt, 0, p.BasicCD)
	p.PowerCD = core.ClampF(p.PowerCD-dt, 0, p.PowerCD)
	p.DashCD = core.ClampF(p.DashCD-dt, 0, p.DashCD)
	p.IFrames = core.ClampF(p.IFrames-dt, 0, p.IFrames)
	if p.DamageTimer > 0 {
		p.DamageTimer -= dt
		if p.DamageTimer <= 0 {
			p.DamageTimer = 0
			p.DamageMult = 1.0
		}
	}
}

// ApplyDamage routes incoming damage through the shield first: the shield
// absorbs min(shield, damage), and only the remainder reaches hp. Returns
// the hp actually lost. This order is what makes shields worth picking up;
// do not reverse it.
func (p *Player) ApplyDamage(dmg int) int {
	if dmg <= 0 {
		return 0
	}
	if p.Shield > 0 {
		absorb := core.Min(p.Shield, dmg)
		p.Shield -= absorb
		dmg -= absorb
	}
	if dmg > 0 {
		p.HP -= dmg
		if p.HP < 0 {
			p.HP = 0
		}
	}
	return dmg
}

// GainXP adds XP and resolves level-ups. The loop (not a single check)
// handles several level-ups from one large gain; each iteration grows the
// next threshold by the growth factor (truncated) and restores part of the
// hero's missing hp and mana. Post-condition: XP < XPToNext.
func (p *Player) GainXP(amount int, prog config.ProgressionConfig, pc config.PlayerConfig) {
	p.XP += amount
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.XPToNext = int(float64(p.XPToNext) * prog.Growth)
		p.MaxHP = pc.HP + pc.HPPerLevel*p.Level
		p.MaxMana = pc.Mana + pc.ManaPerLevel*p.Level
		p.HP = core.Min(p.MaxHP, p.HP+prog.HealOnLevel)
		p.Mana = core.Min(p.MaxMana, p.Mana+prog.ManaOnLevel)
	}
}

// DrinkHPPotion consumes a health potion if one is held and hp is missing.
func (p *Player) DrinkHPPotion(heal int) bool {
	if p.PotionsHP <= 0 || p.HP >= p.MaxHP {
		return false
	}
	p.PotionsHP--
	p.HP = core.Min(p.MaxHP, p.HP+heal)
	return true
}

// DrinkManaPotion consumes a mana potion if one is held and mana is missing.
func (p *Player) DrinkManaPotion(amount int) bool {
	if p.PotionsMana <= 0 || p.Mana >= p.MaxMana {
		return false
	}
	p.PotionsMana--
	p.Mana = core.Min(p.MaxMana, p.Mana+amount)
	return true
}

// Dead reports whether the hero is out of hp.
func (p *Player) Dead() bool {
	return p.HP <= 0
}
