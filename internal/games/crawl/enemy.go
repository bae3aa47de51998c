package crawl

import (
	"math/rand"

	"github.com/mkraev/tui-crawler/internal/config"
	"github.com/mkraev/tui-crawler/internal/core"
)

// Rank separates ordinary enemies from elites and the boss.
// Behavior differences hang off the optional components below, not off
// subtypes: an elite is an enemy with an Aura, the boss is an enemy with a
// RangedAttack and RankBoss. New variants are data, not new types.
type Rank int

const (
	RankNormal Rank = iota
	RankElite
	RankBoss
)

// Kind is the cosmetic/behavioral variant tag for ordinary enemies.
type Kind int

const (
	KindWalker  Kind = iota // slow melee chaser
	KindLurker              // melee, spikier sprite
	KindCreep               // melee, low profile
	KindSpitter             // ranged minion, carries a RangedAttack
)

// KindCount is the number of selectable minion kinds.
const KindCount = 4

// Aura is the area effect an elite projects onto every other enemy within
// its radius. Factors are recomputed onto targets fresh each tick.
type Aura struct {
	Name   string
	Spec   config.AuraSpec
	Radius float64
}

// RangedAttack is the cooldown state machine for enemies that shoot.
type RangedAttack struct {
	Cooldown   float64 // Time until the next shot
	CDMin      float64 // Cooldown reroll bounds after each shot
	CDMax      float64
	ShotSpeed  float64
	ShotTTL    float64
	ShotRadius float64
}

// Enemy is a single hostile entity. All variants share this struct; the
// optional Aura and Ranged components select elite and shooting behavior.
type Enemy struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64

	HP        int
	MaxHP     int
	DamageMin int
	DamageMax int
	Speed     float64

	Kind Kind
	Rank Rank

	Aura   *Aura
	Ranged *RangedAttack

	Alive bool
	// FadeTicks counts down once the enemy dies; the corpse is removed when
	// it reaches zero, staggering cleanup over a few frames instead of
	// dropping every body in the same tick.
	FadeTicks int

	// Derived multipliers, reset to 1.0 at the start of every tick before
	// aura propagation so auras never accumulate across frames.
	MultSpeed  float64
	MultDamage float64
	MultTaken  float64
}

// ResetMultipliers restores the per-tick aura multipliers to neutral.
func (e *Enemy) ResetMultipliers() {
	e.MultSpeed = 1.0
	e.MultDamage = 1.0
	e.MultTaken = 1.0
}

// RollDamage rolls a damage value in [DamageMin, DamageMax] scaled by the
// current aura damage multiplier.
func (e *Enemy) RollDamage(rng *rand.Rand) int {
	span := e.DamageMax - e.DamageMin
	if span < 0 {
		span = 0
	}
	base := e.DamageMin + rng.Intn(span+1)
	return int(float64(base) * e.MultDamage)
}

// Buffed reports whether any elite aura currently affects this enemy.
func (e *Enemy) Buffed() bool {
	return e.MultSpeed > 1.0 || e.MultDamage > 1.0 || e.MultTaken < 1.0
}

// Hurt applies damage scaled by the damage-taken multiplier (guardian auras
// reduce it) and returns the amount actually dealt. A hit always deals at
// least 1 hp.
func (e *Enemy) Hurt(dmg int) int {
	dealt := int(float64(dmg) * e.MultTaken)
	if dealt < 1 {
		dealt = 1
	}
	e.HP -= dealt
	return dealt
}
