package crawl

import (
	"strconv"

	"github.com/mkraev/tui-crawler/internal/core"
)

// spitterRange is how close (in tiles) a ranged enemy must be before it
// starts shooting.
const spitterRange = 14.0

// step advances the simulation by exactly one fixed tick. Pass order is
// load-bearing: each pass stages the projectiles and loot it produces, and
// the stage is merged only after the pass completes, so nothing reacts to
// an entity created in the same pass.
func (w *World) step(in core.InputFrame, dt float64) {
	w.ticks++

	w.playerPhase(in, dt)
	w.mergePending()

	w.enemyPhase(dt)
	w.mergePending()

	w.projectilePhase(dt)
	w.lootPhase(dt)
	w.particles.update(dt)
	w.directorPhase(dt)

	if w.player.Dead() && !w.gameOver {
		if w.respawn.OnDeath(&w.player) {
			return
		}
		w.gameOver = true
		if w.deathCause == "" {
			w.deathCause = "slain"
		}
	}
}

func (w *World) playerPhase(in core.InputFrame, dt float64) {
	p := &w.player
	p.TickTimers(dt)

	if in.Has(core.ActionPotionHP) {
		p.DrinkHPPotion(w.cfg.Potions.Heal)
	}
	if in.Has(core.ActionPotionMana) {
		p.DrinkManaPotion(w.cfg.Potions.Mana)
	}

	move := in.Move.Normalized()
	if !move.IsZero() {
		p.Facing = move
	}

	if in.Has(core.ActionDash) && p.DashCD <= 0 && p.DashTimer <= 0 {
		p.DashTimer = w.cfg.Dash.Duration
		p.DashCD = w.cfg.Dash.Cooldown
		if p.IFrames < w.cfg.Dash.IFrames {
			p.IFrames = w.cfg.Dash.IFrames
		}
		p.DashDir = p.Facing
	}

	// Dash overrides normal steering for its whole duration.
	if p.DashTimer > 0 {
		p.DashTimer -= dt
		p.Vel = p.DashDir.Scale(w.cfg.Dash.Speed)
	} else {
		p.Vel = move.Scale(w.cfg.Player.Speed)
	}
	w.moveWithWalls(&p.Pos, p.Vel.Scale(dt), p.Radius)
	w.clampToBounds(&p.Pos, p.Radius)

	if in.Has(core.ActionAttack) && p.BasicCD <= 0 {
		w.fireBasic(in.Aim)
	}
	if in.Has(core.ActionPower) && p.PowerCD <= 0 && p.Mana >= w.cfg.Combat.PowerManaCost {
		w.firePower(in.Aim)
	}

	w.dungeon.MarkSeen(p.Pos, w.cfg.Dungeon.RevealRadius)

	// Stairs transition. On the boss depth of a campaign the stairs stay
	// locked until the boss is down.
	if p.Pos.Dist(w.dungeon.StairsPos()) <= w.cfg.Dungeon.StairsRadius {
		locked := w.mode == ModeCampaign && w.depth == w.cfg.Boss.Depth && !w.bossDefeated
		if !locked {
			w.descend()
		}
	}
}

// aimDir resolves the firing direction: an explicit aim vector wins,
// otherwise the nearest living enemy is auto-targeted, otherwise the hero
// fires the way they are facing.
func (w *World) aimDir(aim core.Vec2) core.Vec2 {
	if !aim.IsZero() {
		return aim.Normalized()
	}
	var nearest *Enemy
	best := 0.0
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}
		d := e.Pos.Sub(w.player.Pos).LenSq()
		if nearest == nil || d < best {
			nearest, best = e, d
		}
	}
	if nearest != nil {
		return nearest.Pos.Sub(w.player.Pos).Normalized()
	}
	return w.player.Facing
}

func (w *World) fireBasic(aim core.Vec2) {
	p := &w.player
	c := w.cfg.Combat
	dmg := int(float64(p.Weapon.RollDamage(w.rng)) * p.DamageMult)
	w.pendingProjectiles = append(w.pendingProjectiles, &Projectile{
		Pos:    p.Pos,
		Vel:    w.aimDir(aim).Scale(c.ProjectileSpeed),
		Damage: dmg,
		TTL:    c.BasicTTL,
		Radius: c.BasicRadius,
		Pierce: c.BasicPierce,
	})
	p.BasicCD = c.BasicCooldown
}

func (w *World) firePower(aim core.Vec2) {
	p := &w.player
	c := w.cfg.Combat
	p.Mana -= c.PowerManaCost
	span := c.PowerDamageMax - c.PowerDamageMin
	if span < 0 {
		span = 0
	}
	dmg := int(float64(c.PowerDamageMin+w.rng.Intn(span+1)) * p.DamageMult)
	w.pendingProjectiles = append(w.pendingProjectiles, &Projectile{
		Pos:    p.Pos,
		Vel:    w.aimDir(aim).Scale(c.ProjectileSpeed),
		Damage: dmg,
		TTL:    c.PowerTTL,
		Radius: c.PowerRadius,
		Pierce: c.PowerPierce,
	})
	p.PowerCD = c.PowerCooldown
}

func (w *World) enemyPhase(dt float64) {
	// 1. Multipliers back to neutral, then aura propagation. Overlapping
	// auras compose multiplicatively; an elite does not buff itself.
	for _, e := range w.enemies {
		if e.Alive {
			e.ResetMultipliers()
		}
	}
	for _, src := range w.enemies {
		if !src.Alive || src.Aura == nil {
			continue
		}
		r2 := src.Aura.Radius * src.Aura.Radius
		for _, e := range w.enemies {
			if e == src || !e.Alive {
				continue
			}
			if e.Pos.Sub(src.Pos).LenSq() <= r2 {
				e.MultSpeed *= src.Aura.Spec.Speed
				e.MultDamage *= src.Aura.Spec.Damage
				e.MultTaken *= src.Aura.Spec.Taken
			}
		}
	}

	ec := w.cfg.Enemy
	p := &w.player
	for _, e := range w.enemies {
		if !e.Alive {
			continue
		}

		// Steering: exponential smoothing toward the player with a bit of
		// seeded jitter so packs do not move in lockstep.
		desired := p.Pos.Sub(e.Pos).Normalized().Scale(e.Speed * e.MultSpeed)
		desired.X += (w.rng.Float64()*2 - 1) * ec.Jitter
		desired.Y += (w.rng.Float64()*2 - 1) * ec.Jitter
		e.Vel = e.Vel.Add(desired.Sub(e.Vel).Scale(ec.SteerSmoothing))

		next := e.Pos.Add(e.Vel.Scale(dt))
		if w.dungeon.IsSolid(core.V(next.X, e.Pos.Y)) {
			e.Vel.X *= -0.4
		} else {
			e.Pos.X = next.X
		}
		if w.dungeon.IsSolid(core.V(e.Pos.X, next.Y)) {
			e.Vel.Y *= -0.4
		} else {
			e.Pos.Y = next.Y
		}
		w.clampToBounds(&e.Pos, e.Radius)

		if e.Ranged != nil {
			e.Ranged.Cooldown -= dt
			if e.Ranged.Cooldown <= 0 && e.Pos.Dist(p.Pos) <= spitterRange {
				w.pendingProjectiles = append(w.pendingProjectiles, &Projectile{
					Pos:     e.Pos,
					Vel:     p.Pos.Sub(e.Pos).Normalized().Scale(e.Ranged.ShotSpeed),
					Damage:  e.RollDamage(w.rng),
					TTL:     e.Ranged.ShotTTL,
					Radius:  e.Ranged.ShotRadius,
					Hostile: true,
				})
				e.Ranged.Cooldown = e.Ranged.CDMin + w.rng.Float64()*(e.Ranged.CDMax-e.Ranged.CDMin)
			}
		}

		// Touch damage: colliding enemies roll a small per-tick chance so a
		// swarm chews steadily instead of bursting every frame.
		if p.IFrames <= 0 && e.Pos.Dist(p.Pos) <= e.Radius+p.Radius {
			if w.rng.Float64() < ec.TouchChance {
				dmg := e.RollDamage(w.rng)
				lost := p.ApplyDamage(dmg)
				w.effects.PlayerHurt(lost)
				if p.Dead() {
					w.deathCause = "mauled at depth " + strconv.Itoa(w.depth)
				}
				// Knock the hero back a step.
				push := p.Pos.Sub(e.Pos).Normalized().Scale(2.5)
				w.moveWithWalls(&p.Pos, push.Scale(dt*10), p.Radius)
			}
		}
	}

	// Corpse fade. Dead enemies linger for a fixed tick count before being
	// removed, so removal is deterministic for a given seed.
	alive := w.enemies[:0]
	for _, e := range w.enemies {
		if !e.Alive {
			e.FadeTicks--
			if e.FadeTicks <= 0 {
				continue
			}
		}
		alive = append(alive, e)
	}
	w.enemies = alive
}

func (w *World) projectilePhase(dt float64) {
	p := &w.player
	kept := w.projectiles[:0]
	for _, pr := range w.projectiles {
		pr.TTL -= dt
		pr.Pos = pr.Pos.Add(pr.Vel.Scale(dt))
		if pr.Expired() || w.dungeon.IsSolid(pr.Pos) {
			continue
		}

		if pr.Hostile {
			if p.IFrames <= 0 && pr.Pos.Dist(p.Pos) <= pr.Radius+p.Radius {
				lost := p.ApplyDamage(pr.Damage)
				w.effects.PlayerHurt(lost)
				w.particles.burst(p.Pos, 3, '*', core.ColorBrightRed, w.rng)
				if p.Dead() {
					w.deathCause = "shot down at depth " + strconv.Itoa(w.depth)
				}
				continue
			}
			kept = append(kept, pr)
			continue
		}

		expired := false
		for _, e := range w.enemies {
			if !e.Alive {
				continue
			}
			if pr.Pos.Dist(e.Pos) <= pr.Radius+e.Radius {
				dealt := e.Hurt(pr.Damage)
				w.effects.HitLanded(dealt)
				w.particles.burst(e.Pos, 2, '·', core.ColorBrightYellow, w.rng)
				if e.HP <= 0 {
					w.killEnemy(e)
				} else {
					// Survivors are shoved away from the impact point.
					push := e.Pos.Sub(pr.Pos).Normalized().Scale(w.cfg.Enemy.Knockback)
					e.Vel = e.Vel.Add(push)
				}
				pr.Pierce--
				if pr.Pierce <= 0 {
					expired = true
					break
				}
			}
		}
		if !expired {
			kept = append(kept, pr)
		}
	}
	w.projectiles = kept
}

// killEnemy marks the enemy dead, grants XP, and stages drops. The corpse
// stays in the list fading for a few ticks; see enemyPhase.
func (w *World) killEnemy(e *Enemy) {
	e.Alive = false
	e.HP = 0
	e.FadeTicks = w.cfg.Gameplay.CorpseFadeTicks
	w.kills++

	xp := w.cfg.Progression.XPBase + w.wave
	switch e.Rank {
	case RankElite:
		xp *= 3
	case RankBoss:
		xp *= 20
		w.bossDefeated = true
	}
	before := w.player.Level
	w.player.GainXP(xp, w.cfg.Progression, w.cfg.Player)
	if w.player.Level > before {
		w.effects.LevelUp(w.player.Level)
	}

	w.effects.EnemyDied(e.Rank)
	w.particles.burst(e.Pos, 5, 'x', core.ColorRed, w.rng)
	w.rollDrops(e)
}

// rollDrops rolls each drop table entry independently and stages every hit
// as its own ground item near the corpse.
func (w *World) rollDrops(e *Enemy) {
	lc := w.cfg.Loot
	at := func() core.Vec2 {
		return e.Pos.Add(core.V(w.rng.Float64()-0.5, w.rng.Float64()-0.5))
	}
	stage := func(l *Loot) {
		l.TTL = lc.TTL
		w.pendingLoot = append(w.pendingLoot, l)
	}

	lo, hi := lc.GoldMin, lc.GoldMax
	if e.Rank != RankNormal {
		lo, hi = lc.EliteGoldMin, lc.EliteGoldMax
		// Elites always pay out: a bonus purse plus one buff pickup on
		// top of the regular rolls below.
		stage(&Loot{Pos: at(), Gold: lo + w.rng.Intn(hi-lo+1)})
		if w.rng.Float64() < 0.5 {
			stage(&Loot{Pos: at(), DamageBoost: true})
		} else {
			stage(&Loot{Pos: at(), ShieldBoost: true})
		}
	}
	if w.rng.Float64() < lc.GoldChance {
		stage(&Loot{Pos: at(), Gold: lo + w.rng.Intn(hi-lo+1)})
	}
	if w.rng.Float64() < lc.PotionChance {
		if w.rng.Float64() < 0.5 {
			stage(&Loot{Pos: at(), PotionHP: true})
		} else {
			stage(&Loot{Pos: at(), PotionMana: true})
		}
	}
	if w.rng.Float64() < lc.WeaponChance {
		wep := w.rollWeapon()
		stage(&Loot{Pos: at(), Weapon: &wep})
	}
	if w.rng.Float64() < lc.DamagePickupChance {
		stage(&Loot{Pos: at(), DamageBoost: true})
	}
	if w.rng.Float64() < lc.ShieldPickupChance {
		stage(&Loot{Pos: at(), ShieldBoost: true})
	}
}

var weaponNames = []string{"Iron Sword", "Bone Cleaver", "Warped Blade", "Ember Fang", "Gloom Edge"}

// rollWeapon generates a drop that scales with depth and wave, so late
// finds beat the starting dagger.
func (w *World) rollWeapon() Weapon {
	min := 6 + w.depth*2 + w.rng.Intn(4)
	return Weapon{
		Name:        weaponNames[w.rng.Intn(len(weaponNames))],
		DamageMin:   min,
		DamageMax:   min + 4 + w.rng.Intn(5),
		AttackSpeed: 2.5,
	}
}

func (w *World) lootPhase(dt float64) {
	p := &w.player
	rules := lootRules{
		boostMult:    w.cfg.Loot.DamageBoostMult,
		boostTime:    w.cfg.Loot.DamageBoostTime,
		shieldPoints: w.cfg.Loot.ShieldPoints,
	}
	kept := w.loot[:0]
	for _, l := range w.loot {
		l.TTL -= dt
		if l.Consumed() {
			continue
		}
		if l.Pos.Dist(p.Pos) <= w.cfg.Loot.PickupRadius+p.Radius {
			l.ApplyTo(p, rules)
			w.effects.LootPicked()
			continue
		}
		kept = append(kept, l)
	}
	w.loot = kept
}

// moveWithWalls applies a displacement axis by axis so the mover slides
// along walls instead of sticking to them.
func (w *World) moveWithWalls(pos *core.Vec2, delta core.Vec2, radius float64) {
	nx := pos.X + delta.X
	if !w.solidAround(core.V(nx, pos.Y), radius) {
		pos.X = nx
	}
	ny := pos.Y + delta.Y
	if !w.solidAround(core.V(pos.X, ny), radius) {
		pos.Y = ny
	}
}

// solidAround tests the four corners of the mover's bounding square.
func (w *World) solidAround(pos core.Vec2, radius float64) bool {
	return w.dungeon.IsSolid(core.V(pos.X-radius, pos.Y-radius)) ||
		w.dungeon.IsSolid(core.V(pos.X+radius, pos.Y-radius)) ||
		w.dungeon.IsSolid(core.V(pos.X-radius, pos.Y+radius)) ||
		w.dungeon.IsSolid(core.V(pos.X+radius, pos.Y+radius))
}

func (w *World) clampToBounds(pos *core.Vec2, radius float64) {
	pos.X = core.ClampF(pos.X, radius, float64(w.dungeon.Width)-radius)
	pos.Y = core.ClampF(pos.Y, radius, float64(w.dungeon.Height)-radius)
}
