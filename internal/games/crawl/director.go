package crawl

import (
	"math"
	"sort"

	"github.com/mkraev/tui-crawler/internal/core"
)

// directorPhase is the spawner: a periodic wave timer that decides what
// enters the dungeon. The boss bypasses the timer and appears the moment
// the run reaches the boss depth of a campaign, once per run: a defeated
// boss does not return when the campaign wraps past its depth.
func (w *World) directorPhase(dt float64) {
	if w.mode == ModeCampaign && w.depth == w.cfg.Boss.Depth && !w.bossSpawned && !w.bossDefeated {
		w.spawnBoss()
		w.bossSpawned = true
		w.effects.BossAppeared()
	}

	w.spawnTimer -= dt
	if w.spawnTimer > 0 {
		return
	}
	w.spawnTimer = w.cfg.Spawner.Interval
	w.runWave()
	w.wave++
}

// runWave spawns this wave's batch. The alive-enemy cap is a hard gate:
// once the dungeon is saturated nothing spawns, the timer just keeps
// ticking.
func (w *World) runWave() {
	sc := w.cfg.Spawner
	maxAlive := w.cfg.Difficulty.MaxEnemies

	if w.aliveEnemies() < maxAlive {
		if w.rng.Float64() < w.cfg.Elite.PackChance {
			w.spawnElitePack()
		} else {
			// Ordinary waves trickle in at most two at a time.
			n := core.Min(2, maxAlive-w.aliveEnemies())
			for i := 0; i < n; i++ {
				pos, ok := w.spawnPos()
				if !ok {
					break
				}
				w.enemies = append(w.enemies, w.makeMinion(pos))
			}
		}
	}

	// The director occasionally drops a freebie on the floor.
	if w.rng.Float64() < sc.PickupChance {
		pos, ok := w.spawnPos()
		if ok {
			l := &Loot{Pos: pos, TTL: w.cfg.Loot.TTL}
			switch w.rng.Intn(4) {
			case 0:
				l.PotionHP = true
			case 1:
				l.PotionMana = true
			case 2:
				l.DamageBoost = true
			default:
				l.ShieldBoost = true
			}
			w.loot = append(w.loot, l)
		}
	}
}

// spawnElitePack places one aura-bearing elite with a ring of minions
// around it. The pack shares the elite's spawn point so the aura covers
// everyone from the first tick.
func (w *World) spawnElitePack() {
	center, ok := w.spawnPos()
	if !ok {
		return
	}
	el := w.cfg.Elite
	maxAlive := w.cfg.Difficulty.MaxEnemies

	w.enemies = append(w.enemies, w.makeElite(center))

	n := el.PackSizeMin + w.rng.Intn(el.PackSizeMax-el.PackSizeMin+1)
	for i := 0; i < n && w.aliveEnemies() < maxAlive; i++ {
		ang := w.rng.Float64() * 2 * math.Pi
		dist := el.RingMin + w.rng.Float64()*(el.RingMax-el.RingMin)
		pos := center.Add(core.V(math.Cos(ang)*dist, math.Sin(ang)*dist))
		if w.dungeon.IsSolid(pos) {
			pos = center
		}
		w.enemies = append(w.enemies, w.makeMinion(pos))
	}
}

// makeMinion builds a rank-and-file enemy with wave and difficulty scaling
// baked into its stats at spawn time.
func (w *World) makeMinion(pos core.Vec2) *Enemy {
	ec := w.cfg.Enemy
	diff := w.cfg.Difficulty
	scale := w.waveScale()

	kind := Kind(w.rng.Intn(KindCount))
	hp := int(float64(ec.BaseHP) * scale * diff.EnemyHP)
	e := &Enemy{
		Pos:       pos,
		Radius:    ec.Radius,
		HP:        hp,
		MaxHP:     hp,
		DamageMin: int(float64(ec.BaseDamageMin) * scale * diff.EnemyDamage),
		DamageMax: int(float64(ec.BaseDamageMax) * scale * diff.EnemyDamage),
		Speed:     ec.Speed * diff.EnemySpeed,
		Kind:      kind,
		Rank:      RankNormal,
		Alive:     true,
	}
	if e.DamageMin < 1 {
		e.DamageMin = 1
	}
	if e.DamageMax < e.DamageMin {
		e.DamageMax = e.DamageMin
	}
	if kind == KindSpitter {
		e.Ranged = &RangedAttack{
			Cooldown:   ec.SpitterCDMin + w.rng.Float64()*(ec.SpitterCDMax-ec.SpitterCDMin),
			CDMin:      ec.SpitterCDMin,
			CDMax:      ec.SpitterCDMax,
			ShotSpeed:  ec.SpitterShotSpeed,
			ShotTTL:    ec.SpitterShotTTL,
			ShotRadius: 0.15,
		}
	}
	return e
}

// makeElite upgrades minion stats by the elite multipliers and attaches a
// randomly chosen aura. Aura names are sorted before the roll so the pick
// is stable for a given seed.
func (w *World) makeElite(pos core.Vec2) *Enemy {
	el := w.cfg.Elite
	e := w.makeMinion(pos)
	if e.Kind == KindSpitter {
		e.Kind = KindWalker
		e.Ranged = nil
	}
	e.Rank = RankElite
	e.Radius = el.Radius
	e.HP = int(float64(e.HP) * el.HPMult)
	e.MaxHP = e.HP
	e.DamageMin = int(float64(e.DamageMin) * el.DamageMult)
	e.DamageMax = int(float64(e.DamageMax) * el.DamageMult)
	e.Speed *= el.SpeedMult

	names := make([]string, 0, len(el.Auras))
	for name := range el.Auras {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 0 {
		name := names[w.rng.Intn(len(names))]
		e.Aura = &Aura{Name: name, Spec: el.Auras[name], Radius: el.AuraRadius}
	}
	return e
}

// spawnBoss drops the boss at the far end of the dungeon, by the stairs it
// guards. Difficulty scales its hp and damage like any other spawn, but
// wave scaling does not apply.
func (w *World) spawnBoss() {
	bc := w.cfg.Boss
	diff := w.cfg.Difficulty
	pos := w.dungeon.StairsPos().Add(core.V(0, -2))
	if w.dungeon.IsSolid(pos) {
		pos = w.dungeon.StairsPos()
	}
	hp := int(float64(bc.HP) * diff.EnemyHP)
	w.enemies = append(w.enemies, &Enemy{
		Pos:       pos,
		Radius:    bc.Radius,
		HP:        hp,
		MaxHP:     hp,
		DamageMin: int(float64(bc.DamageMin) * diff.EnemyDamage),
		DamageMax: int(float64(bc.DamageMax) * diff.EnemyDamage),
		Speed:     w.cfg.Player.Speed * bc.SpeedFactor * diff.EnemySpeed,
		Kind:      KindWalker,
		Rank:      RankBoss,
		Alive:     true,
		Ranged: &RangedAttack{
			Cooldown:   bc.ShotCDMin,
			CDMin:      bc.ShotCDMin,
			CDMax:      bc.ShotCDMax,
			ShotSpeed:  bc.ShotSpeed,
			ShotTTL:    bc.ShotTTL,
			ShotRadius: 0.2,
		},
	})
}

// spawnPos rejection-samples a floor tile near the player but outside the
// minimum standoff distance. After MaxTries failures it falls back to the
// center of a random room, which always exists and is always floor.
func (w *World) spawnPos() (core.Vec2, bool) {
	sc := w.cfg.Spawner
	p := w.player.Pos
	for i := 0; i < sc.MaxTries; i++ {
		tx := int(p.X) + w.rng.Intn(2*sc.NearRadiusX+1) - sc.NearRadiusX
		ty := int(p.Y) + w.rng.Intn(2*sc.NearRadiusY+1) - sc.NearRadiusY
		if w.dungeon.TileAt(tx, ty) != TileFloor {
			continue
		}
		pos := core.V(float64(tx)+0.5, float64(ty)+0.5)
		if pos.Dist(p) < sc.MinPlayerDist {
			continue
		}
		return pos, true
	}
	if len(w.dungeon.Rooms) == 0 {
		return core.Vec2{}, false
	}
	room := w.dungeon.Rooms[w.rng.Intn(len(w.dungeon.Rooms))]
	cx, cy := room.Center()
	return core.V(float64(cx)+0.5, float64(cy)+0.5), true
}
