package crawl

import (
	"math/rand"
	"testing"

	"github.com/mkraev/tui-crawler/internal/config"
	"github.com/mkraev/tui-crawler/internal/core"
)

func TestShieldAbsorbsFirst(t *testing.T) {
	cases := []struct {
		name       string
		hp, shield int
		dmg        int
		wantHP     int
		wantShield int
		wantLost   int
	}{
		{"shield covers all", 100, 20, 15, 100, 5, 0},
		{"shield breaks", 100, 10, 15, 95, 0, 5},
		{"no shield", 100, 0, 15, 85, 0, 15},
		{"exact shield", 100, 15, 15, 100, 0, 0},
		{"overkill", 10, 5, 40, 0, 0, 35},
		{"zero damage", 100, 10, 0, 100, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{HP: tc.hp, MaxHP: 100, Shield: tc.shield}
			lost := p.ApplyDamage(tc.dmg)
			if p.HP != tc.wantHP || p.Shield != tc.wantShield || lost != tc.wantLost {
				t.Errorf("hp=%d shield=%d lost=%d, want hp=%d shield=%d lost=%d",
					p.HP, p.Shield, lost, tc.wantHP, tc.wantShield, tc.wantLost)
			}
		})
	}
}

func TestEnemyHurtAppliesTakenMultiplier(t *testing.T) {
	e := &Enemy{HP: 40, MaxHP: 40, Alive: true}
	e.ResetMultipliers()

	if dealt := e.Hurt(12); dealt != 12 || e.HP != 28 {
		t.Errorf("neutral hit: dealt=%d hp=%d, want 12/28", dealt, e.HP)
	}

	// Guardian aura shaves incoming damage.
	e.MultTaken = 0.66
	if dealt := e.Hurt(10); dealt != 6 {
		t.Errorf("guarded hit dealt %d, want 6", dealt)
	}

	// A hit always lands at least 1.
	e.MultTaken = 0.01
	if dealt := e.Hurt(2); dealt != 1 {
		t.Errorf("chip hit dealt %d, want 1", dealt)
	}
}

func TestAuraMultipliersComposeAndReset(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 42)
	spec := config.AuraSpec{Speed: 1.28, Damage: 1.35, Taken: 0.66}

	e1 := &Enemy{Pos: core.V(10, 10), Alive: true, Aura: &Aura{Name: "a", Spec: spec, Radius: 6.5}, Rank: RankElite}
	e2 := &Enemy{Pos: core.V(11, 10), Alive: true, Aura: &Aura{Name: "b", Spec: spec, Radius: 6.5}, Rank: RankElite}
	target := &Enemy{Pos: core.V(10.5, 10), Alive: true, Speed: 3.2, DamageMin: 4, DamageMax: 4, HP: 40, Radius: 0.4}
	// Park the hero far away so movement and touch rolls are irrelevant.
	w.player.Pos = core.V(80, 50)
	w.enemies = []*Enemy{e1, e2, target}

	w.enemyPhase(1.0 / 60)

	wantSpeed := 1.28 * 1.28
	if diff := target.MultSpeed - wantSpeed; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("MultSpeed = %f, want %f (two auras composed)", target.MultSpeed, wantSpeed)
	}
	if target.MultTaken >= 0.66 {
		t.Errorf("MultTaken = %f, want < 0.66 under two guardian auras", target.MultTaken)
	}

	// Kill the elites; the next tick must reset the target to neutral.
	e1.Alive = false
	e2.Alive = false
	w.enemyPhase(1.0 / 60)
	if target.MultSpeed != 1.0 || target.MultDamage != 1.0 || target.MultTaken != 1.0 {
		t.Errorf("Multipliers did not reset: %f %f %f",
			target.MultSpeed, target.MultDamage, target.MultTaken)
	}
}

func TestEliteDoesNotBuffItself(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 42)
	w.player.Pos = core.V(80, 50)
	e := &Enemy{Pos: core.V(10, 10), Alive: true, Speed: 3.2,
		Aura: &Aura{Name: "haste", Spec: config.AuraSpec{Speed: 1.28, Damage: 1, Taken: 1}, Radius: 6.5}}
	w.enemies = []*Enemy{e}

	w.enemyPhase(1.0 / 60)
	if e.MultSpeed != 1.0 {
		t.Errorf("Elite buffed itself: MultSpeed = %f", e.MultSpeed)
	}
}

// carveFloor forces a small open area around a tile so wall collision does
// not interfere with tests that place entities at fixed positions.
func carveFloor(w *World, tx, ty int) {
	for x := tx - 2; x <= tx+2; x++ {
		for y := ty - 2; y <= ty+2; y++ {
			w.dungeon.tiles[x][y] = TileFloor
		}
	}
}

func TestProjectilePierceBudget(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 7)
	w.player.Pos = core.V(80, 50)
	carveFloor(w, 10, 10)

	mk := func(x float64) *Enemy {
		return &Enemy{Pos: core.V(x, 10), HP: 1000, MaxHP: 1000, Radius: 0.4, Alive: true,
			MultSpeed: 1, MultDamage: 1, MultTaken: 1}
	}
	e1, e2, e3 := mk(10), mk(10.5), mk(11)
	w.enemies = []*Enemy{e1, e2, e3}

	// Pierce 2: hits two enemies, expires before the third.
	w.projectiles = []*Projectile{{
		Pos: core.V(10, 10), Vel: core.Vec2{}, Damage: 10, TTL: 1, Radius: 0.2, Pierce: 2,
	}}
	w.projectilePhase(1.0 / 60)

	hit := 0
	for _, e := range []*Enemy{e1, e2, e3} {
		if e.HP < 1000 {
			hit++
		}
	}
	if hit != 2 {
		t.Errorf("pierce-2 projectile hit %d enemies, want 2", hit)
	}
	if len(w.projectiles) != 0 {
		t.Error("Projectile survived after exhausting pierce")
	}
}

func TestProjectileHitKnocksSurvivorBack(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 8)
	w.player.Pos = core.V(80, 50)
	carveFloor(w, 10, 10)

	e := &Enemy{Pos: core.V(10, 10), HP: 1000, MaxHP: 1000, Radius: 0.4, Alive: true,
		MultSpeed: 1, MultDamage: 1, MultTaken: 1}
	w.enemies = []*Enemy{e}

	// Impact from the left shoves the survivor toward +X.
	w.projectiles = []*Projectile{{
		Pos: core.V(9.7, 10), Damage: 10, TTL: 1, Radius: 0.2, Pierce: 1,
	}}
	w.projectilePhase(1.0 / 60)

	if e.HP >= 1000 {
		t.Fatal("Projectile did not connect")
	}
	if e.Vel.X <= 0 {
		t.Errorf("enemy vel = %+v, want pushed away from the impact (+X)", e.Vel)
	}
	want := w.cfg.Enemy.Knockback
	if diff := e.Vel.Len() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("knockback magnitude = %f, want %f", e.Vel.Len(), want)
	}

	// A killing hit leaves the corpse where it fell.
	dead := &Enemy{Pos: core.V(10, 10), HP: 1, MaxHP: 1, Radius: 0.4, Alive: true,
		MultSpeed: 1, MultDamage: 1, MultTaken: 1}
	w.enemies = []*Enemy{dead}
	w.projectiles = []*Projectile{{
		Pos: core.V(9.7, 10), Damage: 10, TTL: 1, Radius: 0.2, Pierce: 1,
	}}
	w.projectilePhase(1.0 / 60)
	if dead.Vel != (core.Vec2{}) {
		t.Errorf("corpse vel = %+v, want zero", dead.Vel)
	}
}

func TestHostileProjectileIgnoresEnemies(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 7)
	carveFloor(w, 10, 10)
	e := &Enemy{Pos: core.V(10, 10), HP: 50, MaxHP: 50, Radius: 0.4, Alive: true,
		MultSpeed: 1, MultDamage: 1, MultTaken: 1}
	w.enemies = []*Enemy{e}
	w.player.Pos = core.V(10.2, 10)
	w.player.HP = 100
	w.player.MaxHP = 100

	w.projectiles = []*Projectile{{
		Pos: core.V(10.1, 10), Damage: 9, TTL: 1, Radius: 0.2, Hostile: true,
	}}
	w.projectilePhase(1.0 / 60)

	if e.HP != 50 {
		t.Error("Hostile shot damaged an enemy")
	}
	if w.player.HP != 91 {
		t.Errorf("player hp = %d, want 91", w.player.HP)
	}
}

func TestHostileProjectileRespectsIFrames(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 7)
	carveFloor(w, 10, 10)
	w.player.Pos = core.V(10, 10)
	w.player.HP = 100
	w.player.IFrames = 0.2

	w.projectiles = []*Projectile{{
		Pos: core.V(10, 10), Damage: 9, TTL: 1, Radius: 0.2, Hostile: true,
	}}
	w.projectilePhase(1.0 / 60)

	if w.player.HP != 100 {
		t.Errorf("Invulnerable hero took damage: hp = %d", w.player.HP)
	}
}

func TestProjectileDiesOnWall(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 7)
	// Fire straight into the border wall.
	w.projectiles = []*Projectile{{
		Pos: core.V(0.5, 0.5), Vel: core.Vec2{}, Damage: 5, TTL: 1, Radius: 0.1, Pierce: 1,
	}}
	w.projectilePhase(1.0 / 60)
	if len(w.projectiles) != 0 {
		t.Error("Projectile survived inside a wall tile")
	}
}

func TestKillGrantsXPAndCorpseFades(t *testing.T) {
	cfg := testConfig()
	w := newWorld(cfg, ModeEndless, 13)
	w.wave = 4
	e := &Enemy{Pos: core.V(10, 10), HP: 1, MaxHP: 1, Radius: 0.4, Alive: true,
		MultSpeed: 1, MultDamage: 1, MultTaken: 1}
	w.enemies = []*Enemy{e}

	xpBefore := w.player.XP
	w.killEnemy(e)

	if e.Alive {
		t.Fatal("Killed enemy still alive")
	}
	if e.FadeTicks != cfg.Gameplay.CorpseFadeTicks {
		t.Errorf("FadeTicks = %d, want %d", e.FadeTicks, cfg.Gameplay.CorpseFadeTicks)
	}
	if w.kills != 1 {
		t.Errorf("kills = %d, want 1", w.kills)
	}
	wantXP := cfg.Progression.XPBase + w.wave
	if w.player.XP != xpBefore+wantXP {
		t.Errorf("xp gain = %d, want %d", w.player.XP-xpBefore, wantXP)
	}

	// The corpse lingers for exactly FadeTicks enemy phases. Park the hero
	// far away so nothing else interferes.
	w.player.Pos = core.V(80, 50)
	for i := 0; i < cfg.Gameplay.CorpseFadeTicks-1; i++ {
		w.enemyPhase(1.0 / 60)
	}
	if len(w.enemies) != 1 {
		t.Fatal("Corpse removed early")
	}
	w.enemyPhase(1.0 / 60)
	if len(w.enemies) != 0 {
		t.Error("Corpse survived past its fade window")
	}
}

func TestBossKillSetsDefeatedFlag(t *testing.T) {
	w := newWorld(testConfig(), ModeCampaign, 13)
	boss := &Enemy{Pos: core.V(10, 10), HP: 1, MaxHP: 1, Rank: RankBoss, Alive: true,
		MultSpeed: 1, MultDamage: 1, MultTaken: 1}
	w.enemies = []*Enemy{boss}
	w.killEnemy(boss)
	if !w.bossDefeated {
		t.Error("Boss death did not set the defeated flag")
	}
}

func TestRollDamageScalesWithAura(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := &Enemy{DamageMin: 10, DamageMax: 10, MultDamage: 1.35}
	if got := e.RollDamage(rng); got != 13 {
		t.Errorf("RollDamage = %d, want 13 (10 x 1.35 truncated)", got)
	}
}
