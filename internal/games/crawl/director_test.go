package crawl

import (
	"testing"

	"github.com/mkraev/tui-crawler/internal/core"
)

func TestSpawnRespectsEnemyCap(t *testing.T) {
	cfg := testConfig()
	w := newWorld(cfg, ModeEndless, 31)

	// Saturate the dungeon.
	for i := 0; i < cfg.Difficulty.MaxEnemies; i++ {
		w.enemies = append(w.enemies, w.makeMinion(core.V(40, 30)))
	}
	before := w.aliveEnemies()

	w.runWave()
	if got := w.aliveEnemies(); got != before {
		t.Errorf("alive = %d after wave at cap, want %d", got, before)
	}
}

func TestOrdinaryWaveBatchCappedAtTwo(t *testing.T) {
	cfg := testConfig()
	cfg.Elite.PackChance = 0
	w := newWorld(cfg, ModeEndless, 41)

	for wave := 1; wave <= 12; wave++ {
		w.enemies = w.enemies[:0]
		w.wave = wave
		w.runWave()
		if got := w.aliveEnemies(); got > 2 {
			t.Fatalf("wave %d spawned %d ordinary enemies in one batch, want at most 2", wave, got)
		}
	}
}

func TestBossDoesNotRespawnAfterCampaignWrap(t *testing.T) {
	cfg := testConfig()
	w := newWorld(cfg, ModeCampaign, 42)
	w.depth = cfg.Dungeon.Depths
	w.bossDefeated = true

	// Wrap back to depth 1, then descend to the boss depth again. The
	// second visit must not produce a second boss.
	w.descend()
	if w.depth != 1 {
		t.Fatalf("depth = %d after the wrap, want 1", w.depth)
	}
	for w.depth != cfg.Boss.Depth {
		w.descend()
	}
	for i := 0; i < 60; i++ {
		w.directorPhase(1.0 / 60)
	}
	for _, e := range w.enemies {
		if e.Rank == RankBoss {
			t.Fatal("Defeated boss respawned after the campaign wrapped")
		}
	}
}

func TestWaveTimerFires(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 32)
	wave := w.wave

	ticks := int(w.cfg.Spawner.Interval*60) + 2
	for i := 0; i < ticks; i++ {
		w.directorPhase(1.0 / 60)
	}
	if w.wave != wave+1 {
		t.Errorf("wave = %d, want %d after one interval", w.wave, wave+1)
	}
}

func TestBossSpawnsExactlyOnce(t *testing.T) {
	cfg := testConfig()
	w := newWorld(cfg, ModeCampaign, 33)
	w.depth = cfg.Boss.Depth

	countBosses := func() int {
		n := 0
		for _, e := range w.enemies {
			if e.Rank == RankBoss {
				n++
			}
		}
		return n
	}

	for i := 0; i < 120; i++ {
		w.directorPhase(1.0 / 60)
	}
	if got := countBosses(); got != 1 {
		t.Errorf("bosses = %d, want exactly 1", got)
	}
	if !w.bossSpawned {
		t.Error("bossSpawned flag not set")
	}
}

func TestNoBossInEndless(t *testing.T) {
	cfg := testConfig()
	w := newWorld(cfg, ModeEndless, 34)
	w.depth = cfg.Boss.Depth

	for i := 0; i < 60; i++ {
		w.directorPhase(1.0 / 60)
	}
	for _, e := range w.enemies {
		if e.Rank == RankBoss {
			t.Fatal("Boss spawned in endless mode")
		}
	}
}

func TestSpawnPosOnFloorAwayFromPlayer(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 35)
	for i := 0; i < 50; i++ {
		pos, ok := w.spawnPos()
		if !ok {
			t.Fatal("spawnPos failed with rooms available")
		}
		if w.dungeon.IsSolid(pos) {
			t.Fatalf("spawn at %+v is inside a wall", pos)
		}
	}
}

func TestSpawnPosFallsBackToRoomCenter(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 36)
	// Strand the player outside the near-spawn window so sampling around
	// them can never find a floor tile.
	w.player.Pos = core.V(-100, -100)
	pos, ok := w.spawnPos()
	if !ok {
		t.Fatal("Fallback did not produce a position")
	}
	if w.dungeon.IsSolid(pos) {
		t.Errorf("Fallback position %+v is inside a wall", pos)
	}
}

func TestElitePackCarriesAura(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 37)
	w.spawnElitePack()

	var elite *Enemy
	minions := 0
	for _, e := range w.enemies {
		if e.Rank == RankElite {
			elite = e
		} else {
			minions++
		}
	}
	if elite == nil {
		t.Fatal("Pack spawned without an elite")
	}
	if elite.Aura == nil {
		t.Fatal("Elite has no aura")
	}
	if _, ok := w.cfg.Elite.Auras[elite.Aura.Name]; !ok {
		t.Errorf("aura %q not in the configured set", elite.Aura.Name)
	}
	if minions < w.cfg.Elite.PackSizeMin {
		t.Errorf("minions = %d, want at least %d", minions, w.cfg.Elite.PackSizeMin)
	}
	if elite.MaxHP <= w.cfg.Enemy.BaseHP {
		t.Errorf("elite hp %d not boosted above base %d", elite.MaxHP, w.cfg.Enemy.BaseHP)
	}
}

func TestWaveScalingCompounds(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 38)

	w.wave = 1
	m1 := w.makeMinion(core.V(40, 30))
	w.wave = 5
	m5 := w.makeMinion(core.V(40, 30))
	if m5.MaxHP <= m1.MaxHP {
		t.Errorf("wave 5 hp %d not above wave 1 hp %d", m5.MaxHP, m1.MaxHP)
	}

	w.wave = 1
	w.depth = 3
	deep := w.makeMinion(core.V(40, 30))
	if deep.MaxHP <= m1.MaxHP {
		t.Errorf("depth 3 hp %d not above depth 1 hp %d", deep.MaxHP, m1.MaxHP)
	}
}

func TestDifficultyMultipliersApply(t *testing.T) {
	easy := testConfig()
	easy.Difficulty.EnemyHP = 0.5
	hard := testConfig()
	hard.Difficulty.EnemyHP = 2.0

	we := newWorld(easy, ModeEndless, 39)
	wh := newWorld(hard, ModeEndless, 39)
	me := we.makeMinion(core.V(40, 30))
	mh := wh.makeMinion(core.V(40, 30))
	if me.MaxHP >= mh.MaxHP {
		t.Errorf("easy hp %d >= hard hp %d", me.MaxHP, mh.MaxHP)
	}
}

func TestSpitterStagesHostileShot(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 40)
	carveFloor(w, 10, 10)
	w.player.Pos = core.V(12, 10)
	sp := &Enemy{
		Pos: core.V(10, 10), Radius: 0.4, HP: 40, MaxHP: 40, Kind: KindSpitter, Alive: true,
		Ranged: &RangedAttack{Cooldown: 0, CDMin: 1.2, CDMax: 2.0, ShotSpeed: 9.4, ShotTTL: 1.6, ShotRadius: 0.15},
	}
	w.enemies = []*Enemy{sp}

	w.enemyPhase(1.0 / 60)
	if len(w.pendingProjectiles) != 1 {
		t.Fatalf("pending shots = %d, want 1", len(w.pendingProjectiles))
	}
	pr := w.pendingProjectiles[0]
	if !pr.Hostile {
		t.Error("Spitter shot is not hostile")
	}
	if sp.Ranged.Cooldown < sp.Ranged.CDMin || sp.Ranged.Cooldown > sp.Ranged.CDMax {
		t.Errorf("cooldown %f outside [%f,%f]", sp.Ranged.Cooldown, sp.Ranged.CDMin, sp.Ranged.CDMax)
	}
}
