package crawl

import (
	"testing"

	"github.com/mkraev/tui-crawler/internal/config"
	"github.com/mkraev/tui-crawler/internal/core"
)

func testConfig() config.CrawlConfig {
	return config.DefaultCrawlConfig()
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script must stay in lockstep.
	cfg := core.RuntimeConfig{
		Seed:    12345,
		ScreenW: 80,
		ScreenH: 24,
	}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		input.Move = core.V(1, 0)
		if i%60 == 0 {
			input.Set(core.ActionAttack)
		}
		if i == 120 {
			input.Set(core.ActionDash)
		}
		if i%200 == 50 {
			input.Move = core.V(0, 1)
		}

		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	g1 := New()
	g1.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	g2 := New()
	g2.Reset(core.RuntimeConfig{Seed: 2, ScreenW: 80, ScreenH: 24})

	if g1.world.dungeon.Rooms[0] == g2.world.dungeon.Rooms[0] &&
		len(g1.world.dungeon.Rooms) == len(g2.world.dungeon.Rooms) {
		t.Error("Different seeds produced identical first rooms")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	res := g.Step(input)
	if !res.State.Paused {
		t.Fatal("Expected paused state")
	}
	before := g.Snapshot()

	input.Clear()
	input.Move = core.V(1, 0)
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("Simulation advanced while paused: %+v vs %+v", before, after)
	}
}

func TestDescendResetsTransientState(t *testing.T) {
	w := newWorld(testConfig(), ModeEndless, 99)
	w.enemies = append(w.enemies, w.makeMinion(w.player.Pos.Add(core.V(3, 0))))
	w.projectiles = append(w.projectiles, &Projectile{Pos: w.player.Pos, TTL: 1})
	w.loot = append(w.loot, &Loot{Pos: w.player.Pos, Gold: 5, TTL: 10})
	w.pendingLoot = append(w.pendingLoot, &Loot{Gold: 1, TTL: 10})
	w.wave = 9
	w.player.Gold = 120
	w.player.Level = 4

	w.descend()

	if w.depth != 2 {
		t.Fatalf("depth = %d, want 2", w.depth)
	}
	if len(w.enemies) != 0 || len(w.projectiles) != 0 || len(w.loot) != 0 || len(w.pendingLoot) != 0 {
		t.Error("Transient entities survived the transition")
	}
	if w.wave != 1 {
		t.Errorf("wave = %d, want 1 after transition", w.wave)
	}
	want := w.dungeon.FirstRoomCenter()
	if w.player.Pos != want {
		t.Errorf("player at %+v, want first room center %+v", w.player.Pos, want)
	}
	// Hero progress carries over.
	if w.player.Gold != 120 || w.player.Level != 4 {
		t.Error("Hero stats did not carry over")
	}
}

func TestCampaignWrapsAfterLastDepth(t *testing.T) {
	cfg := testConfig()
	w := newWorld(cfg, ModeCampaign, 5)
	w.depth = cfg.Dungeon.Depths
	w.descend()
	if w.depth != 1 {
		t.Errorf("depth = %d, want wrap to 1", w.depth)
	}

	we := newWorld(cfg, ModeEndless, 5)
	we.depth = cfg.Dungeon.Depths
	we.descend()
	if we.depth != cfg.Dungeon.Depths+1 {
		t.Errorf("endless depth = %d, want %d", we.depth, cfg.Dungeon.Depths+1)
	}
}

func TestStairsLockedUntilBossDies(t *testing.T) {
	cfg := testConfig()
	w := newWorld(cfg, ModeCampaign, 11)
	w.depth = cfg.Boss.Depth
	w.player.Pos = w.dungeon.StairsPos()

	in := core.NewInputFrame()
	w.playerPhase(in, 1.0/60)
	if w.depth != cfg.Boss.Depth {
		t.Fatal("Stairs opened before the boss died")
	}

	w.bossDefeated = true
	w.player.Pos = w.dungeon.StairsPos()
	w.playerPhase(in, 1.0/60)
	if w.depth == cfg.Boss.Depth {
		t.Error("Stairs stayed locked after the boss died")
	}
}

func TestGameOverOnDeath(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 3, ScreenW: 80, ScreenH: 24})
	g.world.player.HP = 0

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("Expected game over after hp reached 0")
	}

	// Restart rebuilds the run.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res = g.Step(in)
	if res.State.GameOver {
		t.Error("Restart did not clear game over")
	}
	if g.world.player.HP <= 0 {
		t.Error("Restart did not restore the hero")
	}
}

func TestExtraLivesRevive(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.Lives = 1
	w := newWorld(cfg, ModeCampaign, 8)
	w.player.HP = 0

	w.step(core.NewInputFrame(), 1.0/60)
	if w.gameOver {
		t.Fatal("Run ended despite a spare life")
	}
	if w.player.HP <= 0 {
		t.Fatal("Revive left the hero dead")
	}

	w.player.HP = 0
	w.step(core.NewInputFrame(), 1.0/60)
	if !w.gameOver {
		t.Error("Second death should end the run")
	}
}

func TestScoreComponents(t *testing.T) {
	w := newWorld(testConfig(), ModeCampaign, 1)
	w.kills = 3
	w.depth = 2
	w.player.Gold = 7
	if got := w.score(); got != 3*10+50+7 {
		t.Errorf("score = %d, want %d", got, 3*10+50+7)
	}
	w.bossDefeated = true
	if got := w.score(); got != 3*10+50+7+500 {
		t.Errorf("score with boss = %d", got)
	}
}
