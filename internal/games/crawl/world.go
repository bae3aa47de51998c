package crawl

import (
	"math/rand"

	"github.com/mkraev/tui-crawler/internal/config"
	"github.com/mkraev/tui-crawler/internal/core"
)

// Mode selects the run structure.
type Mode int

const (
	// ModeCampaign runs a fixed number of depths with a boss at the last one.
	ModeCampaign Mode = iota
	// ModeEndless descends forever; waves keep scaling, no boss gate.
	ModeEndless
)

// World is the complete mutable simulation state for one run. All entity
// lists are flat slices owned by the world; systems iterate them directly.
// New projectiles and loot produced mid-pass go into the pending buffers
// and are merged after the producing pass finishes, so no pass ever
// observes an entity created during that same pass.
type World struct {
	cfg  config.CrawlConfig
	mode Mode
	rng  *rand.Rand

	player  Player
	dungeon *Dungeon

	enemies     []*Enemy
	projectiles []*Projectile
	loot        []*Loot

	pendingProjectiles []*Projectile
	pendingLoot        []*Loot

	particles *particleSystem
	effects   EffectSink
	respawn   RespawnPolicy

	depth        int
	wave         int
	kills        int
	spawnTimer   float64
	bossSpawned  bool
	bossDefeated bool

	ticks      int
	gameOver   bool
	paused     bool
	deathCause string
}

func newWorld(cfg config.CrawlConfig, mode Mode, seed int64) *World {
	w := &World{
		cfg:       cfg,
		mode:      mode,
		rng:       rand.New(rand.NewSource(seed)),
		particles: newParticleSystem(cfg.Gameplay.MaxParticles),
		effects:   NopEffects{},
		depth:     1,
		wave:      1,
	}
	if cfg.Gameplay.Lives > 0 {
		w.respawn = &ExtraLives{Remaining: cfg.Gameplay.Lives}
	} else {
		w.respawn = SingleLife{}
	}
	w.dungeon = GenerateDungeon(1, cfg.Dungeon, w.rng)
	w.player = NewPlayer(w.dungeon.FirstRoomCenter(), cfg)
	w.dungeon.MarkSeen(w.player.Pos, cfg.Dungeon.RevealRadius)
	w.spawnTimer = cfg.Spawner.Interval
	return w
}

// mergePending moves staged projectiles and loot into the live lists.
// Called between passes; see the Step pipeline in sim.go for the exact
// points.
func (w *World) mergePending() {
	if len(w.pendingProjectiles) > 0 {
		w.projectiles = append(w.projectiles, w.pendingProjectiles...)
		w.pendingProjectiles = w.pendingProjectiles[:0]
	}
	if len(w.pendingLoot) > 0 {
		w.loot = append(w.loot, w.pendingLoot...)
		w.pendingLoot = w.pendingLoot[:0]
	}
}

// aliveEnemies counts enemies still fighting (fading corpses excluded).
func (w *World) aliveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// waveScale is the compounding stat multiplier applied to freshly spawned
// enemies: wave growth times a flat per-depth bonus.
func (w *World) waveScale() float64 {
	s := 1.0
	for i := 1; i < w.wave; i++ {
		s *= w.cfg.Spawner.WaveScale
	}
	return s * (1.0 + 0.1*float64(w.depth-1))
}

// descend moves the run to the next depth: the current dungeon and every
// transient entity are discarded, a fresh dungeon is carved, and the hero
// starts at its first room's center. Wave pacing resets; hero stats carry
// over untouched.
func (w *World) descend() {
	nextDepth := w.depth + 1
	if w.mode == ModeCampaign && nextDepth > w.cfg.Dungeon.Depths {
		nextDepth = 1
	}
	w.depth = nextDepth

	w.enemies = w.enemies[:0]
	w.projectiles = w.projectiles[:0]
	w.loot = w.loot[:0]
	w.pendingProjectiles = w.pendingProjectiles[:0]
	w.pendingLoot = w.pendingLoot[:0]
	w.particles.clear()

	w.dungeon = GenerateDungeon(w.depth, w.cfg.Dungeon, w.rng)
	w.player.Pos = w.dungeon.FirstRoomCenter()
	w.player.Vel = core.Vec2{}
	w.dungeon.MarkSeen(w.player.Pos, w.cfg.Dungeon.RevealRadius)

	w.wave = 1
	w.spawnTimer = w.cfg.Spawner.Interval
	w.bossSpawned = false

	w.effects.DepthChanged(w.depth)
}

// score is the kills-weighted run score shown on the platform scoreboard.
func (w *World) score() int {
	s := w.kills*10 + (w.depth-1)*50 + w.player.Gold
	if w.bossDefeated {
		s += 500
	}
	return s
}
