// Package crawl implements the dungeon crawler: a top-down action RPG on a
// procedurally carved tile grid. The hero descends through depths fighting
// wave-spawned enemies, elite packs with stat auras, and a final boss
// guarding the last stairs. All simulation state lives in a World advanced
// by fixed ticks; the package has no dependency on the platform layer.
package crawl

import (
	"github.com/mkraev/tui-crawler/internal/config"
	"github.com/mkraev/tui-crawler/internal/core"
	"github.com/mkraev/tui-crawler/internal/registry"
)

// Package-level variables set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game implements the crawler variant for the platform registry. It is a
// thin shell around World: Reset builds one, Step advances it, Render
// draws it.
type Game struct {
	mode  Mode
	cfg   config.CrawlConfig
	world *World
	seed  int64

	screenW int
	screenH int
	dt      float64
	paused  bool

	effects EffectSink
}

// New creates a campaign-mode crawler: a fixed number of depths with a
// boss guarding the last stairs.
func New() *Game {
	return &Game{mode: ModeCampaign, effects: NopEffects{}}
}

// NewEndless creates an endless-mode crawler: no boss gate, depths and
// waves scale forever.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, effects: NopEffects{}}
}

func init() {
	registry.Register("crawl", func() registry.Game {
		return New()
	})
	registry.Register("crawl_endless", func() registry.Game {
		return NewEndless()
	})
}

// SetEffects installs a sink for gameplay events. Must be called before
// Reset; passing nil restores the no-op sink.
func (g *Game) SetEffects(sink EffectSink) {
	if sink == nil {
		sink = NopEffects{}
	}
	g.effects = sink
	if g.world != nil {
		g.world.effects = sink
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "crawl_endless"
	}
	return "crawl"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Dungeon Crawl (Endless)"
	}
	return "Dungeon Crawl"
}

// Reset starts a fresh run. The config file and difficulty preset selected
// through the package-level setters are loaded here, so every restart
// picks up the same rules.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadCrawl(configPath)
	if err != nil {
		cfg = config.DefaultCrawlConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrawlPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg
	g.seed = rc.Seed
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.dt = rc.Dt()
	g.paused = false

	g.world = newWorld(cfg, g.mode, g.seed)
	g.world.effects = g.effects
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	if w == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) && !w.gameOver {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && w.gameOver {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH, Seed: g.seed + 1})
		return core.StepResult{State: g.State()}
	}

	if !g.paused && !w.gameOver {
		w.step(in, g.dt)
	}
	return core.StepResult{State: g.State()}
}

// State returns the platform-visible run state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.score(),
		GameOver: g.world.gameOver,
		Paused:   g.paused,
	}
}

// Stats exposes the run counters the platform records on game over.
type Stats struct {
	Depth      int
	Wave       int
	Kills      int
	Gold       int
	Level      int
	Ticks      int
	DeathCause string
	BossKilled bool
}

// Stats returns the current run counters.
func (g *Game) Stats() Stats {
	if g.world == nil {
		return Stats{}
	}
	w := g.world
	return Stats{
		Depth:      w.depth,
		Wave:       w.wave,
		Kills:      w.kills,
		Gold:       w.player.Gold,
		Level:      w.player.Level,
		Ticks:      w.ticks,
		DeathCause: w.deathCause,
		BossKilled: w.bossDefeated,
	}
}
