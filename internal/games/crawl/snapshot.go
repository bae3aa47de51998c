package crawl

import "github.com/mkraev/tui-crawler/internal/core"

// Snapshot is a compact observable summary of the run, used to compare two
// simulations tick for tick.
type Snapshot struct {
	Tick        int
	Depth       int
	Wave        int
	Kills       int
	Enemies     int
	Projectiles int
	Loot        int
	PlayerPos   core.Vec2
	PlayerHP    int
	PlayerLevel int
	Gold        int
	Score       int
}

// Snapshot captures the current run summary.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	w := g.world
	return Snapshot{
		Tick:        w.ticks,
		Depth:       w.depth,
		Wave:        w.wave,
		Kills:       w.kills,
		Enemies:     len(w.enemies),
		Projectiles: len(w.projectiles),
		Loot:        len(w.loot),
		PlayerPos:   w.player.Pos,
		PlayerHP:    w.player.HP,
		PlayerLevel: w.player.Level,
		Gold:        w.player.Gold,
		Score:       w.score(),
	}
}
