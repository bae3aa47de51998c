package crawl

import "github.com/mkraev/tui-crawler/internal/core"

// Projectile is a transient shot, player- or enemy-owned. It is removed
// when TTL runs out, pierce is exhausted, or it hits a wall, whichever
// comes first. Pierce only decrements on an actual hit.
type Projectile struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Damage  int
	TTL     float64
	Radius  float64
	Pierce  int
	Hostile bool // true for enemy shots, which only test against the player
}

// Expired reports whether the projectile should be removed this tick.
func (pr *Projectile) Expired() bool {
	return pr.TTL <= 0
}
