package crawl

import (
	"math"
	"math/rand"

	"github.com/mkraev/tui-crawler/internal/core"
)

// Particle is a short-lived cosmetic effect. Particles never influence
// gameplay; they exist only for the renderer.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	TTL   float64
	Glyph rune
	Color core.Color
}

// particleSystem holds and advances the cosmetic effects. The cap is hard:
// once full, new bursts are dropped rather than evicting older particles,
// which keeps the slice from reallocating under heavy combat.
type particleSystem struct {
	particles []Particle
	max       int
}

func newParticleSystem(max int) *particleSystem {
	return &particleSystem{max: max}
}

func (ps *particleSystem) add(p Particle) {
	if len(ps.particles) >= ps.max {
		return
	}
	ps.particles = append(ps.particles, p)
}

// burst emits n particles radially from pos.
func (ps *particleSystem) burst(pos core.Vec2, n int, glyph rune, color core.Color, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		ang := rng.Float64() * 2 * math.Pi
		speed := 1.0 + rng.Float64()*2.0
		ps.add(Particle{
			Pos:   pos,
			Vel:   core.V(math.Cos(ang)*speed, math.Sin(ang)*speed),
			TTL:   0.25 + rng.Float64()*0.35,
			Glyph: glyph,
			Color: color,
		})
	}
}

func (ps *particleSystem) update(dt float64) {
	alive := ps.particles[:0]
	for i := range ps.particles {
		p := &ps.particles[i]
		p.TTL -= dt
		if p.TTL <= 0 {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, *p)
	}
	ps.particles = alive
}

func (ps *particleSystem) clear() {
	ps.particles = ps.particles[:0]
}
