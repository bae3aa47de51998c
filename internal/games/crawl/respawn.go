package crawl

// RespawnPolicy decides what happens when the hero's hp reaches zero. The
// death handling itself is fixed; only the outcome is pluggable.
type RespawnPolicy interface {
	// OnDeath is called once per death. Returning true revives the hero in
	// place (the policy mutates the player as needed); returning false ends
	// the run.
	OnDeath(p *Player) bool
}

// SingleLife ends the run on the first death. This is the default.
type SingleLife struct{}

func (SingleLife) OnDeath(*Player) bool { return false }

// ExtraLives revives the hero with half hp until the stock runs out.
type ExtraLives struct {
	Remaining int
}

func (e *ExtraLives) OnDeath(p *Player) bool {
	if e.Remaining <= 0 {
		return false
	}
	e.Remaining--
	p.HP = p.MaxHP / 2
	if p.HP < 1 {
		p.HP = 1
	}
	p.Shield = 0
	p.IFrames = 1.5
	return true
}
