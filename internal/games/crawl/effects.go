package crawl

// EffectSink receives fire-and-forget gameplay events the platform may want
// to surface (sounds, screen shake, log lines). The simulation never waits
// on it and never reads anything back; a nil-safe no-op sink is always
// acceptable.
type EffectSink interface {
	HitLanded(dmg int)
	PlayerHurt(dmg int)
	EnemyDied(rank Rank)
	LevelUp(level int)
	DepthChanged(depth int)
	BossAppeared()
	LootPicked()
}

// NopEffects is the default sink; every event is discarded.
type NopEffects struct{}

func (NopEffects) HitLanded(int)     {}
func (NopEffects) PlayerHurt(int)    {}
func (NopEffects) EnemyDied(Rank)    {}
func (NopEffects) LevelUp(int)       {}
func (NopEffects) DepthChanged(int)  {}
func (NopEffects) BossAppeared()     {}
func (NopEffects) LootPicked()       {}
