package crawl

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mkraev/tui-crawler/internal/core"
)

// saveVersion guards against restoring snapshots from incompatible
// builds. Bump when the snapshot layout changes.
const saveVersion = 1

// saveData is the YAML snapshot of a run. Transient entities (enemies,
// projectiles, loot, particles) are deliberately not saved: restoring
// regenerates the depth and the hero resumes at its entrance, which keeps
// the format small and immune to entity-layout churn.
type saveData struct {
	Version int    `yaml:"version"`
	Mode    string `yaml:"mode"`
	Seed    int64  `yaml:"seed"`

	Depth        int  `yaml:"depth"`
	Wave         int  `yaml:"wave"`
	Kills        int  `yaml:"kills"`
	Ticks        int  `yaml:"ticks"`
	BossDefeated bool `yaml:"boss_defeated"`

	Player savePlayer `yaml:"player"`
}

type savePlayer struct {
	Level       int        `yaml:"level"`
	XP          int        `yaml:"xp"`
	XPToNext    int        `yaml:"xp_to_next"`
	HP          int        `yaml:"hp"`
	MaxHP       int        `yaml:"max_hp"`
	Mana        int        `yaml:"mana"`
	MaxMana     int        `yaml:"max_mana"`
	Gold        int        `yaml:"gold"`
	PotionsHP   int        `yaml:"potions_hp"`
	PotionsMana int        `yaml:"potions_mana"`
	Shield      int        `yaml:"shield"`
	Weapon      saveWeapon `yaml:"weapon"`
}

type saveWeapon struct {
	Name      string `yaml:"name"`
	DamageMin int    `yaml:"damage_min"`
	DamageMax int    `yaml:"damage_max"`
}

// SaveState snapshots the run to YAML.
func (g *Game) SaveState() ([]byte, error) {
	w := g.world
	if w == nil {
		return nil, fmt.Errorf("crawl: no run to save")
	}
	mode := "campaign"
	if w.mode == ModeEndless {
		mode = "endless"
	}
	p := w.player
	data := saveData{
		Version:      saveVersion,
		Mode:         mode,
		Seed:         g.seed,
		Depth:        w.depth,
		Wave:         w.wave,
		Kills:        w.kills,
		Ticks:        w.ticks,
		BossDefeated: w.bossDefeated,
		Player: savePlayer{
			Level:       p.Level,
			XP:          p.XP,
			XPToNext:    p.XPToNext,
			HP:          p.HP,
			MaxHP:       p.MaxHP,
			Mana:        p.Mana,
			MaxMana:     p.MaxMana,
			Gold:        p.Gold,
			PotionsHP:   p.PotionsHP,
			PotionsMana: p.PotionsMana,
			Shield:      p.Shield,
			Weapon: saveWeapon{
				Name:      p.Weapon.Name,
				DamageMin: p.Weapon.DamageMin,
				DamageMax: p.Weapon.DamageMax,
			},
		},
	}
	return yaml.Marshal(data)
}

// RestoreState rebuilds the run from a snapshot. Every field is sanitized
// independently: a missing, zero, or nonsensical value falls back to its
// default rather than poisoning the run, so a hand-edited or truncated
// save still loads.
func (g *Game) RestoreState(raw []byte) {
	var data saveData
	if err := yaml.Unmarshal(raw, &data); err != nil || data.Version != saveVersion {
		return
	}

	mode := ModeCampaign
	if data.Mode == "endless" {
		mode = ModeEndless
	}
	seed := data.Seed
	if seed == 0 {
		seed = g.seed
	}
	w := newWorld(g.cfg, mode, seed)

	maxDepth := g.cfg.Dungeon.Depths
	if mode == ModeEndless || data.Depth > maxDepth {
		maxDepth = data.Depth
	}
	w.depth = core.Clamp(data.Depth, 1, core.Max(1, maxDepth))
	if w.depth > 1 {
		w.dungeon = GenerateDungeon(w.depth, g.cfg.Dungeon, w.rng)
		w.player.Pos = w.dungeon.FirstRoomCenter()
		w.dungeon.MarkSeen(w.player.Pos, g.cfg.Dungeon.RevealRadius)
	}
	w.wave = core.Max(1, data.Wave)
	w.kills = core.Max(0, data.Kills)
	w.ticks = core.Max(0, data.Ticks)
	w.bossDefeated = data.BossDefeated

	sp := data.Player
	p := &w.player
	p.Level = core.Max(1, sp.Level)
	p.MaxHP = g.cfg.Player.HP + g.cfg.Player.HPPerLevel*p.Level
	if p.Level == 1 {
		p.MaxHP = g.cfg.Player.HP
	}
	if sp.MaxHP > 0 {
		p.MaxHP = sp.MaxHP
	}
	p.HP = core.Clamp(sp.HP, 1, p.MaxHP)
	p.MaxMana = g.cfg.Player.Mana
	if sp.MaxMana > 0 {
		p.MaxMana = sp.MaxMana
	}
	p.Mana = core.Clamp(sp.Mana, 0, p.MaxMana)
	p.XPToNext = g.cfg.Progression.XPToNext
	if sp.XPToNext > 0 {
		p.XPToNext = sp.XPToNext
	}
	p.XP = core.Clamp(sp.XP, 0, p.XPToNext-1)
	p.Gold = core.Max(0, sp.Gold)
	p.PotionsHP = core.Max(0, sp.PotionsHP)
	p.PotionsMana = core.Max(0, sp.PotionsMana)
	p.Shield = core.Max(0, sp.Shield)
	if sp.Weapon.Name != "" && sp.Weapon.DamageMin > 0 && sp.Weapon.DamageMax >= sp.Weapon.DamageMin {
		p.Weapon = Weapon{
			Name:        sp.Weapon.Name,
			DamageMin:   sp.Weapon.DamageMin,
			DamageMax:   sp.Weapon.DamageMax,
			AttackSpeed: 2.5,
		}
	}

	g.world = w
	g.mode = mode
}
