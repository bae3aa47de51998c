// Package config provides YAML-based game configuration loading and
// difficulty presets for the crawler platform.
package config

// CrawlConfig contains all tuning for the dungeon crawler. Distances and
// radii are in tiles, speeds in tiles per second, times in seconds.
type CrawlConfig struct {
	Player      PlayerConfig      `yaml:"player"`
	Combat      CombatConfig      `yaml:"combat"`
	Dash        DashConfig        `yaml:"dash"`
	Potions     PotionConfig      `yaml:"potions"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Elite       EliteConfig       `yaml:"elite"`
	Boss        BossConfig        `yaml:"boss"`
	Loot        LootConfig        `yaml:"loot"`
	Spawner     SpawnerConfig     `yaml:"spawner"`
	Progression ProgressionConfig `yaml:"progression"`
	Dungeon     DungeonConfig     `yaml:"dungeon"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Difficulty  Difficulty        `yaml:"difficulty"`
}

// PlayerConfig defines the hero's base stats.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	Radius       float64 `yaml:"radius"`
	HP           int     `yaml:"hp"`
	Mana         int     `yaml:"mana"`
	HPPerLevel   int     `yaml:"hp_per_level"`
	ManaPerLevel int     `yaml:"mana_per_level"`
}

// CombatConfig defines the player's two attacks.
type CombatConfig struct {
	BasicDamageMin  int     `yaml:"basic_damage_min"`
	BasicDamageMax  int     `yaml:"basic_damage_max"`
	PowerDamageMin  int     `yaml:"power_damage_min"`
	PowerDamageMax  int     `yaml:"power_damage_max"`
	BasicCooldown   float64 `yaml:"basic_cooldown"`
	PowerCooldown   float64 `yaml:"power_cooldown"`
	PowerManaCost   int     `yaml:"power_mana_cost"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	BasicRadius     float64 `yaml:"basic_radius"`
	PowerRadius     float64 `yaml:"power_radius"`
	BasicPierce     int     `yaml:"basic_pierce"`
	PowerPierce     int     `yaml:"power_pierce"`
	BasicTTL        float64 `yaml:"basic_ttl"`
	PowerTTL        float64 `yaml:"power_ttl"`
}

// DashConfig defines the dash move.
type DashConfig struct {
	Speed    float64 `yaml:"speed"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
	IFrames  float64 `yaml:"iframes"`
}

// PotionConfig defines potion restoration amounts.
type PotionConfig struct {
	Heal int `yaml:"heal"`
	Mana int `yaml:"mana"`
}

// EnemyConfig defines base enemy stats before wave/difficulty scaling.
type EnemyConfig struct {
	BaseHP         int     `yaml:"base_hp"`
	BaseDamageMin  int     `yaml:"base_damage_min"`
	BaseDamageMax  int     `yaml:"base_damage_max"`
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	TouchChance    float64 `yaml:"touch_chance"`
	SteerSmoothing float64 `yaml:"steer_smoothing"`
	Jitter         float64 `yaml:"jitter"`
	Knockback      float64 `yaml:"knockback"`
	// Spitter (ranged minion) behavior.
	SpitterShotSpeed float64 `yaml:"spitter_shot_speed"`
	SpitterShotTTL   float64 `yaml:"spitter_shot_ttl"`
	SpitterCDMin     float64 `yaml:"spitter_cd_min"`
	SpitterCDMax     float64 `yaml:"spitter_cd_max"`
}

// EliteConfig defines elite (sub-boss) packs and their auras.
type EliteConfig struct {
	PackChance  float64             `yaml:"pack_chance"`
	PackSizeMin int                 `yaml:"pack_size_min"`
	PackSizeMax int                 `yaml:"pack_size_max"`
	HPMult      float64             `yaml:"hp_mult"`
	DamageMult  float64             `yaml:"damage_mult"`
	SpeedMult   float64             `yaml:"speed_mult"`
	Radius      float64             `yaml:"radius"`
	AuraRadius  float64             `yaml:"aura_radius"`
	RingMin     float64             `yaml:"ring_min"`
	RingMax     float64             `yaml:"ring_max"`
	Auras       map[string]AuraSpec `yaml:"auras"`
}

// AuraSpec is the stat envelope an elite projects onto nearby enemies.
// Factors multiply; 1.0 means no effect on that stat.
type AuraSpec struct {
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
	Taken  float64 `yaml:"taken"`
}

// BossConfig defines the once-per-run boss.
type BossConfig struct {
	HP          int     `yaml:"hp"`
	DamageMin   int     `yaml:"damage_min"`
	DamageMax   int     `yaml:"damage_max"`
	ShotCDMin   float64 `yaml:"shot_cd_min"`
	ShotCDMax   float64 `yaml:"shot_cd_max"`
	ShotSpeed   float64 `yaml:"shot_speed"`
	ShotTTL     float64 `yaml:"shot_ttl"`
	SpeedFactor float64 `yaml:"speed_factor"`
	Radius      float64 `yaml:"radius"`
	Depth       int     `yaml:"depth"` // Dungeon depth at which the boss appears
}

// LootConfig defines drop tables and pickup buffs.
type LootConfig struct {
	GoldMin            int     `yaml:"gold_min"`
	GoldMax            int     `yaml:"gold_max"`
	GoldChance         float64 `yaml:"gold_chance"`
	PotionChance       float64 `yaml:"potion_chance"`
	WeaponChance       float64 `yaml:"weapon_chance"`
	DamagePickupChance float64 `yaml:"damage_pickup_chance"`
	ShieldPickupChance float64 `yaml:"shield_pickup_chance"`
	TTL                float64 `yaml:"ttl"`
	PickupRadius       float64 `yaml:"pickup_radius"`
	DamageBoostMult    float64 `yaml:"damage_boost_mult"`
	DamageBoostTime    float64 `yaml:"damage_boost_time"`
	ShieldPoints       int     `yaml:"shield_points"`
	EliteGoldMin       int     `yaml:"elite_gold_min"`
	EliteGoldMax       int     `yaml:"elite_gold_max"`
}

// SpawnerConfig defines wave pacing and placement sampling.
type SpawnerConfig struct {
	Interval      float64 `yaml:"interval"`
	WaveScale     float64 `yaml:"wave_scale"`
	PickupChance  float64 `yaml:"pickup_chance"`
	MinPlayerDist float64 `yaml:"min_player_dist"`
	NearRadiusX   int     `yaml:"near_radius_x"`
	NearRadiusY   int     `yaml:"near_radius_y"`
	MaxTries      int     `yaml:"max_tries"`
}

// ProgressionConfig defines XP and leveling.
type ProgressionConfig struct {
	XPBase      int     `yaml:"xp_base"`       // XP per kill before the wave bonus
	XPToNext    int     `yaml:"xp_to_next"`    // XP required for the first level-up
	Growth      float64 `yaml:"growth"`        // xp_to_next multiplier per level (truncated)
	HealOnLevel int     `yaml:"heal_on_level"` // HP restored on each level-up
	ManaOnLevel int     `yaml:"mana_on_level"` // Mana restored on each level-up
}

// DungeonConfig defines grid generation.
type DungeonConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Depths        int     `yaml:"depths"`
	MaxRoomsBase  int     `yaml:"max_rooms_base"`
	RoomsPerDepth int     `yaml:"rooms_per_depth"`
	RoomMin       int     `yaml:"room_min"`
	RoomMax       int     `yaml:"room_max"`
	RevealRadius  float64 `yaml:"reveal_radius"`
	StairsRadius  float64 `yaml:"stairs_radius"`
}

// GameplayConfig defines run-level rules outside the combat math.
type GameplayConfig struct {
	Lives           int `yaml:"lives"`             // Extra lives; 0 means a single-life run
	CorpseFadeTicks int `yaml:"corpse_fade_ticks"` // Ticks a dead enemy lingers before removal
	MaxParticles    int `yaml:"max_particles"`     // Hard cap; excess effects are dropped
}
