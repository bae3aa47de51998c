package config

import (
	_ "embed"
)

//go:embed defaults/crawl.yaml
var defaultCrawlYAML []byte

// DefaultCrawlConfig returns the default crawler configuration.
// These values match the embedded defaults/crawl.yaml.
func DefaultCrawlConfig() CrawlConfig {
	return CrawlConfig{
		Player: PlayerConfig{
			Speed:        7.5,
			Radius:       0.4,
			HP:           140,
			Mana:         80,
			HPPerLevel:   10,
			ManaPerLevel: 8,
		},
		Combat: CombatConfig{
			BasicDamageMin:  7,
			BasicDamageMax:  12,
			PowerDamageMin:  18,
			PowerDamageMax:  30,
			BasicCooldown:   0.18,
			PowerCooldown:   0.60,
			PowerManaCost:   12,
			ProjectileSpeed: 16.5,
			BasicRadius:     0.12,
			PowerRadius:     0.18,
			BasicPierce:     1,
			PowerPierce:     2,
			BasicTTL:        0.9,
			PowerTTL:        1.1,
		},
		Dash: DashConfig{
			Speed:    15.5,
			Duration: 0.22,
			Cooldown: 1.5,
			IFrames:  0.25,
		},
		Potions: PotionConfig{
			Heal: 50,
			Mana: 40,
		},
		Enemy: EnemyConfig{
			BaseHP:           40,
			BaseDamageMin:    4,
			BaseDamageMax:    8,
			Speed:            3.2,
			Radius:           0.4,
			TouchChance:      0.02,
			SteerSmoothing:   0.1,
			Jitter:           0.2,
			Knockback:        6.0,
			SpitterShotSpeed: 9.4,
			SpitterShotTTL:   1.6,
			SpitterCDMin:     1.2,
			SpitterCDMax:     2.0,
		},
		Elite: EliteConfig{
			PackChance:  0.35,
			PackSizeMin: 3,
			PackSizeMax: 6,
			HPMult:      2.6,
			DamageMult:  1.8,
			SpeedMult:   1.08,
			Radius:      0.55,
			AuraRadius:  6.5,
			RingMin:     1.4,
			RingMax:     2.6,
			Auras: map[string]AuraSpec{
				"haste":    {Speed: 1.28, Damage: 1.00, Taken: 1.00},
				"frenzy":   {Speed: 1.00, Damage: 1.35, Taken: 1.00},
				"guardian": {Speed: 1.00, Damage: 1.00, Taken: 0.66},
			},
		},
		Boss: BossConfig{
			HP:          600,
			DamageMin:   8,
			DamageMax:   14,
			ShotCDMin:   1.0,
			ShotCDMax:   1.6,
			ShotSpeed:   10.6,
			ShotTTL:     2.0,
			SpeedFactor: 0.9,
			Radius:      0.7,
			Depth:       3,
		},
		Loot: LootConfig{
			GoldMin:            3,
			GoldMax:            12,
			GoldChance:         0.9,
			PotionChance:       0.10,
			WeaponChance:       0.08,
			DamagePickupChance: 0.06,
			ShieldPickupChance: 0.06,
			TTL:                30,
			PickupRadius:       0.7,
			DamageBoostMult:    1.6,
			DamageBoostTime:    8.0,
			ShieldPoints:       70,
			EliteGoldMin:       15,
			EliteGoldMax:       35,
		},
		Spawner: SpawnerConfig{
			Interval:      6.0,
			WaveScale:     1.10,
			PickupChance:  0.25,
			MinPlayerDist: 6.0,
			NearRadiusX:   12,
			NearRadiusY:   8,
			MaxTries:      200,
		},
		Progression: ProgressionConfig{
			XPBase:      6,
			XPToNext:    40,
			Growth:      1.35,
			HealOnLevel: 30,
			ManaOnLevel: 20,
		},
		Dungeon: DungeonConfig{
			Width:         96,
			Height:        64,
			Depths:        3,
			MaxRoomsBase:  30,
			RoomsPerDepth: 6,
			RoomMin:       6,
			RoomMax:       13,
			RevealRadius:  6.0,
			StairsRadius:  0.55,
		},
		Gameplay: GameplayConfig{
			Lives:           0,
			CorpseFadeTicks: 45,
			MaxParticles:    256,
		},
		Difficulty: DifficultyForPreset(DifficultyNormal),
	}
}

// GetDefaultYAML returns the embedded default YAML for the crawler.
func GetDefaultYAML() []byte {
	return defaultCrawlYAML
}
