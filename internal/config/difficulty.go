package config

// Difficulty is the immutable multiplier set threaded into the spawn
// director. It is derived once from config plus preset at game reset and
// never mutated afterwards.
type Difficulty struct {
	EnemyHP     float64 `yaml:"enemy_hp"`
	EnemyDamage float64 `yaml:"enemy_damage"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	MaxEnemies  int     `yaml:"max_enemies"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyForPreset returns the multiplier set for a preset.
// Unknown presets fall back to normal.
func DifficultyForPreset(preset DifficultyPreset) Difficulty {
	switch preset {
	case DifficultyEasy:
		return Difficulty{EnemyHP: 0.9, EnemyDamage: 0.8, EnemySpeed: 0.95, MaxEnemies: 6}
	case DifficultyHard:
		return Difficulty{EnemyHP: 1.2, EnemyDamage: 1.25, EnemySpeed: 1.05, MaxEnemies: 9}
	default:
		return Difficulty{EnemyHP: 1.0, EnemyDamage: 1.0, EnemySpeed: 1.0, MaxEnemies: 7}
	}
}

// PresetNames returns the selectable preset names in menu order.
func PresetNames() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}
