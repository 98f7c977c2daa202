// Package config provides YAML-based game configuration loading and
// difficulty management for the dodge game.
package config

// DodgeConfig contains all tunables for the dodge game.
// Distances are playfield units, times are seconds, speeds are units/second.
type DodgeConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Dash       DashConfig       `yaml:"dash"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield and frame stepping.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MaxDT  float64 `yaml:"max_dt"` // Upper bound on simulated time per frame
}

// PlayerConfig defines the player hitbox and movement model.
type PlayerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Y        float64 `yaml:"y"`      // Top of the hitbox
	Margin   float64 `yaml:"margin"` // Gap kept between the hitbox and the walls
	MaxSpeed float64 `yaml:"max_speed"`
	Accel    float64 `yaml:"accel"`
	Friction float64 `yaml:"friction"`
}

// DashConfig defines the sprint burst.
type DashConfig struct {
	Cooldown float64 `yaml:"cooldown"`
	Duration float64 `yaml:"duration"`
	Speed    float64 `yaml:"speed"`
}

// EnemyConfig defines falling obstacle geometry and fall speed.
type EnemyConfig struct {
	Sizes         []float64 `yaml:"sizes"` // Visual size classes; drawn sizes snap to the nearest
	MinSize       float64   `yaml:"min_size"`
	MaxSize       float64   `yaml:"max_size"`
	Margin        float64   `yaml:"margin"`
	BaseSpeed     float64   `yaml:"base_speed"`
	SpeedAccel    float64   `yaml:"speed_accel"` // Added to fall speed per second of run time
	JitterMin     float64   `yaml:"jitter_min"`
	JitterMax     float64   `yaml:"jitter_max"`
	MinFallSpeed  float64   `yaml:"min_fall_speed"`
	EntryStagger  float64   `yaml:"entry_stagger"` // Max extra distance above the top at spawn
	RemovalMargin float64   `yaml:"removal_margin"`
}

// SpawnConfig defines the spawn rate ramp.
type SpawnConfig struct {
	RateStart float64 `yaml:"rate_start"` // Obstacles per second at run start
	Accel     float64 `yaml:"accel"`      // Added to the rate per second
}

// ScoringConfig defines graze rewards and the multiplier.
type ScoringConfig struct {
	GrazeMargin float64 `yaml:"graze_margin"`
	GrazeBonus  float64 `yaml:"graze_bonus"`
	GrazeGain   float64 `yaml:"graze_gain"`
	MultDecay   float64 `yaml:"mult_decay"`
	MultCap     float64 `yaml:"mult_cap"`
}

// DifficultyConfig defines how presets shift the starting point of the ramps.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // false freezes spawn rate and fall speed growth
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of the head start at level 1.0.
type ScalingConfig struct {
	SpawnRate float64 `yaml:"spawn_rate"` // Fraction added to the starting spawn rate
	Speed     float64 `yaml:"speed"`      // Fraction added to the base fall speed
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown or empty values return "" (keep the config's own settings).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
