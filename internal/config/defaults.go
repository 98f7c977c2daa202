package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultSizeClasses are the obstacle size classes the renderer knows about.
var DefaultSizeClasses = []float64{24, 28, 32, 36, 40, 48, 56, 64}

// DefaultDodgeConfig returns the built-in configuration.
// It mirrors defaults/dodge.yaml and is used when the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:  720,
			Height: 480,
			MaxDT:  0.05,
		},
		Player: PlayerConfig{
			Width:    80,
			Height:   20,
			Y:        355,
			Margin:   10,
			MaxSpeed: 520,
			Accel:    2400,
			Friction: 3200,
		},
		Dash: DashConfig{
			Cooldown: 1.25,
			Duration: 0.10,
			Speed:    1150,
		},
		Enemies: EnemyConfig{
			Sizes:         append([]float64(nil), DefaultSizeClasses...),
			MinSize:       24,
			MaxSize:       64,
			Margin:        10,
			BaseSpeed:     190,
			SpeedAccel:    12,
			JitterMin:     -30,
			JitterMax:     70,
			MinFallSpeed:  20,
			EntryStagger:  80,
			RemovalMargin: 140,
		},
		Spawn: SpawnConfig{
			RateStart: 0.95,
			Accel:     0.065,
		},
		Scoring: ScoringConfig{
			GrazeMargin: 18,
			GrazeBonus:  12.0,
			GrazeGain:   0.22,
			MultDecay:   0.35,
			MultCap:     6.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpawnRate: 1.0,
				Speed:     0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultDodgeYAML
}
