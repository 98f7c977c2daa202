package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.arcade/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Unset keys fall back to defaults
	cfg := DefaultDodgeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultDodgeConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultDodgeConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return Normalize(candidate), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dodge.yaml"); err == nil {
		candidate := DefaultDodgeConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return Normalize(candidate), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return Normalize(cfg), nil
}

// Marshal renders a config as YAML.
func Marshal(cfg DodgeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust forgiveness based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.GrazeMargin += 6
		cfg.Dash.Cooldown *= 0.8
	case DifficultyHard:
		cfg.Scoring.GrazeMargin -= 4
		cfg.Dash.Cooldown *= 1.2
	}
}

// Normalize repairs values the simulation cannot work with.
// Hitbox sizes must be positive, ranges must not be inverted, and the
// multiplier cap can never drop below the 1.0 floor.
func Normalize(cfg DodgeConfig) DodgeConfig {
	def := DefaultDodgeConfig()

	if cfg.Field.Width <= 0 {
		cfg.Field.Width = def.Field.Width
	}
	if cfg.Field.Height <= 0 {
		cfg.Field.Height = def.Field.Height
	}
	if cfg.Field.MaxDT <= 0 {
		cfg.Field.MaxDT = def.Field.MaxDT
	}

	if cfg.Player.Width <= 0 {
		cfg.Player.Width = def.Player.Width
	}
	if cfg.Player.Height <= 0 {
		cfg.Player.Height = def.Player.Height
	}
	cfg.Player.Margin = nonNegative(cfg.Player.Margin)
	cfg.Player.MaxSpeed = nonNegative(cfg.Player.MaxSpeed)
	cfg.Player.Accel = nonNegative(cfg.Player.Accel)
	cfg.Player.Friction = nonNegative(cfg.Player.Friction)

	cfg.Dash.Cooldown = nonNegative(cfg.Dash.Cooldown)
	cfg.Dash.Duration = nonNegative(cfg.Dash.Duration)

	if cfg.Enemies.MinSize <= 0 {
		cfg.Enemies.MinSize = def.Enemies.MinSize
	}
	if cfg.Enemies.MaxSize < cfg.Enemies.MinSize {
		cfg.Enemies.MaxSize = cfg.Enemies.MinSize
	}
	sizes := make([]float64, 0, len(cfg.Enemies.Sizes))
	for _, s := range cfg.Enemies.Sizes {
		if s > 0 {
			sizes = append(sizes, s)
		}
	}
	sort.Float64s(sizes)
	cfg.Enemies.Sizes = sizes
	if cfg.Enemies.JitterMax < cfg.Enemies.JitterMin {
		cfg.Enemies.JitterMin, cfg.Enemies.JitterMax = cfg.Enemies.JitterMax, cfg.Enemies.JitterMin
	}
	if cfg.Enemies.MinFallSpeed <= 0 {
		cfg.Enemies.MinFallSpeed = def.Enemies.MinFallSpeed
	}
	cfg.Enemies.Margin = nonNegative(cfg.Enemies.Margin)
	cfg.Enemies.EntryStagger = nonNegative(cfg.Enemies.EntryStagger)
	cfg.Enemies.RemovalMargin = nonNegative(cfg.Enemies.RemovalMargin)

	cfg.Spawn.RateStart = nonNegative(cfg.Spawn.RateStart)
	cfg.Spawn.Accel = nonNegative(cfg.Spawn.Accel)

	cfg.Scoring.GrazeMargin = nonNegative(cfg.Scoring.GrazeMargin)
	cfg.Scoring.MultDecay = nonNegative(cfg.Scoring.MultDecay)
	cfg.Scoring.GrazeGain = nonNegative(cfg.Scoring.GrazeGain)
	if cfg.Scoring.MultCap < 1.0 {
		cfg.Scoring.MultCap = 1.0
	}

	return cfg
}

// nonNegative floors negative tunables at zero.
func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
