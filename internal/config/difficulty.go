package config

import "math"

// DifficultyManager derives the starting point and slope of the linear
// difficulty ramps from the configured level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the ramps grow over time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the configured starting level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// SpawnRateStart returns the spawn rate a run begins with.
func (d *DifficultyManager) SpawnRateStart(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.SpawnRate)
}

// BaseSpeed returns the fall speed a run begins with.
func (d *DifficultyManager) BaseSpeed(base float64) float64 {
	return base * (1.0 + d.initialLevel*d.cfg.Scaling.Speed)
}

// Ramp returns the per-second growth to apply, or 0 when progression is off.
func (d *DifficultyManager) Ramp(accel float64) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	return accel
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
