package dodge

import (
	"math"

	"github.com/vovakirdan/tui-dodge/internal/config"
)

// Score tracks survival time, graze points and the graze multiplier.
type Score struct {
	Elapsed float64 // Simulated run time in seconds
	Points  float64 // Graze bonus total
	Mult    float64 // Current multiplier, always in [1, cap]
	Grazes  int

	cfg config.ScoringConfig
}

// NewScore creates a zeroed score with the multiplier at its floor.
func NewScore(cfg config.ScoringConfig) Score {
	return Score{Mult: 1.0, cfg: cfg}
}

// Tick advances run time and decays the multiplier toward 1.
func (s *Score) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	s.Elapsed += dt
	s.Mult = math.Max(1.0, s.Mult-s.cfg.MultDecay*dt)
}

// OnGraze awards a bonus scaled by the multiplier, then raises the multiplier.
// Returns the bonus awarded.
func (s *Score) OnGraze() float64 {
	bonus := s.cfg.GrazeBonus * s.Mult
	s.Points += bonus
	s.Mult = math.Min(s.cfg.MultCap, s.Mult+s.cfg.GrazeGain)
	s.Grazes++
	return bonus
}

// Value returns the live score.
func (s Score) Value() float64 {
	return s.Elapsed + s.Points
}

// Finalize returns the score of a finished run. It does not modify state,
// so repeated calls return the same value.
func (s Score) Finalize() float64 {
	return s.Value()
}
