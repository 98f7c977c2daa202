package dodge

import "time"

// DefaultMaxDT caps simulated time per frame when no config value is given.
const DefaultMaxDT = 0.05

// Stepper turns wall-clock frame timestamps into a bounded delta time.
// A stalled frame (minimized window, suspended process) advances the
// simulation by at most maxDT instead of catching up.
type Stepper struct {
	maxDT   float64
	last    time.Time
	started bool
}

// NewStepper creates a stepper with the given clamp in seconds.
func NewStepper(maxDT float64) *Stepper {
	if maxDT <= 0 {
		maxDT = DefaultMaxDT
	}
	return &Stepper{maxDT: maxDT}
}

// Tick returns the seconds elapsed since the previous call, clamped to
// [0, maxDT]. The first call establishes the baseline and returns 0.
func (s *Stepper) Tick(now time.Time) float64 {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}

	dt := now.Sub(s.last).Seconds()
	s.last = now

	if dt < 0 {
		return 0
	}
	if dt > s.maxDT {
		return s.maxDT
	}
	return dt
}

// Reset forgets the baseline so the next Tick returns 0.
func (s *Stepper) Reset() {
	s.started = false
	s.last = time.Time{}
}

// MaxDT returns the clamp value.
func (s *Stepper) MaxDT() float64 {
	return s.maxDT
}
