package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// ObstacleID identifies an obstacle for the lifetime of a run.
// IDs grow monotonically in spawn order.
type ObstacleID uint64

// Obstacle is a falling box.
type Obstacle struct {
	ID     ObstacleID
	X, Y   float64 // Top-left corner
	W, H   float64 // Hitbox size
	VY     float64 // Fall speed, always positive
	Class  float64 // Visual size class nearest to W
	Grazed bool
}

// Rect returns the obstacle's hitbox.
func (o Obstacle) Rect() core.RectF {
	return core.NewRectF(o.X, o.Y, o.W, o.H)
}

// Spawner emits obstacles at a rate that grows linearly with run time.
type Spawner struct {
	Rate float64 // Current expected obstacles per second

	accel      float64
	baseSpeed  float64
	speedAccel float64

	enemies config.EnemyConfig
	fieldW  float64
	rng     *rand.Rand
	nextID  ObstacleID
}

// NewSpawner creates a spawner for a fresh run.
// The difficulty manager sets the starting rate and fall speed and decides
// whether they grow.
func NewSpawner(cfg config.DodgeConfig, diff *config.DifficultyManager, rng *rand.Rand) *Spawner {
	return &Spawner{
		Rate:       diff.SpawnRateStart(cfg.Spawn.RateStart),
		accel:      diff.Ramp(cfg.Spawn.Accel),
		baseSpeed:  diff.BaseSpeed(cfg.Enemies.BaseSpeed),
		speedAccel: diff.Ramp(cfg.Enemies.SpeedAccel),
		enemies:    cfg.Enemies,
		fieldW:     cfg.Field.Width,
		rng:        rng,
		nextID:     1,
	}
}

// Step grows the rate and returns the obstacles spawned this frame.
//
// The frame's expected count p = Rate*dt produces floor(p) obstacles plus
// one more with probability frac(p), so the long-run average is exactly Rate.
func (s *Spawner) Step(dt, elapsed float64) []Obstacle {
	if dt <= 0 {
		return nil
	}

	s.Rate += s.accel * dt

	p := s.Rate * dt
	n := int(math.Floor(p))
	if frac := p - float64(n); frac > 0 && s.rng.Float64() < frac {
		n++
	}
	if n == 0 {
		return nil
	}

	spawned := make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		spawned = append(spawned, s.spawn(elapsed))
	}
	return spawned
}

// FallSpeed returns the un-jittered fall speed at the given run time.
func (s *Spawner) FallSpeed(elapsed float64) float64 {
	return s.baseSpeed + s.speedAccel*elapsed
}

func (s *Spawner) spawn(elapsed float64) Obstacle {
	e := s.enemies

	size := e.MinSize + s.rng.Float64()*(e.MaxSize-e.MinSize)

	// A field narrower than the obstacle collapses the range to the left margin
	lo := e.Margin
	hi := s.fieldW - e.Margin - size
	x := lo
	if hi > lo {
		x = lo + s.rng.Float64()*(hi-lo)
	}

	y := -size - s.rng.Float64()*e.EntryStagger

	jitter := e.JitterMin + s.rng.Float64()*(e.JitterMax-e.JitterMin)
	vy := math.Max(e.MinFallSpeed, s.FallSpeed(elapsed)+jitter)

	o := Obstacle{
		ID:    s.nextID,
		X:     x,
		Y:     y,
		W:     size,
		H:     size,
		VY:    vy,
		Class: SnapSize(size, e.Sizes),
	}
	s.nextID++
	return o
}

// SnapSize returns the class in classes closest to size.
// Ties go to the smaller class. An empty list returns size unchanged.
func SnapSize(size float64, classes []float64) float64 {
	if len(classes) == 0 {
		return size
	}
	best := classes[0]
	for _, c := range classes[1:] {
		if math.Abs(c-size) < math.Abs(best-size) {
			best = c
		}
	}
	return best
}
