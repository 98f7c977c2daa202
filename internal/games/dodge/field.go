package dodge

import (
	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// FieldResult reports what happened during one field step.
type FieldResult struct {
	Collided bool
	Hit      ObstacleID // Obstacle that ended the run, when Collided
	Grazes   []Obstacle // Obstacles grazed for the first time, in spawn order
}

// Field owns the live obstacles, in spawn order.
type Field struct {
	obstacles   []Obstacle
	grazeMargin float64
	removeBelow float64
}

// NewField creates an empty field.
func NewField(cfg config.DodgeConfig) *Field {
	return &Field{
		obstacles:   make([]Obstacle, 0, 32),
		grazeMargin: cfg.Scoring.GrazeMargin,
		removeBelow: cfg.Field.Height + cfg.Enemies.RemovalMargin,
	}
}

// Add appends obstacles behind the existing ones.
func (f *Field) Add(obs ...Obstacle) {
	f.obstacles = append(f.obstacles, obs...)
}

// Obstacles returns the live obstacles. The slice is owned by the field.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Reset removes all obstacles.
func (f *Field) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Step advances every obstacle by dt and tests it against the player.
//
// Obstacles are processed in spawn order. The first overlap stops the step:
// later obstacles are neither moved nor checked, and nothing is removed.
// A graze is reported once per obstacle, and an obstacle is grazed before it
// can be removed in the same frame.
func (f *Field) Step(dt float64, player core.RectF) FieldResult {
	var res FieldResult
	grazeBox := player.Expand(f.grazeMargin)

	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.Y += o.VY * dt

		r := o.Rect()
		if r.Intersects(player) {
			res.Collided = true
			res.Hit = o.ID
			return res
		}
		if !o.Grazed && r.Intersects(grazeBox) {
			o.Grazed = true
			res.Grazes = append(res.Grazes, *o)
		}
	}

	valid := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Y <= f.removeBelow {
			valid = append(valid, o)
		}
	}
	f.obstacles = valid

	return res
}
