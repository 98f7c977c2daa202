package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// ObstacleView is the read-only view of an obstacle.
type ObstacleView struct {
	ID     ObstacleID
	Rect   core.RectF
	Class  float64
	Grazed bool
}

// Snapshot captures what a renderer or test needs to know about a frame.
type Snapshot struct {
	Mode      Mode
	FieldW    float64
	FieldH    float64
	Player    core.RectF
	PlayerVX  float64
	Dashing   bool
	DashReady float64 // Cooldown progress in [0, 1]
	Obstacles []ObstacleView
	Popups    []Popup
	Stars     []Star
	Elapsed   float64
	Score     float64 // Live score, or the final score after game over
	Mult      float64
	Grazes    int
	Dashes    int
	Best      float64
	NewBest   bool
	Rate      float64 // Current spawn rate, obstacles/second
	Level     float64 // Starting difficulty level in [0, 1]
	Ramping   bool    // Whether spawn rate and fall speed grow during a run
}

// Snapshot returns a copy of the current frame state.
func (g *Game) Snapshot() Snapshot {
	r := g.run
	now := r.Score.Elapsed

	obstacles := make([]ObstacleView, 0, r.Field.Len())
	for _, o := range r.Field.Obstacles() {
		obstacles = append(obstacles, ObstacleView{
			ID:     o.ID,
			Rect:   o.Rect(),
			Class:  o.Class,
			Grazed: o.Grazed,
		})
	}

	dashReady := 1.0
	if g.mode == ModePlaying || g.mode == ModePaused {
		dashReady = r.Player.DashReadyFraction(now)
	}

	return Snapshot{
		Mode:      g.mode,
		FieldW:    g.cfg.Field.Width,
		FieldH:    g.cfg.Field.Height,
		Player:    r.Player.Rect(),
		PlayerVX:  r.Player.VX,
		Dashing:   r.Player.DashActive(now),
		DashReady: dashReady,
		Obstacles: obstacles,
		Popups:    append([]Popup(nil), r.Popups...),
		Stars:     append([]Star(nil), g.stars.Stars()...),
		Elapsed:   now,
		Score:     g.State().Score,
		Mult:      r.Score.Mult,
		Grazes:    r.Score.Grazes,
		Dashes:    r.Dashes,
		Best:      g.best.Best(),
		NewBest:   r.NewBest,
		Rate:      r.Spawner.Rate,
		Level:     g.diff.Level(),
		Ramping:   g.diff.IsEnabled(),
	}
}
